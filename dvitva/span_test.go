package dvitva

import "testing"

func TestFindAbhyasaSpan(t *testing.T) {
	cases := []struct {
		text       string
		start, end int
		ok         bool
	}{
		{"kIrza", 0, 1, true},
		{"undiza", 2, 3, true},
		{"arya", 1, 3, true},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		start, end, ok := FindAbhyasaSpan(c.text)
		if ok != c.ok {
			t.Fatalf("FindAbhyasaSpan(%q) ok = %v, want %v", c.text, ok, c.ok)
		}
		if ok && (start != c.start || end != c.end) {
			t.Errorf("FindAbhyasaSpan(%q) = (%d,%d), want (%d,%d)", c.text, start, end, c.start, c.end)
		}
	}
}

func TestFindAbhyasaSpanLaw(t *testing.T) {
	// Abhyasa-span law (spec.md §8): for any text, if FindAbhyasaSpan
	// returns (s, e), then (i) text[s] is a consonant, (ii) text[e] is a
	// vowel, and (iii) no vowel lies in [s, e-1].
	texts := []string{"kIrza", "undiza", "arya", "ndrya", "tCinda"}
	for _, text := range texts {
		s, e, ok := FindAbhyasaSpan(text)
		if !ok {
			continue
		}
		if !isHalByte(text[s]) {
			t.Errorf("FindAbhyasaSpan(%q): text[%d]=%q is not a consonant", text, s, text[s])
		}
		if !isAcByte(text[e]) {
			t.Errorf("FindAbhyasaSpan(%q): text[%d]=%q is not a vowel", text, e, text[e])
		}
		for i := s; i < e; i++ {
			if isAcByte(text[i]) {
				t.Errorf("FindAbhyasaSpan(%q): vowel found inside span at %d before end %d", text, i, e)
			}
		}
	}
}

func isHalByte(c byte) bool { return !isAcByte(c) }
func isAcByte(c byte) bool {
	switch c {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}
