package prakriya

// Set is a membership test over bytes of the Paninian transliteration
// alphabet (SLP1-like; see spec.md §6). Mirrors the fixed pratyahara
// registry of C1 (§4.1): loaded once below and immutable thereafter,
// the same way collatinus.New loads its morphos/models tables once at
// construction and never mutates them again.
type Set map[byte]struct{}

// NewSet builds a Set from the bytes of s.
func NewSet(s string) Set {
	set := make(Set, len(s))
	for i := 0; i < len(s); i++ {
		set[s[i]] = struct{}{}
	}
	return set
}

// Contains reports whether c belongs to the set.
func (s Set) Contains(c byte) bool {
	_, ok := s[c]
	return ok
}

// Union returns a new Set containing every member of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// The core pratyaharas used throughout the driver and the dvitva engine.
// Correctness requirement (§4.1): Ac ∪ Hal partitions the alphabet of
// term texts, excluding accent marks.
var (
	// Ac is the vowel pratyahara (a i u f x e o E O ...).
	Ac = NewSet("aAiIuUfFxXeEoO")
	// Hal is the consonant pratyahara.
	Hal = NewSet("kKgGNcCjJYwWqQRtTdDnpPbBmyrlvzSsh")
	// Yan is the semivowel pratyahara (y v r l).
	Yan = NewSet("yvrl")
	// Ndr is the {n, d, r} set used by 6.1.3 (na ndraH samyogadayah).
	Ndr = NewSet("ndr")
	// Jhal is the set of obstruents subject to jha-adesha and similar rules.
	Jhal = NewSet("jJbBgGdDkKcCwWtTpPSsh")
)

// IsHal reports whether c is a consonant.
func IsHal(c byte) bool { return Hal.Contains(c) }

// IsAc reports whether c is a vowel.
func IsAc(c byte) bool { return Ac.Contains(c) }
