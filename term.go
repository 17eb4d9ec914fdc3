package prakriya

import "strings"

// Term represents one morphological segment: a root, an affix, an
// augment, an abhyasa, etc. Mirrors §3.1 of SPEC_FULL's parent spec.
//
// Invariants: Text contains only Paninian transliteration characters;
// U, once set, is never rewritten; Sthanivat, once snapshotted, is never
// modified until a rule explicitly retakes it (see ForceSaveSthanivat).
type Term struct {
	// U is the upadesha (teaching form), e.g. "qupa\\ca~^z". Empty if absent.
	U string
	// Text is the current phonetic form, mutated by sound rules.
	Text string
	// sthanivat is the snapshot taken when a rule demands later rules
	// "see" the pre-mutation form. Empty until first saved.
	sthanivat string
	// tags is the feature-tag set for this term.
	tags TagSet
}

// MakeUpadesha constructs a Term from its upadesha form, initializing
// Text to the same string (callers strip it-markers separately via the
// samjna/it_samjna rule packages, matching how dhatu_karya treats a
// freshly added dhatu in the original).
func MakeUpadesha(u string) Term {
	return Term{U: u, Text: u, tags: newTagSet()}
}

// MakeText constructs a Term directly from surface text, with no upadesha.
func MakeText(text string) Term {
	return Term{Text: text, tags: newTagSet()}
}

// HasU reports whether the term's upadesha equals u exactly.
func (t *Term) HasU(u string) bool {
	return t.U != "" && t.U == u
}

// HasUIn reports whether the term's upadesha is any of us.
func (t *Term) HasUIn(us []string) bool {
	for _, u := range us {
		if t.HasU(u) {
			return true
		}
	}
	return false
}

// Len returns the number of bytes in Text (the engine's transliteration
// alphabet is single-byte per phoneme, matching the Rust original's use
// of CompactString byte indexing).
func (t *Term) Len() int {
	return len(t.Text)
}

// IsEmpty reports whether Text is empty.
func (t *Term) IsEmpty() bool {
	return t.Text == ""
}

// Adi returns the first character of Text, and false if Text is empty.
func (t *Term) Adi() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[0], true
}

// Antya returns the last character of Text, and false if Text is empty.
func (t *Term) Antya() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[len(t.Text)-1], true
}

// HasAdi reports whether the term's first character is c.
func (t *Term) HasAdi(c byte) bool {
	a, ok := t.Adi()
	return ok && a == c
}

// HasAdiIn reports whether the term's first character belongs to set.
func (t *Term) HasAdiIn(set Set) bool {
	a, ok := t.Adi()
	return ok && set.Contains(a)
}

// HasAntya reports whether the term's last character is c.
func (t *Term) HasAntya(c byte) bool {
	a, ok := t.Antya()
	return ok && a == c
}

// HasAntyaIn reports whether the term's last character belongs to set.
func (t *Term) HasAntyaIn(set Set) bool {
	a, ok := t.Antya()
	return ok && set.Contains(a)
}

// HasText reports whether Text equals s exactly.
func (t *Term) HasText(s string) bool {
	return t.Text == s
}

// StartsWith reports whether Text begins with prefix.
func (t *Term) StartsWith(prefix string) bool {
	return strings.HasPrefix(t.Text, prefix)
}

// AddTag adds a single tag.
func (t *Term) AddTag(tag Tag) {
	if t.tags == nil {
		t.tags = newTagSet()
	}
	t.tags.add(tag)
}

// AddTags adds every tag in tags.
func (t *Term) AddTags(tags []Tag) {
	for _, tag := range tags {
		t.AddTag(tag)
	}
}

// RemoveTag removes a single tag, if present.
func (t *Term) RemoveTag(tag Tag) {
	if t.tags != nil {
		t.tags.remove(tag)
	}
}

// HasTag reports whether tag is set.
func (t *Term) HasTag(tag Tag) bool {
	return t.tags != nil && t.tags.has(tag)
}

// HasTagIn reports whether any of tags is set.
func (t *Term) HasTagIn(tags []Tag) bool {
	return t.tags != nil && t.tags.hasAny(tags)
}

// SetText replaces Text wholesale.
func (t *Term) SetText(s string) {
	t.Text = s
}

// SetAdi replaces the first character of Text with s. An empty s removes
// the first character, per the §4.2 contract.
func (t *Term) SetAdi(s string) {
	if t.Text == "" {
		t.Text = s
		return
	}
	t.Text = s + t.Text[1:]
}

// SetAntya replaces the last character of Text with s. An empty s removes
// the last character, per the §4.2 contract.
func (t *Term) SetAntya(s string) {
	if t.Text == "" {
		t.Text = s
		return
	}
	t.Text = t.Text[:len(t.Text)-1] + s
}

// PushStr appends s to Text.
func (t *Term) PushStr(s string) {
	t.Text += s
}

// Truncate drops the trailing n characters from Text.
func (t *Term) Truncate(n int) {
	if n >= len(t.Text) {
		t.Text = ""
		return
	}
	t.Text = t.Text[:len(t.Text)-n]
}

// ForceSaveSthanivat retakes the sthanivat snapshot unconditionally, even
// if one was already saved. Dvitva on a dhatu consisting of a single
// vowel relies on this (SPEC_FULL.md §4, "force_save_sthanivat").
func (t *Term) ForceSaveSthanivat() {
	t.sthanivat = t.Text
}

// MaybeSaveSthanivat saves the current Text as sthanivat only if none has
// been saved yet.
func (t *Term) MaybeSaveSthanivat() {
	if t.sthanivat == "" {
		t.sthanivat = t.Text
	}
}

// Sthanivat returns the saved snapshot, or Text if none was ever saved.
func (t *Term) Sthanivat() string {
	if t.sthanivat != "" {
		return t.sthanivat
	}
	return t.Text
}

// --- derived predicates used throughout the driver and dvitva engine ---

func (t *Term) IsDhatu() bool      { return t.HasTag(Dhatu) }
func (t *Term) IsPratyaya() bool   { return t.HasTag(Pratyaya) }
func (t *Term) IsAgama() bool      { return t.HasTag(Agama) }
func (t *Term) IsAbhyasta() bool   { return t.HasTag(Abhyasta) }
func (t *Term) IsUpasarga() bool   { return t.HasTag(Upasarga) }
func (t *Term) IsLupta() bool      { return t.HasTag(Lupta) }

// IsItAgama reports whether this agama is the "iṭ" augment.
func (t *Term) IsItAgama() bool {
	return t.IsAgama() && (t.HasU("iw") || t.HasU("Iw"))
}

// IsNiPratyaya reports whether this term is a ṇi-pratyaya (causative marker).
func (t *Term) IsNiPratyaya() bool {
	return t.IsPratyaya() && (t.HasU("Ric") || t.HasU("RiN"))
}

// IsEkac reports whether the term's text is monosyllabic (has exactly one vowel).
func (t *Term) IsEkac() bool {
	count := 0
	for i := 0; i < len(t.Text); i++ {
		if Ac.Contains(t.Text[i]) {
			count++
		}
	}
	return count == 1
}

// IsSamyogadi reports whether the term begins with a consonant cluster
// (two or more consonants at the start).
func (t *Term) IsSamyogadi() bool {
	if len(t.Text) < 2 {
		return false
	}
	return Hal.Contains(t.Text[0]) && Hal.Contains(t.Text[1])
}

// Clone returns a deep-enough copy of t (tags are copied into a new set).
func (t *Term) Clone() Term {
	nt := *t
	nt.tags = make(TagSet, len(t.tags))
	for k := range t.tags {
		nt.tags[k] = struct{}{}
	}
	return nt
}
