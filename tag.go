package prakriya

// Tag is a feature marker drawn from a fixed enumeration, attached to a
// Term or to a Prakriya as a whole. Mirrors the closed `Tag` enum used
// throughout the derivation engine (see SPEC_FULL.md §1 and the
// `crate::core::Tag` references in ashtadhyayi.rs / dvitva.rs).
type Tag int

const (
	// Part-of-speech / category tags.
	Dhatu Tag = iota
	Pratipadika
	Pratyaya
	Agama
	Abhyasa
	Abhyasta
	Dvitva
	Avyaya
	Nipata
	Upasarga
	Pada
	Sup
	Vibhakti
	Samasa

	// Voice / prayoga tags.
	Kartari
	Karmani
	Bhave
	Atmanepada
	Parasmaipada

	// Gender tags.
	Pum
	Stri
	Napumsaka

	// Affix-class tags (kit/Nit family, V1..V7 vibhakti slots).
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	Sambodhana

	// it-markers and affix behavior flags.
	Kit
	Nit
	Slu
	Unadi

	// transient correction flags used by the dvitva engine.
	FlagIttva
	FlagSaAdeshadi

	// misc state flags.
	Lupta
	Pragrhya

	// affix-origin tags.
	Krt
	TaddhitaAffix
)

// tagNames gives a human-readable name for each tag, used in debug output.
var tagNames = map[Tag]string{
	Dhatu: "Dhatu", Pratipadika: "Pratipadika", Pratyaya: "Pratyaya",
	Agama: "Agama", Abhyasa: "Abhyasa", Abhyasta: "Abhyasta", Dvitva: "Dvitva",
	Avyaya: "Avyaya", Nipata: "Nipata", Upasarga: "Upasarga", Pada: "Pada", Sup: "Sup",
	Vibhakti: "Vibhakti", Samasa: "Samasa", Kartari: "Kartari",
	Karmani: "Karmani", Bhave: "Bhave", Atmanepada: "Atmanepada",
	Parasmaipada: "Parasmaipada", Pum: "Pum", Stri: "Stri", Napumsaka: "Napumsaka",
	V1: "V1", V2: "V2", V3: "V3", V4: "V4", V5: "V5", V6: "V6", V7: "V7",
	Sambodhana: "Sambodhana", Kit: "kit", Nit: "Nit", Slu: "Slu", Unadi: "Unadi",
	FlagIttva: "FlagIttva", FlagSaAdeshadi: "FlagSaAdeshadi", Lupta: "Lupta",
	Pragrhya: "Pragrhya", Krt: "Krt", TaddhitaAffix: "TaddhitaAffix",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Tag(?)"
}

// TagSet is a set over Tag, used by both Term and Prakriya. Tags are
// monotonic within a term except for the small set of transient flags
// (FlagIttva, FlagSaAdeshadi, Lupta) that rules remove explicitly.
type TagSet map[Tag]struct{}

func newTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) add(t Tag) {
	s[t] = struct{}{}
}

func (s TagSet) remove(t Tag) {
	delete(s, t)
}

func (s TagSet) has(t Tag) bool {
	_, ok := s[t]
	return ok
}

func (s TagSet) hasAny(tags []Tag) bool {
	for _, t := range tags {
		if s.has(t) {
			return true
		}
	}
	return false
}
