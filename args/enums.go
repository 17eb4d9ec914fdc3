// Package args defines the typed argument records of the external
// input API (spec.md §6): the public request types a caller builds and
// hands to a driver entry point. Grounded on the `crate::args` module
// referenced throughout original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package args

import "github.com/sanskritgrammar/prakriya"

// Gana is the verb class (conjugation group) of a mula dhatu.
type Gana int

const (
	Bhvadi Gana = iota + 1
	Adadi
	Juhotyadi
	Divadi
	Svadi
	Tudadi
	Rudhadi
	Tanadi
	Kryadi
	Curadi
)

// Lakara is the tense/mood marker.
type Lakara int

const (
	Lat Lakara = iota
	Lit
	Lut
	Lrt
	Let
	Lot
	Lan
	AshirLin
	VidhiLin
	Lun
	Lrn
)

var lakaraCodes = map[Lakara]string{
	Lat: "la~w", Lit: "li~w", Lut: "lu~w", Lrt: "lf~w", Let: "le~w",
	Lot: "lo~w", Lan: "la~N", AshirLin: "ASIrli~N", VidhiLin: "vidhili~N",
	Lun: "lu~N", Lrn: "lf~N",
}

// Code returns the upadesha-style code for this lakara (e.g. "la~w").
func (l Lakara) Code() string { return lakaraCodes[l] }

// IsArdhadhatuka reports whether this lakara's affixes are ardhadhatuka
// (as opposed to sarvadhatuka). Mirrors `Lakara::is_ardhadhatuka`.
func (l Lakara) IsArdhadhatuka() bool {
	switch l {
	case Lit, Lut, Lrt, AshirLin, Lun, Lrn:
		return true
	default:
		return false
	}
}

// Prayoga is the voice of a tinanta derivation.
type Prayoga int

const (
	Kartari Prayoga = iota
	Bhave
	Karmani
)

// AsTag returns the prakriya-wide tag this prayoga sets.
func (p Prayoga) AsTag() prakriya.Tag {
	switch p {
	case Bhave:
		return prakriya.Bhave
	case Karmani:
		return prakriya.Karmani
	default:
		return prakriya.Kartari
	}
}

// Purusha is grammatical person.
type Purusha int

const (
	Prathama Purusha = iota // third person
	Madhyama                // second person
	Uttama                  // first person
)

// Vacana is grammatical number.
type Vacana int

const (
	Eka Vacana = iota
	Dvi
	Bahu
)

// AsTag returns a placeholder prakriya tag for this purusha (used where
// the driver needs a prakriya-wide marker; tin_pratyaya resolves the
// actual ending from (purusha, vacana, pada) directly).
func (pu Purusha) AsTag() prakriya.Tag { return prakriya.Dhatu }

// AsTag returns a placeholder prakriya tag for this vacana; see Purusha.AsTag.
func (v Vacana) AsTag() prakriya.Tag { return prakriya.Dhatu }

// Linga is grammatical gender.
type Linga int

const (
	Pum Linga = iota
	Stri
	Napumsaka
)

// AsTag returns the prakriya-wide gender tag.
func (l Linga) AsTag() prakriya.Tag {
	switch l {
	case Stri:
		return prakriya.Stri
	case Napumsaka:
		return prakriya.Napumsaka
	default:
		return prakriya.Pum
	}
}

// Vibhakti is nominal case.
type Vibhakti int

const (
	V1 Vibhakti = iota + 1
	V2
	V3
	V4
	V5
	V6
	V7
	VSambodhana
)

// AsTag returns the prakriya tag for this vibhakti slot.
func (v Vibhakti) AsTag() prakriya.Tag {
	switch v {
	case V1:
		return prakriya.V1
	case V2:
		return prakriya.V2
	case V3:
		return prakriya.V3
	case V4:
		return prakriya.V4
	case V5:
		return prakriya.V5
	case V6:
		return prakriya.V6
	case V7:
		return prakriya.V7
	default:
		return prakriya.Sambodhana
	}
}

// BaseKrt is a representative subset of primary (krt) affixes.
type BaseKrt int

const (
	Tfc BaseKrt = iota // tf~c
	Lyuw
	Ac
	Vic
	GhaN
	Ktavatu
	Ktva
)

// Upadesha returns the upadesha form of this krt affix.
func (k BaseKrt) Upadesha() string {
	switch k {
	case Tfc:
		return "tf~c"
	case Lyuw:
		return "lyu~w"
	case Ac:
		return "ac"
	case Vic:
		return "vi~c"
	case GhaN:
		return "GaY"
	case Ktavatu:
		return "ktavatu~"
	case Ktva:
		return "ktvA"
	default:
		return ""
	}
}

// Taddhita is a representative subset of secondary (taddhita) affixes.
type Taddhita int

const (
	Pak         Taddhita = iota // Pak
	Ashtadhyayi                 // aR
)

// Upadesha returns the upadesha form of this taddhita affix.
func (t Taddhita) Upadesha() string {
	switch t {
	case Pak:
		return "Pak"
	default:
		return "aR"
	}
}

// SamasaType is a compound type.
type SamasaType int

const (
	Tatpurusha SamasaType = iota
	Avyayibhava
	Bahuvrihi
	Dvandva
)
