package args

// BasicPratipadika is a plain nominal stem with no further derivation.
type BasicPratipadika struct {
	Text string
}

// KrdantaPratipadika is a nominal stem formed by a primary (krt) affix.
type KrdantaPratipadika struct {
	Dhatu   *Dhatu
	Krt     BaseKrt
	Lakara  *Lakara
	Artha   string
	Upapada *UpapadaSpec
	require *string
}

// UpapadaSpec names the upapada (subordinate word) for krdantas that
// require one (e.g. kumbha-kara).
type UpapadaSpec struct {
	Pratipadika *Pratipadika
}

// Require marks that the caller wants only the variant whose surface
// text equals s; used by prepare_pratipadika's nested explorer
// (SPEC_FULL.md §4, "Nested require-matching").
func (k *KrdantaPratipadika) Require(s string) *KrdantaPratipadika {
	k.require = &s
	return k
}

// RequireValue returns the requested surface form, if any.
func (k *KrdantaPratipadika) RequireValue() *string { return k.require }

// TaddhitantaPratipadika is a nominal stem formed by a secondary
// (taddhita) affix.
type TaddhitantaPratipadika struct {
	Base     *Pratipadika
	Taddhita Taddhita
	Artha    string
	require  *string
}

func (t *TaddhitantaPratipadika) Require(s string) *TaddhitantaPratipadika {
	t.require = &s
	return t
}

func (t *TaddhitantaPratipadika) RequireValue() *string { return t.require }

// SamasaPratipadika is a nominal stem formed by compounding.
type SamasaPratipadika struct {
	Padas      []SamasaPada
	SamasaType SamasaType
	Stri       bool
}

// SamasaPada is one member of a compound: a pratipadika with its own
// vibhakti and avyaya flag.
type SamasaPada struct {
	PratipadikaValue *Pratipadika
	VibhaktiValue    Vibhakti
	AvyayaValue      bool
}

// Pratipadika is the tagged union of stem kinds, mirroring
// `args::Pratipadika`.
type Pratipadika struct {
	Basic       *BasicPratipadika
	Krdanta     *KrdantaPratipadika
	Taddhitanta *TaddhitantaPratipadika
	Samasa      *SamasaPratipadika
}

func NewBasic(text string) *Pratipadika {
	return &Pratipadika{Basic: &BasicPratipadika{Text: text}}
}

func NewKrdantaPratipadika(k *KrdantaPratipadika) *Pratipadika {
	return &Pratipadika{Krdanta: k}
}

func NewTaddhitantaPratipadika(t *TaddhitantaPratipadika) *Pratipadika {
	return &Pratipadika{Taddhitanta: t}
}

func NewSamasaPratipadika(s *SamasaPratipadika) *Pratipadika {
	return &Pratipadika{Samasa: s}
}

// Krdanta is the top-level argument record for derive_krdanta.
type Krdanta struct {
	DhatuValue   *Dhatu
	KrtValue     BaseKrt
	LakaraValue  *Lakara
	ArthaValue   string
	UpapadaValue *UpapadaSpec
}

func (k *Krdanta) Dhatu() *Dhatu        { return k.DhatuValue }
func (k *Krdanta) Krt() BaseKrt         { return k.KrtValue }
func (k *Krdanta) Lakara() *Lakara      { return k.LakaraValue }
func (k *Krdanta) Artha() *string {
	if k.ArthaValue == "" {
		return nil
	}
	return &k.ArthaValue
}
func (k *Krdanta) Upapada() *UpapadaSpec { return k.UpapadaValue }

// IsArdhadhatuka reports whether this krt affix is ardhadhatuka
// (a simplified, representative rule: most primary affixes outside
// the sarvadhatuka-conditioned zero/shatr/shanac set are ardhadhatuka).
func (k BaseKrt) IsArdhadhatuka() bool {
	return true
}

// Taddhitanta is the top-level argument record for derive_taddhitanta.
type Taddhitanta struct {
	PratipadikaValue *Pratipadika
	TaddhitaValue    Taddhita
	ArthaValue       string
}

func (t *Taddhitanta) Pratipadika() *Pratipadika { return t.PratipadikaValue }
func (t *Taddhitanta) Taddhita() Taddhita         { return t.TaddhitaValue }
func (t *Taddhitanta) Artha() *string {
	if t.ArthaValue == "" {
		return nil
	}
	return &t.ArthaValue
}

// Samasa is the top-level argument record for derive_samasa.
type Samasa struct {
	PadasValue []SamasaPada
	TypeValue  SamasaType
	StriValue  bool
}

func (s *Samasa) Padas() []SamasaPada      { return s.PadasValue }
func (s *Samasa) SamasaType() SamasaType   { return s.TypeValue }
func (s *Samasa) Stri() bool               { return s.StriValue }

func (p SamasaPada) Pratipadika() *Pratipadika { return p.PratipadikaValue }
func (p SamasaPada) Vibhakti() Vibhakti        { return p.VibhaktiValue }
func (p SamasaPada) IsAvyaya() bool            { return p.AvyayaValue }
