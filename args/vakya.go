package args

// Pada is one word-slot of a vakya (sentence), a tagged union of the
// kinds of word a sentence position can hold.
type Pada struct {
	Subanta *Subanta
	Tinanta *Tinanta
	Dummy   *string
	Nipata  *string
}

func PadaFromSubanta(s *Subanta) Pada { return Pada{Subanta: s} }
func PadaFromTinanta(t *Tinanta) Pada { return Pada{Tinanta: t} }
func PadaFromDummy(text string) Pada  { return Pada{Dummy: &text} }
func PadaFromNipata(text string) Pada { return Pada{Nipata: &text} }

// Vakya is the top-level argument record for derive_vakya: an ordered
// sequence of padas joined with inter-word sandhi.
type Vakya struct {
	PadasValue []Pada
}

func NewVakya(padas ...Pada) *Vakya { return &Vakya{PadasValue: padas} }

func (v *Vakya) Padas() []Pada { return v.PadasValue }
