package args

// Subanta is the top-level argument record for derive_subanta: a
// nominal form selected by pratipadika, linga, vibhakti and vacana.
type Subanta struct {
	PratipadikaValue *Pratipadika
	LingaValue       Linga
	VibhaktiValue    Vibhakti
	VacanaValue      Vacana
	IsAvyayaValue    bool
}

func NewSubanta(p *Pratipadika, linga Linga, vibhakti Vibhakti, vacana Vacana) *Subanta {
	return &Subanta{PratipadikaValue: p, LingaValue: linga, VibhaktiValue: vibhakti, VacanaValue: vacana}
}

// Avyaya marks this subanta as an avyaya (indeclinable) by setting
// IsAvyayaValue. DeriveSubanta does not read the flag, so the derived
// form still takes the sup ending chosen by vibhakti and vacana.
func (s *Subanta) Avyaya() *Subanta {
	s.IsAvyayaValue = true
	return s
}

func (s *Subanta) Pratipadika() *Pratipadika { return s.PratipadikaValue }
func (s *Subanta) Linga() Linga              { return s.LingaValue }
func (s *Subanta) Vibhakti() Vibhakti        { return s.VibhaktiValue }
func (s *Subanta) Vacana() Vacana            { return s.VacanaValue }
func (s *Subanta) IsAvyaya() bool            { return s.IsAvyayaValue }
