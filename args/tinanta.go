package args

// Tinanta is the top-level argument record for derive_tinanta: a finite
// verb form selected by dhatu, lakara, prayoga, purusha and vacana.
type Tinanta struct {
	DhatuValue   *Dhatu
	LakaraValue  Lakara
	PrayogaValue Prayoga
	PurushaValue Purusha
	VacanaValue  Vacana
	ArthaValue   string
}

func NewTinanta(dhatu *Dhatu, lakara Lakara, prayoga Prayoga, purusha Purusha, vacana Vacana) *Tinanta {
	return &Tinanta{DhatuValue: dhatu, LakaraValue: lakara, PrayogaValue: prayoga, PurushaValue: purusha, VacanaValue: vacana}
}

func (t *Tinanta) Dhatu() *Dhatu     { return t.DhatuValue }
func (t *Tinanta) Lakara() Lakara    { return t.LakaraValue }
func (t *Tinanta) Prayoga() Prayoga  { return t.PrayogaValue }
func (t *Tinanta) Purusha() Purusha  { return t.PurushaValue }
func (t *Tinanta) Vacana() Vacana    { return t.VacanaValue }
func (t *Tinanta) Artha() *string {
	if t.ArthaValue == "" {
		return nil
	}
	return &t.ArthaValue
}
