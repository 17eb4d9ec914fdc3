package args

// MulaDhatu is a root looked up directly from the Dhatupatha (gana +
// upadesha), mirroring `Dhatu::Mula`.
type MulaDhatu struct {
	Upadesha string
	Gana     Gana
	sanadi   []Sanadi
}

// NewMula constructs a mula dhatu.
func NewMula(upadesha string, gana Gana) *MulaDhatu {
	return &MulaDhatu{Upadesha: upadesha, Gana: gana}
}

// WithSanadi returns a copy of m with the given sanadi chain appended
// (e.g. San for desiderative, Yan for intensive, Nic for causative).
func (m MulaDhatu) WithSanadi(s ...Sanadi) *MulaDhatu {
	m.sanadi = append(append([]Sanadi(nil), m.sanadi...), s...)
	return &m
}

// Sanadi is a derivational affix that builds a derived root (san, Nic,
// yaN, ...).
type Sanadi int

const (
	San Sanadi = iota // desiderative
	Nic               // causative
	Yan               // intensive
	YaK               // passive-forming yak; no rule adds it (neither rules/sanadi nor rules/vikarana)
)

// NamaDhatu is a nominal root formed from a pratipadika plus prefixes
// (e.g. "putrIyati"), mirroring `Dhatu::Nama`.
type NamaDhatu struct {
	Base     *Pratipadika
	Prefixes []string
}

// Dhatu is the tagged union of mula/nama roots, mirroring `args::Dhatu`.
type Dhatu struct {
	Mula *MulaDhatu
	Nama *NamaDhatu
}

// FromMula wraps a mula dhatu.
func FromMula(m *MulaDhatu) *Dhatu { return &Dhatu{Mula: m} }

// FromNama wraps a nama dhatu.
func FromNama(n *NamaDhatu) *Dhatu { return &Dhatu{Nama: n} }

// SanadiChain returns the sanadi chain for a mula dhatu (empty for nama).
func (d *Dhatu) SanadiChain() []Sanadi {
	if d.Mula == nil {
		return nil
	}
	return d.Mula.sanadi
}

// IsMula reports whether this is a mula (Dhatupatha) dhatu.
func (d *Dhatu) IsMula() bool { return d.Mula != nil }
