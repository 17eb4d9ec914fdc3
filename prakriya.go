package prakriya

import (
	"strings"

	"github.com/sanskritgrammar/prakriya/logx"
)

// Artha is the meaning condition that licenses a particular affix
// (spec.md §3.2). Zero value means "no artha condition".
type Artha struct {
	Kind string // "Krt" | "Taddhita" | ""
	Value string
}

// Prakriya is the mutable derivation: an ordered sequence of Terms plus
// prakriya-wide tags, an artha condition, a rule-choice log and a
// history log. Mirrors §3.2.
type Prakriya struct {
	terms []Term
	tags  TagSet
	artha Artha
	// lakara, when set, is the tense/mood marker governing tin-pratyaya
	// and vikarana selection.
	lakara string

	// ganaCode is the 1-10 gana ordinal of the current mula dhatu (0 if
	// unset), mirroring args.Gana's numbering; kept as a plain int here
	// to avoid importing the args package from the core engine.
	ganaCode int

	ruleChoices []RuleChoice
	history     []HistoryEntry

	config Config

	// replayIdx tracks how far into config.RuleChoicesPrefix optional_run
	// has replayed so far.
	replayIdx int
}

// New creates an empty Prakriya with default configuration.
func New() *Prakriya {
	return WithConfig(Config{})
}

// WithConfig creates an empty Prakriya seeded with cfg, replaying
// cfg.RuleChoicesPrefix at each future optional_run call. Used by the
// explorer to restart derivations from a seeded decision path (§4.7).
func WithConfig(cfg Config) *Prakriya {
	return &Prakriya{
		tags:   newTagSet(),
		config: cfg,
	}
}

// Terms returns the current term slice. Per the §4.3 invariant, any
// index derived from this slice is valid only until the next mutating
// call; re-query via Find* after any insertion or deletion.
func (p *Prakriya) Terms() []Term { return p.terms }

// Text concatenates every term's current Text, producing the final
// orthographic form.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for _, t := range p.terms {
		b.WriteString(t.Text)
	}
	return b.String()
}

// RuleChoices returns the ordered log of Accept/Decline decisions.
func (p *Prakriya) RuleChoices() []RuleChoice { return p.ruleChoices }

// History returns the ordered log of rule firings.
func (p *Prakriya) History() []HistoryEntry { return p.history }

// AddTag adds a prakriya-wide tag.
func (p *Prakriya) AddTag(t Tag) { p.tags.add(t) }

// AddTags adds every tag in ts.
func (p *Prakriya) AddTags(ts []Tag) {
	for _, t := range ts {
		p.tags.add(t)
	}
}

// RemoveTag removes a prakriya-wide tag.
func (p *Prakriya) RemoveTag(t Tag) { p.tags.remove(t) }

// HasTag reports whether a prakriya-wide tag is set.
func (p *Prakriya) HasTag(t Tag) bool { return p.tags.has(t) }

// SetArtha sets the meaning condition.
func (p *Prakriya) SetArtha(a Artha) { p.artha = a }

// GetArtha returns the current meaning condition.
func (p *Prakriya) GetArtha() Artha { return p.artha }

// SetLakara sets the tense/mood marker.
func (p *Prakriya) SetLakara(l string) { p.lakara = l }

// Lakara returns the current tense/mood marker.
func (p *Prakriya) Lakara() string { return p.lakara }

// SetGana records the current mula dhatu's gana ordinal (1-10).
func (p *Prakriya) SetGana(n int) { p.ganaCode = n }

// GanaCode returns the current gana ordinal, or 0 if unset.
func (p *Prakriya) GanaCode() int { return p.ganaCode }

// UseSvaras reports whether accent rules should run.
func (p *Prakriya) UseSvaras() bool { return p.config.UseSvaras }

// IsChandasi reports whether Vedic rules are permitted.
func (p *Prakriya) IsChandasi() bool { return p.config.IsChandasi }

// --- position primitives (§4.3) ---

// FindFirstWhere returns the index of the first term matching pred, or
// -1 if none matches.
func (p *Prakriya) FindFirstWhere(pred func(*Term) bool) int {
	for i := range p.terms {
		if pred(&p.terms[i]) {
			return i
		}
	}
	return -1
}

// FindLastWhere returns the index of the last term matching pred, or -1.
func (p *Prakriya) FindLastWhere(pred func(*Term) bool) int {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if pred(&p.terms[i]) {
			return i
		}
	}
	return -1
}

// FindNextWhere returns the index of the first term after i matching
// pred, or -1.
func (p *Prakriya) FindNextWhere(i int, pred func(*Term) bool) int {
	for j := i + 1; j < len(p.terms); j++ {
		if pred(&p.terms[j]) {
			return j
		}
	}
	return -1
}

// FindPrevWhere returns the index of the last term before i matching
// pred, or -1.
func (p *Prakriya) FindPrevWhere(i int, pred func(*Term) bool) int {
	for j := i - 1; j >= 0; j-- {
		if pred(&p.terms[j]) {
			return j
		}
	}
	return -1
}

// Get returns a pointer to the term at i, or nil if out of range.
func (p *Prakriya) Get(i int) *Term {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	return &p.terms[i]
}

// Has reports whether the term at i satisfies pred; false if i is out
// of range.
func (p *Prakriya) Has(i int, pred func(*Term) bool) bool {
	t := p.Get(i)
	return t != nil && pred(t)
}

// PratyayaView groups a base affix together with any attached augments,
// so a caller can reason about "the next pratyaya" without being
// tripped up by an intervening iṭ-agama (§4.3, "pratyaya view";
// SPEC_FULL.md §4).
type PratyayaView struct {
	start, end int // inclusive indices into Prakriya.terms
	p          *Prakriya
}

// Start returns the first index of the view.
func (v PratyayaView) Start() int { return v.start }

// End returns the last index of the view.
func (v PratyayaView) End() int { return v.end }

// First returns the first term in the view.
func (v PratyayaView) First() *Term { return v.p.Get(v.start) }

// Last returns the last (base) term in the view.
func (v PratyayaView) Last() *Term { return v.p.Get(v.end) }

// HasLakshana reports whether the view's base term carries the given
// lakshana (affix label) as its upadesha.
func (v PratyayaView) HasLakshana(lakshana string) bool {
	return v.Last().HasU(lakshana)
}

// HasTag reports whether the view's base term carries tag.
func (v PratyayaView) HasTag(tag Tag) bool {
	return v.Last().HasTag(tag)
}

// Pratyaya builds a PratyayaView rooted at index i: when i is an agama
// the view runs forward over the agama terms up to the first non-agama
// term, which is the base pratyaya (an agama is folded into the view of
// the pratyaya it precedes).
func (p *Prakriya) Pratyaya(i int) *PratyayaView {
	if i < 0 || i >= len(p.terms) {
		return nil
	}
	end := i
	for end+1 < len(p.terms) && p.terms[end].IsAgama() {
		end++
	}
	return &PratyayaView{start: i, end: end, p: p}
}

// --- mutation primitives (§4.3) ---

// Push appends a term to the end.
func (p *Prakriya) Push(t Term) {
	p.terms = append(p.terms, t)
}

// Extend appends every term in ts.
func (p *Prakriya) Extend(ts []Term) {
	p.terms = append(p.terms, ts...)
}

// InsertBefore inserts t immediately before index i.
func (p *Prakriya) InsertBefore(i int, t Term) {
	p.terms = append(p.terms[:i], append([]Term{t}, p.terms[i:]...)...)
}

// InsertAfter inserts t immediately after index i.
func (p *Prakriya) InsertAfter(i int, t Term) {
	p.InsertBefore(i+1, t)
}

// Pop removes and returns the last term.
func (p *Prakriya) Pop() (Term, bool) {
	if len(p.terms) == 0 {
		return Term{}, false
	}
	t := p.terms[len(p.terms)-1]
	p.terms = p.terms[:len(p.terms)-1]
	return t, true
}

// RemoveAt deletes the term at index i.
func (p *Prakriya) RemoveAt(i int) {
	p.terms = append(p.terms[:i], p.terms[i+1:]...)
}

// Set applies f to the term at index i.
func (p *Prakriya) Set(i int, f func(*Term)) {
	if i < 0 || i >= len(p.terms) {
		return
	}
	f(&p.terms[i])
}

// snapshot records the current concatenated term texts into history,
// keyed by rule.
func (p *Prakriya) snapshot(rule Rule) {
	entry := HistoryEntry{Rule: rule}
	if p.config.LogSteps {
		texts := make([]string, len(p.terms))
		for i, t := range p.terms {
			texts[i] = t.Text
		}
		entry.Snapshot = texts
	}
	p.history = append(p.history, entry)
}

// Run executes f, then records rule in history. Atomic: no history
// entry is written unless f runs (it always does here, matching the
// unconditional path of `Prakriya::run` in the original engine).
func (p *Prakriya) Run(rule Rule, f func(*Prakriya)) {
	f(p)
	p.snapshot(rule)
	if p.config.LogSteps {
		logx.Default.Debug().Str("rule", rule.String()).Str("text", p.Text()).Msg("run")
	}
}

// RunAt is like Run, but op acts directly on the term at index i.
func (p *Prakriya) RunAt(rule Rule, i int, op func(*Term)) {
	p.Set(i, op)
	p.snapshot(rule)
}

// Step records rule as having fired, for use when the mutation already
// happened via a lower-level helper (e.g. Set called directly).
func (p *Prakriya) Step(rule Rule) {
	p.snapshot(rule)
}

// Debug appends a labelled marker to history with no semantic effect.
func (p *Prakriya) Debug(msg string) {
	p.history = append(p.history, HistoryEntry{Debug: msg})
}

// AddTagAt is a one-step helper: add tag to the term at i and record rule.
func (p *Prakriya) AddTagAt(rule Rule, i int, tag Tag) {
	p.RunAt(rule, i, func(t *Term) { t.AddTag(tag) })
}

// OptionalRun consults the optional-decision stream (§4.7): if the next
// decision (replayed from config.RuleChoicesPrefix, or defaulted to
// Accept beyond it) is Accept, f runs and the choice is recorded before
// any state change (§3.2 invariant 3); if Decline, only the decline
// entry is recorded. Returns whether f ran.
func (p *Prakriya) OptionalRun(rule Rule, f func(*Prakriya)) bool {
	decision := Accept
	if p.replayIdx < len(p.config.RuleChoicesPrefix) {
		decision = p.config.RuleChoicesPrefix[p.replayIdx].Decision
	}
	p.replayIdx++

	p.ruleChoices = append(p.ruleChoices, RuleChoice{Rule: rule, Decision: decision})
	if decision == Accept {
		f(p)
		p.snapshot(rule)
		if p.config.LogSteps {
			logx.Default.Debug().Str("rule", rule.String()).Str("decision", "accept").Str("text", p.Text()).Msg("optional_run")
		}
		return true
	}
	if p.config.LogSteps {
		logx.Default.Debug().Str("rule", rule.String()).Str("decision", "decline").Msg("optional_run")
	}
	return false
}

// MaybeSaveSthanivat saves a sthanivat snapshot for every term that
// doesn't already have one. Mirrors `Prakriya::maybe_save_sthanivat` as
// called at the top of the dvitva engine's try_dvitva.
func (p *Prakriya) MaybeSaveSthanivat() {
	for i := range p.terms {
		p.terms[i].MaybeSaveSthanivat()
	}
}
