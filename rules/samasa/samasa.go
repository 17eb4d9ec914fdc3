// Package samasa joins a sequence of prepared pada terms into a single
// compound pratipadika, dropping every member's own sup ending except
// the last. Grounded on the `samasa::run` /
// `samasa::run_rules_for_avyayibhava` / `samasa::try_sup_luk` call
// sites in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package samasa

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
)

// Run drops the sup-pratyaya of every pada but the last (2.4.71
// supo dhātuprātipadikayoḥ) and tags the whole span Samasa. Returns
// false if fewer than two padas are present.
func Run(p *prakriya.Prakriya, a *args.Samasa) bool {
	if len(a.Padas()) < 2 {
		return false
	}
	supIdx := []int{}
	for i := range p.Terms() {
		if p.Has(i, func(t *prakriya.Term) bool { return t.HasTag(prakriya.Sup) }) {
			supIdx = append(supIdx, i)
		}
	}
	// The last pada's sup was already popped by the caller, so every sup
	// still present belongs to an earlier pada: remove them all, highest
	// index first so earlier indices stay valid.
	for k := len(supIdx) - 1; k >= 0; k-- {
		p.RemoveAt(supIdx[k])
	}
	n := len(p.Terms())
	if n == 0 {
		return false
	}
	p.AddTagAt(prakriya.S("2.1.3"), n-1, prakriya.Samasa)
	p.AddTag(prakriya.Samasa)
	return true
}

// RunRulesForAvyayibhava marks an avyayibhava compound as an avyaya
// (indeclinable), per 2.4.18 avyayIbhAvazca.
func RunRulesForAvyayibhava(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Samasa) {
		return
	}
	n := len(p.Terms())
	if n == 0 {
		return
	}
	p.AddTagAt(prakriya.S("2.4.18"), n-1, prakriya.Avyaya)
}

// TrySupLuk elides the compound's own final sup ending in a tripadi
// context that requires a bare stem (7.1.23 svamor napuMsakAt, used
// by samasa-conditioned avyaya forms).
func TrySupLuk(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Avyaya) {
		return
	}
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.HasTag(prakriya.Sup) })
	if i < 0 {
		return
	}
	p.RunAt(prakriya.S("7.1.23"), i, func(t *prakriya.Term) { t.SetText("") })
	p.AddTagAt(prakriya.S("7.1.23"), i, prakriya.Lupta)
}
