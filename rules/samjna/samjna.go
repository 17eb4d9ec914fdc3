// Package samjna assigns the pada samjna that later rule packages
// condition on (aṅga and bha are not assigned), marks pragrhya finals,
// and decides when a sequence of
// terms should be recognized as a single pratipadika. Grounded on the
// `samjna::run` / `samjna::try_decide_pratipadika` /
// `samjna::try_pragrhya_rules` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package samjna

import "github.com/sanskritgrammar/prakriya"

// Run assigns Pada to the last term that is tagged Vibhakti or
// Pratyaya (a sup or tin ending), matching the coarse scope the driver
// actually depends on (1.4.14 suptiṅantaṃ padam); no other term is
// tagged.
func Run(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool {
		return t.HasTag(prakriya.Vibhakti) || t.HasTag(prakriya.Pratyaya)
	})
	if i < 0 {
		return
	}
	p.AddTagAt(prakriya.S("1.4.14"), i, prakriya.Pada)
}

// TryDecidePratipadika tags the final term Pratipadika once it is no
// longer itself a dhatu or bare pratyaya stub (1.2.45 arthavad
// adhatur apratyayaḥ prātipadikam).
func TryDecidePratipadika(p *prakriya.Prakriya) {
	n := len(p.Terms())
	if n == 0 {
		return
	}
	i := n - 1
	if p.Has(i, func(t *prakriya.Term) bool { return t.IsDhatu() || t.HasTag(prakriya.Vibhakti) }) {
		return
	}
	p.AddTagAt(prakriya.S("1.2.45"), i, prakriya.Pratipadika)
}

// TryPragrhyaRules marks a final term pragrhya (exempt from sandhi)
// when it ends in the dual-number "I"/"U"/"e" (1.1.11 ff.); used by
// derive_vakya ahead of inter-pada sandhi.
func TryPragrhyaRules(p *prakriya.Prakriya) {
	n := len(p.Terms())
	if n == 0 {
		return
	}
	i := n - 1
	t := p.Get(i)
	if a, ok := t.Antya(); ok && (a == 'I' || a == 'U' || a == 'e') {
		p.AddTagAt(prakriya.S("1.1.11"), i, prakriya.Pragrhya)
	}
}
