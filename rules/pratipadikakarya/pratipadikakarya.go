// Package pratipadikakarya handles the basic-pratipadika leaf case
// (pushing a bare nominal stem term) and the napumsaka-specific
// follow-up rules a neuter stem needs before sup is attached. Grounded
// on the `pratipadika_karya::add_basic` /
// `pratipadika_karya::run_napumsaka_rules` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package pratipadikakarya

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
)

// AddBasic pushes basic as a Pratipadika term.
func AddBasic(p *prakriya.Prakriya, basic *args.BasicPratipadika) {
	t := prakriya.MakeText(basic.Text)
	t.AddTag(prakriya.Pratipadika)
	p.Push(t)
}

// RunNapumsakaRules handles a neuter stem (7.1.72 ff., simplified to a
// single case): a final "n" of the last pratipadika is dropped whatever
// sup follows, and a final "as" is left as it is. The step is recorded
// for every neuter stem, whether or not the text changed.
func RunNapumsakaRules(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Napumsaka) {
		return
	}
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.HasTag(prakriya.Pratipadika) })
	if i < 0 {
		return
	}
	p.Set(i, func(t *prakriya.Term) {
		if t.HasAntya('n') {
			t.Truncate(1)
		}
	})
	p.Step(prakriya.S("7.1.72"))
}
