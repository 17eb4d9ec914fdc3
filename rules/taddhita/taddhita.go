// Package taddhita adds a secondary (taddhita) affix onto a prepared
// pratipadika, and applies the handful of taddhita rules that are
// instead conditioned on a whole samasa. Grounded on the
// `taddhita::run` / `taddhita::run_for_samasas` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package taddhita

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// Run adds the taddhita affix t onto the current pratipadika. Returns
// false if no affix could be attached.
func Run(p *prakriya.Prakriya, t args.Taddhita) bool {
	upadesha := t.Upadesha()
	if upadesha == "" {
		return false
	}
	term := prakriya.MakeUpadesha(upadesha)
	term.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.TaddhitaAffix})
	p.Push(term)
	i := len(p.Terms()) - 1
	if err := itsamjna.Run(p, i); err != nil {
		return false
	}
	p.Step(prakriya.S("4.1.76"))
	return true
}

// RunForSamasas applies the taddhita rules conditioned on the whole
// compound rather than on a single pratipadika (e.g. the optional
// "-Ka" abstraction suffix for certain avyayibhava compounds). No
// representative case is modeled; the hook exists for ordering.
func RunForSamasas(p *prakriya.Prakriya) {}
