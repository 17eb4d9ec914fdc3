// Package atidesha applies the "extended designation" rules that lend
// an affix the kit/Nit behavior of another affix it resembles (e.g.
// 1.2.4 sārvadhātukam apit, 1.2.26 rāl itaḥ), ahead of and after
// iṭ-āgama. Grounded on the `atidesha::run_before_it_agama` /
// `atidesha::run_before_attva` / `atidesha::run_after_attva` call
// sites in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package atidesha

import "github.com/sanskritgrammar/prakriya"

// RunBeforeItAgama looks up the last pratyaya not already tagged Kit
// and returns without changing it: no tag is added and 1.2.4
// sārvadhātukam apit is not applied.
func RunBeforeItAgama(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsPratyaya() && !t.HasTag(prakriya.Kit) })
	if i < 0 {
		return
	}
}

// RunBeforeAttva is a placeholder hook for rules conditioned on an
// as-yet-unresolved iṭ-āgama state; no representative rule is modeled.
func RunBeforeAttva(p *prakriya.Prakriya) {}

// RunAfterAttva marks the dhatu kit when it precedes a liṭ pratyaya
// beginning with a consonant other than "s" (1.2.5, simplified).
func RunAfterAttva(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsDhatu() })
	if i < 0 {
		return
	}
	iN := p.FindNextWhere(i, func(t *prakriya.Term) bool { return t.IsPratyaya() })
	if iN < 0 {
		return
	}
	n := p.Get(iN)
	if n.HasU("li~w") && !n.HasAdi('s') {
		p.AddTagAt(prakriya.S("1.2.5"), i, prakriya.Kit)
	}
}
