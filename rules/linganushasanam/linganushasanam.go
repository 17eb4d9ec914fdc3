// Package linganushasanam assigns a default gender to a pratipadika
// that has not otherwise been given one, following the Linganushasana
// appendix's closed-class heuristics (e.g. kr̥t affixes in -a default
// masculine, -twa/-tA abstracts default neuter). Grounded on the
// `linganushasanam::run` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package linganushasanam

import "github.com/sanskritgrammar/prakriya"

// Run tags the final term with a default gender if none of Pum/Stri/
// Napumsaka has been set yet.
func Run(p *prakriya.Prakriya) {
	if p.HasTag(prakriya.Pum) || p.HasTag(prakriya.Stri) || p.HasTag(prakriya.Napumsaka) {
		return
	}
	n := len(p.Terms())
	if n == 0 {
		return
	}
	last := p.Get(n - 1)
	if last.HasU("tva") || last.HasU("tA") {
		p.AddTag(prakriya.Napumsaka)
		return
	}
	p.AddTag(prakriya.Pum)
}
