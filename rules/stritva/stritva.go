// Package stritva adds the strī-pratyaya ṭāp (ṅīp/ṅīṣ/ṅīn are not
// added) that marks a feminine pratipadika, once the Stri prakriya-wide tag has been set
// by linganushasanam or by a caller directly. Grounded on the
// `stritva::run` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package stritva

import "github.com/sanskritgrammar/prakriya"

// Run appends wAp (the default feminine suffix) to the final
// pratipadika if the prakriya is marked Stri and doesn't already end
// in a strī-pratyaya.
func Run(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Stri) {
		return
	}
	n := len(p.Terms())
	if n == 0 {
		return
	}
	last := p.Get(n - 1)
	if last.HasTag(prakriya.Pratyaya) && last.HasAntya('A') {
		return
	}
	suffix := prakriya.MakeUpadesha("wAp")
	suffix.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Stri})
	p.Push(suffix)
	p.Step(prakriya.S("4.1.4"))
}
