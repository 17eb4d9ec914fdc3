// Package lakarya attaches a lakara's tin-lakshana placeholder to a
// prepared dhatu, ahead of pada decision and vikarana insertion.
// Grounded on the `la_karya::run` call site in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package lakarya

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
)

// Run pushes a placeholder tin-lakshana term carrying lakara's code,
// which tin_pratyaya.Adesha later replaces with a concrete ending.
func Run(p *prakriya.Prakriya, lakara args.Lakara) {
	t := prakriya.MakeUpadesha(lakara.Code())
	t.AddTags([]prakriya.Tag{prakriya.Pratyaya})
	p.Push(t)
	p.Step(prakriya.S("3.4.77"))
}
