// Package supkarya attaches a sup-pratyaya (nominal case ending) to a
// prepared pratipadika, selecting the ending by vibhakti and vacana
// (linga does not affect the choice). Grounded on the `sup_karya::run` call site in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package supkarya

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// baseEndings gives the (vacana-indexed) upadesha for each vibhakti in
// the masculine/feminine a-stem paradigm, the representative case this
// module covers (the full 21-cell sup table is out of scope).
var baseEndings = map[args.Vibhakti][3]string{
	args.V1:          {"su~", "O", "jas"},
	args.V2:          {"am", "O", "Sas"},
	args.V3:          {"wA", "ByAm", "Bis"},
	args.V4:          {"Ne", "ByAm", "Byas"},
	args.V5:          {"Nasi~", "ByAm", "Byas"},
	args.V6:          {"Nas", "os", "Am"},
	args.V7:          {"Ni", "os", "su~"},
	args.VSambodhana: {"su~", "O", "jas"},
}

func vacanaIndex(v args.Vacana) int {
	switch v {
	case args.Dvi:
		return 1
	case args.Bahu:
		return 2
	default:
		return 0
	}
}

// Run adds the sup ending for (vibhakti, vacana) onto the current
// pratipadika; the linga argument is not used.
func Run(p *prakriya.Prakriya, linga args.Linga, vibhakti args.Vibhakti, vacana args.Vacana) {
	row, ok := baseEndings[vibhakti]
	if !ok {
		return
	}
	upadesha := row[vacanaIndex(vacana)]
	t := prakriya.MakeUpadesha(upadesha)
	t.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Sup, prakriya.Vibhakti, vibhakti.AsTag()})
	p.Push(t)
	i := len(p.Terms()) - 1
	itsamjna.Run(p, i)
	p.Step(prakriya.S("4.1.2"))
}
