// Package krt adds a primary (kr̥t) affix onto a prepared dhatu,
// producing a kr̥danta pratipadika. Grounded on the `krt::run` call
// site in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package krt

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// Run adds the krt affix named by a.Krt() onto the current dhatu.
// Returns false (mirroring the original's bool return) if no affix
// could be attached, which the driver treats as an abort.
func Run(p *prakriya.Prakriya, a *args.Krdanta) bool {
	upadesha := a.Krt().Upadesha()
	if upadesha == "" {
		return false
	}
	t := prakriya.MakeUpadesha(upadesha)
	t.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Krt})
	p.Push(t)
	i := len(p.Terms()) - 1
	if err := itsamjna.Run(p, i); err != nil {
		return false
	}
	p.Step(prakriya.S("3.1.91"))
	return true
}
