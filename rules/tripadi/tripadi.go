// Package tripadi applies the strictly-ordered final rule block
// spanning sutras 8.2 through 8.4, where an earlier rule takes
// priority over a later one rather than the utsarga-apavāda relation
// that governs the rest of the sutrapatha (spec.md §4.6.2 notes this
// block runs once, after every other pass, and in fixed order). Only a
// representative slice of word-final sandhi is modeled; full 8.2-8.4
// coverage is out of scope. Grounded on the `tripadi::run` call site in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package tripadi

import "github.com/sanskritgrammar/prakriya"

// visargaSources are the two finals that resolve to visarga before
// pause (8.3.15 kharavasAnayor visarjanIyaH).
var visargaSources = map[byte]bool{'s': true, 'r': true}

// devoice maps a word-final voiced obstruent to its voiceless
// counterpart before pause (8.4.56 vAvasAne, simplified).
var devoice = map[byte]byte{
	'g': 'k', 'j': 'c', 'q': 'w', 'd': 't', 'b': 'p',
	'G': 'K', 'J': 'C', 'Q': 'W', 'D': 'T', 'B': 'P',
}

// Run applies the fixed-order final pass: first clears the transient
// flags dvitva left behind, then resolves the final term's last sound.
func Run(p *prakriya.Prakriya) {
	clearTransientFlags(p)

	n := len(p.Terms())
	if n == 0 {
		return
	}
	i := n - 1
	t := p.Get(i)
	a, ok := t.Antya()
	if !ok {
		return
	}

	if visargaSources[a] {
		p.RunAt(prakriya.S("8.3.15"), i, func(term *prakriya.Term) { term.SetAntya("H") })
		return
	}
	if sub, ok := devoice[a]; ok {
		p.RunAt(prakriya.S("8.4.56"), i, func(term *prakriya.Term) { term.SetAntya(string(sub)) })
	}
}

// clearTransientFlags removes the FlagIttva/FlagSaAdeshadi bookkeeping
// tags dvitva attaches to a freshly built abhyasa; by this point in the
// derivation, every rule that consults them has already run.
func clearTransientFlags(p *prakriya.Prakriya) {
	for i := range p.Terms() {
		p.Set(i, func(t *prakriya.Term) {
			t.RemoveTag(prakriya.FlagIttva)
			t.RemoveTag(prakriya.FlagSaAdeshadi)
		})
	}
}
