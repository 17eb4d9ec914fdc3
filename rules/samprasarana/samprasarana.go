// Package samprasarana replaces a semivowel (y/v/r/l) with its vowel
// counterpart (i/u/f/x) per 6.1.15-6.1.19, for dhatus conditioned on a
// following kit affix and for an abhyasa that needs to match its
// dhatu's samprasarana. Grounded on the
// `samprasarana::run_for_dhatu_before_atidesha` /
// `samprasarana::run_for_dhatu_after_atidesha` /
// `samprasarana::run_for_abhyasa` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package samprasarana

import "github.com/sanskritgrammar/prakriya"

// semivowelToVowel gives the samprasarana substitute for a semivowel.
var semivowelToVowel = map[byte]string{
	'y': "i", 'v': "u", 'r': "f", 'l': "x",
}

func trySamprasarana(p *prakriya.Prakriya, i int, rule prakriya.Rule) bool {
	t := p.Get(i)
	if t == nil {
		return false
	}
	adi, ok := t.Adi()
	if !ok {
		return false
	}
	sub, ok := semivowelToVowel[adi]
	if !ok {
		return false
	}
	p.RunAt(rule, i, func(term *prakriya.Term) { term.SetAdi(sub) })
	return true
}

// RunForDhatuBeforeAtidesha applies samprasarana to a dhatu that is
// kit-conditioned for it ahead of 1.2.x atidesha rules settling (e.g.
// vac -> uc before kta).
func RunForDhatuBeforeAtidesha(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool {
		return t.IsDhatu() && t.HasTagIn([]prakriya.Tag{prakriya.Kit, prakriya.Nit})
	})
	if i < 0 {
		return
	}
	trySamprasarana(p, i, prakriya.S("6.1.15"))
}

// RunForDhatuAfterAtidesha applies the remaining samprasarana cases
// that depend on atidesha having already settled kit-Nit status.
func RunForDhatuAfterAtidesha(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool {
		return t.IsDhatu() && t.HasTag(prakriya.Kit) && !t.HasTag(prakriya.Abhyasta)
	})
	if i < 0 {
		return
	}
	trySamprasarana(p, i, prakriya.S("6.1.16"))
}

// RunForAbhyasa propagates samprasarana from a dhatu to its abhyasa,
// since dvitva copies the dhatu's pre-samprasarana sthanivat form
// (6.1.17 li vyor vA).
func RunForAbhyasa(p *prakriya.Prakriya) {
	iAbhyasa := p.FindFirstWhere(func(t *prakriya.Term) bool { return t.HasTag(prakriya.Abhyasa) })
	if iAbhyasa < 0 {
		return
	}
	iDhatu := p.FindNextWhere(iAbhyasa, func(t *prakriya.Term) bool { return t.IsDhatu() })
	if iDhatu < 0 || !p.Has(iDhatu, func(t *prakriya.Term) bool { return t.HasTag(prakriya.Kit) }) {
		return
	}
	trySamprasarana(p, iAbhyasa, prakriya.S("6.1.17"))
}
