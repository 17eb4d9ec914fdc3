// Package itagama inserts the iṭ-āgama (augment "i") before an
// ārdhadhātuka pratyaya that begins with a consonant other than y,
// per 7.2.35 ārdhadhātukasyeḍ valādeḥ. Grounded on the
// `it_agama::run_before_attva` / `it_agama::run_after_attva` call sites
// in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package itagama

import "github.com/sanskritgrammar/prakriya"

// valaadi is the "val" pratyahara (all consonants except y): the set
// a pratyaya's initial sound must belong to for 7.2.35 to apply.
var valaadi = prakriya.Hal

func tryAdd(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsDhatu() })
	if i < 0 {
		return
	}
	iN := p.FindNextWhere(i, func(t *prakriya.Term) bool { return t.IsPratyaya() && !t.IsEmpty() })
	if iN < 0 {
		return
	}
	pratyaya := p.Get(iN)
	if pratyaya.HasTag(prakriya.Kit) {
		return
	}
	adi, ok := pratyaya.Adi()
	if !ok || !valaadi.Contains(adi) || adi == 'y' {
		return
	}
	if p.Has(iN, func(t *prakriya.Term) bool { return t.IsItAgama() }) {
		return
	}
	it := prakriya.MakeUpadesha("iw")
	it.AddTag(prakriya.Agama)
	p.InsertBefore(iN, it)
	p.Step(prakriya.S("7.2.35"))
}

// RunBeforeAttva runs the portion of iṭ-āgama insertion that must
// precede the aṭ/āṭ-tva vowel-lengthening pass.
func RunBeforeAttva(p *prakriya.Prakriya) { tryAdd(p) }

// RunAfterAttva is a no-op hook kept for rule ordering: all iṭ-āgama
// insertion happens in RunBeforeAttva.
func RunAfterAttva(p *prakriya.Prakriya) {}
