// Package angasya implements the aṅga-conditioned rule cluster (6.4,
// 7.3-7.4): guṇa/vr̥ddhi of the aṅga's final vowel, iT/Nit decisions
// that affect which substitute applies, and the jha-ādeśa (Ji -> anti)
// of the ordinary third-person plural. Grounded on the `angasya::*` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package angasya

import "github.com/sanskritgrammar/prakriya"

// TryAddOrRemoveNit is a no-op hook kept for rule ordering: it does not
// tag any sārvadhātuka pratyaya ṅit (1.2.4's apit-sārvadhātuka scope is
// not modeled).
func TryAddOrRemoveNit(p *prakriya.Prakriya) {}

// TryPratyayaAdesha substitutes an abhyasta dhatu's pratyaya where the
// dhatu's own samprasarana state requires a matching affix form. No
// representative case fires in this engine's covered scope.
func TryPratyayaAdesha(p *prakriya.Prakriya) {}

// TryCinvatForBhaveAndKarmaniPrayoga is a no-op hook kept for rule
// ordering: the cin-vat behavior of bhave/karmani prayoga is not
// modeled.
func TryCinvatForBhaveAndKarmaniPrayoga(p *prakriya.Prakriya) {}

// RunBeforeStritva is a no-op hook kept for rule ordering: no aṅga rule
// that settles before a strī-pratyaya (such as 7.3.44) is applied.
func RunBeforeStritva(p *prakriya.Prakriya) {}

// RunBeforeDvitva applies guṇa to the dhatu's final vowel ahead of
// dvitva, for the lakaras where the dhatu is guṇita before doubling
// (7.3.84 sārvadhātukārdhadhātukayoḥ, simplified).
func RunBeforeDvitva(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Kartari) {
		return
	}
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsDhatu() && !t.HasTag(prakriya.Abhyasta) })
	if i < 0 {
		return
	}
	t := p.Get(i)
	if t.HasTag(prakriya.Kit) || t.HasTag(prakriya.Nit) {
		return
	}
	// 1.1.3 iko guNavRddhI treats the hrasva and dIrgha members of each
	// ik vowel alike: I and U guNate the same as i and u.
	guna := map[byte]string{'i': "e", 'I': "e", 'u': "o", 'U': "o", 'f': "ar", 'F': "ar"}
	a, ok := t.Antya()
	if !ok {
		return
	}
	if sub, ok := guna[a]; ok {
		p.RunAt(prakriya.S("7.3.84"), i, func(term *prakriya.Term) { term.SetAntya(sub) })
	}
}

// RunAfterDvitva is a no-op hook kept for rule ordering: no aṅga rule
// conditioned on dvitva (such as abhyasa vowel shortening) is applied.
func RunAfterDvitva(p *prakriya.Prakriya) {}

// MaybeDoJhaAdesha resolves a trailing "Ji" sārvadhātuka placeholder
// that tin_pratyaya.TrySiddhiForJhi's earlier abhyasta-conditioned
// pass left untouched: 7.1.3 jho 'ntaH replaces it with "anti", the
// ordinary sārvadhātuka surface form (e.g. pacanti's anti).
func MaybeDoJhaAdesha(p *prakriya.Prakriya) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.HasText("Ji") })
	if i < 0 {
		return
	}
	p.RunAt(prakriya.S("7.1.3"), i, func(t *prakriya.Term) { t.SetText("anti") })
}
