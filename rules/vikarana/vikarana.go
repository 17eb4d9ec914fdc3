// Package vikarana inserts the vikaraṇa pratyaya (śap, śyan, śnu, etc.;
// yak is not added) between a dhatu and its tin/krt ending, as conditioned by gaṇa
// and lakara. Grounded on the `vikarana::run` /
// `vikarana::try_add_am_pratyaya_for_lit` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package vikarana

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// ganaVikarana gives the default sārvadhātuka vikaraṇa for each gaṇa
// ordinal (1.3.1 ff., bhvādi taking śap and so on), already past
// it-saṃjñā: the traditional upadesha's initial ś/ṇ and final
// consonant it-letters (1.3.3 halantyam, 1.3.8 laśakvataddhite) are
// not tilde-marked in citation spelling, so itsamjna.stripItMarkers
// cannot reduce them on its own; this table stores the post-strip
// surface form directly, the same convention tinpratyaya.endings
// uses for the tin endings.
var ganaVikarana = map[int]string{
	int(args.Bhvadi):    "a",  // Sap
	int(args.Adadi):     "",   // Slu~, vikarana elided (luk)
	int(args.Juhotyadi): "",   // Slu~, vikarana elided (luk)
	int(args.Divadi):    "ya", // Syan
	int(args.Svadi):     "nu", // Snu
	int(args.Tudadi):    "a",  // Sa
	int(args.Rudhadi):   "na", // Snam
	int(args.Tanadi):    "u",  // u
	int(args.Kryadi):    "nA", // SnA
	int(args.Curadi):    "i",  // Ric
}

// Run inserts the vikaraṇa appropriate to the current dhatu's gaṇa
// ahead of its tin/krt ending, when that ending is sārvadhātuka.
// Ārdhadhātuka endings take no vikaraṇa at all in the scope this
// engine covers (a simplification of the far more conditional real
// rule-set).
func Run(p *prakriya.Prakriya) error {
	iLakshana := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsPratyaya() })
	if iLakshana < 0 {
		return nil
	}
	iDhatu := p.FindPrevWhere(iLakshana, func(t *prakriya.Term) bool { return t.IsDhatu() })
	if iDhatu < 0 {
		return nil
	}
	if p.Has(iDhatu+1, func(t *prakriya.Term) bool { return t.IsPratyaya() && !t.IsDhatu() }) && iDhatu+1 != iLakshana {
		// A vikarana has already been inserted (e.g. by a prior pass
		// over an unadi/krt branch); don't double it.
		return nil
	}
	// Ārdhadhātuka endings (a krt affix, a sanadi affix, or the ending
	// of an ārdhadhātuka lakara) take no vikarana.
	last := p.Get(iLakshana)
	if last.HasTag(prakriya.Krt) || last.IsDhatu() {
		return nil
	}
	for l := args.Lat; l <= args.Lrn; l++ {
		if l.IsArdhadhatuka() && last.HasU(l.Code()) {
			return nil
		}
	}

	upadesha, ok := ganaVikarana[p.GanaCode()]
	if !ok {
		return nil
	}
	vik := prakriya.MakeUpadesha(upadesha)
	vik.AddTag(prakriya.Pratyaya)
	p.InsertAfter(iDhatu, vik)
	i := iDhatu + 1
	if err := itsamjna.Run(p, i); err != nil {
		return err
	}
	p.Step(prakriya.S("3.1.68"))
	return nil
}

// TryAddAmPratyayaForLit inserts the "Am"-pratyaya that certain dhatus
// (those needing a periphrastic perfect) take before liṭ, such as
// curādi-gaṇa roots (3.1.35-3.1.40). No representative case is
// modeled; the hook exists for ordering.
func TryAddAmPratyayaForLit(p *prakriya.Prakriya) {}
