// Package tinpratyaya resolves a tiṅ-lakshana placeholder into the
// concrete verb ending selected by puruṣa and vacana, and runs the
// liṭ/āśīrliṅ-specific siddhi passes the driver defers to before the
// general vikaraṇa pass. Grounded on the
// `tin_pratyaya::try_general_siddhi` / `tin_pratyaya::try_siddhi_for_jhi`
// / `tin_pratyaya::adesha` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package tinpratyaya

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
)

// endings maps (prayoga-neutral purusha, vacana) to the parasmaipada
// tin ending, already past 1.3.3 halantyam / 1.3.4 na vibhaktau
// tusmAH (tip/sip/mip's final p is it and drops; tas/vas/mas/Tas/Ta's
// final t/s/m is exempt and stays); the full 2x3x3x2 table (prayoga x
// purusha x vacana x pada) is out of scope, but this representative
// slice is enough to exercise the driver's ordering contract end to
// end. "Ji" is left as the raw jhi placeholder: angasya.MaybeDoJhaAdesha
// and tinpratyaya.TrySiddhiForJhi resolve its surface form later.
var endings = map[args.Purusha][3]string{
	args.Prathama: {"ti", "tas", "Ji"},
	args.Madhyama: {"si", "Tas", "Ta"},
	args.Uttama:   {"mi", "vas", "mas"},
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

func findLakshana(p *prakriya.Prakriya) int {
	return p.FindLastWhere(func(t *prakriya.Term) bool {
		return t.IsPratyaya() && t.HasAdiIn(prakriya.Set{'l': {}})
	})
}

// Adesha replaces the lakara placeholder with the concrete ending for
// (purusha, vacana).
func Adesha(p *prakriya.Prakriya, purusha args.Purusha, vacana args.Vacana) {
	i := findLakshana(p)
	if i < 0 {
		return
	}
	row, ok := endings[purusha]
	if !ok {
		return
	}
	ending := row[vacanaIndex(vacana)]
	p.RunAt(prakriya.S("3.4.78"), i, func(t *prakriya.Term) {
		t.SetText(ending)
	})
	p.Set(i, func(t *prakriya.Term) { t.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Pada}) })
}

// TryGeneralSiddhi is a no-op hook kept for rule ordering: it applies
// no lakara-conditioned sound change (the dhatu's guna is done by
// angasya.RunBeforeDvitva).
func TryGeneralSiddhi(p *prakriya.Prakriya, lakara args.Lakara) {}

// TrySiddhiForJhi replaces the last "Ji" with "jus" when the term before
// it is abhyasta (3.4.109); the lakara argument is not consulted, so it
// fires in any lakara.
func TrySiddhiForJhi(p *prakriya.Prakriya, lakara args.Lakara) {
	i := p.FindLastWhere(func(t *prakriya.Term) bool { return t.HasText("Ji") })
	if i < 0 {
		return
	}
	if !p.Has(i-1, func(t *prakriya.Term) bool { return t.IsAbhyasta() }) {
		return
	}
	p.RunAt(prakriya.S("3.4.109"), i, func(t *prakriya.Term) { t.SetText("jus") })
}
