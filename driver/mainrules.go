package driver

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/angasya"
	"github.com/sanskritgrammar/prakriya/rules/ardhadhatuka"
	"github.com/sanskritgrammar/prakriya/rules/atidesha"
	"github.com/sanskritgrammar/prakriya/rules/itagama"
	"github.com/sanskritgrammar/prakriya/rules/misc"
	"github.com/sanskritgrammar/prakriya/rules/samasa"
	"github.com/sanskritgrammar/prakriya/rules/samjna"
	"github.com/sanskritgrammar/prakriya/rules/samprasarana"
	"github.com/sanskritgrammar/prakriya/rules/sandhi"
	"github.com/sanskritgrammar/prakriya/rules/svara"
	"github.com/sanskritgrammar/prakriya/rules/tinpratyaya"
	"github.com/sanskritgrammar/prakriya/rules/uttarapade"
	"github.com/sanskritgrammar/prakriya/rules/vikarana"

	"github.com/sanskritgrammar/prakriya/dvitva"
)

// runMainRules applies the rule cluster shared by every derivation
// kind, in the fixed order spec.md §4.6.2 specifies. lakara is nil for
// subantas and for a dhatu's own intermediate sanadi passes.
func runMainRules(p *prakriya.Prakriya, lakara *args.Lakara, isArdhadhatuka bool) error {
	p.Debug("==== Tin-siddhi ====")
	isLitOrAshirlin := lakara != nil && (*lakara == args.Lit || *lakara == args.AshirLin)
	if lakara != nil && isLitOrAshirlin {
		tinpratyaya.TryGeneralSiddhi(p, *lakara)
		tinpratyaya.TrySiddhiForJhi(p, *lakara)
	}

	p.Debug("==== Vikaranas ====")
	var lk args.Lakara
	if lakara != nil {
		lk = *lakara
	}
	ardhadhatuka.RunBeforeVikarana(p, lk, isArdhadhatuka)
	if err := vikarana.Run(p); err != nil {
		return err
	}
	samjna.Run(p)

	if lakara != nil && !isLitOrAshirlin {
		tinpratyaya.TryGeneralSiddhi(p, *lakara)
	}

	angasya.TryAddOrRemoveNit(p)

	p.Debug("==== Dhatu tasks ====")
	angasya.TryPratyayaAdesha(p)
	angasya.TryCinvatForBhaveAndKarmaniPrayoga(p)

	atidesha.RunBeforeItAgama(p)
	itagama.RunBeforeAttva(p)
	samprasarana.RunForDhatuBeforeAtidesha(p)
	atidesha.RunBeforeAttva(p)

	samprasarana.RunForDhatuAfterAtidesha(p)
	ardhadhatuka.RunBeforeDvitva(p)

	itagama.RunAfterAttva(p)
	atidesha.RunAfterAttva(p)

	ardhadhatuka.TryAddAmAgama(p)

	p.Debug("==== Dvitva (dvirvacane 'ci) ====")
	dvitva.TryDvirvacaneAci(p)
	usedDvirvacaneAci := p.FindLastWhere(func(t *prakriya.Term) bool { return t.IsAbhyasta() }) >= 0
	if usedDvirvacaneAci {
		samprasarana.RunForAbhyasa(p)
	}

	if lakara != nil && !isLitOrAshirlin {
		tinpratyaya.TrySiddhiForJhi(p, *lakara)
	}

	uttarapade.Run(p)
	samasa.TrySupLuk(p)
	misc.RunPadAdi(p)

	angasya.MaybeDoJhaAdesha(p)

	sandhi.TrySupSandhiBeforeAngasya(p)
	angasya.RunBeforeDvitva(p)

	ardhadhatuka.TryAaAdeshaForSedhayati(p)

	p.Debug("==== Dvitva (default) ====")
	dvitva.Run(p)
	if !usedDvirvacaneAci {
		samprasarana.RunForAbhyasa(p)
	}

	p.Debug("==== After dvitva ====")
	angasya.RunAfterDvitva(p)
	uttarapade.RunAfterGunaAndBhasya(p)

	sandhi.TrySupSandhiAfterAngasya(p)
	sandhi.RunCommon(p)

	if p.UseSvaras() {
		p.Debug("==== Svaras ====")
		svara.Run(p)
	}

	return nil
}
