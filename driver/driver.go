// Package driver implements the fixed-order derivation pipeline
// (spec.md §4.6): the sequence of preparation and main-rule passes that
// turns a typed argument record into a finished Prakriya. Grounded on
// original_source/vidyut-prakriya/src/ashtadhyayi.rs, whose
// prepare_dhatu / prepare_krdanta / prepare_pratipadika /
// prepare_taddhitanta / prepare_samasa / run_main_rules / derive_*
// functions this package ports almost one-to-one.
package driver

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/explorer"
	"github.com/sanskritgrammar/prakriya/rules/ardhadhatuka"
	"github.com/sanskritgrammar/prakriya/rules/atmanepada"
	"github.com/sanskritgrammar/prakriya/rules/dhatukarya"
	"github.com/sanskritgrammar/prakriya/rules/krt"
	"github.com/sanskritgrammar/prakriya/rules/lakarya"
	"github.com/sanskritgrammar/prakriya/rules/linganushasanam"
	"github.com/sanskritgrammar/prakriya/rules/pratipadikakarya"
	"github.com/sanskritgrammar/prakriya/rules/samasa"
	"github.com/sanskritgrammar/prakriya/rules/samjna"
	"github.com/sanskritgrammar/prakriya/rules/sanadi"
	"github.com/sanskritgrammar/prakriya/rules/stritva"
	"github.com/sanskritgrammar/prakriya/rules/taddhita"
	"github.com/sanskritgrammar/prakriya/rules/vikarana"
)

// prepareDhatu adds dhatu to p and runs its immediate follow-up tasks:
// upasarga prefixing, sanādi-pratyaya chaining, and one run_main_rules
// pass per sanādi link (tripadi is deferred until the caller's own
// top-level derive_* function).
func prepareDhatu(p *prakriya.Prakriya, dhatu *args.Dhatu, isArdhadhatuka bool) error {
	switch {
	case dhatu.Mula != nil:
		if err := dhatukarya.Run(p, dhatu.Mula); err != nil {
			return err
		}
	case dhatu.Nama != nil:
		dhatukarya.TryAddPrefixes(p, dhatu.Nama.Prefixes)
		sanadi.TryCreateNamadhatu(p, dhatu.Nama)
		n := len(p.Terms())
		if n == 0 || !p.Has(n-1, func(t *prakriya.Term) bool { return t.IsDhatu() }) {
			return prakriya.Abort(p)
		}
	}

	sanadi.TryAddRequired(p, isArdhadhatuka)
	if n := len(p.Terms()); n > 0 && p.Has(n-1, func(t *prakriya.Term) bool { return t.IsPratyaya() }) {
		samjna.Run(p)
		if err := runMainRules(p, nil, false); err != nil {
			return err
		}
	}

	if dhatu.Mula != nil {
		for _, s := range dhatu.SanadiChain() {
			p.RemoveTag(prakriya.Parasmaipada)
			p.RemoveTag(prakriya.Atmanepada)

			if err := sanadi.TryAddOptional(p, s); err != nil {
				return err
			}
			samjna.Run(p)
			atmanepada.Run(p)
			if err := runMainRules(p, nil, false); err != nil {
				return err
			}
		}
	}

	p.Debug("completed dhatu")
	return nil
}

// prepareKrdanta adds the terms necessary to build a krdanta.
func prepareKrdanta(p *prakriya.Prakriya, a *args.Krdanta) error {
	if artha := a.Artha(); artha != nil {
		p.SetArtha(prakriya.Artha{Kind: "Krt", Value: *artha})
	}

	if up := a.Upapada(); up != nil {
		if err := preparePratipadika(p, up.Pratipadika); err != nil {
			return err
		}
		su := prakriya.MakeText("")
		su.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Vibhakti, prakriya.Sup, prakriya.Pada})
		p.Push(su)
		samjna.Run(p)
	}

	krtAffix := a.Krt()
	if err := prepareDhatu(p, a.Dhatu(), krtAffix.IsArdhadhatuka()); err != nil {
		return err
	}
	if lakara := a.Lakara(); lakara != nil {
		p.AddTag(prakriya.Kartari)
		addLakaraAndDecidePada(p, *lakara)
	}

	if !krt.Run(p, a) {
		return prakriya.Abort(p)
	}

	if a.Upapada() != nil {
		iLast := len(p.Terms()) - 1
		p.AddTagAt(prakriya.S("2.2.19"), iLast, prakriya.Samasa)
	}

	linganushasanam.Run(p)
	stritva.Run(p)
	samjna.Run(p)
	return nil
}

// preparePratipadika dispatches on the pratipadika's tagged-union kind.
// A Krdanta or Taddhitanta variant carrying a `require`d surface form
// is resolved by exploring every optional-rule path with a nested
// explorer.Stack and examining only the first candidate: its terms are
// kept if its text equals the required form, and otherwise the
// derivation aborts, even when a later candidate would match (the loop
// breaks unconditionally after the first candidate; see DESIGN.md).
func preparePratipadika(p *prakriya.Prakriya, pr *args.Pratipadika) error {
	switch {
	case pr.Krdanta != nil && pr.Krdanta.RequireValue() != nil:
		k := pr.Krdanta
		stack := explorer.New(false, false, false)
		stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
			return DeriveKrdanta(seed, krdantaArgsFromPratipadika(k))
		})
		added := false
		want := *k.RequireValue()
		for _, candidate := range stack.Prakriyas() {
			if candidate.Text() == want {
				p.Extend(candidate.Terms())
				added = true
			}
			break
		}
		if !added {
			return prakriya.Abort(p)
		}
	case pr.Taddhitanta != nil && pr.Taddhitanta.RequireValue() != nil:
		t := pr.Taddhitanta
		stack := explorer.New(false, false, false)
		stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
			return DeriveTaddhitanta(seed, taddhitantaArgsFromPratipadika(t))
		})
		added := false
		want := *t.RequireValue()
		for _, candidate := range stack.Prakriyas() {
			if candidate.Text() == want {
				p.Extend(candidate.Terms())
				added = true
			}
			break
		}
		if !added {
			return prakriya.Abort(p)
		}
	case pr.Basic != nil:
		pratipadikakarya.AddBasic(p, pr.Basic)
	case pr.Krdanta != nil:
		if err := prepareKrdanta(p, krdantaArgsFromPratipadika(pr.Krdanta)); err != nil {
			return err
		}
	case pr.Taddhitanta != nil:
		if err := prepareTaddhitanta(p, taddhitantaArgsFromPratipadika(pr.Taddhitanta)); err != nil {
			return err
		}
	case pr.Samasa != nil:
		if err := prepareSamasa(p, samasaArgsFromPratipadika(pr.Samasa)); err != nil {
			return err
		}
	}

	samjna.TryDecidePratipadika(p)
	return nil
}

func krdantaArgsFromPratipadika(k *args.KrdantaPratipadika) *args.Krdanta {
	return &args.Krdanta{DhatuValue: k.Dhatu, KrtValue: k.Krt, LakaraValue: k.Lakara, ArthaValue: k.Artha, UpapadaValue: k.Upapada}
}

func taddhitantaArgsFromPratipadika(t *args.TaddhitantaPratipadika) *args.Taddhitanta {
	return &args.Taddhitanta{PratipadikaValue: t.Base, TaddhitaValue: t.Taddhita, ArthaValue: t.Artha}
}

func samasaArgsFromPratipadika(s *args.SamasaPratipadika) *args.Samasa {
	return &args.Samasa{PadasValue: s.Padas, TypeValue: s.SamasaType, StriValue: s.Stri}
}

// prepareTaddhitanta adds the terms necessary to build a taddhitanta.
func prepareTaddhitanta(p *prakriya.Prakriya, a *args.Taddhitanta) error {
	if err := preparePratipadika(p, a.Pratipadika()); err != nil {
		return err
	}
	samjna.Run(p)

	if artha := a.Artha(); artha != nil {
		p.SetArtha(prakriya.Artha{Kind: "Taddhita", Value: *artha})
	}

	if !taddhita.Run(p, a.Taddhita()) {
		return prakriya.Abort(p)
	}

	linganushasanam.Run(p)
	stritva.Run(p)
	samjna.Run(p)
	return nil
}

// prepareSamasa adds the terms necessary to build a samasa.
func prepareSamasa(p *prakriya.Prakriya, a *args.Samasa) error {
	for _, pada := range a.Padas() {
		if err := preparePratipadika(p, pada.Pratipadika()); err != nil {
			return err
		}
		if pada.IsAvyaya() {
			i := len(p.Terms()) - 1
			p.Set(i, func(t *prakriya.Term) { t.AddTag(prakriya.Avyaya) })
		}
		p.Push(MakeSupPratyaya(pada.Vibhakti()))
	}

	// Remove the trailing sup-pratyaya: the compound as a whole takes
	// only one ending, added later by whichever derive_* call wraps it.
	p.Pop()

	samjna.Run(p)

	if !samasa.Run(p, a) {
		return prakriya.Abort(p)
	}

	pratipadikakarya.RunNapumsakaRules(p)
	taddhita.RunForSamasas(p)

	if a.Stri() {
		p.AddTag(prakriya.Stri)
		stritva.Run(p)
		p.RemoveTag(prakriya.Stri)
	}
	return nil
}

// addLakaraAndDecidePada adds a lakara and settles which pada
// (parasmaipada/atmanepada) the derivation may use.
func addLakaraAndDecidePada(p *prakriya.Prakriya, lakara args.Lakara) {
	lakarya.Run(p, lakara)
	ardhadhatuka.DhatuAdeshaBeforePada(p, lakara)
	atmanepada.Run(p)
	vikarana.TryAddAmPratyayaForLit(p)
}

// MakeSupPratyaya builds the dummy sup-pratyaya a samasa member takes
// before the trailing one is dropped.
func MakeSupPratyaya(vibhakti args.Vibhakti) prakriya.Term {
	u := "su~"
	switch vibhakti {
	case args.V2:
		u = "am"
	case args.V3:
		u = "wA"
	case args.V4:
		u = "Ne"
	case args.V5:
		u = "Nasi~"
	case args.V6:
		u = "Nas"
	case args.V7:
		u = "Ni"
	}
	su := prakriya.MakeUpadesha(u)
	su.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Sup, prakriya.Vibhakti, prakriya.Pada, vibhakti.AsTag()})
	return su
}
