package driver

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/explorer"
	"github.com/sanskritgrammar/prakriya/rules/angasya"
	"github.com/sanskritgrammar/prakriya/rules/pratipadikakarya"
	"github.com/sanskritgrammar/prakriya/rules/samasa"
	"github.com/sanskritgrammar/prakriya/rules/samjna"
	"github.com/sanskritgrammar/prakriya/rules/stritva"
	"github.com/sanskritgrammar/prakriya/rules/supkarya"
	"github.com/sanskritgrammar/prakriya/rules/tinpratyaya"
	"github.com/sanskritgrammar/prakriya/rules/tripadi"
)

// DeriveDhatu derives a single dhatu, with no pratyaya attached.
func DeriveDhatu(p *prakriya.Prakriya, a *args.Dhatu) (*prakriya.Prakriya, error) {
	if err := prepareDhatu(p, a, false); err != nil {
		return nil, err
	}
	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveTinanta derives a single finite verb form.
func DeriveTinanta(p *prakriya.Prakriya, a *args.Tinanta) (*prakriya.Prakriya, error) {
	prayoga, lakara, purusha, vacana := a.Prayoga(), a.Lakara(), a.Purusha(), a.Vacana()
	p.AddTags([]prakriya.Tag{prayoga.AsTag(), purusha.AsTag(), vacana.AsTag()})
	p.SetLakara(lakara.Code())

	isArdhadhatuka := lakara.IsArdhadhatuka()
	if prayoga != args.Kartari {
		isArdhadhatuka = true
	}

	if err := prepareDhatu(p, a.Dhatu(), isArdhadhatuka); err != nil {
		return nil, err
	}
	addLakaraAndDecidePada(p, lakara)
	tinpratyaya.Adesha(p, purusha, vacana)
	samjna.Run(p)
	if err := runMainRules(p, &lakara, isArdhadhatuka); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveSubanta derives a single nominal form.
func DeriveSubanta(p *prakriya.Prakriya, a *args.Subanta) (*prakriya.Prakriya, error) {
	if err := preparePratipadika(p, a.Pratipadika()); err != nil {
		return nil, err
	}

	p.AddTag(a.Linga().AsTag())
	pratipadikakarya.RunNapumsakaRules(p)

	supkarya.Run(p, a.Linga(), a.Vibhakti(), a.Vacana())
	samjna.Run(p)

	samasa.RunRulesForAvyayibhava(p)

	angasya.RunBeforeStritva(p)
	stritva.Run(p)

	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveKrdanta derives a single primary (krt) derivative.
func DeriveKrdanta(p *prakriya.Prakriya, a *args.Krdanta) (*prakriya.Prakriya, error) {
	if err := prepareKrdanta(p, a); err != nil {
		return nil, err
	}
	if err := runMainRules(p, nil, true); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveTaddhitanta derives a single secondary (taddhita) derivative.
func DeriveTaddhitanta(p *prakriya.Prakriya, a *args.Taddhitanta) (*prakriya.Prakriya, error) {
	if err := prepareTaddhitanta(p, a); err != nil {
		return nil, err
	}
	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveStryanta derives the feminine (stri) form of a pratipadika.
func DeriveStryanta(p *prakriya.Prakriya, pr *args.Pratipadika) (*prakriya.Prakriya, error) {
	if err := preparePratipadika(p, pr); err != nil {
		return nil, err
	}
	p.AddTag(prakriya.Stri)
	stritva.Run(p)
	samjna.Run(p)
	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveSamasa derives a single compound.
func DeriveSamasa(p *prakriya.Prakriya, a *args.Samasa) (*prakriya.Prakriya, error) {
	if err := prepareSamasa(p, a); err != nil {
		return nil, err
	}

	if a.SamasaType() == args.Avyayibhava {
		samjna.Run(p)
		samasa.RunRulesForAvyayibhava(p)
	}

	samjna.TryDecidePratipadika(p)

	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}

// DeriveVakya derives a full sentence by deriving each pada
// independently (picking the first successful variant via a nested
// explorer for subantas/tinantas) and joining the results, then
// running the shared main-rule pass once over the whole sequence for
// inter-pada sandhi.
func DeriveVakya(p *prakriya.Prakriya, padas []args.Pada) (*prakriya.Prakriya, error) {
	for _, pada := range padas {
		switch {
		case pada.Subanta != nil:
			s := pada.Subanta
			stack := explorer.New(false, false, false)
			stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) { return DeriveSubanta(seed, s) })
			if results := stack.Prakriyas(); len(results) > 0 {
				p.Extend(results[0].Terms())
			}
		case pada.Tinanta != nil:
			t := pada.Tinanta
			stack := explorer.New(false, false, false)
			stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) { return DeriveTinanta(seed, t) })
			if results := stack.Prakriyas(); len(results) > 0 {
				p.Extend(results[0].Terms())
			}
		case pada.Dummy != nil:
			term := prakriya.MakeUpadesha(*pada.Dummy)
			term.AddTag(prakriya.Pada)
			p.Push(term)
		case pada.Nipata != nil:
			term := prakriya.MakeUpadesha(*pada.Nipata)
			term.AddTags([]prakriya.Tag{prakriya.Pada, prakriya.Avyaya, prakriya.Nipata})
			if term.HasAntya('N') || term.HasAntya('Y') {
				term.SetAntya("")
			}
			p.Push(term)
		}
	}

	samjna.TryPragrhyaRules(p)
	if err := runMainRules(p, nil, false); err != nil {
		return nil, err
	}
	tripadi.Run(p)
	return p, nil
}
