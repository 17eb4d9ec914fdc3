package dvitva

import (
	"strings"

	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/rules/sandhi"
)

// jakshAdi is the small closed list of roots tagged Abhyasta under
// 6.1.6 even before doubling (SPEC_FULL.md §4); they still
// double because the conditions below test "not already having an
// abhyasa" (anabhyasasya, 6.1.8).
var jakshAdi = []string{
	"jakza~", "jAgf", "daridrA", "cakAsf~", "SAsu~", "dIDIN", "vevIN",
}

func markAbhyasta(p *prakriya.Prakriya, iStart, iEnd int) {
	for i := iStart; i <= iEnd; i++ {
		p.Set(i, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	}
}

// isAgamaSkippable reports whether a term should be skipped when
// looking for "the next non-kit affix": it is an agama, kit-tagged, and
// not itself the iṭ-agama (iṭ must remain visible to dvitva).
func isAgamaSkippable(t *prakriya.Term) bool {
	return t.IsAgama() && t.HasTag(prakriya.Kit) && !t.IsItAgama()
}

// tryDvitva performs one of the three doubling cases at dhatu index
// iDhatu, under the given triggering rule. Grounded on
// dvitva.rs::try_dvitva.
func tryDvitva(rule prakriya.Rule, p *prakriya.Prakriya, iDhatu int) bool {
	// Run ac-sandhi first (for div -> dudyUzati, etc.).
	sandhi.RunAntaranga(p)

	p.MaybeSaveSthanivat()
	dhatu := p.Get(iDhatu)
	if dhatu == nil {
		return false
	}
	// Force-save for dhatus consisting of a single vowel.
	if a, ok := dhatu.Adi(); ok && prakriya.Ac.Contains(a) {
		if z, ok := dhatu.Antya(); ok && prakriya.Yan.Contains(z) {
			p.Set(iDhatu, func(t *prakriya.Term) { t.ForceSaveSthanivat() })
		}
	}

	iN := p.FindNextWhere(iDhatu, func(t *prakriya.Term) bool { return !isAgamaSkippable(t) })
	if iN < 0 {
		return false
	}
	dhatu = p.Get(iDhatu)
	next := p.Pratyaya(iN)

	adi, hasAdi := dhatu.Adi()
	isVowelInitial := hasAdi && prakriya.Ac.Contains(adi)

	if isVowelInitial && next.Last().IsPratyaya() && next.Last().HasUIn([]string{"san", "Ric", "yaN", "RiN"}) {
		return caseOneSanadi(rule, p, iDhatu, next)
	} else if dhatu.IsEkac() || (hasAdi && prakriya.Hal.Contains(adi)) {
		return caseTwoConsonantInitial(rule, p, iDhatu)
	}
	return caseThreeVowelInitial(rule, p, iDhatu)
}

// caseOneSanadi handles dvitva for a sanadi-pratyaya following a
// vowel-initial root (§4.5, Case 1).
func caseOneSanadi(rule prakriya.Rule, p *prakriya.Prakriya, iDhatu int, next *prakriya.PratyayaView) bool {
	dhatu := p.Get(iDhatu)

	// Case 1a: special case for Irshya~.
	if dhatu.HasU("Irzya~") && next.First().HasU("iw") {
		iIt := next.Start()
		iPratyaya := next.End()
		done := p.OptionalRun(prakriya.K("6.1.3"), func(p *prakriya.Prakriya) {
			abhyasa := prakriya.MakeText("yi")
			abhyasa.AddTags([]prakriya.Tag{prakriya.Abhyasa, prakriya.FlagIttva})
			p.Set(iDhatu, func(t *prakriya.Term) { t.SetAntya("") })
			p.InsertAfter(iDhatu, abhyasa)
			p.InsertAfter(iDhatu+1, prakriya.MakeText("y"))
			markAbhyasta(p, iDhatu+1, iDhatu+3)
			p.Set(iDhatu, func(t *prakriya.Term) { t.AddTag(prakriya.Dvitva) })
		})
		if !done {
			p.Run(prakriya.Vt("6.1.3.3"), func(p *prakriya.Prakriya) {
				pratyaya := p.Get(iPratyaya)
				abhyasa := prakriya.MakeText(pratyaya.Text)
				abhyasa.AddTags([]prakriya.Tag{prakriya.Abhyasa, prakriya.FlagIttva})
				if abhyasa.HasAdi('s') {
					abhyasa.AddTag(prakriya.FlagSaAdeshadi)
				}
				p.InsertAfter(iIt, abhyasa)
				markAbhyasta(p, iDhatu+2, iDhatu+3)
				p.Set(iDhatu, func(t *prakriya.Term) { t.AddTag(prakriya.Dvitva) })
			})
		}
		return true
	}

	// Case 1b: other dhatus.
	var sb strings.Builder
	for i := range p.Terms() {
		t := p.Get(i)
		if t.IsUpasarga() || t.IsLupta() {
			continue
		}
		if sv := t.Sthanivat(); sv != "" {
			sb.WriteString(sv)
		} else {
			sb.WriteString(t.Text)
		}
	}
	pText := sb.String()
	dhatu = p.Get(iDhatu)

	start, end, ok := FindAbhyasaSpan(pText)
	if !ok {
		return false
	}

	abhyasaText := pText[start : end+1]
	abhyasa := prakriya.MakeText(abhyasaText)
	abhyasa.AddTags([]prakriya.Tag{prakriya.Abhyasa, prakriya.FlagIttva})

	// KV on 6.1.73: tuk-agama does not enter the reduplicate.
	if strings.HasPrefix(abhyasa.Text, "tC") {
		abhyasa.SetAdi("")
	}
	// For shatva in 8.3.
	if abhyasa.HasAdi('s') && !strings.Contains(dhatu.Text, "s") {
		abhyasa.AddTag(prakriya.FlagSaAdeshadi)
	}

	dhatuLen := dhatu.Len()
	p.Set(iDhatu, func(t *prakriya.Term) { t.SetText(pText[:start]) })

	if dhatuLen > start {
		// Case 1b1: abhyasa falls inside the dhatu text.
		iDhatuOld := iDhatu
		beforeAbhyasa := prakriya.MakeText(pText[:start])
		p.InsertBefore(iDhatu, beforeAbhyasa)
		p.InsertBefore(iDhatu+1, abhyasa)
		p.Set(iDhatu+2, func(t *prakriya.Term) { t.SetText(pText[start:dhatuLen]) })

		iAbhyasa := iDhatuOld + 1
		iDhatu2 := iDhatuOld + 2
		p.Set(iDhatu2, func(t *prakriya.Term) {
			if t.HasU("UrRuY") && t.HasAdi('R') {
				t.SetAdi("n")
			}
		})
		p.Step(rule)

		p.AddTagAt(prakriya.S("6.1.4"), iAbhyasa, prakriya.Abhyasa)
		p.Run(prakriya.S("6.1.5"), func(p *prakriya.Prakriya) {
			markAbhyasta(p, iDhatuOld, iDhatu2)
			p.Set(iDhatu2, func(t *prakriya.Term) { t.AddTag(prakriya.Dvitva) })
		})
	} else {
		// Case 1b2: abhyasa falls after the dhatu.
		p.Set(iDhatu, func(t *prakriya.Term) { t.SetText(pText[:start]) })
		p.InsertAfter(iDhatu, abhyasa)
		p.Step(rule)

		p.AddTagAt(prakriya.S("6.1.4"), iDhatu+1, prakriya.Abhyasa)
		p.Run(prakriya.S("6.1.5"), func(p *prakriya.Prakriya) {
			markAbhyasta(p, iDhatu, iDhatu+2)
			p.Set(iDhatu, func(t *prakriya.Term) { t.AddTag(prakriya.Dvitva) })
		})
	}
	return true
}

// caseTwoConsonantInitial handles dvitva for a monosyllabic or
// consonant-initial root (§4.5, Case 2).
func caseTwoConsonantInitial(rule prakriya.Rule, p *prakriya.Prakriya, iDhatu int) bool {
	dhatu := p.Get(iDhatu)
	abhyasa := prakriya.MakeText(dhatu.Sthanivat())

	if strings.HasPrefix(dhatu.Text, "tC") {
		abhyasa.SetAdi("")
	}
	p.InsertBefore(iDhatu, abhyasa)
	p.Step(rule)

	iAbhyasa := iDhatu
	iDhatu2 := iDhatu + 1
	p.AddTagAt(prakriya.S("6.1.4"), iAbhyasa, prakriya.Abhyasa)

	p.Set(iAbhyasa, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	p.Set(iDhatu2, func(t *prakriya.Term) { t.AddTags([]prakriya.Tag{prakriya.Abhyasta, prakriya.Dvitva}) })
	if p.Has(iDhatu2+1, func(t *prakriya.Term) bool { return t.IsNiPratyaya() }) {
		p.Set(iDhatu2+1, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	}
	p.Step(prakriya.S("6.1.5"))
	return true
}

// caseThreeVowelInitial handles dvitva for a vowel-initial (ajadi) root
// (§4.5, Case 3).
func caseThreeVowelInitial(rule prakriya.Rule, p *prakriya.Prakriya, iDhatu int) bool {
	dhatu := p.Get(iDhatu)
	if dhatu.U == "" {
		return false
	}
	third := prakriya.MakeUpadesha(dhatu.U)
	sv := dhatu.Sthanivat()
	if len(sv) > 0 {
		third.SetText(sv[1:])
	} else {
		third.SetText("")
	}

	// 6.1.3 na ndrah samyogadayah.
	for third.IsSamyogadi() {
		if a, ok := third.Adi(); ok && prakriya.Ndr.Contains(a) {
			third.SetAdi("")
		} else {
			break
		}
	}
	third.AddTags([]prakriya.Tag{prakriya.Dhatu})

	abhyasa := prakriya.MakeText(third.Text)
	p.Set(iDhatu, func(t *prakriya.Term) { t.Truncate(abhyasa.Len()) })
	if p.Has(iDhatu, func(t *prakriya.Term) bool { return t.HasU("UrRuY") }) {
		third.SetAdi("n")
	}

	p.InsertAfter(iDhatu, abhyasa)
	p.InsertAfter(iDhatu+1, third)
	p.Step(rule)
	p.AddTagAt(prakriya.S("6.1.4"), iDhatu+1, prakriya.Abhyasa)

	p.Set(iDhatu, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	p.Set(iDhatu+1, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	p.Set(iDhatu+2, func(t *prakriya.Term) { t.AddTags([]prakriya.Tag{prakriya.Abhyasta, prakriya.Dvitva}) })
	if p.Has(iDhatu+3, func(t *prakriya.Term) bool { return t.IsNiPratyaya() }) {
		p.Set(iDhatu+3, func(t *prakriya.Term) { t.AddTag(prakriya.Abhyasta) })
	}
	p.Step(prakriya.S("6.1.5"))
	return true
}

// runAtIndex runs dvitva at dhatu index i, dispatching on the
// lakshana/tag of the next affix (§4.5 "Driver").
func runAtIndex(p *prakriya.Prakriya, i int) bool {
	prakriya.Precondition(p.Has(i, func(t *prakriya.Term) bool { return t.IsDhatu() }), "runAtIndex requires a dhatu at %d", i)

	if p.Has(i, func(t *prakriya.Term) bool { return t.HasUIn(jakshAdi) }) {
		p.AddTagAt(prakriya.S("6.1.6"), i, prakriya.Abhyasta)
	}

	iN := p.FindNextWhere(i, func(t *prakriya.Term) bool { return !isAgamaSkippable(t) })
	if iN < 0 {
		return false
	}
	n := p.Pratyaya(iN)

	if n.HasLakshana("li~w") {
		dhatu := p.Get(i)
		if dhatu.HasU("de\\N") {
			p.RunAt(prakriya.S("7.4.9"), i, func(t *prakriya.Term) { t.SetText("digi") })
		} else {
			tryDvitva(prakriya.S("6.1.8"), p, i)
		}
		return true
	}
	if p.FindNextWhere(i, func(t *prakriya.Term) bool {
		return t.HasUIn([]string{"san", "yaN"}) && !t.HasTag(prakriya.Unadi)
	}) >= 0 {
		tryDvitva(prakriya.S("6.1.9"), p, i)
		return true
	}
	if n.HasTag(prakriya.Slu) {
		tryDvitva(prakriya.S("6.1.10"), p, i)
		return true
	}
	if p.FindNextWhere(i, func(t *prakriya.Term) bool { return t.HasU("caN") }) >= 0 {
		tryDvitva(prakriya.S("6.1.11"), p, i)
		return true
	}
	return true
}

// dvitvaFilter selects dhatus eligible for doubling: not already
// Dvitva, not themselves a pratyaya (to avoid re-doubling sanadi bases
// that are also tagged Dhatu).
func dvitvaFilter(t *prakriya.Term) bool {
	return t.IsDhatu() && !t.HasTagIn([]prakriya.Tag{prakriya.Dvitva, prakriya.Pratyaya})
}

// TryDvirvacaneAci runs dvitva only when the pratyaya that triggers it
// begins with a vowel (rule 1.1.59, dvirvacane 'ci). Loop guard aborts
// after 10 iterations as a correctness alarm (§4.5.2), not a production
// fallback.
func TryDvirvacaneAci(p *prakriya.Prakriya) {
	i := p.FindFirstWhere(dvitvaFilter)
	if i < 0 {
		return
	}
	numLoops := 0
	for {
		iN := p.FindNextWhere(i, func(t *prakriya.Term) bool { return !t.IsEmpty() })
		if iN < 0 {
			return
		}
		n := p.Get(iN)
		if (n.HasAdiIn(prakriya.Ac) && !n.IsItAgama()) || n.HasText("Ji") {
			runAtIndex(p, i)
		}

		numLoops++
		if numLoops > 10 {
			panic("dvitva.TryDvirvacaneAci: infinite loop guard tripped")
		}

		next := p.FindNextWhere(i, dvitvaFilter)
		if next < 0 {
			return
		}
		i = next
	}
}

// Run performs the default dvitva pass over every eligible dhatu
// (§4.5.2, second public pass).
func Run(p *prakriya.Prakriya) {
	i := p.FindFirstWhere(dvitvaFilter)
	if i < 0 {
		return
	}
	numLoops := 0
	for {
		runAtIndex(p, i)

		numLoops++
		if numLoops > 10 {
			panic("dvitva.Run: infinite loop guard tripped")
		}

		next := p.FindNextWhere(i, dvitvaFilter)
		if next < 0 {
			return
		}
		i = next
	}
}
