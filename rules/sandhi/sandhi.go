// Package sandhi implements the ac-sandhi (vowel euphonic combination)
// rule-topic module, one of the "external collaborators" of C4
// (SPEC_FULL.md §1): a pure mutator over a Prakriya. Out of scope per
// spec.md is full sutra-by-sutra sandhi coverage (6.1.66-101 and
// 8.2-8.4 territory); what's specified here is the subset the driver's
// ordering contract in §4.6.2 actually depends on.
//
// Grounded on the `ac_sandhi::run_antaranga` / `try_sup_sandhi_*` /
// `run_common` call sites in original_source/vidyut-prakriya/src/ashtadhyayi.rs
// and src/dvitva.rs.
package sandhi

import "github.com/sanskritgrammar/prakriya"

// savarnaPairs collects the handful of similar-vowel (savarna) sandhi
// substitutions the dvitva engine's antaranga pass depends on (e.g.
// div -> dudyUzati needs i+u resolved before the abhyasa span is
// computed).
var savarnaPairs = map[string]string{
	"aa": "A", "ii": "I", "uu": "U",
	"a i": "e", "a u": "o",
}

// ecoAyavAyavah gives the 6.1.78 eco 'yavAyAvaH substitute for an
// antya e/o/E/O ahead of any following vowel (e.g. the guNita bhU ->
// bho of bhavati becomes "Bav" once the Sap's "a" follows).
var ecoAyavAyavah = map[byte]string{'e': "ay", 'o': "av", 'E': "Ay", 'O': "Av"}

// gunaVowels are the three guNa-grade vowels 6.1.97 ato guNe conditions
// its pUrva-rUpa elision on.
var gunaVowels = prakriya.NewSet("aeo")

// RunAntaranga performs the "internal" (antaranga) vowel-sandhi pass
// across adjacent term boundaries, ahead of dvitva's abhyasa-span
// computation. This is the simplified, driver-facing slice of what the
// full sutrapatha's ac-sandhi cluster would do across the whole
// derivation; tripadi.Run (rules/tripadi) applies the exhaustive,
// strictly-ordered pass at the very end.
func RunAntaranga(p *prakriya.Prakriya) {
	terms := p.Terms()
	for i := 0; i+1 < len(terms); i++ {
		a, b := &terms[i], &terms[i+1]
		ac, ok1 := a.Antya()
		bc, ok2 := b.Adi()
		if !ok1 || !ok2 {
			continue
		}
		if !prakriya.Ac.Contains(ac) || !prakriya.Ac.Contains(bc) {
			continue
		}
		if (ac == 'a' || ac == 'A') && gunaVowels.Contains(bc) && b.HasTag(prakriya.Pratyaya) {
			// 6.1.97 ato guNe: an anga-final a/A is simply elided before a
			// pratyaya that itself opens on a guNa vowel (a/e/o), rather
			// than undergoing the ordinary savarna-dIrgha merge below --
			// this is what keeps sap's "a" from turning pacanti into the
			// wrong *pacAnti before the Jhi -> anti substitute.
			p.RunAt(prakriya.S("6.1.97"), i, func(t *prakriya.Term) { t.SetAntya("") })
			continue
		}
		key := string(ac) + string(bc)
		if merged, ok := savarnaPairs[key]; ok {
			p.RunAt(prakriya.S("6.1.101"), i, func(t *prakriya.Term) { t.SetAntya(merged) })
			p.Set(i+1, func(t *prakriya.Term) { t.SetAdi("") })
			continue
		}
		if sub, ok := ecoAyavAyavah[ac]; ok {
			p.RunAt(prakriya.S("6.1.78"), i, func(t *prakriya.Term) { t.SetAntya(sub) })
		}
	}
}

// TrySupSandhiBeforeAngasya and TrySupSandhiAfterAngasya bracket the
// aṅgasya rule block (§4.6.2 steps 10 and 12). Sup-sandhi proper (the
// nominal-ending euphonic rules of 6.1.102 ff.) is out of scope in
// detail; these hooks exist so the driver's ordering contract has a
// concrete, testable call site.
func TrySupSandhiBeforeAngasya(p *prakriya.Prakriya) { RunAntaranga(p) }
func TrySupSandhiAfterAngasya(p *prakriya.Prakriya)  { RunAntaranga(p) }

// RunCommon applies the remaining general ac-sandhi rules after dvitva
// and aṅgasya have settled (§4.6.2 step 12, "common ac-sandhi").
func RunCommon(p *prakriya.Prakriya) { RunAntaranga(p) }
