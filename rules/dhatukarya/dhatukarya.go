// Package dhatukarya adds a dhatu term to a Prakriya and performs the
// immediate follow-up bookkeeping a freshly-added root needs: upasarga
// prefixing, the R-initial-sound substitution, and it-marker stripping.
// Grounded on the `dhatu_karya::run` / `dhatu_karya::try_add_prefixes`
// call sites in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package dhatukarya

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// Run adds m as a dhatu term and strips its it-markers.
func Run(p *prakriya.Prakriya, m *args.MulaDhatu) error {
	t := prakriya.MakeUpadesha(m.Upadesha)
	t.AddTag(prakriya.Dhatu)
	p.Push(t)
	p.SetGana(int(m.Gana))
	i := len(p.Terms()) - 1

	// 6.4.163 initial R becomes n (RI, RU, etc.); represented here as
	// the general-case substitution. An initial z is left unchanged.
	if p.Has(i, func(term *prakriya.Term) bool { return term.HasAdi('R') }) {
		p.RunAt(prakriya.S("6.4.163"), i, func(term *prakriya.Term) { term.SetAdi("n") })
	}

	return itsamjna.Run(p, i)
}

// TryAddPrefixes pushes each upasarga/prefix in prefixes ahead of the
// dhatu that dhatu_karya.Run already added, tagging each as Upasarga.
func TryAddPrefixes(p *prakriya.Prakriya, prefixes []string) {
	if len(prefixes) == 0 {
		return
	}
	iDhatu := p.FindFirstWhere(func(t *prakriya.Term) bool { return t.IsDhatu() })
	if iDhatu < 0 {
		iDhatu = len(p.Terms())
	}
	for j, prefix := range prefixes {
		term := prakriya.MakeText(prefix)
		term.AddTags([]prakriya.Tag{prakriya.Upasarga, prakriya.Avyaya})
		p.InsertBefore(iDhatu+j, term)
	}
	p.Step(prakriya.S("1.4.58"))
}

// namadhatuSuffix is the productive kyac-style suffix a namadhatu takes
// once its nominal base has lost its own inflection (simplified per
// SPEC_FULL.md §4's "out-of-scope but interface-specified" contract).
const namadhatuSuffix = "kyac"
