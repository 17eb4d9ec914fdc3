// Package sanadi adds the sanādi-pratyayas (san, Nic, yaN; yak is not added) that
// turn a mula dhatu into a derived root, and builds a nāmadhātu from a
// nominal base. Grounded on the `sanadi::try_create_namadhatu` /
// `sanadi::try_add_required` / `sanadi::try_add_optional` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package sanadi

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/rules/itsamjna"
)

// sanadiUpadesha gives the upadesha form for each optional sanadi.
var sanadiUpadesha = map[args.Sanadi]string{
	args.San: "san",
	args.Nic: "Ric",
	args.Yan: "yaN",
}

// TryCreateNamadhatu builds the nominal-stem + kyac dhatu for a
// nāmadhātu such as putrIyati.
func TryCreateNamadhatu(p *prakriya.Prakriya, n *args.NamaDhatu) {
	if len(n.Prefixes) > 0 {
		for _, prefix := range n.Prefixes {
			term := prakriya.MakeText(prefix)
			term.AddTags([]prakriya.Tag{prakriya.Upasarga, prakriya.Avyaya})
			p.Push(term)
		}
	}
	if n.Base == nil {
		return
	}
	if n.Base.Basic != nil {
		base := prakriya.MakeText(n.Base.Basic.Text)
		base.AddTag(prakriya.Pratipadika)
		p.Push(base)
	}
	suffix := prakriya.MakeUpadesha("kyac")
	suffix.AddTags([]prakriya.Tag{prakriya.Dhatu, prakriya.Pratyaya})
	p.Push(suffix)
	p.Step(prakriya.S("3.1.8"))
}

// TryAddRequired is a no-op hook kept for rule ordering: it adds no
// required sanadi, so a passive derivation gets no yak (rules/vikarana
// does not add one either).
func TryAddRequired(p *prakriya.Prakriya, isArdhadhatuka bool) {}

// TryAddOptional appends the optional sanadi s (san/Nic/yaN) as a new
// pratyaya term over the current last dhatu.
func TryAddOptional(p *prakriya.Prakriya, s args.Sanadi) error {
	u, ok := sanadiUpadesha[s]
	if !ok {
		return nil
	}
	term := prakriya.MakeUpadesha(u)
	term.AddTags([]prakriya.Tag{prakriya.Pratyaya, prakriya.Dhatu})
	p.Push(term)
	i := len(p.Terms()) - 1
	if err := itsamjna.Run(p, i); err != nil {
		return err
	}
	p.Step(prakriya.S("3.1.5"))
	return nil
}
