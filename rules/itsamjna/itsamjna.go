// Package itsamjna strips the it-markers (anubandha) from a term's
// upadesha when it is first added to a Prakriya, and records the
// kit/Nit samjnas those markers confer (1.3.2-1.3.9). Grounded on the
// `it_samjna::run` call sites in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs (dhatu_karya and
// prepare_samasa both depend on it running before any sound rule).
package itsamjna

import "github.com/sanskritgrammar/prakriya"

// accentMarks are control characters with no phonetic value: they are
// dropped from Text but confer no samjna.
var accentMarks = map[byte]bool{'\\': true, '^': true}

// itTag maps a "~"-marked letter to the samjna it confers.
// Only the two samjnas the rest of this module actually consults are
// modeled; every other it letter is still stripped, just untagged.
var itTag = map[byte]prakriya.Tag{
	'k': prakriya.Kit, 'K': prakriya.Kit,
	'N': prakriya.Nit, 'Y': prakriya.Nit,
}

// Run strips the it-markers from the upadesha of the term at index i
// and sets Text to the result, tagging the term Kit/Nit as the marked
// letters require (1.3.2 upadeze 'janunAsika it). Only "~"-marked
// letters are treated as it; an unmarked initial l/S/ku letter
// (1.3.8 lazakvataddhite) is kept.
func Run(p *prakriya.Prakriya, i int) error {
	t := p.Get(i)
	if t == nil {
		return nil
	}
	if t.U == "" {
		return nil
	}

	text, tags := stripItMarkers(t.U)
	p.RunAt(prakriya.S("1.3.9"), i, func(term *prakriya.Term) {
		term.SetText(text)
		term.AddTags(tags)
	})
	return nil
}

// stripItMarkers scans u left to right. A "~" immediately following a
// letter (vowel or consonant) marks that letter as an it: it is dropped from the
// output and, if it carries a samjna this module tracks, a tag is
// emitted. "\" and "^" are bare accent marks and are always dropped.
func stripItMarkers(u string) (string, []prakriya.Tag) {
	var out []byte
	var tags []prakriya.Tag
	for i := 0; i < len(u); i++ {
		c := u[i]
		if accentMarks[c] {
			continue
		}
		if i+1 < len(u) && u[i+1] == '~' {
			if tag, ok := itTag[c]; ok {
				tags = append(tags, tag)
			}
			i++ // also skip the "~" itself
			continue
		}
		out = append(out, c)
	}
	return string(out), tags
}
