// Package uttarapade applies the handful of sound changes conditioned
// specifically on the second member (uttarapada) of a compound, both
// ahead of and after the aṅga guṇa/vr̥ddhi pass. Grounded on the
// `uttarapade::run` / `uttarapade::run_after_guna_and_bhasya` call
// sites in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package uttarapade

import "github.com/sanskritgrammar/prakriya"

// Run is a no-op hook kept for rule ordering: it checks for a samasa and
// returns without changing any term (no uttarapada-conditioned
// lengthening, 6.3.1 ff., is applied).
func Run(p *prakriya.Prakriya) {
	if !p.HasTag(prakriya.Samasa) {
		return
	}
}

// RunAfterGunaAndBhasya is a no-op hook kept for rule ordering: no
// uttarapada rule conditioned on the aṅga's guṇa/vr̥ddhi or bhasya
// status is applied.
func RunAfterGunaAndBhasya(p *prakriya.Prakriya) {}
