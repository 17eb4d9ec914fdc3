// Package misc collects the handful of driver-ordering rules that
// don't belong to any single rule-topic module, mirroring the
// original's own `misc` catch-all. Grounded on the `misc::run_pad_adi`
// call site in original_source/vidyut-prakriya/src/ashtadhyayi.rs.
package misc

import "github.com/sanskritgrammar/prakriya"

// RunPadAdi handles the small set of rules conditioned on the initial
// sound of a pada; none of the padas this engine builds trigger one,
// so this is a no-op hook kept for the driver's ordering contract.
func RunPadAdi(p *prakriya.Prakriya) {}
