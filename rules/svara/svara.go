// Package svara assigns accent (udātta/anudātta/svarita) to the final
// derivation, when the caller has opted into accent tracking. Grounded
// on the `svara::run` call site in
// original_source/vidyut-prakriya/src/ashtadhyayi.rs; out of scope in
// spec.md's own §2 core, so this is a no-op left as a hook for the
// driver's ordering contract and for config.UseSvaras to gate.
package svara

import "github.com/sanskritgrammar/prakriya"

// Run is a no-op: accent assignment is out of scope for this engine.
func Run(p *prakriya.Prakriya) {}
