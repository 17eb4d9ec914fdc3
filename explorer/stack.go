// Package explorer implements the optional-rule exploration engine
// (spec.md §4.7, "PrakriyaStack"): given a derivation closure that may
// decline at any OptionalRun site, it restarts the derivation from
// every seeded decision-path variant reachable by flipping the last
// decision of a declined (or completed) run, until every branch has
// been tried. Grounded on
// original_source/vidyut-prakriya/src/core/prakriya_stack.rs.
package explorer

import "github.com/sanskritgrammar/prakriya"

// Stack drives the explorer. It holds the frontier of untried decision
// paths and the completed prakriyas found so far.
type Stack struct {
	logSteps   bool
	isChandasi bool
	useSvaras  bool

	prakriyas []*prakriya.Prakriya
	paths     [][]prakriya.RuleChoice
}

// New creates an explorer seeded with a single empty decision path.
func New(logSteps, isChandasi, useSvaras bool) *Stack {
	s := &Stack{logSteps: logSteps, isChandasi: isChandasi, useSvaras: useSvaras}
	s.paths = [][]prakriya.RuleChoice{{}}
	return s
}

// newPrakriya seeds a fresh Prakriya configured to replay choices at
// every future OptionalRun call.
func (s *Stack) newPrakriya(choices []prakriya.RuleChoice) *prakriya.Prakriya {
	return prakriya.WithConfig(prakriya.Config{
		LogSteps:          s.logSteps,
		IsChandasi:        s.isChandasi,
		UseSvaras:         s.useSvaras,
		RuleChoicesPrefix: choices,
	})
}

// popPath removes and returns the last (most recently pushed) path, or
// ok=false if the frontier is empty.
func (s *Stack) popPath() ([]prakriya.RuleChoice, bool) {
	n := len(s.paths)
	if n == 0 {
		return nil, false
	}
	path := s.paths[n-1]
	s.paths = s.paths[:n-1]
	return path, true
}

// addNewPaths generates every new candidate path reachable from
// choices by flipping the decision at each split point at or after
// offset (the length of the path that seeded this run), then pushes
// them onto the frontier. This is the exact path-flip algorithm of the
// original engine: for index i from offset to len(choices)-1, clone
// choices[:i+1] and flip its last element.
func (s *Stack) addNewPaths(initialChoices []prakriya.RuleChoice, choices []prakriya.RuleChoice) {
	offset := len(initialChoices)
	for i := offset; i < len(choices); i++ {
		candidate := append([]prakriya.RuleChoice(nil), choices[:i+1]...)
		candidate[len(candidate)-1] = candidate[len(candidate)-1].Flipped()
		s.paths = append(s.paths, candidate)
	}
}

// FindAll exhaustively runs derive over every reachable decision path.
// On success, the resulting prakriya is kept and its full choice
// vector is used to seed new sibling paths; on an AbortError, only new
// sibling paths are generated (the incomplete derivation itself is
// discarded) — mirroring `Error::Abort(choices)` in the original.
// Any other error terminates exploration of that branch without
// retrying it.
func (s *Stack) FindAll(derive func(*prakriya.Prakriya) (*prakriya.Prakriya, error)) {
	for {
		initial, ok := s.popPath()
		if !ok {
			return
		}

		p := s.newPrakriya(initial)
		result, err := derive(p)
		if err == nil {
			s.addNewPaths(initial, result.RuleChoices())
			s.prakriyas = append(s.prakriyas, result)
			continue
		}
		if choices, isAbort := prakriya.AsAbort(err); isAbort {
			s.addNewPaths(initial, choices)
		}
	}
}

// Prakriyas returns every completed derivation found, consuming them
// from the stack.
func (s *Stack) Prakriyas() []*prakriya.Prakriya {
	out := s.prakriyas
	s.prakriyas = nil
	return out
}
