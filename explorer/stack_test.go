package explorer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanskritgrammar/prakriya"
)

// binaryChoiceDerive is a minimal derive closure exercising exactly one
// OptionalRun decision, used to check that FindAll discovers both
// branches without the caller hand-rolling path bookkeeping.
func binaryChoiceDerive(p *prakriya.Prakriya) (*prakriya.Prakriya, error) {
	t := prakriya.MakeText("a")
	p.Push(t)
	accepted := p.OptionalRun(prakriya.S("1.1.1"), func(pr *prakriya.Prakriya) {
		pr.Set(0, func(term *prakriya.Term) { term.SetText("b") })
	})
	_ = accepted
	return p, nil
}

func TestFindAllDiscoversBothBranches(t *testing.T) {
	s := New(false, false, false)
	s.FindAll(binaryChoiceDerive)

	var texts []string
	for _, p := range s.Prakriyas() {
		texts = append(texts, p.Text())
	}
	sort.Strings(texts)

	require.Lenf(t, texts, 2, "FindAll results: %v", texts)
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestFindAllDropsAbortedBranchButKeepsSiblings(t *testing.T) {
	derive := func(p *prakriya.Prakriya) (*prakriya.Prakriya, error) {
		t := prakriya.MakeText("a")
		p.Push(t)
		accepted := p.OptionalRun(prakriya.S("1.1.1"), func(pr *prakriya.Prakriya) {
			pr.Set(0, func(term *prakriya.Term) { term.SetText("b") })
		})
		if !accepted {
			return nil, prakriya.Abort(p)
		}
		return p, nil
	}

	s := New(false, false, false)
	s.FindAll(derive)

	results := s.Prakriyas()
	require.Len(t, results, 1, "FindAll should keep only the accepted branch")
	assert.Equal(t, "b", results[0].Text())
}

// TestFindAllExploresEveryCombinationOfChoices checks explorer
// completeness over more than one decision point: with three
// independent binary OptionalRun sites, FindAll must surface all eight
// accept/decline combinations, not just the ones reachable by always
// taking the first branch.
func TestFindAllExploresEveryCombinationOfChoices(t *testing.T) {
	derive := func(p *prakriya.Prakriya) (*prakriya.Prakriya, error) {
		t := prakriya.MakeText("")
		p.Push(t)
		for _, c := range []byte{'a', 'b', 'c'} {
			c := c
			p.OptionalRun(prakriya.S("1.1.1"), func(pr *prakriya.Prakriya) {
				pr.Set(0, func(term *prakriya.Term) { term.PushStr(string(c)) })
			})
		}
		return p, nil
	}

	s := New(false, false, false)
	s.FindAll(derive)

	seen := make(map[string]bool)
	for _, p := range s.Prakriyas() {
		seen[p.Text()] = true
	}
	require.Len(t, seen, 8, "want all 2^3 accept/decline combinations: %v", seen)
}
