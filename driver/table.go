package driver

import (
	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
	"github.com/sanskritgrammar/prakriya/explorer"
)

// cellKey identifies one paradigm cell.
type cellKey struct {
	Purusha args.Purusha
	Vacana  args.Vacana
}

// TinantaTable holds every cell of a puruṣa x vacana grid, adapted
// from the teacher's row/column inflection-table idiom: one explorer
// run per cell, with duplicate surface forms collapsed.
type TinantaTable struct {
	Cells map[cellKey][]string
}

// BuildTinantaTable derives every (purusha, vacana) cell for dhatu
// under lakara/prayoga, running a fresh explorer per cell so that
// optional-rule variation at one cell can't starve another.
func BuildTinantaTable(dhatu *args.Dhatu, lakara args.Lakara, prayoga args.Prayoga) *TinantaTable {
	table := &TinantaTable{Cells: make(map[cellKey][]string)}
	purushas := []args.Purusha{args.Prathama, args.Madhyama, args.Uttama}
	vacanas := []args.Vacana{args.Eka, args.Dvi, args.Bahu}

	for _, purusha := range purushas {
		for _, vacana := range vacanas {
			a := args.NewTinanta(dhatu, lakara, prayoga, purusha, vacana)
			stack := explorer.New(false, false, false)
			stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
				return DeriveTinanta(seed, a)
			})
			table.Cells[cellKey{purusha, vacana}] = uniqueTexts(stack.Prakriyas())
		}
	}
	return table
}

// SubantaTable holds every (vibhakti, vacana) cell of a nominal
// paradigm for a single liṅga.
type SubantaTable struct {
	Cells map[[2]int][]string // [0]=vibhakti ordinal, [1]=vacana ordinal
}

// BuildSubantaTable derives the full 7x3 sup paradigm (plus
// sambodhana) for pratipadika under linga.
func BuildSubantaTable(pratipadika *args.Pratipadika, linga args.Linga) *SubantaTable {
	table := &SubantaTable{Cells: make(map[[2]int][]string)}
	vibhaktis := []args.Vibhakti{args.V1, args.V2, args.V3, args.V4, args.V5, args.V6, args.V7, args.VSambodhana}
	vacanas := []args.Vacana{args.Eka, args.Dvi, args.Bahu}

	for _, vibhakti := range vibhaktis {
		for _, vacana := range vacanas {
			a := args.NewSubanta(pratipadika, linga, vibhakti, vacana)
			stack := explorer.New(false, false, false)
			stack.FindAll(func(seed *prakriya.Prakriya) (*prakriya.Prakriya, error) {
				return DeriveSubanta(seed, a)
			})
			table.Cells[[2]int{int(vibhakti), int(vacana)}] = uniqueTexts(stack.Prakriyas())
		}
	}
	return table
}

// uniqueTexts collects each prakriya's final text, preserving first-
// seen order and dropping duplicates.
func uniqueTexts(prakriyas []*prakriya.Prakriya) []string {
	seen := make(map[string]bool, len(prakriyas))
	var out []string
	for _, p := range prakriyas {
		text := p.Text()
		if seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
	}
	return out
}
