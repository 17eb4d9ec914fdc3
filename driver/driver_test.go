package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanskritgrammar/prakriya"
	"github.com/sanskritgrammar/prakriya/args"
)

func TestDeriveDhatu(t *testing.T) {
	dhatu := args.FromMula(args.NewMula("BU", args.Bhvadi))
	result, err := DeriveDhatu(prakriya.New(), dhatu)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Text())
}

func TestDeriveTinantaLatPrathamaEka(t *testing.T) {
	dhatu := args.FromMula(args.NewMula("BU", args.Bhvadi))
	a := args.NewTinanta(dhatu, args.Lat, args.Kartari, args.Prathama, args.Eka)
	result, err := DeriveTinanta(prakriya.New(), a)
	require.NoError(t, err)
	assert.Equal(t, "Bavati", result.Text())
	assert.NotEmpty(t, result.History())
}

func TestDeriveSubantaBasicPratipadika(t *testing.T) {
	pratipadika := args.NewBasic("rAma")
	a := args.NewSubanta(pratipadika, args.Pum, args.V1, args.Eka)
	result, err := DeriveSubanta(prakriya.New(), a)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Text())
}

func TestBuildTinantaTableCoversAllCells(t *testing.T) {
	dhatu := args.FromMula(args.NewMula("BU", args.Bhvadi))
	table := BuildTinantaTable(dhatu, args.Lat, args.Kartari)
	assert.Len(t, table.Cells, 9) // 3 purusha x 3 vacana
	for key, forms := range table.Cells {
		assert.NotEmptyf(t, forms, "cell %v produced no forms", key)
	}
}
