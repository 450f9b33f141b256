package latticeio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/expand"
	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/latticeio"
	"github.com/katalvlaran/lvlattice/unitcells"
)

func TestUnitcellRoundTrip(t *testing.T) {
	uc := unitcells.Honeycomb(lattice.Real(1))
	lattice.AddBond(uc, 1, 1, lattice.Symbolic("J2"), lattice.WithWrap(1, 0))

	var buf bytes.Buffer
	require.NoError(t, latticeio.EncodeUnitcell(&buf, uc))

	got, err := latticeio.DecodeUnitcell(&buf)
	require.NoError(t, err)

	require.Equal(t, uc.SiteCount(), got.SiteCount())
	require.Equal(t, uc.LatticeVectors(), got.LatticeVectors())
	require.Equal(t, uc.Basis(), got.Basis())
	require.Equal(t, len(uc.Bonds()), len(got.Bonds()))
	for i, want := range uc.Bonds() {
		b := got.Bonds()[i]
		require.True(t, b.Equal(want), "bond %d: got %+v, want %+v", i, b, want)
		require.Equal(t, want.Strength.IsSymbolic(), b.Strength.IsSymbolic(), "bond %d kind", i)
	}
}

func TestLatticeRoundTrip(t *testing.T) {
	lat, err := expand.Tile(unitcells.Square(lattice.Real(1)), []int{-2, -2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, latticeio.EncodeLattice(&buf, lat))

	got, err := latticeio.DecodeLattice(&buf)
	require.NoError(t, err)

	require.Equal(t, lat.Positions(), got.Positions())
	require.Equal(t, lat.PositionIndices(), got.PositionIndices())
	require.Equal(t, lat.Repetitions(), got.Repetitions())
	require.Equal(t, lat.LatticeVectors(), got.LatticeVectors())
	require.Equal(t, len(lat.Bonds()), len(got.Bonds()))
	for i, want := range lat.Bonds() {
		require.True(t, got.Bonds()[i].Equal(want), "bond %d", i)
	}
	require.Equal(t, lat.Unitcell().Basis(), got.Unitcell().Basis())
}

func TestSaveLoadFiles(t *testing.T) {
	dir := t.TempDir()

	ucPath := filepath.Join(dir, "cell.yaml")
	uc := unitcells.Kagome(lattice.Symbolic("J1"))
	require.NoError(t, latticeio.SaveUnitcell(ucPath, uc))
	loaded, err := latticeio.LoadUnitcell(ucPath)
	require.NoError(t, err)
	require.Equal(t, uc.SiteCount(), loaded.SiteCount())
	require.Equal(t, len(uc.Bonds()), len(loaded.Bonds()))

	latPath := filepath.Join(dir, "lattice.yaml")
	lat, err := expand.Tile(uc, []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, latticeio.SaveLattice(latPath, lat))
	back, err := latticeio.LoadLattice(latPath)
	require.NoError(t, err)
	require.Equal(t, lat.SiteCount(), back.SiteCount())
	require.Equal(t, len(lat.Bonds()), len(back.Bonds()))
}

func TestDecodeErrors(t *testing.T) {
	_, err := latticeio.DecodeUnitcell(strings.NewReader("just a scalar"))
	require.ErrorIs(t, err, latticeio.ErrDecode)

	// A connection whose strength has neither value nor symbol.
	doc := "lattice_vectors: [[1]]\nbasis: [[0]]\nconnections:\n  - from: 1\n    to: 1\n    strength: {}\n    wrap: [1]\n"
	_, err = latticeio.DecodeUnitcell(strings.NewReader(doc))
	require.ErrorIs(t, err, latticeio.ErrDecode)
}
