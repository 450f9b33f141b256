package expand

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Tile replicates uc over an integer repetition grid, one entry per
// periodic axis. The sign pattern of reps selects the boundary mode:
//
//   - all entries positive: open tiling — a bond whose destination cell
//     falls outside the grid is dropped entirely (truncated boundary), and
//     the resulting lattice is finite (no lattice vectors);
//   - all entries negative: periodic tiling — out-of-range destination
//     cells wrap modulo |reps[d]| and the wraparound count becomes the new
//     bond's crossing offset; the lattice's vectors are the cell's vectors
//     scaled by |reps[d]|;
//   - mixed signs: semiperiodic — negative axes wrap, positive axes
//     truncate, and the new bonds' wrap vectors carry one component per
//     periodic axis only.
//
// Site indexing is row-major: site(cell, α) = basisSize·flat(cell) + α,
// 1-based, and every site records its originating basis index for later
// reduction back to the generating cell.
//
// Returns ErrDimension for periodicity outside {1,2,3} and ErrRepetitions
// for an empty vector, a zero entry, or a length mismatch; nothing is
// allocated or mutated before validation passes.
// Complexity: O(cells·(basis+bonds)) time and memory.
func Tile(uc *lattice.Unitcell, reps []int) (*lattice.Lattice, error) {
	d := uc.Periodicity()
	if d < 1 || d > 3 {
		return nil, fmt.Errorf("%w: periodicity %d", ErrDimension, d)
	}
	if len(reps) != d {
		return nil, fmt.Errorf("%w: got %d entries for a %d-periodic cell", ErrRepetitions, len(reps), d)
	}
	for _, r := range reps {
		if r == 0 {
			return nil, fmt.Errorf("%w: zero entry in %v", ErrRepetitions, reps)
		}
	}

	sizes := make([]int, d)
	periodic := make([]bool, d)
	for ax, r := range reps {
		if r < 0 {
			periodic[ax] = true
			sizes[ax] = -r
		} else {
			sizes[ax] = r
		}
	}
	total := 1
	for _, s := range sizes {
		total *= s
	}

	basis := uc.Basis()
	vectors := uc.LatticeVectors()
	nb := len(basis)

	// Sites: absolute position plus originating basis index, row-major.
	positions := make([][]float64, 0, total*nb)
	posIdx := make([]int, 0, total*nb)
	cell := make([]int, d)
	for flat := 0; flat < total; flat++ {
		decodeCell(flat, sizes, cell)
		for alpha := 0; alpha < nb; alpha++ {
			pos := append([]float64(nil), basis[alpha]...)
			for ax := 0; ax < d; ax++ {
				axpy(pos, float64(cell[ax]), vectors[ax])
			}
			positions = append(positions, pos)
			posIdx = append(posIdx, alpha+1)
		}
	}

	// Bonds: fold each intra-cell bond's wrap into the destination cell
	// coordinate, truncating on open axes and wrapping on periodic ones.
	ucBonds := uc.Bonds()
	bonds := make([]lattice.Bond, 0, total*len(ucBonds))
	dest := make([]int, d)
	nPeriodic := 0
	for _, p := range periodic {
		if p {
			nPeriodic++
		}
	}
	for flat := 0; flat < total; flat++ {
		decodeCell(flat, sizes, cell)
	nextBond:
		for _, b := range ucBonds {
			wrap := make([]int, 0, nPeriodic)
			for ax := 0; ax < d; ax++ {
				target := cell[ax] + wrapComponent(b.Wrap, ax)
				if periodic[ax] {
					off := floorDiv(target, sizes[ax])
					dest[ax] = target - off*sizes[ax]
					wrap = append(wrap, off)
					continue
				}
				if target < 0 || target >= sizes[ax] {
					continue nextBond
				}
				dest[ax] = target
			}
			bonds = append(bonds, lattice.Bond{
				From:     nb*flat + b.From,
				To:       nb*encodeCell(dest, sizes) + b.To,
				Strength: b.Strength,
				Wrap:     wrap,
			})
		}
	}

	// The tiled lattice's own periodicity: scaled vectors for the periodic
	// axes, in axis order; none for a fully open tiling.
	var newVectors [][]float64
	for ax := 0; ax < d; ax++ {
		if !periodic[ax] {
			continue
		}
		v := append([]float64(nil), vectors[ax]...)
		scale(v, float64(sizes[ax]))
		newVectors = append(newVectors, v)
	}

	return lattice.NewLattice(uc, reps, newVectors, positions, posIdx, bonds), nil
}

// TilePeriodic tiles uc with every axis periodic regardless of the signs
// of reps (entries are forced negative). TilePeriodic(uc, [1,1,...]) is
// the single-cell reduction consumed by Bloch analysis.
func TilePeriodic(uc *lattice.Unitcell, reps []int) (*lattice.Lattice, error) {
	forced := make([]int, len(reps))
	for i, r := range reps {
		if r > 0 {
			r = -r
		}
		forced[i] = r
	}

	return Tile(uc, forced)
}

// decodeCell writes the row-major (last axis fastest) coordinates of flat
// into cell.
func decodeCell(flat int, sizes, cell []int) {
	for ax := len(sizes) - 1; ax >= 0; ax-- {
		cell[ax] = flat % sizes[ax]
		flat /= sizes[ax]
	}
}

// encodeCell is the inverse of decodeCell.
func encodeCell(cell, sizes []int) int {
	flat := 0
	for ax := 0; ax < len(sizes); ax++ {
		flat = flat*sizes[ax] + cell[ax]
	}

	return flat
}

// wrapComponent returns w[ax], treating a short wrap as zero-padded.
func wrapComponent(w []int, ax int) int {
	if ax >= len(w) {
		return 0
	}

	return w[ax]
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}

	return q
}

// axpy adds s·v into dst element-wise.
func axpy(dst []float64, s float64, v []float64) {
	for i := range dst {
		if i < len(v) {
			dst[i] += s * v[i]
		}
	}
}

// scale multiplies v by s element-wise.
func scale(v []float64, s float64) {
	for i := range v {
		v[i] *= s
	}
}
