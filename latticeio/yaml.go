package latticeio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlattice/lattice"
)

// Wire DTOs. Kept separate from the domain types so the YAML shape can
// stay stable while the in-memory representation evolves.

type strengthDTO struct {
	Re     *float64 `yaml:"re,omitempty"`
	Im     *float64 `yaml:"im,omitempty"`
	Symbol *string  `yaml:"symbol,omitempty"`
}

type bondDTO struct {
	From     int         `yaml:"from"`
	To       int         `yaml:"to"`
	Strength strengthDTO `yaml:"strength"`
	Wrap     []int       `yaml:"wrap,flow"`
}

type unitcellDTO struct {
	LatticeVectors [][]float64 `yaml:"lattice_vectors,flow"`
	Basis          [][]float64 `yaml:"basis,flow"`
	Connections    []bondDTO   `yaml:"connections"`
}

type latticeDTO struct {
	Unitcell         unitcellDTO `yaml:"unitcell"`
	Repetitions      []int       `yaml:"unitcell_repetitions,flow"`
	LatticeVectors   [][]float64 `yaml:"lattice_vectors,flow"`
	Positions        [][]float64 `yaml:"positions,flow"`
	PositionsIndices []int       `yaml:"positions_indices,flow"`
	Connections      []bondDTO   `yaml:"connections"`
}

func strengthToDTO(s lattice.Strength) strengthDTO {
	if s.IsSymbolic() {
		sym := s.String()

		return strengthDTO{Symbol: &sym}
	}
	v, _ := s.Complex()
	re, im := real(v), imag(v)

	return strengthDTO{Re: &re, Im: &im}
}

func strengthFromDTO(d strengthDTO) (lattice.Strength, error) {
	switch {
	case d.Symbol != nil:
		return lattice.Symbolic(*d.Symbol), nil
	case d.Re != nil || d.Im != nil:
		var re, im float64
		if d.Re != nil {
			re = *d.Re
		}
		if d.Im != nil {
			im = *d.Im
		}

		return lattice.Numeric(complex(re, im)), nil
	default:
		return lattice.Strength{}, fmt.Errorf("%w: strength entry has neither value nor symbol", ErrDecode)
	}
}

func bondsToDTO(bs []lattice.Bond) []bondDTO {
	out := make([]bondDTO, len(bs))
	for i, b := range bs {
		out[i] = bondDTO{
			From:     b.From,
			To:       b.To,
			Strength: strengthToDTO(b.Strength),
			Wrap:     append([]int(nil), b.Wrap...),
		}
	}

	return out
}

func bondsFromDTO(ds []bondDTO) ([]lattice.Bond, error) {
	out := make([]lattice.Bond, len(ds))
	for i, d := range ds {
		s, err := strengthFromDTO(d.Strength)
		if err != nil {
			return nil, fmt.Errorf("connection %d: %w", i, err)
		}
		out[i] = lattice.Bond{
			From:     d.From,
			To:       d.To,
			Strength: s,
			Wrap:     append([]int(nil), d.Wrap...),
		}
	}

	return out, nil
}

// EncodeUnitcell writes uc to w as a YAML document.
func EncodeUnitcell(w io.Writer, uc *lattice.Unitcell) error {
	d := unitcellDTO{
		LatticeVectors: uc.LatticeVectors(),
		Basis:          uc.Basis(),
		Connections:    bondsToDTO(uc.Bonds()),
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(&d)
}

// DecodeUnitcell reads a YAML cell document from r.
// Returns ErrDecode for malformed input.
func DecodeUnitcell(r io.Reader) (*lattice.Unitcell, error) {
	var d unitcellDTO
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	bonds, err := bondsFromDTO(d.Connections)
	if err != nil {
		return nil, err
	}

	return lattice.NewUnitcell(d.LatticeVectors, d.Basis, bonds), nil
}

// EncodeLattice writes lat to w as a YAML document, including its cell
// snapshot and provenance fields.
func EncodeLattice(w io.Writer, lat *lattice.Lattice) error {
	uc := lat.Unitcell()
	d := latticeDTO{
		Unitcell: unitcellDTO{
			LatticeVectors: uc.LatticeVectors(),
			Basis:          uc.Basis(),
			Connections:    bondsToDTO(uc.Bonds()),
		},
		Repetitions:      lat.Repetitions(),
		LatticeVectors:   lat.LatticeVectors(),
		Positions:        lat.Positions(),
		PositionsIndices: lat.PositionIndices(),
		Connections:      bondsToDTO(lat.Bonds()),
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(&d)
}

// DecodeLattice reads a YAML lattice document from r.
// Returns ErrDecode for malformed input.
func DecodeLattice(r io.Reader) (*lattice.Lattice, error) {
	var d latticeDTO
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	cellBonds, err := bondsFromDTO(d.Unitcell.Connections)
	if err != nil {
		return nil, fmt.Errorf("unitcell: %w", err)
	}
	bonds, err := bondsFromDTO(d.Connections)
	if err != nil {
		return nil, err
	}
	uc := lattice.NewUnitcell(d.Unitcell.LatticeVectors, d.Unitcell.Basis, cellBonds)

	return lattice.NewLattice(uc, d.Repetitions, d.LatticeVectors, d.Positions, d.PositionsIndices, bonds), nil
}

// SaveUnitcell writes uc to path, truncating any existing file.
func SaveUnitcell(path string, uc *lattice.Unitcell) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeUnitcell(f, uc)
}

// LoadUnitcell reads a cell document from path.
func LoadUnitcell(path string) (*lattice.Unitcell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeUnitcell(f)
}

// SaveLattice writes lat to path, truncating any existing file.
func SaveLattice(path string, lat *lattice.Lattice) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeLattice(f, lat)
}

// LoadLattice reads a lattice document from path.
func LoadLattice(path string) (*lattice.Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeLattice(f)
}
