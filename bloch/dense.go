// SPDX-License-Identifier: MIT

package bloch

// Dense is a square complex128 matrix in row-major storage, sized once at
// construction. All methods are O(1) except Clone and Hermitize (O(n²)).
type Dense struct {
	n    int
	data []complex128
}

// NewDense returns a zeroed n×n matrix. A non-positive n yields an empty
// matrix.
func NewDense(n int) *Dense {
	if n < 0 {
		n = 0
	}

	return &Dense{n: n, data: make([]complex128, n*n)}
}

// N returns the matrix dimension.
func (m *Dense) N() int { return m.n }

// At returns the element at (i, j), 0-based.
// Returns ErrIndexOutOfBounds for invalid indices.
func (m *Dense) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfBounds
	}

	return m.data[i*m.n+j], nil
}

// Set assigns v at (i, j), 0-based.
// Returns ErrIndexOutOfBounds for invalid indices.
func (m *Dense) Set(i, j int, v complex128) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrIndexOutOfBounds
	}
	m.data[i*m.n+j] = v

	return nil
}

// Add accumulates v into (i, j), 0-based.
// Returns ErrIndexOutOfBounds for invalid indices.
func (m *Dense) Add(i, j int, v complex128) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrIndexOutOfBounds
	}
	m.data[i*m.n+j] += v

	return nil
}

// Clone returns an independent deep copy.
func (m *Dense) Clone() *Dense {
	c := &Dense{n: m.n, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Hermitize replaces m with (m + mᴴ)/2 in place.
func (m *Dense) Hermitize() {
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			a := m.data[i*m.n+j]
			b := m.data[j*m.n+i]
			avg := (a + conj(b)) / 2
			m.data[i*m.n+j] = avg
			m.data[j*m.n+i] = conj(avg)
		}
	}
}

// conj returns the complex conjugate of v.
func conj(v complex128) complex128 {
	return complex(real(v), -imag(v))
}
