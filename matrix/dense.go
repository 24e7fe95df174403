// Package matrix - Dense, a row-major implementation of the Matrix
// interface storing elements in a flat slice for cache friendliness.
package matrix

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns the backing slice of row i without copying, or nil when i is
// out of range. Intended for read-only hot loops; callers must not resize.
//
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c]
}
