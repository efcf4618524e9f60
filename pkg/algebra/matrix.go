package algebra

import (
	"fmt"
	"strings"
)

// Matrix is a dense rows×cols matrix stored in row-major order.
// A freshly constructed matrix is all zero.
//
// Set mutates the receiver's backing storage; use Clone before handing
// a matrix to code that must not see later writes. Every arithmetic
// method returns a new matrix and leaves its operands untouched.
type Matrix[T Number] struct {
	rows, cols int
	data       []T
}

// NewMatrix creates a zeroed rows×cols matrix.
// Panics if either dimension is not positive.
func NewMatrix[T Number](rows, cols int) Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("algebra: invalid matrix dimensions %dx%d", rows, cols))
	}
	return Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Identity creates the n×n identity matrix.
func Identity[T Number](n int) Matrix[T] {
	m := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the row count.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the element at [row][col]. Panics if out of range.
func (m Matrix[T]) At(row, col int) T {
	m.check(row, col)
	return m.data[row*m.cols+col]
}

// Set assigns the element at [row][col]. Panics if out of range.
func (m Matrix[T]) Set(row, col int, v T) {
	m.check(row, col)
	m.data[row*m.cols+col] = v
}

func (m Matrix[T]) check(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("algebra: index [%d][%d] out of range for %dx%d matrix",
			row, col, m.rows, m.cols))
	}
}

// Clone returns a deep copy with independent storage.
func (m Matrix[T]) Clone() Matrix[T] {
	c := Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Add returns m + n. Panics unless both matrices share dimensions.
func (m Matrix[T]) Add(n Matrix[T]) Matrix[T] {
	m.checkSameShape(n, "Add")
	r := NewMatrix[T](m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] + n.data[i]
	}
	return r
}

// Sub returns m - n. Panics unless both matrices share dimensions.
func (m Matrix[T]) Sub(n Matrix[T]) Matrix[T] {
	m.checkSameShape(n, "Sub")
	r := NewMatrix[T](m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] - n.data[i]
	}
	return r
}

func (m Matrix[T]) checkSameShape(n Matrix[T], op string) {
	if m.rows != n.rows || m.cols != n.cols {
		panic(fmt.Sprintf("algebra: %s dimension mismatch %dx%d vs %dx%d",
			op, m.rows, m.cols, n.rows, n.cols))
	}
}

// Scale returns m with every element multiplied by k.
func (m Matrix[T]) Scale(k T) Matrix[T] {
	r := NewMatrix[T](m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] * k
	}
	return r
}

// Mul returns the matrix product m × n using row-by-column dot
// products. Panics unless m.Cols() == n.Rows().
func (m Matrix[T]) Mul(n Matrix[T]) Matrix[T] {
	if m.cols != n.rows {
		panic(fmt.Sprintf("algebra: Mul dimension mismatch %dx%d vs %dx%d",
			m.rows, m.cols, n.rows, n.cols))
	}
	r := NewMatrix[T](m.rows, n.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < n.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * n.data[k*n.cols+j]
			}
			r.data[i*n.cols+j] = sum
		}
	}
	return r
}

// MulVec3 applies m to a column vector. Panics unless m is 3×3.
func (m Matrix[T]) MulVec3(v Vec3[T]) Vec3[T] {
	if m.rows != 3 || m.cols != 3 {
		panic(fmt.Sprintf("algebra: MulVec3 requires a 3x3 matrix, have %dx%d",
			m.rows, m.cols))
	}
	return Vec3[T]{
		X: m.data[0]*v.X + m.data[1]*v.Y + m.data[2]*v.Z,
		Y: m.data[3]*v.X + m.data[4]*v.Y + m.data[5]*v.Z,
		Z: m.data[6]*v.X + m.data[7]*v.Y + m.data[8]*v.Z,
	}
}

// Transpose returns mᵀ.
func (m Matrix[T]) Transpose() Matrix[T] {
	r := NewMatrix[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return r
}

// Equal reports whether m and n have the same shape and elements.
func (m Matrix[T]) Equal(n Matrix[T]) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != n.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix one row per line, for debugging.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
		b.WriteString("]")
		if i < m.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
