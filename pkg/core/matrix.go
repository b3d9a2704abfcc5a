package core

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Mat2 is a row-major 2×2 matrix. It only serves as a sub-block of the
// blockwise Mat4 inversion, but is usable on its own.
type Mat2 struct {
	M [2][2]float64
}

// Mat4 is a row-major 4×4 matrix. Points are row vectors multiplied on the
// left, so translations live in the last row.
type Mat4 struct {
	M [4][4]float64
}

// Identity2 returns the 2×2 identity matrix
func Identity2() Mat2 {
	return Mat2{M: [2][2]float64{
		{1, 0},
		{0, 1},
	}}
}

// Identity4 returns the 4×4 identity matrix
func Identity4() Mat4 {
	return Mat4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewMat4FromRows builds a matrix whose rows are the (I, J, K, H) of each vector
func NewMat4FromRows(r0, r1, r2, r3 Vector) Mat4 {
	return Mat4{}.WithRow(0, r0).WithRow(1, r1).WithRow(2, r2).WithRow(3, r3)
}

// At returns the element at (row, col)
func (m Mat2) At(row, col int) float64 {
	return m.M[row][col]
}

// With returns a copy of m with (row, col) set to v
func (m Mat2) With(row, col int, v float64) Mat2 {
	m.M[row][col] = v
	return m
}

// Add returns the element-wise sum
func (m Mat2) Add(other Mat2) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] + other.M[i][j]
		}
	}
	return r
}

// Subtract returns the element-wise difference
func (m Mat2) Subtract(other Mat2) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] - other.M[i][j]
		}
	}
	return r
}

// MultiplyScalar returns every element multiplied by s
func (m Mat2) MultiplyScalar(s float64) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// DivideScalar returns every element divided by s
func (m Mat2) DivideScalar(s float64) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[i][j] / s
		}
	}
	return r
}

// Multiply returns the matrix product m × other
func (m Mat2) Multiply(other Mat2) Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				r.M[i][j] += m.M[i][k] * other.M[k][j]
			}
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat2) Transpose() Mat2 {
	var r Mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// Determinant returns a·d − b·c
func (m Mat2) Determinant() float64 {
	return m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]
}

// Inverse returns the closed-form inverse: swap the diagonal, negate the
// off-diagonal, divide by the determinant. A singular matrix yields Inf/NaN.
func (m Mat2) Inverse() Mat2 {
	r := Mat2{M: [2][2]float64{
		{m.M[1][1], -m.M[0][1]},
		{-m.M[1][0], m.M[0][0]},
	}}
	return r.DivideScalar(m.Determinant())
}

// SafeInverse is Inverse that returns ErrSingular for a zero determinant
func (m Mat2) SafeInverse() (Mat2, error) {
	if m.Determinant() == 0 {
		return Mat2{}, ErrSingular
	}
	return m.Inverse(), nil
}

// Equal reports exact element-wise equality
func (m Mat2) Equal(other Mat2) bool {
	return m.M == other.M
}

// ApproxEqual reports whether every element is within tol
func (m Mat2) ApproxEqual(other Mat2, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !ApproxEqual(m.M[i][j], other.M[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no element is NaN or infinite
func (m Mat2) IsFinite() bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !isFinite(m.M[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Mat2) String() string {
	var sb strings.Builder
	for i := 0; i < 2; i++ {
		sb.WriteString("[")
		for j := 0; j < 2; j++ {
			fmt.Fprintf(&sb, "%g ", m.M[i][j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// At returns the element at (row, col)
func (m Mat4) At(row, col int) float64 {
	return m.M[row][col]
}

// With returns a copy of m with (row, col) set to v
func (m Mat4) With(row, col int, v float64) Mat4 {
	m.M[row][col] = v
	return m
}

// Row returns row i as a vector (I, J, K, H)
func (m Mat4) Row(i int) Vector {
	return Vector{m.M[i][0], m.M[i][1], m.M[i][2], m.M[i][3]}
}

// WithRow returns a copy of m with row i replaced by v
func (m Mat4) WithRow(i int, v Vector) Mat4 {
	m.M[i] = [4]float64{v.I, v.J, v.K, v.H}
	return m
}

// Add returns the element-wise sum
func (m Mat4) Add(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] + other.M[i][j]
		}
	}
	return r
}

// Subtract returns the element-wise difference
func (m Mat4) Subtract(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] - other.M[i][j]
		}
	}
	return r
}

// MultiplyScalar returns every element multiplied by s
func (m Mat4) MultiplyScalar(s float64) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] * s
		}
	}
	return r
}

// DivideScalar returns every element divided by s
func (m Mat4) DivideScalar(s float64) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[i][j] / s
		}
	}
	return r
}

// Multiply returns the matrix product m × other
func (m Mat4) Multiply(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r.M[i][j] += m.M[i][k] * other.M[k][j]
			}
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// blocks splits m into its four 2×2 quadrants
func (m Mat4) blocks() (a, b, c, d Mat2) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a.M[i][j] = m.M[i][j]
			b.M[i][j] = m.M[i][j+2]
			c.M[i][j] = m.M[i+2][j]
			d.M[i][j] = m.M[i+2][j+2]
		}
	}
	return a, b, c, d
}

func fromBlocks(a, b, c, d Mat2) Mat4 {
	var m Mat4
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m.M[i][j] = a.M[i][j]
			m.M[i][j+2] = b.M[i][j]
			m.M[i+2][j] = c.M[i][j]
			m.M[i+2][j+2] = d.M[i][j]
		}
	}
	return m
}

// Inverse inverts m blockwise. With quadrants A B / C D:
//
//	S = (A − B·D⁻¹·C)⁻¹        T = (D − C·A⁻¹·B)⁻¹
//	m⁻¹ = [ S          −A⁻¹·B·T ]
//	      [ −T·C·A⁻¹   T        ]
//
// A or D being singular, or m itself, propagates Inf/NaN into the result.
// SafeInverse handles those inputs.
func (m Mat4) Inverse() Mat4 {
	a, b, c, d := m.blocks()
	aInv := a.Inverse()
	dInv := d.Inverse()

	s := a.Subtract(b.Multiply(dInv).Multiply(c)).Inverse()
	t := d.Subtract(c.Multiply(aInv).Multiply(b)).Inverse()

	topRight := aInv.Multiply(b).Multiply(t).MultiplyScalar(-1)
	bottomLeft := t.Multiply(c).Multiply(aInv).MultiplyScalar(-1)

	return fromBlocks(s, topRight, bottomLeft, t)
}

// MaxConditionNumber is the largest 1-norm condition number SafeInverse
// accepts. Past it the inverse carries no correct digits worth using, so the
// matrix is treated as singular.
const MaxConditionNumber = 1e12

// SafeInverse returns the inverse of m, or ErrSingular if it has none.
// Near-singular matrices, whose condition number exceeds MaxConditionNumber,
// count as singular: a rank-deficient matrix usually rounds to a tiny nonzero
// determinant and would otherwise invert to garbage.
//
// Matrices whose A or D quadrant is singular (e.g. a 90° rotation about X)
// cannot be inverted blockwise and are inverted by LU decomposition instead.
func (m Mat4) SafeInverse() (Mat4, error) {
	dense := m.Dense()
	if cond := mat.Cond(dense, 1); !(cond <= MaxConditionNumber) {
		return Mat4{}, fmt.Errorf("invert 4x4: condition number %g: %w", cond, ErrSingular)
	}

	if inv := m.Inverse(); inv.IsFinite() {
		return inv, nil
	}

	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return Mat4{}, fmt.Errorf("invert 4x4: %v: %w", err, ErrSingular)
	}
	return Mat4FromDense(&inv), nil
}

// Determinant returns the determinant of m
func (m Mat4) Determinant() float64 {
	return mat.Det(m.Dense())
}

// Dense returns m as a gonum dense matrix
func (m Mat4) Dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, m.M[i][:]...)
	}
	return mat.NewDense(4, 4, data)
}

// Mat4FromDense copies a 4×4 gonum matrix. Any other shape panics.
func Mat4FromDense(a mat.Matrix) Mat4 {
	r, c := a.Dims()
	if r != 4 || c != 4 {
		panic(fmt.Sprintf("core: Mat4FromDense: got %dx%d matrix", r, c))
	}
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.M[i][j] = a.At(i, j)
		}
	}
	return m
}

// Equal reports exact element-wise equality
func (m Mat4) Equal(other Mat4) bool {
	return m.M == other.M
}

// ApproxEqual reports whether every element is within tol
func (m Mat4) ApproxEqual(other Mat4, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !ApproxEqual(m.M[i][j], other.M[i][j], tol) {
				return false
			}
		}
	}
	return true
}

// IsFinite reports whether no element is NaN or infinite
func (m Mat4) IsFinite() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !isFinite(m.M[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m Mat4) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		sb.WriteString("[")
		for j := 0; j < 4; j++ {
			fmt.Fprintf(&sb, "%g ", m.M[i][j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
