package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMat2_Inverse(t *testing.T) {
	m := Mat2{M: [2][2]float64{
		{4, 7},
		{2, 6},
	}}

	inv := m.Inverse()
	expected := Mat2{M: [2][2]float64{
		{0.6, -0.7},
		{-0.2, 0.4},
	}}
	assert.True(t, inv.ApproxEqual(expected, 1e-12), "got\n%v", inv)
	assert.True(t, m.Multiply(inv).ApproxEqual(Identity2(), 1e-12))

	safe, err := m.SafeInverse()
	require.NoError(t, err)
	assert.True(t, safe.Equal(inv))
}

func TestMat2_SingularInverse(t *testing.T) {
	m := Mat2{M: [2][2]float64{
		{1, 2},
		{2, 4},
	}}

	assert.Equal(t, 0.0, m.Determinant())
	assert.False(t, m.Inverse().IsFinite(), "singular inverse should propagate Inf/NaN")

	_, err := m.SafeInverse()
	require.ErrorIs(t, err, ErrSingular)
}

func TestMat2_Arithmetic(t *testing.T) {
	a := Mat2{M: [2][2]float64{{1, 2}, {3, 4}}}
	b := Mat2{M: [2][2]float64{{5, 6}, {7, 8}}}

	assert.Equal(t, [2][2]float64{{6, 8}, {10, 12}}, a.Add(b).M)
	assert.Equal(t, [2][2]float64{{4, 4}, {4, 4}}, b.Subtract(a).M)
	assert.Equal(t, [2][2]float64{{19, 22}, {43, 50}}, a.Multiply(b).M)
	assert.Equal(t, [2][2]float64{{2, 4}, {6, 8}}, a.MultiplyScalar(2).M)
	assert.Equal(t, [2][2]float64{{0.5, 1}, {1.5, 2}}, a.DivideScalar(2).M)
	assert.Equal(t, [2][2]float64{{1, 3}, {2, 4}}, a.Transpose().M)
	assert.Equal(t, 3.0, a.At(1, 0))
	assert.Equal(t, 9.0, a.With(1, 0, 9).At(1, 0))
	assert.Equal(t, 3.0, a.At(1, 0), "With must not modify the receiver")
	assert.Equal(t, "[1 2 ]\n[3 4 ]\n", a.String())
}

func invertibleMatrices() map[string]Mat4 {
	axis := NewDirection(1, 1, 0).Unit()
	return map[string]Mat4{
		"identity":             Identity4(),
		"translate":            Translate(2, 3, 4),
		"scale":                Scale(2, -3, 0.5),
		"rotate z":             Rotate(30, NewDirection(0, 0, 1)),
		"rotate diagonal axis": Rotate(45, axis),
		"composite": Scale(2, 3, 4).
			Multiply(Rotate(30, NewDirection(0, 0, 1))).
			Multiply(Translate(1, -2, 5)),
		"general": {M: [4][4]float64{
			{4, 7, 2, 3},
			{0, 5, 1, 2},
			{1, 0, 6, 1},
			{2, 1, 0, 3},
		}},
	}
}

func TestMat4_InverseIsIdentityProduct(t *testing.T) {
	for name, m := range invertibleMatrices() {
		t.Run(name, func(t *testing.T) {
			inv := m.Inverse()
			require.True(t, inv.IsFinite(), "inverse not finite:\n%v", inv)

			assert.True(t, m.Multiply(inv).ApproxEqual(Identity4(), 1e-9), "M × M⁻¹:\n%v", m.Multiply(inv))
			assert.True(t, inv.Multiply(m).ApproxEqual(Identity4(), 1e-9), "M⁻¹ × M:\n%v", inv.Multiply(m))
		})
	}
}

func TestMat4_InverseMatchesLU(t *testing.T) {
	for name, m := range invertibleMatrices() {
		t.Run(name, func(t *testing.T) {
			var want mat.Dense
			require.NoError(t, want.Inverse(m.Dense()))

			got := m.Inverse()
			assert.True(t, got.ApproxEqual(Mat4FromDense(&want), 1e-9),
				"blockwise:\n%v\nLU:\n%v", got, mat.Formatted(&want))
		})
	}
}

func TestMat4_InverseOfTranslate(t *testing.T) {
	inv := Translate(2, 3, 4).Inverse()
	assert.True(t, inv.ApproxEqual(Translate(-2, -3, -4), 1e-12), "got\n%v", inv)
}

func TestMat4_SafeInverse(t *testing.T) {
	t.Run("blockwise result", func(t *testing.T) {
		m := Translate(1, 2, 3)
		inv, err := m.SafeInverse()
		require.NoError(t, err)
		assert.True(t, inv.Equal(m.Inverse()))
	})

	t.Run("singular quadrants fall back to LU", func(t *testing.T) {
		// Both A and D are zero, but the matrix is a permutation.
		m := NewMat4FromRows(
			NewDirection(0, 0, 1),
			NewPoint(0, 0, 0),
			NewDirection(1, 0, 0),
			NewDirection(0, 1, 0),
		)
		assert.False(t, m.Inverse().IsFinite())

		inv, err := m.SafeInverse()
		require.NoError(t, err)
		assert.True(t, inv.ApproxEqual(m.Transpose(), 1e-12), "got\n%v", inv)
		assert.InDelta(t, 1.0, m.Determinant(), 1e-12)
	})

	t.Run("singular matrix", func(t *testing.T) {
		m := Mat4{M: [4][4]float64{
			{1, 2, 3, 4},
			{1, 2, 3, 4},
			{0, 1, 0, 1},
			{5, 0, 2, 1},
		}}
		assert.False(t, m.Inverse().IsFinite())
		assert.InDelta(t, 0.0, m.Determinant(), 1e-12)

		_, err := m.SafeInverse()
		require.ErrorIs(t, err, ErrSingular)
	})

	t.Run("rank deficient with invertible quadrants", func(t *testing.T) {
		r0 := NewVector(1, 2, 3, 4)
		r1 := NewVector(5, 6, 7, 8)
		m := NewMat4FromRows(r0, r1, NewVector(2, 3, 1, 5), r0.Multiply(0.1).Add(r1.Multiply(0.7)))

		a, _, _, d := m.blocks()
		require.NotZero(t, a.Determinant())
		require.NotZero(t, d.Determinant())
		assert.InDelta(t, 0.0, m.Determinant(), 1e-12)

		inv, err := m.SafeInverse()
		require.ErrorIs(t, err, ErrSingular)
		assert.True(t, inv.Equal(Mat4{}))
	})

	t.Run("ill conditioned counts as singular", func(t *testing.T) {
		m := Identity4().With(3, 3, 1e-14)
		require.True(t, m.Inverse().IsFinite())

		_, err := m.SafeInverse()
		require.ErrorIs(t, err, ErrSingular)
		assert.Contains(t, err.Error(), "condition number")
	})

	t.Run("well conditioned inverses round trip", func(t *testing.T) {
		for name, m := range invertibleMatrices() {
			inv, err := m.SafeInverse()
			require.NoError(t, err, name)
			assert.True(t, m.Multiply(inv).ApproxEqual(Identity4(), 1e-9), "%s:\n%v", name, m.Multiply(inv))
		}
	})
}

func TestMat4_Determinant(t *testing.T) {
	assert.InDelta(t, 24.0, Scale(2, 3, 4).Determinant(), 1e-12)
	assert.InDelta(t, 1.0, Rotate(73, NewDirection(0, 1, 0)).Determinant(), 1e-9)
	assert.InDelta(t, 302.0, invertibleMatrices()["general"].Determinant(), 1e-9)
}

func TestMat4_Arithmetic(t *testing.T) {
	a := invertibleMatrices()["general"]
	id := Identity4()

	assert.True(t, a.Multiply(id).Equal(a))
	assert.True(t, id.Multiply(a).Equal(a))
	assert.True(t, a.Add(a).Equal(a.MultiplyScalar(2)))
	assert.True(t, a.Subtract(a).Equal(Mat4{}))
	assert.True(t, a.MultiplyScalar(4).DivideScalar(4).Equal(a))
	assert.True(t, a.Transpose().Transpose().Equal(a))
	assert.Equal(t, 2.0, a.Transpose().At(0, 3))
	assert.Equal(t, 3.0, a.At(0, 3))
}

func TestMat4_Rows(t *testing.T) {
	m := Translate(2, 3, 4)
	assert.True(t, m.Row(3).Equal(NewPoint(2, 3, 4)))

	changed := m.WithRow(3, NewPoint(0, 0, 0))
	assert.True(t, changed.Equal(Identity4()))
	assert.True(t, m.Row(3).Equal(NewPoint(2, 3, 4)), "WithRow must not modify the receiver")

	assert.Equal(t, 7.0, m.With(0, 1, 7).At(0, 1))
}

func TestMat4_EqualIsExact(t *testing.T) {
	a := Identity4()
	b := Identity4().With(2, 2, math.Nextafter(1, 2))

	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b, Epsilon))
}

func TestMat4_OutOfRangePanics(t *testing.T) {
	m := Identity4()
	row, col := 4, 0
	assert.Panics(t, func() { m.At(row, col) })
	assert.Panics(t, func() { m.Row(row) })
	assert.Panics(t, func() { Mat4FromDense(mat.NewDense(3, 3, nil)) })
}

func TestMat4_String(t *testing.T) {
	expected := "[1 0 0 0 ]\n[0 1 0 0 ]\n[0 0 1 0 ]\n[2 3 4 1 ]\n"
	assert.Equal(t, expected, Translate(2, 3, 4).String())
}
