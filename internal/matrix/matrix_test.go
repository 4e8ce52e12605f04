package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	dims := Dims{1, 2, 3}
	m := Fill(dims, 10.0)

	assert.Equal(t, dims, m.Dims())
	assert.Equal(t, 6, m.Len())
	for _, v := range m.Data() {
		assert.Equal(t, 10.0, v)
	}
}

func TestFill_RemovesTrailingOnes(t *testing.T) {
	m := Fill(Dims{2, 2, 1, 1}, 10.0)
	assert.Equal(t, Dims{2, 2}, m.Dims())
	assert.Equal(t, 4, m.Len())

	m = Fill(Dims{1, 1, 1}, 10.0)
	assert.Equal(t, Dims{1}, m.Dims())
	assert.Equal(t, 1, m.Len())
}

func TestFill_NoDimensions(t *testing.T) {
	m := Fill(Dims{}, 3.14)
	assert.Empty(t, m.Dims())
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Rank())
	assert.True(t, m.IsEmpty())

	m = Fill[int](nil, 7)
	assert.Empty(t, m.Dims())
	assert.True(t, m.IsEmpty())
}

func TestFill_ZeroDimension(t *testing.T) {
	m := Fill(Dims{1, 2, 3, 4, 5, 6, 0, 8, 9, 10}, 1.2)
	assert.Equal(t, 0, m.Rank())
	assert.Empty(t, m.Dims())
	assert.Empty(t, m.Data())
}

func TestFill_NegativeDimension(t *testing.T) {
	m := Fill(Dims{3, -2}, 1.0)
	assert.Equal(t, 0, m.Rank())
	assert.True(t, m.IsEmpty())
}

func TestFill_SizeMatchesProduct(t *testing.T) {
	for _, d := range []Dims{{1}, {7}, {3, 1}, {1, 4}, {2, 3, 4}, {1, 1, 5, 1}, {2, 1, 2, 1, 1}} {
		m := Fill(d, "x")
		got := m.Dims()

		require.NotEmpty(t, got, "dims %v", d)
		if len(got) > 1 {
			assert.NotEqual(t, 1, got[len(got)-1], "dims %v kept a trailing one: %v", d, got)
		}
		assert.Equal(t, d.NumElements(), m.Len(), "dims %v", d)
		assert.Equal(t, d.Canonical(), got)
	}
}

func TestFill_Overflow(t *testing.T) {
	assert.PanicsWithValue(t, "matrix: dimensions [4611686018427387905 4] overflow int", func() {
		Fill(Dims{1<<62 + 1, 4}, 1.0)
	})
	assert.Panics(t, func() { Fill(Dims{1 << 32, 1 << 32}, 1.0) })
	assert.Panics(t, func() { Zeros(Dims{1 << 40, 1 << 40}) })

	m := Fill(Dims{1 << 32, 1 << 32, 0}, 1.0)
	assert.True(t, m.IsEmpty())
}

func TestFill_DoesNotAliasInput(t *testing.T) {
	dims := Dims{2, 3}
	m := Fill(dims, 0)
	dims[0] = 5

	assert.Equal(t, Dims{2, 3}, m.Dims())
}

func TestFromDefault(t *testing.T) {
	m := FromDefault[int32](Dims{2, 2})
	assert.Equal(t, []int32{0, 0, 0, 0}, m.Data())

	s := FromDefault[string](Dims{3, 1})
	assert.Equal(t, Dims{3}, s.Dims())
	assert.Equal(t, []string{"", "", ""}, s.Data())

	e := FromDefault[bool](Dims{0})
	assert.True(t, e.IsEmpty())
}

func TestMatrix_AccessorsReturnCopies(t *testing.T) {
	m := Fill(Dims{2, 2}, 1.0)

	data := m.Data()
	data[0] = 42
	dims := m.Dims()
	dims[0] = 9

	assert.Equal(t, []float64{1, 1, 1, 1}, m.Data())
	assert.Equal(t, Dims{2, 2}, m.Dims())
}

func TestMatrix_AtRowMajor(t *testing.T) {
	m := &Matrix[int]{
		data: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		dims: Dims{2, 3, 2},
	}

	assert.Equal(t, 0, m.At(0, 0, 0))
	assert.Equal(t, 1, m.At(0, 0, 1))
	assert.Equal(t, 2, m.At(0, 1, 0))
	assert.Equal(t, 6, m.At(1, 0, 0))
	assert.Equal(t, 11, m.At(1, 2, 1))
}

func TestMatrix_AtPanics(t *testing.T) {
	m := Fill(Dims{2, 3}, 1.0)

	assert.Panics(t, func() { m.At(0) })
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })
	assert.Panics(t, func() { Fill(Dims{}, 1.0).At(0) })
}

func TestMatrix_String(t *testing.T) {
	assert.Equal(t, "Matrix[float64][2 3]", Zeros(Dims{2, 3, 1}).String())
	assert.Equal(t, "Matrix[string][]", Fill(Dims{0}, "a").String())
}
