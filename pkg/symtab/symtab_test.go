package symtab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOverlaysBuiltins(t *testing.T) {
	table := New(nil)

	sym, ok := table.Lookup("pi")
	require.True(t, ok)
	assert.InDelta(t, math.Pi, sym.Value, 1e-12)

	_, ok = table.Lookup("nope")
	assert.False(t, ok)
}

func TestUserShadowsBuiltin(t *testing.T) {
	table := New([]Symbol{
		{Name: "pi", Kind: KindConstant, Value: 3},
	})

	sym, ok := table.Lookup("pi")
	require.True(t, ok)
	assert.Equal(t, 3.0, sym.Value)
}

func TestFirstUserDuplicateWins(t *testing.T) {
	table := New([]Symbol{
		{Name: "x", Kind: KindConstant, Value: 1},
		{Name: "x", Kind: KindConstant, Value: 2},
	})

	sym, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, sym.Value)
}

func TestNcrOutOfRangeIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(ncr([]float64{2, 4})))
	assert.True(t, math.IsNaN(ncr([]float64{-2, 4})))
	assert.True(t, math.IsNaN(ncr([]float64{2, -4})))
}

func TestNprOutOfRangeIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(npr([]float64{2, 4})))
	assert.True(t, math.IsNaN(npr([]float64{-2, 4})))
	assert.True(t, math.IsNaN(npr([]float64{2, -4})))
}

func TestFacNegativeIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(fac([]float64{-1})))
}

func TestFacTruncatesNonIntegerArguments(t *testing.T) {
	assert.Equal(t, 24.0, fac([]float64{4.8}))
	assert.Equal(t, 1.0, fac([]float64{0}))
	assert.Equal(t, 120.0, fac([]float64{5}))
}

func TestCombinatoricsTable(t *testing.T) {
	assert.Equal(t, 1.0, fac([]float64{0}))
	assert.Equal(t, 1.0, fac([]float64{0.2}))
	assert.Equal(t, 6.0, fac([]float64{3}))
	assert.Equal(t, 3628800.0, fac([]float64{10}))

	assert.Equal(t, 1.0, ncr([]float64{0, 0}))
	assert.Equal(t, 10.0, ncr([]float64{10, 1}))
	assert.Equal(t, 1.0, ncr([]float64{10, 10}))
	assert.Equal(t, 11440.0, ncr([]float64{16, 7}))
	assert.Equal(t, 11440.0, ncr([]float64{16, 9}))
	assert.InDelta(t, 75287520.0, ncr([]float64{100, 95}), 1)

	assert.Equal(t, 1.0, npr([]float64{0, 0}))
	assert.Equal(t, 10.0, npr([]float64{10, 1}))
	assert.Equal(t, 3628800.0, npr([]float64{10, 10}))
	assert.Equal(t, 1860480.0, npr([]float64{20, 5}))
	assert.Equal(t, 94109400.0, npr([]float64{100, 4}))
}

func TestIfThenElse(t *testing.T) {
	assert.Equal(t, 2.0, ifThenElse([]float64{1, 2, 3}))
	assert.Equal(t, 3.0, ifThenElse([]float64{0, 2, 3}))
}
