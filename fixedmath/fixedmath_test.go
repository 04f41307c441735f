package fixedmath

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	v, err := Mul(1<<32, 1<<31)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, v)

	_, err = Mul(1<<32, 1<<32)
	assert.ErrorIs(t, err, ErrOverflow)

	v, err = Mul(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestDiv(t *testing.T) {
	v, err := Div(7, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)

	_, err = Div(7, 0)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestAddSub(t *testing.T) {
	_, err := Add(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	v, err := Add(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, err = Sub(1, 2)
	assert.ErrorIs(t, err, ErrOverflow)

	v, err = Sub(2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestMulDiv(t *testing.T) {
	// intermediate exceeds 64 bits, quotient does not
	v, err := MulDiv(math.MaxUint64, 1000, 10000)
	require.NoError(t, err)
	expected := new(big.Int).Mul(new(big.Int).SetUint64(math.MaxUint64), big.NewInt(1000))
	expected.Quo(expected, big.NewInt(10000))
	assert.Equal(t, expected.Uint64(), v)

	_, err = MulDiv(math.MaxUint64, 2, 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = MulDiv(1, 1, 0)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestMulDivCeil(t *testing.T) {
	v, err := MulDiv(7, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), v)

	v, err = MulDivCeil(7, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), v)

	// exact division, floor and ceiling agree
	floor, err := MulDiv(10, 4, 8)
	require.NoError(t, err)
	ceil, err := MulDivCeil(10, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, floor, ceil)
}

func TestSqrtFloor(t *testing.T) {
	cases := map[uint64]uint64{
		0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 15: 3, 16: 4, 17: 4,
		999999: 999, 1000000: 1000, 1000001: 1000,
	}
	for in, want := range cases {
		assert.Equal(t, want, Sqrt(in), "sqrt(%d)", in)
	}
	assert.Equal(t, uint64(math.MaxUint32), Sqrt(math.MaxUint64))
}

func TestSqrtMonotonic(t *testing.T) {
	previous := uint64(0)
	for v := uint64(0); v < 100000; v += 7 {
		root := Sqrt(v)
		assert.LessOrEqual(t, previous, root)
		assert.LessOrEqual(t, root*root, v)
		previous = root
	}
}

func TestSqrtBig(t *testing.T) {
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(math.MaxUint64),
		new(big.Int).SetUint64(math.MaxUint64),
	)
	root, err := SqrtBig(product)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), root)

	root, err = SqrtBig(big.NewInt(1000000000000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), root)
}
