package fixedmath

import (
	"errors"
	"math/big"
)

var (
	ErrOverflow  = errors.New("arithmetic overflow")
	ErrDivByZero = errors.New("division by zero")
)

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Mul returns a*b, or ErrOverflow if the product does not fit in 64 bits.
func Mul(a, b uint64) (uint64, error) {
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	if product.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return product.Uint64(), nil
}

// Div returns floor(a/b).
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a / b, nil
}

// Add returns a+b, or ErrOverflow if the sum wraps.
func Add(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns a-b, or ErrOverflow if b > a.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// MulDiv returns floor(a*b/den) with a 128-bit intermediate.
func MulDiv(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrDivByZero
	}
	numerator := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	quotient := new(big.Int).Quo(numerator, new(big.Int).SetUint64(den))
	if quotient.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return quotient.Uint64(), nil
}

// MulDivCeil returns ceil(a*b/den) with a 128-bit intermediate.
func MulDivCeil(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, ErrDivByZero
	}
	numerator := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	quotient, remainder := new(big.Int).QuoRem(numerator, new(big.Int).SetUint64(den), new(big.Int))
	if remainder.Sign() > 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	if quotient.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return quotient.Uint64(), nil
}

// Sqrt returns the floor of the square root of v.
// https://github.com/Uniswap/v2-core/blob/ee547b17853e71ed4e0101ccfd52e70d5acded58/contracts/libraries/Math.sol#L10
func Sqrt(v uint64) uint64 {
	if v > 3 {
		z := v
		x := v/2 + 1
		for x < z {
			z = x
			x = (v/x + x) / 2
		}
		return z
	} else if v != 0 {
		return 1
	}
	return 0
}

// SqrtBig returns the floor of the square root of v, or ErrOverflow
// if the root does not fit in 64 bits. v must not be negative.
func SqrtBig(v *big.Int) (uint64, error) {
	if v.Sign() < 0 {
		return 0, ErrOverflow
	}
	root := new(big.Int).Sqrt(v)
	if root.Cmp(maxUint64) > 0 {
		return 0, ErrOverflow
	}
	return root.Uint64(), nil
}
