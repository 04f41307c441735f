package pool

import (
	"errors"

	"github.com/egaotan/solana-swap/curve"
	"github.com/egaotan/solana-swap/fixedmath"
)

var (
	ErrPoolLocked       = errors.New("pool is locked")
	ErrSlippageExceeded = errors.New("slippage exceeded")

	ErrInvalidAmount         = curve.ErrInvalidAmount
	ErrUndefinedPrice        = curve.ErrUndefinedPrice
	ErrInsufficientLiquidity = curve.ErrInsufficientLiquidity
	ErrOverflow              = fixedmath.ErrOverflow
	ErrDivByZero             = fixedmath.ErrDivByZero
)
