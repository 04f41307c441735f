package curve

import (
	"errors"
	"math/big"

	"github.com/egaotan/solana-swap/fixedmath"
)

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrUndefinedPrice        = errors.New("undefined price")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
)

// FeeDenominator is the basis-point scale of the trade fee.
const FeeDenominator = 10000

type Side int

const (
	SideX Side = iota
	SideY
)

func (s Side) String() string {
	if s == SideX {
		return "x"
	}
	return "y"
}

// PoolSnapshot is a read-only view of one pool taken by the account
// layer. The curve never mutates it, it only computes the deltas the
// caller must apply.
type PoolSnapshot struct {
	ReserveX    uint64
	ReserveY    uint64
	ShareSupply uint64
	FeeBps      uint16
	Decimals    uint8
	Locked      bool
}

// DepositAmounts computes the token amounts a depositor must pay for
// the requested share amount, each rounded up so the pool never
// under-collects relative to the shares minted.
// The bootstrap deposit (ShareSupply == 0) is not priced here, the
// caller establishes the initial price directly.
func DepositAmounts(s PoolSnapshot, shares uint64) (uint64, uint64, error) {
	if s.ShareSupply == 0 || s.ReserveX == 0 || s.ReserveY == 0 {
		return 0, 0, ErrUndefinedPrice
	}
	if _, err := fixedmath.Add(s.ShareSupply, shares); err != nil {
		return 0, 0, err
	}
	x, err := fixedmath.MulDivCeil(s.ReserveX, shares, s.ShareSupply)
	if err != nil {
		return 0, 0, err
	}
	y, err := fixedmath.MulDivCeil(s.ReserveY, shares, s.ShareSupply)
	if err != nil {
		return 0, 0, err
	}
	// the post-deposit reserves must still fit in 64 bits
	if _, err := fixedmath.Add(s.ReserveX, x); err != nil {
		return 0, 0, err
	}
	if _, err := fixedmath.Add(s.ReserveY, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// WithdrawAmounts computes the proportional token amounts paid out for
// the burned share amount, each rounded down so the pool never pays
// out more than the proportional share.
func WithdrawAmounts(s PoolSnapshot, shares uint64) (uint64, uint64, error) {
	if s.ShareSupply == 0 {
		return 0, 0, ErrUndefinedPrice
	}
	if shares > s.ShareSupply {
		return 0, 0, ErrInsufficientLiquidity
	}
	x, err := fixedmath.MulDiv(s.ReserveX, shares, s.ShareSupply)
	if err != nil {
		return 0, 0, err
	}
	y, err := fixedmath.MulDiv(s.ReserveY, shares, s.ShareSupply)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// SwapOutput prices a swap of amountIn on the given side against the
// snapshot and returns the amount of the opposite token paid out,
// rounded down. The fee is deducted from the input before pricing and
// both legs are evaluated once against the same pre-trade reserves.
func SwapOutput(s PoolSnapshot, side Side, amountIn uint64) (uint64, error) {
	if s.FeeBps > FeeDenominator {
		return 0, ErrInvalidAmount
	}
	reserveIn, reserveOut := s.ReserveX, s.ReserveY
	if side == SideY {
		reserveIn, reserveOut = s.ReserveY, s.ReserveX
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrUndefinedPrice
	}
	effective, err := fixedmath.MulDiv(amountIn, uint64(FeeDenominator-s.FeeBps), FeeDenominator)
	if err != nil {
		return 0, err
	}
	if effective == 0 {
		// the fee consumes the whole input
		return 0, ErrInvalidAmount
	}
	// the vault receives the full input, fee included
	if _, err := fixedmath.Add(reserveIn, amountIn); err != nil {
		return 0, err
	}
	newReserveOut, err := fixedmath.MulDiv(reserveIn, reserveOut, reserveIn+effective)
	if err != nil {
		return 0, err
	}
	out := reserveOut - newReserveOut
	if out >= reserveOut {
		return 0, ErrInsufficientLiquidity
	}
	return out, nil
}

// BootstrapShares is the conventional share amount minted against an
// initial deposit, the floor of sqrt(x*y).
func BootstrapShares(x, y uint64) (uint64, error) {
	if x == 0 || y == 0 {
		return 0, ErrInvalidAmount
	}
	product := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
	shares, err := fixedmath.SqrtBig(product)
	if err != nil {
		return 0, err
	}
	if shares == 0 {
		return 0, ErrInvalidAmount
	}
	return shares, nil
}
