package pool

import (
	"github.com/egaotan/solana-swap/curve"
)

// Guard gates every operation: lock state and request amounts before
// the curve runs, caller bounds and zero-value legs after. It never
// mutates state, it only decides accept or reject.
type Guard struct{}

func (g Guard) PreDeposit(s curve.PoolSnapshot, req *DepositRequest) error {
	if s.Locked {
		return ErrPoolLocked
	}
	if req.ShareAmount == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (g Guard) PreWithdraw(s curve.PoolSnapshot, req *WithdrawRequest) error {
	if s.Locked {
		return ErrPoolLocked
	}
	if req.ShareAmount == 0 {
		return ErrInvalidAmount
	}
	// without a floor on at least one side a zero-output withdrawal
	// would pass the bound checks
	if req.MinX == 0 && req.MinY == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (g Guard) PreSwap(s curve.PoolSnapshot, req *SwapRequest) error {
	if s.Locked {
		return ErrPoolLocked
	}
	if req.InputAmount == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (g Guard) PostDeposit(req *DepositRequest, x, y uint64) error {
	if x > req.MaxX || y > req.MaxY {
		return ErrSlippageExceeded
	}
	// a zero-value transfer is never a valid outcome
	if x == 0 || y == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (g Guard) PostWithdraw(req *WithdrawRequest, x, y uint64) error {
	if x < req.MinX || y < req.MinY {
		return ErrSlippageExceeded
	}
	if x == 0 || y == 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (g Guard) PostSwap(req *SwapRequest, out uint64) error {
	if out < req.MinOutput {
		return ErrSlippageExceeded
	}
	if out == 0 {
		return ErrInvalidAmount
	}
	return nil
}
