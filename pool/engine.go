package pool

import (
	"log"

	"github.com/egaotan/solana-swap/curve"
)

// Engine sequences the three pool operations: guard pre-check, curve
// computation, guard post-check, instruction emission. Each call is a
// single synchronous decision over one immutable snapshot; on any
// error no instructions are emitted and the operation is treated as
// not having happened.
type Engine struct {
	keys  PoolKeys
	guard Guard
	log   *log.Logger
}

func NewEngine(keys PoolKeys, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		keys: keys,
		log:  logger,
	}
}

func (e *Engine) Keys() PoolKeys {
	return e.keys
}

// Deposit prices the requested share amount against the snapshot and
// emits the transfers that collect both tokens plus the share mint.
// An empty pool is bootstrapped at the price implied by the caller's
// maximum amounts.
func (e *Engine) Deposit(s curve.PoolSnapshot, req *DepositRequest, user User) (*CurveResult, []Instruction, error) {
	if err := e.guard.PreDeposit(s, req); err != nil {
		return nil, nil, err
	}
	var x, y uint64
	if s.ShareSupply == 0 {
		x, y = req.MaxX, req.MaxY
	} else {
		var err error
		x, y, err = curve.DepositAmounts(s, req.ShareAmount)
		if err != nil {
			return nil, nil, err
		}
	}
	if err := e.guard.PostDeposit(req, x, y); err != nil {
		return nil, nil, err
	}
	instructions := []Instruction{
		{Kind: Transfer, Token: e.keys.TokenX, Source: user.TokenX, Destination: e.keys.VaultX, Amount: x},
		{Kind: Transfer, Token: e.keys.TokenY, Source: user.TokenY, Destination: e.keys.VaultY, Amount: y},
		{Kind: Mint, Token: e.keys.ShareMint, Destination: user.Shares, Amount: req.ShareAmount},
	}
	e.log.Printf("pool %s deposit: shares %d, x %d, y %d", e.keys.Key, req.ShareAmount, x, y)
	return &CurveResult{AmountX: x, AmountY: y}, instructions, nil
}

// Withdraw prices the burned share amount against the snapshot and
// emits the transfers that pay out both tokens plus the share burn.
func (e *Engine) Withdraw(s curve.PoolSnapshot, req *WithdrawRequest, user User) (*CurveResult, []Instruction, error) {
	if err := e.guard.PreWithdraw(s, req); err != nil {
		return nil, nil, err
	}
	x, y, err := curve.WithdrawAmounts(s, req.ShareAmount)
	if err != nil {
		return nil, nil, err
	}
	if x > s.ReserveX || y > s.ReserveY {
		return nil, nil, ErrInsufficientLiquidity
	}
	if err := e.guard.PostWithdraw(req, x, y); err != nil {
		return nil, nil, err
	}
	instructions := []Instruction{
		{Kind: Transfer, Token: e.keys.TokenX, Source: e.keys.VaultX, Destination: user.TokenX, Amount: x},
		{Kind: Transfer, Token: e.keys.TokenY, Source: e.keys.VaultY, Destination: user.TokenY, Amount: y},
		{Kind: Burn, Token: e.keys.ShareMint, Source: user.Shares, Amount: req.ShareAmount},
	}
	e.log.Printf("pool %s withdraw: shares %d, x %d, y %d", e.keys.Key, req.ShareAmount, x, y)
	return &CurveResult{AmountX: x, AmountY: y}, instructions, nil
}

// Swap prices the input against the pre-trade snapshot, both legs
// evaluated once against the same reserves, and emits the two
// transfers. The full input including the fee goes to the vault.
func (e *Engine) Swap(s curve.PoolSnapshot, req *SwapRequest, user User) (*SwapSummary, []Instruction, error) {
	if err := e.guard.PreSwap(s, req); err != nil {
		return nil, nil, err
	}
	out, err := curve.SwapOutput(s, req.Side, req.InputAmount)
	if err != nil {
		return nil, nil, err
	}
	if err := e.guard.PostSwap(req, out); err != nil {
		return nil, nil, err
	}
	tokenIn, vaultIn, userIn := e.keys.TokenX, e.keys.VaultX, user.TokenX
	tokenOut, vaultOut, userOut := e.keys.TokenY, e.keys.VaultY, user.TokenY
	if req.Side == curve.SideY {
		tokenIn, vaultIn, userIn = e.keys.TokenY, e.keys.VaultY, user.TokenY
		tokenOut, vaultOut, userOut = e.keys.TokenX, e.keys.VaultX, user.TokenX
	}
	instructions := []Instruction{
		{Kind: Transfer, Token: tokenIn, Source: userIn, Destination: vaultIn, Amount: req.InputAmount},
		{Kind: Transfer, Token: tokenOut, Source: vaultOut, Destination: userOut, Amount: out},
	}
	e.log.Printf("pool %s swap: side %s, in %d, out %d", e.keys.Key, req.Side, req.InputAmount, out)
	return &SwapSummary{Deposit: req.InputAmount, Withdraw: out}, instructions, nil
}
