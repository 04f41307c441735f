package pool

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/egaotan/solana-swap/curve"
)

// PoolKeys identifies the accounts of one pool. The engine treats them
// as opaque identifiers, authority over them is proven elsewhere.
type PoolKeys struct {
	Key       solana.PublicKey `json:"key"`
	TokenX    solana.PublicKey `json:"token_x"`
	TokenY    solana.PublicKey `json:"token_y"`
	VaultX    solana.PublicKey `json:"vault_x"`
	VaultY    solana.PublicKey `json:"vault_y"`
	ShareMint solana.PublicKey `json:"share_mint"`
}

// User holds the accounts an operation moves value between on the
// user's side.
type User struct {
	Owner  solana.PublicKey
	TokenX solana.PublicKey
	TokenY solana.PublicKey
	Shares solana.PublicKey
}

type DepositRequest struct {
	ShareAmount uint64
	MaxX        uint64
	MaxY        uint64
}

type WithdrawRequest struct {
	ShareAmount uint64
	MinX        uint64
	MinY        uint64
}

type SwapRequest struct {
	Side        curve.Side
	InputAmount uint64
	MinOutput   uint64
}

// CurveResult is the pair of token amounts a deposit collects or a
// withdrawal pays out.
type CurveResult struct {
	AmountX uint64
	AmountY uint64
}

// SwapSummary is the amount taken into the pool and the amount paid
// out after the fee.
type SwapSummary struct {
	Deposit  uint64
	Withdraw uint64
}

type InstructionKind int

const (
	Transfer InstructionKind = iota
	Mint
	Burn
)

func (k InstructionKind) String() string {
	switch k {
	case Transfer:
		return "transfer"
	case Mint:
		return "mint"
	case Burn:
		return "burn"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Instruction is one effect the account layer must execute. The engine
// only decides what amount moves and in which direction; it never
// executes anything itself.
type Instruction struct {
	Kind        InstructionKind
	Token       solana.PublicKey
	Source      solana.PublicKey
	Destination solana.PublicKey
	Amount      uint64
}

func (in *Instruction) String() string {
	return fmt.Sprintf("%s %d of %s: %s -> %s", in.Kind, in.Amount, in.Token, in.Source, in.Destination)
}

// Ledger executes a batch of instructions as one unit: either every
// instruction applies or none of them do.
type Ledger interface {
	Execute(instructions []Instruction) error
}
