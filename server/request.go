package server

import (
	"fmt"

	"github.com/egaotan/solana-swap/curve"
)

type DepositRequest struct {
	Pool        string `json:"pool"`
	Owner       string `json:"owner"`
	ShareAmount uint64 `json:"share_amount"`
	MaxX        uint64 `json:"max_x"`
	MaxY        uint64 `json:"max_y"`
}

type WithdrawRequest struct {
	Pool        string `json:"pool"`
	Owner       string `json:"owner"`
	ShareAmount uint64 `json:"share_amount"`
	MinX        uint64 `json:"min_x"`
	MinY        uint64 `json:"min_y"`
}

type SwapRequest struct {
	Pool        string `json:"pool"`
	Owner       string `json:"owner"`
	Side        string `json:"side"`
	InputAmount uint64 `json:"input_amount"`
	MinOutput   uint64 `json:"min_output"`
}

type QuoteRequest struct {
	Pool        string `json:"pool"`
	Side        string `json:"side"`
	InputAmount uint64 `json:"input_amount"`
}

type DepositResponse struct {
	Pool        string `json:"pool"`
	ShareAmount uint64 `json:"share_amount"`
	AmountX     uint64 `json:"amount_x"`
	AmountY     uint64 `json:"amount_y"`
}

type WithdrawResponse struct {
	Pool        string `json:"pool"`
	ShareAmount uint64 `json:"share_amount"`
	AmountX     uint64 `json:"amount_x"`
	AmountY     uint64 `json:"amount_y"`
}

type SwapResponse struct {
	Pool      string `json:"pool"`
	TokenIn   string `json:"token_in"`
	AmountIn  uint64 `json:"amount_in"`
	TokenOut  string `json:"token_out"`
	AmountOut uint64 `json:"amount_out"`
}

type QuoteResponse struct {
	Pool      string `json:"pool"`
	AmountIn  uint64 `json:"amount_in"`
	AmountOut uint64 `json:"amount_out"`
}

type PoolResponse struct {
	Key         string `json:"key"`
	TokenX      string `json:"token_x"`
	TokenY      string `json:"token_y"`
	ReserveX    uint64 `json:"reserve_x"`
	ReserveY    uint64 `json:"reserve_y"`
	ReserveXUi  string `json:"reserve_x_ui,omitempty"`
	ReserveYUi  string `json:"reserve_y_ui,omitempty"`
	ShareSupply uint64 `json:"share_supply"`
	Price       string `json:"price,omitempty"`
	FeeBps      uint16 `json:"fee_bps"`
	Locked      bool   `json:"locked"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func parseSide(side string) (curve.Side, error) {
	switch side {
	case "x":
		return curve.SideX, nil
	case "y":
		return curve.SideY, nil
	default:
		return curve.SideX, fmt.Errorf("side %q is not valid, expected x or y", side)
	}
}
