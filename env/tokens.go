package env

import (
	"encoding/json"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/egaotan/solana-swap/config"
)

type Token struct {
	Symbol  string
	Name    string
	Decimal uint64
	Price   decimal.Decimal
}

// AmountUi converts a raw token amount to its display amount.
func (token *Token) AmountUi(amount uint64) decimal.Decimal {
	amountUi := decimal.NewFromInt(int64(amount))
	amountUi = amountUi.Div(decimal.New(1, int32(token.Decimal)))
	return amountUi
}

func (e *Env) loadTokens() {
	infoJson, err := os.ReadFile(config.TokensFile)
	if err != nil {
		panic(err)
	}
	err = json.Unmarshal(infoJson, &e.tokens)
	if err != nil {
		panic(err)
	}
}

func (e *Env) Token(key solana.PublicKey) *Token {
	if item, ok := e.tokens[key]; ok {
		return item
	}
	return nil
}
