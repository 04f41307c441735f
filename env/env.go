package env

import (
	"context"
	"log"

	"github.com/gagliardetto/solana-go"
)

type Env struct {
	logger *log.Logger
	ctx    context.Context
	tokens map[solana.PublicKey]*Token
}

func NewEnv(ctx context.Context) *Env {
	env := &Env{
		ctx:    ctx,
		logger: log.Default(),
		tokens: make(map[solana.PublicKey]*Token),
	}
	return env
}

func (e *Env) Start() {
	e.logger.Printf("start env......")
	e.loadTokens()
}

func (e *Env) Stop() {
	e.logger.Printf("stop env......")
}
