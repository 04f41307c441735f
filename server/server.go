package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"

	"github.com/egaotan/solana-swap/config"
	"github.com/egaotan/solana-swap/curve"
	"github.com/egaotan/solana-swap/env"
	"github.com/egaotan/solana-swap/ledger"
	"github.com/egaotan/solana-swap/pool"
	"github.com/egaotan/solana-swap/store"
	"github.com/egaotan/solana-swap/utils"
)

// every operation on a pool holds its mutex from snapshot read to
// instruction application, so two operations never interleave on the
// same pool
type poolEntry struct {
	mu     sync.Mutex
	cfg    *config.Pool
	engine *pool.Engine
}

// Server fronts the pool engines with an HTTP API. Every operation
// reads one snapshot from the ledger, runs the engine, and applies the
// emitted instructions while holding the pool mutex, so a snapshot
// never reflects part of another operation's effect.
type Server struct {
	ctx        context.Context
	cfg        *config.Config
	logger     *log.Logger
	env        *env.Env
	ledger     *ledger.Ledger
	store      *store.Store
	pools      map[solana.PublicKey]*poolEntry
	users      map[solana.PublicKey]*config.User
	httpServer *http.Server
}

func NewServer(ctx context.Context, cfg *config.Config, tokenEnv *env.Env) *Server {
	s := &Server{
		ctx:    ctx,
		cfg:    cfg,
		logger: utils.NewLog(config.LogPath, config.ServerLog),
		env:    tokenEnv,
		ledger: ledger.NewLedger(),
		pools:  make(map[solana.PublicKey]*poolEntry),
		users:  make(map[solana.PublicKey]*config.User),
	}
	if cfg.DumpDB {
		s.store = store.NewStore(ctx, cfg.DBUrl, cfg.DBScheme, cfg.DBUser, cfg.DBPasswd)
	}
	engineLog := utils.NewLog(config.LogPath, config.EngineLog)
	for _, item := range cfg.Pools {
		keys := pool.PoolKeys{
			Key:       item.Key,
			TokenX:    item.TokenX,
			TokenY:    item.TokenY,
			VaultX:    item.VaultX,
			VaultY:    item.VaultY,
			ShareMint: item.ShareMint,
		}
		s.pools[item.Key] = &poolEntry{
			cfg:    item,
			engine: pool.NewEngine(keys, engineLog),
		}
	}
	for _, user := range cfg.Users {
		s.users[user.Owner] = user
	}
	s.bootstrap()
	return s
}

// bootstrap seeds the ledger from the configuration: one mint per
// token, vaults with the configured reserves, and for a non-empty pool
// a genesis share account so supply and reserves stay coupled.
func (s *Server) bootstrap() {
	mints := make(map[solana.PublicKey]bool)
	createMint := func(key solana.PublicKey, decimals uint8) {
		if mints[key] {
			return
		}
		if err := s.ledger.CreateMint(key, decimals); err != nil {
			panic(err)
		}
		mints[key] = true
	}
	for _, entry := range s.pools {
		item := entry.cfg
		createMint(item.TokenX, item.Decimals)
		createMint(item.TokenY, item.Decimals)
		createMint(item.ShareMint, item.Decimals)
		if err := s.ledger.CreateAccount(item.VaultX, item.TokenX, item.Key, item.ReserveX); err != nil {
			panic(err)
		}
		if err := s.ledger.CreateAccount(item.VaultY, item.TokenY, item.Key, item.ReserveY); err != nil {
			panic(err)
		}
		if item.ReserveX > 0 && item.ReserveY > 0 {
			shares, err := curve.BootstrapShares(item.ReserveX, item.ReserveY)
			if err != nil {
				panic(err)
			}
			if err := s.ledger.CreateAccount(item.Key, item.ShareMint, item.Key, shares); err != nil {
				panic(err)
			}
		}
	}
	for _, user := range s.cfg.Users {
		entry, ok := s.pools[user.Pool]
		if !ok {
			panic(fmt.Errorf("no pool of the key - %s", user.Pool))
		}
		item := entry.cfg
		if err := s.ledger.CreateAccount(user.TokenX, item.TokenX, user.Owner, user.BalanceX); err != nil {
			panic(err)
		}
		if err := s.ledger.CreateAccount(user.TokenY, item.TokenY, user.Owner, user.BalanceY); err != nil {
			panic(err)
		}
		if err := s.ledger.CreateAccount(user.Shares, item.ShareMint, user.Owner, 0); err != nil {
			panic(err)
		}
	}
}

func (s *Server) Service() {
	s.Start()
	s.StartRPC()
	<-s.ctx.Done()
	s.StopRPC()
	s.Stop()
}

func (s *Server) Start() {
	if s.store != nil {
		s.store.Start()
	}
}

func (s *Server) Stop() {
	if s.store != nil {
		s.store.Stop()
	}
}

func (s *Server) StartRPC() {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.Router(),
	}
	s.logger.Printf("start rpc server......")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil {
			s.logger.Printf("ListenAndServe: %s", err.Error())
		}
	}()
}

func (s *Server) StopRPC() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		panic(err)
	}
	s.logger.Printf("rpc server has stopped......")
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	router := gin.New()
	g := router.Group("/api")
	g.GET("/pools", s.listPools)
	g.GET("/pool/:key", s.poolState)
	g.POST("/quote", s.quote)
	g.POST("/deposit", s.deposit)
	g.POST("/withdraw", s.withdraw)
	g.POST("/swap", s.swap)
	return router
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, pool.ErrPoolLocked):
		return http.StatusForbidden
	case errors.Is(err, pool.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, pool.ErrSlippageExceeded):
		return http.StatusConflict
	case errors.Is(err, pool.ErrInsufficientLiquidity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pool.ErrUndefinedPrice):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pool.ErrOverflow), errors.Is(err, pool.ErrDivByZero):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
