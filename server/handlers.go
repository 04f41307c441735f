package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"

	"github.com/egaotan/solana-swap/config"
	"github.com/egaotan/solana-swap/curve"
	"github.com/egaotan/solana-swap/pool"
	"github.com/egaotan/solana-swap/store"
)

func (s *Server) findPool(key string) (*poolEntry, error) {
	poolKey, err := solana.PublicKeyFromBase58(key)
	if err != nil {
		return nil, fmt.Errorf("pool key is not valid - %s", key)
	}
	entry, ok := s.pools[poolKey]
	if !ok {
		return nil, fmt.Errorf("no pool of the key - %s", key)
	}
	return entry, nil
}

func (s *Server) findUser(owner string) (*config.User, error) {
	ownerKey, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, fmt.Errorf("owner key is not valid - %s", owner)
	}
	user, ok := s.users[ownerKey]
	if !ok {
		return nil, fmt.Errorf("no user of the key - %s", owner)
	}
	return user, nil
}

func (s *Server) snapshot(entry *poolEntry) (curve.PoolSnapshot, error) {
	return s.ledger.PoolState(entry.engine.Keys(), entry.cfg.FeeBps, entry.cfg.Locked)
}

func poolUser(user *config.User) pool.User {
	return pool.User{
		Owner:  user.Owner,
		TokenX: user.TokenX,
		TokenY: user.TokenY,
		Shares: user.Shares,
	}
}

func (s *Server) listPools(c *gin.Context) {
	responses := make([]*PoolResponse, 0, len(s.pools))
	for _, entry := range s.pools {
		response, err := s.buildPoolResponse(entry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
			return
		}
		responses = append(responses, response)
	}
	c.JSON(http.StatusOK, responses)
}

func (s *Server) poolState(c *gin.Context) {
	entry, err := s.findPool(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	response, err := s.buildPoolResponse(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) buildPoolResponse(entry *poolEntry) (*PoolResponse, error) {
	snapshot, err := s.snapshot(entry)
	if err != nil {
		return nil, err
	}
	response := &PoolResponse{
		Key:         entry.cfg.Key.String(),
		TokenX:      entry.cfg.TokenX.String(),
		TokenY:      entry.cfg.TokenY.String(),
		ReserveX:    snapshot.ReserveX,
		ReserveY:    snapshot.ReserveY,
		ShareSupply: snapshot.ShareSupply,
		FeeBps:      snapshot.FeeBps,
		Locked:      snapshot.Locked,
	}
	tokenX := s.env.Token(entry.cfg.TokenX)
	tokenY := s.env.Token(entry.cfg.TokenY)
	if tokenX != nil && tokenY != nil && snapshot.ReserveX > 0 {
		amountX := tokenX.AmountUi(snapshot.ReserveX)
		amountY := tokenY.AmountUi(snapshot.ReserveY)
		response.ReserveXUi = amountX.StringFixed(2)
		response.ReserveYUi = amountY.StringFixed(2)
		response.Price = amountY.Div(amountX).StringFixed(5)
	}
	return response, nil
}

func (s *Server) quote(c *gin.Context) {
	var request QuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := s.findPool(request.Pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	side, err := parseSide(request.Side)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	snapshot, err := s.snapshot(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	out, err := curve.SwapOutput(snapshot, side, request.InputAmount)
	if err != nil {
		c.JSON(statusFromError(err), &ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, &QuoteResponse{
		Pool:      request.Pool,
		AmountIn:  request.InputAmount,
		AmountOut: out,
	})
}

func (s *Server) deposit(c *gin.Context) {
	var request DepositRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := s.findPool(request.Pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	user, err := s.findUser(request.Owner)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	snapshot, err := s.snapshot(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	result, instructions, err := entry.engine.Deposit(snapshot, &pool.DepositRequest{
		ShareAmount: request.ShareAmount,
		MaxX:        request.MaxX,
		MaxY:        request.MaxY,
	}, poolUser(user))
	if err != nil {
		c.JSON(statusFromError(err), &ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.ledger.Execute(instructions); err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	if s.store != nil {
		s.store.StoreDeposit(&store.DepositRecord{
			Pool:        request.Pool,
			User:        request.Owner,
			ShareAmount: request.ShareAmount,
			AmountX:     result.AmountX,
			AmountY:     result.AmountY,
			Time:        uint64(time.Now().UnixNano() / time.Microsecond.Nanoseconds()),
		})
	}
	c.JSON(http.StatusOK, &DepositResponse{
		Pool:        request.Pool,
		ShareAmount: request.ShareAmount,
		AmountX:     result.AmountX,
		AmountY:     result.AmountY,
	})
}

func (s *Server) withdraw(c *gin.Context) {
	var request WithdrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := s.findPool(request.Pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	user, err := s.findUser(request.Owner)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	snapshot, err := s.snapshot(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	result, instructions, err := entry.engine.Withdraw(snapshot, &pool.WithdrawRequest{
		ShareAmount: request.ShareAmount,
		MinX:        request.MinX,
		MinY:        request.MinY,
	}, poolUser(user))
	if err != nil {
		c.JSON(statusFromError(err), &ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.ledger.Execute(instructions); err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	if s.store != nil {
		s.store.StoreWithdraw(&store.WithdrawRecord{
			Pool:        request.Pool,
			User:        request.Owner,
			ShareAmount: request.ShareAmount,
			AmountX:     result.AmountX,
			AmountY:     result.AmountY,
			Time:        uint64(time.Now().UnixNano() / time.Microsecond.Nanoseconds()),
		})
	}
	c.JSON(http.StatusOK, &WithdrawResponse{
		Pool:        request.Pool,
		ShareAmount: request.ShareAmount,
		AmountX:     result.AmountX,
		AmountY:     result.AmountY,
	})
}

func (s *Server) swap(c *gin.Context) {
	var request SwapRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry, err := s.findPool(request.Pool)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	user, err := s.findUser(request.Owner)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	side, err := parseSide(request.Side)
	if err != nil {
		c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	snapshot, err := s.snapshot(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	summary, instructions, err := entry.engine.Swap(snapshot, &pool.SwapRequest{
		Side:        side,
		InputAmount: request.InputAmount,
		MinOutput:   request.MinOutput,
	}, poolUser(user))
	if err != nil {
		c.JSON(statusFromError(err), &ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.ledger.Execute(instructions); err != nil {
		c.JSON(http.StatusInternalServerError, &ErrorResponse{Error: err.Error()})
		return
	}
	tokenIn, tokenOut := entry.cfg.TokenX, entry.cfg.TokenY
	if side == curve.SideY {
		tokenIn, tokenOut = entry.cfg.TokenY, entry.cfg.TokenX
	}
	if s.store != nil {
		s.store.StoreSwap(&store.SwapRecord{
			Pool:      request.Pool,
			User:      request.Owner,
			TokenIn:   tokenIn.String(),
			AmountIn:  summary.Deposit,
			TokenOut:  tokenOut.String(),
			AmountOut: summary.Withdraw,
			Time:      uint64(time.Now().UnixNano() / time.Microsecond.Nanoseconds()),
		})
	}
	c.JSON(http.StatusOK, &SwapResponse{
		Pool:      request.Pool,
		TokenIn:   tokenIn.String(),
		AmountIn:  summary.Deposit,
		TokenOut:  tokenOut.String(),
		AmountOut: summary.Withdraw,
	})
}
