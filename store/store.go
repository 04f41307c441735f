package store

import (
	"context"
)

type Store struct {
	ctx          context.Context
	depositChan  chan *DepositRecord
	withdrawChan chan *WithdrawRecord
	swapChan     chan *SwapRecord
	dao          *Dao
}

func NewStore(ctx context.Context, url, scheme, user, passwd string) *Store {
	s := &Store{
		ctx:          ctx,
		depositChan:  make(chan *DepositRecord, 32),
		withdrawChan: make(chan *WithdrawRecord, 32),
		swapChan:     make(chan *SwapRecord, 32),
	}
	s.dao = NewDao(url, scheme, user, passwd)
	return s
}

func (s *Store) Start() {
	go s.store()
}

func (s *Store) Stop() {

}

func (s *Store) store() {
	for {
		select {
		case record := <-s.depositChan:
			s.dao.SaveDeposit(record)
		case record := <-s.withdrawChan:
			s.dao.SaveWithdraw(record)
		case record := <-s.swapChan:
			s.dao.SaveSwap(record)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Store) StoreDeposit(record *DepositRecord) {
	s.depositChan <- record
}

func (s *Store) StoreWithdraw(record *WithdrawRecord) {
	s.withdrawChan <- record
}

func (s *Store) StoreSwap(record *SwapRecord) {
	s.swapChan <- record
}

func (s *Store) GetDeposits(pool string) ([]*DepositRecord, error) {
	return s.dao.SelectDeposits(pool)
}

func (s *Store) GetWithdraws(pool string) ([]*WithdrawRecord, error) {
	return s.dao.SelectWithdraws(pool)
}

func (s *Store) GetSwaps(pool string) ([]*SwapRecord, error) {
	return s.dao.SelectSwaps(pool)
}
