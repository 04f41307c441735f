package ledger

import (
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/egaotan/solana-swap/curve"
	"github.com/egaotan/solana-swap/pool"
)

// Account is a token balance held by an owner.
type Account struct {
	Key    solana.PublicKey
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

// Mint tracks the outstanding supply of one token.
type Mint struct {
	Key      solana.PublicKey
	Supply   uint64
	Decimals uint8
}

// Ledger is an in-memory account layer. It serializes every
// transaction behind one mutex so a snapshot read and the instruction
// batch applied after it never interleave with another operation.
type Ledger struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey]*Account
	mints    map[solana.PublicKey]*Mint
}

func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[solana.PublicKey]*Account),
		mints:    make(map[solana.PublicKey]*Mint),
	}
}

func (l *Ledger) CreateMint(key solana.PublicKey, decimals uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.mints[key]; ok {
		return fmt.Errorf("mint(%s) already exists", key)
	}
	l.mints[key] = &Mint{Key: key, Decimals: decimals}
	return nil
}

func (l *Ledger) CreateAccount(key, mint, owner solana.PublicKey, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accounts[key]; ok {
		return fmt.Errorf("account(%s) already exists", key)
	}
	m, ok := l.mints[mint]
	if !ok {
		return fmt.Errorf("mint(%s) does not exist", mint)
	}
	if m.Supply+amount < m.Supply {
		return fmt.Errorf("mint(%s) supply overflow", mint)
	}
	m.Supply += amount
	l.accounts[key] = &Account{Key: key, Mint: mint, Owner: owner, Amount: amount}
	return nil
}

func (l *Ledger) Balance(key solana.PublicKey) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[key]
	if !ok {
		return 0, fmt.Errorf("account(%s) does not exist", key)
	}
	return account.Amount, nil
}

func (l *Ledger) Supply(mint solana.PublicKey) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.mints[mint]
	if !ok {
		return 0, fmt.Errorf("mint(%s) does not exist", mint)
	}
	return m.Supply, nil
}

// PoolState assembles the pricing snapshot of one pool from the vault
// balances and the share mint supply. Fee and lock state are pool
// configuration, not ledger state.
func (l *Ledger) PoolState(keys pool.PoolKeys, feeBps uint16, locked bool) (curve.PoolSnapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	vaultX, ok := l.accounts[keys.VaultX]
	if !ok {
		return curve.PoolSnapshot{}, fmt.Errorf("vault(%s) does not exist", keys.VaultX)
	}
	vaultY, ok := l.accounts[keys.VaultY]
	if !ok {
		return curve.PoolSnapshot{}, fmt.Errorf("vault(%s) does not exist", keys.VaultY)
	}
	shareMint, ok := l.mints[keys.ShareMint]
	if !ok {
		return curve.PoolSnapshot{}, fmt.Errorf("mint(%s) does not exist", keys.ShareMint)
	}
	return curve.PoolSnapshot{
		ReserveX:    vaultX.Amount,
		ReserveY:    vaultY.Amount,
		ShareSupply: shareMint.Supply,
		FeeBps:      feeBps,
		Decimals:    shareMint.Decimals,
		Locked:      locked,
	}, nil
}

// Execute applies a batch of instructions as one unit. The batch runs
// against a staged view that carries each instruction's effect forward,
// so instructions that are individually covered but cumulatively
// overdraw an account still fail; a failed batch leaves every balance
// untouched.
func (l *Ledger) Execute(instructions []pool.Instruction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := l.stage()
	for i := range instructions {
		if err := st.apply(&instructions[i]); err != nil {
			return err
		}
	}
	st.commit()
	return nil
}

// staging overlays pending balance and supply changes on the ledger.
// A batch mutates the overlay only; commit writes it back.
type staging struct {
	ledger   *Ledger
	balances map[solana.PublicKey]uint64
	supplies map[solana.PublicKey]uint64
}

func (l *Ledger) stage() *staging {
	return &staging{
		ledger:   l,
		balances: make(map[solana.PublicKey]uint64),
		supplies: make(map[solana.PublicKey]uint64),
	}
}

func (s *staging) account(key solana.PublicKey) (*Account, error) {
	account, ok := s.ledger.accounts[key]
	if !ok {
		return nil, fmt.Errorf("account(%s) does not exist", key)
	}
	return account, nil
}

func (s *staging) balance(key solana.PublicKey) uint64 {
	if amount, ok := s.balances[key]; ok {
		return amount
	}
	return s.ledger.accounts[key].Amount
}

func (s *staging) supply(key solana.PublicKey) uint64 {
	if supply, ok := s.supplies[key]; ok {
		return supply
	}
	return s.ledger.mints[key].Supply
}

func (s *staging) apply(in *pool.Instruction) error {
	switch in.Kind {
	case pool.Transfer:
		source, err := s.account(in.Source)
		if err != nil {
			return err
		}
		destination, err := s.account(in.Destination)
		if err != nil {
			return err
		}
		if source.Mint != in.Token || destination.Mint != in.Token {
			return fmt.Errorf("transfer token(%s) does not match accounts", in.Token)
		}
		amount := s.balance(in.Source)
		if amount < in.Amount {
			return fmt.Errorf("account(%s) balance %d is less than %d", in.Source, amount, in.Amount)
		}
		s.balances[in.Source] = amount - in.Amount
		amount = s.balance(in.Destination)
		if amount+in.Amount < amount {
			return fmt.Errorf("account(%s) balance overflow", in.Destination)
		}
		s.balances[in.Destination] = amount + in.Amount
	case pool.Mint:
		if _, ok := s.ledger.mints[in.Token]; !ok {
			return fmt.Errorf("mint(%s) does not exist", in.Token)
		}
		destination, err := s.account(in.Destination)
		if err != nil {
			return err
		}
		if destination.Mint != in.Token {
			return fmt.Errorf("mint token(%s) does not match account", in.Token)
		}
		supply := s.supply(in.Token)
		if supply+in.Amount < supply {
			return fmt.Errorf("mint(%s) supply overflow", in.Token)
		}
		s.supplies[in.Token] = supply + in.Amount
		amount := s.balance(in.Destination)
		if amount+in.Amount < amount {
			return fmt.Errorf("account(%s) balance overflow", in.Destination)
		}
		s.balances[in.Destination] = amount + in.Amount
	case pool.Burn:
		if _, ok := s.ledger.mints[in.Token]; !ok {
			return fmt.Errorf("mint(%s) does not exist", in.Token)
		}
		source, err := s.account(in.Source)
		if err != nil {
			return err
		}
		if source.Mint != in.Token {
			return fmt.Errorf("burn token(%s) does not match account", in.Token)
		}
		amount := s.balance(in.Source)
		if amount < in.Amount {
			return fmt.Errorf("account(%s) balance %d is less than %d", in.Source, amount, in.Amount)
		}
		supply := s.supply(in.Token)
		if supply < in.Amount {
			return fmt.Errorf("mint(%s) supply %d is less than %d", in.Token, supply, in.Amount)
		}
		s.balances[in.Source] = amount - in.Amount
		s.supplies[in.Token] = supply - in.Amount
	default:
		return fmt.Errorf("instruction kind %d is not supported", in.Kind)
	}
	return nil
}

func (s *staging) commit() {
	for key, amount := range s.balances {
		s.ledger.accounts[key].Amount = amount
	}
	for key, supply := range s.supplies {
		s.ledger.mints[key].Supply = supply
	}
}
