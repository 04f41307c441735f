package ledger

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egaotan/solana-swap/pool"
)

func testKey(b byte) solana.PublicKey {
	raw := make([]byte, 32)
	raw[0] = b
	return solana.PublicKeyFromBytes(raw)
}

var (
	mintX     = testKey(1)
	mintY     = testKey(2)
	shareMint = testKey(3)
	vaultX    = testKey(4)
	vaultY    = testKey(5)
	userX     = testKey(6)
	userY     = testKey(7)
	userLP    = testKey(8)
	owner     = testKey(9)
	poolKey   = testKey(10)
)

func testLedger(t *testing.T) *Ledger {
	l := NewLedger()
	require.NoError(t, l.CreateMint(mintX, 6))
	require.NoError(t, l.CreateMint(mintY, 6))
	require.NoError(t, l.CreateMint(shareMint, 6))
	require.NoError(t, l.CreateAccount(vaultX, mintX, poolKey, 1000000))
	require.NoError(t, l.CreateAccount(vaultY, mintY, poolKey, 1000000))
	require.NoError(t, l.CreateAccount(userX, mintX, owner, 50000))
	require.NoError(t, l.CreateAccount(userY, mintY, owner, 50000))
	require.NoError(t, l.CreateAccount(userLP, shareMint, owner, 0))
	return l
}

func TestCreate(t *testing.T) {
	l := testLedger(t)
	supply, err := l.Supply(mintX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1050000), supply)

	assert.Error(t, l.CreateMint(mintX, 6))
	assert.Error(t, l.CreateAccount(vaultX, mintX, poolKey, 0))
	assert.Error(t, l.CreateAccount(testKey(20), testKey(21), owner, 0))
}

func TestExecuteTransfer(t *testing.T) {
	l := testLedger(t)
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 10000},
	})
	require.NoError(t, err)

	balance, err := l.Balance(userX)
	require.NoError(t, err)
	assert.Equal(t, uint64(40000), balance)
	balance, err = l.Balance(vaultX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1010000), balance)
}

func TestExecuteMintBurn(t *testing.T) {
	l := testLedger(t)
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Mint, Token: shareMint, Destination: userLP, Amount: 777},
	})
	require.NoError(t, err)
	supply, err := l.Supply(shareMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(777), supply)

	err = l.Execute([]pool.Instruction{
		{Kind: pool.Burn, Token: shareMint, Source: userLP, Amount: 700},
	})
	require.NoError(t, err)
	supply, err = l.Supply(shareMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), supply)
	balance, err := l.Balance(userLP)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), balance)
}

func TestExecuteRejectsBadInstructions(t *testing.T) {
	l := testLedger(t)

	// insufficient balance
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 50001},
	})
	assert.Error(t, err)

	// mint mismatch between token and accounts
	err = l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintY, Source: userX, Destination: vaultX, Amount: 1},
	})
	assert.Error(t, err)

	// burn beyond balance
	err = l.Execute([]pool.Instruction{
		{Kind: pool.Burn, Token: shareMint, Source: userLP, Amount: 1},
	})
	assert.Error(t, err)
}

func TestExecuteIsAtomic(t *testing.T) {
	l := testLedger(t)
	// the first instruction is valid on its own, the second is not;
	// neither may apply
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 10000},
		{Kind: pool.Transfer, Token: mintY, Source: userY, Destination: vaultY, Amount: 50001},
	})
	require.Error(t, err)

	balance, err := l.Balance(userX)
	require.NoError(t, err)
	assert.Equal(t, uint64(50000), balance)
	balance, err = l.Balance(vaultX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), balance)
}

func TestExecuteRejectsCumulativeOverdraft(t *testing.T) {
	l := testLedger(t)
	// each transfer is covered by the starting balance, together they
	// overdraw the account
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 50000},
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 50000},
	})
	require.Error(t, err)

	balance, err := l.Balance(userX)
	require.NoError(t, err)
	assert.Equal(t, uint64(50000), balance)
	balance, err = l.Balance(vaultX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), balance)

	// burns compound the same way against both balance and supply
	require.NoError(t, l.Execute([]pool.Instruction{
		{Kind: pool.Mint, Token: shareMint, Destination: userLP, Amount: 100},
	}))
	err = l.Execute([]pool.Instruction{
		{Kind: pool.Burn, Token: shareMint, Source: userLP, Amount: 60},
		{Kind: pool.Burn, Token: shareMint, Source: userLP, Amount: 60},
	})
	require.Error(t, err)
	balance, err = l.Balance(userLP)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
	supply, err := l.Supply(shareMint)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), supply)
}

func TestExecuteCarriesEffectsForward(t *testing.T) {
	l := testLedger(t)
	// the second transfer is only covered because the first one funds
	// the source within the same batch
	err := l.Execute([]pool.Instruction{
		{Kind: pool.Transfer, Token: mintX, Source: vaultX, Destination: userX, Amount: 100000},
		{Kind: pool.Transfer, Token: mintX, Source: userX, Destination: vaultX, Amount: 120000},
	})
	require.NoError(t, err)

	balance, err := l.Balance(userX)
	require.NoError(t, err)
	assert.Equal(t, uint64(30000), balance)
	balance, err = l.Balance(vaultX)
	require.NoError(t, err)
	assert.Equal(t, uint64(1020000), balance)
}

func TestPoolState(t *testing.T) {
	l := testLedger(t)
	keys := pool.PoolKeys{
		Key:       poolKey,
		TokenX:    mintX,
		TokenY:    mintY,
		VaultX:    vaultX,
		VaultY:    vaultY,
		ShareMint: shareMint,
	}
	snapshot, err := l.PoolState(keys, 30, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), snapshot.ReserveX)
	assert.Equal(t, uint64(1000000), snapshot.ReserveY)
	assert.Equal(t, uint64(0), snapshot.ShareSupply)
	assert.Equal(t, uint16(30), snapshot.FeeBps)
	assert.Equal(t, uint8(6), snapshot.Decimals)
	assert.False(t, snapshot.Locked)

	_, err = l.PoolState(pool.PoolKeys{VaultX: testKey(99)}, 30, false)
	assert.Error(t, err)
}
