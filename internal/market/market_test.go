package market

import (
	"math/big"
	"testing"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/ledger"
	"github.com/ZilDuck/nft-market-engine/internal/registry"
	"github.com/ZilDuck/nft-market-engine/internal/repository"
	"github.com/stretchr/testify/require"
)

const (
	marketAddr = entity.Address("0x1000000000000000000000000000000000000001")
	adminAddr  = entity.Address("0x1000000000000000000000000000000000000002")
	feeAddr    = entity.Address("0x1000000000000000000000000000000000000003")
	alice      = entity.Address("0xa000000000000000000000000000000000000001")
	bob        = entity.Address("0xb000000000000000000000000000000000000001")
	carol      = entity.Address("0xc000000000000000000000000000000000000001")
	dave       = entity.Address("0xd000000000000000000000000000000000000001")
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	market   Market
	registry registry.Registry
	token    *ledger.Token
	clock    *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	reg := registry.NewRegistry(adminAddr)
	require.NoError(t, reg.GrantMarket(adminAddr, marketAddr))

	token := ledger.NewToken()
	clock := &testClock{now: time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)}

	m := NewMarket(
		marketAddr,
		adminAddr,
		feeAddr,
		reg,
		token,
		repository.NewFeeRepository(),
		repository.NewSaleRepository(),
		clock.Now,
	)

	return &fixture{market: m, registry: reg, token: token, clock: clock}
}

// fund credits an account and approves the market to spend it.
func (f *fixture) fund(addr entity.Address, amount int64) {
	f.token.Credit(addr, big.NewInt(amount))
	f.token.Approve(addr, marketAddr, big.NewInt(amount))
}

func (f *fixture) balance(addr entity.Address) int64 {
	return f.token.BalanceOf(addr).Int64()
}

func bigInt(n int64) *big.Int {
	return big.NewInt(n)
}

func singleCreatorFee(creator entity.Address, commissionBps, royaltyBps uint32) entity.Fee {
	return entity.Fee{
		CommissionBps: commissionBps,
		RoyaltyBps:    royaltyBps,
		Creators:      []entity.Address{creator},
		CreatorShares: []uint32{10000},
	}
}

func fixedSale(price int64) entity.SaleInfo {
	return entity.SaleInfo{ReservePrice: big.NewInt(price)}
}

func (f *fixture) auctionSale(reserve int64, start, end time.Duration) entity.SaleInfo {
	return entity.SaleInfo{
		IsAuction:    true,
		ReservePrice: big.NewInt(reserve),
		AuctionStart: f.clock.now.Add(start),
		AuctionEnd:   f.clock.now.Add(end),
	}
}

func TestSetCommissionRecipient(t *testing.T) {
	f := newFixture(t)

	t.Run("admin only", func(t *testing.T) {
		err := f.market.SetCommissionRecipient(alice, bob)
		require.ErrorIs(t, err, ErrNotAdmin)
	})

	t.Run("rejects zero address", func(t *testing.T) {
		err := f.market.SetCommissionRecipient(adminAddr, entity.ZeroAddress)
		require.ErrorIs(t, err, ErrZeroAddress)
	})

	t.Run("updates recipient", func(t *testing.T) {
		require.NoError(t, f.market.SetCommissionRecipient(adminAddr, dave))
		require.Equal(t, dave, f.market.CommissionRecipient())
	})
}
