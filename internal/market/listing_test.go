package market

import (
	"errors"
	"testing"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/ledger"
	"github.com/ZilDuck/nft-market-engine/internal/registry"
	"github.com/ZilDuck/nft-market-engine/internal/repository"
	"github.com/stretchr/testify/require"
)

// flakyRegistry fails ClearListed on demand.
type flakyRegistry struct {
	registry.Registry
	failClear bool
}

func (r *flakyRegistry) ClearListed(caller entity.Address, tokenId uint64) error {
	if r.failClear {
		return errors.New("registry unavailable")
	}

	return r.Registry.ClearListed(caller, tokenId)
}

// mint creates an unlisted token owned by creator and returns its id.
func mint(t *testing.T, f *fixture, creator entity.Address) uint64 {
	t.Helper()

	firstId, _, err := f.market.CreateCollectible(creator, "https://cdn.example/drop/", 1, false, singleCreatorFee(creator, 1000, 1000), entity.SaleInfo{})
	require.NoError(t, err)

	return firstId
}

func TestPutTokenForSale(t *testing.T) {
	t.Run("lists an owned token", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)

		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(100)))
		require.True(t, f.registry.IsListed(tokenId))
	})

	t.Run("fails when already listed", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)

		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(100)))
		require.ErrorIs(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(100)), ErrAlreadyListed)
		require.ErrorIs(t, f.market.PutTokenForSale(bob, tokenId, fixedSale(100)), ErrAlreadyListed)
	})

	t.Run("fails without a fee record", func(t *testing.T) {
		f := newFixture(t)

		require.ErrorIs(t, f.market.PutTokenForSale(alice, 42, fixedSale(100)), ErrNoFeeRecord)
	})

	t.Run("fails when caller does not own the token", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)

		require.ErrorIs(t, f.market.PutTokenForSale(bob, tokenId, fixedSale(100)), ErrNotOwner)
	})

	t.Run("validates sale info", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)

		require.ErrorIs(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(0)), ErrInvalidSaleInfo)
	})
}

func TestRemoveTokenFromSale(t *testing.T) {
	t.Run("delists an owned listing", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)
		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(100)))

		require.NoError(t, f.market.RemoveTokenFromSale(alice, tokenId))
		require.False(t, f.registry.IsListed(tokenId))

		_, err := f.market.SalePrice(tokenId)
		require.ErrorIs(t, err, ErrNotFixedSale)
	})

	t.Run("fails when not listed", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)

		require.ErrorIs(t, f.market.RemoveTokenFromSale(alice, tokenId), ErrNotListed)
	})

	t.Run("only the listing owner may delist", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)
		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, fixedSale(100)))

		require.ErrorIs(t, f.market.RemoveTokenFromSale(bob, tokenId), ErrNotOwner)
	})

	t.Run("an auction with a live bid cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)
		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, f.auctionSale(100, 0, time.Hour)))

		f.fund(bob, 100)
		require.NoError(t, f.market.CreateBid(bob, tokenId, bigInt(100)))

		require.ErrorIs(t, f.market.RemoveTokenFromSale(alice, tokenId), ErrAuctionHasBids)
	})

	t.Run("a bidless auction can be cancelled", func(t *testing.T) {
		f := newFixture(t)
		tokenId := mint(t, f, alice)
		require.NoError(t, f.market.PutTokenForSale(alice, tokenId, f.auctionSale(100, 0, time.Hour)))

		require.NoError(t, f.market.RemoveTokenFromSale(alice, tokenId))
		require.False(t, f.registry.IsListed(tokenId))
	})

	t.Run("a registry failure leaves the listing fully live", func(t *testing.T) {
		reg := &flakyRegistry{Registry: registry.NewRegistry(adminAddr)}
		require.NoError(t, reg.GrantMarket(adminAddr, marketAddr))

		m := NewMarket(
			marketAddr,
			adminAddr,
			feeAddr,
			reg,
			ledger.NewToken(),
			repository.NewFeeRepository(),
			repository.NewSaleRepository(),
			time.Now,
		)

		tokenId, _, err := m.CreateCollectible(alice, "https://cdn.example/drop/", 1, true, singleCreatorFee(alice, 1000, 1000), fixedSale(100))
		require.NoError(t, err)

		reg.failClear = true
		require.Error(t, m.RemoveTokenFromSale(alice, tokenId))

		// The mark and the sale record both survive the failed delist.
		require.True(t, reg.IsListed(tokenId))
		price, err := m.SalePrice(tokenId)
		require.NoError(t, err)
		require.EqualValues(t, 100, price.Int64())

		reg.failClear = false
		require.NoError(t, m.RemoveTokenFromSale(alice, tokenId))
		require.False(t, reg.IsListed(tokenId))
	})
}

func TestReadAccessors(t *testing.T) {
	f := newFixture(t)

	fixedId := mint(t, f, alice)
	require.NoError(t, f.market.PutTokenForSale(alice, fixedId, fixedSale(100)))

	auctionId := mint(t, f, alice)
	require.NoError(t, f.market.PutTokenForSale(alice, auctionId, f.auctionSale(250, 0, time.Hour)))

	t.Run("sale price", func(t *testing.T) {
		price, err := f.market.SalePrice(fixedId)
		require.NoError(t, err)
		require.EqualValues(t, 100, price.Int64())

		_, err = f.market.SalePrice(auctionId)
		require.ErrorIs(t, err, ErrNotFixedSale)

		_, err = f.market.SalePrice(999)
		require.ErrorIs(t, err, ErrNotFixedSale)
	})

	t.Run("auction price falls back to the reserve", func(t *testing.T) {
		price, err := f.market.AuctionPrice(auctionId)
		require.NoError(t, err)
		require.EqualValues(t, 250, price.Int64())

		_, err = f.market.AuctionPrice(fixedId)
		require.ErrorIs(t, err, ErrNotAuction)
	})

	t.Run("auction price tracks the highest bid", func(t *testing.T) {
		f.fund(bob, 300)
		require.NoError(t, f.market.CreateBid(bob, auctionId, bigInt(300)))

		price, err := f.market.AuctionPrice(auctionId)
		require.NoError(t, err)
		require.EqualValues(t, 300, price.Int64())

		bidder, err := f.market.HighestBidder(auctionId)
		require.NoError(t, err)
		require.Equal(t, bob, bidder)
	})

	t.Run("highest bidder requires an auction", func(t *testing.T) {
		_, err := f.market.HighestBidder(fixedId)
		require.ErrorIs(t, err, ErrNotAuction)
	})
}
