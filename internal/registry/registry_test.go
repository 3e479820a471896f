package registry

import (
	"math/big"
	"testing"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	admin  = entity.Address("0x1000000000000000000000000000000000000002")
	market = entity.Address("0x1000000000000000000000000000000000000001")
	alice  = entity.Address("0xa000000000000000000000000000000000000001")
	bob    = entity.Address("0xb000000000000000000000000000000000000001")
)

func newTestRegistry(t *testing.T) Registry {
	t.Helper()

	r := NewRegistry(admin)
	require.NoError(t, r.GrantMarket(admin, market))

	return r
}

func TestGrantMarket(t *testing.T) {
	r := NewRegistry(admin)

	require.ErrorIs(t, r.GrantMarket(alice, market), ErrNotAdmin)
	require.ErrorIs(t, r.GrantMarket(admin, entity.ZeroAddress), ErrZeroAddress)
	require.NoError(t, r.GrantMarket(admin, market))
}

func TestMint(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("market only", func(t *testing.T) {
		err := r.Mint(alice, alice, 1, "https://cdn.example/1", alice, 1000)
		require.ErrorIs(t, err, ErrNotMarket)
	})

	t.Run("mints a token", func(t *testing.T) {
		require.NoError(t, r.Mint(market, alice, 1, "https://cdn.example/1", alice, 1000))

		owner, err := r.OwnerOf(1)
		require.NoError(t, err)
		require.Equal(t, alice, owner)

		uri, err := r.TokenUri(1)
		require.NoError(t, err)
		require.Equal(t, "https://cdn.example/1", uri)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		err := r.Mint(market, alice, 1, "https://cdn.example/1", alice, 1000)
		require.ErrorIs(t, err, ErrTokenExists)
	})
}

func TestRoyaltyInfo(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Mint(market, bob, 1, "uri", alice, 250))

	receiver, amount, err := r.RoyaltyInfo(1, big.NewInt(10000))
	require.NoError(t, err)
	require.Equal(t, alice, receiver)
	require.EqualValues(t, 250, amount.Int64())

	// Truncating division.
	_, amount, err = r.RoyaltyInfo(1, big.NewInt(39))
	require.NoError(t, err)
	require.EqualValues(t, 0, amount.Int64())

	_, _, err = r.RoyaltyInfo(42, big.NewInt(100))
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTransfer(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Mint(market, alice, 1, "uri", alice, 0))

	t.Run("owner only", func(t *testing.T) {
		require.ErrorIs(t, r.Transfer(bob, bob, 1), ErrNotTokenOwner)
	})

	t.Run("blocked while listed", func(t *testing.T) {
		require.NoError(t, r.SetListed(market, 1))
		require.ErrorIs(t, r.Transfer(alice, bob, 1), ErrTokenListed)
		require.NoError(t, r.ClearListed(market, 1))
	})

	t.Run("moves ownership", func(t *testing.T) {
		require.NoError(t, r.Transfer(alice, bob, 1))

		owner, err := r.OwnerOf(1)
		require.NoError(t, err)
		require.Equal(t, bob, owner)
	})
}

func TestMarketTransfer(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Mint(market, alice, 1, "uri", alice, 0))

	t.Run("market only", func(t *testing.T) {
		require.ErrorIs(t, r.MarketTransfer(bob, alice, bob, 1), ErrNotMarket)
	})

	t.Run("requires the listed mark", func(t *testing.T) {
		require.ErrorIs(t, r.MarketTransfer(market, alice, bob, 1), ErrTokenNotListed)
	})

	t.Run("transfers and consumes the listed mark", func(t *testing.T) {
		require.NoError(t, r.SetListed(market, 1))
		require.NoError(t, r.MarketTransfer(market, alice, bob, 1))

		owner, err := r.OwnerOf(1)
		require.NoError(t, err)
		require.Equal(t, bob, owner)
		require.False(t, r.IsListed(1))
	})
}

func TestListedMark(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Mint(market, alice, 1, "uri", alice, 0))

	require.ErrorIs(t, r.SetListed(alice, 1), ErrNotMarket)
	require.ErrorIs(t, r.SetListed(market, 42), ErrTokenNotFound)

	require.False(t, r.IsListed(1))
	require.NoError(t, r.SetListed(market, 1))
	require.True(t, r.IsListed(1))
	require.NoError(t, r.ClearListed(market, 1))
	require.False(t, r.IsListed(1))
}
