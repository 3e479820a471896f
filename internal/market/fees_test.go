package market

import (
	"math/big"
	"testing"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestValidateFee(t *testing.T) {
	valid := entity.Fee{
		CommissionBps: 1000,
		RoyaltyBps:    1000,
		Creators:      []entity.Address{alice, bob},
		CreatorShares: []uint32{6000, 4000},
	}

	t.Run("accepts a valid fee", func(t *testing.T) {
		require.NoError(t, validateFee(valid, alice))
	})

	t.Run("commission plus royalty must stay under 100%", func(t *testing.T) {
		fee := valid
		fee.CommissionBps = 5000
		fee.RoyaltyBps = 5000

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("creators must not be empty", func(t *testing.T) {
		fee := valid
		fee.Creators = nil
		fee.CreatorShares = nil

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("creators and shares must align", func(t *testing.T) {
		fee := valid
		fee.CreatorShares = []uint32{10000}

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("creator addresses must not be zero", func(t *testing.T) {
		fee := valid
		fee.Creators = []entity.Address{alice, entity.ZeroAddress}

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("shares must sum to exactly 100%", func(t *testing.T) {
		fee := valid
		fee.CreatorShares = []uint32{6000, 3999}

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("caller must be a creator", func(t *testing.T) {
		require.ErrorIs(t, validateFee(valid, carol), ErrInvalidFee)
	})

	t.Run("oversized commission cannot wrap the sum back under 100%", func(t *testing.T) {
		fee := valid
		fee.CommissionBps = ^uint32(0) - 4998
		fee.RoyaltyBps = 6000

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("oversized shares cannot wrap the sum to exactly 100%", func(t *testing.T) {
		fee := valid
		fee.CreatorShares = []uint32{1 << 31, 1<<31 + 10000}

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})

	t.Run("single share above 100% is rejected", func(t *testing.T) {
		fee := valid
		fee.CreatorShares = []uint32{20000, 0}

		require.ErrorIs(t, validateFee(fee, alice), ErrInvalidFee)
	})
}

func TestValidateSaleInfo(t *testing.T) {
	t.Run("fixed price must be positive", func(t *testing.T) {
		require.ErrorIs(t, validateSaleInfo(entity.SaleInfo{}), ErrInvalidSaleInfo)
		require.ErrorIs(t, validateSaleInfo(entity.SaleInfo{ReservePrice: big.NewInt(0)}), ErrInvalidSaleInfo)
		require.NoError(t, validateSaleInfo(entity.SaleInfo{ReservePrice: big.NewInt(1)}))
	})

	t.Run("auction start must precede end", func(t *testing.T) {
		start := time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)

		require.ErrorIs(t, validateSaleInfo(entity.SaleInfo{
			IsAuction:    true,
			AuctionStart: start,
			AuctionEnd:   start,
		}), ErrInvalidSaleInfo)

		require.NoError(t, validateSaleInfo(entity.SaleInfo{
			IsAuction:    true,
			AuctionStart: start,
			AuctionEnd:   start.Add(time.Hour),
		}))
	})
}
