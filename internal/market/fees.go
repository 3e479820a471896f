package market

import (
	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/pkg/errors"
)

// validateFee enforces the fee invariants before any state is written:
// commission plus royalty stays under 100%, creator shares sum to exactly
// 100%, every creator address is real, and the caller is one of them.
// Sums accumulate in uint64 so oversized bps values cannot wrap back into
// the valid range.
func validateFee(fee entity.Fee, caller entity.Address) error {
	if uint64(fee.CommissionBps)+uint64(fee.RoyaltyBps) >= uint64(entity.TotalBps) {
		return errors.Wrap(ErrInvalidFee, "commission and royalty must total less than 100%")
	}

	if len(fee.Creators) == 0 {
		return errors.Wrap(ErrInvalidFee, "creators must not be empty")
	}

	if len(fee.Creators) != len(fee.CreatorShares) {
		return errors.Wrap(ErrInvalidFee, "creators and shares length mismatch")
	}

	for _, creator := range fee.Creators {
		if creator.IsZero() {
			return errors.Wrap(ErrInvalidFee, "creator address must not be zero")
		}
	}

	var total uint64
	for _, share := range fee.CreatorShares {
		if share > entity.TotalBps {
			return errors.Wrap(ErrInvalidFee, "creator share exceeds 100%")
		}
		total += uint64(share)
	}

	if total != uint64(entity.TotalBps) {
		return errors.Wrap(ErrInvalidFee, "creator shares must sum to 100%")
	}

	if !fee.HasCreator(caller) {
		return errors.Wrap(ErrInvalidFee, "caller is not a creator")
	}

	return nil
}

// validateSaleInfo checks the listing parameters: auctions need a valid time
// window, fixed-price sales need a positive price.
func validateSaleInfo(saleInfo entity.SaleInfo) error {
	if saleInfo.IsAuction {
		if !saleInfo.AuctionStart.Before(saleInfo.AuctionEnd) {
			return errors.Wrap(ErrInvalidSaleInfo, "auction start must precede end")
		}

		return nil
	}

	if saleInfo.ReservePrice == nil || saleInfo.ReservePrice.Sign() <= 0 {
		return errors.Wrap(ErrInvalidSaleInfo, "price must be positive")
	}

	return nil
}
