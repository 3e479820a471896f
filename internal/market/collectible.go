package market

import (
	"fmt"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/event"
	"go.uber.org/zap"
)

// MaxBatchTokens bounds a single drop. Larger collections are minted across
// multiple calls; ids stay sequential either way.
const MaxBatchTokens = 10000

// CreateCollectible mints numTokens sequential tokens under baseUri, records
// the fee for every one of them, and optionally lists them. Returns the
// inclusive [firstId, lastId] range.
//
// Auto-listing: a fixed-price drop lists every minted token; an auction drop
// lists only the first, since auto-creating one auction per token would turn
// a single drop into numTokens independent auctions.
func (m *market) CreateCollectible(caller entity.Address, baseUri string, numTokens uint64, forSale bool, fee entity.Fee, saleInfo entity.SaleInfo) (uint64, uint64, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if baseUri == "" {
		return 0, 0, ErrEmptyBaseUri
	}
	if numTokens == 0 {
		return 0, 0, ErrNoTokens
	}
	if numTokens > MaxBatchTokens {
		return 0, 0, ErrTooManyTokens
	}

	if err := validateFee(fee, caller); err != nil {
		return 0, 0, err
	}

	if forSale {
		if err := validateSaleInfo(saleInfo); err != nil {
			return 0, 0, err
		}
	}

	firstId := m.nextTokenId
	lastId := firstId + numTokens - 1
	if lastId < firstId {
		// Id space exhausted; the range would wrap.
		return 0, 0, ErrTooManyTokens
	}

	for tokenId := firstId; tokenId <= lastId; tokenId++ {
		tokenUri := fmt.Sprintf("%s%d", baseUri, tokenId)

		if err := m.registry.Mint(m.addr, caller, tokenId, tokenUri, caller, fee.RoyaltyBps); err != nil {
			return 0, 0, err
		}

		if err := m.feeRepo.SaveFee(tokenId, fee); err != nil {
			return 0, 0, err
		}

		m.nextTokenId = tokenId + 1

		if nft, err := m.registry.GetNft(tokenId); err == nil {
			event.EmitEvent(event.NftMintedEvent, entity.NftMinted{Market: m.addr, Nft: nft})
		}

		if forSale && (!saleInfo.IsAuction || tokenId == firstId) {
			if err := m.listToken(caller, tokenId, saleInfo); err != nil {
				return 0, 0, err
			}
		}
	}

	zap.L().With(
		zap.String("creator", caller.String()),
		zap.Uint64("firstId", firstId),
		zap.Uint64("lastId", lastId),
		zap.Bool("forSale", forSale),
	).Info("Market: collectible created")

	event.EmitEvent(event.BatchCreatedEvent, entity.BatchCreated{
		Market:  m.addr,
		Creator: caller,
		FirstId: firstId,
		LastId:  lastId,
	})

	return firstId, lastId, nil
}
