package market

import (
	"math/big"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/event"
	"go.uber.org/zap"
)

func (m *market) PutTokenForSale(caller entity.Address, tokenId uint64, saleInfo entity.SaleInfo) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.saleRepo.HasSale(tokenId) {
		return ErrAlreadyListed
	}

	if !m.feeRepo.HasFee(tokenId) {
		return ErrNoFeeRecord
	}

	owner, err := m.registry.OwnerOf(tokenId)
	if err != nil {
		return err
	}
	if !owner.Equals(caller) {
		return ErrNotOwner
	}

	if err := validateSaleInfo(saleInfo); err != nil {
		return err
	}

	return m.listToken(caller, tokenId, saleInfo)
}

// listToken creates the Sale snapshot and marks the token listed in the
// registry. Preconditions are the caller's responsibility.
func (m *market) listToken(owner entity.Address, tokenId uint64, saleInfo entity.SaleInfo) error {
	sale := entity.Sale{
		TokenOwner:    owner,
		SaleInfo:      saleInfo,
		AuctionAmount: new(big.Int),
		AuctionBidder: entity.ZeroAddress,
	}

	if err := m.saleRepo.SaveSale(tokenId, sale); err != nil {
		return err
	}

	if err := m.registry.SetListed(m.addr, tokenId); err != nil {
		m.saleRepo.DeleteSale(tokenId)
		return err
	}

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("owner", owner.String()),
		zap.Bool("auction", saleInfo.IsAuction),
	).Info("Market: token listed")

	event.EmitEvent(event.TokenListedEvent, entity.TokenListed{
		Market:  m.addr,
		Owner:   owner,
		TokenId: tokenId,
		Sale:    sale,
	})

	return nil
}

func (m *market) RemoveTokenFromSale(caller entity.Address, tokenId uint64) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil {
		return ErrNotListed
	}

	if !sale.TokenOwner.Equals(caller) {
		return ErrNotOwner
	}

	// A live bid means escrowed funds and a bidder expecting settlement.
	if sale.IsAuction && sale.HasBid() {
		return ErrAuctionHasBids
	}

	// Clear the registry mark first. If that fails the Sale record is still
	// in place and the listing stays fully live.
	if err := m.registry.ClearListed(m.addr, tokenId); err != nil {
		return err
	}

	m.saleRepo.DeleteSale(tokenId)

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("owner", caller.String()),
	).Info("Market: token delisted")

	event.EmitEvent(event.TokenDelistedEvent, entity.TokenDelisted{
		Market:  m.addr,
		Owner:   caller,
		TokenId: tokenId,
	})

	return nil
}

// SalePrice returns the asking price of a fixed-price listing.
func (m *market) SalePrice(tokenId uint64) (*big.Int, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil || sale.IsAuction {
		return nil, ErrNotFixedSale
	}

	return new(big.Int).Set(sale.ReservePrice), nil
}

// AuctionPrice returns the highest bid, or the reserve price while no bid
// has been placed.
func (m *market) AuctionPrice(tokenId uint64) (*big.Int, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil || !sale.IsAuction {
		return nil, ErrNotAuction
	}

	price := sale.CurrentPrice()
	if price == nil {
		return new(big.Int), nil
	}

	return new(big.Int).Set(price), nil
}

func (m *market) HighestBidder(tokenId uint64) (entity.Address, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil || !sale.IsAuction {
		return entity.ZeroAddress, ErrNotAuction
	}

	return sale.AuctionBidder, nil
}
