package market

import (
	"math/big"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/event"
	"go.uber.org/zap"
)

// PurchaseToken settles a fixed-price listing. The buyer must have approved
// the market for at least the asking price on the ledger.
func (m *market) PurchaseToken(caller entity.Address, tokenId uint64) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil {
		return ErrNotListed
	}
	if sale.IsAuction {
		return ErrNotFixedSale
	}

	if sale.TokenOwner.Equals(caller) {
		return ErrAlreadyOwner
	}

	price := new(big.Int).Set(sale.ReservePrice)

	if err := m.capture(caller, price); err != nil {
		return err
	}

	if err := m.settle(tokenId, price, sale.TokenOwner, caller); err != nil {
		return err
	}

	m.saleRepo.DeleteSale(tokenId)

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", sale.TokenOwner.String()),
		zap.String("buyer", caller.String()),
		zap.String("price", price.String()),
	).Info("Market: token sold")

	event.EmitEvent(event.TokenSoldEvent, entity.TokenSold{
		Market:        m.addr,
		TokenId:       tokenId,
		PreviousOwner: sale.TokenOwner,
		Buyer:         caller,
		Price:         price,
	})

	return nil
}
