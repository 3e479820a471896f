package market

import (
	"math/big"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/event"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateBid admits a bid on a live auction. The first accepted bid must meet
// the reserve; every later bid must strictly exceed the current highest. The
// engine escrows exactly the highest bid at all times: a displaced bidder is
// refunded in full before the new bid is recorded, and a bidder raising
// their own bid is only charged the difference.
func (m *market) CreateBid(caller entity.Address, tokenId uint64, bid *big.Int) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil {
		return ErrNotListed
	}
	if !sale.IsAuction {
		return ErrNotAuction
	}

	now := m.now()
	if now.Before(sale.AuctionStart) {
		return ErrAuctionNotStarted
	}
	if !now.Before(sale.AuctionEnd) {
		return ErrAuctionEnded
	}

	if sale.TokenOwner.Equals(caller) {
		return ErrAlreadyOwner
	}

	if bid == nil || bid.Sign() <= 0 {
		return ErrInvalidBid
	}

	reserve := sale.ReservePrice
	if reserve == nil {
		reserve = new(big.Int)
	}
	if bid.Cmp(reserve) < 0 {
		return ErrBelowReserve
	}
	if bid.Cmp(sale.AuctionAmount) <= 0 {
		return ErrBidTooLow
	}

	if sale.AuctionBidder.Equals(caller) {
		// Top-up: the bidder's previous amount stays escrowed, only the
		// difference is pulled.
		delta := new(big.Int).Sub(bid, sale.AuctionAmount)
		if err := m.capture(caller, delta); err != nil {
			return err
		}
	} else {
		if err := m.capture(caller, bid); err != nil {
			return err
		}

		if !sale.AuctionBidder.IsZero() {
			// Refund failure aborts the whole bid; the capture above is the
			// only fallible step before this, and the escrow invariant
			// guarantees cover for the refund.
			if err := m.ledger.Transfer(m.addr, sale.AuctionBidder, sale.AuctionAmount); err != nil {
				return errors.Wrap(err, "refund outbid bidder")
			}
		}
	}

	sale.AuctionAmount = new(big.Int).Set(bid)
	sale.AuctionBidder = caller
	m.saleRepo.UpdateSale(tokenId, *sale)

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("bidder", caller.String()),
		zap.String("amount", bid.String()),
	).Info("Market: bid created")

	event.EmitEvent(event.BidCreatedEvent, entity.BidCreated{
		Market:  m.addr,
		TokenId: tokenId,
		Bidder:  caller,
		Amount:  new(big.Int).Set(bid),
	})

	return nil
}

// EndAuction finalizes an ended auction. Anyone may call it, so a seller
// cannot hold settlement hostage. With no bids the token is simply delisted
// and stays with its owner.
func (m *market) EndAuction(caller entity.Address, tokenId uint64) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	sale, err := m.saleRepo.GetSale(tokenId)
	if err != nil {
		return ErrNotListed
	}
	if !sale.IsAuction {
		return ErrNotAuction
	}

	if m.now().Before(sale.AuctionEnd) {
		return ErrAuctionNotEnded
	}

	winner := entity.ZeroAddress
	var amount *big.Int

	if sale.HasBid() {
		winner = sale.AuctionBidder
		amount = new(big.Int).Set(sale.AuctionAmount)

		if err := m.settle(tokenId, amount, sale.TokenOwner, winner); err != nil {
			return err
		}
	} else {
		if err := m.registry.ClearListed(m.addr, tokenId); err != nil {
			return err
		}
	}

	m.saleRepo.DeleteSale(tokenId)

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("owner", sale.TokenOwner.String()),
		zap.String("winner", winner.String()),
		zap.String("caller", caller.String()),
	).Info("Market: auction ended")

	event.EmitEvent(event.AuctionEndedEvent, entity.AuctionEnded{
		Market:  m.addr,
		TokenId: tokenId,
		Owner:   sale.TokenOwner,
		Winner:  winner,
		Amount:  amount,
	})

	return nil
}
