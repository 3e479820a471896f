package factory

import (
	"github.com/ZilDuck/nft-market-engine/internal/entity"
)

func CreateMintAction(minted entity.NftMinted, seq uint64) entity.MarketAction {
	return entity.MarketAction{
		TokenId: minted.Nft.TokenId,
		Action:  entity.MintAction,
		To:      minted.Nft.Owner.String(),
		Seq:     seq,
	}
}

func CreateListingAction(listed entity.TokenListed, seq uint64) entity.MarketAction {
	action := entity.MarketAction{
		TokenId: listed.TokenId,
		Action:  entity.ListingAction,
		From:    listed.Owner.String(),
		Seq:     seq,
	}

	if listed.Sale.ReservePrice != nil {
		action.Cost = listed.Sale.ReservePrice.String()
	}

	return action
}

func CreateDelistingAction(delisted entity.TokenDelisted, seq uint64) entity.MarketAction {
	return entity.MarketAction{
		TokenId: delisted.TokenId,
		Action:  entity.DelistingAction,
		From:    delisted.Owner.String(),
		Seq:     seq,
	}
}

func CreateSaleAction(sold entity.TokenSold, seq uint64) entity.MarketAction {
	return entity.MarketAction{
		TokenId: sold.TokenId,
		Action:  entity.SaleAction,
		From:    sold.PreviousOwner.String(),
		To:      sold.Buyer.String(),
		Cost:    sold.Price.String(),
		Seq:     seq,
	}
}

func CreateBidAction(bid entity.BidCreated, seq uint64) entity.MarketAction {
	return entity.MarketAction{
		TokenId: bid.TokenId,
		Action:  entity.BidAction,
		From:    bid.Bidder.String(),
		Cost:    bid.Amount.String(),
		Seq:     seq,
	}
}

func CreateAuctionEndAction(ended entity.AuctionEnded, seq uint64) entity.MarketAction {
	action := entity.MarketAction{
		TokenId: ended.TokenId,
		Action:  entity.AuctionEndAction,
		From:    ended.Owner.String(),
		To:      ended.Winner.String(),
		Seq:     seq,
	}

	if ended.Amount != nil {
		action.Cost = ended.Amount.String()
	}

	return action
}
