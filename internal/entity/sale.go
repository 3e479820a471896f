package entity

import (
	"math/big"
	"time"
)

// SaleInfo describes how a token should be listed.
type SaleInfo struct {
	IsAuction    bool      `json:"isAuction"`
	ReservePrice *big.Int  `json:"reservePrice"`
	AuctionStart time.Time `json:"auctionStart"`
	AuctionEnd   time.Time `json:"auctionEnd"`
}

// Sale is the live listing state for a token. The TokenOwner snapshot is
// captured at listing time and trusted for settlement; it is never re-read
// from the registry.
type Sale struct {
	TokenOwner Address `json:"tokenOwner"`
	SaleInfo

	AuctionAmount *big.Int `json:"auctionAmount"`
	AuctionBidder Address  `json:"auctionBidder"`
}

// HasBid reports whether at least one bid has been accepted on the auction.
func (s Sale) HasBid() bool {
	return s.AuctionAmount != nil && s.AuctionAmount.Sign() > 0
}

// CurrentPrice is the highest bid if one exists, otherwise the reserve price.
func (s Sale) CurrentPrice() *big.Int {
	if s.HasBid() {
		return s.AuctionAmount
	}

	return s.ReservePrice
}
