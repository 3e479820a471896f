package entity

import (
	"crypto/md5"
	"fmt"
)

// MarketAction is the flattened document indexed for every market state
// transition, consumed by external indexers.
type MarketAction struct {
	TokenId uint64     `json:"tokenId"`
	Action  ActionType `json:"action"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Cost    string     `json:"cost"`
	Fee     string     `json:"fee"`
	Royalty string     `json:"royalty"`
	Seq     uint64     `json:"seq"`
}

type ActionType string

const (
	MintAction       ActionType = "mint"
	ListingAction    ActionType = "listing"
	DelistingAction  ActionType = "delisting"
	SaleAction       ActionType = "sale"
	BidAction        ActionType = "bid"
	AuctionEndAction ActionType = "auctionEnd"
)

func (a MarketAction) Slug() string {
	return CreateMarketActionSlug(a.TokenId, a.Seq, string(a.Action))
}

func CreateMarketActionSlug(tokenId, seq uint64, action string) string {
	data := []byte(fmt.Sprintf("marketaction-%d-%d-%s", tokenId, seq, action))
	return fmt.Sprintf("%x", md5.Sum(data))
}
