package entity

import "math/big"

// Event payloads emitted by the market engine for external observers.

type BatchCreated struct {
	Market  Address
	Creator Address
	FirstId uint64
	LastId  uint64
}

type NftMinted struct {
	Market Address
	Nft    Nft
}

type TokenListed struct {
	Market  Address
	Owner   Address
	TokenId uint64
	Sale    Sale
}

type TokenDelisted struct {
	Market  Address
	Owner   Address
	TokenId uint64
}

type TokenSold struct {
	Market        Address
	TokenId       uint64
	PreviousOwner Address
	Buyer         Address
	Price         *big.Int
}

type BidCreated struct {
	Market  Address
	TokenId uint64
	Bidder  Address
	Amount  *big.Int
}

type AuctionEnded struct {
	Market  Address
	TokenId uint64
	Owner   Address
	// Winner is ZeroAddress and Amount nil when no bid was ever placed.
	Winner Address
	Amount *big.Int
}
