package event

type Type string

const (
	BatchCreatedEvent  Type = "BatchCreatedEvent"
	NftMintedEvent     Type = "NftMintedEvent"
	TokenListedEvent   Type = "TokenListedEvent"
	TokenDelistedEvent Type = "TokenDelistedEvent"
	TokenSoldEvent     Type = "TokenSoldEvent"
	BidCreatedEvent    Type = "BidCreatedEvent"
	AuctionEndedEvent  Type = "AuctionEndedEvent"
)
