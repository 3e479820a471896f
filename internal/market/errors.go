package market

import "errors"

// Validation failures. Caller-fixable: the request itself is malformed.
var (
	ErrInvalidFee      = errors.New("invalid fee")
	ErrInvalidSaleInfo = errors.New("invalid sale info")
	ErrEmptyBaseUri    = errors.New("base uri must not be empty")
	ErrNoTokens        = errors.New("token count must be positive")
	ErrTooManyTokens   = errors.New("token count exceeds the batch limit")
	ErrInvalidBid      = errors.New("invalid bid amount")
	ErrZeroAddress     = errors.New("zero address")
)

// Authorization failures.
var (
	ErrNotOwner = errors.New("caller is not the owner")
	ErrNotAdmin = errors.New("caller is not the admin")
)

// State precondition failures. Distinct from validation so a client can tell
// "retry later" from "never valid".
var (
	ErrAlreadyListed     = errors.New("token is already listed")
	ErrNotListed         = errors.New("token is not listed")
	ErrNoFeeRecord       = errors.New("no fee recorded for token")
	ErrAuctionHasBids    = errors.New("auction has bids")
	ErrNotFixedSale      = errors.New("token is not listed at a fixed price")
	ErrNotAuction        = errors.New("token is not listed for auction")
	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrAuctionNotEnded   = errors.New("auction has not ended")
	ErrBelowReserve      = errors.New("bid is below the reserve price")
	ErrBidTooLow         = errors.New("bid does not exceed the highest bid")
	ErrAlreadyOwner      = errors.New("caller already owns the token")
)

// External dependency failures.
var (
	ErrUnexpectedTransferAmount = errors.New("ledger transferred an unexpected amount")
)
