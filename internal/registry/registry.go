package registry

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"go.uber.org/zap"
)

var (
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenExists    = errors.New("token already minted")
	ErrNotMarket      = errors.New("caller is not the market")
	ErrNotAdmin       = errors.New("caller is not the admin")
	ErrNotTokenOwner  = errors.New("caller is not the token owner")
	ErrTokenListed    = errors.New("token is listed for sale")
	ErrTokenNotListed = errors.New("token is not listed for sale")
	ErrZeroAddress    = errors.New("zero address")
)

// Registry tracks ownership of non-fungible tokens. Mutating entry points
// are privileged: only the registered market may mint, mark listings, or
// move a listed token without the owner's approval.
type Registry interface {
	GrantMarket(caller, market entity.Address) error
	Mint(caller, to entity.Address, tokenId uint64, tokenUri string, originalCreator entity.Address, royaltyBps uint32) error
	OwnerOf(tokenId uint64) (entity.Address, error)
	RoyaltyInfo(tokenId uint64, salePrice *big.Int) (entity.Address, *big.Int, error)
	Transfer(caller, to entity.Address, tokenId uint64) error
	MarketTransfer(caller, from, to entity.Address, tokenId uint64) error
	SetListed(caller entity.Address, tokenId uint64) error
	ClearListed(caller entity.Address, tokenId uint64) error
	IsListed(tokenId uint64) bool
	TokenUri(tokenId uint64) (string, error)
	GetNft(tokenId uint64) (entity.Nft, error)
}

type registry struct {
	mtx    sync.RWMutex
	admin  entity.Address
	market entity.Address
	tokens map[uint64]*entity.Nft
}

func NewRegistry(admin entity.Address) Registry {
	return &registry{
		admin:  admin,
		tokens: make(map[uint64]*entity.Nft),
	}
}

// GrantMarket hands the single privileged-caller slot to the market engine.
func (r *registry) GrantMarket(caller, market entity.Address) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !caller.Equals(r.admin) {
		return ErrNotAdmin
	}
	if market.IsZero() {
		return ErrZeroAddress
	}

	r.market = market

	return nil
}

func (r *registry) Mint(caller, to entity.Address, tokenId uint64, tokenUri string, originalCreator entity.Address, royaltyBps uint32) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.isMarket(caller) {
		return ErrNotMarket
	}
	if to.IsZero() || originalCreator.IsZero() {
		return ErrZeroAddress
	}
	if _, exists := r.tokens[tokenId]; exists {
		return ErrTokenExists
	}

	r.tokens[tokenId] = &entity.Nft{
		TokenId:         tokenId,
		TokenUri:        tokenUri,
		Owner:           to,
		OriginalCreator: originalCreator,
		RoyaltyBps:      royaltyBps,
	}

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("owner", to.String()),
	).Debug("Registry: minted")

	return nil
}

func (r *registry) OwnerOf(tokenId uint64) (entity.Address, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	nft, ok := r.tokens[tokenId]
	if !ok {
		return entity.ZeroAddress, ErrTokenNotFound
	}

	return nft.Owner, nil
}

// RoyaltyInfo returns the original creator and the royalty due on salePrice,
// truncated to the ledger's smallest unit.
func (r *registry) RoyaltyInfo(tokenId uint64, salePrice *big.Int) (entity.Address, *big.Int, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	nft, ok := r.tokens[tokenId]
	if !ok {
		return entity.ZeroAddress, nil, ErrTokenNotFound
	}

	amount := new(big.Int).Mul(salePrice, big.NewInt(int64(nft.RoyaltyBps)))
	amount.Div(amount, big.NewInt(int64(entity.TotalBps)))

	return nft.OriginalCreator, amount, nil
}

// Transfer is the owner-initiated path. It refuses to move a listed token so
// the market's ownership snapshot cannot go stale underneath a live sale.
func (r *registry) Transfer(caller, to entity.Address, tokenId uint64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	nft, ok := r.tokens[tokenId]
	if !ok {
		return ErrTokenNotFound
	}
	if !nft.Owner.Equals(caller) {
		return ErrNotTokenOwner
	}
	if nft.Listed {
		return ErrTokenListed
	}
	if to.IsZero() {
		return ErrZeroAddress
	}

	nft.Owner = to

	return nil
}

// MarketTransfer bypasses owner approval. Only valid while the token is
// marked listed; the listing mark is consumed by the transfer.
func (r *registry) MarketTransfer(caller, from, to entity.Address, tokenId uint64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.isMarket(caller) {
		return ErrNotMarket
	}

	nft, ok := r.tokens[tokenId]
	if !ok {
		return ErrTokenNotFound
	}
	if !nft.Listed {
		return ErrTokenNotListed
	}
	if !nft.Owner.Equals(from) {
		return ErrNotTokenOwner
	}
	if to.IsZero() {
		return ErrZeroAddress
	}

	nft.Owner = to
	nft.Listed = false

	zap.L().With(
		zap.Uint64("tokenId", tokenId),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	).Debug("Registry: market transfer")

	return nil
}

func (r *registry) SetListed(caller entity.Address, tokenId uint64) error {
	return r.setListed(caller, tokenId, true)
}

func (r *registry) ClearListed(caller entity.Address, tokenId uint64) error {
	return r.setListed(caller, tokenId, false)
}

func (r *registry) setListed(caller entity.Address, tokenId uint64, listed bool) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if !r.isMarket(caller) {
		return ErrNotMarket
	}

	nft, ok := r.tokens[tokenId]
	if !ok {
		return ErrTokenNotFound
	}

	nft.Listed = listed

	return nil
}

func (r *registry) IsListed(tokenId uint64) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	nft, ok := r.tokens[tokenId]

	return ok && nft.Listed
}

func (r *registry) TokenUri(tokenId uint64) (string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	nft, ok := r.tokens[tokenId]
	if !ok {
		return "", ErrTokenNotFound
	}

	return nft.TokenUri, nil
}

func (r *registry) GetNft(tokenId uint64) (entity.Nft, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	nft, ok := r.tokens[tokenId]
	if !ok {
		return entity.Nft{}, ErrTokenNotFound
	}

	return *nft, nil
}

func (r *registry) isMarket(caller entity.Address) bool {
	return !r.market.IsZero() && r.market.Equals(caller)
}
