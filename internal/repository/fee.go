package repository

import (
	"errors"
	"sync"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
)

var (
	ErrFeeNotFound = errors.New("fee not found")
	ErrFeeExists   = errors.New("fee already recorded")
)

// FeeRepository stores the immutable payment split per token. A fee is
// written once at collectible creation and never overwritten.
type FeeRepository interface {
	GetFee(tokenId uint64) (*entity.Fee, error)
	HasFee(tokenId uint64) bool
	SaveFee(tokenId uint64, fee entity.Fee) error
}

type feeRepository struct {
	mtx  sync.RWMutex
	fees map[uint64]entity.Fee
}

func NewFeeRepository() FeeRepository {
	return &feeRepository{fees: make(map[uint64]entity.Fee)}
}

func (r *feeRepository) GetFee(tokenId uint64) (*entity.Fee, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	fee, ok := r.fees[tokenId]
	if !ok {
		return nil, ErrFeeNotFound
	}

	return &fee, nil
}

func (r *feeRepository) HasFee(tokenId uint64) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.fees[tokenId]

	return ok
}

func (r *feeRepository) SaveFee(tokenId uint64, fee entity.Fee) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.fees[tokenId]; ok {
		return ErrFeeExists
	}

	r.fees[tokenId] = fee

	return nil
}
