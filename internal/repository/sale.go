package repository

import (
	"errors"
	"sync"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
)

var (
	ErrSaleNotFound = errors.New("sale not found")
	ErrSaleExists   = errors.New("sale already exists")
)

// SaleRepository stores the live listing per token. Presence of a record is
// the listing's existence flag; settlement, delisting, and auction
// finalization all delete it.
type SaleRepository interface {
	GetSale(tokenId uint64) (*entity.Sale, error)
	HasSale(tokenId uint64) bool
	SaveSale(tokenId uint64, sale entity.Sale) error
	UpdateSale(tokenId uint64, sale entity.Sale)
	DeleteSale(tokenId uint64)
}

type saleRepository struct {
	mtx   sync.RWMutex
	sales map[uint64]entity.Sale
}

func NewSaleRepository() SaleRepository {
	return &saleRepository{sales: make(map[uint64]entity.Sale)}
}

func (r *saleRepository) GetSale(tokenId uint64) (*entity.Sale, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	sale, ok := r.sales[tokenId]
	if !ok {
		return nil, ErrSaleNotFound
	}

	return &sale, nil
}

func (r *saleRepository) HasSale(tokenId uint64) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.sales[tokenId]

	return ok
}

func (r *saleRepository) SaveSale(tokenId uint64, sale entity.Sale) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.sales[tokenId]; ok {
		return ErrSaleExists
	}

	r.sales[tokenId] = sale

	return nil
}

func (r *saleRepository) UpdateSale(tokenId uint64, sale entity.Sale) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sales[tokenId] = sale
}

func (r *saleRepository) DeleteSale(tokenId uint64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sales, tokenId)
}
