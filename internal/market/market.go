package market

import (
	"math/big"
	"sync"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/ledger"
	"github.com/ZilDuck/nft-market-engine/internal/registry"
	"github.com/ZilDuck/nft-market-engine/internal/repository"
	"go.uber.org/zap"
)

// Market mints collectibles, lists them at a fixed price or by timed
// auction, and settles ownership transfers against the payment ledger.
type Market interface {
	CreateCollectible(caller entity.Address, baseUri string, numTokens uint64, forSale bool, fee entity.Fee, saleInfo entity.SaleInfo) (uint64, uint64, error)
	PutTokenForSale(caller entity.Address, tokenId uint64, saleInfo entity.SaleInfo) error
	RemoveTokenFromSale(caller entity.Address, tokenId uint64) error
	PurchaseToken(caller entity.Address, tokenId uint64) error
	CreateBid(caller entity.Address, tokenId uint64, bid *big.Int) error
	EndAuction(caller entity.Address, tokenId uint64) error

	SalePrice(tokenId uint64) (*big.Int, error)
	AuctionPrice(tokenId uint64) (*big.Int, error)
	HighestBidder(tokenId uint64) (entity.Address, error)

	SetCommissionRecipient(caller, recipient entity.Address) error
	CommissionRecipient() entity.Address
	Address() entity.Address
}

type market struct {
	// mtx serializes every public operation. It is taken before the first
	// collaborator call and held across all exit paths, so no caller can
	// observe partially settled state.
	mtx sync.Mutex

	addr                entity.Address
	admin               entity.Address
	commissionRecipient entity.Address

	registry registry.Registry
	ledger   ledger.Ledger
	feeRepo  repository.FeeRepository
	saleRepo repository.SaleRepository

	now func() time.Time

	nextTokenId uint64
}

func NewMarket(
	addr entity.Address,
	admin entity.Address,
	commissionRecipient entity.Address,
	reg registry.Registry,
	led ledger.Ledger,
	feeRepo repository.FeeRepository,
	saleRepo repository.SaleRepository,
	now func() time.Time,
) Market {
	if now == nil {
		now = time.Now
	}

	return &market{
		addr:                addr,
		admin:               admin,
		commissionRecipient: commissionRecipient,
		registry:            reg,
		ledger:              led,
		feeRepo:             feeRepo,
		saleRepo:            saleRepo,
		now:                 now,
		nextTokenId:         1,
	}
}

func (m *market) Address() entity.Address {
	return m.addr
}

func (m *market) CommissionRecipient() entity.Address {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return m.commissionRecipient
}

func (m *market) SetCommissionRecipient(caller, recipient entity.Address) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if !caller.Equals(m.admin) {
		return ErrNotAdmin
	}
	if recipient.IsZero() {
		return ErrZeroAddress
	}

	m.commissionRecipient = recipient

	zap.L().With(zap.String("recipient", recipient.String())).Info("Market: commission recipient updated")

	return nil
}
