package indexer

import (
	"sync/atomic"

	"github.com/ZilDuck/nft-market-engine/internal/elastic_search"
	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/factory"
	"go.uber.org/zap"
)

// MarketIndexer flattens engine events into MarketAction documents for
// external observers. It is wired to the event manager by the daemon and
// never touches the engine's authoritative state.
type MarketIndexer interface {
	IndexMint(msg interface{})
	IndexListing(msg interface{})
	IndexDelisting(msg interface{})
	IndexSale(msg interface{})
	IndexBid(msg interface{})
	IndexAuctionEnd(msg interface{})
}

type marketIndexer struct {
	elastic elastic_search.Index
	seq     uint64
}

func NewMarketIndexer(elastic elastic_search.Index) MarketIndexer {
	return &marketIndexer{elastic: elastic}
}

func (i *marketIndexer) IndexMint(msg interface{}) {
	minted, ok := msg.(entity.NftMinted)
	if !ok {
		return
	}

	i.elastic.AddIndexRequest(elastic_search.NftIndex.Get(), minted.Nft, elastic_search.NftMint)
	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateMintAction(minted, i.next()), elastic_search.NftMint)
}

func (i *marketIndexer) IndexListing(msg interface{}) {
	listed, ok := msg.(entity.TokenListed)
	if !ok {
		return
	}

	zap.L().With(
		zap.Uint64("tokenId", listed.TokenId),
		zap.String("owner", listed.Owner.String()),
	).Info("Marketplace listing")

	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateListingAction(listed, i.next()), elastic_search.MarketListing)
}

func (i *marketIndexer) IndexDelisting(msg interface{}) {
	delisted, ok := msg.(entity.TokenDelisted)
	if !ok {
		return
	}

	zap.L().With(
		zap.Uint64("tokenId", delisted.TokenId),
		zap.String("owner", delisted.Owner.String()),
	).Info("Marketplace delisting")

	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateDelistingAction(delisted, i.next()), elastic_search.MarketDelisting)
}

func (i *marketIndexer) IndexSale(msg interface{}) {
	sold, ok := msg.(entity.TokenSold)
	if !ok {
		return
	}

	zap.L().With(
		zap.Uint64("tokenId", sold.TokenId),
		zap.String("from", sold.PreviousOwner.String()),
		zap.String("to", sold.Buyer.String()),
		zap.String("cost", sold.Price.String()),
	).Info("Marketplace trade")

	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateSaleAction(sold, i.next()), elastic_search.MarketSale)
}

func (i *marketIndexer) IndexBid(msg interface{}) {
	bid, ok := msg.(entity.BidCreated)
	if !ok {
		return
	}

	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateBidAction(bid, i.next()), elastic_search.MarketBid)
}

func (i *marketIndexer) IndexAuctionEnd(msg interface{}) {
	ended, ok := msg.(entity.AuctionEnded)
	if !ok {
		return
	}

	i.elastic.AddIndexRequest(elastic_search.MarketActionIndex.Get(), factory.CreateAuctionEndAction(ended, i.next()), elastic_search.MarketAuctionEnd)
}

func (i *marketIndexer) next() uint64 {
	return atomic.AddUint64(&i.seq, 1)
}
