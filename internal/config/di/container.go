package di

import (
	"github.com/ZilDuck/nft-market-engine/internal/elastic_search"
	"github.com/ZilDuck/nft-market-engine/internal/indexer"
	"github.com/ZilDuck/nft-market-engine/internal/ledger"
	"github.com/ZilDuck/nft-market-engine/internal/market"
	"github.com/ZilDuck/nft-market-engine/internal/messenger"
	"github.com/ZilDuck/nft-market-engine/internal/registry"
	"github.com/sarulabs/di/v2"
)

type Container struct {
	ctn di.Container
}

func NewContainer() (*Container, error) {
	builder, err := di.NewBuilder()
	if err != nil {
		return nil, err
	}

	if err := builder.Add(definitions...); err != nil {
		return nil, err
	}

	return &Container{ctn: builder.Build()}, nil
}

func (c *Container) GetMarket() market.Market {
	return c.ctn.Get("market").(market.Market)
}

func (c *Container) GetRegistry() registry.Registry {
	return c.ctn.Get("registry").(registry.Registry)
}

func (c *Container) GetLedger() ledger.Ledger {
	return c.ctn.Get("ledger").(ledger.Ledger)
}

func (c *Container) GetElastic() elastic_search.Index {
	return c.ctn.Get("elastic").(elastic_search.Index)
}

func (c *Container) GetMarketIndexer() indexer.MarketIndexer {
	return c.ctn.Get("market.indexer").(indexer.MarketIndexer)
}

func (c *Container) GetMetadataIndexer() indexer.MetadataIndexer {
	return c.ctn.Get("metadata.indexer").(indexer.MetadataIndexer)
}

func (c *Container) GetPublisher() *messenger.Publisher {
	return c.ctn.Get("publisher").(*messenger.Publisher)
}
