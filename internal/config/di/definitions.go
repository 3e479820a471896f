package di

import (
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/config"
	"github.com/ZilDuck/nft-market-engine/internal/elastic_search"
	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/indexer"
	"github.com/ZilDuck/nft-market-engine/internal/ledger"
	"github.com/ZilDuck/nft-market-engine/internal/market"
	"github.com/ZilDuck/nft-market-engine/internal/messenger"
	"github.com/ZilDuck/nft-market-engine/internal/metadata"
	"github.com/ZilDuck/nft-market-engine/internal/registry"
	"github.com/ZilDuck/nft-market-engine/internal/repository"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sarulabs/di/v2"
	"go.uber.org/zap"
)

var definitions = []di.Def{
	{
		Name: "elastic",
		Build: func(ctn di.Container) (interface{}, error) {
			elastic, err := elastic_search.New()
			if err != nil {
				zap.L().With(zap.Error(err)).Fatal("Failed to start ES")
			}

			return elastic, nil
		},
	},
	{
		Name: "ledger",
		Build: func(ctn di.Container) (interface{}, error) {
			return ledger.NewToken(), nil
		},
	},
	{
		Name: "registry",
		Build: func(ctn di.Container) (interface{}, error) {
			admin := entity.Address(config.Get().Market.Admin)
			reg := registry.NewRegistry(admin)

			marketAddr := entity.Address(config.Get().Market.Address)
			if err := reg.GrantMarket(admin, marketAddr); err != nil {
				return nil, err
			}

			return reg, nil
		},
	},
	{
		Name: "fee.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewFeeRepository(), nil
		},
	},
	{
		Name: "sale.repo",
		Build: func(ctn di.Container) (interface{}, error) {
			return repository.NewSaleRepository(), nil
		},
	},
	{
		Name: "market",
		Build: func(ctn di.Container) (interface{}, error) {
			cfg := config.Get().Market

			return market.NewMarket(
				entity.Address(cfg.Address),
				entity.Address(cfg.Admin),
				entity.Address(cfg.CommissionRecipient),
				ctn.Get("registry").(registry.Registry),
				ctn.Get("ledger").(ledger.Ledger),
				ctn.Get("fee.repo").(repository.FeeRepository),
				ctn.Get("sale.repo").(repository.SaleRepository),
				time.Now,
			), nil
		},
	},
	{
		Name: "metadata",
		Build: func(ctn di.Container) (interface{}, error) {
			client := retryablehttp.NewClient()
			client.RetryMax = config.Get().Metadata.Retries
			client.HTTPClient.Timeout = time.Duration(config.Get().Metadata.Timeout) * time.Second
			client.Logger = nil

			return metadata.NewMetadataService(client), nil
		},
	},
	{
		Name: "market.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewMarketIndexer(ctn.Get("elastic").(elastic_search.Index)), nil
		},
	},
	{
		Name: "metadata.indexer",
		Build: func(ctn di.Container) (interface{}, error) {
			return indexer.NewMetadataIndexer(
				ctn.Get("elastic").(elastic_search.Index),
				ctn.Get("metadata").(metadata.Service),
			), nil
		},
	},
	{
		Name: "messenger",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewMessenger(config.Get().RabbitMq.Uri), nil
		},
	},
	{
		Name: "publisher",
		Build: func(ctn di.Container) (interface{}, error) {
			return messenger.NewPublisher(ctn.Get("messenger").(messenger.MessageService)), nil
		},
	},
}
