package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/config"
	"github.com/ZilDuck/nft-market-engine/internal/config/di"
	"github.com/ZilDuck/nft-market-engine/internal/event"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var container *di.Container

func main() {
	config.Init()

	var err error
	container, err = di.NewContainer()
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Failed to build container")
	}

	go health()

	zap.L().With(zap.String("port", config.Get().HealthPort)).Info("Market Started")

	container.GetElastic().InstallMappings()

	marketIndexer := container.GetMarketIndexer()
	event.AddEventListener(event.NftMintedEvent, marketIndexer.IndexMint)
	event.AddEventListener(event.NftMintedEvent, container.GetMetadataIndexer().TriggerMetadataRefresh)
	event.AddEventListener(event.TokenListedEvent, marketIndexer.IndexListing)
	event.AddEventListener(event.TokenDelistedEvent, marketIndexer.IndexDelisting)
	event.AddEventListener(event.TokenSoldEvent, marketIndexer.IndexSale)
	event.AddEventListener(event.BidCreatedEvent, marketIndexer.IndexBid)
	event.AddEventListener(event.AuctionEndedEvent, marketIndexer.IndexAuctionEnd)

	if config.Get().RabbitMq.Enabled {
		publisher := container.GetPublisher()
		event.AddEventListener(event.TokenListedEvent, publisher.PublishListing)
		event.AddEventListener(event.TokenDelistedEvent, publisher.PublishListing)
		event.AddEventListener(event.TokenSoldEvent, publisher.PublishSettlement)
		event.AddEventListener(event.AuctionEndedEvent, publisher.PublishSettlement)
	}

	persist()
}

func persist() {
	elastic := container.GetElastic()

	for {
		time.Sleep(5 * time.Second)

		if !elastic.BatchPersist() {
			elastic.Persist()
		}
	}
}

func health() {
	if err := http.ListenAndServe(":"+config.Get().HealthPort, router()); err != nil {
		zap.L().With(zap.Error(err)).Error("Failed to start market daemon")
	}
}

func router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "OK")
	}).Methods("GET")

	return r
}
