package indexer

import (
	"github.com/ZilDuck/nft-market-engine/internal/dev"
	"github.com/ZilDuck/nft-market-engine/internal/elastic_search"
	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/ZilDuck/nft-market-engine/internal/metadata"
	"go.uber.org/zap"
)

// MetadataIndexer resolves collectible metadata when a token is minted and
// stores the enriched document.
type MetadataIndexer interface {
	TriggerMetadataRefresh(msg interface{})
}

type metadataIndexer struct {
	elastic  elastic_search.Index
	metadata metadata.Service
}

func NewMetadataIndexer(elastic elastic_search.Index, metadataService metadata.Service) MetadataIndexer {
	return metadataIndexer{elastic, metadataService}
}

func (i metadataIndexer) TriggerMetadataRefresh(msg interface{}) {
	minted, ok := msg.(entity.NftMinted)
	if !ok {
		return
	}

	nft := minted.Nft

	md, err := i.metadata.GetMetadata(nft)
	if err != nil {
		zap.L().With(zap.Error(err), zap.Uint64("tokenId", nft.TokenId)).
			Warn("MetadataIndexer: Failed to fetch metadata")
		nft.MetadataError = err.Error()
		i.elastic.Save(elastic_search.ErrorIndex.Get(), dev.NewError(
			"metadataIndexer", "GetMetadata", err,
			map[string]interface{}{"tokenId": nft.TokenId, "uri": nft.TokenUri},
		))
	} else {
		nft.HasMetadata = true
		nft.Metadata = md
		dev.Dump(md)
	}

	i.elastic.Save(elastic_search.NftIndex.Get(), nft)
}
