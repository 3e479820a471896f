package elastic_search

import (
	"fmt"

	"github.com/ZilDuck/nft-market-engine/internal/config"
)

type Indices string

var (
	NftIndex          Indices = "nft"
	MarketActionIndex Indices = "marketaction"
	ErrorIndex        Indices = "error"
)

// Get prefixes the index name with the configured deployment name.
func (i *Indices) Get() string {
	return fmt.Sprintf("%s.%s", config.Get().Index, string(*i))
}
