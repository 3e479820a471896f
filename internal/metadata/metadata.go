package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/ZilDuck/nft-market-engine/internal/entity"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
)

// Service resolves the JSON metadata document behind a token's uri.
type Service interface {
	GetMetadata(nft entity.Nft) (map[string]interface{}, error)
}

type service struct {
	client *retryablehttp.Client
	cache  *cache.Cache
}

func NewMetadataService(client *retryablehttp.Client) Service {
	return service{client, cache.New(10*time.Minute, 30*time.Minute)}
}

func (s service) GetMetadata(nft entity.Nft) (map[string]interface{}, error) {
	metadataUri, err := nft.MetadataUri()
	if err != nil {
		return nil, err
	}

	if cached, found := s.cache.Get(metadataUri); found {
		return cached.(map[string]interface{}), nil
	}

	resp, err := s.client.Get(metadataUri)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New(resp.Status)
	}

	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	var md map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &md); err != nil {
		return nil, err
	}

	s.cache.Set(metadataUri, md, cache.DefaultExpiration)

	return md, nil
}
