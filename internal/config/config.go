package config

import (
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/ZilDuck/nft-market-engine/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env        string
	Index      string
	Debug      bool
	HealthPort string

	Market        MarketConfig
	Metadata      MetadataConfig
	RabbitMq      RabbitMqConfig
	ElasticSearch ElasticSearchConfig
}

type MarketConfig struct {
	Address             string
	Admin               string
	CommissionRecipient string
}

type MetadataConfig struct {
	Retries int
	Timeout int
}

type RabbitMqConfig struct {
	Uri     string
	Enabled bool
}

type ElasticSearchConfig struct {
	Hosts            []string
	Sniff            bool
	HealthCheck      bool
	Debug            bool
	Username         string
	Password         string
	MappingDir       string
	BulkPersistCount int
	Refresh          string
}

func Init() {
	err := godotenv.Load(".env")
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("Unable to init config")
	}

	initLogger()
}

func initLogger() {
	log.NewLogger(Get().Debug)
}

func Get() *Config {
	return &Config{
		Env:        getString("ENV", ""),
		Index:      getString("INDEX_NAME", "market"),
		Debug:      getBool("DEBUG", false),
		HealthPort: getString("HEALTH_PORT", "8080"),
		Market: MarketConfig{
			Address:             getString("MARKET_ADDRESS", ""),
			Admin:               getString("MARKET_ADMIN", ""),
			CommissionRecipient: getString("MARKET_COMMISSION_RECIPIENT", ""),
		},
		Metadata: MetadataConfig{
			Retries: getInt("METADATA_RETRIES", 3),
			Timeout: getInt("METADATA_TIMEOUT", 10),
		},
		RabbitMq: RabbitMqConfig{
			Uri:     getString("RABBITMQ_URI", ""),
			Enabled: getBool("RABBITMQ_ENABLED", false),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:            getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:            getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck:      getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:            getBool("ELASTIC_SEARCH_DEBUG", false),
			Username:         getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:         getString("ELASTIC_SEARCH_PASSWORD", ""),
			MappingDir:       getString("ELASTIC_SEARCH_MAPPING_DIR", "/data/mappings"),
			BulkPersistCount: getInt("ELASTIC_SEARCH_BULK_PERSIST_COUNT", 300),
			Refresh:          getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, _, err := big.ParseFloat(valStr, 10, 0, big.ToNearestEven)
	if err != nil {
		return defaultValue
	}

	intVal, _ := val.Int64()
	return int(intVal)
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}
