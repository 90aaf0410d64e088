package opensearch

import "time"

// Config holds OpenSearch connection parameters with environment variable mapping.
// Defaults point at a local two-node cluster over plain HTTP.
type Config struct {
	Addresses      []string      `env:"OPENSEARCH_ADDRESSES" envSeparator:"," envDefault:"http://localhost:9200,http://localhost:9201"`
	MaxRetries     int           `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry   bool          `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"true"`
	ConnectTimeout time.Duration `env:"OPENSEARCH_CONNECT_TIMEOUT" envDefault:"10s"` // bounds the initial healthcheck only
}
