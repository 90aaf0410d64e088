package opensearch

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Client is a live handle to the cluster. It embeds the official client, so it
// can be passed anywhere an opensearchapi.Transport is expected.
type Client struct {
	*opensearch.Client

	transport *http.Transport
	closeOnce sync.Once
}

// Close drops the idle connections held by the handle's transport.
// It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if c.transport != nil {
			c.transport.CloseIdleConnections()
		}
	})
	return nil
}

// New creates a new OpenSearch client with its own plain-text HTTP transport
// and verifies the cluster answers before returning it.
func New(ctx context.Context, cfg Config) (*Client, error) {
	transport := newTransport()

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses:    cfg.Addresses,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
		Transport:    transport,
	})
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// Healthcheck
	if err := Healthcheck(client)(ctx); err != nil {
		transport.CloseIdleConnections()
		return nil, err
	}

	return &Client{Client: client, transport: transport}, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
}
