// Package opensearch provides a lightweight wrapper around the official OpenSearch
// Go client adding env-driven configuration, an initial cluster health check and
// an explicitly owned connection handle.
//
// The package builds on github.com/opensearch-project/opensearch-go/v2, which is
// safe for concurrent use. On top of the underlying client it exposes:
//
//   - Config – connection settings populated from environment variables via
//     github.com/dmitrymomot/itemdata/pkg/config. The defaults target a local
//     two-node cluster (localhost:9200 and localhost:9201) over plain HTTP.
//
//   - New – constructs a *Client with a dedicated HTTP transport and performs an
//     initial Healthcheck so a broken cluster is reported at startup.
//
//   - Manager – holds at most one live *Client. Acquire connects lazily and
//     returns the same handle until Release closes it.
//
//   - Healthcheck – returns a function suitable for liveness / readiness probes.
//
// # Usage
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	mgr := opensearch.NewManager(cfg, opensearch.WithLogger(log))
//	client, err := mgr.Acquire(ctx)
//	if err != nil {
//	    // errors.Is(err, opensearch.ErrConnectionFailed)
//	    // errors.Is(err, opensearch.ErrHealthcheckFailed)
//	}
//	defer mgr.Release()
//
//	res, err := opensearchapi.GetRequest{Index: "itemdata", DocumentID: "MLA1"}.Do(ctx, client)
//
// # Error Handling
//
// ErrConnectionFailed and ErrHealthcheckFailed are joined with the underlying
// cause. Release returns ErrNotConnected when no handle is held.
//
// # Retries
//
// Retries are disabled by default. MaxRetries only takes effect when
// DisableRetry is false, in which case the client fails over between the
// configured addresses.
package opensearch
