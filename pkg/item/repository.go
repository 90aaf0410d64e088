package item

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/itemdata/pkg/logger"
)

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger for request tracing. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// Repository stores items as documents of a single index.
//
// Every method returns an error the caller can classify with errors.Is:
// ErrNotFound, ErrTransport, ErrRejected or ErrSerialization. The repository
// never retries and never logs above debug level; what to do with a failure is
// the caller's decision.
type Repository struct {
	transport opensearchapi.Transport
	index     string
	refresh   string
	logger    *slog.Logger
}

// NewRepository creates a repository on top of any opensearchapi.Transport,
// typically the *opensearch.Client handed out by the connection manager.
func NewRepository(transport opensearchapi.Transport, cfg Config, opts ...Option) *Repository {
	r := &Repository{
		transport: transport,
		index:     cfg.Index,
		refresh:   cfg.Refresh,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(logger.Index(cfg.Index), slog.String("type", cfg.DocumentType))
	return r
}

// Insert creates or replaces the document keyed by it.ID with the full record.
// The in-memory item is returned unchanged whether or not the write succeeded.
func (r *Repository) Insert(ctx context.Context, it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return it, err
	}

	body, err := json.Marshal(it)
	if err != nil {
		return it, errors.Join(ErrSerialization, err)
	}

	res, err := opensearchapi.IndexRequest{
		Index:      r.index,
		DocumentID: it.ID,
		Body:       bytes.NewReader(body),
		Refresh:    r.refresh,
	}.Do(ctx, r.transport)
	if err != nil {
		return it, r.fail(ctx, "index", it.ID, errors.Join(ErrTransport, err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return it, r.fail(ctx, "index", it.ID, storeError(res))
	}

	r.logger.DebugContext(ctx, "item indexed", logger.ItemID(it.ID), logger.Status(res.StatusCode))
	return it, nil
}

// GetByID fetches the document with the given ID.
func (r *Repository) GetByID(ctx context.Context, id string) (Item, error) {
	if id == "" {
		return Item{}, ErrMissingID
	}

	res, err := opensearchapi.GetRequest{
		Index:      r.index,
		DocumentID: id,
	}.Do(ctx, r.transport)
	if err != nil {
		return Item{}, r.fail(ctx, "get", id, errors.Join(ErrTransport, err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return Item{}, r.fail(ctx, "get", id, storeError(res))
	}

	var doc struct {
		ID     string          `json:"_id"`
		Found  bool            `json:"found"`
		Source json.RawMessage `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return Item{}, r.fail(ctx, "get", id, errors.Join(ErrSerialization, err))
	}
	if !doc.Found {
		return Item{}, r.fail(ctx, "get", id, ErrNotFound)
	}

	it, err := decodeSource(doc.Source, doc.ID)
	if err != nil {
		return Item{}, r.fail(ctx, "get", id, err)
	}

	r.logger.DebugContext(ctx, "item fetched", logger.ItemID(id))
	return it, nil
}

// UpdateByID pushes the full record into the existing document and returns
// the stored state after the update. The document must already exist.
func (r *Repository) UpdateByID(ctx context.Context, id string, it Item) (Item, error) {
	if id == "" {
		return Item{}, ErrMissingID
	}
	switch it.ID {
	case "":
		it.ID = id
	case id:
	default:
		return Item{}, ErrIDMismatch
	}

	body, err := json.Marshal(struct {
		Doc Item `json:"doc"`
	}{Doc: it})
	if err != nil {
		return Item{}, errors.Join(ErrSerialization, err)
	}

	res, err := opensearchapi.UpdateRequest{
		Index:      r.index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
		Source:     []string{"true"},
		Refresh:    r.refresh,
	}.Do(ctx, r.transport)
	if err != nil {
		return Item{}, r.fail(ctx, "update", id, errors.Join(ErrTransport, err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return Item{}, r.fail(ctx, "update", id, storeError(res))
	}

	var doc struct {
		ID  string `json:"_id"`
		Get struct {
			Found  bool            `json:"found"`
			Source json.RawMessage `json:"_source"`
		} `json:"get"`
	}
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return Item{}, r.fail(ctx, "update", id, errors.Join(ErrSerialization, err))
	}
	if len(doc.Get.Source) == 0 {
		return Item{}, r.fail(ctx, "update", id, errors.Join(ErrSerialization, errors.New("response carries no _source")))
	}

	updated, err := decodeSource(doc.Get.Source, doc.ID)
	if err != nil {
		return Item{}, r.fail(ctx, "update", id, err)
	}

	r.logger.DebugContext(ctx, "item updated", logger.ItemID(id))
	return updated, nil
}

// DeleteByID removes the document with the given ID.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}

	res, err := opensearchapi.DeleteRequest{
		Index:      r.index,
		DocumentID: id,
		Refresh:    r.refresh,
	}.Do(ctx, r.transport)
	if err != nil {
		return r.fail(ctx, "delete", id, errors.Join(ErrTransport, err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return r.fail(ctx, "delete", id, storeError(res))
	}

	r.logger.DebugContext(ctx, "item deleted", logger.ItemID(id))
	return nil
}

func (r *Repository) fail(ctx context.Context, op, id string, err error) error {
	r.logger.DebugContext(ctx, "item request failed",
		logger.Operation(op),
		logger.ItemID(id),
		logger.Error(err),
	)
	return err
}

func decodeSource(src json.RawMessage, id string) (Item, error) {
	var it Item
	if err := json.Unmarshal(src, &it); err != nil {
		return Item{}, errors.Join(ErrSerialization, err)
	}
	if it.ID == "" {
		it.ID = id
	}
	return it, nil
}

// storeError turns a non-2xx response into ErrNotFound or ErrRejected joined
// with the parsed *StoreError.
func storeError(res *opensearchapi.Response) error {
	se := &StoreError{Status: res.StatusCode}

	raw, _ := io.ReadAll(res.Body)
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && len(body.Error) > 0 {
		var detail struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		}
		if json.Unmarshal(body.Error, &detail) == nil {
			se.Type, se.Reason = detail.Type, detail.Reason
		} else {
			_ = json.Unmarshal(body.Error, &se.Reason)
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return errors.Join(ErrNotFound, se)
	}
	return errors.Join(ErrRejected, se)
}
