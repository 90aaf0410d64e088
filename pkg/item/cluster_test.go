package item_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/itemdata/pkg/opensearch"
)

// fakeCluster is an in-memory stand-in for the document endpoints of a single
// OpenSearch node.
type fakeCluster struct {
	mu   sync.Mutex
	docs map[string]map[string]map[string]any // index -> id -> source

	// failWith, when non-zero, makes every document request answer with
	// this status and an error body.
	failWith int

	requests []string
}

func newFakeCluster(t *testing.T) (*fakeCluster, *opensearch.Client) {
	t.Helper()

	fc := &fakeCluster{docs: make(map[string]map[string]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"name":    "node-1",
			"version": map[string]any{"distribution": "opensearch", "number": "2.11.0"},
		})
	})
	mux.HandleFunc("PUT /{index}/_doc/{id}", fc.index)
	mux.HandleFunc("POST /{index}/_doc/{id}", fc.index)
	mux.HandleFunc("GET /{index}/_doc/{id}", fc.get)
	mux.HandleFunc("POST /{index}/_update/{id}", fc.update)
	mux.HandleFunc("DELETE /{index}/_doc/{id}", fc.delete)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := opensearch.New(context.Background(), opensearch.Config{
		Addresses:    []string{srv.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return fc, client
}

func (fc *fakeCluster) setFailure(status int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.failWith = status
}

func (fc *fakeCluster) source(index, id string) (map[string]any, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	src, ok := fc.docs[index][id]
	return src, ok
}

func (fc *fakeCluster) seen() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]string(nil), fc.requests...)
}

// begin records the request and reports whether it was already answered
// with the configured failure.
func (fc *fakeCluster) begin(w http.ResponseWriter, r *http.Request) bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.requests = append(fc.requests, r.Method+" "+r.URL.RequestURI())
	if fc.failWith == 0 {
		return false
	}
	writeJSON(w, fc.failWith, map[string]any{
		"error": map[string]any{
			"type":   "cluster_block_exception",
			"reason": "index [" + r.PathValue("index") + "] blocked",
		},
		"status": fc.failWith,
	})
	return true
}

func (fc *fakeCluster) index(w http.ResponseWriter, r *http.Request) {
	if fc.begin(w, r) {
		return
	}
	index, id := r.PathValue("index"), r.PathValue("id")

	var src map[string]any
	if err := json.NewDecoder(r.Body).Decode(&src); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  map[string]any{"type": "mapper_parsing_exception", "reason": err.Error()},
			"status": http.StatusBadRequest,
		})
		return
	}

	fc.mu.Lock()
	if fc.docs[index] == nil {
		fc.docs[index] = make(map[string]map[string]any)
	}
	_, existed := fc.docs[index][id]
	fc.docs[index][id] = src
	fc.mu.Unlock()

	status, result := http.StatusCreated, "created"
	if existed {
		status, result = http.StatusOK, "updated"
	}
	writeJSON(w, status, map[string]any{"_index": index, "_id": id, "result": result})
}

func (fc *fakeCluster) get(w http.ResponseWriter, r *http.Request) {
	if fc.begin(w, r) {
		return
	}
	index, id := r.PathValue("index"), r.PathValue("id")

	src, ok := fc.source(index, id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "found": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "found": true, "_source": src})
}

func (fc *fakeCluster) update(w http.ResponseWriter, r *http.Request) {
	if fc.begin(w, r) {
		return
	}
	index, id := r.PathValue("index"), r.PathValue("id")

	var body struct {
		Doc map[string]any `json:"doc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  map[string]any{"type": "x_content_parse_exception", "reason": err.Error()},
			"status": http.StatusBadRequest,
		})
		return
	}

	fc.mu.Lock()
	src, ok := fc.docs[index][id]
	if ok {
		maps.Copy(src, body.Doc)
	}
	fc.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]any{
				"type":   "document_missing_exception",
				"reason": fmt.Sprintf("[%s]: document missing", id),
			},
			"status": http.StatusNotFound,
		})
		return
	}

	resp := map[string]any{"_index": index, "_id": id, "result": "updated"}
	if r.URL.Query().Get("_source") == "true" {
		resp["get"] = map[string]any{"found": true, "_source": src}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (fc *fakeCluster) delete(w http.ResponseWriter, r *http.Request) {
	if fc.begin(w, r) {
		return
	}
	index, id := r.PathValue("index"), r.PathValue("id")

	fc.mu.Lock()
	_, ok := fc.docs[index][id]
	delete(fc.docs[index], id)
	fc.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "result": "not_found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "result": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// brokenTransport fails every request before it reaches a cluster.
type brokenTransport struct{}

func (brokenTransport) Perform(*http.Request) (*http.Response, error) {
	return nil, io.ErrUnexpectedEOF
}
