package elastic_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/booklog/elastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCluster serves the subset of the Elasticsearch REST API the client
// uses, backed by an in-memory index.
type fakeCluster struct {
	mu      sync.Mutex
	exists  bool
	created int
	nextID  int
	docs    []fakeDoc
}

type fakeDoc struct {
	id     string
	source map[string]any
}

func newFakeCluster(t *testing.T) (*fakeCluster, string) {
	t.Helper()
	fc := &fakeCluster{}
	srv := httptest.NewServer(fc)
	t.Cleanup(srv.Close)
	return fc, srv.URL
}

func (fc *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	seg := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(seg) == 1 && r.Method == http.MethodHead:
		if !fc.exists {
			w.WriteHeader(http.StatusNotFound)
		}
	case len(seg) == 1 && r.Method == http.MethodPut:
		fc.exists = true
		fc.created++
		writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "index": seg[0]})
	case len(seg) == 2 && seg[1] == "_doc" && r.Method == http.MethodPost:
		fc.index(w, r, seg[0])
	case len(seg) == 2 && seg[1] == "_search":
		fc.search(w, r)
	case len(seg) == 3 && seg[1] == "_doc" && r.Method == http.MethodGet:
		fc.get(w, seg[0], seg[2])
	case len(seg) == 3 && seg[1] == "_doc" && r.Method == http.MethodDelete:
		fc.delete(w, seg[0], seg[2])
	case len(seg) == 3 && seg[1] == "_update":
		fc.update(w, r, seg[0], seg[2])
	case len(seg) == 4 && seg[3] == "_update":
		fc.update(w, r, seg[0], seg[2])
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unexpected request " + r.Method + " " + r.URL.Path})
	}
}

func (fc *fakeCluster) state() (exists bool, created int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.exists, fc.created
}

func (fc *fakeCluster) find(id string) int {
	for i, d := range fc.docs {
		if d.id == id {
			return i
		}
	}
	return -1
}

func (fc *fakeCluster) index(w http.ResponseWriter, r *http.Request, index string) {
	var source map[string]any
	if err := json.NewDecoder(r.Body).Decode(&source); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	fc.nextID++
	id := fmt.Sprintf("doc-%d", fc.nextID)
	fc.docs = append(fc.docs, fakeDoc{id: id, source: source})
	writeJSON(w, http.StatusCreated, map[string]any{"_index": index, "_id": id, "_version": 1, "result": "created"})
}

func (fc *fakeCluster) get(w http.ResponseWriter, index, id string) {
	i := fc.find(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "found": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "found": true, "_source": fc.docs[i].source})
}

func (fc *fakeCluster) update(w http.ResponseWriter, r *http.Request, index, id string) {
	i := fc.find(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":  map[string]any{"type": "document_missing_exception", "reason": "document missing"},
			"status": http.StatusNotFound,
		})
		return
	}
	var body struct {
		Doc map[string]any `json:"doc"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	for k, v := range body.Doc {
		fc.docs[i].source[k] = v
	}
	writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "result": "updated"})
}

func (fc *fakeCluster) delete(w http.ResponseWriter, index, id string) {
	i := fc.find(id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"_index": index, "_id": id, "result": "not_found"})
		return
	}
	fc.docs = append(fc.docs[:i], fc.docs[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]any{"_index": index, "_id": id, "result": "deleted"})
}

func (fc *fakeCluster) search(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query map[string]any `json:"query"`
		From  int            `json:"from"`
		Size  int            `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}

	hits := []map[string]any{}
	for _, d := range fc.docs {
		if matches(body.Query, d) {
			hits = append(hits, map[string]any{"_id": d.id, "_source": d.source})
		}
	}
	total := len(hits)
	if body.From < len(hits) {
		hits = hits[body.From:]
	} else {
		hits = hits[:0]
	}
	if body.Size > 0 && body.Size < len(hits) {
		hits = hits[:body.Size]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"took": 1,
		"hits": map[string]any{
			"total": map[string]any{"value": total, "relation": "eq"},
			"hits":  hits,
		},
	})
}

// matches evaluates the bool/filter queries built by BookService.
func matches(query map[string]any, d fakeDoc) bool {
	boolQuery, _ := query["bool"].(map[string]any)
	var clauses []any
	switch f := boolQuery["filter"].(type) {
	case map[string]any:
		clauses = []any{f}
	case []any:
		clauses = f
	}
	for _, c := range clauses {
		clause, _ := c.(map[string]any)
		if term, ok := clause["term"].(map[string]any); ok {
			for field, want := range term {
				if d.source[field] != want {
					return false
				}
			}
		}
		if ids, ok := clause["ids"].(map[string]any); ok {
			values, _ := ids["values"].([]any)
			found := false
			for _, v := range values {
				if v == d.id {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func setupTestClient(t *testing.T) (*elastic.Client, *fakeCluster) {
	t.Helper()
	fc, url := newFakeCluster(t)
	c := elastic.NewClient(url, "")
	require.NoError(t, c.Open(context.Background()))
	t.Cleanup(func() { c.Close() })
	return c, fc
}

func TestClient_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates missing index", func(t *testing.T) {
		t.Parallel()

		_, fc := setupTestClient(t)

		exists, created := fc.state()
		assert.True(t, exists)
		assert.Equal(t, 1, created)
	})

	t.Run("keeps existing index", func(t *testing.T) {
		t.Parallel()

		fc, url := newFakeCluster(t)
		fc.exists = true

		c := elastic.NewClient(url, "books")
		require.NoError(t, c.Open(context.Background()))
		defer c.Close()

		_, created := fc.state()
		assert.Equal(t, 0, created)
	})

	t.Run("returns error for unreachable cluster", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := elastic.NewClient(url, "")
		err := c.Open(context.Background())
		require.Error(t, err)
	})
}
