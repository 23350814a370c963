package search

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// fakeCluster is the subset of the Elasticsearch REST API the repository
// talks to, backed by a map.
type fakeCluster struct {
	mu      sync.Mutex
	index   string
	created bool
	docs    map[string]document
	mapping string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	body, _ := io.ReadAll(req.Body)
	path := strings.TrimPrefix(req.URL.Path, "/")
	switch {
	case path == f.index && req.Method == http.MethodHead:
		if !f.created {
			w.WriteHeader(http.StatusNotFound)
		}
	case path == f.index && req.Method == http.MethodPut:
		f.created = true
		f.mapping = string(body)
		fmt.Fprintf(w, `{"acknowledged":true,"index":%q}`, f.index)
	case path == "_bulk":
		f.bulk(w, body)
	case path == f.index+"/_count":
		if !f.created {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"type":"index_not_found_exception"}}`)
			return
		}
		fmt.Fprintf(w, `{"count":%d}`, len(f.docs))
	case path == f.index+"/_search":
		f.search(w, body)
	case path == f.index+"/_delete_by_query":
		n := len(f.docs)
		f.docs = make(map[string]document)
		fmt.Fprintf(w, `{"deleted":%d}`, n)
	case strings.HasPrefix(path, f.index+"/_doc/"):
		var doc document
		if err := json.Unmarshal(body, &doc); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.created = true
		f.docs[strings.TrimPrefix(path, f.index+"/_doc/")] = doc
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"result":"created"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"error":"unexpected %s %s"}`, req.Method, req.URL.Path)
	}
}

func (f *fakeCluster) bulk(w http.ResponseWriter, body []byte) {
	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	var items []string
	for scanner.Scan() {
		var meta struct {
			Index struct {
				ID string `json:"_id"`
			} `json:"index"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &meta); err != nil || !scanner.Scan() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var doc document
		if err := json.Unmarshal(scanner.Bytes(), &doc); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.created = true
		f.docs[meta.Index.ID] = doc
		items = append(items, `{"index":{"status":201}}`)
	}
	fmt.Fprintf(w, `{"errors":false,"items":[%s]}`, strings.Join(items, ","))
}

func (f *fakeCluster) search(w http.ResponseWriter, body []byte) {
	var query struct {
		Size        int       `json:"size"`
		SearchAfter []float64 `json:"search_after"`
	}
	json.Unmarshal(body, &query)

	docs := make([]document, 0, len(f.docs))
	for _, d := range f.docs {
		if len(query.SearchAfter) == 1 && float64(d.Seq) <= query.SearchAfter[0] {
			continue
		}
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Seq < docs[j].Seq })
	if query.Size > 0 && len(docs) > query.Size {
		docs = docs[:query.Size]
	}

	type hit struct {
		Source document `json:"_source"`
		Sort   []int64  `json:"sort"`
	}
	hits := make([]hit, len(docs))
	for i, d := range docs {
		hits[i] = hit{Source: d, Sort: []int64{d.Seq}}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"hits": map[string]interface{}{"hits": hits},
	})
}

func newTestRepository(t *testing.T) (*RestaurantRepository, *fakeCluster) {
	t.Helper()
	cluster := &fakeCluster{index: "restaurants", docs: make(map[string]document)}
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	client, err := NewClient(models.ElasticsearchConfig{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewRestaurantRepository(client, "restaurants"), cluster
}

func restaurants(n int) []*models.Restaurant {
	out := make([]*models.Restaurant, n)
	for i := range out {
		out[i] = &models.Restaurant{
			Name:     fmt.Sprintf("r%04d", i),
			City:     "Paris",
			Country:  "France",
			Rating:   4,
			Location: models.Location{Lat: 48.85, Lon: 2.35},
		}
	}
	return out
}

func TestEnsureIndexCreatesMapping(t *testing.T) {
	repo, cluster := newTestRepository(t)
	ctx := context.Background()
	if err := repo.EnsureIndex(ctx); err != nil {
		t.Fatalf("EnsureIndex: %v", err)
	}
	if !strings.Contains(cluster.mapping, `"geo_point"`) {
		t.Fatalf("mapping not sent: %s", cluster.mapping)
	}
	cluster.mapping = ""
	if err := repo.EnsureIndex(ctx); err != nil {
		t.Fatalf("second EnsureIndex: %v", err)
	}
	if cluster.mapping != "" {
		t.Fatalf("existing index was recreated")
	}
}

func TestCountMissingIndex(t *testing.T) {
	repo, _ := newTestRepository(t)
	n, err := repo.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

func TestBulkCreateAndGetAllKeepOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	if err := repo.EnsureIndex(ctx); err != nil {
		t.Fatalf("EnsureIndex: %v", err)
	}

	rows := restaurants(pageSize + 5)
	if err := repo.BulkCreate(ctx, rows[:10]); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if err := repo.BulkCreate(ctx, rows[10:]); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if n, _ := repo.Count(ctx); n != len(rows) {
		t.Fatalf("Count = %d, want %d", n, len(rows))
	}

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("GetAll returned %d rows, want %d", len(got), len(rows))
	}
	for i, r := range got {
		if r.Name != rows[i].Name {
			t.Fatalf("row %d = %s, want %s", i, r.Name, rows[i].Name)
		}
		if r.ID == "" {
			t.Fatalf("row %d has no id", i)
		}
	}
}

func TestCreateAndDeleteAll(t *testing.T) {
	repo, cluster := newTestRepository(t)
	ctx := context.Background()
	r := &models.Restaurant{ID: "fixed", Name: "Le Bistro", Rating: 4.5, Location: models.Location{Lat: 1, Lon: 2}}
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc, ok := cluster.docs["fixed"]; !ok || doc.Name != "Le Bistro" {
		t.Fatalf("docs = %+v", cluster.docs)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("Count after DeleteAll = %d", n)
	}
}
