// Package search stores the restaurant catalog in an Elasticsearch
// index.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/lucsky/cuid"
)

// pageSize bounds each search_after page when reading the whole index.
const pageSize = 1000

const indexMapping = `{
  "mappings": {
    "properties": {
      "seq":           {"type": "long"},
      "id":            {"type": "keyword"},
      "name":          {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "city":          {"type": "keyword"},
      "country":       {"type": "keyword"},
      "cuisine":       {"type": "keyword"},
      "rating":        {"type": "double"},
      "reviews_count": {"type": "integer"},
      "price_range":   {"type": "keyword"},
      "location":      {"type": "geo_point"},
      "address":       {"type": "text"},
      "phone":         {"type": "keyword"}
    }
  }
}`

// document is the indexed form of a restaurant. Seq preserves insertion
// order for GetAll.
type document struct {
	Seq          int64           `json:"seq"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Cuisine      string          `json:"cuisine"`
	Rating       float64         `json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
	PriceRange   string          `json:"price_range,omitempty"`
	Location     models.Location `json:"location"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
}

func newDocument(seq int64, r *models.Restaurant) document {
	id := r.ID
	if id == "" {
		id = cuid.New()
	}
	return document{
		Seq:          seq,
		ID:           id,
		Name:         r.Name,
		City:         r.City,
		Country:      r.Country,
		Cuisine:      r.Cuisine,
		Rating:       r.Rating,
		ReviewsCount: r.ReviewsCount,
		PriceRange:   r.PriceRange,
		Location:     r.Location,
		Address:      r.Address,
		Phone:        r.Phone,
	}
}

func (d document) restaurant() *models.Restaurant {
	return &models.Restaurant{
		ID:           d.ID,
		Name:         d.Name,
		City:         d.City,
		Country:      d.Country,
		Cuisine:      d.Cuisine,
		Rating:       d.Rating,
		ReviewsCount: d.ReviewsCount,
		PriceRange:   d.PriceRange,
		Location:     d.Location,
		Address:      d.Address,
		Phone:        d.Phone,
	}
}

type RestaurantRepository struct {
	client *elasticsearch.Client
	index  string
}

// NewClient builds a client from the application config.
func NewClient(cfg models.ElasticsearchConfig) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}
	return client, nil
}

func NewRestaurantRepository(client *elasticsearch.Client, index string) *RestaurantRepository {
	return &RestaurantRepository{client: client, index: index}
}

// EnsureIndex creates the index with its mapping when it does not exist.
func (r *RestaurantRepository) EnsureIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = r.client.Indices.Create(
		r.index,
		r.client.Indices.Create.WithBody(strings.NewReader(indexMapping)),
		r.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("creating index", res)
	}
	return nil
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}
	next, err := r.Count(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i, restaurant := range restaurants {
		doc := newDocument(int64(next+i), restaurant)
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": r.index,
				"_id":    doc.ID,
			},
		}
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode restaurant: %w", err)
		}
	}

	res, err := r.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		r.client.Bulk.WithContext(ctx),
		r.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("bulk indexing", res)
	}

	var result struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  struct {
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		for _, item := range result.Items {
			for _, op := range item {
				if op.Status >= 300 {
					return fmt.Errorf("error bulk indexing: status %d: %s", op.Status, op.Error.Reason)
				}
			}
		}
		return fmt.Errorf("error bulk indexing")
	}
	return nil
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	next, err := r.Count(ctx)
	if err != nil {
		return err
	}
	doc := newDocument(int64(next), restaurant)
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurant: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index restaurant: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("indexing restaurant", res)
	}
	return nil
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]*models.Restaurant, error) {
	var restaurants []*models.Restaurant
	var after []interface{}
	for {
		query := map[string]interface{}{
			"size":  pageSize,
			"query": map[string]interface{}{"match_all": map[string]interface{}{}},
			"sort":  []interface{}{map[string]interface{}{"seq": "asc"}},
		}
		if after != nil {
			query["search_after"] = after
		}
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(query); err != nil {
			return nil, fmt.Errorf("failed to encode query: %w", err)
		}

		res, err := r.client.Search(
			r.client.Search.WithContext(ctx),
			r.client.Search.WithIndex(r.index),
			r.client.Search.WithBody(&buf),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to search: %w", err)
		}

		var result struct {
			Hits struct {
				Hits []struct {
					Source document      `json:"_source"`
					Sort   []interface{} `json:"sort"`
				} `json:"hits"`
			} `json:"hits"`
		}
		if res.IsError() {
			err := responseError("searching", res)
			res.Body.Close()
			return nil, err
		}
		err = json.NewDecoder(res.Body).Decode(&result)
		res.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		hits := result.Hits.Hits
		for _, hit := range hits {
			restaurants = append(restaurants, hit.Source.restaurant())
		}
		if len(hits) < pageSize {
			return restaurants, nil
		}
		after = hits[len(hits)-1].Sort
	}
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	res, err := r.client.Count(
		r.client.Count.WithContext(ctx),
		r.client.Count.WithIndex(r.index),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if res.IsError() {
		return 0, responseError("counting", res)
	}

	var result struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode count: %w", err)
	}
	return result.Count, nil
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	res, err := r.client.DeleteByQuery(
		[]string{r.index},
		strings.NewReader(`{"query":{"match_all":{}}}`),
		r.client.DeleteByQuery.WithContext(ctx),
		r.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return responseError("deleting", res)
	}
	return nil
}

func responseError(action string, res *esapi.Response) error {
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("error %s: status %d, body: %s", action, res.StatusCode, string(body))
}
