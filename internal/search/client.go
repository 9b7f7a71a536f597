package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"leadsearch/internal/config"

	"github.com/elastic/go-elasticsearch/v8"
)

// Client wraps the Elasticsearch connection used for suggestion lookups
type Client struct {
	es    *elasticsearch.Client
	index string
}

// NewClient creates a new search client for the configured cluster and index
func NewClient(cfg *config.SearchConfig) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return &Client{
		es:    es,
		index: cfg.Index,
	}, nil
}

// suggestionResponse covers the part of the search response we read:
// the bucket keys of the "suggestions" terms aggregation.
type suggestionResponse struct {
	Aggregations struct {
		Suggestions struct {
			Buckets []struct {
				Key string `json:"key"`
			} `json:"buckets"`
		} `json:"suggestions"`
	} `json:"aggregations"`
}

// FieldSuggestions returns up to limit distinct values of field matching the
// query, ascending. The match is a case-insensitive substring wildcard on the
// raw field; distinct values come from a terms aggregation on the keyword
// variant of the same field, ordered by key.
func (c *Client) FieldSuggestions(ctx context.Context, field, query string, limit int) ([]string, error) {
	body := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"wildcard": map[string]interface{}{
				field: map[string]interface{}{
					"value":            fmt.Sprintf("*%s*", strings.ToLower(query)),
					"case_insensitive": true,
				},
			},
		},
		"aggs": map[string]interface{}{
			"suggestions": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": field + ".keyword",
					"size":  limit,
					"order": map[string]interface{}{"_key": "asc"},
				},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search returned %s: %s", res.Status(), string(msg))
	}

	var parsed suggestionResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	suggestions := make([]string, 0, len(parsed.Aggregations.Suggestions.Buckets))
	for _, bucket := range parsed.Aggregations.Suggestions.Buckets {
		suggestions = append(suggestions, bucket.Key)
	}

	return suggestions, nil
}

// Ping checks cluster connectivity
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("search ping failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search ping returned %s", res.Status())
	}

	return nil
}
