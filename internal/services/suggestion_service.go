package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"leadsearch/internal/cache"
	"leadsearch/internal/models"
)

var (
	ErrInvalidSuggestionField = errors.New("unknown suggestion field")
	ErrSearchUnavailable      = errors.New("search service unavailable")
)

// cachedSuggestions is the JSON document stored in the cache. It mirrors the
// response body so a hit can be returned verbatim.
type cachedSuggestions struct {
	Suggestions []string `json:"suggestions"`
}

// SuggestionService resolves typeahead suggestions through a read-through
// TTL cache in front of the search index. Cache entries are derived data:
// losing them only costs a second search round trip.
type SuggestionService struct {
	searcher SuggestionSearcher
	cache    SuggestionCache
	ttl      time.Duration
	metrics  MetricsRecorderInterface
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(searcher SuggestionSearcher, suggestionCache SuggestionCache, ttl time.Duration, metrics MetricsRecorderInterface) SuggestionServiceInterface {
	return &SuggestionService{
		searcher: searcher,
		cache:    suggestionCache,
		ttl:      ttl,
		metrics:  metrics,
	}
}

// GetSuggestions returns up to limit distinct field values matching query,
// ascending. The second return value reports whether the result came from
// the cache.
func (s *SuggestionService) GetSuggestions(ctx context.Context, field, query string, limit int) ([]string, bool, error) {
	if !models.IsValidSuggestionField(field) {
		return nil, false, ErrInvalidSuggestionField
	}

	key := cache.SuggestionKey(field, query, limit)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var stored cachedSuggestions
		if err := json.Unmarshal([]byte(cached), &stored); err == nil {
			s.metrics.IncrementCounter("suggestion_request", map[string]string{"status": "success", "cache": "hit"})
			return stored.Suggestions, true, nil
		}
		slog.Warn("Discarding malformed cache entry", "key", key)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		// A broken cache degrades to a search round trip, never to an error
		slog.Warn("Cache lookup failed", "key", key, "error", err)
	}

	suggestions, err := s.searcher.FieldSuggestions(ctx, field, query, limit)
	if err != nil {
		s.metrics.IncrementCounter("suggestion_request", map[string]string{"status": "failed", "cache": "miss"})
		return nil, false, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	if payload, err := json.Marshal(cachedSuggestions{Suggestions: suggestions}); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			slog.Warn("Cache fill failed", "key", key, "error", err)
		}
	}

	s.metrics.IncrementCounter("suggestion_request", map[string]string{"status": "success", "cache": "miss"})
	return suggestions, false, nil
}
