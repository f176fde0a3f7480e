package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/internal/query"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/pkg/cache"
	"hypergo-properties/pkg/logger"
	"hypergo-properties/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

// searchEntry is what a search key stores. Canonical guards against a
// fingerprint collision serving another filter's result.
type searchEntry struct {
	Canonical string               `json:"canonical"`
	Result    *models.SearchResult `json:"result"`
}

type PropertySearchService struct {
	repo        repositories.PropertyRepository
	users       repositories.UserRepository
	store       cache.Store
	invalidator *InvalidationCoordinator
	ttl         time.Duration
	flights     singleflight.Group
}

func NewPropertySearchService(
	repo repositories.PropertyRepository,
	users repositories.UserRepository,
	store cache.Store,
	invalidator *InvalidationCoordinator,
	ttl time.Duration,
) *PropertySearchService {
	return &PropertySearchService{
		repo:        repo,
		users:       users,
		store:       store,
		invalidator: invalidator,
		ttl:         ttl,
	}
}

// Search returns one page of listings for params and whether it came from the cache.
func (s *PropertySearchService) Search(ctx context.Context, params url.Values) (*models.SearchResult, bool, error) {
	filter := query.Canonicalize(params)
	canonical := filter.Encode()
	key := cache.SearchResultKey(canonical)

	epoch := s.invalidator.Epoch()
	if entry, ok := cache.GetJSON[searchEntry](ctx, s.store, key); ok {
		if entry.Canonical == canonical && entry.Result != nil {
			return entry.Result, true, nil
		}
		logger.GlobalLogger.Warnf("search key %s holds a different filter, treating as miss", key)
	}

	flightKey := fmt.Sprintf("%s@%d", key, epoch)

	v, err, shared := s.flights.Do(flightKey, func() (interface{}, error) {
		// The flight outlives any single waiter.
		return s.load(context.WithoutCancel(ctx), filter, key, canonical, epoch)
	})
	if shared {
		metrics.SearchSharedFlightsTotal.Inc()
	}
	if err != nil {
		return nil, false, err
	}
	return v.(*models.SearchResult), false, nil
}

func (s *PropertySearchService) load(ctx context.Context, filter query.CanonicalFilter, key, canonical string, epoch uint64) (*models.SearchResult, error) {
	props, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		logger.GlobalLogger.Errorf("search query failed: filter=%s, error=%v", canonical, err)
		return nil, apperrors.BackendUnavailable("search properties", err)
	}

	populated, err := withOwners(ctx, s.users, props)
	if err != nil {
		return nil, apperrors.BackendUnavailable("populate owners", err)
	}

	result := &models.SearchResult{
		Properties: populated,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: filter.TotalPages(total),
	}

	// A listing write during the query would make this result stale.
	s.invalidator.Populate(ctx, key, epoch, searchEntry{Canonical: canonical, Result: result}, s.ttl)
	return result, nil
}
