package services

import (
	"context"
	"sync/atomic"
	"time"

	"hypergo-properties/internal/utils"
	"hypergo-properties/pkg/cache"
	"hypergo-properties/pkg/logger"
)

const (
	invalidationAttempts = 3
	invalidationBackoff  = 50 * time.Millisecond
)

// Invalidation event names, used as metric labels.
const (
	EventListingChanged        = "listing_changed"
	EventListingDeleted        = "listing_deleted"
	EventFavoriteChanged       = "favorite_changed"
	EventRecommendationChanged = "recommendation_changed"
	EventPopulateRaced         = "populate_raced"
)

// InvalidationCoordinator purges the cache keys a mutation could have made stale.
// It runs after the store write and before the response is written.
// Failures are retried, then logged and counted; they never fail the mutation.
type InvalidationCoordinator struct {
	store    cache.Store
	epoch    atomic.Uint64
	attempts int
	backoff  time.Duration
}

func NewInvalidationCoordinator(store cache.Store) *InvalidationCoordinator {
	return &InvalidationCoordinator{
		store:    store,
		attempts: invalidationAttempts,
		backoff:  invalidationBackoff,
	}
}

// Epoch advances before every purge. Read it before loading from the store
// and hand it to Populate.
func (c *InvalidationCoordinator) Epoch() uint64 {
	return c.epoch.Load()
}

// Populate caches value under key unless an invalidation started after epoch
// was read. A purge that lands between the check and the write is caught by
// the second read, and the entry is removed again.
func (c *InvalidationCoordinator) Populate(ctx context.Context, key string, epoch uint64, value interface{}, ttl time.Duration) bool {
	if c.epoch.Load() != epoch {
		return false
	}
	if err := cache.SetJSON(ctx, c.store, key, value, ttl); err != nil {
		logger.GlobalLogger.Warnf("failed to cache %s: %v", key, err)
		return false
	}
	if c.epoch.Load() == epoch {
		return true
	}
	c.run(ctx, EventPopulateRaced, func(ctx context.Context) error {
		return c.store.Delete(ctx, key)
	})
	return false
}

// ListingChanged drops every search result plus the favorite-list and
// recommendation namespaces, which embed listing data.
func (c *InvalidationCoordinator) ListingChanged(ctx context.Context) {
	c.epoch.Add(1)
	c.purgeListingNamespaces(ctx, EventListingChanged)
}

// ListingDeleted also drops the favorite flags of users who had the listing saved.
func (c *InvalidationCoordinator) ListingDeleted(ctx context.Context, propertyID string, favoritedBy []string) {
	c.epoch.Add(1)
	c.purgeListingNamespaces(ctx, EventListingDeleted)

	if len(favoritedBy) == 0 {
		return
	}
	keys := make([]string, 0, len(favoritedBy))
	for _, uid := range favoritedBy {
		keys = append(keys, cache.FavoriteCheckKey(uid, propertyID))
	}
	c.run(ctx, EventListingDeleted, func(ctx context.Context) error {
		return c.store.Delete(ctx, keys...)
	})
}

func (c *InvalidationCoordinator) FavoriteChanged(ctx context.Context, userID, propertyID string) {
	c.epoch.Add(1)
	c.run(ctx, EventFavoriteChanged, func(ctx context.Context) error {
		return c.store.Delete(ctx, cache.FavoriteListKey(userID), cache.FavoriteCheckKey(userID, propertyID))
	})
}

func (c *InvalidationCoordinator) RecommendationChanged(ctx context.Context, senderID, recipientID string) {
	c.epoch.Add(1)
	c.run(ctx, EventRecommendationChanged, func(ctx context.Context) error {
		return c.store.Delete(ctx, cache.RecommendationsSentKey(senderID), cache.RecommendationsReceivedKey(recipientID))
	})
}

func (c *InvalidationCoordinator) purgeListingNamespaces(ctx context.Context, event string) {
	for _, ns := range []string{
		cache.NamespaceSearch,
		cache.NamespaceFavoriteList,
		cache.NamespaceRecommendationsReceived,
		cache.NamespaceRecommendationsSent,
	} {
		prefix := cache.NamespacePrefix(ns)
		c.run(ctx, event, func(ctx context.Context) error {
			n, err := c.store.DeletePrefix(ctx, prefix)
			if err == nil {
				logger.GlobalLogger.Debugf("purged %d keys under %s", n, prefix)
			}
			return err
		})
	}
}

// run detaches from the request's cancellation so a client hang-up cannot
// leave a purge half done.
func (c *InvalidationCoordinator) run(ctx context.Context, event string, purge func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	attempts, err := utils.Retry(ctx, c.attempts, c.backoff, func() error {
		return purge(ctx)
	})

	switch {
	case err != nil:
		utils.RecordInvalidation(event, "failed")
		logger.GlobalLogger.Errorf("cache invalidation %s failed after %d attempt(s): %v", event, attempts, err)
	case attempts > 1:
		utils.RecordInvalidation(event, "retried")
	default:
		utils.RecordInvalidation(event, "ok")
	}
}
