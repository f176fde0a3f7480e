package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"hypergo-properties/internal/models"
	"hypergo-properties/internal/query"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/internal/repositories/memory"
	"hypergo-properties/internal/validators"
	"hypergo-properties/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testTTL = 5 * time.Minute

type testEnv struct {
	props       *memory.PropertyRepository
	users       *memory.UserRepository
	favorites   *memory.FavoriteRepository
	recs        *memory.RecommendationRepository
	store       cache.Store
	invalidator *InvalidationCoordinator

	listings        *PropertyService
	search          *PropertySearchService
	favoriteSvc     *FavoriteService
	recommendations *RecommendationService
	accounts        *UserService
}

func newTestEnv(store cache.Store) *testEnv {
	if store == nil {
		store = cache.NewMemoryStore(1000, testTTL)
	}
	e := &testEnv{
		props:     memory.NewPropertyRepository(),
		users:     memory.NewUserRepository(),
		favorites: memory.NewFavoriteRepository(),
		recs:      memory.NewRecommendationRepository(),
		store:     store,
	}
	e.invalidator = NewInvalidationCoordinator(store)
	e.invalidator.backoff = time.Millisecond
	e.wire(e.props)
	return e
}

// wire builds the services on top of props, which may wrap the memory repository.
func (e *testEnv) wire(props repositories.PropertyRepository) {
	e.listings = NewPropertyService(props, e.users, e.favorites, e.recs, validators.NewPropertyValidator(), e.invalidator)
	e.search = NewPropertySearchService(props, e.users, e.store, e.invalidator, testTTL)
	e.favoriteSvc = NewFavoriteService(e.favorites, props, e.users, e.store, e.invalidator, testTTL)
	e.recommendations = NewRecommendationService(e.recs, props, e.users, validators.NewRecommendationValidator(), e.store, e.invalidator, testTTL)
	e.accounts = NewUserService(e.users, validators.NewUserValidator(), "test-secret", time.Hour)
	e.accounts.bcryptCost = bcrypt.MinCost
}

func (e *testEnv) user(name string) *models.User {
	u := &models.User{Name: name, Email: name + "@example.com", CreatedAt: time.Now().UTC()}
	if err := e.users.Create(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

// seed stores a listing directly, bypassing the service and its invalidation.
func (e *testEnv) seed(publicID string, owner primitive.ObjectID, mutate func(*models.Property)) *models.Property {
	p := &models.Property{
		PropertyID:  publicID,
		Title:       "Listing " + publicID,
		Type:        models.TypeApartment,
		Price:       1000,
		State:       "Maharashtra",
		City:        "Pune",
		AreaSqFt:    900,
		Bedrooms:    2,
		Bathrooms:   1,
		Amenities:   "lift|gym",
		Furnished:   models.Furnished,
		ListingType: models.ListingRent,
		CreatedBy:   owner,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(p)
	}
	if err := e.props.Create(context.Background(), p); err != nil {
		panic(err)
	}
	return p
}

func validInput() *models.PropertyInput {
	return &models.PropertyInput{
		Title:         "Hill view bungalow",
		Type:          models.TypeBungalow,
		Price:         5000000,
		State:         "Maharashtra",
		City:          "Pune",
		AreaSqFt:      2400,
		Bedrooms:      3,
		Bathrooms:     3,
		Amenities:     "garden|parking",
		Furnished:     models.SemiFurnished,
		AvailableFrom: "2025-07-01",
		ListedBy:      "Owner",
		Tags:          "quiet",
		ColorTheme:    "#aabbcc",
		Rating:        4,
		ListingType:   models.ListingSale,
	}
}

// failingStore is a cache whose backend is down.
type failingStore struct {
	mu      sync.Mutex
	deletes int
}

var errCacheDown = cache.NewCacheError("dial", "", errors.New("connection refused"), true)

func (f *failingStore) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (f *failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errCacheDown
}
func (f *failingStore) Delete(context.Context, ...string) error {
	f.mu.Lock()
	f.deletes++
	f.mu.Unlock()
	return errCacheDown
}
func (f *failingStore) DeletePrefix(context.Context, string) (int, error) {
	f.mu.Lock()
	f.deletes++
	f.mu.Unlock()
	return 0, errCacheDown
}
func (f *failingStore) Ping(context.Context) error { return errCacheDown }
func (f *failingStore) Close() error               { return nil }

// gatedRepo counts searches and holds each one until release is closed.
type gatedRepo struct {
	repositories.PropertyRepository
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func newGatedRepo(inner repositories.PropertyRepository) *gatedRepo {
	return &gatedRepo{
		PropertyRepository: inner,
		entered:            make(chan struct{}, 16),
		release:            make(chan struct{}),
	}
}

func (g *gatedRepo) Search(ctx context.Context, f query.CanonicalFilter) ([]models.Property, int64, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	g.entered <- struct{}{}
	<-g.release
	return g.PropertyRepository.Search(ctx, f)
}

func (g *gatedRepo) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// brokenRepo fails every lookup.
type brokenRepo struct {
	repositories.PropertyRepository
}

var errStoreDown = errors.New("server selection timeout")

func (brokenRepo) FindByPublicID(context.Context, string) (*models.Property, error) {
	return nil, errStoreDown
}

func (brokenRepo) Search(context.Context, query.CanonicalFilter) ([]models.Property, int64, error) {
	return nil, 0, errStoreDown
}

func publicID(i int) string {
	return fmt.Sprintf("PROP%d", 1000+i)
}

// hookStore runs beforeSet once, ahead of the first write to a key under prefix.
type hookStore struct {
	cache.Store
	prefix    string
	once      sync.Once
	beforeSet func()
}

func (h *hookStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if strings.HasPrefix(key, h.prefix) {
		h.once.Do(h.beforeSet)
	}
	return h.Store.Set(ctx, key, value, ttl)
}
