package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Collection names, shared by the cache keys and the API paths.
const (
	CollectionUsers          = "users"
	CollectionPatients       = "patients"
	CollectionAudiograms     = "audiograms"
	CollectionHearingAids    = "hearing-aids"
	CollectionPatientDevices = "patient-devices"
	CollectionAppointments   = "appointments"
	CollectionInvoices       = "invoices"
	CollectionExpenses       = "expenses"
	CollectionStockItems     = "stock-items"
)

// AllCollections lists every collection, parents first.
var AllCollections = []string{
	CollectionUsers,
	CollectionPatients,
	CollectionHearingAids,
	CollectionAudiograms,
	CollectionPatientDevices,
	CollectionAppointments,
	CollectionInvoices,
	CollectionExpenses,
	CollectionStockItems,
}

// ListCache stores the serialized list response of each collection.
// A cache failure never fails the request; the database stays authoritative.
type ListCache struct {
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewListCache(c cache.Cache, ttl time.Duration, log *logrus.Logger) *ListCache {
	return &ListCache{cache: c, ttl: ttl, log: log}
}

func generationKey(collection string) string {
	return "listgen:" + collection
}

// listKey names the list of collection at one generation. A fill that
// started before an invalidation lands on a key nobody reads anymore.
func listKey(collection, generation string) string {
	return "list:" + collection + ":" + generation
}

func (c *ListCache) generation(ctx context.Context, collection string) string {
	raw, ok, err := c.cache.Get(ctx, generationKey(collection))
	if err != nil {
		c.log.Warnf("Failed to read list generation %s: %+v", collection, err)
	}
	if !ok {
		return ""
	}
	return string(raw)
}

// Invalidate moves the given collections to a new generation and drops
// their current lists.
func (c *ListCache) Invalidate(ctx context.Context, collections ...string) {
	for _, collection := range collections {
		previous := c.generation(ctx, collection)
		if err := c.cache.Set(ctx, generationKey(collection), []byte(uuid.NewString()), 0); err != nil {
			c.log.Warnf("Failed to bump list generation %s: %+v", collection, err)
		}
		if err := c.cache.Delete(ctx, listKey(collection, previous)); err != nil {
			c.log.Warnf("Failed to invalidate cached list %s: %+v", collection, err)
		}
	}
}

// CachedList returns the cached list of collection, calling load and
// filling the cache on a miss.
func CachedList[T any](ctx context.Context, c *ListCache, collection string, load func() ([]T, error)) ([]T, error) {
	key := listKey(collection, c.generation(ctx, collection))

	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warnf("Failed to read cached list %s: %+v", collection, err)
	}
	if ok {
		var cached []T
		decodeErr := json.Unmarshal(raw, &cached)
		if decodeErr == nil {
			return cached, nil
		}
		c.log.Warnf("Failed to decode cached list %s: %+v", collection, decodeErr)
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		c.log.Warnf("Failed to encode list %s: %+v", collection, err)
		return items, nil
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.log.Warnf("Failed to cache list %s: %+v", collection, err)
	}
	return items, nil
}
