package core

import (
	"fmt"
	"sync"

	"columnstats/stats"
	"columnstats/storage"

	"github.com/dgraph-io/ristretto"
)

// BackingStore persists column summaries in a storage.Backend with an
// optional ristretto cache in front. The cache is best-effort: ristretto may
// drop or delay writes, so a miss always falls through to the backend.
type BackingStore struct {
	backend      storage.Backend
	cacheEnabled bool
	summaryCache *ristretto.Cache

	// Cache keys carry a per-name generation so that entries written before
	// a Put or Delete are never read back.
	mu          sync.Mutex
	generations map[string]uint64
}

func NewBackingStore(backend storage.Backend, config *StoreConfig) (*BackingStore, error) {
	store := &BackingStore{
		backend:      backend,
		cacheEnabled: config.CacheEnabled,
		generations:  make(map[string]uint64),
	}
	if config.CacheEnabled {
		summaryCache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: config.NumCounters,
			MaxCost:     config.MaxCost,
			BufferItems: config.BufferItems,
		})
		if err != nil {
			return nil, err
		}
		store.summaryCache = summaryCache
	}
	return store, nil
}

func (store *BackingStore) cacheKey(name string, bump bool) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	if bump {
		store.generations[name]++
	}
	return fmt.Sprintf("%s@%d", name, store.generations[name])
}

// Get returns a copy of the stored summary, or storage.ErrNotFound.
func (store *BackingStore) Get(name string) (*stats.Summary, error) {
	if store.cacheEnabled {
		cached, found := store.summaryCache.Get(store.cacheKey(name, false))
		if found {
			summary := *cached.(*stats.Summary)
			return &summary, nil
		}
	}
	buf, err := store.backend.Get(name)
	if err != nil {
		return nil, err
	}
	return BytesToSummary(buf)
}

func (store *BackingStore) Put(name string, summary *stats.Summary) error {
	if err := store.backend.Put(name, SummaryToBytes(summary)); err != nil {
		return err
	}
	if store.cacheEnabled {
		cached := *summary
		store.summaryCache.Set(store.cacheKey(name, true), &cached, 1)
	}
	return nil
}

func (store *BackingStore) Delete(name string) error {
	if store.cacheEnabled {
		store.summaryCache.Del(store.cacheKey(name, false))
		store.cacheKey(name, true)
	}
	return store.backend.Delete(name)
}

func (store *BackingStore) IterateIndex(lambda func(string) error) error {
	return store.backend.IterateIndex(lambda)
}

func (store *BackingStore) Close() error {
	if store.cacheEnabled {
		store.summaryCache.Close()
	}
	return store.backend.Close()
}
