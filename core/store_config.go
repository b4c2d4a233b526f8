package core

import "columnstats/storage"

type StoreConfig struct {
	CacheEnabled bool
	NumCounters  int64
	MaxCost      int64
	BufferItems  int64
	// BadgerConfig selects the Badger backend; nil keeps summaries in memory.
	BadgerConfig *storage.BadgerBackendConfig
}

func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		CacheEnabled: true,
		NumCounters:  1e4,
		MaxCost:      1 << 20,
		BufferItems:  64,
	}
}
