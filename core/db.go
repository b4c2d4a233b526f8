package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"columnstats/column"
	"columnstats/stats"
	"columnstats/storage"

	"go.uber.org/zap"
)

var (
	// ErrColumnNotFound is returned for a name that was never registered.
	ErrColumnNotFound = errors.New("column not found")
)

// DB registers named columns and serves their statistics. Summaries are
// computed on first request and persisted in the backing store. Columns are
// only traversed under the DB lock, so their cursors are never shared
// between goroutines.
type DB struct {
	store   *BackingStore
	logger  *zap.Logger
	columns map[string]*column.FloatColumn
	mu      sync.Mutex
}

func New(config *StoreConfig, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var backend storage.Backend
	if config.BadgerConfig != nil {
		badgerBackend, err := storage.NewBadgerBackend(config.BadgerConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger backend: %w", err)
		}
		backend = badgerBackend
	} else {
		backend = storage.NewInMemoryBackend()
	}

	store, err := NewBackingStore(backend, config)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to create summary cache: %w", err)
	}

	return &DB{
		store:   store,
		logger:  logger,
		columns: make(map[string]*column.FloatColumn),
	}, nil
}

// AddColumn registers c under its name, replacing any column of the same
// name and dropping its stored summary.
func (db *DB) AddColumn(c *column.FloatColumn) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.store.Delete(c.Name()); err != nil {
		return fmt.Errorf("failed to invalidate summary of %q: %w", c.Name(), err)
	}
	db.columns[c.Name()] = c
	db.logger.Debug("registered column",
		zap.String("column", c.Name()), zap.Int("size", c.Size()))
	return nil
}

// AddIntColumn registers the float64 widening of c.
func (db *DB) AddIntColumn(c *column.IntColumn) error {
	return db.AddColumn(c.ToFloatColumn())
}

func (db *DB) Columns() []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	names := make([]string, 0, len(db.columns))
	for name := range db.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (db *DB) column(name string) (*column.FloatColumn, error) {
	c, ok := db.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return c, nil
}

// Summary returns the stored summary of a column, computing and storing it
// first if needed.
func (db *DB) Summary(name string) (*stats.Summary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	summary, err := db.store.Get(name)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read summary of %q: %w", name, err)
	}

	c, err := db.column(name)
	if err != nil {
		return nil, err
	}
	summary = stats.Stats(c)
	if err := db.store.Put(name, summary); err != nil {
		return nil, fmt.Errorf("failed to store summary of %q: %w", name, err)
	}
	db.logger.Info("computed summary",
		zap.String("column", name),
		zap.Int("n", summary.N),
		zap.Float64("mean", summary.Mean),
		zap.Float64("variance", summary.Variance))
	return summary, nil
}

func (db *DB) StandardDeviation(name string) (float64, error) {
	summary, err := db.Summary(name)
	if err != nil {
		return 0, err
	}
	return summary.StandardDeviation(), nil
}

func (db *DB) ConfidenceInterval(name string, confidenceLevel float64) (*stats.CI, error) {
	summary, err := db.Summary(name)
	if err != nil {
		return nil, err
	}
	return stats.MeanConfidenceInterval(summary, confidenceLevel), nil
}

// Mode returns the most frequent non-NaN values of a column in ascending
// order.
func (db *DB) Mode(name string) ([]float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, err := db.column(name)
	if err != nil {
		return nil, err
	}
	return stats.Mode(c.Values())
}

func (db *DB) Frequencies(name string) ([]stats.Frequency, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	c, err := db.column(name)
	if err != nil {
		return nil, err
	}
	return stats.Frequencies(c.Values()), nil
}

// StoredSummaries returns every persisted summary, including those written
// by an earlier DB over the same Badger directory.
func (db *DB) StoredSummaries() (map[string]*stats.Summary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var names []string
	err := db.store.IterateIndex(func(name string) error {
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*stats.Summary, len(names))
	for _, name := range names {
		summary, err := db.store.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read summary of %q: %w", name, err)
		}
		summaries[name] = summary
	}
	return summaries, nil
}

func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.columns = nil
	return db.store.Close()
}
