package storage

import (
	"errors"
	"strings"
	"sync"
)

const summaryPrefix = "summary/"

var (
	// ErrNotFound is returned when no summary is stored under a name.
	ErrNotFound = errors.New("summary not found")
)

func GetKey(name string) []byte {
	return []byte(summaryPrefix + name)
}

func GetNameFromKey(buf []byte) string {
	return strings.TrimPrefix(string(buf), summaryPrefix)
}

// Backend stores serialized column summaries keyed by column name.
type Backend interface {
	Get(string) ([]byte, error)
	Put(string, []byte) error
	Delete(string) error

	IterateIndex(func(string) error) error

	Close() error
}

type InMemoryBackend struct {
	summaryMap      map[string][]byte
	summaryMapMutex sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		summaryMap: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(name string) ([]byte, error) {
	backend.summaryMapMutex.Lock()
	defer backend.summaryMapMutex.Unlock()
	buf, ok := backend.summaryMap[string(GetKey(name))]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(name string, buf []byte) error {
	backend.summaryMapMutex.Lock()
	defer backend.summaryMapMutex.Unlock()
	backend.summaryMap[string(GetKey(name))] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(name string) error {
	backend.summaryMapMutex.Lock()
	defer backend.summaryMapMutex.Unlock()
	delete(backend.summaryMap, string(GetKey(name)))
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.summaryMapMutex.Lock()
	defer backend.summaryMapMutex.Unlock()
	backend.summaryMap = nil
	return nil
}

// IterateIndex calls lambda with the name of every stored summary. The
// order is unspecified.
func (backend *InMemoryBackend) IterateIndex(lambda func(string) error) error {
	backend.summaryMapMutex.Lock()
	keys := make([]string, 0, len(backend.summaryMap))
	for k := range backend.summaryMap {
		keys = append(keys, k)
	}
	backend.summaryMapMutex.Unlock()

	for _, k := range keys {
		if err := lambda(GetNameFromKey([]byte(k))); err != nil {
			return err
		}
	}
	return nil
}
