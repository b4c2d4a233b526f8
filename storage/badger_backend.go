package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
)

type BadgerBackendConfig struct {
	Path     string
	InMemory bool
}

func TestBadgerBackendConfig() *BadgerBackendConfig {
	return &BadgerBackendConfig{InMemory: true}
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(config *BadgerBackendConfig) (*BadgerBackend, error) {
	option := badger.DefaultOptions(config.Path).
		WithInMemory(config.InMemory).
		WithLogger(nil)
	if config.InMemory {
		option = option.WithDir("").WithValueDir("")
	}
	db, err := badger.Open(option)
	if err != nil {
		return nil, err
	}
	return &BadgerBackend{db: db}, nil
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var summaryBytes []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		summaryBytes, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return summaryBytes, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (backend *BadgerBackend) Get(name string) ([]byte, error) {
	return backend.txnGet(GetKey(name))
}

func (backend *BadgerBackend) Put(name string, buf []byte) error {
	return backend.txnPut(GetKey(name), buf)
}

func (backend *BadgerBackend) Delete(name string) error {
	return backend.txnDelete(GetKey(name))
}

// IterateIndex visits stored summary names in key order.
func (backend *BadgerBackend) IterateIndex(lambda func(string) error) error {
	prefix := []byte(summaryPrefix)
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.PrefetchValues = false
	iterOpts.Prefix = prefix
	return backend.db.View(func(txn *badger.Txn) error {
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := lambda(GetNameFromKey(iter.Item().Key())); err != nil {
				return err
			}
		}
		return nil
	})
}
