package storage

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKey(t *testing.T) {
	key := GetKey("price/usd")
	assert.Equal(t, "summary/price/usd", string(key))
	assert.Equal(t, "price/usd", GetNameFromKey(key))
}

func testGetPutDelete(t *testing.T, backend Backend) {
	_, err := backend.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	summary := []byte{0, 1, 2, 3, 4, 5}
	require.NoError(t, backend.Put("price", summary))
	buf, err := backend.Get("price")
	require.NoError(t, err)
	assert.Equal(t, summary, buf)

	require.NoError(t, backend.Put("price", []byte{9}))
	buf, err = backend.Get("price")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, buf)

	require.NoError(t, backend.Delete("price"))
	_, err = backend.Get("price")
	assert.ErrorIs(t, err, ErrNotFound)
}

func testIterateIndex(t *testing.T, backend Backend) {
	for _, name := range []string{"qty", "price", "discount"} {
		require.NoError(t, backend.Put(name, []byte(name)))
	}

	var index []string
	err := backend.IterateIndex(func(name string) error {
		index = append(index, name)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(index)
	assert.Equal(t, []string{"discount", "price", "qty"}, index)

	stop := errors.New("stop")
	visited := 0
	err = backend.IterateIndex(func(string) error {
		visited++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestInMemoryBackend(t *testing.T) {
	backend := NewInMemoryBackend()
	defer backend.Close()
	testGetPutDelete(t, backend)
	testIterateIndex(t, backend)
}

func TestBadgerBackend(t *testing.T) {
	backend, err := NewBadgerBackend(TestBadgerBackendConfig())
	require.NoError(t, err)
	defer backend.Close()
	testGetPutDelete(t, backend)
	testIterateIndex(t, backend)
}

func TestBadgerBackend_OnDisk(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewBadgerBackend(&BadgerBackendConfig{Path: dir})
	require.NoError(t, err)
	require.NoError(t, backend.Put("price", []byte{1, 2}))
	require.NoError(t, backend.Close())

	backend, err = NewBadgerBackend(&BadgerBackendConfig{Path: dir})
	require.NoError(t, err)
	defer backend.Close()
	buf, err := backend.Get("price")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, buf)
}
