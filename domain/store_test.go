package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))

	data, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))

	require.NoError(t, store.Write([]byte(`[{"id":"a"}]`)))

	data, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), data)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	data, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, store.Write([]byte("blob")))

	data, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), data)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)

	data, err := store.Read()
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Write([]byte(`[{"id":"a"}]`)))
	require.NoError(t, store.Close())

	// reopen to prove the blob survived
	store, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	data, err = store.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), data)
}
