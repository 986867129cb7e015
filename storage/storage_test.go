package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testStoreRoundTrip(t *testing.T, store Store) {
	t.Helper()

	_, ok, err := store.Get("cafe_menu_items")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Put("cafe_menu_items", []byte(`[{"id":"1"}]`)))

	value, ok, err := store.Get("cafe_menu_items")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(value))

	// Overwrite wins.
	assert.NoError(t, store.Put("cafe_menu_items", []byte(`[]`)))
	value, ok, err = store.Get("cafe_menu_items")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemory())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemory()
	raw := []byte(`[]`)
	assert.NoError(t, store.Put("k", raw))
	raw[0] = 'x'

	value, ok, err := store.Get("k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestFileStore(t *testing.T) {
	store, err := NewFile(t.TempDir())
	assert.NoError(t, err)
	testStoreRoundTrip(t, store)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFile(dir)
	assert.NoError(t, err)
	assert.NoError(t, store.Put("cafe_orders", []byte(`[]`)))

	reopened, err := NewFile(dir)
	assert.NoError(t, err)
	value, ok, err := reopened.Get("cafe_orders")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestGormStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	store, err := NewGorm(db)
	assert.NoError(t, err)
	testStoreRoundTrip(t, store)
}
