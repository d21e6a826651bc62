package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), nil)
}

func TestStorePutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	store.Put("key", map[string]string{"a": "1"}, time.Minute)

	var out map[string]string
	assert.True(t, store.Get("key", &out))
	assert.Equal(t, "1", out["a"])
}

func TestStoreExpiryBoundary(t *testing.T) {
	store := newTestStore(t)
	base := time.Now()
	store.now = func() time.Time { return base }

	ttl := 5 * time.Minute
	store.Put("key", []int{1, 2, 3}, ttl)

	// just before expiry: hit
	store.now = func() time.Time { return base.Add(ttl - time.Millisecond) }
	var out []int
	assert.True(t, store.Get("key", &out))
	assert.Equal(t, []int{1, 2, 3}, out)

	// just past expiry: miss, and the entry is removed
	store.now = func() time.Time { return base.Add(ttl + time.Millisecond) }
	assert.False(t, store.Get("key", &out))
	_, err := os.Stat(store.path("key"))
	assert.True(t, os.IsNotExist(err))

	// even back in time the purged entry stays gone
	store.now = func() time.Time { return base }
	assert.False(t, store.Get("key", &out))
}

func TestStoreMissingKeyIsMiss(t *testing.T) {
	store := newTestStore(t)
	var out string
	assert.False(t, store.Get("nothing", &out))
}

func TestStoreCorruptedEntryIsPurged(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var out string
	assert.False(t, store.Get("bad", &out))
	_, err := os.Stat(filepath.Join(dir, "bad.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestStoreMismatchedTypeIsPurgedMiss(t *testing.T) {
	store := newTestStore(t)
	store.Put("key", "text", time.Minute)

	var out []int
	assert.False(t, store.Get("key", &out))
	// entry removed, so a matching read also misses now
	var s string
	assert.False(t, store.Get("key", &s))
}

func TestStorePurge(t *testing.T) {
	store := newTestStore(t)
	store.Put("key", 1, time.Minute)
	store.Purge("key")

	var out int
	assert.False(t, store.Get("key", &out))
}
