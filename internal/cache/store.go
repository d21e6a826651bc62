package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Fixed cache keys for the two datasets.
const (
	KeyPatrimonio = "patrimonioCache"
	KeyEstoque    = "estoqueCache"
)

type envelope struct {
	Value  json.RawMessage `json:"value"`
	Expiry int64           `json:"expiry"` // unix millis
}

// Store is a time-boxed key/value cache over flat JSON files. Every failure
// mode (missing file, corrupted entry, full disk) is a cache miss, never an
// error surfaced to the caller; the load cycle must work identically with
// and without a cache.
type Store struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger, now: time.Now}
}

// Put stores value under key with the given TTL. Failures are logged and
// swallowed.
func (s *Store) Put(key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache: cannot serialize value", zap.String("key", key), zap.Error(err))
		return
	}

	entry := envelope{
		Value:  raw,
		Expiry: s.now().Add(ttl).UnixMilli(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("cache: cannot serialize envelope", zap.String("key", key), zap.Error(err))
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("cache: cannot create cache dir", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Warn("cache: cannot write entry", zap.String("key", key), zap.Error(err))
	}
}

// Get reads key into out and reports whether a live entry was found.
// Expired or unreadable entries are purged and reported as absent.
func (s *Store) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}

	var entry envelope
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Warn("cache: corrupted entry, purging", zap.String("key", key), zap.Error(err))
		s.Purge(key)
		return false
	}

	if s.now().UnixMilli() > entry.Expiry {
		s.Purge(key)
		return false
	}

	if err := json.Unmarshal(entry.Value, out); err != nil {
		s.logger.Warn("cache: entry does not decode, purging", zap.String("key", key), zap.Error(err))
		s.Purge(key)
		return false
	}
	return true
}

// Purge removes the entry for key, if any.
func (s *Store) Purge(key string) {
	_ = os.Remove(s.path(key))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
