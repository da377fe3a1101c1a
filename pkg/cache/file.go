package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/wiremaphq/wiremap/pkg/errors"
)

// cacheEntry is the on-disk envelope. A zero ExpiresAt means no expiration.
type cacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// FileCache stores entries as JSON files under a root directory, fanned out
// by the first two characters of the key to keep directories small.
type FileCache struct {
	root string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to create cache directory")
	}
	return &FileCache{root: dir}, nil
}

// Root returns the cache directory.
func (c *FileCache) Root() string {
	return c.root
}

func (c *FileCache) path(key string) string {
	if len(key) < 2 {
		return filepath.Join(c.root, key+".json")
	}
	return filepath.Join(c.root, key[:2], key+".json")
}

func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to read cache entry")
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Corrupt entries are treated as a miss and removed.
		_ = os.Remove(c.path(key))
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(c.path(key))
		return nil, false, nil
	}

	return entry.Data, true, nil
}

func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := cacheEntry{Data: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to encode cache entry")
	}

	dst := c.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".cache-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to create temp file")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to store cache entry")
	}
	return nil
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to delete cache entry")
	}
	return nil
}

func (c *FileCache) Close() error {
	return nil
}

// Clear removes every entry under the cache root, leaving the root in place.
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to read cache directory")
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.root, e.Name())); err != nil {
			return errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to clear cache")
		}
	}
	return nil
}

// Stats summarizes cache disk usage.
type Stats struct {
	Entries int
	Bytes   int64
}

// Stat walks the cache directory and counts entries and bytes.
func (c *FileCache) Stat() (Stats, error) {
	var stats Stats
	err := filepath.WalkDir(c.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stats.Entries++
		stats.Bytes += info.Size()
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, nil
		}
		return Stats{}, errors.Wrap(errors.ErrCodeCacheFailure, err, "failed to stat cache")
	}
	return stats, nil
}

var _ Cache = (*FileCache)(nil)
