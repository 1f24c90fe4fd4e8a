package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a root directory. It is the
// default backend for CLI runs, where layouts and rendered artifacts survive
// between invocations without any external service.
type FileCache struct {
	root string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{root: dir}, nil
}

// fileEntry is the on-disk envelope. A zero Deadline means the entry never
// expires.
type fileEntry struct {
	Payload  []byte    `json:"payload"`
	Deadline time.Time `json:"deadline,omitempty"`
}

// Get reads the entry for key. Expired or corrupt entries are removed and
// reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.Deadline.IsZero() && time.Now().After(entry.Deadline) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Payload, true, nil
}

// Set writes data under key with the given TTL. A zero TTL stores the entry
// without expiration.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.Deadline = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes the entry for key if present.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Close is a no-op; files are synced on write.
func (c *FileCache) Close() error { return nil }

// entryPath maps a key to <root>/<hh>/<rest>.json. Keys are hashed so that
// arbitrary key strings never touch the filesystem directly, and the two-char
// fan-out keeps directory listings small.
func (c *FileCache) entryPath(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.root, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
