// Package cache provides memoization for normalization and rendering.
//
// The engine itself is a pure function, so results can be cached by input
// identity alone: a layout is keyed by (dataset hash, geometry and kind
// options), a rendered artifact by (layout hash, format options). This
// package defines the Cache storage interface with file, Redis, and null
// backends, and the Keyer interface that derives stable cache keys.
//
// Caching is an optimization, never a correctness requirement; every
// backend may drop entries at any time.
package cache

import (
	"context"
	"time"
)

// TTLs for the different cached value classes. Layouts and artifacts are
// deterministic functions of their keys, so the TTLs exist only to bound
// storage growth.
const (
	TTLDataset  = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with TTL support.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// LayoutKeyOpts are the option fields that influence a layout computation.
// Two normalizations with the same dataset hash and the same opts are
// guaranteed to produce identical layouts.
type LayoutKeyOpts struct {
	Kind     string
	Width    float64
	Height   float64
	SlotFill float64
	Quantize float64
}

// ArtifactKeyOpts are the option fields that influence rendering.
type ArtifactKeyOpts struct {
	Format string
	Theme  string
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for an imported dataset file.
	DatasetKey(source string) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DatasetKey generates a key for an imported dataset file.
func (DefaultKeyer) DatasetKey(source string) string {
	return hashKey("dataset", source)
}

// LayoutKey generates a key for a computed layout.
func (DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
