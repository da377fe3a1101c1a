// Package cache provides byte caching for rendered wiremap artifacts.
//
// The pipeline caches two stages: computed layouts and rendered artifacts
// (SVG, PNG, DOT bytes). Keys are derived from a content hash of the
// document plus the options that influence the stage, so any change to the
// document or settings naturally invalidates the entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an unknown key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases cache resources.
	Close() error
}

// Default TTLs per stage. Layouts and artifacts are pure functions of their
// key material, so the TTL only bounds disk usage, not correctness.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// LayoutKeyOpts captures the options that influence layout computation.
type LayoutKeyOpts struct {
	NodeWidth  float64
	NodeHeight float64
	ColumnGap  float64
	RowGap     float64
	Padding    float64
}

// ArtifactKeyOpts captures the options that influence artifact rendering.
type ArtifactKeyOpts struct {
	Format     string
	Style      string
	Curve      string
	StepRadius float64
	ArrowSize  float64
	Headings   bool
}

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for layout caching from a document hash.
	LayoutKey(docHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for artifact caching from a document hash.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the document hash together with the stage options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
