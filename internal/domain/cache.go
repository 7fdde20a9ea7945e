package domain

import (
	"sync"

	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// ResolutionCache remembers include targets already proven resolvable during
// one scan. Entries are never evicted.
type ResolutionCache interface {
	// MarkResolved records that target resolved when included from scope.
	MarkResolved(scope m.Path, target m.IncludeTarget)
	// IsKnownResolved reports whether target was previously marked.
	IsKnownResolved(scope m.Path, target m.IncludeTarget) bool
	// Len returns the number of entries.
	Len() int
}

type cacheKey struct {
	scope  m.Path
	target m.IncludeTarget
}

type resolutionCache struct {
	mu      sync.RWMutex
	scoped  bool
	entries map[cacheKey]struct{}
}

// NewResolutionCache returns a cache keyed by the include target alone: a
// header resolved from any directory counts as resolved everywhere. This can
// hide a missing header in one directory when a same-named header resolves
// from another.
func NewResolutionCache() ResolutionCache {
	return &resolutionCache{entries: make(map[cacheKey]struct{})}
}

// NewScopedResolutionCache returns a cache keyed by (including directory,
// target). The resolver's answer depends only on that pair, so a hit never
// masks a missing header.
func NewScopedResolutionCache() ResolutionCache {
	return &resolutionCache{scoped: true, entries: make(map[cacheKey]struct{})}
}

func (c *resolutionCache) key(scope m.Path, target m.IncludeTarget) cacheKey {
	if !c.scoped {
		scope = ""
	}

	return cacheKey{scope: scope, target: target}
}

func (c *resolutionCache) MarkResolved(scope m.Path, target m.IncludeTarget) {
	k := c.key(scope, target)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[k] = struct{}{}
}

func (c *resolutionCache) IsKnownResolved(scope m.Path, target m.IncludeTarget) bool {
	k := c.key(scope, target)

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[k]

	return ok
}

func (c *resolutionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
