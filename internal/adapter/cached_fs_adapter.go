package adapter

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// DefaultLookupCacheSize bounds the number of memoized existence checks.
const DefaultLookupCacheSize = 16384

// CachedSourceFSAdapter wraps a SourceFSAdapter and memoizes IsFile lookups.
// The same candidate header path is checked from many including files in a
// large tree, so answers are kept in a bounded LRU.
//
// Cached answers are never invalidated; use it only for read-only passes.
type CachedSourceFSAdapter struct {
	SourceFSAdapter

	lookups *lru.Cache[m.Path, bool]
}

// NewCachedSourceFSAdapter wraps inner with an LRU of the given size.
// A non-positive size selects DefaultLookupCacheSize.
func NewCachedSourceFSAdapter(inner SourceFSAdapter, size int) (*CachedSourceFSAdapter, error) {
	if size <= 0 {
		size = DefaultLookupCacheSize
	}

	lookups, err := lru.New[m.Path, bool](size)
	if err != nil {
		return nil, err
	}

	return &CachedSourceFSAdapter{
		SourceFSAdapter: inner,
		lookups:         lookups,
	}, nil
}

// IsFile answers from the LRU when possible and falls back to the wrapped adapter.
func (a *CachedSourceFSAdapter) IsFile(path m.Path) bool {
	if ok, hit := a.lookups.Get(path); hit {
		return ok
	}

	ok := a.SourceFSAdapter.IsFile(path)
	if a.lookups.Add(path, ok) {
		slog.Debug("lookup cache evicted an entry", "size", a.lookups.Len())
	}

	return ok
}

// Len returns the number of memoized lookups.
func (a *CachedSourceFSAdapter) Len() int {
	return a.lookups.Len()
}
