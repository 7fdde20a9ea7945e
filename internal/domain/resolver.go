package domain

import (
	"context"
	"log/slog"
	"path/filepath"

	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// Resolution is the answer for one include lookup.
type Resolution struct {
	Status m.Status
	// Location is the first candidate that exists; empty when Missing.
	Location m.Path
}

// Resolver decides whether an include target can be located.
type Resolver interface {
	Resolve(ctx context.Context, target m.IncludeTarget, includingDir m.Path) Resolution
}

type resolver struct {
	adapter.SourceFSAdapter
	searchPath []m.Path
}

// NewResolver returns a Resolver that checks the including file's directory
// first and then each entry of searchPath in order.
func NewResolver(fsAdapter adapter.SourceFSAdapter, searchPath []m.Path) Resolver {
	return &resolver{
		SourceFSAdapter: fsAdapter,
		searchPath:      append([]m.Path(nil), searchPath...),
	}
}

func (r *resolver) Resolve(ctx context.Context, target m.IncludeTarget, includingDir m.Path) Resolution {
	if candidate := candidatePath(includingDir, target); r.IsFile(candidate) {
		return Resolution{Status: m.Resolved, Location: candidate}
	}

	for _, dir := range r.searchPath {
		if ctx.Err() != nil {
			break
		}

		if candidate := candidatePath(dir, target); r.IsFile(candidate) {
			return Resolution{Status: m.Resolved, Location: candidate}
		}
	}

	slog.Debug("include not found", "target", target, "dir", includingDir, "searchPath", len(r.searchPath))

	return Resolution{Status: m.Missing}
}

// candidatePath joins target onto dir and collapses "." and ".." elements.
// An absolute target ignores dir.
func candidatePath(dir m.Path, target m.IncludeTarget) m.Path {
	if filepath.IsAbs(string(target)) {
		return m.Path(filepath.Clean(string(target)))
	}

	return m.Path(filepath.Join(string(dir), string(target)))
}
