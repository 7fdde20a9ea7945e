package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// DefaultExtensions lists the source and header extensions scanned by default.
var DefaultExtensions = []string{".c", ".cpp", ".h", ".hpp"}

// ScanArgs configures one scan of a source tree.
type ScanArgs struct {
	Root       m.Path
	SearchPath []m.Path
	Extensions []string
	// Exclude holds regular expressions matched against root-relative,
	// slash-separated file paths.
	Exclude []string
	// StrictCache keys the resolution cache by including directory.
	StrictCache bool
	// RequireSearchPath rejects an empty SearchPath.
	RequireSearchPath bool
	Threads           int
}

// Scanner walks a source tree and reports includes that cannot be resolved.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (m.Report, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	Extractor
}

// NewScanner creates a Scanner backed by the given filesystem adapter and extractor.
func NewScanner(fsAdapter adapter.SourceFSAdapter, extractor Extractor) Scanner {
	return &scanner{
		SourceFSAdapter: fsAdapter,
		Extractor:       extractor,
	}
}

// scanConfig is the validated form of ScanArgs.
type scanConfig struct {
	root       m.Path
	extensions m.Extensions
	exclude    []*regexp.Regexp
	threads    int
}

// Scan validates args, walks the tree and returns the report. Every file is
// visited; unreadable files are skipped. Only configuration problems and
// context cancellation produce an error.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (m.Report, error) {
	cfg, err := s.validate(args)
	if err != nil {
		return m.Report{}, err
	}

	started := time.Now()

	files, err := s.collectFiles(ctx, cfg)
	if err != nil {
		return m.Report{}, err
	}

	slog.Debug("collected files", "root", cfg.root, "count", len(files), "threads", cfg.threads)

	state := newScanState(args.Root, NewResolver(s.SourceFSAdapter, args.SearchPath), args.StrictCache)

	if cfg.threads <= 1 {
		err = s.scanSerial(ctx, files, state)
	} else {
		err = s.scanParallel(ctx, files, state, cfg.threads, args.StrictCache)
	}

	if err != nil {
		return m.Report{}, err
	}

	slog.Info("scan finished",
		"root", cfg.root,
		"files", state.report.Stats.Files,
		"skipped", state.report.Stats.Skipped,
		"includes", state.report.Stats.Includes,
		"cacheHits", state.report.Stats.CacheHits,
		"missing", state.report.Stats.Missing,
		"cacheEntries", state.cache.Len(),
		"elapsed", time.Since(started),
	)

	return state.report, nil
}

func (s *scanner) validate(args ScanArgs) (scanConfig, error) {
	if args.Root == "" {
		return scanConfig{}, fmt.Errorf("%w: source tree root is empty", ErrInvalidConfiguration)
	}

	info, err := s.FileInfo(args.Root)
	if err != nil {
		return scanConfig{}, fmt.Errorf("%w: source tree %s: %w", ErrInvalidConfiguration, args.Root, err)
	}

	if !info.IsDir() {
		return scanConfig{}, fmt.Errorf("%w: source tree %s is not a directory", ErrInvalidConfiguration, args.Root)
	}

	if args.RequireSearchPath && len(args.SearchPath) == 0 {
		return scanConfig{}, fmt.Errorf("%w: search path is empty", ErrInvalidConfiguration)
	}

	for _, dir := range args.SearchPath {
		if !s.IsDir(dir) {
			slog.Warn("search path entry is not a directory", "path", dir)
		}
	}

	extensions := m.NewExtensions(args.Extensions...)
	if len(extensions) == 0 {
		return scanConfig{}, fmt.Errorf("%w: no file extensions to scan", ErrInvalidConfiguration)
	}

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return scanConfig{}, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	return scanConfig{
		root:       args.Root,
		extensions: extensions,
		exclude:    exclude,
		threads:    threads,
	}, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalidConfiguration, pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func excluded(path m.Path, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}

// collectFiles returns the eligible files under the root in walk order.
func (s *scanner) collectFiles(ctx context.Context, cfg scanConfig) ([]m.File, error) {
	var files []m.File

	err := s.Walk(cfg.root, true, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || !cfg.extensions.Match(m.Path(path)) {
			return nil
		}

		file := m.NewFile(cfg.root, m.Path(path))
		if excluded(file.ShortPath, cfg.exclude) {
			slog.Debug("excluded file", "path", file.ShortPath)
			return nil
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", cfg.root, err)
	}

	return files, nil
}

func (s *scanner) scanSerial(ctx context.Context, files []m.File, state *scanState) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := s.ReadFile(file.FullPath)
		if err != nil {
			state.skip(file, err)
			continue
		}

		state.report.Stats.Files++

		for _, target := range s.Extract(content) {
			state.apply(ctx, file, target, nil)
		}
	}

	return nil
}

// lookup is one include resolved by a worker. deferred marks includes the
// worker skipped because the shared cache already knew the target; they are
// settled during the ordered merge.
type lookup struct {
	target     m.IncludeTarget
	resolution Resolution
	deferred   bool
}

type fileOutcome struct {
	readErr error
	lookups []lookup
}

// scanParallel resolves files concurrently and then replays the outcomes in
// walk order, so the report matches a serial scan exactly.
func (s *scanner) scanParallel(ctx context.Context, files []m.File, state *scanState, threads int, strict bool) error {
	shared := newCache(strict)
	outcomes := make([]fileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			outcomes[i] = s.resolveFile(groupCtx, file, state.resolver, shared)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		outcome := outcomes[i]
		if outcome.readErr != nil {
			state.skip(file, outcome.readErr)
			continue
		}

		state.report.Stats.Files++

		for _, l := range outcome.lookups {
			if l.deferred {
				state.apply(ctx, file, l.target, nil)
				continue
			}

			state.apply(ctx, file, l.target, &l.resolution)
		}
	}

	return ctx.Err()
}

func (s *scanner) resolveFile(ctx context.Context, file m.File, resolver Resolver, shared ResolutionCache) fileOutcome {
	content, err := s.ReadFile(file.FullPath)
	if err != nil {
		return fileOutcome{readErr: err}
	}

	scope := file.FullPath.Dir()
	targets := s.Extract(content)
	lookups := make([]lookup, 0, len(targets))

	for _, target := range targets {
		if shared.IsKnownResolved(scope, target) {
			lookups = append(lookups, lookup{target: target, deferred: true})
			continue
		}

		res := resolver.Resolve(ctx, target, scope)
		if res.Status == m.Resolved {
			shared.MarkResolved(scope, target)
		}

		lookups = append(lookups, lookup{target: target, resolution: res})
	}

	return fileOutcome{lookups: lookups}
}

func newCache(strict bool) ResolutionCache {
	if strict {
		return NewScopedResolutionCache()
	}

	return NewResolutionCache()
}

// scanState owns the cache and report for a single scan.
type scanState struct {
	resolver Resolver
	cache    ResolutionCache
	report   m.Report
}

func newScanState(root m.Path, resolver Resolver, strict bool) *scanState {
	return &scanState{
		resolver: resolver,
		cache:    newCache(strict),
		report: m.Report{
			Root:    root,
			Missing: []m.ResolutionRecord{},
		},
	}
}

func (st *scanState) skip(file m.File, err error) {
	slog.Debug("skipping unreadable file", "path", file.FullPath, "error", err)
	st.report.Stats.Skipped++
}

// apply settles one include. A nil res means the resolver has not been
// consulted yet for this occurrence.
func (st *scanState) apply(ctx context.Context, file m.File, target m.IncludeTarget, res *Resolution) {
	st.report.Stats.Includes++

	scope := file.FullPath.Dir()
	if st.cache.IsKnownResolved(scope, target) {
		st.report.Stats.CacheHits++
		return
	}

	if res == nil {
		resolved := st.resolver.Resolve(ctx, target, scope)
		res = &resolved
	}

	if res.Status == m.Resolved {
		st.cache.MarkResolved(scope, target)
		st.report.Stats.Resolved++
		slog.Debug("include resolved", "file", file.ShortPath, "target", target, "location", res.Location)

		return
	}

	st.report.Stats.Missing++
	st.report.Missing = append(st.report.Missing, m.ResolutionRecord{
		File:   file,
		Target: target,
		Status: m.Missing,
	})
}
