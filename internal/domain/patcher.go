package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/pmezard/go-difflib/difflib"
	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// PatchArgs configures the export macro rewrite.
type PatchArgs struct {
	Root       m.Path
	Macro      string
	Extensions []string
	Exclude    []string
	// DryRun computes diffs without writing files.
	DryRun bool
}

// Patcher rewrites single-argument macro statements `NAME(X);` into the
// two-argument form `NAME(X, X);`.
type Patcher interface {
	Patch(ctx context.Context, args PatchArgs) ([]m.FilePatch, error)
}

type patcher struct {
	adapter.SourceFSAdapter
}

// NewPatcher creates a Patcher backed by fsAdapter.
func NewPatcher(fsAdapter adapter.SourceFSAdapter) Patcher {
	return &patcher{SourceFSAdapter: fsAdapter}
}

func (p *patcher) Patch(ctx context.Context, args PatchArgs) ([]m.FilePatch, error) {
	if err := validateMacro(args.Macro); err != nil {
		return nil, err
	}

	files, err := walkSources(ctx, p.SourceFSAdapter, args.Root, args.Extensions, args.Exclude)
	if err != nil {
		return nil, err
	}

	pattern := singleArgPattern(args.Macro)
	patched := make([]m.FilePatch, 0)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return patched, err
		}

		content, err := p.ReadFile(file.FullPath)
		if err != nil {
			slog.Debug("skipping unreadable file", "path", file.FullPath, "error", err)
			continue
		}

		updated, patches := rewriteCalls(content, file, args.Macro, pattern)
		if len(patches) == 0 {
			continue
		}

		fp := m.FilePatch{File: file, Patches: patches}

		if args.DryRun {
			fp.Diff = unifiedDiff(file.ShortPath, content, updated)
		} else if err := p.writeBack(file, updated); err != nil {
			return patched, err
		}

		slog.Info("patched file", "path", file.ShortPath, "patches", len(patches), "dryRun", args.DryRun)

		patched = append(patched, fp)
	}

	return patched, nil
}

func (p *patcher) writeBack(file m.File, content []byte) error {
	info, err := p.FileInfo(file.FullPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", file.FullPath, err)
	}

	if err := p.WriteFile(file.FullPath, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", file.FullPath, err)
	}

	return nil
}

// rewriteCalls patches the first single-argument call on each line. Only
// the matched statement is replaced; indentation and trailing text are kept.
func rewriteCalls(content []byte, file m.File, macro string, pattern *regexp.Regexp) ([]byte, []m.Patch) {
	lines := bytes.SplitAfter(content, []byte("\n"))

	var (
		out     bytes.Buffer
		patches []m.Patch
	)

	out.Grow(len(content))

	for i, line := range lines {
		loc := pattern.FindSubmatchIndex(line)
		if loc == nil {
			out.Write(line)
			continue
		}

		constant := string(line[loc[2]:loc[3]])
		replacement := fmt.Sprintf("%s(%s, %s);", macro, constant, constant)

		var patchedLine []byte
		patchedLine = append(patchedLine, line[:loc[0]]...)
		patchedLine = append(patchedLine, replacement...)
		patchedLine = append(patchedLine, line[loc[1]:]...)

		out.Write(patchedLine)

		patches = append(patches, m.Patch{
			File:     file,
			Line:     i + 1,
			Constant: constant,
			Before:   string(bytes.TrimRight(line, "\r\n")),
			After:    string(bytes.TrimRight(patchedLine, "\r\n")),
		})
	}

	return out.Bytes(), patches
}

func unifiedDiff(name m.Path, before, after []byte) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + string(name),
		ToFile:   "b/" + string(name),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		slog.Warn("failed to render diff", "path", name, "error", err)
		return ""
	}

	return text
}
