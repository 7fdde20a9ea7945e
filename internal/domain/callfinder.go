package domain

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// FindCallsArgs configures a macro call audit.
type FindCallsArgs struct {
	Root       m.Path
	Macro      string
	Extensions []string
	Exclude    []string
}

// CallFinder lists every line that invokes a macro. It never modifies files.
type CallFinder interface {
	FindCalls(ctx context.Context, args FindCallsArgs) ([]m.MacroCall, error)
}

type callFinder struct {
	adapter.SourceFSAdapter
}

// NewCallFinder creates a CallFinder backed by fsAdapter.
func NewCallFinder(fsAdapter adapter.SourceFSAdapter) CallFinder {
	return &callFinder{SourceFSAdapter: fsAdapter}
}

func (cf *callFinder) FindCalls(ctx context.Context, args FindCallsArgs) ([]m.MacroCall, error) {
	if err := validateMacro(args.Macro); err != nil {
		return nil, err
	}

	files, err := walkSources(ctx, cf.SourceFSAdapter, args.Root, args.Extensions, args.Exclude)
	if err != nil {
		return nil, err
	}

	call := callPattern(args.Macro)
	define := definePattern(args.Macro)
	calls := make([]m.MacroCall, 0)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := cf.ReadFile(file.FullPath)
		if err != nil {
			slog.Debug("skipping unreadable file", "path", file.FullPath, "error", err)
			continue
		}

		sc := bufio.NewScanner(bytes.NewReader(content))
		sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)

		for lineno := 1; sc.Scan(); lineno++ {
			line := sc.Text()
			if !call.MatchString(line) || define.MatchString(line) {
				continue
			}

			calls = append(calls, m.MacroCall{
				File: file,
				Line: lineno,
				Text: strings.TrimSpace(line),
			})
		}
	}

	slog.Info("macro calls found", "macro", args.Macro, "files", len(files), "calls", len(calls))

	return calls, nil
}

// walkSources validates root and returns the files matching extensions in walk order.
// It is shared by the maintenance tools; the include scanner keeps its own
// walk so it can report statistics.
func walkSources(ctx context.Context, fsAdapter adapter.SourceFSAdapter, root m.Path, extensions, exclude []string) ([]m.File, error) {
	if root == "" || !fsAdapter.IsDir(root) {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidConfiguration, root)
	}

	exts := m.NewExtensions(extensions...)
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: no file extensions to scan", ErrInvalidConfiguration)
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var files []m.File

	err = fsAdapter.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || !exts.Match(m.Path(path)) {
			return nil
		}

		file := m.NewFile(root, m.Path(path))
		if excluded(file.ShortPath, patterns) {
			return nil
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}
