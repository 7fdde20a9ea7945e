package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// Default locations used by the config copier, relative to the project directory.
const (
	DefaultConfigMaster = "include/lv_conf_internal.h"
	DefaultConfigTarget = "lib/lvgl/src"
)

// DefaultConfigExtensions lists the files inspected for references to the config.
var DefaultConfigExtensions = []string{".c", ".h"}

// CopyConfigArgs configures a config distribution run.
type CopyConfigArgs struct {
	Project m.Path
	// Master and Target are relative to Project unless absolute.
	Master     m.Path
	Target     m.Path
	Extensions []string
	Exclude    []string
	DryRun     bool
}

// ConfigCopier copies one canonical configuration header into every
// directory whose sources mention it.
type ConfigCopier interface {
	CopyConfig(ctx context.Context, args CopyConfigArgs) ([]m.ConfigCopy, error)
}

type configCopier struct {
	adapter.SourceFSAdapter
}

// NewConfigCopier creates a ConfigCopier backed by fsAdapter.
func NewConfigCopier(fsAdapter adapter.SourceFSAdapter) ConfigCopier {
	return &configCopier{SourceFSAdapter: fsAdapter}
}

func (cc *configCopier) CopyConfig(ctx context.Context, args CopyConfigArgs) ([]m.ConfigCopy, error) {
	master := projectPath(args.Project, args.Master)
	if !cc.IsFile(master) {
		return nil, fmt.Errorf("%w: config master %s not found", ErrInvalidConfiguration, master)
	}

	target := projectPath(args.Project, args.Target)

	files, err := walkSources(ctx, cc.SourceFSAdapter, target, args.Extensions, args.Exclude)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(string(master))
	done := make(map[m.Path]bool)
	copies := make([]m.ConfigCopy, 0)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return copies, err
		}

		dir := file.FullPath.Dir()
		if done[dir] {
			continue
		}

		content, err := cc.ReadFile(file.FullPath)
		if err != nil {
			slog.Debug("skipping unreadable file", "path", file.FullPath, "error", err)
			continue
		}

		if !bytes.Contains(content, []byte(name)) {
			continue
		}

		done[dir] = true

		dst := cc.JoinPath(string(dir), name)
		if filepath.Clean(string(dst)) == filepath.Clean(string(master)) {
			continue
		}

		if !args.DryRun {
			if err := cc.CopyFile(master, dst); err != nil {
				return copies, fmt.Errorf("copy %s to %s: %w", master, dst, err)
			}
		}

		slog.Debug("config copied", "dir", dir, "trigger", file.ShortPath, "dryRun", args.DryRun)

		copies = append(copies, m.ConfigCopy{
			Dir:         dir,
			Destination: dst,
			Trigger:     file.FullPath,
		})
	}

	slog.Info("config distribution finished", "master", master, "copies", len(copies))

	return copies, nil
}

func projectPath(project, p m.Path) m.Path {
	if filepath.IsAbs(string(p)) || project == "" {
		return p
	}

	return m.Path(filepath.Join(string(project), string(p)))
}
