// Package controller renders hdrcheck results for the terminal.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeCheck StartMode = iota
	ModeView
	ModeMaintenance
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithCheckMode sets the UI to live check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithViewMode sets the UI to display a saved report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithMaintenanceMode sets the UI for the source maintenance tools.
func WithMaintenanceMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMaintenance
	}
}

// UI defines the interface for displaying check reports and tool results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayScanStarted(ctx context.Context, root m.Path, searchPath []m.Path, threads int)
	DisplayReport(ctx context.Context, report m.Report) error
	DisplayMacroCalls(ctx context.Context, macro string, calls []m.MacroCall) error
	DisplayPatches(ctx context.Context, patches []m.FilePatch, dryRun bool) error
	DisplayConfigCopies(ctx context.Context, copies []m.ConfigCopy, dryRun bool) error
}

// NewUI returns the pager-capable TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
