package domain

import (
	"context"
	"fmt"
	"log/slog"

	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	"hdrcheck.dev/pkg/hdrcheck/internal/controller"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// CheckArgs contains the arguments for an include check.
type CheckArgs struct {
	ScanArgs
	// Reports is the directory the report is saved to.
	Reports m.Path
	Save    bool
}

// ViewArgs contains the arguments for redisplaying a saved report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point for every hdrcheck command.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
	FindCalls(ctx context.Context, args FindCallsArgs) error
	Patch(ctx context.Context, args PatchArgs) error
	CopyConfig(ctx context.Context, args CopyConfigArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Scanner
	CallFinder
	Patcher
	ConfigCopier
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	scanner Scanner,
	callFinder CallFinder,
	patcher Patcher,
	configCopier ConfigCopier,
) Workflow {
	return &workflow{
		ReportStore:  reportStore,
		UI:           ui,
		Scanner:      scanner,
		CallFinder:   callFinder,
		Patcher:      patcher,
		ConfigCopier: configCopier,
	}
}

// Check scans the tree, shows the report and saves it. It returns
// ErrMissingHeaders when the report is not empty so callers can pick an
// exit status.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayScanStarted(ctx, args.Root, args.SearchPath, args.Threads)

	report, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		slog.Error("Scan failed", "root", args.Root, "error", err)
		return fmt.Errorf("scan: %w", err)
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Save {
		if err := w.SaveReport(args.Reports, report); err != nil {
			slog.Error("Failed to save report", "dir", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d unresolved include(s)", ErrMissingHeaders, len(report.Missing))
	}

	return nil
}

// View shows the last saved report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	report, err := w.LoadReport(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplayReport(ctx, report)
}

// FindCalls lists invocations of a macro.
func (w *workflow) FindCalls(ctx context.Context, args FindCallsArgs) error {
	if err := w.Start(ctx, controller.WithMaintenanceMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	calls, err := w.CallFinder.FindCalls(ctx, args)
	if err != nil {
		return fmt.Errorf("find calls: %w", err)
	}

	return w.DisplayMacroCalls(ctx, args.Macro, calls)
}

// Patch rewrites single-argument macro calls.
func (w *workflow) Patch(ctx context.Context, args PatchArgs) error {
	if err := w.Start(ctx, controller.WithMaintenanceMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	patches, err := w.Patcher.Patch(ctx, args)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	return w.DisplayPatches(ctx, patches, args.DryRun)
}

// CopyConfig distributes the master config header.
func (w *workflow) CopyConfig(ctx context.Context, args CopyConfigArgs) error {
	if err := w.Start(ctx, controller.WithMaintenanceMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	copies, err := w.ConfigCopier.CopyConfig(ctx, args)
	if err != nil {
		return fmt.Errorf("copy config: %w", err)
	}

	return w.DisplayConfigCopies(ctx, copies, args.DryRun)
}
