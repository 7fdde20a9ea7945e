package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

const (
	missingHeadline = "❌ Missing headers found:"
	successHeadline = "✅ All headers resolved successfully."
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	s.mode = cfg.mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayScanStarted announces the scan configuration on stderr.
func (s *SimpleUI) DisplayScanStarted(ctx context.Context, root m.Path, searchPath []m.Path, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.eprintf("Scanning %s (%d search path(s), %d worker(s))\n", root, len(searchPath), threads)
}

// DisplayReport prints the headline and every missing include to stdout.
// The summary table goes to stderr so stdout stays line-per-include.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.mode == ModeView {
		s.eprintf("Saved report for %s\n", report.Root)
	}

	s.printf("%s", renderMissing(report))
	s.eprintf("\n%s", renderSummaryTable(report.Stats))

	return nil
}

// renderMissing formats the headline and one line per missing include.
func renderMissing(report m.Report) string {
	var b bytes.Buffer

	if report.OK() {
		b.WriteString(successHeadline + "\n")
		return b.String()
	}

	b.WriteString(missingHeadline + "\n")

	for _, line := range missingLines(report) {
		b.WriteString(line + "\n")
	}

	return b.String()
}

func missingLines(report m.Report) []string {
	lines := make([]string, 0, len(report.Missing))
	for _, record := range report.Missing {
		lines = append(lines, fmt.Sprintf("  %s → %s", record.File.ShortPath, record.Target))
	}

	return lines
}

func renderSummaryTable(stats m.ScanStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Files", "Skipped", "Includes", "Cache Hits", "Resolved", "Missing"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	table.Append([]string{
		strconv.Itoa(stats.Files),
		strconv.Itoa(stats.Skipped),
		strconv.Itoa(stats.Includes),
		strconv.Itoa(stats.CacheHits),
		strconv.Itoa(stats.Resolved),
		strconv.Itoa(stats.Missing),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayMacroCalls prints grep-style `path:line: text` entries.
func (s *SimpleUI) DisplayMacroCalls(ctx context.Context, macro string, calls []m.MacroCall) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, call := range calls {
		s.printf("%s:%d: %s\n", call.File.ShortPath, call.Line, call.Text)
	}

	s.printf("\n%d call(s) to %s\n", len(calls), macro)

	return nil
}

// DisplayPatches lists every rewritten call, with diffs on dry runs.
func (s *SimpleUI) DisplayPatches(ctx context.Context, patches []m.FilePatch, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	verb := "Patched"
	if dryRun {
		verb = "Would patch"
	}

	total := 0

	for _, fp := range patches {
		for _, patch := range fp.Patches {
			s.printf("  → %s: %s :: %s\n", verb, fp.File.ShortPath, patch.Constant)
			total++
		}

		if dryRun && fp.Diff != "" {
			s.printf("%s\n", fp.Diff)
		}
	}

	s.printf("✅ Done. %d call(s) in %d file(s).\n", total, len(patches))

	return nil
}

// DisplayConfigCopies lists the directories that received the config.
func (s *SimpleUI) DisplayConfigCopies(ctx context.Context, copies []m.ConfigCopy, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dryRun {
		s.printf("→ Would copy config to:\n")
	} else {
		s.printf("→ Copied config to:\n")
	}

	for _, c := range copies {
		s.printf("   %s\n", c.Dir)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) eprintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
