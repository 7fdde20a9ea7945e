package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	cmd, out, _ := newSplitTestCommand()
	return cmd, out
}

// newSplitTestCommand captures stdout and stderr separately.
func newSplitTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func missingReport() m.Report {
	return m.Report{
		Root: "/src",
		Missing: []m.ResolutionRecord{
			{File: m.File{FullPath: "/src/a/x.h", ShortPath: "a/x.h"}, Target: "missing.h", Status: m.Missing},
			{File: m.File{FullPath: "/src/b/z.c", ShortPath: "b/z.c"}, Target: "lvgl/lvgl.h", Status: m.Missing},
		},
		Stats: m.ScanStats{Files: 7, Includes: 12, CacheHits: 3, Resolved: 7, Missing: 2},
	}
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	tests := []struct {
		name          string
		mode          StartOption
		report        m.Report
		wantStdout    string
		wantStderr    []string
		wantNotStderr []string
	}{
		{
			name:          "missing headers",
			mode:          WithCheckMode(),
			report:        missingReport(),
			wantStdout:    missingHeadline + "\n  a/x.h → missing.h\n  b/z.c → lvgl/lvgl.h\n",
			wantStderr:    []string{"CACHE HITS", "12"},
			wantNotStderr: []string{"Saved report"},
		},
		{
			name:       "all resolved",
			mode:       WithCheckMode(),
			report:     m.Report{Root: "/src", Missing: []m.ResolutionRecord{}, Stats: m.ScanStats{Files: 1}},
			wantStdout: successHeadline + "\n",
			wantStderr: []string{"FILES"},
		},
		{
			name:       "view mode names the root",
			mode:       WithViewMode(),
			report:     missingReport(),
			wantStdout: missingHeadline + "\n  a/x.h → missing.h\n  b/z.c → lvgl/lvgl.h\n",
			wantStderr: []string{"Saved report for /src", "MISSING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out, errOut := newSplitTestCommand()

			ui := NewSimpleUI(cmd)
			if err := ui.Start(context.Background(), tt.mode); err != nil {
				t.Fatalf("Start() error = %v", err)
			}

			if err := ui.DisplayReport(context.Background(), tt.report); err != nil {
				t.Fatalf("DisplayReport() error = %v", err)
			}

			if got := out.String(); got != tt.wantStdout {
				t.Errorf("DisplayReport() stdout = %q, want %q", got, tt.wantStdout)
			}

			got := errOut.String()
			for _, want := range tt.wantStderr {
				if !strings.Contains(got, want) {
					t.Errorf("DisplayReport() stderr missing %q, got:\n%s", want, got)
				}
			}

			for _, unwanted := range tt.wantNotStderr {
				if strings.Contains(got, unwanted) {
					t.Errorf("DisplayReport() stderr should not contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestSimpleUI_MissingLinesKeepOrder(t *testing.T) {
	cmd, buf := newTestCommand()

	if err := NewSimpleUI(cmd).DisplayReport(context.Background(), missingReport()); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	got := buf.String()
	first := strings.Index(got, "a/x.h → missing.h")
	second := strings.Index(got, "b/z.c → lvgl/lvgl.h")

	if first < 0 || second < 0 || first > second {
		t.Errorf("missing includes out of order:\n%s", got)
	}
}

func TestSimpleUI_DisplayScanStarted(t *testing.T) {
	cmd, out, errOut := newSplitTestCommand()

	NewSimpleUI(cmd).DisplayScanStarted(context.Background(), "/src", []m.Path{"/inc", "/lib"}, 4)

	want := "Scanning /src (2 search path(s), 4 worker(s))\n"
	if got := errOut.String(); got != want {
		t.Errorf("DisplayScanStarted() stderr = %q, want %q", got, want)
	}

	if out.Len() != 0 {
		t.Errorf("DisplayScanStarted() wrote to stdout: %q", out.String())
	}
}

func TestSimpleUI_DisplayMacroCalls(t *testing.T) {
	cmd, buf := newTestCommand()

	calls := []m.MacroCall{
		{File: m.File{ShortPath: "src/btn.h"}, Line: 42, Text: "LV_EXPORT_CONST_INT(LV_BTN_SIZE);"},
	}

	if err := NewSimpleUI(cmd).DisplayMacroCalls(context.Background(), "LV_EXPORT_CONST_INT", calls); err != nil {
		t.Fatalf("DisplayMacroCalls() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"src/btn.h:42: LV_EXPORT_CONST_INT(LV_BTN_SIZE);\n", "1 call(s) to LV_EXPORT_CONST_INT"} {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayMacroCalls() output missing %q, got:\n%s", want, got)
		}
	}
}

func TestSimpleUI_DisplayPatches(t *testing.T) {
	patches := []m.FilePatch{
		{
			File: m.File{ShortPath: "src/btn.h"},
			Patches: []m.Patch{
				{Constant: "LV_BTN_SIZE"},
				{Constant: "LV_BTN_PAD"},
			},
			Diff: "--- a/src/btn.h\n+++ b/src/btn.h\n",
		},
	}

	tests := []struct {
		name         string
		dryRun       bool
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "write",
			wantContains: []string{"  → Patched: src/btn.h :: LV_BTN_SIZE\n", "  → Patched: src/btn.h :: LV_BTN_PAD\n", "✅ Done. 2 call(s) in 1 file(s)."},
			wantMissing:  []string{"+++ b/src/btn.h"},
		},
		{
			name:         "dry run",
			dryRun:       true,
			wantContains: []string{"  → Would patch: src/btn.h :: LV_BTN_SIZE\n", "+++ b/src/btn.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			if err := NewSimpleUI(cmd).DisplayPatches(context.Background(), patches, tt.dryRun); err != nil {
				t.Fatalf("DisplayPatches() error = %v", err)
			}

			got := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("DisplayPatches() output missing %q, got:\n%s", want, got)
				}
			}

			for _, unwanted := range tt.wantMissing {
				if strings.Contains(got, unwanted) {
					t.Errorf("DisplayPatches() output should not contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayConfigCopies(t *testing.T) {
	copies := []m.ConfigCopy{{Dir: "lib/lvgl/src/core"}, {Dir: "lib/lvgl/src/misc"}}

	cmd, buf := newTestCommand()
	if err := NewSimpleUI(cmd).DisplayConfigCopies(context.Background(), copies, false); err != nil {
		t.Fatalf("DisplayConfigCopies() error = %v", err)
	}

	want := "→ Copied config to:\n   lib/lvgl/src/core\n   lib/lvgl/src/misc\n"
	if got := buf.String(); got != want {
		t.Errorf("DisplayConfigCopies() = %q, want %q", got, want)
	}

	cmd, buf = newTestCommand()
	if err := NewSimpleUI(cmd).DisplayConfigCopies(context.Background(), nil, true); err != nil {
		t.Fatalf("DisplayConfigCopies() error = %v", err)
	}

	if got := buf.String(); !strings.HasPrefix(got, "→ Would copy config to:") {
		t.Errorf("DisplayConfigCopies() dry run = %q", got)
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCommand()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	if err := ui.Start(ctx); err == nil {
		t.Errorf("Start() with cancelled context should fail")
	}

	if err := ui.DisplayReport(ctx, missingReport()); err == nil {
		t.Errorf("DisplayReport() with cancelled context should fail")
	}

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("NewUI(tty=false) should return *SimpleUI")
	}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Errorf("NewUI(tty=true) should return *TUI")
	}

	if IsTTY(nil) {
		t.Errorf("IsTTY(nil) should be false")
	}
}
