package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// pagerChrome is the number of lines taken by the pager header and footer.
const pagerChrome = 4

// TUI implements UI with styled output and, for saved reports viewed from a
// terminal, a Bubble Tea pager. Check runs never page: they print every
// missing include and return.
type TUI struct {
	*SimpleUI

	// height returns the terminal height in rows, 0 when unknown.
	height func() int
	// interactive reports whether keyboard input can drive the pager.
	interactive func() bool
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	t := &TUI{SimpleUI: NewSimpleUI(cmd)}
	t.height = t.terminalHeight
	t.interactive = t.stdinIsTerminal

	return t
}

// DisplayReport prints the full report. In view mode a report taller than
// the terminal is paged first; the list is printed again once the pager
// closes so it stays in the scrollback.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.shouldPage(report) {
		program := tea.NewProgram(
			newReportModel(report),
			tea.WithContext(ctx),
			tea.WithInput(t.cmd.InOrStdin()),
			tea.WithOutput(t.cmd.OutOrStdout()),
			tea.WithAltScreen(),
		)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("report pager: %w", err)
		}
	}

	return t.displayStyled(report)
}

func (t *TUI) shouldPage(report m.Report) bool {
	if t.mode != ModeView || report.OK() || !t.interactive() {
		return false
	}

	height := t.height()

	return height > 0 && len(report.Missing)+pagerChrome > height
}

func (t *TUI) displayStyled(report m.Report) error {
	if t.mode == ModeView {
		t.eprintf("Saved report for %s\n", report.Root)
	}

	if report.OK() {
		t.printf("%s\n", okStyle.Render(successHeadline))
	} else {
		t.printf("%s\n", titleStyle.Render(missingHeadline))

		for _, line := range missingLines(report) {
			t.printf("%s\n", line)
		}
	}

	t.eprintf("\n%s", renderSummaryTable(report.Stats))

	return nil
}

func (t *TUI) terminalHeight() int {
	f, ok := t.cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0
	}

	_, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}

	return height
}

func (t *TUI) stdinIsTerminal() bool {
	f, ok := t.cmd.InOrStdin().(*os.File)
	return ok && IsTTY(f)
}

// reportModel is the Bubble Tea model for scrolling through missing includes.
type reportModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newReportModel(report m.Report) reportModel {
	return reportModel{
		title:   fmt.Sprintf("%s %d in %s", missingHeadline, len(report.Missing), report.Root),
		content: strings.Join(missingLines(report), "\n"),
	}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pagerChrome
		if height < 1 {
			height = 1
		}

		if !rm.ready {
			rm.viewport = viewport.New(msg.Width, height)
			rm.viewport.SetContent(rm.content)
			rm.ready = true
		} else {
			rm.viewport.Width = msg.Width
			rm.viewport.Height = height
		}

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rm.quitting = true
			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	if !rm.ready {
		return "Loading report...\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(rm.title))
	b.WriteString("\n\n")
	b.WriteString(rm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("↑/↓ pgup/pgdn scroll • q quit • %3.f%%", rm.viewport.ScrollPercent()*100)))

	return b.String()
}
