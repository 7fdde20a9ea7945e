package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	domainmocks "hdrcheck.dev/pkg/hdrcheck/internal/domain/mocks"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// withMockWorkflow swaps the package workflow for a mock for the duration of a test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRoot(sub *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(nil)

	return cmd
}

func TestCheckCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRoot(newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == m.Path(defaultCheckRoot) &&
			len(args.SearchPath) == 0 &&
			assert.ObjectsAreEqual(domain.DefaultExtensions, args.Extensions) &&
			!args.StrictCache &&
			!args.RequireSearchPath &&
			args.Threads == defaultCheckThreads &&
			args.Reports == m.Path(defaultReportsDir) &&
			args.Save
	})).Return(nil)

	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRoot(newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == m.Path("firmware") &&
			assert.ObjectsAreEqual([]m.Path{"include", "lib/lvgl"}, args.SearchPath) &&
			assert.ObjectsAreEqual([]string{".c", ".h"}, args.Extensions) &&
			assert.ObjectsAreEqual([]string{"^test/"}, args.Exclude) &&
			args.StrictCache &&
			args.RequireSearchPath &&
			args.Threads == 4 &&
			args.Reports == m.Path("out") &&
			!args.Save
	})).Return(nil)

	cmd.SetArgs([]string{
		"check", "firmware",
		"-I", "include", "-I", "lib/lvgl",
		"--ext", ".c,.h",
		"--strict-cache",
		"--require-search-path",
		"-p", "4",
		"-x", "^test/",
		"-o", "out",
		"--no-save",
	})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	cmd := newTestRoot(newCheckCmd())

	missing := fmt.Errorf("%w: 2 unresolved include(s)", domain.ErrMissingHeaders)
	mockWorkflow.On("Check", mock.Anything, mock.Anything).Return(missing)

	cmd.SetArgs([]string{"check", "."})
	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrMissingHeaders)
	assert.Equal(t, exitMissingHeaders, exitCode(err))
}

func TestCheckCmd_TooManyArgs(t *testing.T) {
	withMockWorkflow(t)
	cmd := newTestRoot(newCheckCmd())

	cmd.SetArgs([]string{"check", "a", "b"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, exitFailure, exitCode(err))
}
