// Package cmd provides the root command and CLI setup for hdrcheck.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	"hdrcheck.dev/pkg/hdrcheck/internal/controller"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// Process exit codes.
const (
	exitOK             = 0
	exitMissingHeaders = 1
	exitFailure        = 2
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for every command.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()

	// Include resolution checks the same candidate paths over and over.
	cachedAdapter, err := adapter.NewCachedSourceFSAdapter(fsAdapter, adapter.DefaultLookupCacheSize)
	cobra.CheckErr(err)

	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		domain.NewScanner(cachedAdapter, domain.NewExtractor()),
		domain.NewCallFinder(fsAdapter),
		domain.NewPatcher(fsAdapter),
		domain.NewConfigCopier(fsAdapter),
	)
}

const rootLongDescription = `hdrcheck audits C/C++ source trees for #include directives that cannot be
resolved. Each include is looked up next to the including file first and then
in every search path entry, in order. Missing headers are listed in traversal
order and the process exits with status 1 when any are found.

It also carries maintenance tools for trees that vendor LVGL: find-calls,
patch and copy-config.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "hdrcheck",
		Short:        "C/C++ include header checker",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with the persistent flags configured.
// Subcommands are added by the caller.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			defaultReportsDir,
			"output directory for check reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files whose root-relative path matches regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrMissingHeaders):
		return exitMissingHeaders
	default:
		return exitFailure
	}
}

func toPaths(values []string) []m.Path {
	paths := make([]m.Path, 0, len(values))
	for _, v := range values {
		paths = append(paths, m.Path(v))
	}

	return paths
}

// pathArg returns the first positional argument or the configured fallback.
func pathArg(args []string, configKey string) m.Path {
	if len(args) > 0 && args[0] != "" {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(configKey))
}
