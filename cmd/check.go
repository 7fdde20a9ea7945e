package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

const checkLongDescription = `Scan a source tree (default: check.root, ".") and report every #include
that cannot be resolved.

A header is found when it exists next to the including file or under one of
the -I search paths, tried in the order given. Resolved targets are cached for
the rest of the scan regardless of the including directory; pass
--strict-cache to key the cache by directory as well.

Exit status is 0 when every include resolves, 1 when headers are missing and
2 on any other error.`

var checkSearchPaths []string
var checkExtensions []string
var checkStrictCache bool
var checkParallel int
var checkRequireSearchPath bool
var checkNoSave bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Report unresolved #include directives",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				ScanArgs: domain.ScanArgs{
					Root:              pathArg(args, checkRootKey),
					SearchPath:        toPaths(viper.GetStringSlice(checkSearchPathsKey)),
					Extensions:        viper.GetStringSlice(checkExtensionsKey),
					Exclude:           viper.GetStringSlice(excludeConfigKey),
					StrictCache:       viper.GetBool(checkStrictCacheKey),
					RequireSearchPath: viper.GetBool(checkRequireSPKey),
					Threads:           viper.GetInt(checkParallelKey),
				},
				Reports: m.Path(viper.GetString(outputFlagName)),
				Save:    !viper.GetBool(checkNoSaveKey),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&checkSearchPaths, includeFlagName, "I", nil, "add a header search path (can be repeated, searched in order)")
	bindFlagToConfig(cmd.Flags().Lookup(includeFlagName), checkSearchPathsKey)

	cmd.Flags().StringSliceVar(&checkExtensions, extFlagName, domain.DefaultExtensions, "file extensions to scan")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), checkExtensionsKey)

	cmd.Flags().BoolVar(&checkStrictCache, strictCacheFlagName, false, "cache resolved headers per including directory")
	bindFlagToConfig(cmd.Flags().Lookup(strictCacheFlagName), checkStrictCacheKey)

	cmd.Flags().IntVarP(&checkParallel, parallelFlagName, "p", defaultCheckThreads, "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), checkParallelKey)

	cmd.Flags().BoolVar(&checkRequireSearchPath, requireSPFlagName, false, "fail when no search path is configured")
	bindFlagToConfig(cmd.Flags().Lookup(requireSPFlagName), checkRequireSPKey)

	cmd.Flags().BoolVar(&checkNoSave, noSaveFlagName, false, "do not save the report to the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(noSaveFlagName), checkNoSaveKey)
}
