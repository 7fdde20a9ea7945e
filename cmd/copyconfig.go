package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

var copyMaster string
var copyTarget string
var copyExtensions []string
var copyDryRun bool

// copyConfigCmd represents the copy-config command.
var copyConfigCmd = newCopyConfigCmd()

func newCopyConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy-config [project]",
		Short: "Copy the master config header next to the sources that use it",
		Long: `Copy the master config header (default include/lv_conf_internal.h) into
every directory under the target (default lib/lvgl/src) holding a source file
that mentions the header by name. Paths are relative to the project directory
(default: the current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := m.Path(".")
			if len(args) > 0 {
				project = m.Path(args[0])
			}

			return workflow.CopyConfig(cmd.Context(), domain.CopyConfigArgs{
				Project:    project,
				Master:     m.Path(viper.GetString(copyMasterKey)),
				Target:     m.Path(viper.GetString(copyTargetKey)),
				Extensions: viper.GetStringSlice(copyExtensionsKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				DryRun:     copyDryRun,
			})
		},
	}

	cmd.Flags().StringVar(&copyMaster, masterFlagName, domain.DefaultConfigMaster, "master config header")
	bindFlagToConfig(cmd.Flags().Lookup(masterFlagName), copyMasterKey)

	cmd.Flags().StringVar(&copyTarget, targetFlagName, domain.DefaultConfigTarget, "directory tree that receives copies")
	bindFlagToConfig(cmd.Flags().Lookup(targetFlagName), copyTargetKey)

	cmd.Flags().StringSliceVar(&copyExtensions, extFlagName, domain.DefaultConfigExtensions, "file extensions inspected for references")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), copyExtensionsKey)

	cmd.Flags().BoolVar(&copyDryRun, dryRunFlagName, false, "list target directories without copying")

	return cmd
}

func init() {
	rootCmd.AddCommand(copyConfigCmd)
}
