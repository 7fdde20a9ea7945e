package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
)

var patchMacro string
var patchExtensions []string
var patchDryRun bool

// patchCmd represents the patch command.
var patchCmd = newPatchCmd()

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch [root]",
		Short: "Rewrite single-argument export macro calls",
		Long: `Rewrite every "MACRO(X);" statement under root (default: patch.root,
lib/lvgl/src) into the two-argument form "MACRO(X, X);". Only the matched
statement changes; indentation and trailing text are kept.

With --dry-run nothing is written and a unified diff is printed per file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Patch(cmd.Context(), domain.PatchArgs{
				Root:       pathArg(args, patchRootKey),
				Macro:      viper.GetString(patchMacroKey),
				Extensions: viper.GetStringSlice(patchExtensionsKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				DryRun:     patchDryRun,
			})
		},
	}

	cmd.Flags().StringVar(&patchMacro, macroFlagName, domain.DefaultMacro, "macro name to patch")
	bindFlagToConfig(cmd.Flags().Lookup(macroFlagName), patchMacroKey)

	cmd.Flags().StringSliceVar(&patchExtensions, extFlagName, domain.DefaultConfigExtensions, "file extensions to patch")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), patchExtensionsKey)

	cmd.Flags().BoolVar(&patchDryRun, dryRunFlagName, false, "print diffs instead of writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
