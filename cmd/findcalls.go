package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
)

var callsMacro string
var callsExtensions []string

// findCallsCmd represents the find-calls command.
var findCallsCmd = newFindCallsCmd()

func newFindCallsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-calls [root]",
		Short: "List every invocation of an export macro",
		Long: `List every line under root (default: check.root) that invokes the macro,
as path:line: text. The macro's own #define lines are skipped. Files are
never modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.FindCalls(cmd.Context(), domain.FindCallsArgs{
				Root:       pathArg(args, checkRootKey),
				Macro:      viper.GetString(callsMacroKey),
				Extensions: viper.GetStringSlice(callsExtensionsKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	cmd.Flags().StringVar(&callsMacro, macroFlagName, domain.DefaultMacro, "macro name to search for")
	bindFlagToConfig(cmd.Flags().Lookup(macroFlagName), callsMacroKey)

	cmd.Flags().StringSliceVar(&callsExtensions, extFlagName, domain.DefaultExtensions, "file extensions to search")
	bindFlagToConfig(cmd.Flags().Lookup(extFlagName), callsExtensionsKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(findCallsCmd)
}
