package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved check report",
		Long:  "View the check report saved in the reports directory by the last check run.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
