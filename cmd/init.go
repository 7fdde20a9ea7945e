package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write hdrcheck.yaml with the current settings",
		Long: `Write hdrcheck.yaml to the working directory with every setting hdrcheck
reads, filled with the values in effect now (defaults, .env and HDRCHECK_*
variables included):

  check.search_paths         -I directories tried after the including file's folder
  check.extensions           suffixes scanned for #include directives
  check.strict_cache         only reuse a cached header when the include text matches
  check.parallel             worker count for the scan
  check.require_search_path  fail when no search path is given
  calls.macro                macro listed by find-calls
  patch.root, patch.macro    tree and macro rewritten by patch
  copy.master, copy.target   lv_conf.h source and destination tree for copy-config
  paths.exclude              regexes of root-relative paths skipped by every command
  output                     directory for saved check reports
  log.*                      log file, level and rotation

The file is left alone if it already exists.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote %s (config version %d)\n", targetPath, viper.GetInt(configVersionKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
