package cli

import (
	internal "github.com/ZanzyTHEbar/treeview/treeview"
	"github.com/ZanzyTHEbar/treeview/treeview/config"
	"github.com/ZanzyTHEbar/treeview/treeview/filesystem"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the treeview command. fs is the filesystem trees
// are read from; main passes afero.NewOsFs().
func NewRootCmd(version string, fs afero.Fs) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "treeview [path]",
		Short: "Print the directory tree of a path",
		Long: `Print the contents of a directory as a tree, directories first and
names sorted case-insensitively. Without a path argument the configured
start path is used, which defaults to the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger := internal.NewLogger(cmd.ErrOrStderr(), cfg.TreeView.LogLevel)

			startPath := cfg.TreeView.StartPath
			if len(args) == 1 {
				startPath = args[0]
			}

			dfs := filesystem.New(fs, filesystem.WithLogger(logger))
			result, err := dfs.PrintTree(cmd.Context(), cmd.OutOrStdout(), startPath)
			if err != nil {
				return err
			}

			if result.SkippedCount() > 0 {
				logger.Warn().
					Int("skipped", result.SkippedCount()).
					Msg("some directories could not be read")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (default "+internal.DefaultGlobalConfigFile+")")

	return cmd
}
