// Root command for the taskboard CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/paths"
	"github.com/mesh-intelligence/taskboard/pkg/taskboard"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagPort      int
)

// appConfig is the resolved runtime configuration. Set by
// PersistentPreRunE so all subcommands can use it.
var appConfig types.Config

var rootCmd = &cobra.Command{
	Use:     "taskboard",
	Short:   "Taskboard is a task management server and board",
	Version: taskboard.Version,
	Long: `Taskboard manages a list of tasks in a local SQLite database. It serves
a REST API for clients and ships an interactive terminal board that can run
against the local database or a remote server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		appConfig, err = buildConfig(cfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.taskboard-db)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "server port (default: 3001)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(seedCmd)
}
