// Package cmd wires up the repolens command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/cmd/chunks"
	configcmd "github.com/repolens/repolens/cmd/config"
	"github.com/repolens/repolens/cmd/inspect"
	versioncmd "github.com/repolens/repolens/cmd/version"
	"github.com/repolens/repolens/internal/config"
	"github.com/repolens/repolens/internal/logging"
)

// logManager is created in bootstrap mode and upgraded after config loads.
var logManager *logging.Manager

var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Understand any codebase in minutes",
	Long: "Repolens analyzes a repository with an LLM and produces a layered summary.\n\n" +
		"It catalogs the readable text files of a source tree, partitions them into " +
		"analysis-sized chunks that keep related files together, analyzes each chunk, " +
		"and synthesizes the results into one report, optionally with an architecture diagram.",
	PersistentPreRunE: runInitialize,
}

func init() {
	logManager = logging.NewManager()

	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(chunks.ChunksCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(versioncmd.VersionCmd)
}

func runInitialize(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()
	slog.SetDefault(logger)

	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		level = logging.DefaultLevel
		if cfg.LogLevel != "" {
			logger.Warn("invalid log level configured, using default",
				"configured", cfg.LogLevel, "default", "info")
		}
	}

	if err := logManager.Upgrade(config.ExpandHome(cfg.LogFile), level); err != nil {
		// Continue in bootstrap mode rather than failing the command.
		logger.Warn("failed to enable file logging, continuing with stderr only", "error", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	defer func() { _ = logManager.Close() }()

	err := rootCmd.Execute()
	if err != nil {
		sub, _, _ := rootCmd.Find(os.Args[1:])
		if sub == nil {
			sub = rootCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !sub.SilenceUsage {
			fmt.Printf("\n")
			sub.SetOut(os.Stdout)
			_ = sub.Usage()
		}

		return err
	}

	return nil
}
