// Package config implements the config command group.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/repolens/repolens/internal/config"
)

// Flag variables for the config command group.
var (
	initPath  string
	initForce bool
)

// ConfigCmd groups configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage repolens configuration",
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "",
		"Config file path (default ~/.config/repolens/config.yaml)")
	initCmd.Flags().BoolVar(&initForce, "force", false,
		"Overwrite an existing config file")

	ConfigCmd.AddCommand(initCmd)
	ConfigCmd.AddCommand(showCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	path := initPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !initForce {
		if _, err := os.Stat(config.ExpandHome(path)); err == nil {
			return fmt.Errorf("config file already exists at %s; use --force to overwrite",
				config.ExpandHome(path))
		}
	}

	if err := config.Write(config.Default(), path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote default config to %s\n", config.ExpandHome(path))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	data, err := yaml.Marshal(config.Get())
	if err != nil {
		return fmt.Errorf("failed to marshal config; %w", err)
	}

	if file := config.ConfigFilePath(); file != "" {
		fmt.Fprintf(out, "# loaded from %s\n", file)
	} else {
		fmt.Fprintln(out, "# built-in defaults (no config file found)")
	}
	fmt.Fprint(out, string(data))

	return nil
}
