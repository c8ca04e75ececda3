// Package cli implements the command-line interface for gocube-engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine/internal/config"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// cfg is loaded before every command runs.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-engine",
	Short: "Animated Rubik's cube engine",
	Long: `gocube-engine - An animated 3x3x3 cube engine for the terminal.

Turn the cube from the keyboard, mirror a GoCube smart cube over Bluetooth,
scramble it and let an external two-phase solver solve it.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.gocube_engine/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_engine/engine.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	cfg = c
	return nil
}
