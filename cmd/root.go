package cmd

import (
	"fmt"
	"os"

	"github.com/markpoint/annotate-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "annotate-api",
	Short: "Frame-accurate media annotation service",
	Long: `Annotate API - a local annotation server for frame-accurate media review

Annotations are millisecond-precision notes attached to a media file,
stored in a local sqlite database and queryable at playback speed.

Features:
  • Point and range annotations with categories and review statuses
  • Near-constant-time "what is visible at time T" queries during playback
  • Lossless WebVTT, SRT and JSON export
  • JSON import for moving annotations between machines`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig initializes configuration before a command runs. Commands that
// never touch config (version, help) skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
