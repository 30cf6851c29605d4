// Package main is the entry point for the vegapunk CLI.
//
// The vegapunk binary bundles the module's utility packages into small
// scripting commands: manifest-driven builds, one-shot copies, waiting on
// conditions, and random identifier generation.
//
// Usage:
//
//	vegapunk build -c build.yaml      # Run a build manifest
//	vegapunk copy SRC DST             # Recursive copy
//	vegapunk wait TARGET              # Wait for a file or URL
//	vegapunk id                       # Generate a random identifier
//	vegapunk version                  # Show version info
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "vegapunk",
	Short: "A grab-bag of small local scripting utilities",
	Long: `Vegapunk is a toolkit of small local scripting utilities.

It replaces ad-hoc shell scripts for the boring parts of a project:
copying build artifacts, waiting for a file or service to show up,
and generating random identifiers.

Quick start:
  1. Create a manifest (build.yaml)
  2. Run: vegapunk build -c build.yaml

Example manifest:
  clean:
    - dist
  steps:
    - name: bundle assets
      src: assets
      dst: dist/assets`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this vegapunk binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vegapunk %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
