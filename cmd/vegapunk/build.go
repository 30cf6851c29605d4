package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/dannycreations/Vegapunk-sub001/config"
	"github.com/dannycreations/Vegapunk-sub001/internal/fsops"
	"github.com/spf13/cobra"
)

// buildCmd runs a build manifest: clean paths first, then copy steps in order.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run a build manifest",
	Long: `Run a build manifest.

The manifest is a YAML file listing paths to clean and copy steps to
execute in order. Paths support environment variable substitution with
${VAR} and ${VAR:-default}.

The command stops at the first failing step.

Example:
  vegapunk build -c build.yaml
  APP_ENV=prod vegapunk build --manifest build.yaml`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("manifest", "c", "", "path to manifest file (required)")
	_ = buildCmd.MarkFlagRequired("manifest")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	manifestFile, _ := cmd.Flags().GetString("manifest")
	m, err := config.Load(manifestFile)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	logger.Info("manifest loaded",
		"clean", len(m.Clean),
		"steps", len(m.Steps),
	)

	// cancel on SIGINT/SIGTERM; the timeout, if set, bounds the whole run
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if m.Timeout.Duration() > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout.Duration())
		defer cancel()
	}

	start := time.Now()

	if len(m.Clean) > 0 {
		logger.Info("cleaning", "paths", m.Clean)
		if err := fsops.Clean(m.Clean...); err != nil {
			return err
		}
	}

	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build aborted before step %d (%s): %w", i, step.Name, err)
		}

		stepStart := time.Now()
		if err := fsops.Copy(step.Src, step.Dst); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Name, err)
		}
		logger.Info("step completed",
			"step", step.Name,
			"src", step.Src,
			"dst", step.Dst,
			"elapsed_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Info("build completed", "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}
