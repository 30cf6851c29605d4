package main

import (
	"time"

	"github.com/dannycreations/Vegapunk-sub001/internal/fsops"
	"github.com/spf13/cobra"
)

// copyCmd performs a one-shot recursive copy without a manifest.
var copyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Recursively copy a file or directory",
	Long: `Recursively copy a file or directory.

Parent directories of DST are created as needed. Symlinks are copied
as links, not followed.

Example:
  vegapunk copy assets dist/assets
  vegapunk copy LICENSE dist/LICENSE`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	src, dst := args[0], args[1]
	start := time.Now()

	if err := fsops.Copy(src, dst); err != nil {
		return err
	}

	logger.Info("copy completed",
		"src", src,
		"dst", dst,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
