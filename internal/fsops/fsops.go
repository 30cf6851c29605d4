// Package fsops provides the filesystem primitives behind the vegapunk
// build and copy commands.
//
// This package is internal to the CLI. Operations are deliberately thin
// wrappers: copying delegates to github.com/otiai10/copy, and removal is
// guarded against obviously destructive targets.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cp "github.com/otiai10/copy"
)

// Copy recursively copies src to dst, creating parent directories of dst
// as needed. Files keep their permissions; symlinks are copied as links.
func Copy(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if parent := filepath.Dir(dst); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("copy %s: %w", src, err)
		}
	}

	opts := cp.Options{
		OnSymlink: func(string) cp.SymlinkAction { return cp.Shallow },
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	return nil
}

// Clean removes each path and anything beneath it. Missing paths are not
// an error. Empty, absolute, and escaping paths are rejected rather than
// removed.
func Clean(paths ...string) error {
	for _, p := range paths {
		if err := guard(p); err != nil {
			return err
		}
		if err := os.RemoveAll(p); err != nil {
			return fmt.Errorf("clean %s: %w", p, err)
		}
	}
	return nil
}

// guard rejects removal targets outside the working directory.
func guard(p string) error {
	if p == "" {
		return fmt.Errorf("clean: path must not be empty")
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("clean: path %q must be relative", p)
	}
	clean := filepath.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("clean: path %q escapes the working directory", p)
	}
	return nil
}
