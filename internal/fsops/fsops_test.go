package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches the working directory for the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// writeFile creates a file with parent directories for test fixtures.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCopy_File(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out", "in.txt")
	writeFile(t, src, "hello")

	if err := Copy(src, dst); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("destination content = %q, want %q", got, "hello")
	}
}

func TestCopy_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "src", "sub", "b.txt"), "b")

	if err := Copy(filepath.Join(dir, "src"), filepath.Join(dir, "dst")); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	for _, rel := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		if _, err := os.Stat(filepath.Join(dir, "dst", rel)); err != nil {
			t.Errorf("expected %s in destination: %v", rel, err)
		}
	}
}

func TestCopy_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Copy(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	if err == nil {
		t.Error("Copy() expected error for missing source, got nil")
	}
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, "dist", "bundle.js"), "x")

	if err := Clean("dist"); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dist")); !os.IsNotExist(err) {
		t.Error("expected dist to be removed")
	}
}

func TestClean_MissingIsNoop(t *testing.T) {
	chdir(t, t.TempDir())
	if err := Clean("never-existed"); err != nil {
		t.Errorf("Clean() error = %v, want nil for missing path", err)
	}
}

func TestClean_GuardedPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"absolute", "/tmp"},
		{"dot", "."},
		{"parent", ".."},
		{"escaping", "../sibling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Clean(tt.path); err == nil {
				t.Errorf("Clean(%q) expected error, got nil", tt.path)
			}
		})
	}
}
