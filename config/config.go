// Package config provides YAML manifest parsing for the vegapunk build
// command.
//
// A manifest describes the local build steps the CLI runs: paths to clean
// first, then copy steps executed in order.
//
// Example manifest:
//
//	clean:
//	  - dist
//
//	steps:
//	  - name: bundle assets
//	    src: assets
//	    dst: dist/assets
//	  - name: stage config
//	    src: config/${APP_ENV:-dev}.yaml
//	    dst: dist/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest is the root structure of a build manifest file.
//
// It maps directly to the YAML file structure. Use [Load] or [Parse] to
// create a Manifest from YAML.
type Manifest struct {
	// Clean lists paths removed before any step runs. Paths are relative
	// to the manifest's working directory.
	Clean []string `yaml:"clean"`

	// Steps are copy operations executed in order.
	Steps []CopyStep `yaml:"steps"`

	// Timeout bounds the total build duration.
	// Accepts duration strings like "30s", "1m", "500ms".
	// Zero means no bound.
	Timeout Duration `yaml:"timeout"`
}

// CopyStep defines a single recursive copy operation.
type CopyStep struct {
	// Name is the display name used in log output. Defaults to the
	// source path if not set.
	Name string `yaml:"name"`

	// Src is the file or directory to copy.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Src string `yaml:"src"`

	// Dst is the destination path.
	// Supports environment variable substitution.
	Dst string `yaml:"dst"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// already have an error, skip processing
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML manifest file.
//
// Environment variables in the file are expanded before validation.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML manifest data.
//
// Environment variables are expanded in clean paths and step src/dst
// values. At least one clean path or step must be present.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := m.expandAndValidate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// expandAndValidate expands environment variables and validates the manifest.
func (m *Manifest) expandAndValidate() error {
	if len(m.Clean) == 0 && len(m.Steps) == 0 {
		return fmt.Errorf("manifest is empty: at least one clean path or step is required")
	}

	if m.Timeout.Duration() < 0 {
		return fmt.Errorf("timeout cannot be negative, got %s", m.Timeout.Duration())
	}

	for i, p := range m.Clean {
		expanded, err := expandEnvVars(p)
		if err != nil {
			return fmt.Errorf("clean[%d]: %w", i, err)
		}
		if err := validatePath(expanded); err != nil {
			return fmt.Errorf("clean[%d]: %w", i, err)
		}
		m.Clean[i] = expanded
	}

	for i := range m.Steps {
		st := &m.Steps[i]

		if st.Src == "" {
			return fmt.Errorf("steps[%d]: src is required", i)
		}
		if st.Dst == "" {
			return fmt.Errorf("steps[%d]: dst is required", i)
		}

		src, err := expandEnvVars(st.Src)
		if err != nil {
			return fmt.Errorf("steps[%d] (%s): src: %w", i, st.displayName(), err)
		}
		st.Src = src

		dst, err := expandEnvVars(st.Dst)
		if err != nil {
			return fmt.Errorf("steps[%d] (%s): dst: %w", i, st.displayName(), err)
		}
		st.Dst = dst

		if err := validatePath(st.Dst); err != nil {
			return fmt.Errorf("steps[%d] (%s): dst: %w", i, st.displayName(), err)
		}

		if st.Name == "" {
			st.Name = st.Src
		}
	}

	return nil
}

// displayName returns the step name for error messages, falling back to
// the source path before defaults are applied.
func (s *CopyStep) displayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Src
}

// validatePath rejects destructive targets: empty paths, absolute paths,
// and paths escaping the working directory.
func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("path must not be empty")
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("path %q must be relative", p)
	}
	clean := filepath.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes the working directory", p)
	}
	return nil
}
