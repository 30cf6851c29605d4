// Package jsonc parses JSON that carries comments and trailing commas,
// as commonly found in hand-edited configuration files.
//
// The package is a thin delegation layer: input is standardized to plain
// JSON by github.com/tailscale/hujson, then handed to encoding/json. Both
// line (//) and block (/* */) comments are accepted, as are trailing
// commas in objects and arrays.
package jsonc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Standardize returns data converted to standard JSON, with comments and
// trailing commas removed. Whitespace is preserved so byte offsets in
// downstream errors still line up with the original input.
func Standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("jsonc: %w", err)
	}
	return std, nil
}

// Unmarshal parses JSON-with-comments data into v, following the
// encoding/json unmarshalling rules.
func Unmarshal(data []byte, v any) error {
	std, err := Standardize(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(std, v)
}

// Parse parses JSON-with-comments data into the generic representation
// used by encoding/json (map[string]any, []any, string, float64, bool, nil).
func Parse(data []byte) (any, error) {
	var v any
	if err := Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Valid reports whether data is well-formed JSON-with-comments.
func Valid(data []byte) bool {
	std, err := hujson.Standardize(data)
	if err != nil {
		return false
	}
	return json.Valid(std)
}

// Load reads the file at path and unmarshals its JSON-with-comments
// contents into v.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("jsonc: read %s: %w", path, err)
	}
	if err := Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w (file %s)", err, path)
	}
	return nil
}
