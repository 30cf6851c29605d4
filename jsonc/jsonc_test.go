package jsonc

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sample = `{
	// service identity
	"name": "gateway",
	/* listen config */
	"port": 8080,
	"tags": ["edge", "public",], // trailing comma is fine
}`

func TestUnmarshal(t *testing.T) {
	var cfg struct {
		Name string   `json:"name"`
		Port int      `json:"port"`
		Tags []string `json:"tags"`
	}

	if err := Unmarshal([]byte(sample), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Name != "gateway" {
		t.Errorf("Name = %q, want %q", cfg.Name, "gateway")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if want := []string{"edge", "public"}; !reflect.DeepEqual(cfg.Tags, want) {
		t.Errorf("Tags = %v, want %v", cfg.Tags, want)
	}
}

func TestUnmarshal_PlainJSON(t *testing.T) {
	var v map[string]any
	if err := Unmarshal([]byte(`{"a": 1}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v["a"] != float64(1) {
		t.Errorf("v[a] = %v, want 1", v["a"])
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	var v any
	if err := Unmarshal([]byte(`{"unterminated": `), &v); err == nil {
		t.Error("Unmarshal() expected error for malformed input, got nil")
	}
}

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`// answer
	{"n": 42}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %T, want map[string]any", v)
	}
	if obj["n"] != float64(42) {
		t.Errorf("n = %v, want 42", obj["n"])
	}
}

func TestStandardize(t *testing.T) {
	std, err := Standardize([]byte(`{"a": 1, /* gone */ "b": 2,}`))
	if err != nil {
		t.Fatalf("Standardize() error = %v", err)
	}

	s := string(std)
	if strings.Contains(s, "/*") || strings.Contains(s, "gone") {
		t.Errorf("Standardize() output still contains comment: %s", s)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"with comments", sample, true},
		{"plain", `{"a": 1}`, true},
		{"garbage", `{{{`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid([]byte(tt.in)); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg map[string]any
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg["name"] != "gateway" {
		t.Errorf("name = %v, want gateway", cfg["name"])
	}
}

func TestLoad_Missing(t *testing.T) {
	var v any
	if err := Load(filepath.Join(t.TempDir(), "nope.json"), &v); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
