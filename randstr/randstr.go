// Package randstr generates random identifier strings.
//
// Generation delegates to an alphabet-based ID generator
// (github.com/matoous/go-nanoid) backed by crypto/rand, plus a UUID
// convenience built on github.com/google/uuid. The defaults produce
// URL-safe identifiers.
package randstr

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLength is the identifier length used by [New] when callers have
// no specific requirement.
const DefaultLength = 21

// Common alphabets for [FromAlphabet].
const (
	Alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Lowercase    = "abcdefghijklmnopqrstuvwxyz"
	Numeric      = "0123456789"
	HexLowercase = "0123456789abcdef"
)

// New generates a random URL-safe identifier of the given length using the
// generator's default alphabet (A-Za-z0-9_-).
func New(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("randstr: length must be positive, got %d", length)
	}
	return gonanoid.New(length)
}

// Must is like [New] but panics on error. Use for lengths known to be
// valid at compile time.
func Must(length int) string {
	s, err := New(length)
	if err != nil {
		panic("randstr: " + err.Error())
	}
	return s
}

// FromAlphabet generates a random identifier of the given length drawn
// from the supplied alphabet.
func FromAlphabet(alphabet string, length int) (string, error) {
	if alphabet == "" {
		return "", fmt.Errorf("randstr: alphabet must not be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("randstr: length must be positive, got %d", length)
	}
	return gonanoid.Generate(alphabet, length)
}

// MustFromAlphabet is like [FromAlphabet] but panics on error.
func MustFromAlphabet(alphabet string, length int) string {
	s, err := FromAlphabet(alphabet, length)
	if err != nil {
		panic("randstr: " + err.Error())
	}
	return s
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}
