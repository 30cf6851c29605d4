// Package ipregex provides pre-compiled regular expressions for matching
// IPv4 and IPv6 addresses, either anywhere within text or as an exact
// whole-string match.
//
// The IPv6 pattern covers full and compressed (::) forms, IPv4-mapped
// addresses such as ::ffff:192.0.2.1, and zone identifiers such as
// fe80::1%eth0.
package ipregex

import "regexp"

// Pattern building blocks. The composed patterns are compiled once at
// package initialization.
const (
	v4Seg     = `(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	v4Pattern = v4Seg + `(?:\.` + v4Seg + `){3}`

	v6Seg  = `[0-9a-fA-F]{1,4}`
	v6Zone = `(?:%[0-9a-zA-Z.]+)?`

	v6Pattern = `(?:` +
		`(?:` + v6Seg + `:){7}(?:` + v6Seg + `|:)|` +
		`(?:` + v6Seg + `:){6}(?:` + v4Pattern + `|:` + v6Seg + `|:)|` +
		`(?:` + v6Seg + `:){5}(?::` + v4Pattern + `|(?::` + v6Seg + `){1,2}|:)|` +
		`(?:` + v6Seg + `:){4}(?:(?::` + v6Seg + `){0,1}:` + v4Pattern + `|(?::` + v6Seg + `){1,3}|:)|` +
		`(?:` + v6Seg + `:){3}(?:(?::` + v6Seg + `){0,2}:` + v4Pattern + `|(?::` + v6Seg + `){1,4}|:)|` +
		`(?:` + v6Seg + `:){2}(?:(?::` + v6Seg + `){0,3}:` + v4Pattern + `|(?::` + v6Seg + `){1,5}|:)|` +
		`(?:` + v6Seg + `:){1}(?:(?::` + v6Seg + `){0,4}:` + v4Pattern + `|(?::` + v6Seg + `){1,6}|:)|` +
		`(?::(?:(?::` + v6Seg + `){0,5}:` + v4Pattern + `|(?::` + v6Seg + `){1,7}|:))` +
		`)` + v6Zone
)

var (
	// V4 matches an IPv4 address anywhere within a string.
	V4 = regexp.MustCompile(v4Pattern)

	// V4Exact matches a string that is exactly an IPv4 address.
	V4Exact = regexp.MustCompile(`^` + v4Pattern + `$`)

	// V6 matches an IPv6 address anywhere within a string.
	V6 = regexp.MustCompile(v6Pattern)

	// V6Exact matches a string that is exactly an IPv6 address.
	V6Exact = regexp.MustCompile(`^` + v6Pattern + `$`)

	// Any matches an IPv4 or IPv6 address anywhere within a string.
	Any = regexp.MustCompile(`(?:` + v4Pattern + `)|(?:` + v6Pattern + `)`)

	// AnyExact matches a string that is exactly an IPv4 or IPv6 address.
	AnyExact = regexp.MustCompile(`^(?:(?:` + v4Pattern + `)|(?:` + v6Pattern + `))$`)
)

// IsIPv4 reports whether s is exactly an IPv4 address.
func IsIPv4(s string) bool { return V4Exact.MatchString(s) }

// IsIPv6 reports whether s is exactly an IPv6 address.
func IsIPv6(s string) bool { return V6Exact.MatchString(s) }

// IsIP reports whether s is exactly an IPv4 or IPv6 address.
func IsIP(s string) bool { return AnyExact.MatchString(s) }

// Find returns the first IP address found within s, or "" if none.
func Find(s string) string { return Any.FindString(s) }

// FindAll returns every IP address found within s, in order of appearance.
// Returns nil if none are found.
func FindAll(s string) []string { return Any.FindAllString(s, -1) }
