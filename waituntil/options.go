package waituntil

import (
	"errors"
	"log/slog"
	"time"
)

// config holds mutable state during wait construction.
type config struct {
	delay       time.Duration
	timeout     time.Duration
	maxAttempts int
	logger      *slog.Logger
}

// Option configures a single call to [Until].
//
// Options return an error if validation fails; [Until] surfaces that error
// without invoking the predicate.
//
// Built-in options: [WithDelay], [WithTimeout], [WithMaxAttempts],
// [WithLogger].
type Option func(*config) error

// WithDelay sets the interval between unsuccessful attempts.
//
// Zero means immediate re-check. Defaults to [DefaultDelay] if not
// specified.
//
// Returns an error if the duration is negative.
func WithDelay(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return errors.New("delay must be non-negative")
		}
		cfg.delay = d
		return nil
	}
}

// WithTimeout bounds the total time spent waiting.
//
// When the budget expires, [Until] fails with [ErrTimedOut]. An attempt in
// progress is not interrupted; the expiry is observed at the next
// suspension point. Zero (the default) means no bound.
//
// Returns an error if the duration is negative.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return errors.New("timeout must be non-negative")
		}
		cfg.timeout = d
		return nil
	}
}

// WithMaxAttempts bounds the number of predicate invocations.
//
// When n attempts have completed without the predicate signalling
// completion, [Until] fails with [ErrExhausted]. Zero (the default) means
// no bound.
//
// Returns an error if n is negative.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return errors.New("max attempts must be non-negative")
		}
		cfg.maxAttempts = n
		return nil
	}
}

// WithLogger enables per-attempt debug logging on the given [slog.Logger].
//
// Each attempt logs its index and, when unsuccessful, the delay before the
// next attempt. If not specified, nothing is logged.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
