package waituntil

import (
	"context"
	"errors"
	"time"
)

// DefaultDelay is the interval between unsuccessful attempts when
// [WithDelay] is not specified.
const DefaultDelay = 100 * time.Millisecond

var (
	// ErrCancelled is returned by [Until] when the context is cancelled
	// before the predicate signals completion.
	ErrCancelled = errors.New("waituntil: cancelled")

	// ErrTimedOut is returned by [Until] when the context deadline or the
	// [WithTimeout] budget expires before the predicate signals completion.
	ErrTimedOut = errors.New("waituntil: timed out")

	// ErrExhausted is returned by [Until] when the [WithMaxAttempts] budget
	// is spent before the predicate signals completion.
	ErrExhausted = errors.New("waituntil: attempts exhausted")
)

// Predicate is the unit of caller logic invoked once per attempt.
//
// The resolve callback and the zero-based attempt index are always supplied.
// A predicate signals completion either by calling resolve or by returning
// true; doing neither means "not yet complete, keep polling". A non-nil
// error aborts the wait immediately and propagates verbatim to the caller
// of [Until] — errors are never retried.
//
// The predicate runs synchronously within each attempt. If it kicks off
// asynchronous work of its own, capture resolve and call it when that work
// completes; the poll loop keeps ticking until resolve fires.
type Predicate func(resolve func(), attempt int) (bool, error)

// Condition adapts a plain boolean check into a [Predicate].
//
// The check receives no arguments; its boolean return is the completion
// signal. This is the convenience form for conditions that do not need the
// resolve callback or the attempt index:
//
//	waituntil.Condition(func() (bool, error) { return ready.Load(), nil })
func Condition(check func() (bool, error)) Predicate {
	return func(_ func(), _ int) (bool, error) {
		return check()
	}
}

// Until polls pred until it signals completion, the context ends, or an
// optional budget configured via opts is exhausted.
//
// The first attempt (index 0) runs immediately with no initial delay. If
// the predicate signals completion on an attempt, Until returns nil
// synchronously relative to that attempt — no trailing delay is incurred.
// Otherwise Until suspends for the configured delay and tries again with
// the attempt index incremented. Attempts never overlap: attempt N+1 does
// not start before attempt N has returned.
//
// Returns nil on completion. Returns the predicate's error verbatim if one
// occurs. Returns [ErrCancelled] or [ErrTimedOut] if ctx ends first, and
// [ErrExhausted] if the [WithMaxAttempts] budget is spent. A nil ctx is
// treated as context.Background(), which makes the wait unbounded — the
// predicate is then solely responsible for termination.
func Until(ctx context.Context, pred Predicate, opts ...Option) error {
	cfg := &config{delay: DefaultDelay}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return ctxError(err)
	}

	for attempt := 0; ; attempt++ {
		var resolved bool
		resolve := func() { resolved = true }

		done, err := pred(resolve, attempt)
		if err != nil {
			return err
		}
		if done || resolved {
			if cfg.logger != nil {
				cfg.logger.Debug("condition met", "attempt", attempt)
			}
			return nil
		}

		if cfg.logger != nil {
			cfg.logger.Debug("condition not met", "attempt", attempt, "delay", cfg.delay.String())
		}

		if cfg.maxAttempts > 0 && attempt+1 >= cfg.maxAttempts {
			return ErrExhausted
		}

		if cfg.delay == 0 {
			// immediate re-check, but still honor cancellation
			if err := ctx.Err(); err != nil {
				return ctxError(err)
			}
			continue
		}

		timer := time.NewTimer(cfg.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctxError(ctx.Err())
		case <-timer.C:
		}
	}
}

// ctxError maps a context error to the package's sentinel errors.
func ctxError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimedOut
	}
	return ErrCancelled
}
