// Package waituntil suspends the caller until a condition becomes true,
// checking the condition on a fixed interval rather than busy-spinning.
//
// The condition is expressed as a [Predicate], which receives an explicit
// resolve callback and the zero-based attempt index. A predicate signals
// completion either by calling resolve or by returning true; plain boolean
// checks can be adapted with [Condition].
//
// # Quick Start
//
// Wait for a file to appear, checking every 250ms:
//
//	err := waituntil.Until(ctx, waituntil.Condition(func() (bool, error) {
//	    _, err := os.Stat("/tmp/ready")
//	    if errors.Is(err, os.ErrNotExist) {
//	        return false, nil
//	    }
//	    return err == nil, err
//	}), waituntil.WithDelay(250*time.Millisecond))
//
// Bound the wait using the attempt index and the resolve callback:
//
//	err := waituntil.Until(ctx, func(resolve func(), attempt int) (bool, error) {
//	    if attempt > 4 {
//	        resolve()
//	    }
//	    return false, nil
//	})
//
// # Termination
//
// By default the wait is unbounded: if the predicate never signals
// completion, [Until] blocks until the context is cancelled. Callers that
// need a bound can use [WithTimeout] or [WithMaxAttempts], or enforce one
// inside the predicate via the attempt index.
package waituntil
