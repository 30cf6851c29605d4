package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dannycreations/Vegapunk-sub001/waituntil"
	"github.com/spf13/cobra"
)

const waitRequestTimeout = 5 * time.Second

// waitCmd blocks until a file exists or a URL answers with a 2xx status.
var waitCmd = &cobra.Command{
	Use:   "wait TARGET",
	Short: "Wait until a file exists or a URL is healthy",
	Long: `Wait until a target becomes available.

If TARGET is an http:// or https:// URL, the command polls it with GET
requests until one answers with a 2xx status. Otherwise TARGET is
treated as a filesystem path and the command waits for it to exist.

The wait is unbounded unless --timeout or --attempts is given; it can
always be interrupted with Ctrl+C.

Exit codes:
  0 - Target became available
  1 - Timed out, attempts exhausted, or interrupted

Example:
  vegapunk wait dist/bundle.js --delay 250ms
  vegapunk wait https://localhost:8080/healthz --timeout 30s
  vegapunk wait /tmp/ready --attempts 10`,
	Args: cobra.ExactArgs(1),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)

	waitCmd.Flags().Duration("delay", time.Second, "interval between attempts")
	waitCmd.Flags().Duration("timeout", 0, "overall time budget (0 = unbounded)")
	waitCmd.Flags().Int("attempts", 0, "attempt budget (0 = unbounded)")
}

func runWait(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	delay, _ := cmd.Flags().GetDuration("delay")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	attempts, _ := cmd.Flags().GetInt("attempts")

	target := args[0]
	pred, kind := targetPredicate(target)

	logger.Info("waiting",
		"target", target,
		"kind", kind,
		"delay", delay.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err := waituntil.Until(ctx, pred,
		waituntil.WithDelay(delay),
		waituntil.WithTimeout(timeout),
		waituntil.WithMaxAttempts(attempts),
		waituntil.WithLogger(logger),
	)

	switch {
	case err == nil:
		logger.Info("target available",
			"target", target,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil
	case errors.Is(err, waituntil.ErrTimedOut):
		return fmt.Errorf("timed out after %s waiting for %s", time.Since(start).Round(time.Millisecond), target)
	case errors.Is(err, waituntil.ErrExhausted):
		return fmt.Errorf("gave up after %d attempts waiting for %s", attempts, target)
	default:
		return err
	}
}

// targetPredicate classifies the target and returns the predicate polling
// it, along with a label for log output.
func targetPredicate(target string) (waituntil.Predicate, string) {
	if isHTTPTarget(target) {
		return urlPredicate(target), "url"
	}
	return filePredicate(target), "file"
}

// isHTTPTarget reports whether target is an http or https URL.
func isHTTPTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// filePredicate waits for a path to exist. Stat errors other than
// "not exist" are permanent and abort the wait.
func filePredicate(path string) waituntil.Predicate {
	return waituntil.Condition(func() (bool, error) {
		_, err := os.Stat(path)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	})
}

// urlPredicate waits for a URL to answer with a 2xx status. Transport
// errors and non-2xx statuses mean "not yet", not failure.
func urlPredicate(target string) waituntil.Predicate {
	client := &http.Client{Timeout: waitRequestTimeout}

	return waituntil.Condition(func() (bool, error) {
		resp, err := client.Get(target)
		if err != nil {
			return false, nil
		}
		defer resp.Body.Close()
		return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
	})
}
