// Package main is a minimal HTTP health check binary for distroless
// containers. It exits 0 when HEALTHCHECK_URL answers 200 and 1 otherwise.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/janisto/cloudrun-smoke/internal/platform/config"
)

func main() {
	os.Exit(run(context.Background(), os.Stderr))
}

// run loads the healthcheck config, checks the target once and returns the exit code.
func run(ctx context.Context, stderr io.Writer) int {
	cfg, err := config.LoadHealthcheck()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := check(ctx, http.DefaultClient, cfg.URL); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// check issues a GET and succeeds only on HTTP 200.
func check(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("check %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("check %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}
