// Smoke is a deploy verification tool for the fallback server. It checks
// that a running instance answers readiness probes and returns the exact
// diagnostic message on the root route.
//
// Usage:
//
//	go run smoke.go -url http://localhost:8080
//
// The tool exits 0 when both checks pass and 1 otherwise, so it can gate
// deployment pipelines.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mkourtis/staticfall/internal/fallback"
)

func main() {
	url := flag.String("url", "http://localhost:8080", "base URL of the running fallback server")
	timeout := flag.Duration("timeout", 5*time.Second, "per-request timeout")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}

	if err := checkReadiness(client, *url); err != nil {
		fmt.Fprintf(os.Stderr, "readiness check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("readiness check passed")

	if err := checkFallback(client, *url); err != nil {
		fmt.Fprintf(os.Stderr, "fallback check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("fallback check passed")
}

func checkReadiness(client *http.Client, base string) error {
	res, err := client.Get(base + "/healthz")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", res.StatusCode)
	}

	return nil
}

func checkFallback(client *http.Client, base string) error {
	res, err := client.Get(base + "/")
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if string(body) != fallback.Message {
		return fmt.Errorf("unexpected body: %q", string(body))
	}

	return nil
}
