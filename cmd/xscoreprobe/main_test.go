package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
)

func TestRunProbeCommandPrintsResult(t *testing.T) {
	out, err := captureStdout(func() error {
		return run(context.Background(), []string{"probe", "--energy", "1.0", "--nuclides", "2", "--seed", "5"})
	})
	if err != nil {
		t.Fatalf("probe command: %v", err)
	}
	if !strings.Contains(out, "total=") || !strings.Contains(out, "absorption=") {
		t.Fatalf("unexpected probe output: %s", out)
	}
}

func TestRunBenchmarkCommandPrintsSummary(t *testing.T) {
	out, err := captureStdout(func() error {
		return run(context.Background(), []string{"benchmark", "--nuclides", "2", "--iterations", "50", "--seed", "7"})
	})
	if err != nil {
		t.Fatalf("benchmark command: %v", err)
	}
	if !strings.Contains(out, "run=") || !strings.Contains(out, "mean_total=") {
		t.Fatalf("unexpected benchmark output: %s", out)
	}
}

func TestRunUnknownCommandFails(t *testing.T) {
	if err := run(context.Background(), []string{"bogus"}); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestRunMissingCommandFails(t *testing.T) {
	if err := run(context.Background(), nil); err == nil {
		t.Fatal("expected an error when no command is given")
	}
}

func captureStdout(fn func() error) (string, error) {
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = w
	runErr := fn()
	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		_ = r.Close()
		return "", err
	}
	_ = r.Close()
	return buf.String(), runErr
}
