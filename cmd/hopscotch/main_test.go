package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	origStdin := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = origStdin }()
	fn()
}

func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	origStdout := os.Stdout
	os.Stdout = f
	code := fn()
	os.Stdout = origStdout
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), code
}

func TestRunPlainFromStdin(t *testing.T) {
	withStdin(t, "a: b\nb: a c\n", func() {
		out, code := captureStdout(t, func() int { return run(nil) })
		if code != 0 {
			t.Fatalf("expected exit 0, got %d (%s)", code, out)
		}
		want := "0: c \n1: a b \n"
		if out != want {
			t.Fatalf("got %q, want %q", out, want)
		}
	})
}

func TestRunDotFromFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(inputPath, []byte("a: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, code := captureStdout(t, func() int { return run([]string{"-d", inputPath}) })
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, out)
	}
	if !strings.Contains(out, "digraph {") {
		t.Fatalf("expected DOT output, got %q", out)
	}
}

func TestRunUnknownFlagExitsNonZero(t *testing.T) {
	_, code := captureStdout(t, func() int { return run([]string{"-bogus"}) })
	if code != 1 {
		t.Fatalf("expected exit 1 for an unknown flag, got %d", code)
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	_, code := captureStdout(t, func() int { return run([]string{"-h"}) })
	if code != 0 {
		t.Fatalf("expected exit 0 for -h, got %d", code)
	}
}

func TestRunModuleAndInputFileMutuallyExclusive(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(inputPath, []byte("a: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, code := captureStdout(t, func() int { return run([]string{"-module", dir, inputPath}) })
	if code != 1 {
		t.Fatalf("expected exit 1 when -module and an input file are both given, got %d", code)
	}
}

func TestRunEmptyInputSucceeds(t *testing.T) {
	withStdin(t, "", func() {
		out, code := captureStdout(t, func() int { return run(nil) })
		if code != 0 {
			t.Fatalf("expected exit 0 for empty input, got %d", code)
		}
		if out != "" {
			t.Fatalf("expected no output for the empty graph, got %q", out)
		}
	})
}
