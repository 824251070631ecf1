package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestMissingFilename(t *testing.T) {
	code, _, stderr := runCapture(t)
	if code != exitBadFile {
		t.Fatalf("expected exit code %d, got %d", exitBadFile, code)
	}
	if !strings.Contains(stderr, "Need to specify a filename") {
		t.Fatalf("missing diagnostic, got %q", stderr)
	}
}

func TestOptionWithoutValue(t *testing.T) {
	for _, args := range [][]string{{"-f"}, {"-p"}, {"-m"}} {
		code, _, _ := runCapture(t, args...)
		if code != exitBadOption {
			t.Fatalf("%v: expected exit code %d, got %d", args, exitBadOption, code)
		}
	}
}

func TestUnparseableNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"-f", "x", "-p", "abc"},
		{"-f", "x", "-p", "0"},
		{"-f", "x", "-m", "12q"},
		{"-f", "x", "-m", "-5"},
	} {
		code, _, _ := runCapture(t, args...)
		if code != exitBadNumber {
			t.Fatalf("%v: expected exit code %d, got %d", args, exitBadNumber, code)
		}
	}
}

func TestUnknownOption(t *testing.T) {
	code, _, _ := runCapture(t, "-x")
	if code != exitBadOption {
		t.Fatalf("expected exit code %d, got %d", exitBadOption, code)
	}
}

func TestMissingFile(t *testing.T) {
	code, _, _ := runCapture(t, "-f", filepath.Join(t.TempDir(), "no-such-file"))
	if code != exitBadOption {
		t.Fatalf("sizing a missing file should exit %d, got %d", exitBadOption, code)
	}
}

func TestUnreadableFile(t *testing.T) {
	// a directory sizes fine but cannot be read
	code, _, _ := runCapture(t, "-f", t.TempDir())
	if code != exitBadFile {
		t.Fatalf("reading a directory should exit %d, got %d", exitBadFile, code)
	}
}

func TestCompressFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, bytes.Repeat([]byte("abcabc"), 100), 0644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCapture(t, "-f", path, "-m", "256")
	if code != exitOK {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	for _, line := range []string{
		"size of start symbol",
		"number of rounds",
		"number of non-terminals",
	} {
		if !strings.Contains(stdout, line) {
			t.Fatalf("summary line %q missing from output %q", line, stdout)
		}
	}
}

func TestPrefixLimitsWork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("abababababababab"), 0644); err != nil {
		t.Fatal(err)
	}
	code, stdout, _ := runCapture(t, "-f", path, "-p", "8")
	if code != exitOK {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(stdout, "(8 of 16 bytes)") {
		t.Fatalf("expected prefix note in %q", stdout)
	}
}
