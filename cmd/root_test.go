package cmd

import (
	"context"
	"strings"
	"testing"
)

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	err := Execute(context.Background(), []string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_Help verifies --help (and no args) returns without error.
func TestExecute_Help(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {}} {
		name := "no-args"
		if len(args) > 0 {
			name = args[0]
		}
		t.Run(name, func(t *testing.T) {
			err := Execute(context.Background(), args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestExecute_DryRun verifies --dry-run validates and exits cleanly.
func TestExecute_DryRun(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-l", "--dry-run", "flip1.example.edu", "5000", "6000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_DryRunGet verifies the -g form parses.
func TestExecute_DryRunGet(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-g", "notes.txt", "--dry-run", "flip1.example.edu", "5000", "6000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_MissingRequest verifies a session without -l or -g is
// rejected.
func TestExecute_MissingRequest(t *testing.T) {
	err := Execute(context.Background(), []string{
		"--dry-run", "flip1.example.edu", "5000", "6000",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

// TestExecute_ConflictingFlags verifies -l and -g conflict is caught.
func TestExecute_ConflictingFlags(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-l", "-g", "notes.txt", "--dry-run", "flip1.example.edu", "5000", "6000",
	})
	if err == nil {
		t.Fatal("expected error for -l and -g conflict")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should mention mutually exclusive: %v", err)
	}
}

// TestExecute_BadPorts verifies positional port validation.
func TestExecute_BadPorts(t *testing.T) {
	tests := [][]string{
		{"-l", "--dry-run", "host", "not-a-port", "6000"},
		{"-l", "--dry-run", "host", "5000", "99999"},
		{"-l", "--dry-run", "host", "5000", "6000", "extra"},
	}
	for _, args := range tests {
		if err := Execute(context.Background(), args); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}

// TestExecute_BadWire verifies the wire-format flag is validated.
func TestExecute_BadWire(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-l", "--wire", "binary", "--dry-run", "flip1.example.edu", "5000", "6000",
	})
	if err == nil {
		t.Fatal("expected error for unknown wire format")
	}
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	err := Execute(context.Background(), []string{"--nonexistent-flag"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

// TestExecute_MissingConfigFile verifies a bad --config path fails
// before anything else runs.
func TestExecute_MissingConfigFile(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-l", "--config", "/nonexistent/goft.ini", "--dry-run",
		"flip1.example.edu", "5000", "6000",
	})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
