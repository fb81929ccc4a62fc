package update

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunSuccess(t *testing.T) {
	requireShell(t)
	var stdout bytes.Buffer

	err := Run(context.Background(), Options{
		Command: []string{"sh", "-c", "echo upgraded"},
		Stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "upgraded" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunToolMissing(t *testing.T) {
	err := Run(context.Background(), Options{
		Command: []string{"pb-spec-definitely-not-installed", "upgrade"},
	})
	if !errors.Is(err, ErrToolMissing) {
		t.Fatalf("Run() error = %v, want ErrToolMissing", err)
	}
	if !strings.Contains(err.Error(), "pb-spec-definitely-not-installed") {
		t.Errorf("error %q does not name the tool", err)
	}
}

func TestRunToolFailed(t *testing.T) {
	requireShell(t)

	err := Run(context.Background(), Options{Command: []string{"sh", "-c", "exit 3"}})

	var failed *ToolFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("Run() error = %v, want *ToolFailedError", err)
	}
	if failed.Code != 3 {
		t.Errorf("Code = %d, want 3", failed.Code)
	}
	if err.Error() != "update failed with exit code 3" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRunEmptyCommand(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Fatal("Run() expected error for empty command")
	}
}
