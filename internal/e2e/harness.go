// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It runs pb-spec commands in-process against an isolated home and project
// directory and captures their output.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/pbspec/internal/cli"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness provides a test harness for running E2E CLI tests.
// It manages environment isolation, temp directories, and output capture.
type Harness struct {
	t          *testing.T
	homeDir    string
	projectDir string
}

// NewHarness creates a harness with a fresh HOME, pb-spec home and project
// directory, and makes the project directory the working directory.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		t:          t,
		homeDir:    t.TempDir(),
		projectDir: t.TempDir(),
	}

	t.Setenv("HOME", h.homeDir)
	t.Setenv("PBSPEC_HOME", filepath.Join(h.homeDir, ".pb-spec"))
	for _, key := range []string{
		"PBSPEC_AI", "PBSPEC_INIT_GLOBAL", "PBSPEC_TEMPLATES_DIR",
		"PBSPEC_BACKUP_ENABLED", "PBSPEC_BACKUP_LOCATION", "PBSPEC_UPDATE_COMMAND",
		"CLAUDE_CONFIG_DIR", "XDG_CONFIG_HOME", "CODEX_HOME",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("PBSPEC_OUTPUT_COLOR", "never")
	t.Chdir(h.projectDir)

	return h
}

// SetEnv sets an environment variable for the rest of the test.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// ProjectDir returns the working directory commands run in.
func (h *Harness) ProjectDir() string {
	return h.projectDir
}

// Run executes a CLI command with the given arguments and captures the output.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()
	return h.run(nil, args)
}

// RunWithStdin executes a CLI command with stdin connected to a pipe
// carrying the given input.
func (h *Harness) RunWithStdin(stdin string, args ...string) *Result {
	h.t.Helper()
	return h.run(&stdin, args)
}

func (h *Harness) run(stdin *string, args []string) *Result {
	h.t.Helper()

	if len(args) == 0 || args[0] != "pb-spec" {
		args = append([]string{"pb-spec"}, args...)
	}

	if stdin != nil {
		oldStdin := os.Stdin
		stdinR, stdinW, err := os.Pipe()
		if err != nil {
			h.t.Fatalf("failed to create stdin pipe: %v", err)
		}
		go func() {
			defer func() { _ = stdinW.Close() }()
			_, _ = stdinW.WriteString(*stdin)
		}()
		os.Stdin = stdinR
		defer func() {
			os.Stdin = oldStdin
			_ = stdinR.Close()
		}()
	}

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Drain concurrently so output larger than the pipe buffer cannot block.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdout = oldStdout

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
