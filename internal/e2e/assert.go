package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// packageDir is the working directory the test binary started in. Golden
// files resolve against it because the harness changes into a temporary
// project directory.
var packageDir = func() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}()

// updateGoldenFlag tracks whether to update golden files
var updateGoldenFlag = false

// SetUpdateGolden sets the update golden flag (call from TestMain)
func SetUpdateGolden(update bool) {
	updateGoldenFlag = update
}

// UpdateGolden returns whether golden files should be updated
func UpdateGolden() bool {
	return updateGoldenFlag
}

// GoldenPath returns the path of testdata/<name>.golden in the package
// directory, regardless of the current working directory.
func GoldenPath(name string) string {
	return filepath.Join(packageDir, "testdata", name+".golden")
}

// AssertSuccess fails the test if the command did not succeed.
func AssertSuccess(t *testing.T, r *Result) {
	t.Helper()
	if !r.Success() {
		t.Fatalf("expected success, got error: %v\nstdout: %s", r.Err, r.Stdout)
	}
}

// AssertError fails the test if the command did not return an error.
func AssertError(t *testing.T, r *Result) {
	t.Helper()
	if r.Success() {
		t.Fatalf("expected error, but command succeeded\nstdout: %s", r.Stdout)
	}
}

// AssertExitCode fails the test if the exit code doesn't match.
func AssertExitCode(t *testing.T, r *Result, expected int) {
	t.Helper()
	if r.ExitCode != expected {
		t.Errorf("expected exit code %d, got %d\nerror: %v\nstdout: %s", expected, r.ExitCode, r.Err, r.Stdout)
	}
}

// AssertErrorContains fails the test if the error message doesn't contain the substring.
func AssertErrorContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if r.Success() {
		t.Fatalf("expected error containing %q, but command succeeded", substr)
	}
	if !strings.Contains(r.Err.Error(), substr) {
		t.Errorf("expected error to contain %q\ngot: %s", substr, r.Err)
	}
}

// AssertOutputContains fails the test if stdout doesn't contain the substring.
func AssertOutputContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if !strings.Contains(r.Stdout, substr) {
		t.Errorf("expected output to contain %q\ngot: %s", substr, r.Stdout)
	}
}

// AssertOutputNotContains fails the test if stdout contains the substring.
func AssertOutputNotContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	if strings.Contains(r.Stdout, substr) {
		t.Errorf("expected output to NOT contain %q\ngot: %s", substr, r.Stdout)
	}
}

// AssertGolden compares stdout against testdata/<name>.golden, or rewrites
// the golden file when -update is set.
func AssertGolden(t *testing.T, r *Result, name string) {
	t.Helper()
	goldenPath := GoldenPath(name)

	if UpdateGolden() {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0o750); err != nil {
			t.Fatalf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(r.Stdout), 0o600); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		return
	}

	// #nosec G304 - goldenPath is built from the package testdata directory
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nRun with -update to create it", goldenPath, err)
	}
	if r.Stdout != string(want) {
		t.Errorf("output mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", name, r.Stdout, string(want))
	}
}

// AssertWritten fails the test unless every path was reported as written.
func AssertWritten(t *testing.T, r *Result, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if !strings.Contains(r.Stdout, "+ "+p+"\n") {
			t.Errorf("expected %s to be reported as written\ngot: %s", p, r.Stdout)
		}
	}
}

// AssertSkipped fails the test unless every path got a skip notice.
func AssertSkipped(t *testing.T, r *Result, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if !strings.Contains(r.Stdout, "Skipping "+p+" (exists, use --force)") {
			t.Errorf("expected skip notice for %s\ngot: %s", p, r.Stdout)
		}
	}
}

// AssertNothingWritten fails the test if any file was reported as written.
func AssertNothingWritten(t *testing.T, r *Result) {
	t.Helper()
	if strings.Contains(r.Stdout, "  + ") {
		t.Errorf("expected no files to be written\ngot: %s", r.Stdout)
	}
}

// AssertFrontmatter fails the test unless the file at path opens with a
// frontmatter block carrying a description, and a name line when name is
// not empty.
func AssertFrontmatter(t *testing.T, path, name string) {
	t.Helper()
	content := readFile(t, path)

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		t.Errorf("%s does not start with a frontmatter delimiter", path)
		return
	}
	meta, _, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		t.Errorf("%s has no closing frontmatter delimiter", path)
		return
	}
	if name != "" && !strings.Contains(meta+"\n", "name: "+name+"\n") {
		t.Errorf("%s frontmatter missing name %q\ngot: %s", path, name, meta)
	}
	if !strings.Contains(meta, `description: "`) {
		t.Errorf("%s frontmatter missing description\ngot: %s", path, meta)
	}
}

// AssertNoReferences fails the test if any file lives in a references
// directory.
func AssertNoReferences(t *testing.T, files []string) {
	t.Helper()
	for _, f := range files {
		if strings.Contains(f, "/references/") {
			t.Errorf("unexpected reference file %s", f)
		}
	}
}

// AssertFileExists fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to NOT exist: %s", path)
	}
}

// AssertFileContains fails the test if the file doesn't contain the substring.
func AssertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	if data := readFile(t, path); !strings.Contains(data, substr) {
		t.Errorf("expected file %s to contain %q\ngot: %s", path, substr, data)
	}
}

// AssertFileEquals fails the test if the file content doesn't match exactly.
func AssertFileEquals(t *testing.T, path, expected string) {
	t.Helper()
	if data := readFile(t, path); data != expected {
		t.Errorf("file content mismatch for %s\nexpected: %q\ngot: %q", path, expected, data)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	// #nosec G304 - path is provided by test code
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
