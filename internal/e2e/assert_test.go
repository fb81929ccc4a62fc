package e2e

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGoldenPathSurvivesChdir(t *testing.T) {
	want := GoldenPath("init_claude")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("golden file not found before chdir: %v", err)
	}

	t.Chdir(t.TempDir())

	if got := GoldenPath("init_claude"); got != want {
		t.Errorf("GoldenPath() after chdir = %q, want %q", got, want)
	}
	if _, err := os.Stat(GoldenPath("init_claude")); err != nil {
		t.Errorf("golden file not found after chdir: %v", err)
	}
}

func TestInstallOutputAsserts(t *testing.T) {
	r := &Result{Stdout: "Installing for Codex...\n" +
		"  + .codex/prompts/pb-init.md\n" +
		"  - Skipping .codex/prompts/pb-plan.md (exists, use --force)\n"}

	AssertSuccess(t, r)
	AssertExitCode(t, r, 0)
	AssertWritten(t, r, ".codex/prompts/pb-init.md")
	AssertSkipped(t, r, ".codex/prompts/pb-plan.md")

	skippedOnly := &Result{Stdout: "  - Skipping .codex/prompts/pb-init.md (exists, use --force)\n"}
	AssertNothingWritten(t, skippedOnly)
}

func TestAssertFrontmatter(t *testing.T) {
	tests := map[string]struct {
		content string
		name    string
	}{
		"skill with name": {
			content: "---\nname: pb-plan\ndescription: \"Plan a feature\"\n---\n\nbody\n",
			name:    "pb-plan",
		},
		"prompt without name": {
			content: "---\ndescription: \"Plan a feature\"\n---\n\nbody\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "SKILL.md")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write file: %v", err)
			}
			AssertFrontmatter(t, path, tt.name)
			AssertFileContains(t, path, "body")
		})
	}
}

func TestAssertNoReferences(t *testing.T) {
	AssertNoReferences(t, []string{
		".gemini/commands/pb-plan.toml",
		".github/prompts/pb-build.prompt.md",
	})
}
