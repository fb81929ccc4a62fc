package status

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauern/pbspec/internal/detector"
	"github.com/klauern/pbspec/internal/install"
	"github.com/klauern/pbspec/internal/platform"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/ui"
	"github.com/klauern/pbspec/internal/util"
)

func TestMain(m *testing.M) {
	ui.DisableColors()
	os.Exit(m.Run())
}

func testStore() templates.Store {
	files := fstest.MapFS{
		"skills/pb-build/references/implementer_prompt.md": {Data: []byte("# implementer\n")},
	}
	for _, skill := range []string{"pb-init", "pb-plan", "pb-refine", "pb-build"} {
		files["skills/"+skill+"/SKILL.md"] = &fstest.MapFile{Data: []byte("# " + skill + "\n")}
		files["prompts/"+skill+".prompt.md"] = &fstest.MapFile{Data: []byte("# " + skill + " prompt\n")}
	}
	return templates.New(files)
}

func states(ps PlatformStatus) map[string]State {
	m := make(map[string]State, len(ps.Files))
	for _, f := range ps.Files {
		m[f.Display] = f.State
	}
	return m
}

func TestCheckMissing(t *testing.T) {
	results, err := Check(testStore(), Options{Selector: "claude", BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	counts := results[0].Counts()
	util.AssertEqual(t, counts[Missing], 5)
	util.AssertEqual(t, results[0].DisplayName, "Claude Code")
}

func TestCheckStates(t *testing.T) {
	dir := t.TempDir()
	store := testStore()
	if _, err := install.Run(context.Background(), store, install.Options{Selector: "all", BaseDir: dir}); err != nil {
		t.Fatal(err)
	}

	// Valid frontmatter, different body.
	util.WriteFile(t, filepath.Join(dir, ".claude/skills/pb-plan/SKILL.md"),
		"---\nname: pb-plan\ndescription: \"edited\"\n---\n\nlocal notes\n")
	// Broken TOML.
	util.WriteFile(t, filepath.Join(dir, ".gemini/commands/pb-init.toml"), "description = \n")
	// Reference edits are modifications, never invalid.
	util.WriteFile(t, filepath.Join(dir, ".claude/skills/pb-build/references/implementer_prompt.md"), "changed")
	// Removed file.
	if err := os.Remove(filepath.Join(dir, ".codex/prompts/pb-refine.md")); err != nil {
		t.Fatal(err)
	}

	results, err := Check(store, Options{Selector: "all", BaseDir: dir})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	byName := map[string]PlatformStatus{}
	for _, r := range results {
		byName[r.Platform] = r
	}

	tests := map[string]struct {
		platform string
		display  string
		want     State
	}{
		"untouched":        {"claude", ".claude/skills/pb-init/SKILL.md", Installed},
		"edited body":      {"claude", ".claude/skills/pb-plan/SKILL.md", Modified},
		"edited ref":       {"claude", ".claude/skills/pb-build/references/implementer_prompt.md", Modified},
		"broken toml":      {"gemini", ".gemini/commands/pb-init.toml", Invalid},
		"removed":          {"codex", ".codex/prompts/pb-refine.md", Missing},
		"copilot verbatim": {"copilot", ".github/prompts/pb-build.prompt.md", Installed},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := states(byName[tt.platform])[tt.display]
			if !ok {
				t.Fatalf("%s not reported for %s", tt.display, tt.platform)
			}
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	if _, err := Check(testStore(), Options{Selector: "all", BaseDir: dir}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Check() created %d entries", len(entries))
	}
}

func TestCheckUnknownSelector(t *testing.T) {
	_, err := Check(testStore(), Options{Selector: "vim"})
	var unknown *platform.UnknownPlatformError
	if !errors.As(err, &unknown) {
		t.Errorf("Check() error = %v, want *UnknownPlatformError", err)
	}
}

func TestCheckDetector(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".gemini"), 0o755); err != nil {
		t.Fatal(err)
	}
	d := detector.New(dir)
	d.LookPath = func(string) (string, error) { return "", errors.New("not found") }

	results, err := Check(testStore(), Options{Selector: "gemini", BaseDir: dir, Detector: d})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Detected {
		t.Error("expected gemini to be detected from the project directory")
	}
}

func TestPrint(t *testing.T) {
	results := []PlatformStatus{{
		Platform:    "gemini",
		DisplayName: "Gemini CLI",
		Detected:    true,
		Files: []FileStatus{
			{Display: ".gemini/commands/pb-init.toml", State: Installed},
			{Display: ".gemini/commands/pb-plan.toml", State: Invalid, Problem: "bad toml"},
			{Display: ".gemini/commands/pb-refine.toml", State: Missing},
		},
	}}

	var buf bytes.Buffer
	Print(&buf, results)
	got := buf.String()

	for _, want := range []string{
		"Gemini CLI (detected)",
		"Installed .gemini/commands/pb-init.toml",
		"Invalid   .gemini/commands/pb-plan.toml: bad toml",
		"Missing   .gemini/commands/pb-refine.toml",
		"1 installed, 0 modified, 1 invalid, 1 missing",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Print() output missing %q:\n%s", want, got)
		}
	}
}
