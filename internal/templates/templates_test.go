package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauern/pbspec/internal/model"
)

func TestEmbeddedSkillBodies(t *testing.T) {
	store := Embedded()
	for _, name := range model.SkillNames() {
		t.Run(name, func(t *testing.T) {
			body, err := store.SkillBody(name)
			if err != nil {
				t.Fatalf("SkillBody(%q) error = %v", name, err)
			}
			if strings.TrimSpace(body) == "" {
				t.Errorf("SkillBody(%q) is empty", name)
			}
			if strings.Contains(body, "---") {
				t.Errorf("SkillBody(%q) contains a frontmatter delimiter", name)
			}
		})
	}
}

func TestEmbeddedPrompts(t *testing.T) {
	store := Embedded()
	for _, name := range model.SkillNames() {
		t.Run(name, func(t *testing.T) {
			prompt, err := store.Prompt(name)
			if err != nil {
				t.Fatalf("Prompt(%q) error = %v", name, err)
			}
			if strings.TrimSpace(prompt) == "" {
				t.Errorf("Prompt(%q) is empty", name)
			}
		})
	}
}

func TestEmbeddedReferences(t *testing.T) {
	tests := map[string]struct {
		skill string
		want  []string
	}{
		"pb-init has none":   {skill: "pb-init", want: nil},
		"pb-plan templates":  {skill: "pb-plan", want: []string{"design_template.md", "tasks_template.md"}},
		"pb-refine has none": {skill: "pb-refine", want: nil},
		"pb-build prompt":    {skill: "pb-build", want: []string{"implementer_prompt.md"}},
	}

	store := Embedded()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			refs, err := store.References(tt.skill)
			if err != nil {
				t.Fatalf("References(%q) error = %v", tt.skill, err)
			}
			if refs == nil {
				t.Fatal("References() returned nil map")
			}
			if len(refs) != len(tt.want) {
				t.Fatalf("References(%q) returned %d files, want %d", tt.skill, len(refs), len(tt.want))
			}
			for _, file := range tt.want {
				if strings.TrimSpace(refs[file]) == "" {
					t.Errorf("reference %s is missing or empty", file)
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	store := New(fstest.MapFS{})

	if _, err := store.SkillBody("pb-init"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SkillBody() error = %v, want ErrNotFound", err)
	}
	if _, err := store.Prompt("pb-init"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Prompt() error = %v, want ErrNotFound", err)
	}

	refs, err := store.References("pb-init")
	if err != nil {
		t.Fatalf("References() error = %v, want nil", err)
	}
	if len(refs) != 0 {
		t.Errorf("References() = %v, want empty", refs)
	}
}

func TestInvalidSkillName(t *testing.T) {
	store := Embedded()
	for _, name := range []string{"../pb-init", "pb-init/../x", ""} {
		if _, err := store.SkillBody(name); err == nil {
			t.Errorf("SkillBody(%q) expected error", name)
		}
	}
}

func TestReferencesSkipsDirectories(t *testing.T) {
	store := New(fstest.MapFS{
		"skills/demo/SKILL.md":               {Data: []byte("body")},
		"skills/demo/references/a.md":        {Data: []byte("a")},
		"skills/demo/references/nested/b.md": {Data: []byte("b")},
	})

	refs, err := store.References("demo")
	if err != nil {
		t.Fatalf("References() error = %v", err)
	}
	if len(refs) != 1 || refs["a.md"] != "a" {
		t.Errorf("References() = %v, want only a.md", refs)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prompts"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prompts", "pb-init.prompt.md"), []byte("custom"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	got, err := store.Prompt("pb-init")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if got != "custom" {
		t.Errorf("Prompt() = %q, want %q", got, "custom")
	}

	if _, err := Dir(filepath.Join(dir, "missing")); err == nil {
		t.Error("Dir() on missing directory expected error")
	}
}
