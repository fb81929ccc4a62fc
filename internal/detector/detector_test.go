package detector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/pbspec/internal/model"
)

var errNotFound = errors.New("not found")

func newTestDetector(t *testing.T, onPath ...string) (*Detector, string, string) {
	t.Helper()
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CLAUDE_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("CODEX_HOME", "")

	d := New(project)
	d.LookPath = func(file string) (string, error) {
		for _, bin := range onPath {
			if bin == file {
				return "/usr/local/bin/" + file, nil
			}
		}
		return "", errNotFound
	}
	return d, home, project
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestDetect(t *testing.T) {
	tests := map[string]struct {
		setup      func(t *testing.T, home, project string)
		onPath     []string
		platform   model.Platform
		wantFound  bool
		wantSource Source
	}{
		"project directory": {
			setup:      func(t *testing.T, _, project string) { mkdir(t, filepath.Join(project, ".gemini")) },
			platform:   model.Gemini,
			wantFound:  true,
			wantSource: SourceProject,
		},
		"user config": {
			setup:      func(t *testing.T, home, _ string) { mkdir(t, filepath.Join(home, ".claude")) },
			platform:   model.Claude,
			wantFound:  true,
			wantSource: SourceUserConfig,
		},
		"opencode under xdg": {
			setup:      func(t *testing.T, home, _ string) { mkdir(t, filepath.Join(home, ".config", "opencode")) },
			platform:   model.OpenCode,
			wantFound:  true,
			wantSource: SourceUserConfig,
		},
		"executable": {
			onPath:     []string{"codex"},
			platform:   model.Codex,
			wantFound:  true,
			wantSource: SourceExecutable,
		},
		"project wins over user config": {
			setup: func(t *testing.T, home, project string) {
				mkdir(t, filepath.Join(home, ".copilot"))
				mkdir(t, filepath.Join(project, ".github"))
			},
			platform:   model.Copilot,
			wantFound:  true,
			wantSource: SourceProject,
		},
		"file is not a directory": {
			setup: func(t *testing.T, _, project string) {
				if err := os.WriteFile(filepath.Join(project, ".codex"), nil, 0o600); err != nil {
					t.Fatal(err)
				}
			},
			platform: model.Codex,
		},
		"absent": {
			platform: model.Claude,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, home, project := newTestDetector(t, tt.onPath...)
			if tt.setup != nil {
				tt.setup(t, home, project)
			}

			got, found := d.Detect(tt.platform)
			if found != tt.wantFound {
				t.Fatalf("Detect(%s) found = %v, want %v", tt.platform, found, tt.wantFound)
			}
			if found && got.Source != tt.wantSource {
				t.Errorf("Detect(%s) source = %s, want %s", tt.platform, got.Source, tt.wantSource)
			}
			if found && got.Platform != tt.platform {
				t.Errorf("Detect(%s) platform = %s", tt.platform, got.Platform)
			}
		})
	}
}

func TestDetectHonorsEnvironment(t *testing.T) {
	d, _, _ := newTestDetector(t)
	custom := filepath.Join(t.TempDir(), "claude-config")
	mkdir(t, custom)
	t.Setenv("CLAUDE_CONFIG_DIR", custom)

	got, found := d.Detect(model.Claude)
	if !found || got.Path != custom {
		t.Errorf("Detect(claude) = %+v, %v; want %s", got, found, custom)
	}
}

func TestDetectAll(t *testing.T) {
	d, home, project := newTestDetector(t, "opencode")
	mkdir(t, filepath.Join(home, ".codex"))
	mkdir(t, filepath.Join(project, ".claude"))

	got := d.DetectAll()
	want := []model.Platform{model.Claude, model.OpenCode, model.Codex}
	if len(got) != len(want) {
		t.Fatalf("DetectAll() = %+v, want %v", got, want)
	}
	for i, p := range want {
		if got[i].Platform != p {
			t.Errorf("DetectAll()[%d] = %s, want %s", i, got[i].Platform, p)
		}
	}
	if d.IsInstalled(model.Gemini) {
		t.Error("IsInstalled(gemini) = true")
	}
}
