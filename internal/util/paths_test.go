package util

import (
	"path/filepath"
	"testing"
)

func TestHomeDir(t *testing.T) {
	home := HomeDir()
	if home == "" {
		t.Error("HomeDir() returned empty string")
	}

	// Verify it's an absolute path
	if !filepath.IsAbs(home) {
		t.Errorf("HomeDir() returned relative path: %s", home)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]struct {
		path    string
		baseDir string
		want    string
	}{
		"empty":              {path: "", baseDir: "/base", want: ""},
		"tilde only":         {path: "~", want: home},
		"tilde prefix":       {path: "~/.codex", want: filepath.Join(home, ".codex")},
		"absolute":           {path: "/etc/x", baseDir: "/base", want: "/etc/x"},
		"relative with base": {path: "sub/dir", baseDir: "/base", want: "/base/sub/dir"},
		"relative no base":   {path: "sub/dir", want: "sub/dir"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ExpandPath(tt.path, tt.baseDir); got != tt.want {
				t.Errorf("ExpandPath(%q, %q) = %q, want %q", tt.path, tt.baseDir, got, tt.want)
			}
		})
	}
}

func TestPlatformHomes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]struct {
		env   string
		value string
		fn    func() string
		want  string
	}{
		"claude default":   {env: "CLAUDE_CONFIG_DIR", fn: ClaudeConfigDir, want: filepath.Join(home, ".claude")},
		"claude override":  {env: "CLAUDE_CONFIG_DIR", value: "/opt/claude", fn: ClaudeConfigDir, want: "/opt/claude"},
		"xdg default":      {env: "XDG_CONFIG_HOME", fn: XDGConfigHome, want: filepath.Join(home, ".config")},
		"xdg tilde":        {env: "XDG_CONFIG_HOME", value: "~/cfg", fn: XDGConfigHome, want: filepath.Join(home, "cfg")},
		"codex default":    {env: "CODEX_HOME", fn: CodexHome, want: filepath.Join(home, ".codex")},
		"codex override":   {env: "CODEX_HOME", value: "/srv/codex", fn: CodexHome, want: "/srv/codex"},
		"pbspec default":   {env: "PBSPEC_HOME", fn: PbspecHome, want: filepath.Join(home, ".pb-spec")},
		"blank is default": {env: "CODEX_HOME", value: "  ", fn: CodexHome, want: filepath.Join(home, ".codex")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			if got := tt.fn(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	project := filepath.Join(home, "work", "project")

	tests := map[string]struct {
		path string
		want string
	}{
		"inside project": {
			path: filepath.Join(project, ".claude", "skills", "pb-init", "SKILL.md"),
			want: ".claude/skills/pb-init/SKILL.md",
		},
		"inside home": {
			path: filepath.Join(home, ".gemini", "commands", "pb-init.toml"),
			want: "~/.gemini/commands/pb-init.toml",
		},
		"outside both": {
			path: "/opt/codex/prompts/pb-init.md",
			want: "/opt/codex/prompts/pb-init.md",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DisplayPath(tt.path, project); got != tt.want {
				t.Errorf("DisplayPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
