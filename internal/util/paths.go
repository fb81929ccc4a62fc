package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ExpandPath expands a leading ~ to the home directory and resolves relative
// paths against baseDir. An empty baseDir leaves relative paths untouched.
func ExpandPath(path, baseDir string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	if !filepath.IsAbs(path) && baseDir != "" {
		return filepath.Join(baseDir, path)
	}
	return path
}

// EnvDir returns the expanded value of the environment variable key, or
// fallback when the variable is unset or blank.
func EnvDir(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return ExpandPath(v, "")
	}
	return fallback
}

// ClaudeConfigDir returns the Claude Code config directory ($CLAUDE_CONFIG_DIR or ~/.claude).
func ClaudeConfigDir() string {
	return EnvDir("CLAUDE_CONFIG_DIR", filepath.Join(HomeDir(), ".claude"))
}

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	return EnvDir("XDG_CONFIG_HOME", filepath.Join(HomeDir(), ".config"))
}

// CodexHome returns the Codex home directory ($CODEX_HOME or ~/.codex).
func CodexHome() string {
	return EnvDir("CODEX_HOME", filepath.Join(HomeDir(), ".codex"))
}

// CopilotHome returns the GitHub Copilot user directory.
func CopilotHome() string {
	return filepath.Join(HomeDir(), ".copilot")
}

// GeminiHome returns the Gemini CLI user directory.
func GeminiHome() string {
	return filepath.Join(HomeDir(), ".gemini")
}

// PbspecHome returns the pb-spec state directory ($PBSPEC_HOME or ~/.pb-spec).
func PbspecHome() string {
	return EnvDir("PBSPEC_HOME", filepath.Join(HomeDir(), ".pb-spec"))
}

// PbspecBackupsPath returns the default backup directory.
func PbspecBackupsPath() string {
	return filepath.Join(PbspecHome(), "backups")
}

// DisplayPath formats path for user-facing output: relative to baseDir when
// inside it, "~/"-relative when inside the home directory, absolute otherwise.
func DisplayPath(path, baseDir string) string {
	if rel, ok := within(path, baseDir); ok {
		return rel
	}
	if rel, ok := within(path, HomeDir()); ok {
		return "~/" + rel
	}
	return path
}

func within(path, root string) (string, bool) {
	if root == "" {
		return "", false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
