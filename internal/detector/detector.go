// Package detector reports which AI coding tools appear to be present, by
// looking for their configuration directories and executables.
package detector

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/util"
)

// Source says how a platform was detected.
type Source string

const (
	SourceProject    Source = "project"
	SourceUserConfig Source = "user_config"
	SourceExecutable Source = "executable"
)

// DetectedPlatform represents a detected platform.
type DetectedPlatform struct {
	Platform model.Platform
	Path     string // directory or executable that was found
	Source   Source
}

// Detector looks for tools relative to a project directory. LookPath is
// exec.LookPath unless replaced in tests.
type Detector struct {
	ProjectDir string
	LookPath   func(file string) (string, error)
}

// New returns a Detector for projectDir.
func New(projectDir string) *Detector {
	return &Detector{ProjectDir: projectDir, LookPath: exec.LookPath}
}

// DetectAll returns every detected platform in registry order.
func (d *Detector) DetectAll() []DetectedPlatform {
	var detected []DetectedPlatform
	for _, p := range model.AllPlatforms() {
		if result, found := d.Detect(p); found {
			detected = append(detected, result)
		}
	}
	return detected
}

// Detect checks a single platform. Project directories win over user
// configuration, which wins over an executable on PATH.
func (d *Detector) Detect(p model.Platform) (DetectedPlatform, bool) {
	if d.ProjectDir != "" {
		if dir := projectDir(p); dir != "" {
			path := filepath.Join(d.ProjectDir, dir)
			if isDir(path) {
				return DetectedPlatform{Platform: p, Path: path, Source: SourceProject}, true
			}
		}
	}

	if path := userDir(p); isDir(path) {
		return DetectedPlatform{Platform: p, Path: path, Source: SourceUserConfig}, true
	}

	if bin := executable(p); bin != "" && d.LookPath != nil {
		if path, err := d.LookPath(bin); err == nil {
			return DetectedPlatform{Platform: p, Path: path, Source: SourceExecutable}, true
		}
	}

	return DetectedPlatform{}, false
}

// IsInstalled is a simpler boolean check for platform presence.
func (d *Detector) IsInstalled(p model.Platform) bool {
	_, found := d.Detect(p)
	return found
}

func projectDir(p model.Platform) string {
	switch p {
	case model.Claude:
		return ".claude"
	case model.Copilot:
		return ".github"
	case model.OpenCode:
		return ".opencode"
	case model.Gemini:
		return ".gemini"
	case model.Codex:
		return ".codex"
	}
	return ""
}

func userDir(p model.Platform) string {
	switch p {
	case model.Claude:
		return util.ClaudeConfigDir()
	case model.Copilot:
		return util.CopilotHome()
	case model.OpenCode:
		return filepath.Join(util.XDGConfigHome(), "opencode")
	case model.Gemini:
		return util.GeminiHome()
	case model.Codex:
		return util.CodexHome()
	}
	return ""
}

func executable(p model.Platform) string {
	switch p {
	case model.Claude:
		return "claude"
	case model.Copilot:
		return "copilot"
	case model.OpenCode:
		return "opencode"
	case model.Gemini:
		return "gemini"
	case model.Codex:
		return "codex"
	}
	return ""
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
