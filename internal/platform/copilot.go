package platform

import (
	"path/filepath"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/util"
)

// Copilot installs flat prompt files as .github/prompts/<name>.prompt.md,
// or ~/.copilot/prompts when global. Content is written as-is.
type Copilot struct {
	promptFile
}

// NewCopilot returns the GitHub Copilot adapter.
func NewCopilot(store templates.Store) *Copilot {
	return &Copilot{promptFile{base: newBase(model.Copilot, store)}}
}

// SkillPath implements Platform.
func (c *Copilot) SkillPath(baseDir, skill string, global bool) string {
	root := filepath.Join(baseDir, ".github")
	if global {
		root = util.CopilotHome()
	}
	return filepath.Join(root, "prompts", skill+".prompt.md")
}

// Render implements Platform.
func (c *Copilot) Render(_, content string) string {
	return content
}

// Validate implements Platform.
func (c *Copilot) Validate(string) error {
	return nil
}

// Plan implements Platform.
func (c *Copilot) Plan(baseDir string, global bool) ([]Target, error) {
	return plan(c, baseDir, global)
}

// Install implements Platform.
func (c *Copilot) Install(baseDir string, opts InstallOptions) ([]string, error) {
	return install(c, baseDir, opts)
}
