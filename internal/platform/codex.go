package platform

import (
	"path/filepath"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/util"
)

// Codex installs custom prompts as .codex/prompts/<name>.md with a
// description-only frontmatter. Global installs go under $CODEX_HOME
// (default ~/.codex).
type Codex struct {
	promptFile
}

// NewCodex returns the Codex adapter.
func NewCodex(store templates.Store) *Codex {
	return &Codex{promptFile{base: newBase(model.Codex, store)}}
}

// SkillPath implements Platform.
func (c *Codex) SkillPath(baseDir, skill string, global bool) string {
	root := filepath.Join(baseDir, ".codex")
	if global {
		root = util.CodexHome()
	}
	return filepath.Join(root, "prompts", skill+".md")
}

// Render implements Platform.
func (c *Codex) Render(skill, content string) string {
	return renderFrontmatter("", model.SkillDescription(skill), content)
}

// Validate implements Platform.
func (c *Codex) Validate(content string) error {
	return validateFrontmatter(content, false)
}

// Plan implements Platform.
func (c *Codex) Plan(baseDir string, global bool) ([]Target, error) {
	return plan(c, baseDir, global)
}

// Install implements Platform.
func (c *Codex) Install(baseDir string, opts InstallOptions) ([]string, error) {
	return install(c, baseDir, opts)
}
