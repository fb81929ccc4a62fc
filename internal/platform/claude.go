package platform

import (
	"path/filepath"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/util"
)

// Claude installs skills as .claude/skills/<name>/SKILL.md with references.
// Global installs go under $CLAUDE_CONFIG_DIR (default ~/.claude).
type Claude struct {
	base
}

// NewClaude returns the Claude Code adapter.
func NewClaude(store templates.Store) *Claude {
	return &Claude{base: newBase(model.Claude, store)}
}

// SkillPath implements Platform.
func (c *Claude) SkillPath(baseDir, skill string, global bool) string {
	root := filepath.Join(baseDir, ".claude")
	if global {
		root = util.ClaudeConfigDir()
	}
	return filepath.Join(root, "skills", skill, "SKILL.md")
}

// Render implements Platform.
func (c *Claude) Render(skill, content string) string {
	return renderFrontmatter(skill, model.SkillDescription(skill), content)
}

// Validate implements Platform.
func (c *Claude) Validate(content string) error {
	return validateFrontmatter(content, true)
}

// Plan implements Platform.
func (c *Claude) Plan(baseDir string, global bool) ([]Target, error) {
	return plan(c, baseDir, global)
}

// Install implements Platform.
func (c *Claude) Install(baseDir string, opts InstallOptions) ([]string, error) {
	return install(c, baseDir, opts)
}
