package platform

import (
	"path/filepath"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/util"
)

// OpenCode shares Claude's layout under .opencode/skills. Global installs go
// under $XDG_CONFIG_HOME/opencode (default ~/.config/opencode).
type OpenCode struct {
	base
}

// NewOpenCode returns the OpenCode adapter.
func NewOpenCode(store templates.Store) *OpenCode {
	return &OpenCode{base: newBase(model.OpenCode, store)}
}

// SkillPath implements Platform.
func (o *OpenCode) SkillPath(baseDir, skill string, global bool) string {
	root := filepath.Join(baseDir, ".opencode")
	if global {
		root = filepath.Join(util.XDGConfigHome(), "opencode")
	}
	return filepath.Join(root, "skills", skill, "SKILL.md")
}

// Render implements Platform.
func (o *OpenCode) Render(skill, content string) string {
	return renderFrontmatter(skill, model.SkillDescription(skill), content)
}

// Validate implements Platform.
func (o *OpenCode) Validate(content string) error {
	return validateFrontmatter(content, true)
}

// Plan implements Platform.
func (o *OpenCode) Plan(baseDir string, global bool) ([]Target, error) {
	return plan(o, baseDir, global)
}

// Install implements Platform.
func (o *OpenCode) Install(baseDir string, opts InstallOptions) ([]string, error) {
	return install(o, baseDir, opts)
}
