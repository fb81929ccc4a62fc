// Package platform adapts pb-spec skills to each supported AI coding tool.
//
// Every adapter answers the same questions: where does a skill live for this
// tool, locally or globally, and what envelope does the tool expect around the
// skill text. The install state machine in installer.go is shared by all of
// them; adapters only differ in path rules, rendering, which template variant
// they load, and whether reference files travel with the skill.
package platform

import (
	"io"
	"slices"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
)

// Platform is a target AI tool that pb-spec can install skills for.
type Platform interface {
	// Name is the registry key, e.g. "claude".
	Name() string
	// DisplayName is the human-readable tool name.
	DisplayName() string
	// SkillNames lists the skills this platform installs, in install order.
	SkillNames() []string
	// SkillPath resolves the primary file for skill. Local paths are rooted at
	// baseDir; global paths at the tool's home or config directory.
	SkillPath(baseDir, skill string, global bool) string
	// Render wraps raw template content in the platform's envelope.
	Render(skill, content string) string
	// Validate reports whether content is a well-formed envelope for this platform.
	Validate(content string) error
	// Plan returns every file an install would produce, with rendered content.
	Plan(baseDir string, global bool) ([]Target, error)
	// Install writes the skills and returns the display paths of written files.
	Install(baseDir string, opts InstallOptions) ([]string, error)
}

// InstallOptions controls a single Install call.
type InstallOptions struct {
	// Force overwrites files that already exist.
	Force bool
	// Global installs into the tool's user-level directory instead of baseDir.
	Global bool
	// Out receives skip notices. Nil discards them.
	Out io.Writer
	// BeforeOverwrite, when set, is called with the path of an existing file
	// right before Force replaces it.
	BeforeOverwrite func(path string) error
}

// Target is one file produced by installing a platform.
type Target struct {
	Platform string
	Skill    string
	// Reference is the reference file name, empty for the primary skill file.
	Reference string
	Path      string
	Content   string
}

// IsReference reports whether the target is a reference file.
func (t Target) IsReference() bool {
	return t.Reference != ""
}

// adapter is the hook set the shared installer drives.
type adapter interface {
	Platform
	// load returns the raw template text rendered into the primary file.
	load(skill string) (string, error)
	// references returns reference files to install next to the primary file.
	references(skill string) (map[string]string, error)
}

// base carries the behavior shared by every adapter. Adapters embed it and
// override load or references where their convention differs.
type base struct {
	id     model.Platform
	store  templates.Store
	skills []string
}

func newBase(id model.Platform, store templates.Store) base {
	return base{id: id, store: store, skills: model.SkillNames()}
}

func (b *base) Name() string        { return string(b.id) }
func (b *base) DisplayName() string { return b.id.DisplayName() }

func (b *base) SkillNames() []string {
	return slices.Clone(b.skills)
}

func (b *base) load(skill string) (string, error) {
	return b.store.SkillBody(skill)
}

func (b *base) references(skill string) (map[string]string, error) {
	return b.store.References(skill)
}

// promptFile is embedded by flat-file adapters: they render the prompt
// variant and never install references.
type promptFile struct {
	base
}

func (p *promptFile) load(skill string) (string, error) {
	return p.store.Prompt(skill)
}

func (p *promptFile) references(string) (map[string]string, error) {
	return nil, nil
}
