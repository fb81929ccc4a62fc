package model

// Skill is a named template document installed for every platform.
type Skill struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// defaultSkills is the fixed, ordered skill list.
var defaultSkills = []Skill{
	{
		Name:        "pb-init",
		Description: "Use when onboarding a repo or after major structural changes to regenerate AGENTS.md project context.",
	},
	{
		Name:        "pb-plan",
		Description: "Use when converting a requirement into a design proposal and executable tasks before coding.",
	},
	{
		Name:        "pb-refine",
		Description: "Use when feedback or a Design Change Request requires incremental updates to design.md and tasks.md.",
	},
	{
		Name:        "pb-build",
		Description: "Use when tasks.md is ready and you need sequential TDD implementation with recovery loops.",
	},
}

// DefaultSkills returns a copy of the fixed skill list in install order.
func DefaultSkills() []Skill {
	out := make([]Skill, len(defaultSkills))
	copy(out, defaultSkills)
	return out
}

// SkillNames returns the names of DefaultSkills in order.
func SkillNames() []string {
	names := make([]string, len(defaultSkills))
	for i, s := range defaultSkills {
		names[i] = s.Name
	}
	return names
}

// LookupSkill returns the skill with the given name.
func LookupSkill(name string) (Skill, bool) {
	for _, s := range defaultSkills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// SkillDescription returns the description of a skill, or "" when unknown.
func SkillDescription(name string) string {
	s, _ := LookupSkill(name)
	return s.Description
}
