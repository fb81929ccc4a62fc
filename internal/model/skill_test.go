package model

import (
	"slices"
	"testing"
)

func TestSkillNames(t *testing.T) {
	want := []string{"pb-init", "pb-plan", "pb-refine", "pb-build"}
	if got := SkillNames(); !slices.Equal(got, want) {
		t.Errorf("SkillNames() = %v, want %v", got, want)
	}
}

func TestDefaultSkillsReturnsCopy(t *testing.T) {
	skills := DefaultSkills()
	skills[0].Name = "mutated"

	if SkillNames()[0] != "pb-init" {
		t.Error("mutating DefaultSkills() result changed the catalog")
	}
}

func TestLookupSkill(t *testing.T) {
	tests := map[string]struct {
		name  string
		found bool
	}{
		"known skill":   {name: "pb-refine", found: true},
		"unknown skill": {name: "pb-deploy", found: false},
		"empty name":    {name: "", found: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, ok := LookupSkill(tt.name)
			if ok != tt.found {
				t.Fatalf("LookupSkill(%q) found = %v, want %v", tt.name, ok, tt.found)
			}
			if ok && s.Description == "" {
				t.Errorf("LookupSkill(%q) returned empty description", tt.name)
			}
		})
	}
}

func TestSkillDescription(t *testing.T) {
	for _, s := range DefaultSkills() {
		if got := SkillDescription(s.Name); got != s.Description {
			t.Errorf("SkillDescription(%q) = %q, want %q", s.Name, got, s.Description)
		}
	}
	if got := SkillDescription("nope"); got != "" {
		t.Errorf("SkillDescription(unknown) = %q, want empty", got)
	}
}
