package platform

import (
	"fmt"
	"strings"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
)

// SelectorAll expands to every registered platform.
const SelectorAll = "all"

// Factory builds a platform adapter around a template store.
type Factory func(store templates.Store) Platform

type registration struct {
	id      model.Platform
	factory Factory
}

// registry is fixed at compile time; its order is the order "all" installs in.
var registry = []registration{
	{model.Claude, func(s templates.Store) Platform { return NewClaude(s) }},
	{model.Copilot, func(s templates.Store) Platform { return NewCopilot(s) }},
	{model.OpenCode, func(s templates.Store) Platform { return NewOpenCode(s) }},
	{model.Gemini, func(s templates.Store) Platform { return NewGemini(s) }},
	{model.Codex, func(s templates.Store) Platform { return NewCodex(s) }},
}

// UnknownPlatformError is returned for a selector that names no platform.
type UnknownPlatformError struct {
	Name  string
	Valid []string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform %q: choose from %s", e.Name, strings.Join(e.Valid, ", "))
}

// Names returns every registered platform name in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, r := range registry {
		names[i] = string(r.id)
	}
	return names
}

// Choices returns the accepted selector values: every name plus "all".
func Choices() []string {
	return append(Names(), SelectorAll)
}

// New returns the adapter registered under name.
func New(name string, store templates.Store) (Platform, error) {
	id := model.Platform(name)
	if id.IsValid() {
		for _, r := range registry {
			if r.id == id {
				return r.factory(store), nil
			}
		}
	}
	return nil, &UnknownPlatformError{Name: name, Valid: Names()}
}

// ResolveTargets expands a selector into platform names. "all" yields every
// registered name; anything else must name a known platform exactly.
func ResolveTargets(selector string) ([]string, error) {
	if selector == SelectorAll {
		return Names(), nil
	}
	if !model.Platform(selector).IsValid() {
		return nil, &UnknownPlatformError{Name: selector, Valid: Names()}
	}
	return []string{selector}, nil
}
