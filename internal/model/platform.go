package model

// Platform identifies a target AI coding assistant.
type Platform string

const (
	Claude   Platform = "claude"
	Copilot  Platform = "copilot"
	OpenCode Platform = "opencode"
	Gemini   Platform = "gemini"
	Codex    Platform = "codex"
)

// IsValid returns true if the platform is recognized
func (p Platform) IsValid() bool {
	switch p {
	case Claude, Copilot, OpenCode, Gemini, Codex:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable name of the tool.
func (p Platform) DisplayName() string {
	switch p {
	case Claude:
		return "Claude Code"
	case Copilot:
		return "GitHub Copilot"
	case OpenCode:
		return "OpenCode"
	case Gemini:
		return "Gemini CLI"
	case Codex:
		return "Codex"
	default:
		return string(p)
	}
}

// AllPlatforms returns all supported platforms in registration order.
func AllPlatforms() []Platform {
	return []Platform{Claude, Copilot, OpenCode, Gemini, Codex}
}
