package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/klauern/pbspec/internal/model"
	"github.com/klauern/pbspec/internal/templates"
	"github.com/klauern/pbspec/internal/util"
)

// Gemini installs custom commands as .gemini/commands/<name>.toml, or
// ~/.gemini/commands when global.
type Gemini struct {
	promptFile
}

// geminiCommand mirrors the fields Gemini CLI reads from a command file.
type geminiCommand struct {
	Description string `toml:"description"`
	Prompt      string `toml:"prompt"`
}

// NewGemini returns the Gemini CLI adapter.
func NewGemini(store templates.Store) *Gemini {
	return &Gemini{promptFile{base: newBase(model.Gemini, store)}}
}

// SkillPath implements Platform.
func (g *Gemini) SkillPath(baseDir, skill string, global bool) string {
	root := filepath.Join(baseDir, ".gemini")
	if global {
		root = util.GeminiHome()
	}
	return filepath.Join(root, "commands", skill+".toml")
}

// Render implements Platform. The prompt is a multi-line literal string
// unless the body itself contains ”', in which case it falls back to an
// escaped multi-line basic string.
func (g *Gemini) Render(skill, content string) string {
	body := strings.TrimRight(content, " \t\r\n")

	var prompt string
	if !strings.Contains(body, "'''") {
		prompt = "'''\n" + body + "\n'''"
	} else {
		escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(body)
		prompt = "\"\"\"\n" + escaped + "\n\"\"\""
	}
	return "description = " + jsonString(model.SkillDescription(skill)) + "\nprompt = " + prompt + "\n"
}

// Validate implements Platform.
func (g *Gemini) Validate(content string) error {
	var cmd geminiCommand
	if _, err := toml.Decode(content, &cmd); err != nil {
		return fmt.Errorf("failed to parse TOML command: %w", err)
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return errors.New("command has no description")
	}
	if strings.TrimSpace(cmd.Prompt) == "" {
		return errors.New("command has no prompt")
	}
	return nil
}

// Plan implements Platform.
func (g *Gemini) Plan(baseDir string, global bool) ([]Target, error) {
	return plan(g, baseDir, global)
}

// Install implements Platform.
func (g *Gemini) Install(baseDir string, opts InstallOptions) ([]string, error) {
	return install(g, baseDir, opts)
}

// jsonString quotes s as a JSON string without HTML escaping. Every JSON
// string escape is also a valid TOML basic-string escape.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
