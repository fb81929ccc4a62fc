package platform

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// frontmatter is the metadata block written ahead of markdown skill files.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// renderFrontmatter prepends a YAML block to body. The name line is omitted
// when name is empty. The description is always double-quoted.
func renderFrontmatter(name, description, body string) string {
	var sb strings.Builder
	sb.WriteString(frontmatterDelimiter + "\n")
	if name != "" {
		sb.WriteString("name: " + name + "\n")
	}
	sb.WriteString(`description: "` + escapeDoubleQuoted(description) + "\"\n")
	sb.WriteString(frontmatterDelimiter + "\n\n")
	sb.WriteString(body)
	return sb.String()
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

func escapeDoubleQuoted(s string) string {
	return doubleQuoteEscaper.Replace(s)
}

// splitFrontmatter separates a leading "---" block from the body. ok is false
// when content does not open with a delimiter or the block is never closed.
func splitFrontmatter(content string) (meta, body string, ok bool) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	rest, found := strings.CutPrefix(content, frontmatterDelimiter+"\n")
	if !found {
		return "", content, false
	}
	if after, found := strings.CutPrefix(rest, frontmatterDelimiter+"\n"); found {
		return "", strings.TrimPrefix(after, "\n"), true
	}
	idx := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if idx < 0 {
		return "", content, false
	}
	meta = rest[:idx]
	body = rest[idx+len(frontmatterDelimiter)+2:]
	return meta, strings.TrimPrefix(body, "\n"), true
}

// validateFrontmatter checks that content opens with a parseable YAML block
// carrying a description, and a name when requireName is set.
func validateFrontmatter(content string, requireName bool) error {
	meta, _, ok := splitFrontmatter(content)
	if !ok {
		return errors.New("missing frontmatter block")
	}
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}
	if strings.TrimSpace(fm.Description) == "" {
		return errors.New("frontmatter has no description")
	}
	if requireName && strings.TrimSpace(fm.Name) == "" {
		return errors.New("frontmatter has no name")
	}
	return nil
}
