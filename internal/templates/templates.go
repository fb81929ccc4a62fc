// Package templates provides the skill content installed by pb-spec.
//
// Content is laid out as:
//
//	skills/<skill>/SKILL.md            canonical skill body
//	skills/<skill>/references/<file>   supporting documents
//	prompts/<skill>.prompt.md          flat prompt variant
//
// The store hands content out verbatim; wrapping it for a platform is the
// platform adapter's job.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed skills prompts
var embedded embed.FS

// ErrNotFound is returned when a skill has no template of the requested kind.
var ErrNotFound = errors.New("template not found")

// Store loads template content by skill name.
type Store interface {
	// SkillBody returns skills/<skill>/SKILL.md.
	SkillBody(skill string) (string, error)
	// Prompt returns prompts/<skill>.prompt.md.
	Prompt(skill string) (string, error)
	// References returns the files under skills/<skill>/references keyed by
	// file name. A skill without references yields an empty map.
	References(skill string) (map[string]string, error)
}

// FSStore is a Store backed by an fs.FS.
type FSStore struct {
	fsys fs.FS
}

// New returns a store reading from fsys.
func New(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Embedded returns a store over the templates compiled into the binary.
func Embedded() *FSStore {
	return New(embedded)
}

// Dir returns a store reading from a directory on disk that follows the
// embedded layout.
func Dir(dir string) (*FSStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates directory %q is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// SkillBody implements Store.
func (s *FSStore) SkillBody(skill string) (string, error) {
	return s.read(skill, path.Join("skills", skill, "SKILL.md"))
}

// Prompt implements Store.
func (s *FSStore) Prompt(skill string) (string, error) {
	return s.read(skill, path.Join("prompts", skill+".prompt.md"))
}

// References implements Store.
func (s *FSStore) References(skill string) (map[string]string, error) {
	if !fs.ValidPath(skill) {
		return nil, fmt.Errorf("invalid skill name %q", skill)
	}
	dir := path.Join("skills", skill, "references")
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to list references for %s: %w", skill, err)
	}

	refs := make(map[string]string, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(s.fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read reference %s/%s: %w", skill, entry.Name(), err)
		}
		refs[entry.Name()] = string(data)
	}
	return refs, nil
}

func (s *FSStore) read(skill, name string) (string, error) {
	if !fs.ValidPath(skill) || path.Base(skill) != skill {
		return "", fmt.Errorf("invalid skill name %q", skill)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}
