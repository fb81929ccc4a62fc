// Package config provides configuration management for pb-spec.
// It supports a YAML configuration file, environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klauern/pbspec/internal/util"
)

// DefaultUpdateCommand upgrades pb-spec through the Go toolchain.
const DefaultUpdateCommand = "go install github.com/klauern/pbspec/cmd/pb-spec@latest"

// Config represents the complete pb-spec configuration.
type Config struct {
	// Init holds defaults for the init command
	Init InitConfig `yaml:"init"`

	// Templates configures where skill templates are read from
	Templates TemplatesConfig `yaml:"templates"`

	// Backup configures --backup behavior
	Backup BackupConfig `yaml:"backup"`

	// Update configures the self-update command
	Update UpdateConfig `yaml:"update"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// InitConfig holds init defaults.
type InitConfig struct {
	// AI is the platform selector used when --ai is not given
	AI string `yaml:"ai,omitempty"`
	// Global installs into user-level directories by default
	Global bool `yaml:"global"`
}

// TemplatesConfig holds template source settings.
type TemplatesConfig struct {
	// Dir overrides the embedded templates with an on-disk directory
	Dir string `yaml:"dir,omitempty"`
}

// BackupConfig holds backup settings.
type BackupConfig struct {
	// Enabled backs up files overwritten by --force without --backup
	Enabled bool `yaml:"enabled"`
	// Location is the backup directory path
	Location string `yaml:"location"`
}

// UpdateConfig holds self-update settings.
type UpdateConfig struct {
	// Command is the command line run by `pb-spec update`
	Command string `yaml:"command"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backup: BackupConfig{
			Enabled:  false,
			Location: util.PbspecBackupsPath(),
		},
		Update: UpdateConfig{
			Command: DefaultUpdateCommand,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.PbspecHome(), configFileName)
}

// Load loads the configuration file merged over defaults, then applies
// environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg, err := LoadFromPath(FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.applyEnvironment()
		return cfg, nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is the pb-spec config file or provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// SaveToPath writes the configuration to path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// UpdateArgs splits the update command into program and arguments.
func (c *Config) UpdateArgs() []string {
	if args := strings.Fields(c.Update.Command); len(args) > 0 {
		return args
	}
	return strings.Fields(DefaultUpdateCommand)
}

// BackupDir returns the expanded backup location.
func (c *Config) BackupDir() string {
	if c.Backup.Location == "" {
		return util.PbspecBackupsPath()
	}
	return util.ExpandPath(c.Backup.Location, "")
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern PBSPEC_<SECTION>_<KEY>; the init
// platform selector is PBSPEC_AI.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("PBSPEC_AI"); v != "" {
		c.Init.AI = v
	}
	if v := os.Getenv("PBSPEC_INIT_GLOBAL"); v != "" {
		c.Init.Global = parseBool(v)
	}

	if v := os.Getenv("PBSPEC_TEMPLATES_DIR"); v != "" {
		c.Templates.Dir = v
	}

	if v := os.Getenv("PBSPEC_BACKUP_ENABLED"); v != "" {
		c.Backup.Enabled = parseBool(v)
	}
	if v := os.Getenv("PBSPEC_BACKUP_LOCATION"); v != "" {
		c.Backup.Location = v
	}

	if v := os.Getenv("PBSPEC_UPDATE_COMMAND"); v != "" {
		c.Update.Command = v
	}

	if v := os.Getenv("PBSPEC_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
