package cli

import (
	"fmt"
	"os"
	"testing"

	"github.com/klauern/pbspec/internal/ui"
)

func TestMain(m *testing.M) {
	tempHome, err := os.MkdirTemp("", "pbspec-home-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp HOME: %v\n", err)
		os.Exit(1)
	}

	oldHome, hadHome := os.LookupEnv("HOME")
	if err := os.Setenv("HOME", tempHome); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set HOME: %v\n", err)
		_ = os.RemoveAll(tempHome)
		os.Exit(1)
	}
	for _, key := range []string{
		"PBSPEC_HOME", "PBSPEC_AI", "PBSPEC_INIT_GLOBAL", "PBSPEC_TEMPLATES_DIR",
		"PBSPEC_BACKUP_ENABLED", "PBSPEC_BACKUP_LOCATION", "PBSPEC_UPDATE_COMMAND",
		"PBSPEC_OUTPUT_COLOR", "CLAUDE_CONFIG_DIR", "XDG_CONFIG_HOME", "CODEX_HOME",
	} {
		_ = os.Unsetenv(key)
	}

	ui.DisableColors()

	code := m.Run()

	if hadHome {
		_ = os.Setenv("HOME", oldHome)
	} else {
		_ = os.Unsetenv("HOME")
	}
	_ = os.RemoveAll(tempHome)

	os.Exit(code)
}
