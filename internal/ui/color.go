// Package ui provides terminal output helpers for pb-spec.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color functions for styled output.
var (
	Success = color.New(color.FgGreen).SprintFunc()
	Error   = color.New(color.FgRed).SprintFunc()
	Warning = color.New(color.FgYellow).SprintFunc()
	Info    = color.New(color.FgCyan).SprintFunc()
	Bold    = color.New(color.Bold).SprintFunc()
	Dim     = color.New(color.Faint).SprintFunc()
	Header  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolSkipped = "-"
	SymbolAdded   = "+"
	SymbolMissing = "○"
)

// StatusSuccess returns a green checkmark with optional message.
func StatusSuccess(msg string) string {
	return status(Success(SymbolSuccess), msg)
}

// StatusError returns a red X with optional message.
func StatusError(msg string) string {
	return status(Error(SymbolError), msg)
}

// StatusWarning returns a yellow warning sign with optional message.
func StatusWarning(msg string) string {
	return status(Warning(SymbolWarning), msg)
}

// StatusSkipped returns a dimmed skip symbol with optional message.
func StatusSkipped(msg string) string {
	return status(Dim(SymbolSkipped), msg)
}

// StatusAdded returns a green plus with optional message.
func StatusAdded(msg string) string {
	return status(Success(SymbolAdded), msg)
}

// StatusMissing returns a dimmed hollow circle with optional message.
func StatusMissing(msg string) string {
	return status(Dim(SymbolMissing), msg)
}

func status(symbol, msg string) string {
	if msg == "" {
		return symbol
	}
	return symbol + " " + msg
}

// ConfigureColors applies a color mode: "auto" leaves fatih/color's terminal
// detection alone, "always" and "never" force it.
func ConfigureColors(mode string) error {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return nil
	case "always":
		EnableColors()
		return nil
	case "never":
		DisableColors()
		return nil
	default:
		return fmt.Errorf("invalid color mode %q: use auto, always, or never", mode)
	}
}

// DisableColors disables all color output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output.
func EnableColors() {
	color.NoColor = false
}

// IsColorEnabled returns whether colors are currently enabled.
func IsColorEnabled() bool {
	return !color.NoColor
}
