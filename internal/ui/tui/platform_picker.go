package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("platform selection cancelled")

// PlatformChoice is one selectable row of the picker.
type PlatformChoice struct {
	// Value is the selector passed on to the installer, e.g. "claude" or "all".
	Value string
	// Label is shown next to the value.
	Label string
}

type platformPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultPlatformPickerKeyMap() platformPickerKeyMap {
	return platformPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlatformPickerModel is the BubbleTea model for choosing an install target.
type PlatformPickerModel struct {
	choices  []PlatformChoice
	cursor   int
	keys     platformPickerKeyMap
	selected string
	showHelp bool
	quitting bool
}

// NewPlatformPickerModel creates a picker over choices, listed in order.
func NewPlatformPickerModel(choices []PlatformChoice) PlatformPickerModel {
	return PlatformPickerModel{
		choices: choices,
		keys:    defaultPlatformPickerKeyMap(),
	}
}

// Init implements tea.Model.
func (m PlatformPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlatformPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Select):
		if len(m.choices) == 0 {
			return m, nil
		}
		m.selected = m.choices[m.cursor].Value
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m PlatformPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("pb-spec - Select a platform to install skills for"))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		label := fmt.Sprintf("%-9s %s", c.Value, Styles.Dim.Render(c.Label))
		if i == m.cursor {
			b.WriteString(Styles.Selected.Render("> " + label))
		} else {
			b.WriteString(Styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(Styles.Help.Render(`Navigation:
  ↑/k      Move up
  ↓/j      Move down

Actions:
  Enter    Install for the highlighted platform

General:
  ?        Toggle full help
  q/Esc    Quit`))
	} else {
		b.WriteString(Styles.Help.Render("↑/↓ navigate • enter select • ? help • q quit"))
	}
	return b.String()
}

// Selected returns the chosen selector, empty if the user quit.
func (m PlatformPickerModel) Selected() string {
	return m.selected
}

// RunPlatformPicker shows the picker on the given streams and returns the
// chosen selector. Leaving without a choice returns ErrCancelled.
func RunPlatformPicker(choices []PlatformChoice, in io.Reader, out io.Writer) (string, error) {
	final, err := Run(NewPlatformPickerModel(choices), in, out)
	if err != nil {
		return "", fmt.Errorf("platform picker failed: %w", err)
	}
	m, ok := final.(PlatformPickerModel)
	if !ok || m.selected == "" {
		return "", ErrCancelled
	}
	return m.selected, nil
}
