package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jackwink/weather/src/settings"
	"github.com/jackwink/weather/src/units"
)

// Dracula palette
var (
	colorBackground = lipgloss.Color("#282a36")
	colorForeground = lipgloss.Color("#f8f8f2")
	colorSelection  = lipgloss.Color("#44475a")
	colorComment    = lipgloss.Color("#6272a4")
	colorCyan       = lipgloss.Color("#8be9fd")
	colorPurple     = lipgloss.Color("#bd93f9")
	colorRed        = lipgloss.Color("#ff5555")
)

// Wizard fields, in tab order.
const (
	fieldAPIKey = iota
	fieldUnits
	fieldTime
	fieldDate
	fieldSave
	fieldCount
)

// setupModel is the bubbletea model for the setup wizard
type setupModel struct {
	apiKey  string
	units   units.UnitSystem
	time    units.TimeFormat
	date    units.DateFormat
	focused int
	errMsg  string

	cancelled bool
	done      bool
	width     int
	height    int
}

// newSetupModel starts the wizard from the current settings. The placeholder
// key is not shown.
func newSetupModel(s settings.Settings) setupModel {
	m := setupModel{
		units: s.Units,
		time:  s.Time,
		date:  s.Date,
	}
	if s.HasAPIKey() {
		m.apiKey = s.APIKey
	}
	return m
}

// Settings returns the settings chosen in the wizard.
func (m setupModel) Settings() settings.Settings {
	return settings.Settings{
		APIKey: m.apiKey,
		Units:  m.units,
		Time:   m.time,
		Date:   m.date,
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "down":
			m.focused = (m.focused + 1) % fieldCount

		case "shift+tab", "up":
			m.focused = (m.focused + fieldCount - 1) % fieldCount

		case "enter":
			switch m.focused {
			case fieldAPIKey:
				m.focused = fieldUnits
			case fieldSave:
				if strings.TrimSpace(m.apiKey) == "" {
					m.errMsg = "An API key is required"
					m.focused = fieldAPIKey
					return m, nil
				}
				m.apiKey = strings.TrimSpace(m.apiKey)
				m.done = true
				return m, tea.Quit
			default:
				m.toggle()
			}

		case " ", "left", "right":
			if m.focused == fieldAPIKey {
				if msg.String() == " " {
					m.apiKey += " "
				}
			} else {
				m.toggle()
			}

		case "backspace":
			if m.focused == fieldAPIKey && len(m.apiKey) > 0 {
				m.apiKey = m.apiKey[:len(m.apiKey)-1]
			}

		default:
			if m.focused == fieldAPIKey && msg.Type == tea.KeyRunes {
				m.apiKey += string(msg.Runes)
				m.errMsg = ""
			}
		}
	}

	return m, nil
}

// toggle flips the focused two-valued setting.
func (m *setupModel) toggle() {
	switch m.focused {
	case fieldUnits:
		if m.units == units.Metric {
			m.units = units.English
		} else {
			m.units = units.Metric
		}
	case fieldTime:
		if m.time == units.Military {
			m.time = units.Civilian
		} else {
			m.time = units.Military
		}
	case fieldDate:
		if m.date == units.Weekday {
			m.date = units.Date
		} else {
			m.date = units.Weekday
		}
	}
}

func (m setupModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(colorPurple).
		Bold(true).
		Align(lipgloss.Center)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorPurple).
		Padding(1, 2)

	labelStyle := lipgloss.NewStyle().
		Foreground(colorForeground)

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorComment).
		Padding(0, 1).
		Width(40)

	focusedInputStyle := inputStyle.
		BorderForeground(colorCyan)

	buttonStyle := lipgloss.NewStyle().
		Foreground(colorForeground).
		Background(colorSelection).
		Padding(0, 2)

	focusedButtonStyle := buttonStyle.
		Background(colorPurple).
		Foreground(colorBackground)

	errorStyle := lipgloss.NewStyle().
		Foreground(colorRed)

	helpStyle := lipgloss.NewStyle().
		Foreground(colorComment)

	var b strings.Builder

	b.WriteString(titleStyle.Render("WEATHER SETUP"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Weather Underground API key:"))
	b.WriteString("\n")
	if m.focused == fieldAPIKey {
		b.WriteString(focusedInputStyle.Render(m.apiKey + "_"))
	} else {
		b.WriteString(inputStyle.Render(m.apiKey))
	}
	b.WriteString("\n\n")

	choices := []struct {
		field int
		label string
		value string
	}{
		{fieldUnits, "Units", m.units.String()},
		{fieldTime, "Time", m.time.String()},
		{fieldDate, "Date", m.date.String()},
	}
	for _, c := range choices {
		text := fmt.Sprintf("%-6s < %s >", c.label+":", c.value)
		if m.focused == c.field {
			b.WriteString(focusedButtonStyle.Render(text))
		} else {
			b.WriteString(labelStyle.Render(text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n\n")
	}

	saveBtn := "[Save]"
	if m.focused == fieldSave {
		b.WriteString(focusedButtonStyle.Render(saveBtn))
	} else {
		b.WriteString(buttonStyle.Render(saveBtn))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("Tab/↑↓: navigate • Enter/←→: change • Esc: cancel"))

	return boxStyle.Render(b.String())
}

func newSetupCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively set the API key and display preferences",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runSetup(cmd)
		},
	}
}

// runSetup launches the setup wizard and saves its result.
func (o *options) runSetup(cmd *cobra.Command) error {
	store := o.store()
	persisted, err := store.Load()
	if err != nil {
		return err
	}
	current, err := settings.Resolve(persisted, settings.Overrides{})
	if err != nil {
		current = settings.Defaults()
	}

	p := tea.NewProgram(newSetupModel(current),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("setup wizard error: %w", err)
	}

	model := finalModel.(setupModel)
	if model.cancelled {
		return NewUsageError("setup cancelled")
	}
	if !model.done {
		return nil
	}
	return saveSetup(cmd, store, model.Settings())
}

func saveSetup(cmd *cobra.Command, store *settings.Store, s settings.Settings) error {
	if err := store.Save(s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", store.Path)
	return nil
}
