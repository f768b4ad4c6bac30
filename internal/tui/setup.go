// ABOUTME: Interactive TUI wizard for configuring OpenRouter credentials.
// ABOUTME: 2-step bubbletea model collecting the API key and vision model.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/imagedb/imagedb/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepAPIKey Step = iota
	StepModel
	StepDone
)

// SetupModel is the bubbletea model for the init wizard. The API key is
// never validated here; a bad key surfaces on the first network call.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewSetupModel creates a new init wizard model, pre-filling with existing
// config values.
func NewSetupModel(apiKey, visionModel string) SetupModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "your OpenRouter API key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.Focus()
	keyInput.Width = 50
	if apiKey != "" {
		keyInput.SetValue(apiKey)
	}

	modelInput := textinput.New()
	modelInput.Placeholder = config.DefaultVisionModel
	modelInput.Width = 50
	if visionModel != "" {
		modelInput.SetValue(visionModel)
	}

	return SetupModel{
		step:   StepAPIKey,
		inputs: [2]textinput.Model{keyInput, modelInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step == StepAPIKey || m.step == StepModel {
			return m.updateInput(msg)
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		switch m.step {
		case StepAPIKey:
			// Don't advance on an empty API key
			if m.inputs[0].Value() == "" {
				return m, nil
			}
			m.inputs[0].Blur()
			m.step = StepModel
			m.inputs[1].Focus()
			return m, textinput.Blink

		case StepModel:
			// Blank means the default model
			if m.inputs[1].Value() == "" {
				m.inputs[1].SetValue(config.DefaultVisionModel)
			}
			m.inputs[1].Blur()
			m.step = StepDone
			return m, tea.Quit
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   imagedb"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure your OpenRouter account.\n\n")

	switch m.step {
	case StepAPIKey:
		b.WriteString(stepStyle.Render("Step 1 of 2: API key"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(stored locally; checked on first use, not now)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepModel:
		b.WriteString(fmt.Sprintf("  API key: %s\n\n", strings.Repeat("*", len(m.inputs[0].Value()))))
		b.WriteString(stepStyle.Render("Step 2 of 2: Vision model"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(press Enter for default)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("✓ Configured!"))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (apiKey, visionModel string) {
	visionModel = m.inputs[1].Value()
	if visionModel == "" {
		visionModel = config.DefaultVisionModel
	}
	return m.inputs[0].Value(), visionModel
}

// ShouldSave returns true if the wizard completed and the user did not
// cancel with Ctrl+C or Escape.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
