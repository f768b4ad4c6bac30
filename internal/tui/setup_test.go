// ABOUTME: Unit tests for the init TUI wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imagedb/imagedb/internal/config"
)

func TestNewSetupModel_DefaultValues(t *testing.T) {
	m := NewSetupModel("", "")
	if m.step != StepAPIKey {
		t.Errorf("expected initial step StepAPIKey, got %d", m.step)
	}
	if m.inputs[0].Value() != "" {
		t.Error("expected empty API key input for new config")
	}
	if m.inputs[1].Value() != "" {
		t.Error("expected empty model input for new config")
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel("sk-or-existing", "some/model")
	if m.inputs[0].Value() != "sk-or-existing" {
		t.Errorf("expected pre-filled API key, got %q", m.inputs[0].Value())
	}
	if m.inputs[1].Value() != "some/model" {
		t.Errorf("expected pre-filled model, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_StepTransitions(t *testing.T) {
	m := NewSetupModel("", "")

	// Set the key and press Enter to advance to the model step
	m.inputs[0].SetValue("sk-or-test")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepModel {
		t.Errorf("expected StepModel after Enter on API key, got %d", m.step)
	}

	// Set the model and press Enter to finish
	m.inputs[1].SetValue("custom/model")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepDone {
		t.Errorf("expected StepDone after Enter on model, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected tea.Quit cmd when the wizard completes")
	}
	if !m.ShouldSave() {
		t.Error("completed wizard should report ShouldSave")
	}

	key, model := m.Result()
	if key != "sk-or-test" {
		t.Errorf("Result() key = %q, want %q", key, "sk-or-test")
	}
	if model != "custom/model" {
		t.Errorf("Result() model = %q, want %q", model, "custom/model")
	}
}

func TestSetupModel_EmptyAPIKeyDoesNotAdvance(t *testing.T) {
	m := NewSetupModel("", "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepAPIKey {
		t.Errorf("expected to stay on StepAPIKey with an empty key, got %d", m.step)
	}
}

func TestSetupModel_EmptyModelUsesDefault(t *testing.T) {
	m := NewSetupModel("", "")

	m.inputs[0].SetValue("sk-or-test")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)

	// Enter with no model entered
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)

	_, model := m.Result()
	if model != config.DefaultVisionModel {
		t.Errorf("Result() model = %q, want default %q", model, config.DefaultVisionModel)
	}
}

func TestSetupModel_EscapeCancels(t *testing.T) {
	m := NewSetupModel("", "")
	m.inputs[0].SetValue("sk-or-test")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(SetupModel)
	if m.ShouldSave() {
		t.Error("cancelled wizard must not report ShouldSave")
	}
}
