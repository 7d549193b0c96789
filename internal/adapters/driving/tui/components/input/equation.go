// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/computor-cli/internal/adapters/driving/tui/styles"
)

// EquationInput wraps a bubbles textinput for entering equations.
type EquationInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewEquationInput creates a new equation input component.
func NewEquationInput(s *styles.Styles) *EquationInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &EquationInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init starts the cursor blink.
func (e *EquationInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *EquationInput) Update(msg tea.Msg) (*EquationInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the input with its label.
func (e *EquationInput) View() string {
	label := e.styles.Title.Render("Equation: ")
	field := e.styles.InputField.Render(e.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (e *EquationInput) Value() string {
	return e.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (e *EquationInput) SetValue(value string) {
	e.textinput.SetValue(value)
	e.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (e *EquationInput) Focus() tea.Cmd {
	return e.textinput.Focus()
}

// Blur removes focus from the input.
func (e *EquationInput) Blur() {
	e.textinput.Blur()
}

// Focused returns whether the input is focused.
func (e *EquationInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the width of the component.
func (e *EquationInput) SetWidth(width int) {
	e.width = width
	// label and border
	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	e.textinput.Width = inputWidth
}

// Width returns the current width.
func (e *EquationInput) Width() int {
	return e.width
}

// Reset clears the input.
func (e *EquationInput) Reset() {
	e.textinput.Reset()
}
