// Package prompt asks yes/no questions on the terminal.
package prompt

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the prompt is dismissed with ctrl+c.
var ErrCanceled = errors.New("prompt canceled")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	choiceStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle   = choiceStyle.Reverse(true).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// Model is a two-choice confirmation. Focus starts on "No".
type Model struct {
	Question string

	yes      bool // focused choice
	answered bool
	answer   bool
	canceled bool
}

// NewModel creates a confirmation for question.
func NewModel(question string) Model {
	return Model{Question: question}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.answered, m.answer = true, true
	case "n", "esc", "q":
		m.answered, m.answer = true, false
	case "ctrl+c":
		m.canceled = true
		return m, tea.Quit
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.yes = !m.yes
		return m, nil
	case "enter":
		m.answered, m.answer = true, m.yes
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m Model) View() string {
	if m.answered || m.canceled {
		return ""
	}
	yes, no := choiceStyle.Render("Yes"), activeStyle.Render("No")
	if m.yes {
		yes, no = activeStyle.Render("Yes"), choiceStyle.Render("No")
	}
	return questionStyle.Render(m.Question) + "  " + yes + " " + no + "\n" +
		helpStyle.Render("y/n: answer   tab: switch   enter: select   esc: no") + "\n"
}

// Answer reports the chosen answer and whether one was given.
func (m Model) Answer() (yes bool, answered bool) {
	return m.answer, m.answered
}

// Confirmer runs the model as a bubbletea program. Nil In/Out use the process terminal.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm asks question and blocks until the user answers.
func (c Confirmer) Confirm(question string) (bool, error) {
	var opts []tea.ProgramOption
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}
	final, err := tea.NewProgram(NewModel(question), opts...).Run()
	if err != nil {
		return false, err
	}
	m := final.(Model)
	if m.canceled {
		return false, ErrCanceled
	}
	yes, _ := m.Answer()
	return yes, nil
}
