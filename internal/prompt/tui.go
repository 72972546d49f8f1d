package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	messageStyle      = lipgloss.NewStyle().Bold(true)
	answerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
)

// questionModel is the bubbletea model for a single question.
type questionModel struct {
	question Question
	def      string
	input    textinput.Model
	err      error
	value    string
	done     bool
	aborted  bool
}

func newQuestionModel(q Question, def string) questionModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return questionModel{question: q, def: def, input: ti}
}

func (m questionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m questionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				value = m.def
			}
			if err := m.question.Check(value); err != nil {
				m.err = err
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return m, cmd
}

func (m questionModel) View() string {
	var b strings.Builder

	b.WriteString(questionMarkStyle.Render("?"))
	b.WriteString(" ")
	b.WriteString(messageStyle.Render(m.question.Message))
	b.WriteString(" ")

	if m.done {
		b.WriteString(answerStyle.Render(m.value))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(">> " + m.err.Error()))
	}
	return b.String()
}

// TUIPrompter asks each question with an inline text input.
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTUIPrompter creates a prompter on the given terminal streams.
func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

// Ask implements Prompter.
func (p *TUIPrompter) Ask(ctx context.Context, questions []Question, seed Answers) (Answers, error) {
	answers := seed.Clone()

	for _, q := range questions {
		if !q.Applicable(answers) {
			continue
		}

		program := tea.NewProgram(
			newQuestionModel(q, q.DefaultValue(answers)),
			tea.WithContext(ctx),
			tea.WithInput(p.in),
			tea.WithOutput(p.out),
		)

		finalModel, err := program.Run()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("asking %s: %w", q.Key, err)
		}

		m := finalModel.(questionModel)
		if m.aborted || !m.done {
			return nil, ErrAborted
		}
		answers[q.Key] = m.value
	}
	return answers, nil
}
