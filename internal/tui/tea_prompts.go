package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	wcerrors "webchan.dev/wcgit/internal/errors"
)

// lineModel is a single-line text input prompt model
type lineModel struct {
	input textinput.Model
	done  bool
	err   error
}

func newLineModel(prompt string) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()
	return lineModel{input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = wcerrors.ErrAborted
			m.done = true
			return m, tea.Quit
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done {
		if m.err != nil {
			return m.input.Prompt + "\n"
		}
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// confirmModel waits for Enter; Ctrl+C or Esc cancels
type confirmModel struct {
	prompt string
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = wcerrors.ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return m.prompt + "\n"
	}
	return m.prompt
}

// TeaPrompter prompts through bubbletea programs. It needs a terminal on both ends.
type TeaPrompter struct {
	format *Formatter
	in     io.Reader
	out    io.Writer
}

var _ Prompter = (*TeaPrompter)(nil)

// NewTeaPrompter creates a TeaPrompter
func NewTeaPrompter(format *Formatter, in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{format: format, in: in, out: out}
}

// Prompt implements Prompter
func (p *TeaPrompter) Prompt(ctx context.Context, message, ticketID, typeLabel string) (string, error) {
	final, err := p.run(ctx, newLineModel(p.format.PromptLine(message, ticketID, typeLabel)))
	if interrupted(err) {
		return "", wcerrors.ErrAborted
	}
	if err != nil {
		return "", err
	}

	m, ok := final.(lineModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.err != nil {
		return "", m.err
	}
	return m.input.Value(), nil
}

// Confirm implements Prompter
func (p *TeaPrompter) Confirm(ctx context.Context, message string) error {
	final, err := p.run(ctx, confirmModel{prompt: message})
	if interrupted(err) {
		return wcerrors.ErrCanceled
	}
	if err != nil {
		return err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	return m.err
}

func (p *TeaPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model,
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

// interrupted reports whether a program ended by context cancellation or SIGINT
func interrupted(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)
}
