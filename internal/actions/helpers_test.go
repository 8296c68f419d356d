package actions

import (
	"bytes"
	"context"
	"io"
	"testing"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
	"webchan.dev/wcgit/internal/git"
	"webchan.dev/wcgit/internal/output"
	"webchan.dev/wcgit/internal/runtime"
	"webchan.dev/wcgit/internal/tui"
)

// mockRunner records commands instead of running git
type mockRunner struct {
	isRepo    bool
	branch    string
	branchErr error
	runErr    error
	ran       []git.Command
}

func (m *mockRunner) IsRepository() bool { return m.isRepo }

func (m *mockRunner) CurrentBranch(_ context.Context) (string, error) {
	return m.branch, m.branchErr
}

func (m *mockRunner) Run(_ context.Context, cmd git.Command) error {
	m.ran = append(m.ran, cmd)
	return m.runErr
}

func (m *mockRunner) WorkingDir() string { return "/work" }

type promptCall struct {
	message   string
	ticketID  string
	typeLabel string
}

// scriptedPrompter answers prompts from a fixed list
type scriptedPrompter struct {
	answers    []string
	confirmErr error
	calls      []promptCall
	confirms   []string
}

func (p *scriptedPrompter) Prompt(_ context.Context, message, ticketID, typeLabel string) (string, error) {
	p.calls = append(p.calls, promptCall{message: message, ticketID: ticketID, typeLabel: typeLabel})
	if len(p.answers) == 0 {
		return "", wcerrors.ErrAborted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, message string) error {
	p.confirms = append(p.confirms, message)
	return p.confirmErr
}

func newTestContext(t *testing.T, runner git.Runner, prompter tui.Prompter) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	palette := tui.NewPalette(io.Discard, config.ColorNever)
	splog, err := output.NewSplogWithSettings(&out, palette, config.Settings{})
	if err != nil {
		t.Fatalf("failed to create splog: %v", err)
	}
	return &runtime.Context{
		Context:    context.Background(),
		Convention: config.DefaultConvention(),
		Git:        runner,
		Prompter:   prompter,
		Splog:      splog,
	}, &out
}
