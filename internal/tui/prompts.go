package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
)

// Prompter reads the values a helper collects from the user.
type Prompter interface {
	// Prompt shows message behind the optional ticket and type tags and returns
	// the line the user typed, without its line terminator. No trimming is done.
	Prompt(ctx context.Context, message, ticketID, typeLabel string) (string, error)
	// Confirm blocks until the user submits any line. An interrupt returns errors.ErrCanceled.
	Confirm(ctx context.Context, message string) error
}

// Formatter renders prompt lines for a convention
type Formatter struct {
	conv    config.Convention
	palette *Palette
}

// NewFormatter creates a Formatter
func NewFormatter(conv config.Convention, palette *Palette) *Formatter {
	return &Formatter{conv: conv, palette: palette}
}

// Tags renders the context tags: the ticket tag in gold first, then the type tag in green.
// Empty values produce no tag.
func (f *Formatter) Tags(ticketID, typeLabel string) []string {
	var tags []string
	if ticketID != "" {
		tags = append(tags, f.palette.Gold("["+f.conv.TicketKey(ticketID)+"]"))
	}
	if typeLabel != "" {
		tags = append(tags, f.palette.Green("["+typeLabel+"]"))
	}
	return tags
}

// PromptLine joins the tags and message with single spaces
func (f *Formatter) PromptLine(message, ticketID, typeLabel string) string {
	return strings.Join(append(f.Tags(ticketID, typeLabel), message), " ")
}

// LinePrompter reads plain lines. It is used when stdin is not a terminal.
// Interrupts are delivered through ctx.
type LinePrompter struct {
	format *Formatter
	in     *bufio.Reader
	out    io.Writer
}

var _ Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out
func NewLinePrompter(format *Formatter, in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		format: format,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Prompt implements Prompter. End of input or an interrupt aborts with errors.ErrAborted.
func (p *LinePrompter) Prompt(ctx context.Context, message, ticketID, typeLabel string) (string, error) {
	if _, err := fmt.Fprint(p.out, p.format.PromptLine(message, ticketID, typeLabel)); err != nil {
		return "", err
	}

	line, err := p.readLine(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return "", wcerrors.ErrAborted
	case err != nil:
		return "", err
	}
	return line, nil
}

// Confirm implements Prompter. End of input or an interrupt cancels.
func (p *LinePrompter) Confirm(ctx context.Context, message string) error {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return err
	}

	_, err := p.readLine(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return wcerrors.ErrCanceled
	case err != nil:
		return err
	}
	return nil
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line, or gives up when ctx is done.
// A final line without terminator is returned as-is.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	done := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		done <- lineResult{line: strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), err: err}
	}()

	select {
	case <-ctx.Done():
		// Move past the ^C echoed by the terminal
		_, _ = fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r := <-done:
		return r.line, r.err
	}
}
