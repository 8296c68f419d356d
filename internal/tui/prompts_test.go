package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"webchan.dev/wcgit/internal/config"
	wcerrors "webchan.dev/wcgit/internal/errors"
)

func plainFormatter() *Formatter {
	return NewFormatter(config.DefaultConvention(), NewPalette(io.Discard, config.ColorNever))
}

func TestPalette(t *testing.T) {
	t.Parallel()

	t.Run("always emits bright ANSI colors", func(t *testing.T) {
		t.Parallel()
		p := NewPalette(&bytes.Buffer{}, config.ColorAlways)
		require.Equal(t, "\x1b[91merr\x1b[0m", p.Red("err"))
		require.Equal(t, "\x1b[92mok\x1b[0m", p.Green("ok"))
		require.Equal(t, "\x1b[93mid\x1b[0m", p.Gold("id"))
	})

	t.Run("never emits plain text", func(t *testing.T) {
		t.Parallel()
		p := NewPalette(&bytes.Buffer{}, config.ColorNever)
		require.Equal(t, "err", p.Red("err"))
		require.Equal(t, "ok", p.Green("ok"))
	})

	t.Run("multi-line text is not padded", func(t *testing.T) {
		t.Parallel()
		p := NewPalette(&bytes.Buffer{}, config.ColorNever)
		require.Equal(t, "short\na much longer line", p.Red("short\na much longer line"))
	})
}

func TestFormatterPromptLine(t *testing.T) {
	t.Parallel()

	f := plainFormatter()

	tests := []struct {
		name      string
		ticketID  string
		typeLabel string
		expected  string
	}{
		{
			name:     "no tags",
			expected: "Enter WEBCHAN ID: ",
		},
		{
			name:     "ticket tag only",
			ticketID: "42",
			expected: "[WEBCHAN-42] Enter WEBCHAN ID: ",
		},
		{
			name:      "ticket tag before type tag",
			ticketID:  "42",
			typeLabel: "feat",
			expected:  "[WEBCHAN-42] [feat] Enter WEBCHAN ID: ",
		},
		{
			name:      "type tag only",
			typeLabel: "feature",
			expected:  "[feature] Enter WEBCHAN ID: ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, f.PromptLine("Enter WEBCHAN ID: ", tt.ticketID, tt.typeLabel))
		})
	}
}

func TestFormatterTagsColored(t *testing.T) {
	t.Parallel()

	f := NewFormatter(config.DefaultConvention(), NewPalette(&bytes.Buffer{}, config.ColorAlways))
	tags := f.Tags("7", "fix")
	require.Equal(t, []string{"\x1b[93m[WEBCHAN-7]\x1b[0m", "\x1b[92m[fix]\x1b[0m"}, tags)
}

func TestLinePrompterPrompt(t *testing.T) {
	t.Parallel()

	t.Run("returns raw line without terminator", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		p := NewLinePrompter(plainFormatter(), strings.NewReader("  Feature \r\nnext\n"), &out)

		value, err := p.Prompt(context.Background(), "Branch type: ", "4521", "")
		require.NoError(t, err)
		require.Equal(t, "  Feature ", value)
		require.Equal(t, "[WEBCHAN-4521] Branch type: ", out.String())

		value, err = p.Prompt(context.Background(), "Next: ", "", "")
		require.NoError(t, err)
		require.Equal(t, "next", value)
	})

	t.Run("final line without newline", func(t *testing.T) {
		t.Parallel()
		p := NewLinePrompter(plainFormatter(), strings.NewReader("last"), io.Discard)

		value, err := p.Prompt(context.Background(), "Q: ", "", "")
		require.NoError(t, err)
		require.Equal(t, "last", value)
	})

	t.Run("end of input aborts", func(t *testing.T) {
		t.Parallel()
		p := NewLinePrompter(plainFormatter(), strings.NewReader(""), io.Discard)

		_, err := p.Prompt(context.Background(), "Q: ", "", "")
		require.ErrorIs(t, err, wcerrors.ErrAborted)
	})
}

func TestLinePrompterConfirm(t *testing.T) {
	t.Parallel()

	t.Run("any line confirms", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		p := NewLinePrompter(plainFormatter(), strings.NewReader("whatever\n"), &out)

		require.NoError(t, p.Confirm(context.Background(), "Press Enter..."))
		require.Equal(t, "Press Enter...", out.String())
	})

	t.Run("empty line confirms", func(t *testing.T) {
		t.Parallel()
		p := NewLinePrompter(plainFormatter(), strings.NewReader("\n"), io.Discard)
		require.NoError(t, p.Confirm(context.Background(), "Press Enter..."))
	})

	t.Run("interrupt cancels", func(t *testing.T) {
		t.Parallel()
		// The reader never delivers a line, so only the context can end the wait
		reader, writer := io.Pipe()
		defer writer.Close()
		p := NewLinePrompter(plainFormatter(), reader, io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, p.Confirm(ctx, "Press Enter..."), wcerrors.ErrCanceled)
	})

	t.Run("end of input cancels", func(t *testing.T) {
		t.Parallel()
		p := NewLinePrompter(plainFormatter(), strings.NewReader(""), io.Discard)
		require.ErrorIs(t, p.Confirm(context.Background(), "Press Enter..."), wcerrors.ErrCanceled)
	})
}

func TestNewPrompter(t *testing.T) {
	t.Parallel()

	f := plainFormatter()
	require.IsType(t, &TeaPrompter{}, NewPrompter(f, strings.NewReader(""), io.Discard, true))
	require.IsType(t, &LinePrompter{}, NewPrompter(f, strings.NewReader(""), io.Discard, false))
}
