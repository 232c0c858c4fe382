package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	main "github.com/fwojciec/booklog/cmd/booklog"
	"github.com/fwojciec/booklog/mock"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter returns lines in order, then err.
type scriptedPrompter struct {
	lines   []string
	err     error
	history []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.lines) == 0 {
		return "", p.err
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func echoBot(got *[]string) *mock.Replier {
	return &mock.Replier{
		ReplyFn: func(_ context.Context, input string) string {
			*got = append(*got, input)
			return "reply to " + input
		},
	}
}

func TestChatCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("replies to each line until EOF", func(t *testing.T) {
		t.Parallel()

		var got []string
		prompter := &scriptedPrompter{lines: []string{"help", "  ", "delete book Dune"}, err: io.EOF}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Bot:      echoBot(&got),
			Prompter: prompter,
		}

		err := (&main.ChatCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"help", "delete book Dune"}, got)
		assert.Equal(t, []string{"help", "delete book Dune"}, prompter.history)
		assert.Contains(t, stdout.String(), "reply to help\n")
		assert.Contains(t, stdout.String(), "reply to delete book Dune\n")
	})

	t.Run("stops at exit or quit", func(t *testing.T) {
		t.Parallel()

		for _, word := range []string{"exit", "QUIT"} {
			var got []string
			prompter := &scriptedPrompter{lines: []string{word, "help"}, err: io.EOF}
			deps := &main.Dependencies{
				Ctx:      context.Background(),
				Stdout:   &bytes.Buffer{},
				Stderr:   &bytes.Buffer{},
				Bot:      echoBot(&got),
				Prompter: prompter,
			}

			require.NoError(t, (&main.ChatCmd{}).Run(deps))
			assert.Empty(t, got, word)
		}
	})

	t.Run("stops on Ctrl-C", func(t *testing.T) {
		t.Parallel()

		var got []string
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Bot:      echoBot(&got),
			Prompter: &scriptedPrompter{err: liner.ErrPromptAborted},
		}

		require.NoError(t, (&main.ChatCmd{}).Run(deps))
	})

	t.Run("returns prompt errors", func(t *testing.T) {
		t.Parallel()

		var got []string
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Bot:      echoBot(&got),
			Prompter: &scriptedPrompter{err: errors.New("terminal gone")},
		}

		err := (&main.ChatCmd{}).Run(deps)

		require.Error(t, err)
	})
}
