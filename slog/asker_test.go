package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/booklog/mock"
	bookslog "github.com/fwojciec/booklog/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAsker_Ask(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Asker{
		AskFn: func(context.Context, string) (string, error) {
			return "Try Dune.", nil
		},
	}

	asker := bookslog.NewLoggingAsker(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	answer, err := asker.Ask(context.Background(), "suggest book")

	require.NoError(t, err)
	assert.Equal(t, "Try Dune.", answer)
	output := buf.String()
	assert.Contains(t, output, "msg=ask")
	assert.Contains(t, output, "prompt_bytes=12")
	assert.Contains(t, output, "answer_bytes=9")
}
