package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/booklog"
)

// Ensure LoggingAsker implements booklog.Asker.
var _ booklog.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   booklog.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next booklog.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs prompt and answer sizes.
func (a *LoggingAsker) Ask(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"prompt_bytes", len(prompt),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, prompt)
}
