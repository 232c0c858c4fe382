package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/booklog"
)

var _ booklog.Replier = (*Bot)(nil)

// Bot answers chat lines: recognized commands are executed against the
// catalog, everything else is forwarded to Asker.
type Bot struct {
	Executor *Executor

	// Asker answers unrecognized input. A nil Asker means the model is
	// not configured yet.
	Asker booklog.Asker

	Logger *slog.Logger
}

// NewBot creates a Bot over catalog. asker may be nil.
func NewBot(catalog booklog.Catalog, asker booklog.Asker, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bot{
		Executor: NewExecutor(catalog),
		Asker:    asker,
		Logger:   logger,
	}
}

// Reply returns the bot's answer to input. Blank input gets an empty reply.
func (b *Bot) Reply(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	cmd := Interpret(input)
	if reply, ok := b.Executor.Execute(ctx, cmd); ok {
		return reply
	}
	return b.ask(ctx, input)
}

// ask forwards input to the model and returns its reply verbatim.
func (b *Bot) ask(ctx context.Context, input string) string {
	if b.Asker == nil {
		return notReadyText
	}

	answer, err := b.Asker.Ask(ctx, input)
	if booklog.ErrorCode(err) == booklog.ENOTFOUND {
		return notUnderstoodText
	} else if err != nil {
		b.Logger.Error("error calling AI model", "err", err)
		return aiUnavailableText
	}
	return answer
}
