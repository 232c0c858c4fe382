package mock

import (
	"context"

	"github.com/fwojciec/booklog"
)

var _ booklog.Asker = (*Asker)(nil)

// Asker is a mock implementation of booklog.Asker.
type Asker struct {
	AskFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	return a.AskFn(ctx, prompt)
}

var _ booklog.Replier = (*Replier)(nil)

// Replier is a mock implementation of booklog.Replier.
type Replier struct {
	ReplyFn func(ctx context.Context, input string) string
}

func (r *Replier) Reply(ctx context.Context, input string) string {
	return r.ReplyFn(ctx, input)
}
