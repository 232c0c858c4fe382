package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/booklog"
	"github.com/fwojciec/booklog/chat"
)

// Compile-time interface verification.
var _ booklog.Replier = (*Replier)(nil)

// Replier wraps a booklog.Replier and counts replies by intent.
type Replier struct {
	next    booklog.Replier
	metrics *Metrics
}

// NewReplier creates a new Replier.
func NewReplier(next booklog.Replier, metrics *Metrics) *Replier {
	return &Replier{next: next, metrics: metrics}
}

// Reply delegates to the wrapped replier and records the classified intent
// and duration.
func (r *Replier) Reply(ctx context.Context, input string) string {
	start := time.Now()
	reply := r.next.Reply(ctx, input)
	r.metrics.observeReply(string(chat.Classify(input)), time.Since(start))
	return reply
}
