package booklog

import "context"

// Replier answers one line of chat input with one line of text.
type Replier interface {
	Reply(ctx context.Context, input string) string
}
