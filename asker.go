package booklog

import "context"

// Asker answers chat input the assistant's rules do not recognize.
type Asker interface {
	// Ask returns the model's reply to prompt.
	// Returns ENOTFOUND if the model produced no candidate answer.
	Ask(ctx context.Context, prompt string) (string, error)
}
