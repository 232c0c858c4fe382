// Package gemini answers free-form chat input using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/booklog"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements booklog.Asker at compile time.
var _ booklog.Asker = (*Asker)(nil)

// Asker implements booklog.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
// A nil limiter disables rate limiting.
func NewAsker(client *genai.Client, model string, limiter *rate.Limiter) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model, limiter: limiter}
}

// NewLimiter returns the limiter used for interactive chat: one request per
// second with a small burst.
func NewLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(1), 3)
}

// Ask sends prompt to the model and returns the text of its reply.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", booklog.Errorf(booklog.EINVALID, "prompt required")
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	return ResponseText(result)
}

// ResponseText returns the reply text of result. A response without
// candidates is reported as ENOTFOUND.
func ResponseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", booklog.Errorf(booklog.EINTERNAL, "gemini returned nil result")
	}
	if len(result.Candidates) == 0 {
		return "", booklog.Errorf(booklog.ENOTFOUND, "gemini returned no candidates")
	}
	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are the assistant of BookLog, a personal reading log. Help with book recommendations and questions about books. Keep answers short.",
			}},
		},
		Temperature: &temp,
	}
}
