package copywriter

import "context"

// TextGenerator abstracts the external text-generation service so agents can
// run against the real client or a test double. Implementations may apply
// their own bounded retry policy; callers observe only text or an error.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
