package copywriter

import (
	"context"

	"website_copywriter/internal/copywriter/prompts"
)

// EditorAgent polishes a section draft. Its output replaces the draft
// outright as the section's final copy.
type EditorAgent struct {
	llm TextGenerator
}

func NewEditorAgent(llm TextGenerator) *EditorAgent {
	return &EditorAgent{llm: llm}
}

func (a *EditorAgent) ReviewCopy(ctx context.Context, draft string) (string, error) {
	userPrompt, systemPrompt := prompts.GetCopyReviewPrompt(draft)
	return a.llm.Generate(ctx, systemPrompt, userPrompt)
}
