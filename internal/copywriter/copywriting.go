package copywriter

import (
	"context"

	"website_copywriter/internal/copywriter/prompts"
)

// CopywritingAgent drafts the copy for one website section. Each call is
// independent: sections share only the strategy text and the read-only
// request.
type CopywritingAgent struct {
	llm TextGenerator
}

func NewCopywritingAgent(llm TextGenerator) *CopywritingAgent {
	return &CopywritingAgent{llm: llm}
}

func (a *CopywritingAgent) WriteSectionCopy(ctx context.Context, strategy, section string, req CopyRequest) (string, error) {
	userPrompt, systemPrompt := prompts.GetSectionCopyPrompt(
		strategy,
		section,
		req.Product,
		req.BrandVoice,
		req.JoinedSellingPoints(),
		req.Tone,
		req.Length,
	)
	return a.llm.Generate(ctx, systemPrompt, userPrompt)
}
