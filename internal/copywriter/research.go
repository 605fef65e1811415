package copywriter

import (
	"context"

	"website_copywriter/internal/copywriter/prompts"
)

// ResearchAgent produces an audience-insight narrative for the request.
// It runs exactly once per pipeline run.
type ResearchAgent struct {
	llm TextGenerator
}

func NewResearchAgent(llm TextGenerator) *ResearchAgent {
	return &ResearchAgent{llm: llm}
}

// AnalyzeAudience returns the service output verbatim. Errors propagate
// unwrapped; the pipeline is the single failure boundary.
func (a *ResearchAgent) AnalyzeAudience(ctx context.Context, req CopyRequest) (string, error) {
	userPrompt, systemPrompt := prompts.GetAudienceResearchPrompt(req.Product, req.TargetAudience, req.Industry)
	return a.llm.Generate(ctx, systemPrompt, userPrompt)
}
