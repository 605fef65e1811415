package copywriter

import (
	"context"

	"website_copywriter/internal/copywriter/prompts"
)

// StrategyAgent turns the research narrative into a content strategy shared
// by every section of the run.
type StrategyAgent struct {
	llm TextGenerator
}

func NewStrategyAgent(llm TextGenerator) *StrategyAgent {
	return &StrategyAgent{llm: llm}
}

func (a *StrategyAgent) CreateStrategy(ctx context.Context, research string, req CopyRequest) (string, error) {
	userPrompt, systemPrompt := prompts.GetContentStrategyPrompt(research, req.Product, req.Tone, req.JoinedSellingPoints())
	return a.llm.Generate(ctx, systemPrompt, userPrompt)
}
