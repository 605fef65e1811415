// Package prompts holds the prompt templates for every pipeline stage as
// pure functions from stage parameters to the (user, system) message pair
// sent to the model. Keeping them free of any client dependency lets tests
// assert on the exact rendered prompts without touching the network.
package prompts

import "fmt"

// GetAudienceResearchPrompt renders the market-research prompt. The system
// role is parameterized by industry.
func GetAudienceResearchPrompt(product, audience, industry string) (string, string) {
	systemPrompt := fmt.Sprintf("You are an expert market researcher specializing in %s.", industry)

	template := `Product: %s
Target Audience: %s
Industry: %s

Provide detailed insights about:
1. Demographics and psychographics
2. Pain points and challenges
3. Motivations and goals
4. Online behavior and preferences
5. Purchase decision factors`

	userPrompt := fmt.Sprintf(template, product, audience, industry)
	return userPrompt, systemPrompt
}
