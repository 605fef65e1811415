package prompts

import "fmt"

// GetContentStrategyPrompt renders the content-strategy prompt. The system
// role is parameterized by tone; usps is the pre-joined selling point list.
func GetContentStrategyPrompt(research, product, tone, usps string) (string, string) {
	systemPrompt := fmt.Sprintf("You are a content strategist specializing in %s copy.", tone)

	template := `Research: %s
Product: %s
Tone: %s
USPs: %s

Create a content strategy with:
1. Key messages and themes
2. Tone guidelines
3. Section priorities
4. Conversion goals`

	userPrompt := fmt.Sprintf(template, research, product, tone, usps)
	return userPrompt, systemPrompt
}
