package prompts

import "fmt"

// GetSectionCopyPrompt renders the drafting prompt for one website section.
// The system role is parameterized by the requested length and tone, which
// also appear in the body-copy instruction.
func GetSectionCopyPrompt(strategy, section, product, brandVoice, usps, tone, length string) (string, string) {
	systemPrompt := fmt.Sprintf("Expert copywriter creating %s %s content.", length, tone)

	template := `Strategy: %s
Section: %s
Product: %s
Brand Voice: %s
USPs: %s

Write compelling copy focusing on:
- Clear value proposition
- Engaging headlines
- %s body copy of %s length
- Strategic CTAs`

	userPrompt := fmt.Sprintf(template, strategy, section, product, brandVoice, usps, tone, length)
	return userPrompt, systemPrompt
}
