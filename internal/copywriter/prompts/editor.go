package prompts

import "fmt"

// GetCopyReviewPrompt renders the editing prompt. The system role is fixed;
// only the draft under review varies.
func GetCopyReviewPrompt(draft string) (string, string) {
	systemPrompt := "You are an expert copy editor."

	template := `Review this website copy:
%s

Improve:
- Clarity and conciseness
- Persuasiveness
- Brand voice consistency
- Grammar and style`

	userPrompt := fmt.Sprintf(template, draft)
	return userPrompt, systemPrompt
}
