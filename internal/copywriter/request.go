package copywriter

import "strings"

// CopyRequest describes the product, audience, and stylistic parameters
// for one generation run. It is passed by value through the pipeline and
// never mutated by any stage.
type CopyRequest struct {
	Product             string
	Tone                string
	Length              string
	Industry            string
	TargetAudience      string
	BrandVoice          string
	UniqueSellingPoints []string
}

// JoinedSellingPoints renders the USPs as a single comma-separated string
// for prompt content. A nil or empty slice yields "".
func (r CopyRequest) JoinedSellingPoints() string {
	return strings.Join(r.UniqueSellingPoints, ", ")
}

// Validate checks the required fields. It runs before any external call so
// an incomplete request never costs a service round trip.
func (r CopyRequest) Validate() error {
	if strings.TrimSpace(r.Product) == "" {
		return &ValidationError{Field: "product", Message: "product is required"}
	}
	if strings.TrimSpace(r.TargetAudience) == "" {
		return &ValidationError{Field: "targetAudience", Message: "target audience is required"}
	}
	return nil
}
