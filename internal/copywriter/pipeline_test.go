package copywriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type generatorCall struct {
	system string
	user   string
}

// scriptedGenerator records every call and answers with "output-<n>", or
// fails on a chosen call number.
type scriptedGenerator struct {
	calls   []generatorCall
	failOn  int // 1-based call number to fail on; 0 means never
	failErr error
}

func (g *scriptedGenerator) Generate(_ context.Context, system, user string) (string, error) {
	g.calls = append(g.calls, generatorCall{system: system, user: user})
	if g.failOn == len(g.calls) {
		return "", g.failErr
	}
	return fmt.Sprintf("output-%d", len(g.calls)), nil
}

func foodDeliveryRequest() CopyRequest {
	return CopyRequest{
		Product:             "food delivery website",
		Tone:                "informative",
		Length:              "short",
		Industry:            "food delivery",
		TargetAudience:      "young urban professionals",
		BrandVoice:          "friendly and reliable",
		UniqueSellingPoints: []string{"30-minute delivery", "local restaurants", "no minimum order"},
	}
}

func TestGenerateFullScenario(t *testing.T) {
	gen := &scriptedGenerator{}
	p := NewPipeline(gen)
	sections := []string{"homepage", "about", "services", "contact"}

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), sections)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(gen.calls) != 10 {
		t.Fatalf("expected 10 service calls, got %d", len(gen.calls))
	}

	// Call order: research, strategy, then draft+edit per section.
	if !strings.Contains(gen.calls[0].system, "market researcher specializing in food delivery") {
		t.Errorf("call 1 should be research, system prompt: %q", gen.calls[0].system)
	}
	if !strings.Contains(gen.calls[1].system, "content strategist specializing in informative copy") {
		t.Errorf("call 2 should be strategy, system prompt: %q", gen.calls[1].system)
	}
	for i, section := range sections {
		draft := gen.calls[2+2*i]
		edit := gen.calls[3+2*i]
		if !strings.Contains(draft.system, "Expert copywriter creating short informative content") {
			t.Errorf("call %d should be copywriting, system prompt: %q", 3+2*i, draft.system)
		}
		if !strings.Contains(draft.user, "Section: "+section) {
			t.Errorf("copywriting call for %q missing section, user prompt: %q", section, draft.user)
		}
		if !strings.Contains(edit.system, "expert copy editor") {
			t.Errorf("call %d should be editing, system prompt: %q", 4+2*i, edit.system)
		}
	}

	// Strategy consumes the research output; drafting consumes the strategy.
	if !strings.Contains(gen.calls[1].user, "output-1") {
		t.Errorf("strategy prompt should embed research output, got: %q", gen.calls[1].user)
	}
	for i := range sections {
		if !strings.Contains(gen.calls[2+2*i].user, "output-2") {
			t.Errorf("copywriting prompt for section %d should embed strategy output", i)
		}
	}

	// Each editor call consumes exactly that section's draft.
	for i, section := range sections {
		draftOutput := fmt.Sprintf("output-%d", 3+2*i)
		if !strings.Contains(gen.calls[3+2*i].user, draftOutput) {
			t.Errorf("editor input for %q should be draft %q, got: %q", section, draftOutput, gen.calls[3+2*i].user)
		}
	}

	// Result: one entry per section, request order, edited copy wins.
	got := result.Sections()
	if len(got) != len(sections) {
		t.Fatalf("expected %d sections, got %d", len(sections), len(got))
	}
	for i, section := range sections {
		if got[i] != section {
			t.Errorf("section %d: expected %q, got %q", i, section, got[i])
		}
		text, ok := result.Get(section)
		if !ok || text == "" {
			t.Fatalf("missing copy for section %q", section)
		}
		want := fmt.Sprintf("output-%d", 4+2*i)
		if text != want {
			t.Errorf("copy for %q: expected editor output %q, got %q", section, want, text)
		}
	}
}

func TestGenerateResearchAndStrategyRunOnce(t *testing.T) {
	gen := &scriptedGenerator{}
	p := NewPipeline(gen)

	_, err := p.Generate(context.Background(), foodDeliveryRequest(), []string{"homepage", "about"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var research, strategy int
	for _, call := range gen.calls {
		if strings.Contains(call.system, "market researcher") {
			research++
		}
		if strings.Contains(call.system, "content strategist") {
			strategy++
		}
	}
	if research != 1 || strategy != 1 {
		t.Fatalf("expected 1 research and 1 strategy call, got %d and %d", research, strategy)
	}
}

func TestGenerateResearchFailureAbortsRun(t *testing.T) {
	cause := errors.New("503 service unavailable")
	gen := &scriptedGenerator{failOn: 1, failErr: cause}
	p := NewPipeline(gen)

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), []string{"homepage"})
	if result != nil {
		t.Fatalf("expected no result on failure, got %d sections", result.Len())
	}

	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected *PipelineError, got %T: %v", err, err)
	}
	if pipeErr.Stage != StageResearch || pipeErr.Section != "" {
		t.Errorf("expected research failure with no section, got stage %q section %q", pipeErr.Stage, pipeErr.Section)
	}
	if !errors.Is(err, cause) {
		t.Errorf("PipelineError should unwrap to the cause")
	}
	if len(gen.calls) != 1 {
		t.Fatalf("expected run to stop after 1 call, got %d", len(gen.calls))
	}
}

func TestGenerateStrategyFailureAbortsRun(t *testing.T) {
	cause := errors.New("quota exceeded")
	gen := &scriptedGenerator{failOn: 2, failErr: cause}
	p := NewPipeline(gen)

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), []string{"homepage", "about"})
	if result != nil {
		t.Fatalf("expected no result on failure, got %d sections", result.Len())
	}

	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected *PipelineError, got %T: %v", err, err)
	}
	if pipeErr.Stage != StageStrategy {
		t.Errorf("expected failure at strategy stage, got %q", pipeErr.Stage)
	}
	if pipeErr.Section != "" {
		t.Errorf("strategy failure should carry no section, got %q", pipeErr.Section)
	}
	if !errors.Is(err, cause) {
		t.Errorf("PipelineError should unwrap to the cause")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error message should include the cause, got %q", err.Error())
	}

	// Drafting and editing were never invoked.
	if len(gen.calls) != 2 {
		t.Fatalf("expected run to stop after 2 calls, got %d", len(gen.calls))
	}
}

func TestGenerateDraftFailureAbortsRun(t *testing.T) {
	cause := errors.New("rate limit exceeded")
	gen := &scriptedGenerator{failOn: 3, failErr: cause} // drafting of the first section
	p := NewPipeline(gen)

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), []string{"homepage", "about"})
	if result != nil {
		t.Fatalf("expected no result on failure, got %d sections", result.Len())
	}

	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected *PipelineError, got %T: %v", err, err)
	}
	if pipeErr.Stage != StageCopywriting || pipeErr.Section != "homepage" {
		t.Errorf("expected copywriting failure for section homepage, got stage %q section %q", pipeErr.Stage, pipeErr.Section)
	}
	if !errors.Is(err, cause) {
		t.Errorf("PipelineError should unwrap to the cause")
	}
	if len(gen.calls) != 3 {
		t.Fatalf("expected run to stop after 3 calls, got %d", len(gen.calls))
	}
}

func TestGenerateEditFailureAbortsRun(t *testing.T) {
	cause := errors.New("connection reset by peer")
	gen := &scriptedGenerator{failOn: 6, failErr: cause} // editing of the second section
	p := NewPipeline(gen)

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), []string{"homepage", "about", "contact"})
	if result != nil {
		t.Fatalf("expected no result on failure, got %d sections", result.Len())
	}

	var pipeErr *PipelineError
	if !errors.As(err, &pipeErr) {
		t.Fatalf("expected *PipelineError, got %T: %v", err, err)
	}
	if pipeErr.Stage != StageEditing || pipeErr.Section != "about" {
		t.Errorf("expected editing failure for section about, got stage %q section %q", pipeErr.Stage, pipeErr.Section)
	}
	if len(gen.calls) != 6 {
		t.Fatalf("expected run to stop after 6 calls, got %d", len(gen.calls))
	}
}

func TestGenerateRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CopyRequest)
		sections []string
		field    string
	}{
		{
			name:     "empty product",
			mutate:   func(r *CopyRequest) { r.Product = "" },
			sections: []string{"homepage"},
			field:    "product",
		},
		{
			name:     "empty target audience",
			mutate:   func(r *CopyRequest) { r.TargetAudience = "  " },
			sections: []string{"homepage"},
			field:    "targetAudience",
		},
		{
			name:     "no sections",
			mutate:   func(r *CopyRequest) {},
			sections: nil,
			field:    "sections",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &scriptedGenerator{}
			p := NewPipeline(gen)
			req := foodDeliveryRequest()
			tt.mutate(&req)

			result, err := p.Generate(context.Background(), req, tt.sections)
			if result != nil {
				t.Fatalf("expected no result, got %d sections", result.Len())
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, validationErr.Field)
			}
			if len(gen.calls) != 0 {
				t.Fatalf("validation must reject before any service call, got %d calls", len(gen.calls))
			}
		})
	}
}

func TestGenerateDuplicateSectionsLastWriteWins(t *testing.T) {
	gen := &scriptedGenerator{}
	p := NewPipeline(gen)
	sections := []string{"homepage", "about", "homepage"}

	result, err := p.Generate(context.Background(), foodDeliveryRequest(), sections)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Every occurrence still runs draft+edit: 2 + 2*3 calls.
	if len(gen.calls) != 8 {
		t.Fatalf("expected 8 service calls, got %d", len(gen.calls))
	}

	got := result.Sections()
	if len(got) != 2 || got[0] != "homepage" || got[1] != "about" {
		t.Fatalf("expected deduplicated order [homepage about], got %v", got)
	}

	// The repeat of homepage is calls 7 (draft) and 8 (edit).
	text, _ := result.Get("homepage")
	if text != "output-8" {
		t.Errorf("expected last edit to win for homepage, got %q", text)
	}
}
