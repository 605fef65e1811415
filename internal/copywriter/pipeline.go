// Package copywriter implements the four-stage website copy pipeline:
// audience research, content strategy, per-section drafting, and editing.
// All four stages are templated calls to an injected TextGenerator; the
// Pipeline owns sequencing and is the single failure boundary.
package copywriter

import "context"

// Pipeline composes the four agents into one generation run. Research and
// strategy run once per run; drafting and editing run once per requested
// section, strictly in request order.
type Pipeline struct {
	research    *ResearchAgent
	strategy    *StrategyAgent
	copywriting *CopywritingAgent
	editor      *EditorAgent
}

// NewPipeline builds a pipeline whose agents all share the given generator.
func NewPipeline(llm TextGenerator) *Pipeline {
	return &Pipeline{
		research:    NewResearchAgent(llm),
		strategy:    NewStrategyAgent(llm),
		copywriting: NewCopywritingAgent(llm),
		editor:      NewEditorAgent(llm),
	}
}

// Generate runs the full pipeline for the request and returns the final
// copy per section, keyed and ordered by the sections slice. Any stage
// failure aborts the run: no partial result is ever returned, and the
// underlying error is wrapped exactly once in a *PipelineError.
//
// An empty sections slice is rejected up front, like a missing required
// field, so a run never spends the research and strategy calls with no
// section to write.
func (p *Pipeline) Generate(ctx context.Context, req CopyRequest, sections []string) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, &ValidationError{Field: "sections", Message: "at least one section is required"}
	}

	research, err := p.research.AnalyzeAudience(ctx, req)
	if err != nil {
		return nil, &PipelineError{Stage: StageResearch, Err: err}
	}

	strategy, err := p.strategy.CreateStrategy(ctx, research, req)
	if err != nil {
		return nil, &PipelineError{Stage: StageStrategy, Err: err}
	}

	result := NewResult()
	for _, section := range sections {
		draft, err := p.copywriting.WriteSectionCopy(ctx, strategy, section, req)
		if err != nil {
			return nil, &PipelineError{Stage: StageCopywriting, Section: section, Err: err}
		}

		final, err := p.editor.ReviewCopy(ctx, draft)
		if err != nil {
			return nil, &PipelineError{Stage: StageEditing, Section: section, Err: err}
		}

		result.Set(section, final)
	}

	return result, nil
}
