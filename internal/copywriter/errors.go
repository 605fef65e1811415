package copywriter

import "fmt"

// ValidationError reports a request that was rejected before any service
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid copy request: %s", e.Message)
}

// Stage names used in PipelineError.
const (
	StageResearch    = "research"
	StageStrategy    = "strategy"
	StageCopywriting = "copywriting"
	StageEditing     = "editing"
)

// PipelineError wraps the single failure that aborted a generation run.
// Stage names the stage that failed; Section is set only for the per-section
// stages (copywriting, editing).
type PipelineError struct {
	Stage   string
	Section string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("copy generation failed: %s stage for section %q: %v", e.Stage, e.Section, e.Err)
	}
	return fmt.Sprintf("copy generation failed: %s stage: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
