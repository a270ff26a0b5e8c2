package pipeline

import (
	"github.com/google/uuid"

	"github.com/backmassage/solidname/internal/apply"
)

// Failure is one assignment that neither rename path could realise.
type Failure struct {
	ID     string `yaml:"id"`
	Target string `yaml:"target"`
	Reason string `yaml:"reason"`
}

// RunResult tracks aggregate counters across a run.
type RunResult struct {
	RunID uuid.UUID

	Seen               int // solids in the inventory (or children in grouped mode)
	Degraded           int // solids whose box query failed
	Attempted          int // assignments that reached the host
	Renamed            int
	RenamedViaFallback int
	Unchanged          int
	Planned            int // dry run only
	Skipped            int // not reached before cancellation
	Failures           []Failure

	Interrupted bool
	Attempts    []apply.Attempt
}

func newRunResult() *RunResult {
	return &RunResult{RunID: uuid.New()}
}

// TotalRenamed counts solids that now carry their new name.
func (r *RunResult) TotalRenamed() int {
	return r.Renamed + r.RenamedViaFallback
}

func (r *RunResult) record(res apply.Result) {
	r.Interrupted = r.Interrupted || res.Interrupted
	for _, a := range res.Attempts {
		r.Attempts = append(r.Attempts, a)
		switch a.Outcome {
		case apply.OutcomeUnchanged:
			r.Unchanged++
		case apply.OutcomeRenamed:
			r.Attempted++
			r.Renamed++
		case apply.OutcomeRenamedViaFallback:
			r.Attempted++
			r.RenamedViaFallback++
		case apply.OutcomeFailed:
			r.Attempted++
			r.Failures = append(r.Failures, Failure{
				ID:     a.Assignment.ID,
				Target: a.Assignment.Name,
				Reason: a.Err().Error(),
			})
		case apply.OutcomePlanned:
			r.Planned++
		case apply.OutcomeSkipped:
			r.Skipped++
		}
	}
}
