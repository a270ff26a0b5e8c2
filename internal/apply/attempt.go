package apply

import "github.com/backmassage/solidname/internal/naming"

// Outcome is the result of realising one assignment.
type Outcome int

const (
	OutcomeUnchanged          Outcome = iota // Name already matched; no host call.
	OutcomeRenamed                           // Primary path succeeded.
	OutcomeRenamedViaFallback                // Primary rejected, fallback succeeded.
	OutcomeFailed                            // Both paths rejected.
	OutcomePlanned                           // Dry run: would rename.
	OutcomeSkipped                           // Not reached (run interrupted).
)

var outcomeNames = map[Outcome]string{
	OutcomeUnchanged:          "unchanged",
	OutcomeRenamed:            "renamed",
	OutcomeRenamedViaFallback: "renamed-fallback",
	OutcomeFailed:             "failed",
	OutcomePlanned:            "planned",
	OutcomeSkipped:            "skipped",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// MarshalText lets outcomes appear by name in YAML reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Renamed reports whether the solid now carries its new name.
func (o Outcome) Renamed() bool {
	return o == OutcomeRenamed || o == OutcomeRenamedViaFallback
}

// pathResult is the outcome of one host rename through the two paths.
type pathResult struct {
	outcome     Outcome
	primaryErr  error
	fallbackErr error
}

// Attempt is the per-assignment record. PrimaryErr is set whenever the
// primary path was rejected; FallbackErr only when the fallback was too.
type Attempt struct {
	Assignment naming.Assignment
	Outcome    Outcome
	// Staged is the temporary name used to break a swap or chain, if any.
	Staged      string
	PrimaryErr  error
	FallbackErr error
}

// Err returns the failure for a failed attempt, or nil.
func (a Attempt) Err() error {
	if a.Outcome != OutcomeFailed {
		return nil
	}
	return &RenameFallbackError{
		ID:       a.Assignment.ID,
		Target:   a.Assignment.Name,
		Primary:  a.PrimaryErr,
		Fallback: a.FallbackErr,
	}
}
