// Package apply realises name assignments on the host. Each rename tries
// the primary path first and falls back to editing the name property; a
// double rejection is recorded against the solid and the run continues.
package apply

import (
	"context"

	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/logging"
	"github.com/backmassage/solidname/internal/naming"
)

// Applier performs the host calls for a staged plan.
type Applier struct {
	store  host.Store
	log    *logging.Logger
	dryRun bool
}

// New returns an Applier. In dry-run mode no host call is made and every
// assignment that would change is reported as [OutcomePlanned].
func New(store host.Store, log *logging.Logger, dryRun bool) *Applier {
	return &Applier{store: store, log: log, dryRun: dryRun}
}

// Result lists one attempt per assignment, in plan order.
type Result struct {
	Attempts []Attempt
	// Interrupted is set when ctx was cancelled before the last step;
	// the remaining assignments are reported as [OutcomeSkipped]. Solids
	// already moved to a staging name are moved back first; one that
	// cannot be moved back is reported as [OutcomeFailed].
	Interrupted bool
}

// Apply walks steps in order. ctx is checked between steps; a cancelled
// run stops cleanly without leaving a host call half-issued.
func (ap *Applier) Apply(ctx context.Context, steps []naming.Step) Result {
	var (
		order   []string
		byID    = make(map[string]*Attempt)
		current = make(map[string]string) // assignment id -> live host name
		done    = make(map[string]bool)
		res     Result
	)
	for _, st := range steps {
		id := st.Assignment.ID
		if _, ok := byID[id]; !ok {
			order = append(order, id)
			byID[id] = &Attempt{Assignment: st.Assignment, Outcome: OutcomeSkipped}
			current[id] = id
		}
	}

	for _, st := range steps {
		if ctx.Err() != nil {
			res.Interrupted = true
			break
		}
		id := st.Assignment.ID
		if done[id] {
			continue
		}
		att := byID[id]
		from := current[id]

		switch {
		case from == st.To:
			if st.Final() {
				att.Outcome = OutcomeUnchanged
				done[id] = true
			}
			continue
		case ap.dryRun:
			if st.Final() {
				att.Outcome = OutcomePlanned
				done[id] = true
				ap.log.Info("%s -> %s (dry run)", id, st.To)
			}
			continue
		}

		pr := ap.rename(from, st.To)
		if pr.outcome == OutcomeFailed {
			att.Outcome = OutcomeFailed
			att.PrimaryErr, att.FallbackErr = pr.primaryErr, pr.fallbackErr
			done[id] = true
			ap.log.Warn("rename failed for %s: %v", id, att.Err())
			if from != id {
				ap.restore(id, from)
			}
			continue
		}

		current[id] = st.To
		if st.Staging {
			att.Staged = st.To
			continue
		}

		// The outcome reflects the final move only.
		att.PrimaryErr = pr.primaryErr
		att.Outcome = pr.outcome
		done[id] = true
		ap.logRenamed(*att)
	}

	if res.Interrupted {
		for _, id := range order {
			if done[id] || current[id] == id {
				continue
			}
			att := byID[id]
			if pr := ap.restore(id, current[id]); pr.outcome == OutcomeFailed {
				att.Outcome = OutcomeFailed
				att.PrimaryErr, att.FallbackErr = pr.primaryErr, pr.fallbackErr
				continue
			}
			att.Staged = ""
		}
	}

	res.Attempts = make([]Attempt, 0, len(order))
	for _, id := range order {
		res.Attempts = append(res.Attempts, *byID[id])
	}
	return res
}

// rename issues one rename through the primary path, then the fallback.
func (ap *Applier) rename(from, to string) pathResult {
	err := ap.store.Rename(from, to)
	if err == nil {
		return pathResult{outcome: OutcomeRenamed}
	}
	primary := &RenameError{ID: from, Target: to, Err: err}
	if ferr := ap.store.ChangeNameProperty(from, to); ferr != nil {
		return pathResult{outcome: OutcomeFailed, primaryErr: primary, fallbackErr: ferr}
	}
	return pathResult{outcome: OutcomeRenamedViaFallback, primaryErr: primary}
}

// restore moves a solid stranded on a staging name back to its original
// name, if that name is still free.
func (ap *Applier) restore(id, staged string) pathResult {
	pr := ap.rename(staged, id)
	if pr.outcome == OutcomeFailed {
		ap.log.Warn("%s left as %s", id, staged)
	}
	return pr
}

func (ap *Applier) logRenamed(a Attempt) {
	suffix := ""
	if a.Outcome == OutcomeRenamedViaFallback {
		suffix = " (fallback)"
	}
	ap.log.Success("%s -> %s%s", a.Assignment.ID, a.Assignment.Name, suffix)
}
