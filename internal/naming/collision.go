package naming

import (
	"fmt"
	"sync"
)

// CollisionResolver tracks names claimed by solids within one run and
// resolves duplicates by appending "_dupN". All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // name → solid id that owns it
	counters map[string]int    // requested name → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final name for id. If requested is unclaimed (or
// already owned by id) it is returned as-is; otherwise a "_dupN" variant.
func (cr *CollisionResolver) Resolve(id, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[requested]
	if !exists || owner == id {
		cr.owners[requested] = id
		return requested
	}

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}
	for {
		candidate := fmt.Sprintf("%s_dup%d", requested, counter)
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == id {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = id
			return candidate
		}
		counter++
	}
}

// stagePrefix names the temporary slots used to break swaps and chains.
const stagePrefix = "__stage"

// Step is one host rename. Staging steps move a solid to a temporary name;
// the assignment's final step then moves it on to Assignment.Name.
type Step struct {
	Assignment Assignment
	To         string
	Staging    bool
}

// Final reports whether s completes its assignment.
func (s Step) Final() bool { return !s.Staging }

// Stage orders assignments into host steps. live holds every name the host
// currently knows. When an assignment's target is held by another solid
// that is itself being renamed, the assignment is first moved to a free
// "__stage_NN" name and finished after every unstaged move, so swaps and
// chains never hit a taken name. Targets held by solids outside the plan
// are left for the host to reject.
func Stage(assignments []Assignment, live []string) []Step {
	taken := make(map[string]bool, len(live))
	for _, n := range live {
		taken[n] = true
	}
	moving := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if !a.Unchanged() {
			moving[a.ID] = true
		}
	}

	var staged, direct, deferred []Step
	slot := 0
	for _, a := range assignments {
		if a.Unchanged() || !moving[a.Name] {
			direct = append(direct, Step{Assignment: a, To: a.Name})
			continue
		}
		var tmp string
		for {
			slot++
			tmp = Seq(stagePrefix, slot)
			if !taken[tmp] {
				break
			}
		}
		taken[tmp] = true
		staged = append(staged, Step{Assignment: a, To: tmp, Staging: true})
		deferred = append(deferred, Step{Assignment: a, To: a.Name})
	}

	out := make([]Step, 0, len(staged)+len(direct)+len(deferred))
	out = append(out, staged...)
	out = append(out, direct...)
	return append(out, deferred...)
}
