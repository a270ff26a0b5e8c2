// Package inventory enumerates the solids of a design and computes one
// feature record per solid from its bounding box. It never mutates the
// host.
package inventory

import (
	"errors"
	"fmt"

	"github.com/backmassage/solidname/internal/host"
)

// ErrEnumerate is the only fatal inventory error: without a list of solids
// no further work is possible.
var ErrEnumerate = errors.New("cannot enumerate solids")

// GeometryQueryError records a failed bounding-box query. It is recovered
// locally by substituting a degenerate record.
type GeometryQueryError struct {
	ID  string
	Err error
}

func (e *GeometryQueryError) Error() string {
	return fmt.Sprintf("bounding box of %q: %v", e.ID, e.Err)
}

func (e *GeometryQueryError) Unwrap() error { return e.Err }

// Inventory is the one-shot snapshot of solid records for a run.
type Inventory struct {
	Group   string
	Records []*SolidRecord // host enumeration order

	// Warnings lists the recovered box-query failures, in host order.
	Warnings []*GeometryQueryError

	byID map[string]*SolidRecord
}

// Collect enumerates group in store and builds a record per solid. Box
// failures degrade the record instead of failing the run; enumeration
// failures and duplicate ids wrap [ErrEnumerate].
func Collect(store host.Store, group string) (*Inventory, error) {
	ids, err := store.Solids(group)
	if err != nil {
		return nil, fmt.Errorf("%w in group %q: %w", ErrEnumerate, group, err)
	}

	inv := &Inventory{
		Group:   group,
		Records: make([]*SolidRecord, 0, len(ids)),
		byID:    make(map[string]*SolidRecord, len(ids)),
	}
	for i, id := range ids {
		if _, dup := inv.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrEnumerate, id)
		}

		var rec *SolidRecord
		box, err := store.BoundingBox(id)
		if err != nil {
			inv.Warnings = append(inv.Warnings, &GeometryQueryError{ID: id, Err: err})
			rec = newDegradedRecord(id, i)
		} else {
			rec = NewRecord(id, i, box)
		}
		inv.Records = append(inv.Records, rec)
		inv.byID[id] = rec
	}
	return inv, nil
}

// Len returns the number of records.
func (inv *Inventory) Len() int { return len(inv.Records) }

// Get looks up a record by its inventory-time id.
func (inv *Inventory) Get(id string) (*SolidRecord, bool) {
	r, ok := inv.byID[id]
	return r, ok
}

// IDs returns the ids in host order.
func (inv *Inventory) IDs() []string {
	out := make([]string, len(inv.Records))
	for i, r := range inv.Records {
		out[i] = r.ID
	}
	return out
}
