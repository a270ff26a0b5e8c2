package host

import (
	"fmt"
	"strings"
)

// Solid is one body in a [MemoryStore].
type Solid struct {
	Name   string
	Parent string
	Box    Box

	// Locked rejects the primary rename path only.
	Locked bool
	// ReadOnly rejects both rename paths.
	ReadOnly bool
	// Unavailable makes the bounding-box query fail.
	Unavailable bool
	// HasBox records that Box was supplied even though Unavailable is set,
	// so a saved snapshot keeps the geometry.
	HasBox bool
}

// Op identifies a mutating call recorded by [MemoryStore].
type Op string

const (
	OpRename         Op = "rename"
	OpChangeProperty Op = "change-property"
)

// Call is one recorded mutating call, successful or not.
type Call struct {
	Op  Op
	Old string
	New string
	Err error
}

// MemoryStore is an in-memory [Store]. It is not safe for concurrent use.
type MemoryStore struct {
	group  string
	solids []*Solid
	calls  []Call
}

// NewMemoryStore builds a store over solids in the given order. An empty
// group defaults to [DefaultGroup].
func NewMemoryStore(group string, solids []Solid) *MemoryStore {
	if group == "" {
		group = DefaultGroup
	}
	s := &MemoryStore{group: group}
	for i := range solids {
		sd := solids[i]
		s.solids = append(s.solids, &sd)
	}
	return s
}

// Group returns the name of the store's solid group.
func (s *MemoryStore) Group() string { return s.group }

// Names returns the current names in host order.
func (s *MemoryStore) Names() []string {
	out := make([]string, len(s.solids))
	for i, sd := range s.solids {
		out[i] = sd.Name
	}
	return out
}

// Snapshot returns a copy of the current solids.
func (s *MemoryStore) Snapshot() []Solid {
	out := make([]Solid, len(s.solids))
	for i, sd := range s.solids {
		out[i] = *sd
	}
	return out
}

// Calls returns the mutating calls made so far.
func (s *MemoryStore) Calls() []Call {
	return append([]Call(nil), s.calls...)
}

// Solids implements [Store].
func (s *MemoryStore) Solids(group string) ([]string, error) {
	if group != s.group {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return s.Names(), nil
}

// Children implements [Store]. A parent with no children yields an empty list.
func (s *MemoryStore) Children(parent string) ([]string, error) {
	var out []string
	for _, sd := range s.solids {
		if sd.Parent == parent {
			out = append(out, sd.Name)
		}
	}
	return out, nil
}

// BoundingBox implements [Store].
func (s *MemoryStore) BoundingBox(id string) (Box, error) {
	sd := s.find(id)
	if sd == nil {
		return Box{}, fmt.Errorf("%w: %q", ErrNoSuchSolid, id)
	}
	if sd.Unavailable {
		return Box{}, fmt.Errorf("%w: %q", ErrGeometryUnavailable, id)
	}
	return sd.Box, nil
}

// Rename implements [Store].
func (s *MemoryStore) Rename(oldID, newID string) error {
	err := s.rename(oldID, newID, func(sd *Solid) error {
		if sd.Locked || sd.ReadOnly {
			return fmt.Errorf("%w: %q", ErrRenameUnsupported, oldID)
		}
		return nil
	})
	s.calls = append(s.calls, Call{Op: OpRename, Old: oldID, New: newID, Err: err})
	return err
}

// ChangeNameProperty implements [Store].
func (s *MemoryStore) ChangeNameProperty(oldID, newID string) error {
	err := s.rename(oldID, newID, func(sd *Solid) error {
		if sd.ReadOnly {
			return fmt.Errorf("%w: %q", ErrReadOnly, oldID)
		}
		return nil
	})
	s.calls = append(s.calls, Call{Op: OpChangeProperty, Old: oldID, New: newID, Err: err})
	return err
}

func (s *MemoryStore) rename(oldID, newID string, allowed func(*Solid) error) error {
	sd := s.find(oldID)
	if sd == nil {
		return fmt.Errorf("%w: %q", ErrNoSuchSolid, oldID)
	}
	if err := allowed(sd); err != nil {
		return err
	}
	if strings.TrimSpace(newID) == "" {
		return ErrInvalidName
	}
	if other := s.find(newID); other != nil && other != sd {
		return fmt.Errorf("%w: %q", ErrNameTaken, newID)
	}
	sd.Name = newID
	return nil
}

func (s *MemoryStore) find(id string) *Solid {
	for _, sd := range s.solids {
		if sd.Name == id {
			return sd
		}
	}
	return nil
}
