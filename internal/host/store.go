// Package host models the design session that owns the solids: an
// addressable store of named bodies with bounding boxes, parent groups and
// two rename paths. The pipeline only talks to the [Store] interface;
// [MemoryStore] backs it with an in-memory model loaded from a YAML
// snapshot of the session.
package host

import "errors"

// DefaultGroup is the group every solid body belongs to.
const DefaultGroup = "Solids"

var (
	ErrUnknownGroup        = errors.New("unknown object group")
	ErrNoSuchSolid         = errors.New("no such solid")
	ErrNameTaken           = errors.New("name already in use")
	ErrInvalidName         = errors.New("invalid object name")
	ErrRenameUnsupported   = errors.New("rename not supported for object")
	ErrReadOnly            = errors.New("object is read-only")
	ErrGeometryUnavailable = errors.New("bounding box unavailable")
)

// Box is an axis-aligned bounding box in millimetres, in the host's
// (xmin, ymin, zmin, xmax, ymax, zmax) order.
type Box [6]float64

// Store is the slice of the host session used by the pipeline. All calls
// are synchronous.
type Store interface {
	// Solids lists object ids in group, in host order.
	Solids(group string) ([]string, error)
	// Children lists the direct children of a parent node, in host order.
	Children(parent string) ([]string, error)
	// BoundingBox returns the axis-aligned box of id.
	BoundingBox(id string) (Box, error)
	// Rename is the primary rename path.
	Rename(oldID, newID string) error
	// ChangeNameProperty is the structural fallback: it edits the name
	// attribute of the object's geometry tab instead of calling rename.
	ChangeNameProperty(oldID, newID string) error
}
