package inventory

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/backmassage/solidname/internal/host"
)

// SolidRecord is the feature record of one inventoried solid. Derived
// features are computed once by [NewRecord] and never change.
type SolidRecord struct {
	// ID is the name the host knew the solid by at inventory time.
	ID string
	// Index is the host enumeration position, used only as a tie-break.
	Index int
	// Box is the canonical bounding box (Min <= Max on every axis).
	Box r3.Box
	// Degraded is set when the box query failed and Box is the zero box.
	Degraded bool

	extents   r3.Vec
	center    r3.Vec
	thickness float64
	planform  float64
	volume    float64
}

// NewRecord builds a record from a host box, canonicalising axis order.
func NewRecord(id string, index int, b host.Box) *SolidRecord {
	box := r3.Box{
		Min: r3.Vec{X: math.Min(b[0], b[3]), Y: math.Min(b[1], b[4]), Z: math.Min(b[2], b[5])},
		Max: r3.Vec{X: math.Max(b[0], b[3]), Y: math.Max(b[1], b[4]), Z: math.Max(b[2], b[5])},
	}
	r := &SolidRecord{ID: id, Index: index, Box: box}

	r.extents = r3.Sub(box.Max, box.Min)
	r.center = r3.Scale(0.5, r3.Add(box.Min, box.Max))
	dims := []float64{r.extents.X, r.extents.Y, r.extents.Z}
	r.thickness = floats.Min(dims)
	r.planform = r.extents.X * r.extents.Y
	r.volume = floats.Prod(dims)
	return r
}

// newDegradedRecord is the stand-in for a solid whose box query failed.
func newDegradedRecord(id string, index int) *SolidRecord {
	r := NewRecord(id, index, host.Box{})
	r.Degraded = true
	return r
}

// Extents returns (dx, dy, dz) in mm.
func (r *SolidRecord) Extents() r3.Vec { return r.extents }

// Center returns the box midpoint.
func (r *SolidRecord) Center() r3.Vec { return r.center }

// Thickness is the smallest extent.
func (r *SolidRecord) Thickness() float64 { return r.thickness }

// PlanformArea is dx*dy, the footprint in the XY plane.
func (r *SolidRecord) PlanformArea() float64 { return r.planform }

// VolumeProxy is dx*dy*dz.
func (r *SolidRecord) VolumeProxy() float64 { return r.volume }
