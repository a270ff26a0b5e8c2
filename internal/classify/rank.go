package classify

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/backmassage/solidname/internal/inventory"
)

// ordering compares a and b on one feature: negative when a ranks first.
type ordering func(a, b *inventory.SolidRecord) int

func descending(x, y float64) int {
	switch {
	case x > y:
		return -1
	case x < y:
		return 1
	}
	return 0
}

func ascending(x, y float64) int { return -descending(x, y) }

func byVolume(a, b *inventory.SolidRecord) int {
	return descending(a.VolumeProxy(), b.VolumeProxy())
}

// byPlanform ranks by footprint first; bulk only breaks footprint ties.
func byPlanform(a, b *inventory.SolidRecord) int {
	if c := descending(a.PlanformArea(), b.PlanformArea()); c != 0 {
		return c
	}
	return byVolume(a, b)
}

// byPosition is the geometric tie-break: lowest center by Z, then Y, then
// X. It survives renames and host reordering, unlike ids or host order.
func byPosition(a, b *inventory.SolidRecord) int {
	ca, cb := a.Center(), b.Center()
	if c := ascending(ca.Z, cb.Z); c != 0 {
		return c
	}
	if c := ascending(ca.Y, cb.Y); c != 0 {
		return c
	}
	return ascending(ca.X, cb.X)
}

// rankBy sorts rs in place by primary, then position, then host order.
func rankBy(rs []*inventory.SolidRecord, primary ordering) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if c := primary(a, b); c != 0 {
			return c < 0
		}
		if c := byPosition(a, b); c != 0 {
			return c < 0
		}
		return a.Index < b.Index
	})
}

// footprint is an XY rectangle; Z is carried but never tested.
type footprint struct{ r3.Box }

// paddedFootprint grows b by margin on every side of the XY plane.
func paddedFootprint(b r3.Box, margin float64) footprint {
	pad := r3.Vec{X: margin, Y: margin}
	return footprint{r3.Box{Min: r3.Sub(b.Min, pad), Max: r3.Add(b.Max, pad)}}
}

// containsXY reports whether p's in-plane coordinates lie inside f,
// edges included. Height is ignored: sub-parts sit above the package.
func (f footprint) containsXY(p r3.Vec) bool {
	return p.X >= f.Min.X && p.X <= f.Max.X &&
		p.Y >= f.Min.Y && p.Y <= f.Max.Y
}
