package classify

import (
	"github.com/backmassage/solidname/internal/inventory"
)

// rule claims a ranked set of unclaimed records for one category. Rules
// are evaluated in table order; when is an optional precondition.
type rule struct {
	category Category
	when     func(st *state) bool
	pick     func(st *state) []*inventory.SolidRecord
}

// rules is the priority order. Substrate first (least ambiguous signal),
// then the package body that later rules measure against, then sheets,
// then footprint containment, then the fallback.
var rules = []rule{
	{category: Substrate, pick: pickSubstrate},
	{category: PackagePrimary, pick: pickPackage},
	{category: ConductiveSheet, pick: pickSheets},
	{category: PackageSub, when: hasPackage, pick: pickSubComponents},
	{category: Unclassified, pick: pickRemaining},
}

// positive filters unclaimed, non-degraded records by pred. Degraded
// records carry a zero box and must never satisfy a positive rule.
func positive(st *state, pred func(*inventory.SolidRecord) bool) []*inventory.SolidRecord {
	var out []*inventory.SolidRecord
	for _, r := range st.unclaimed() {
		if !r.Degraded && pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func pickSubstrate(st *state) []*inventory.SolidRecord {
	band := st.h.SubstrateThickness
	cands := positive(st, func(r *inventory.SolidRecord) bool {
		return band.Contains(r.Thickness())
	})
	rankBy(cands, byVolume)
	return cands
}

func pickPackage(st *state) []*inventory.SolidRecord {
	band := st.h.PackageThickness
	cands := positive(st, func(r *inventory.SolidRecord) bool {
		return band.ContainsOpenMin(r.Thickness())
	})
	if len(cands) == 0 {
		return nil
	}
	rankBy(cands, byPlanform)
	st.pkg = cands[0]
	return cands[:1]
}

func pickSheets(st *state) []*inventory.SolidRecord {
	ceiling := st.h.SheetThicknessMax
	cands := positive(st, func(r *inventory.SolidRecord) bool {
		return r != st.pkg && r.Thickness() > 0 && r.Thickness() <= ceiling
	})
	rankBy(cands, byVolume)
	return cands
}

func hasPackage(st *state) bool { return st.pkg != nil }

func pickSubComponents(st *state) []*inventory.SolidRecord {
	fp := paddedFootprint(st.pkg.Box, st.h.ContainmentMargin)
	cands := positive(st, func(r *inventory.SolidRecord) bool {
		return fp.containsXY(r.Center())
	})
	rankBy(cands, byVolume)
	return cands
}

func pickRemaining(st *state) []*inventory.SolidRecord {
	rest := st.unclaimed()
	rankBy(rest, byVolume)
	return rest
}
