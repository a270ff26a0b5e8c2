// Package classify assigns exactly one [Category] to every solid record
// using ordered thickness, footprint and containment heuristics.
//
// Rules run in a fixed order and each sees only the records no earlier
// rule claimed. The claimed set is explicit state handed from rule to
// rule; a record's category is recorded once, as data.
package classify

import (
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/inventory"
)

// Classification is the result of [Classify].
type Classification struct {
	// Buckets holds the ranked records of each category; index 0 is rank 1.
	Buckets map[Category][]*inventory.SolidRecord
	// Package is the resolved PackagePrimary, or nil when none was found.
	Package *inventory.SolidRecord

	categoryOf map[*inventory.SolidRecord]Category
	total      int
}

// Bucket returns the ranked records of c.
func (c *Classification) Bucket(cat Category) []*inventory.SolidRecord {
	return c.Buckets[cat]
}

// CategoryOf reports the category assigned to r.
func (c *Classification) CategoryOf(r *inventory.SolidRecord) (Category, bool) {
	cat, ok := c.categoryOf[r]
	return cat, ok
}

// Len returns the number of classified records.
func (c *Classification) Len() int { return c.total }

// Counts returns the bucket sizes keyed by category.
func (c *Classification) Counts() map[Category]int {
	out := make(map[Category]int, len(All))
	for _, cat := range All {
		out[cat] = len(c.Buckets[cat])
	}
	return out
}

// state is threaded through the rule table.
type state struct {
	h       config.Heuristics
	records []*inventory.SolidRecord // host order
	claimed map[*inventory.SolidRecord]Category
	pkg     *inventory.SolidRecord
}

// unclaimed returns the records no rule has claimed yet, in host order.
func (st *state) unclaimed() []*inventory.SolidRecord {
	var out []*inventory.SolidRecord
	for _, r := range st.records {
		if _, taken := st.claimed[r]; !taken {
			out = append(out, r)
		}
	}
	return out
}

func (st *state) claim(cat Category, rs []*inventory.SolidRecord) {
	for _, r := range rs {
		st.claimed[r] = cat
	}
}

// Classify runs the rule table over inv. It has no side effects.
func Classify(inv *inventory.Inventory, h config.Heuristics) *Classification {
	st := &state{
		h:       h,
		records: inv.Records,
		claimed: make(map[*inventory.SolidRecord]Category, inv.Len()),
	}

	out := &Classification{
		Buckets:    make(map[Category][]*inventory.SolidRecord, len(All)),
		categoryOf: st.claimed,
		total:      inv.Len(),
	}
	for _, rl := range rules {
		if rl.when != nil && !rl.when(st) {
			continue
		}
		picked := rl.pick(st)
		st.claim(rl.category, picked)
		out.Buckets[rl.category] = picked
	}
	out.Package = st.pkg
	return out
}
