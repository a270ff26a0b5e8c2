package naming

import (
	"fmt"

	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/inventory"
)

// Fixed names for the top-ranked substrate and the package body.
const (
	SubstratePrimaryName = "Substrate_Primary"
	PackagePrimaryName   = "Package_Primary"
)

// seqPrefixes are the per-category sequence prefixes. Each is unique, so
// names cannot collide across categories.
var seqPrefixes = map[classify.Category]string{
	classify.Substrate:       "Substrate_Extra",
	classify.PackageSub:      "Package_Sub",
	classify.ConductiveSheet: "Conductive",
	classify.Unclassified:    "Imported",
}

// Assignment pairs a solid's current id with its proposed name.
type Assignment struct {
	ID   string
	Name string

	// Category and Rank (1-based within the bucket) are set for
	// geometry-derived assignments.
	Category classify.Category
	Rank     int
	Record   *inventory.SolidRecord

	// Parent is set instead for parent-prefix assignments.
	Parent string
}

// Unchanged reports whether applying a would be a no-op.
func (a Assignment) Unchanged() bool { return a.ID == a.Name }

// Label describes where the name came from, for logs and reports.
func (a Assignment) Label() string {
	if a.Parent != "" {
		return "parent " + a.Parent
	}
	return a.Category.String()
}

// Seq formats a 1-based sequence number as <prefix>_<NN>.
func Seq(prefix string, n int) string {
	return fmt.Sprintf("%s_%02d", prefix, n)
}

// Assign converts a classification into assignments, in category order
// then rank order. Sequences restart at 1 in every category.
func Assign(c *classify.Classification) []Assignment {
	var out []Assignment
	for _, cat := range classify.All {
		for i, r := range c.Bucket(cat) {
			out = append(out, Assignment{
				ID:       r.ID,
				Name:     nameFor(cat, i),
				Category: cat,
				Rank:     i + 1,
				Record:   r,
			})
		}
	}
	return out
}

// nameFor returns the canonical name of the record at 0-based position i
// of a category bucket.
func nameFor(cat classify.Category, i int) string {
	switch cat {
	case classify.Substrate:
		if i == 0 {
			return SubstratePrimaryName
		}
		return Seq(seqPrefixes[cat], i)
	case classify.PackagePrimary:
		return PackagePrimaryName
	default:
		return Seq(seqPrefixes[cat], i+1)
	}
}

// ByParent names the children of one parent node <prefix>_<NN> in host
// order. resolver keeps names unique when several parents share a prefix.
func ByParent(parent, prefix string, children []string, resolver *CollisionResolver) []Assignment {
	out := make([]Assignment, 0, len(children))
	for i, ch := range children {
		name := resolver.Resolve(ch, Seq(prefix, i+1))
		out = append(out, Assignment{ID: ch, Name: name, Rank: i + 1, Parent: parent})
	}
	return out
}
