package classify

// Category is the semantic role inferred for a solid.
type Category int

// Categories in rule priority order. Unclassified is the fallback and is
// never chosen by a positive rule.
const (
	Substrate Category = iota
	PackagePrimary
	PackageSub
	ConductiveSheet
	Unclassified
)

// All lists every category in canonical order.
var All = []Category{Substrate, PackagePrimary, PackageSub, ConductiveSheet, Unclassified}

var categoryNames = map[Category]string{
	Substrate:       "Substrate",
	PackagePrimary:  "PackagePrimary",
	PackageSub:      "PackageSub",
	ConductiveSheet: "ConductiveSheet",
	Unclassified:    "Unclassified",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "Category(?)"
}

// MarshalText lets categories appear by name in YAML reports.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
