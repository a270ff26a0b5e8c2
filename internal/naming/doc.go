// Package naming turns classified solids into canonical, collision-free
// names. It performs no host interaction.
//
// Geometry-derived names:
//
//	Substrate        rank 1 → Substrate_Primary, then Substrate_Extra_01, …
//	PackagePrimary          → Package_Primary
//	PackageSub              → Package_Sub_01, …
//	ConductiveSheet         → Conductive_01, …
//	Unclassified            → Imported_01, …
//
// Sequences are 1-based, two-digit zero-padded, and restart per category.
// [ByParent] names the children of a parent node <prefix>_NN instead.
// [Stage] orders the resulting renames so that swaps and chains between
// live names never collide on the host.
package naming
