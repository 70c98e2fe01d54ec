// Package voxtree implements hash-consed octrees (and quadtrees) of cell
// values, and extracts the surfaces between cells from them.
//
// Every node is interned by a Store, so structurally equal subtrees are the
// same pointer. Uniform regions cost one node per level, and repeated
// structure is shared. The Engine builds on that sharing: the borders
// between two subtrees, or inside one, are computed once per distinct
// subtree and memoized, so extracting the surface of a large, mostly uniform
// volume costs time proportional to its distinct structure rather than its
// cell count.
//
// Basic usage:
//
//	store, err := voxtree.NewStore[string](voxtree.DefaultConfig())
//	root, err := store.Build(shape, voxtree.Point{}, 6) // 64×64×64 cells
//	engine, err := voxtree.NewEngine[string, voxtree.Face[string]](store)
//	faces := voxtree.OpaqueSurfacer("")
//	for b := range engine.Borders(faces, root, "", voxtree.Face[string]{}) {
//		// b.Position, b.Axis, b.Value
//	}
//
// # Borders
//
// A border at position p on axis a lies between cell p and cell p+1 along
// a. Its value is computed by a SurfacizeFunc from the lower and higher cell.
// Surface trees hold the borders of one plane; they are interned in a store
// of one lower dimension and have the depth of the volume they came from.
//
// # Shapes
//
// InfiniteShape, BoundedShape and Surface are the read interfaces shared by
// every source and result. Optional capabilities (BorderEnumerator, Slicer,
// Filler and others) are discovered by type assertion: the functions in this
// package use a shape's own implementation when it has one and a generic
// cell-by-cell fallback otherwise. Volume wraps an interned node and
// provides the fast versions.
package voxtree
