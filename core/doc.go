// Package core implements the breakpoint graph: a multigraph whose vertices
// are block extremities or artificial open-end markers and whose parallel
// edges carry multicolors (multisets of genome labels).
//
// What
//
//   - BGEdge: an unordered vertex pair, one multicolor, and opaque auxiliary
//     data carrying fragment provenance.
//   - BreakpointGraph: vertex catalog, parallel-edge catalog keyed by
//     monotonically increasing edge IDs, and nested adjacency maps.
//   - Mutators: merging insertion, similarity-targeted deletion, guided
//     splitting, and global merge/split sweeps — every one of them upholds
//     the central invariant that no stored edge ever carries an empty
//     multicolor.
//   - ApplyKBreak: validated application of a k-break, with deliberate
//     pruning of emptied infinity vertices and fragment-provenance merging
//     on fusions.
//   - Projections: connected-component subgraphs (deep-copied or shared) and
//     the single-genome adjacency view.
//
// Determinism
//
//	Every query returning a slice orders it deterministically: vertices by
//	canonical name, edges by ascending edge ID. Edge IDs are assigned by a
//	monotonic counter that clones and subgraphs carry over, so "lowest ID"
//	stays meaningful across derived graphs.
//
// Ownership & concurrency
//
//	A multicolor inserted into the graph is owned exclusively by its edge and
//	deep-copied on every cross-graph operation. Vertex identities are shared
//	by value across edges. The graph is not safe for concurrent mutation:
//	compound mutations (split, k-break) are multi-step and non-atomic, so
//	multi-goroutine callers must apply a single-writer discipline externally.
package core
