// Package multicolor implements the multiset-of-genome-labels algebra that
// annotates every edge of a breakpoint graph.
//
// What
//
//   - Multicolor: a multiset of opaque genome labels with per-label counts.
//   - Union (Merge/LeftMerge/Add), difference with counts floored at zero
//     (Delete/Sub), per-label minimum (Intersect), scalar scaling (Multiply).
//   - A multiset partial order (LessEq/Less) and a similarity score used by
//     the graph engine to pick the most relevant of several parallel edges.
//   - Split: a deterministic, guidance-driven partition of a multicolor into
//     smaller multicolors whose union equals the original exactly.
//
// Why
//
//	Breakpoint-graph mutations (merging, splitting and deleting of parallel
//	edges, k-break application) are expressed entirely in terms of this
//	algebra. Keeping it self-contained makes the engine's invariants — most
//	importantly "no edge ever carries an empty multicolor" — checkable at a
//	single boundary.
//
// Determinism
//
//	Colors() and String() always render labels in sorted order, and Split
//	orders its guidance deterministically unless the caller vouches for the
//	ordering with WithSortedGuidance. Graph edge splitting depends on this
//	reproducibility.
//
// Mutability
//
//	Comparison operators never mutate their operands. Update, LeftMerge and
//	Delete mutate the receiver in place; Merge, Add, Sub, Intersect and
//	Multiply return fresh values. A nil *Multicolor operand is treated as the
//	empty multiset by all read-only operations.
package multicolor
