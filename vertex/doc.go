// Package vertex defines the typed, hashable vertex model of the breakpoint
// graph: block vertices (extremities of conserved blocks) and infinity
// vertices (artificial markers of open chromosome ends), both of which may
// carry an ordered set of tags.
//
// What
//
//   - Vertex: an explicit capability interface (IsRegular, IsIrregular,
//     IsBlock, IsInfinity, IsTagged, HasTag) with a safe-default Base that
//     answers false to everything; concrete variants override selectively.
//   - BlockVertex: one extremity (head or tail) of a conserved block, with a
//     mutable symmetric mate reference to the opposite extremity.
//   - InfinityVertex: derives its canonical name from a root name plus the
//     reserved "infinity" suffix, recomputed on every access so renaming the
//     root transparently renames the identity.
//   - Tag/TagSet: ordered (key, optional value) pairs, sorted by key then
//     value, duplicates forbidden.
//   - Parse: the single decode function turning a canonical name back into a
//     structured vertex; Name() is the single encode function. The round
//     trip is exact.
//
// Identity
//
//	A vertex's identity is its canonical name. Graphs deduplicate vertices by
//	it and share vertex values across every edge referencing them; no edge
//	owns a vertex. Tag mutation re-derives the canonical name
//	deterministically, so mutate tags only before handing a vertex to a
//	graph.
//
// Reserved syntax
//
//	The separator "__" and the suffix "infinity" are reserved: root names and
//	tag components must not contain the separator.
package vertex
