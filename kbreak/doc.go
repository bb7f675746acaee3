// Package kbreak defines the k-break rearrangement operator: a validated,
// pure value object describing the replacement of one set of multicolored
// adjacencies by another over the same vertices.
//
// What
//
//   - KBreak: start edges, result edges (vertex pairs), a target multicolor,
//     an optional origin provenance tag, and opaque auxiliary data.
//   - Structural validity: the multiset of vertices touched by the start
//     pairs must equal the multiset touched by the result pairs, making the
//     operation a degree-preserving re-matching. Checked at construction and
//     re-checked by the graph engine immediately before application, since
//     graph state may have changed in between.
//   - Fusion/fission classification consumed by the engine when it merges
//     fragment provenance across a joined adjacency.
//
// A KBreak is never stored by a graph; it is consumed once per application.
package kbreak
