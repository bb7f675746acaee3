// Package traversal reconstructs per-genome block orders and fragment orders
// from a breakpoint graph.
//
// # What
//
//   - BlocksOrder walks the single-genome projection of a graph and returns
//     every chromosome of that genome as an oriented block sequence plus its
//     topology (linear or circular).
//   - FragmentsOrders performs the same walk but reports the assembly
//     fragments annotated on the traversed edges, with signs derived from
//     the recorded fragment orientation.
//
// # How
//
// A walk alternates two moves: jump from a block extremity to its mate
// inside the same block, then follow an incident adjacency edge to the
// opposite endpoint. From every unvisited start vertex two walks run: a
// forward walk through the start's mate and a reverse walk through the start
// itself. A walk that reaches an infinity vertex terminates a linear
// chromosome end; a walk that returns to its origin closes a circular
// chromosome. For a linear chromosome the reverse walk is reversed,
// sign-flipped, and prepended to the forward walk. The two walks
// disagreeing on topology is a structural defect and surfaces as
// ErrTopologyConflict, never as a silently picked answer.
//
// # Determinism
//
// Start vertices are taken in sorted name order and ambiguous continuations
// (a vertex with several incident edges in the projection) follow the
// lowest-ID edge, so the reconstruction is fully reproducible for any given
// graph state.
package traversal
