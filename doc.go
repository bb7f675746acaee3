// Package bg is an in-memory toolkit for building, mutating, and reading
// breakpoint graphs — the multigraph model of multi-genome rearrangement
// comparison.
//
// 🚀 What is bg?
//
//	A pure-Go library that brings together:
//		• Multicolors: multiset algebra over genome labels (union, floored
//		  difference, containment, similarity, guided splitting)
//		• Vertices: block extremities, open-end infinity markers, tags
//		• Core graph: parallel edges, merging insertion, targeted deletion,
//		  splitting & merging sweeps, components, per-genome projections
//		• k-breaks: validated degree-preserving rearrangement operations,
//		  fusion & fission included
//		• Traversal: per-genome block-order and fragment-order
//		  reconstruction, linear & circular chromosomes
//		• bgjson: deterministic JSON serialization with integrity checks
//
// ✨ Why choose bg?
//
//   - Deterministic – every query and emitted document is reproducible
//   - Explicit errors – sentinel errors for every structural violation,
//     nothing recovered silently
//   - Pure Go – no cgo, a single small test dependency
//
// Everything is organized under six subpackages:
//
//	multicolor/ — genome-label multisets & the guided Split partition
//	vertex/     — block & infinity vertices, the name codec, tags
//	core/       — BreakpointGraph, BGEdge, mutation engine, k-break apply
//	kbreak/     — the validated k-break operation itself
//	traversal/  — blocks orders & fragments orders per genome
//	bgjson/     — the serialized-state JSON boundary
//
// Quick ASCII example:
//
//	∞───1t 1h───2t 2h───∞
//
//	represents the single-chromosome genome "1 2": two blocks joined by
//	one adjacency, with open telomere ends.
//
//	go get github.com/aganezov/bg-sub000
package bg
