// File: mutators.go
// Role: Targeted deletion, guided splitting, and merge sweeps over parallel
//       edges. All of them uphold the no-empty-multicolor invariant.

package core

import (
	"fmt"

	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// resolveTarget finds the parallel edge a targeted mutation acts on: the
// pinned edge ID when supplied, otherwise the candidate between the pair
// with the highest similarity score against mc (lowest ID wins ties).
func (g *BreakpointGraph) resolveTarget(n1, n2 string, mc *multicolor.Multicolor, o *mutateOptions) (uint64, *BGEdge, error) {
	ids := g.edgeIDsBetween(n1, n2)
	if len(ids) == 0 {
		return 0, nil, fmt.Errorf("%s -- %s: %w", n1, n2, ErrEdgeNotFound)
	}
	if o.hasKey {
		if _, ok := g.adjacency[n1][n2][o.key]; !ok {
			return 0, nil, fmt.Errorf("%s -- %s, edge id %d: %w", n1, n2, o.key, ErrEdgeNotFound)
		}
		return o.key, g.edges[o.key], nil
	}
	bestID, bestScore := ids[0], -1
	for _, id := range ids { // ascending, so ties keep the lowest ID
		if score := multicolor.SimilarityScore(g.edges[id].Multicolor, mc); score > bestScore {
			bestID, bestScore = id, score
		}
	}
	return bestID, g.edges[bestID], nil
}

// DeleteEdge subtracts mc from a parallel edge between v1 and v2; see
// DeleteBGEdge.
func (g *BreakpointGraph) DeleteEdge(v1, v2 vertex.Vertex, mc *multicolor.Multicolor, opts ...MutateOption) error {
	return g.DeleteBGEdge(NewBGEdge(v1, v2, mc), opts...)
}

// DeleteBGEdge subtracts edge.Multicolor from one parallel edge between the
// pair: the edge pinned by WithKey, or the one most similar to the subtracted
// multicolor. When the subtraction empties the target's multicolor the
// parallel edge is removed; its endpoints vanish with their last incident
// edge unless WithKeepVertices retains them as isolated vertices.
func (g *BreakpointGraph) DeleteBGEdge(edge *BGEdge, opts ...MutateOption) error {
	if edge == nil || edge.Vertex1 == nil || edge.Vertex2 == nil {
		return ErrNilVertex
	}
	var o mutateOptions
	for _, opt := range opts {
		opt(&o)
	}
	n1, n2 := edge.Vertex1.Name(), edge.Vertex2.Name()
	id, target, err := g.resolveTarget(n1, n2, edge.Multicolor, &o)
	if err != nil {
		return err
	}
	target.Multicolor.Delete(edge.Multicolor)
	if target.Multicolor.Empty() {
		g.removeEdge(id)
		if !o.keepVertices {
			g.pruneIfIsolated(n1)
			g.pruneIfIsolated(n2)
		}
	}
	g.colorsDirty = true
	return nil
}

// SplitEdge splits a parallel edge between v1 and v2, resolved by similarity
// against mc; see SplitBGEdge.
func (g *BreakpointGraph) SplitEdge(v1, v2 vertex.Vertex, mc *multicolor.Multicolor, guidance []*multicolor.Multicolor, opts ...MutateOption) error {
	return g.SplitBGEdge(NewBGEdge(v1, v2, mc), guidance, opts...)
}

// SplitBGEdge replaces one parallel edge by the guided partition of its
// multicolor: the target resolves exactly as in DeleteBGEdge (WithKey or
// similarity against edge.Multicolor), its full multicolor is deleted, and
// one new non-merging parallel edge is inserted per partition entry. Every
// resulting edge keeps a copy of the original edge's auxiliary data.
func (g *BreakpointGraph) SplitBGEdge(edge *BGEdge, guidance []*multicolor.Multicolor, opts ...MutateOption) error {
	if edge == nil || edge.Vertex1 == nil || edge.Vertex2 == nil {
		return ErrNilVertex
	}
	var o mutateOptions
	for _, opt := range opts {
		opt(&o)
	}
	n1, n2 := edge.Vertex1.Name(), edge.Vertex2.Name()
	id, target, err := g.resolveTarget(n1, n2, edge.Multicolor, &o)
	if err != nil {
		return err
	}
	parts := multicolor.Split(target.Multicolor, multicolor.WithGuidance(guidance...))
	v1, v2 := target.Vertex1, target.Vertex2
	data := copyData(target.Data)

	g.removeEdge(id) // deletes the full multicolor; vertices stay referenced by the parts
	for _, part := range parts {
		if _, err = g.AddBGEdge(&BGEdge{Vertex1: v1, Vertex2: v2, Multicolor: part, Data: data}, false); err != nil {
			return err
		}
	}
	return nil
}

// SplitAllEdgesBetweenTwoVertices applies the guided split to every parallel
// edge between the pair.
func (g *BreakpointGraph) SplitAllEdgesBetweenTwoVertices(v1, v2 vertex.Vertex, guidance []*multicolor.Multicolor) error {
	if v1 == nil || v2 == nil {
		return ErrNilVertex
	}
	ids := g.edgeIDsBetween(v1.Name(), v2.Name())
	if len(ids) == 0 {
		return fmt.Errorf("%s -- %s: %w", v1.Name(), v2.Name(), ErrEdgeNotFound)
	}
	for _, id := range ids {
		if err := g.SplitBGEdge(NewBGEdge(v1, v2, nil), guidance, WithKey(id)); err != nil {
			return err
		}
	}
	return nil
}

// SplitAllEdges applies the guided split to every parallel edge in the
// graph.
func (g *BreakpointGraph) SplitAllEdges(guidance []*multicolor.Multicolor) error {
	for _, id := range g.sortedEdgeIDs() {
		e := g.edges[id]
		if e == nil {
			continue // already replaced by an earlier split in this sweep
		}
		if err := g.SplitBGEdge(NewBGEdge(e.Vertex1, e.Vertex2, nil), guidance, WithKey(id)); err != nil {
			return err
		}
	}
	return nil
}

// MergeAllEdgesBetweenTwoVertices collapses every parallel edge between the
// pair into the lowest-ID one, whose multicolor becomes the union of them
// all. The merged edge's auxiliary data is cleared, matching merging
// insertion.
func (g *BreakpointGraph) MergeAllEdgesBetweenTwoVertices(v1, v2 vertex.Vertex) error {
	if v1 == nil || v2 == nil {
		return ErrNilVertex
	}
	n1, n2 := v1.Name(), v2.Name()
	ids := g.edgeIDsBetween(n1, n2)
	if len(ids) == 0 {
		return fmt.Errorf("%s -- %s: %w", n1, n2, ErrEdgeNotFound)
	}
	if len(ids) == 1 {
		return nil
	}
	base := g.edges[ids[0]]
	base.Data = nil
	for _, id := range ids[1:] {
		base.Multicolor.LeftMerge(g.edges[id].Multicolor)
		g.removeEdge(id)
	}
	g.colorsDirty = true
	return nil
}

// MergeAllEdges collapses parallel edges for every connected vertex pair in
// the graph.
func (g *BreakpointGraph) MergeAllEdges() error {
	type pair struct{ n1, n2 string }
	seen := make(map[pair]struct{})
	for _, id := range g.sortedEdgeIDs() {
		e, ok := g.edges[id]
		if !ok {
			continue // merged away earlier in this sweep
		}
		n1, n2 := e.Vertex1.Name(), e.Vertex2.Name()
		if n2 < n1 {
			n1, n2 = n2, n1
		}
		p := pair{n1, n2}
		if _, done := seen[p]; done {
			continue
		}
		seen[p] = struct{}{}
		if err := g.MergeAllEdgesBetweenTwoVertices(e.Vertex1, e.Vertex2); err != nil {
			return err
		}
	}
	return nil
}
