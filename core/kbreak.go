// File: kbreak.go
// Role: Validated application of a k-break to the graph.
// Invariants:
//   - Validation of every targeted edge happens before the first deletion.
//   - Emptied infinity vertices from the start pairs are pruned; emptied
//     regular vertices deliberately are not.

package core

import (
	"fmt"

	"github.com/aganezov/bg-sub000/kbreak"
	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// ApplyKBreak mutates the graph according to kb:
//
//  1. Reject kb if its degree-preserving matching no longer holds.
//  2. For every start pair that is not both-infinity, require both vertices
//     and at least one parallel edge between them whose multicolor contains
//     kb's multicolor.
//  3. Delete kb's multicolor from the best-matching parallel edge of each
//     such pair, remembering the edge's auxiliary data keyed by endpoint.
//  4. Prune infinity vertices from the start pairs that are left without
//     incident edges.
//  5. Insert an edge of kb's multicolor for every result pair that is not
//     both-infinity (both-infinity pairs denote consumed open ends and leave
//     no residual edge); merge controls merging insertion.
//  6. On a fusion, the new adjacency's data combines the fragment provenance
//     of the two deleted source edges.
func (g *BreakpointGraph) ApplyKBreak(kb *kbreak.KBreak, merge bool) error {
	if kb == nil || !kb.Valid() {
		return ErrInvalidKBreak
	}
	mc := kb.Multicolor()
	start := kb.StartEdges()

	// Validate every targeted pair before mutating anything.
	for _, p := range start {
		if p.BothInfinity() {
			continue
		}
		for _, v := range p {
			if !g.HasVertex(v.Name()) {
				return fmt.Errorf("k-break start vertex %s: %w", v.Name(), ErrVertexNotFound)
			}
		}
		if !g.hasSupersetEdge(p[0].Name(), p[1].Name(), mc) {
			return fmt.Errorf("%s -- %s under %s: %w", p[0].Name(), p[1].Name(), mc, ErrNoTargetEdge)
		}
	}

	// Delete the multicolor from the best-matching parallel edges, keeping
	// even fully emptied vertices around until step 4 decides their fate.
	dataByVertex := make(map[string]map[string]any, 2*len(start))
	for _, p := range start {
		if p.BothInfinity() {
			continue
		}
		n1, n2 := p[0].Name(), p[1].Name()
		id, target, err := g.resolveTarget(n1, n2, mc, &mutateOptions{})
		if err != nil {
			return err
		}
		dataByVertex[n1] = copyData(target.Data)
		dataByVertex[n2] = copyData(target.Data)
		target.Multicolor.Delete(mc)
		if target.Multicolor.Empty() {
			g.removeEdge(id)
		}
		g.colorsDirty = true
	}

	// Prune open-end markers that the deletions emptied.
	for _, p := range start {
		for _, v := range p {
			name := v.Name()
			if v.IsInfinity() && g.HasVertex(name) && len(g.adjacency[name]) == 0 {
				delete(g.adjacency, name)
				delete(g.vertices, name)
			}
		}
	}

	fusion := kb.IsFusion()
	for _, p := range kb.ResultEdges() {
		if p.BothInfinity() {
			continue
		}
		v1, v2 := g.vertexOr(p[0]), g.vertexOr(p[1])
		edge := &BGEdge{Vertex1: v1, Vertex2: v2, Multicolor: mc.Clone()}
		if fusion {
			edge.Data = mergeFragmentData(dataByVertex[v1.Name()], dataByVertex[v2.Name()])
		}
		if _, err := g.AddBGEdge(edge, merge); err != nil {
			return err
		}
	}
	return nil
}

// hasSupersetEdge reports whether some parallel edge between the named pair
// carries a multicolor containing mc.
func (g *BreakpointGraph) hasSupersetEdge(n1, n2 string, mc *multicolor.Multicolor) bool {
	for _, id := range g.edgeIDsBetween(n1, n2) {
		if mc.LessEq(g.edges[id].Multicolor) {
			return true
		}
	}
	return false
}

// vertexOr returns the graph's stored instance for v's identity when
// present, otherwise v itself (the vertex is about to be introduced).
func (g *BreakpointGraph) vertexOr(v vertex.Vertex) vertex.Vertex {
	if stored := g.GetVertexByName(v.Name()); stored != nil {
		return stored
	}
	return v
}
