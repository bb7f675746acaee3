// File: components.go
// Role: Cloning, connected-component extraction, and the single-genome
//       projection.
// Determinism:
//   - Components are discovered from vertices in canonical-name order and
//     preserve original edge IDs, so "lowest ID" keeps meaning in them.

package core

import (
	"sort"

	"github.com/aganezov/bg-sub000/multicolor"
)

// Clone returns a deep copy of the graph: fresh catalogs, deep-copied
// multicolors and data, preserved edge IDs, and a carried-over ID counter so
// future insertions on the clone never collide.
func (g *BreakpointGraph) Clone() *BreakpointGraph {
	names := make([]string, 0, len(g.vertices))
	for name := range g.vertices {
		names = append(names, name)
	}
	return g.subgraph(names, g.sortedEdgeIDs(), true)
}

// ConnectedComponentsSubgraphs partitions the graph into its connected
// components. With copyState true every component is a deep copy and
// independently mutable; with copyState false components share vertex and
// edge structure with the parent and must be treated as read-only views.
func (g *BreakpointGraph) ConnectedComponentsSubgraphs(copyState bool) []*BreakpointGraph {
	visited := make(map[string]struct{}, len(g.vertices))
	var components []*BreakpointGraph

	for _, start := range g.Vertices() { // canonical-name order
		name := start.Name()
		if _, done := visited[name]; done {
			continue
		}
		// Breadth-first sweep over the adjacency buckets.
		queue := []string{name}
		visited[name] = struct{}{}
		var memberNames []string
		memberEdges := make(map[uint64]struct{})
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			memberNames = append(memberNames, cur)
			for next, bucket := range g.adjacency[cur] {
				for id := range bucket {
					memberEdges[id] = struct{}{}
				}
				if _, done := visited[next]; !done {
					visited[next] = struct{}{}
					queue = append(queue, next)
				}
			}
		}
		ids := make([]uint64, 0, len(memberEdges))
		for id := range memberEdges {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		components = append(components, g.subgraph(memberNames, ids, copyState))
	}
	return components
}

// GetGenomeGraph projects the graph onto a single genome: only edges whose
// multicolor is a superset of the single-label multicolor for color survive,
// and each projected edge carries exactly that single color plus a copy of
// the source edge's data. Projection order follows ascending source edge ID,
// so relative edge ordering is preserved.
func (g *BreakpointGraph) GetGenomeGraph(color string) *BreakpointGraph {
	out := NewBreakpointGraph()
	for _, id := range g.sortedEdgeIDs() {
		e := g.edges[id]
		if e.Multicolor.Multiplicity(color) < 1 {
			continue
		}
		projected := &BGEdge{
			Vertex1:    e.Vertex1,
			Vertex2:    e.Vertex2,
			Multicolor: multicolor.New(color),
			Data:       copyData(e.Data),
		}
		// Insertion cannot fail: endpoints and multicolor are non-empty.
		_, _ = out.AddBGEdge(projected, false)
	}
	return out
}

// subgraph materializes the graph induced by the given vertex names and edge
// IDs, preserving IDs. With deep true, multicolors, data, and catalogs are
// deep-copied; otherwise edge values are shared with the parent.
func (g *BreakpointGraph) subgraph(names []string, ids []uint64, deep bool) *BreakpointGraph {
	sub := NewBreakpointGraph()
	sub.nextEdgeID = g.nextEdgeID
	for _, name := range names {
		sub.vertices[name] = g.vertices[name]
		sub.adjacency[name] = make(map[string]map[uint64]struct{})
	}
	for _, id := range ids {
		e := g.edges[id]
		if deep {
			e = e.clone()
		}
		sub.edges[id] = e
		sub.linkAdjacency(e.Vertex1.Name(), e.Vertex2.Name(), id)
	}
	sub.colorsDirty = true
	return sub
}
