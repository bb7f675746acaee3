// File: graph.go
// Role: BreakpointGraph storage, vertex catalog, merging edge insertion,
//       deterministic queries, and the lazily invalidated color cache.
// Determinism:
//   - Vertices() sorts by canonical name, Edges() by ascending edge ID.
//   - Edge IDs come from a monotonic counter carried over to derived graphs.

package core

import (
	"fmt"
	"sort"

	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// BreakpointGraph is the multicolored breakpoint multigraph.
//
// Storage: a vertex catalog keyed by canonical name, an edge catalog keyed
// by opaque numeric ID, and nested adjacency maps
// vertexName -> vertexName -> edgeID set (mirrored, since edges are
// undirected). Not safe for concurrent mutation.
type BreakpointGraph struct {
	vertices  map[string]vertex.Vertex
	edges     map[uint64]*BGEdge
	adjacency map[string]map[string]map[uint64]struct{}

	nextEdgeID uint64

	// The set of all colors across all edges is the only cached state:
	// invalidated on any edge mutation, recomputed on next read.
	colorCache  []string
	colorsDirty bool
}

// NewBreakpointGraph creates an empty breakpoint graph.
func NewBreakpointGraph() *BreakpointGraph {
	return &BreakpointGraph{
		vertices:  make(map[string]vertex.Vertex),
		edges:     make(map[uint64]*BGEdge),
		adjacency: make(map[string]map[string]map[uint64]struct{}),
	}
}

// AddVertex inserts v into the catalog, deduplicating by canonical name.
// Returns the instance stored in the graph.
func (g *BreakpointGraph) AddVertex(v vertex.Vertex) (vertex.Vertex, error) {
	if v == nil {
		return nil, ErrNilVertex
	}
	name := v.Name()
	if existing, ok := g.vertices[name]; ok {
		return existing, nil
	}
	g.vertices[name] = v
	g.adjacency[name] = make(map[string]map[uint64]struct{})
	return v, nil
}

// AddEdge inserts an adjacency between v1 and v2 under the given multicolor.
// See AddBGEdge for merge semantics.
func (g *BreakpointGraph) AddEdge(v1, v2 vertex.Vertex, mc *multicolor.Multicolor, merge bool) (uint64, error) {
	return g.AddBGEdge(NewBGEdge(v1, v2, mc), merge)
}

// AddBGEdge inserts edge into the graph and returns the ID of the parallel
// edge that now carries its multicolor.
//
// With merge true and at least one parallel edge already joining the pair,
// the multicolor is folded into the lowest-ID existing parallel edge and
// that edge's auxiliary data is cleared — it no longer describes a single
// uniform adjacency. Otherwise a new parallel edge is inserted, with the
// multicolor and data deep-copied so the graph never aliases caller state.
func (g *BreakpointGraph) AddBGEdge(edge *BGEdge, merge bool) (uint64, error) {
	if edge == nil || edge.Vertex1 == nil || edge.Vertex2 == nil {
		return 0, ErrNilVertex
	}
	if edge.Multicolor.Empty() {
		return 0, ErrEmptyMulticolor
	}
	v1, err := g.AddVertex(edge.Vertex1)
	if err != nil {
		return 0, err
	}
	v2, err := g.AddVertex(edge.Vertex2)
	if err != nil {
		return 0, err
	}
	n1, n2 := v1.Name(), v2.Name()

	if merge {
		if ids := g.edgeIDsBetween(n1, n2); len(ids) > 0 {
			target := g.edges[ids[0]] // ids are sorted ascending
			target.Multicolor.LeftMerge(edge.Multicolor)
			target.Data = nil
			g.colorsDirty = true
			return ids[0], nil
		}
	}

	g.nextEdgeID++
	id := g.nextEdgeID
	stored := edge.clone()
	stored.Vertex1, stored.Vertex2 = v1, v2
	g.edges[id] = stored
	g.linkAdjacency(n1, n2, id)
	g.colorsDirty = true
	return id, nil
}

// linkAdjacency registers id under both directions of the unordered pair.
func (g *BreakpointGraph) linkAdjacency(n1, n2 string, id uint64) {
	if g.adjacency[n1][n2] == nil {
		g.adjacency[n1][n2] = make(map[uint64]struct{})
	}
	g.adjacency[n1][n2][id] = struct{}{}
	if n1 == n2 {
		return
	}
	if g.adjacency[n2][n1] == nil {
		g.adjacency[n2][n1] = make(map[uint64]struct{})
	}
	g.adjacency[n2][n1][id] = struct{}{}
}

// unlinkAdjacency removes id from both directions, dropping emptied buckets.
func (g *BreakpointGraph) unlinkAdjacency(n1, n2 string, id uint64) {
	if bucket := g.adjacency[n1][n2]; bucket != nil {
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(g.adjacency[n1], n2)
		}
	}
	if n1 == n2 {
		return
	}
	if bucket := g.adjacency[n2][n1]; bucket != nil {
		delete(bucket, id)
		if len(bucket) == 0 {
			delete(g.adjacency[n2], n1)
		}
	}
}

// removeEdge drops the parallel edge id from the catalogs. Vertex pruning is
// the caller's decision.
func (g *BreakpointGraph) removeEdge(id uint64) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	g.unlinkAdjacency(e.Vertex1.Name(), e.Vertex2.Name(), id)
	g.colorsDirty = true
}

// pruneIfIsolated removes the named vertex when no incident edge remains.
func (g *BreakpointGraph) pruneIfIsolated(name string) {
	if len(g.adjacency[name]) == 0 {
		delete(g.adjacency, name)
		delete(g.vertices, name)
	}
}

// edgeIDsBetween returns the sorted IDs of every parallel edge joining the
// named pair.
func (g *BreakpointGraph) edgeIDsBetween(n1, n2 string) []uint64 {
	bucket := g.adjacency[n1][n2]
	if len(bucket) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasVertex reports whether a vertex with the given canonical name exists.
func (g *BreakpointGraph) HasVertex(name string) bool {
	_, ok := g.vertices[name]
	return ok
}

// GetVertexByName returns the stored vertex with the given canonical name,
// or nil when absent.
func (g *BreakpointGraph) GetVertexByName(name string) vertex.Vertex {
	return g.vertices[name]
}

// Vertices returns every vertex sorted by canonical name.
func (g *BreakpointGraph) Vertices() []vertex.Vertex {
	names := make([]string, 0, len(g.vertices))
	for name := range g.vertices {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]vertex.Vertex, len(names))
	for i, name := range names {
		out[i] = g.vertices[name]
	}
	return out
}

// Edges returns every stored edge sorted by ascending edge ID. The returned
// values are the graph's own edges; treat them as read-only.
func (g *BreakpointGraph) Edges() []*BGEdge {
	ids := g.sortedEdgeIDs()
	out := make([]*BGEdge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}
	return out
}

// EdgeByID returns the parallel edge with the given ID.
func (g *BreakpointGraph) EdgeByID(id uint64) (*BGEdge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("edge id %d: %w", id, ErrEdgeNotFound)
	}
	return e, nil
}

// GetEdgeByTwoVertices returns the lowest-ID parallel edge joining v1 and
// v2, the deterministic representative the external reader verifies against.
func (g *BreakpointGraph) GetEdgeByTwoVertices(v1, v2 vertex.Vertex) (*BGEdge, error) {
	if v1 == nil || v2 == nil {
		return nil, ErrNilVertex
	}
	ids := g.edgeIDsBetween(v1.Name(), v2.Name())
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s -- %s: %w", v1.Name(), v2.Name(), ErrEdgeNotFound)
	}
	return g.edges[ids[0]], nil
}

// EdgesBetweenTwoVertices returns every parallel edge joining v1 and v2,
// sorted by ascending edge ID.
func (g *BreakpointGraph) EdgesBetweenTwoVertices(v1, v2 vertex.Vertex) []*BGEdge {
	if v1 == nil || v2 == nil {
		return nil
	}
	ids := g.edgeIDsBetween(v1.Name(), v2.Name())
	out := make([]*BGEdge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}
	return out
}

// EdgesByVertex returns every edge incident to v, sorted by ascending ID.
func (g *BreakpointGraph) EdgesByVertex(v vertex.Vertex) []*BGEdge {
	if v == nil {
		return nil
	}
	var ids []uint64
	for _, bucket := range g.adjacency[v.Name()] {
		for id := range bucket {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*BGEdge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}
	return out
}

// GetOverallSetOfColors returns the sorted set of every color appearing
// across all edges. The result is cached and recomputed lazily after any
// edge mutation.
func (g *BreakpointGraph) GetOverallSetOfColors() []string {
	if g.colorsDirty || g.colorCache == nil {
		seen := make(map[string]struct{})
		for _, e := range g.edges {
			for _, c := range e.Multicolor.Colors() {
				seen[c] = struct{}{}
			}
		}
		cache := make([]string, 0, len(seen))
		for c := range seen {
			cache = append(cache, c)
		}
		sort.Strings(cache)
		g.colorCache = cache
		g.colorsDirty = false
	}
	return append([]string(nil), g.colorCache...)
}

// GraphStats is a deterministic snapshot of catalog sizes.
type GraphStats struct {
	VertexCount          int
	RegularVertexCount   int
	IrregularVertexCount int
	EdgeCount            int
	InfinityEdgeCount    int
}

// Stats produces a read-only snapshot for diagnostics and tests.
func (g *BreakpointGraph) Stats() *GraphStats {
	stats := &GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, v := range g.vertices {
		if v.IsIrregular() {
			stats.IrregularVertexCount++
		} else {
			stats.RegularVertexCount++
		}
	}
	for _, e := range g.edges {
		if e.IsInfinityEdge() {
			stats.InfinityEdgeCount++
		}
	}
	return stats
}

// sortedEdgeIDs returns every edge ID in ascending order.
func (g *BreakpointGraph) sortedEdgeIDs() []uint64 {
	ids := make([]uint64, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
