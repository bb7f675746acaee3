// File: bgjson.go
// Role: JSON codec for breakpoint-graph state.
// Invariants:
//   - Emitted documents are deterministic for a given graph state.
//   - Decoding validates referential integrity before returning a graph.

package bgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// Sentinel errors for document encoding and decoding.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to Marshal
	// or Write.
	ErrNilGraph = errors.New("bgjson: graph is nil")

	// ErrMissingField is returned when a required top-level field is
	// absent from the document.
	ErrMissingField = errors.New("bgjson: required top-level field missing")

	// ErrUnknownVertexRef is returned when an edge references a vertex id
	// with no vertices entry.
	ErrUnknownVertexRef = errors.New("bgjson: edge references unknown vertex id")

	// ErrUnknownGenomeRef is returned when an edge multicolor references a
	// genome id with no genomes entry.
	ErrUnknownGenomeRef = errors.New("bgjson: edge multicolor references unknown genome id")

	// ErrEmptyEdgeMulticolor is returned when an edge carries no
	// multicolor entries.
	ErrEmptyEdgeMulticolor = errors.New("bgjson: edge carries empty multicolor")
)

// Document is the top-level serialized form of a breakpoint graph.
type Document struct {
	Vertices []VertexRecord `json:"vertices"`
	Genomes  []GenomeRecord `json:"genomes"`
	Edges    []EdgeRecord   `json:"edges"`
}

// VertexRecord binds a vertex name to its document-local numeric id.
type VertexRecord struct {
	Name string `json:"name"`
	VID  int    `json:"v_id"`
}

// GenomeRecord binds a genome name to its document-local numeric id.
type GenomeRecord struct {
	Name string `json:"name"`
	GID  int    `json:"g_id"`
}

// EdgeRecord references its endpoints by vertex id and lists one genome id
// per unit of multicolor multiplicity.
type EdgeRecord struct {
	Vertex1ID  int   `json:"vertex1_id"`
	Vertex2ID  int   `json:"vertex2_id"`
	Multicolor []int `json:"multicolor"`
}

// Options configures serialization. The zero value emits a compact
// document. Options is a plain value passed per call and is never retained.
type Options struct {
	// Indent, when non-empty, pretty-prints with the given indentation
	// string.
	Indent string
}

// DefaultOptions returns the compact-output defaults.
func DefaultOptions() Options {
	return Options{}
}

// Marshal serializes g into its JSON document form.
func Marshal(g *core.BreakpointGraph, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g, opts); err != nil {
		return nil, err
	}
	// json.Encoder appends a trailing newline; Marshal output stays bare.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write serializes g into its JSON document form onto w.
func Write(w io.Writer, g *core.BreakpointGraph, opts Options) error {
	if g == nil {
		return ErrNilGraph
	}
	doc := buildDocument(g)
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(doc)
}

// Unmarshal decodes a JSON document into a breakpoint graph.
func Unmarshal(data []byte) (*core.BreakpointGraph, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a JSON document from r into a breakpoint graph.
func Read(r io.Reader) (*core.BreakpointGraph, error) {
	// Pointer fields distinguish an absent top-level key from an empty
	// list.
	var raw struct {
		Vertices *[]VertexRecord `json:"vertices"`
		Genomes  *[]GenomeRecord `json:"genomes"`
		Edges    *[]EdgeRecord   `json:"edges"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bgjson: decode: %w", err)
	}
	switch {
	case raw.Vertices == nil:
		return nil, fmt.Errorf("vertices: %w", ErrMissingField)
	case raw.Genomes == nil:
		return nil, fmt.Errorf("genomes: %w", ErrMissingField)
	case raw.Edges == nil:
		return nil, fmt.Errorf("edges: %w", ErrMissingField)
	}
	return buildGraph(*raw.Vertices, *raw.Genomes, *raw.Edges)
}

// buildDocument produces the deterministic document form of g.
func buildDocument(g *core.BreakpointGraph) Document {
	vertices := g.Vertices()
	vRecords := make([]VertexRecord, len(vertices))
	vIDs := make(map[string]int, len(vertices))
	for i, v := range vertices {
		id := i + 1
		vRecords[i] = VertexRecord{Name: v.Name(), VID: id}
		vIDs[v.Name()] = id
	}

	colors := g.GetOverallSetOfColors()
	gRecords := make([]GenomeRecord, len(colors))
	gIDs := make(map[string]int, len(colors))
	for i, c := range colors {
		id := i + 1
		gRecords[i] = GenomeRecord{Name: c, GID: id}
		gIDs[c] = id
	}

	edges := g.Edges()
	eRecords := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		var mc []int
		for _, c := range e.Multicolor.Colors() {
			for n := 0; n < e.Multicolor.Multiplicity(c); n++ {
				mc = append(mc, gIDs[c])
			}
		}
		eRecords[i] = EdgeRecord{
			Vertex1ID:  vIDs[e.Vertex1.Name()],
			Vertex2ID:  vIDs[e.Vertex2.Name()],
			Multicolor: mc,
		}
	}

	return Document{Vertices: vRecords, Genomes: gRecords, Edges: eRecords}
}

// buildGraph validates the records and materializes the graph. Edges are
// inserted non-merging so the serialized parallel-edge structure survives a
// round trip.
func buildGraph(vRecords []VertexRecord, gRecords []GenomeRecord, eRecords []EdgeRecord) (*core.BreakpointGraph, error) {
	verticesByID := make(map[int]vertex.Vertex, len(vRecords))
	for _, rec := range vRecords {
		v, err := vertex.Parse(rec.Name)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", rec.VID, err)
		}
		verticesByID[rec.VID] = v
	}
	genomesByID := make(map[int]string, len(gRecords))
	for _, rec := range gRecords {
		genomesByID[rec.GID] = rec.Name
	}

	g := core.NewBreakpointGraph()
	for _, rec := range vRecords {
		if _, err := g.AddVertex(verticesByID[rec.VID]); err != nil {
			return nil, err
		}
	}
	for i, rec := range eRecords {
		v1, ok := verticesByID[rec.Vertex1ID]
		if !ok {
			return nil, fmt.Errorf("edge %d vertex id %d: %w", i, rec.Vertex1ID, ErrUnknownVertexRef)
		}
		v2, ok := verticesByID[rec.Vertex2ID]
		if !ok {
			return nil, fmt.Errorf("edge %d vertex id %d: %w", i, rec.Vertex2ID, ErrUnknownVertexRef)
		}
		if len(rec.Multicolor) == 0 {
			return nil, fmt.Errorf("edge %d: %w", i, ErrEmptyEdgeMulticolor)
		}
		counts := make(map[string]int, len(rec.Multicolor))
		for _, gid := range rec.Multicolor {
			name, ok := genomesByID[gid]
			if !ok {
				return nil, fmt.Errorf("edge %d genome id %d: %w", i, gid, ErrUnknownGenomeRef)
			}
			counts[name]++
		}
		if _, err := g.AddEdge(v1, v2, multicolor.NewFromMap(counts), false); err != nil {
			return nil, err
		}
	}
	return g, nil
}
