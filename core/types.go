// File: types.go
// Role: BGEdge, sentinel errors, mutation options, fragment data helpers.
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w wrapping.

package core

import (
	"errors"

	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// Sentinel errors for breakpoint-graph operations.
var (
	// ErrNilVertex indicates an edge or operation referencing a nil vertex.
	ErrNilVertex = errors.New("core: nil vertex")

	// ErrEmptyMulticolor indicates an attempt to store an edge whose
	// multicolor is empty.
	ErrEmptyMulticolor = errors.New("core: empty multicolor")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates no parallel edge exists between the
	// requested vertices (or under the requested edge ID).
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidKBreak indicates a k-break that fails its
	// degree-preserving-matching check.
	ErrInvalidKBreak = errors.New("core: invalid k-break")

	// ErrNoTargetEdge indicates a k-break targeting an edge with a
	// multicolor that no parallel edge between the pair contains.
	ErrNoTargetEdge = errors.New("core: targeted edge with specified multicolor does not exist")
)

// Auxiliary-data keys for fragment provenance carried on edges.
const (
	// DataFragmentKey holds the fragment record inside BGEdge.Data.
	DataFragmentKey = "fragment"

	// FragmentNameKey holds the fragment name (string) or, after a fusion,
	// the ordered list of joined fragment names ([]string).
	FragmentNameKey = "name"

	// FragmentOrientationKey optionally holds the fragment's forward
	// orientation as an ordered pair of canonical vertex names ([2]string).
	FragmentOrientationKey = "forward_orientation"
)

// BGEdge is an undirected pair of vertices, one multicolor, and opaque
// auxiliary data. Two edges are equal iff their unordered vertex pair and
// multicolor match; auxiliary data does not participate in equality.
type BGEdge struct {
	Vertex1    vertex.Vertex
	Vertex2    vertex.Vertex
	Multicolor *multicolor.Multicolor
	Data       map[string]any
}

// NewBGEdge builds an edge value over the given pair and multicolor.
func NewBGEdge(v1, v2 vertex.Vertex, mc *multicolor.Multicolor) *BGEdge {
	return &BGEdge{Vertex1: v1, Vertex2: v2, Multicolor: mc}
}

// Equal reports whether o joins the same unordered vertex pair with an equal
// multicolor.
func (e *BGEdge) Equal(o *BGEdge) bool {
	if e == nil || o == nil {
		return e == o
	}
	if !e.Multicolor.Equal(o.Multicolor) {
		return false
	}
	a1, a2 := e.Vertex1.Name(), e.Vertex2.Name()
	b1, b2 := o.Vertex1.Name(), o.Vertex2.Name()
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// IsInfinityEdge reports whether either endpoint is an infinity vertex.
func (e *BGEdge) IsInfinityEdge() bool {
	return e.Vertex1.IsInfinity() || e.Vertex2.IsInfinity()
}

// clone deep-copies the edge: the multicolor and the data map are never
// shared between graphs.
func (e *BGEdge) clone() *BGEdge {
	return &BGEdge{
		Vertex1:    e.Vertex1,
		Vertex2:    e.Vertex2,
		Multicolor: e.Multicolor.Clone(),
		Data:       copyData(e.Data),
	}
}

// copyData deep-copies an auxiliary data map, descending into nested
// map[string]any and []string values.
func copyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch t := v.(type) {
		case map[string]any:
			out[k] = copyData(t)
		case []string:
			out[k] = append([]string(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

// SetFragment records the fragment provenance on e: the fragment name and,
// when from/to are given, the fragment's forward orientation along the edge.
func SetFragment(e *BGEdge, name string, from, to vertex.Vertex) {
	rec := map[string]any{FragmentNameKey: name}
	if from != nil && to != nil {
		rec[FragmentOrientationKey] = [2]string{from.Name(), to.Name()}
	}
	if e.Data == nil {
		e.Data = make(map[string]any, 1)
	}
	e.Data[DataFragmentKey] = rec
}

// FragmentNames returns the fragment names recorded on e, in order. A plain
// edge yields at most one name; a fusion edge may yield several.
func FragmentNames(e *BGEdge) []string {
	rec, ok := fragmentRecord(e)
	if !ok {
		return nil
	}
	switch t := rec[FragmentNameKey].(type) {
	case string:
		return []string{t}
	case []string:
		return append([]string(nil), t...)
	default:
		return nil
	}
}

// FragmentOrientation returns the recorded forward orientation of e's
// fragment as an ordered pair of vertex names.
func FragmentOrientation(e *BGEdge) ([2]string, bool) {
	rec, ok := fragmentRecord(e)
	if !ok {
		return [2]string{}, false
	}
	pair, ok := rec[FragmentOrientationKey].([2]string)
	return pair, ok
}

func fragmentRecord(e *BGEdge) (map[string]any, bool) {
	if e == nil || e.Data == nil {
		return nil, false
	}
	rec, ok := e.Data[DataFragmentKey].(map[string]any)
	return rec, ok
}

// mergeFragmentData combines the fragment provenance of two edges joined by
// a fusion into one record. Orientation does not survive a fusion; the name
// list keeps the join order.
func mergeFragmentData(a, b map[string]any) map[string]any {
	names := append(FragmentNames(&BGEdge{Data: a}), FragmentNames(&BGEdge{Data: b})...)
	if len(names) == 0 {
		return nil
	}
	rec := make(map[string]any, 1)
	if len(names) == 1 {
		rec[FragmentNameKey] = names[0]
	} else {
		rec[FragmentNameKey] = names
	}
	return map[string]any{DataFragmentKey: rec}
}

// MutateOption configures targeted mutations (delete, split).
type MutateOption func(*mutateOptions)

type mutateOptions struct {
	key          uint64
	hasKey       bool
	keepVertices bool
}

// WithKey pins the mutation to the parallel edge with the given ID instead
// of resolving the target by similarity score.
func WithKey(id uint64) MutateOption {
	return func(o *mutateOptions) { o.key, o.hasKey = id, true }
}

// WithKeepVertices keeps endpoints that lose their last incident edge in the
// graph as isolated vertices instead of letting them vanish.
func WithKeepVertices() MutateOption {
	return func(o *mutateOptions) { o.keepVertices = true }
}
