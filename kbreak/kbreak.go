// File: kbreak.go
// Role: KBreak value object, matching validation, fusion/fission
//       classification.

package kbreak

import (
	"errors"

	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

// Sentinel errors for k-break construction.
var (
	// ErrInvalidMatching is returned when the start and result pairs do not
	// touch the same multiset of vertices.
	ErrInvalidMatching = errors.New("kbreak: start/result vertex multisets differ")

	// ErrNilVertex is returned when any pair contains a nil vertex.
	ErrNilVertex = errors.New("kbreak: nil vertex in pair")

	// ErrNilMulticolor is returned when no target multicolor is supplied.
	ErrNilMulticolor = errors.New("kbreak: nil or empty multicolor")
)

// VertexPair is one unordered adjacency endpoint pair of a k-break.
type VertexPair [2]vertex.Vertex

// BothInfinity reports whether both endpoints are infinity vertices. Such a
// pair denotes an artificial adjacency that is never materialized as an
// edge.
func (p VertexPair) BothInfinity() bool {
	return p[0].IsInfinity() && p[1].IsInfinity()
}

// KBreak describes a k-break: delete the start adjacencies, create the
// result adjacencies, all under one multicolor.
type KBreak struct {
	start  []VertexPair
	result []VertexPair
	mc     *multicolor.Multicolor
	data   map[string]any
	origin string
}

// Option configures optional KBreak attributes at construction.
type Option func(*KBreak)

// WithOrigin attaches a provenance tag naming what produced this k-break.
func WithOrigin(origin string) Option {
	return func(k *KBreak) { k.origin = origin }
}

// WithData attaches opaque auxiliary data.
func WithData(data map[string]any) Option {
	return func(k *KBreak) { k.data = data }
}

// New builds a KBreak after checking the degree-preserving matching between
// start and result pairs.
func New(start, result []VertexPair, mc *multicolor.Multicolor, opts ...Option) (*KBreak, error) {
	for _, p := range append(append([]VertexPair{}, start...), result...) {
		if p[0] == nil || p[1] == nil {
			return nil, ErrNilVertex
		}
	}
	if mc.Empty() {
		return nil, ErrNilMulticolor
	}
	if !ValidMatching(start, result) {
		return nil, ErrInvalidMatching
	}
	k := &KBreak{
		start:  append([]VertexPair(nil), start...),
		result: append([]VertexPair(nil), result...),
		mc:     mc.Clone(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// ValidMatching reports whether the multiset of vertices touched by the
// start pairs equals the multiset touched by the result pairs. Vertices are
// compared by canonical name.
func ValidMatching(start, result []VertexPair) bool {
	counts := make(map[string]int, 2*len(start))
	for _, p := range start {
		counts[p[0].Name()]++
		counts[p[1].Name()]++
	}
	for _, p := range result {
		counts[p[0].Name()]--
		counts[p[1].Name()]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// Valid re-checks the structural matching. The graph engine calls it right
// before application.
func (k *KBreak) Valid() bool {
	return k != nil && !k.mc.Empty() && ValidMatching(k.start, k.result)
}

// StartEdges returns a copy of the start pairs.
func (k *KBreak) StartEdges() []VertexPair {
	return append([]VertexPair(nil), k.start...)
}

// ResultEdges returns a copy of the result pairs.
func (k *KBreak) ResultEdges() []VertexPair {
	return append([]VertexPair(nil), k.result...)
}

// Multicolor returns the target multicolor. Callers must copy before
// mutating.
func (k *KBreak) Multicolor() *multicolor.Multicolor { return k.mc }

// Origin returns the provenance tag, empty when unset.
func (k *KBreak) Origin() string { return k.origin }

// Data returns the opaque auxiliary data, nil when unset.
func (k *KBreak) Data() map[string]any { return k.data }

// IsFusion reports the fusion shape: two start adjacencies each pairing a
// regular vertex with an open end, re-matched so the two regular vertices
// join and the two open ends are consumed.
func (k *KBreak) IsFusion() bool {
	return isEndJoinShape(k.start, k.result)
}

// IsFission reports the fission shape: one regular adjacency plus an
// artificial one, re-matched so the adjacency splits into two open ends.
func (k *KBreak) IsFission() bool {
	return isEndJoinShape(k.result, k.start)
}

// isEndJoinShape matches from = [(r1,i1),(r2,i2)] (one regular, one infinity
// vertex each) against to = {(r1,r2),(i1,i2)} in either order.
func isEndJoinShape(from, to []VertexPair) bool {
	if len(from) != 2 || len(to) != 2 {
		return false
	}
	var regular, irregular []string
	for _, p := range from {
		r, i := p[0], p[1]
		if r.IsInfinity() {
			r, i = i, r
		}
		if r.IsInfinity() || !i.IsInfinity() {
			return false
		}
		regular = append(regular, r.Name())
		irregular = append(irregular, i.Name())
	}
	rr, ii := to[0], to[1]
	if rr.BothInfinity() {
		rr, ii = ii, rr
	}
	if rr[0].IsInfinity() || rr[1].IsInfinity() || !ii.BothInfinity() {
		return false
	}
	return samePair(rr, regular) && samePair(ii, irregular)
}

// samePair compares an unordered pair against two names.
func samePair(p VertexPair, names []string) bool {
	a, b := p[0].Name(), p[1].Name()
	return (a == names[0] && b == names[1]) || (a == names[1] && b == names[0])
}
