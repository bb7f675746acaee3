package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/kbreak"
	"github.com/aganezov/bg-sub000/multicolor"
)

// TestApplyKBreak_TwoBreakReversal re-matches two adjacencies under one
// color, the classic reversal move.
func TestApplyKBreak_TwoBreakReversal(t *testing.T) {
	g := core.NewBreakpointGraph()
	v1, v2 := block(t, "1h"), block(t, "2t")
	v3, v4 := block(t, "2h"), block(t, "3t")

	_, err := g.AddEdge(v1, v2, multicolor.New("red", "blue"), false)
	require.NoError(t, err)
	_, err = g.AddEdge(v3, v4, multicolor.New("red"), false)
	require.NoError(t, err)

	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v1, v2}, {v3, v4}},
		[]kbreak.VertexPair{{v1, v3}, {v2, v4}},
		multicolor.New("red"),
	)
	require.NoError(t, err)
	require.NoError(t, g.ApplyKBreak(kb, true))

	// red moved onto the re-matched pairs; blue stayed behind.
	old, err := g.GetEdgeByTwoVertices(v1, v2)
	require.NoError(t, err)
	require.True(t, old.Multicolor.Equal(multicolor.New("blue")))

	e13, err := g.GetEdgeByTwoVertices(v1, v3)
	require.NoError(t, err)
	require.True(t, e13.Multicolor.Equal(multicolor.New("red")))
	e24, err := g.GetEdgeByTwoVertices(v2, v4)
	require.NoError(t, err)
	require.True(t, e24.Multicolor.Equal(multicolor.New("red")))

	// The fully drained (2h,3t) adjacency is gone, its regular vertices are
	// deliberately kept.
	_, err = g.GetEdgeByTwoVertices(v3, v4)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.True(t, g.HasVertex("2h"))
	require.True(t, g.HasVertex("3t"))
}

// TestApplyKBreak_FusionScenario runs an end-to-end fusion: two
// infinity-adjacent edges fuse into a single adjacency, consuming both open
// ends.
func TestApplyKBreak_FusionScenario(t *testing.T) {
	g := core.NewBreakpointGraph()
	v1, v2 := block(t, "1h"), block(t, "2t")
	iv1, iv2 := infinity(t, "1h"), infinity(t, "2t")

	e1 := core.NewBGEdge(v1, iv1, multicolor.New("red"))
	core.SetFragment(e1, "scaffoldA", v1, iv1)
	_, err := g.AddBGEdge(e1, false)
	require.NoError(t, err)

	e2 := core.NewBGEdge(v2, iv2, multicolor.New("red"))
	core.SetFragment(e2, "scaffoldB", v2, iv2)
	_, err = g.AddBGEdge(e2, false)
	require.NoError(t, err)

	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v1, iv1}, {v2, iv2}},
		[]kbreak.VertexPair{{v1, v2}, {iv1, iv2}},
		multicolor.New("red"),
	)
	require.NoError(t, err)
	require.True(t, kb.IsFusion())
	require.NoError(t, g.ApplyKBreak(kb, true))

	// A single (v1,v2) edge remains; the open-end markers are pruned.
	require.Equal(t, 1, g.Stats().EdgeCount)
	fused, err := g.GetEdgeByTwoVertices(v1, v2)
	require.NoError(t, err)
	require.True(t, fused.Multicolor.Equal(multicolor.New("red")))
	require.False(t, g.HasVertex(iv1.Name()))
	require.False(t, g.HasVertex(iv2.Name()))

	// Fragment provenance of both consumed ends is combined.
	require.Equal(t, []string{"scaffoldA", "scaffoldB"}, core.FragmentNames(fused))

	// Re-applying without re-establishing the multicolor is a structural
	// error, not a silent no-op.
	err = g.ApplyKBreak(kb, true)
	require.Error(t, err)
	require.True(t,
		errors.Is(err, core.ErrVertexNotFound) || errors.Is(err, core.ErrNoTargetEdge))
	require.Equal(t, 1, g.Stats().EdgeCount, "failed k-break must not mutate the graph")
}

// TestApplyKBreak_MissingMulticolor rejects application when no parallel
// edge carries the full target multicolor.
func TestApplyKBreak_MissingMulticolor(t *testing.T) {
	g := core.NewBreakpointGraph()
	v1, v2 := block(t, "1h"), block(t, "2t")
	v3, v4 := block(t, "2h"), block(t, "3t")

	_, err := g.AddEdge(v1, v2, multicolor.New("red"), false)
	require.NoError(t, err)
	_, err = g.AddEdge(v3, v4, multicolor.New("red"), false)
	require.NoError(t, err)

	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v1, v2}, {v3, v4}},
		[]kbreak.VertexPair{{v1, v3}, {v2, v4}},
		multicolor.New("red", "blue"),
	)
	require.NoError(t, err)

	err = g.ApplyKBreak(kb, true)
	require.ErrorIs(t, err, core.ErrNoTargetEdge)
}

// TestApplyKBreak_AbsentVertex rejects application referencing vertices
// outside the graph.
func TestApplyKBreak_AbsentVertex(t *testing.T) {
	g := core.NewBreakpointGraph()
	v1, v2 := block(t, "1h"), block(t, "2t")
	_, err := g.AddEdge(v1, v2, multicolor.New("red"), false)
	require.NoError(t, err)

	v3, v4 := block(t, "2h"), block(t, "3t")
	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v1, v2}, {v3, v4}},
		[]kbreak.VertexPair{{v1, v3}, {v2, v4}},
		multicolor.New("red"),
	)
	require.NoError(t, err)

	err = g.ApplyKBreak(kb, true)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestApplyKBreak_NilAndInvalid covers the validity re-check.
func TestApplyKBreak_NilAndInvalid(t *testing.T) {
	g := core.NewBreakpointGraph()
	require.ErrorIs(t, g.ApplyKBreak(nil, true), core.ErrInvalidKBreak)
}
