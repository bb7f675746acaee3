package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/aganezov/bg-sub000/bgjson"
	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/kbreak"
	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/traversal"
	"github.com/aganezov/bg-sub000/vertex"
)

// RearrangementSuite exercises the engine end to end: mutations applied to a
// two-genome graph and the genome readings they produce.
type RearrangementSuite struct {
	suite.Suite
	g *core.BreakpointGraph
}

// SetupTest builds the shared baseline: red and blue agree on the single
// linear chromosome "1 2".
func (s *RearrangementSuite) SetupTest() {
	t := s.T()
	s.g = core.NewBreakpointGraph()
	adjacencies := [][2]vertex.Vertex{
		{infinity(t, "1t"), block(t, "1t")},
		{block(t, "1h"), block(t, "2t")},
		{block(t, "2h"), infinity(t, "2h")},
	}
	for _, p := range adjacencies {
		_, err := s.g.AddEdge(p[0], p[1], multicolor.New("red", "blue"), true)
		require.NoError(t, err)
	}
}

// order reads one genome and requires a single chromosome.
func (s *RearrangementSuite) order(g *core.BreakpointGraph, genome string) traversal.Fragment {
	t := s.T()
	fragments, err := traversal.BlocksOrder(g, genome)
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	return fragments[0]
}

// TestReversalDivergesGenomes applies a red-only 2-break reversing block 2
// and verifies the genomes now read differently.
func (s *RearrangementSuite) TestReversalDivergesGenomes() {
	t := s.T()
	v1h, v2t := block(t, "1h"), block(t, "2t")
	v2h, iv2 := block(t, "2h"), infinity(t, "2h")

	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v1h, v2t}, {v2h, iv2}},
		[]kbreak.VertexPair{{v1h, v2h}, {v2t, iv2}},
		multicolor.New("red"),
	)
	require.NoError(t, err)
	require.NoError(t, s.g.ApplyKBreak(kb, true))

	// red now reads "1 -2"; the walk emits its reversed reading "2 -1".
	red := s.order(s.g, "red")
	require.Equal(t, traversal.Linear, red.Topology)
	require.Equal(t, []traversal.Block{
		{Sign: traversal.Forward, Name: "2"}, {Sign: traversal.Reverse, Name: "1"},
	}, red.Blocks)

	// blue still reads "1 2" (reversed reading "-2 -1").
	blue := s.order(s.g, "blue")
	require.Equal(t, traversal.Linear, blue.Topology)
	require.Equal(t, []traversal.Block{
		{Sign: traversal.Reverse, Name: "2"}, {Sign: traversal.Reverse, Name: "1"},
	}, blue.Blocks)
}

// TestFusionJoinsChromosomes adds a red-only chromosome "3" and fuses it
// onto the shared chromosome, consuming the red open ends.
func (s *RearrangementSuite) TestFusionJoinsChromosomes() {
	t := s.T()
	_, err := s.g.AddEdge(infinity(t, "3t"), block(t, "3t"), multicolor.New("red"), true)
	require.NoError(t, err)
	_, err = s.g.AddEdge(block(t, "3h"), infinity(t, "3h"), multicolor.New("red"), true)
	require.NoError(t, err)

	v2h, iv2 := block(t, "2h"), infinity(t, "2h")
	v3t, iv3 := block(t, "3t"), infinity(t, "3t")
	kb, err := kbreak.New(
		[]kbreak.VertexPair{{v2h, iv2}, {v3t, iv3}},
		[]kbreak.VertexPair{{v2h, v3t}, {iv2, iv3}},
		multicolor.New("red"),
	)
	require.NoError(t, err)
	require.True(t, kb.IsFusion())
	require.NoError(t, s.g.ApplyKBreak(kb, true))

	// The red-only open end vanishes; the shared one still carries blue.
	require.False(t, s.g.HasVertex("3t__infinity"))
	require.True(t, s.g.HasVertex("2h__infinity"))

	red := s.order(s.g, "red")
	require.Equal(t, []traversal.Block{
		{Sign: traversal.Reverse, Name: "3"},
		{Sign: traversal.Reverse, Name: "2"},
		{Sign: traversal.Reverse, Name: "1"},
	}, red.Blocks)

	blue := s.order(s.g, "blue")
	require.Equal(t, []traversal.Block{
		{Sign: traversal.Reverse, Name: "2"}, {Sign: traversal.Reverse, Name: "1"},
	}, blue.Blocks)
}

// TestGuidedSplitKeepsReadings splits the shared adjacency by genome and
// verifies the readings are unaffected by the parallel-edge refinement.
func (s *RearrangementSuite) TestGuidedSplitKeepsReadings() {
	t := s.T()
	v1h, v2t := block(t, "1h"), block(t, "2t")

	redBefore, blueBefore := s.order(s.g, "red"), s.order(s.g, "blue")

	guidance := []*multicolor.Multicolor{multicolor.New("red")}
	require.NoError(t, s.g.SplitEdge(v1h, v2t, multicolor.New("red"), guidance))

	edges := s.g.EdgesBetweenTwoVertices(v1h, v2t)
	require.Len(t, edges, 2)

	require.Equal(t, redBefore, s.order(s.g, "red"))
	require.Equal(t, blueBefore, s.order(s.g, "blue"))
}

// TestSerializedStateRoundTrip pushes the whole state through the JSON
// boundary and verifies nothing observable changes.
func (s *RearrangementSuite) TestSerializedStateRoundTrip() {
	t := s.T()

	data, err := bgjson.Marshal(s.g, bgjson.Options{Indent: "  "})
	require.NoError(t, err)
	back, err := bgjson.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, s.g.Stats(), back.Stats())
	require.Equal(t, s.g.GetOverallSetOfColors(), back.GetOverallSetOfColors())
	require.Equal(t, s.order(s.g, "red"), s.order(back, "red"))
	require.Equal(t, s.order(s.g, "blue"), s.order(back, "blue"))
}

// Entry point for running the suite.
func TestRearrangementSuite(t *testing.T) {
	suite.Run(t, new(RearrangementSuite))
}
