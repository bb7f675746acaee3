package bgjson_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aganezov/bg-sub000/bgjson"
	"github.com/aganezov/bg-sub000/core"
	"github.com/aganezov/bg-sub000/multicolor"
	"github.com/aganezov/bg-sub000/vertex"
)

func block(t *testing.T, root string) *vertex.BlockVertex {
	t.Helper()
	v, err := vertex.NewBlockVertex(root)
	require.NoError(t, err)
	return v
}

func infinity(t *testing.T, root string) *vertex.InfinityVertex {
	t.Helper()
	v, err := vertex.NewInfinityVertex(root)
	require.NoError(t, err)
	return v
}

// sampleGraph wires a small two-genome state with an infinity edge, a
// multi-unit multicolor, and a pair of parallel edges.
func sampleGraph(t *testing.T) *core.BreakpointGraph {
	t.Helper()
	g := core.NewBreakpointGraph()
	v1h, v2t := block(t, "1h"), block(t, "2t")
	_, err := g.AddEdge(v1h, v2t, multicolor.New("red", "red", "blue"), false)
	require.NoError(t, err)
	_, err = g.AddEdge(v1h, v2t, multicolor.New("blue"), false)
	require.NoError(t, err)
	_, err = g.AddEdge(block(t, "2h"), infinity(t, "2h"), multicolor.New("red"), false)
	require.NoError(t, err)
	return g
}

func TestMarshal_DeterministicDocument(t *testing.T) {
	g := sampleGraph(t)

	data, err := bgjson.Marshal(g, bgjson.DefaultOptions())
	require.NoError(t, err)
	again, err := bgjson.Marshal(g, bgjson.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, data, again)

	var doc bgjson.Document
	require.NoError(t, json.Unmarshal(data, &doc))

	// Vertices sorted by name, genomes sorted by name, ids start at 1.
	require.Equal(t, []bgjson.VertexRecord{
		{Name: "1h", VID: 1},
		{Name: "2h", VID: 2},
		{Name: "2h__infinity", VID: 3},
		{Name: "2t", VID: 4},
	}, doc.Vertices)
	require.Equal(t, []bgjson.GenomeRecord{
		{Name: "blue", GID: 1},
		{Name: "red", GID: 2},
	}, doc.Genomes)

	// Edges in insertion order; one genome id per multiplicity unit.
	require.Equal(t, []bgjson.EdgeRecord{
		{Vertex1ID: 1, Vertex2ID: 4, Multicolor: []int{1, 2, 2}},
		{Vertex1ID: 1, Vertex2ID: 4, Multicolor: []int{1}},
		{Vertex1ID: 2, Vertex2ID: 3, Multicolor: []int{2}},
	}, doc.Edges)
}

func TestMarshal_IndentOption(t *testing.T) {
	g := sampleGraph(t)

	compact, err := bgjson.Marshal(g, bgjson.DefaultOptions())
	require.NoError(t, err)
	require.NotContains(t, string(compact), "\n")

	pretty, err := bgjson.Marshal(g, bgjson.Options{Indent: "  "})
	require.NoError(t, err)
	require.Contains(t, string(pretty), "\n  \"vertices\"")
	require.JSONEq(t, string(compact), string(pretty))
}

func TestMarshal_NilGraph(t *testing.T) {
	_, err := bgjson.Marshal(nil, bgjson.DefaultOptions())
	require.ErrorIs(t, err, bgjson.ErrNilGraph)
}

func TestRoundTrip(t *testing.T) {
	g := sampleGraph(t)

	data, err := bgjson.Marshal(g, bgjson.DefaultOptions())
	require.NoError(t, err)
	back, err := bgjson.Unmarshal(data)
	require.NoError(t, err)

	require.Equal(t, g.Stats(), back.Stats())
	require.Equal(t, g.GetOverallSetOfColors(), back.GetOverallSetOfColors())

	// Parallel edge structure survives: the (1h,2t) pair still carries two
	// distinct edges with the original multicolors.
	v1h, v2t := block(t, "1h"), block(t, "2t")
	edges := back.EdgesBetweenTwoVertices(v1h, v2t)
	require.Len(t, edges, 2)
	require.True(t, edges[0].Multicolor.Equal(multicolor.New("red", "red", "blue")))
	require.True(t, edges[1].Multicolor.Equal(multicolor.New("blue")))

	// And the emitted document is stable across a round trip.
	again, err := bgjson.Marshal(back, bgjson.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestUnmarshal_IsolatedVertexSurvives(t *testing.T) {
	doc := `{
		"vertices": [{"name": "1h", "v_id": 1}, {"name": "1t", "v_id": 2}, {"name": "2t", "v_id": 3}],
		"genomes": [{"name": "red", "g_id": 1}],
		"edges": [{"vertex1_id": 1, "vertex2_id": 3, "multicolor": [1]}]
	}`
	g, err := bgjson.Unmarshal([]byte(doc))
	require.NoError(t, err)
	require.True(t, g.HasVertex("1t"))
	require.Equal(t, 3, g.Stats().VertexCount)
}

func TestUnmarshal_MissingTopLevelFields(t *testing.T) {
	cases := map[string]string{
		"vertices": `{"genomes": [], "edges": []}`,
		"genomes":  `{"vertices": [], "edges": []}`,
		"edges":    `{"vertices": [], "genomes": []}`,
	}
	for field, doc := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := bgjson.Unmarshal([]byte(doc))
			require.ErrorIs(t, err, bgjson.ErrMissingField)
			require.Contains(t, err.Error(), field)
		})
	}
}

func TestUnmarshal_IntegrityRejections(t *testing.T) {
	t.Run("dangling vertex id", func(t *testing.T) {
		doc := `{
			"vertices": [{"name": "1h", "v_id": 1}],
			"genomes": [{"name": "red", "g_id": 1}],
			"edges": [{"vertex1_id": 1, "vertex2_id": 99, "multicolor": [1]}]
		}`
		_, err := bgjson.Unmarshal([]byte(doc))
		require.ErrorIs(t, err, bgjson.ErrUnknownVertexRef)
	})

	t.Run("dangling genome id", func(t *testing.T) {
		doc := `{
			"vertices": [{"name": "1h", "v_id": 1}, {"name": "2t", "v_id": 2}],
			"genomes": [{"name": "red", "g_id": 1}],
			"edges": [{"vertex1_id": 1, "vertex2_id": 2, "multicolor": [7]}]
		}`
		_, err := bgjson.Unmarshal([]byte(doc))
		require.ErrorIs(t, err, bgjson.ErrUnknownGenomeRef)
	})

	t.Run("empty edge multicolor", func(t *testing.T) {
		doc := `{
			"vertices": [{"name": "1h", "v_id": 1}, {"name": "2t", "v_id": 2}],
			"genomes": [{"name": "red", "g_id": 1}],
			"edges": [{"vertex1_id": 1, "vertex2_id": 2, "multicolor": []}]
		}`
		_, err := bgjson.Unmarshal([]byte(doc))
		require.ErrorIs(t, err, bgjson.ErrEmptyEdgeMulticolor)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := bgjson.Read(strings.NewReader(`{"vertices": [`))
		require.Error(t, err)
	})
}
