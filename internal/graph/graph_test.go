package graph

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rep(v string) Attributes {
	return Attributes{{Key: "Reputation", Value: v}}
}

func TestNew_Empty(t *testing.T) {
	g := New(true)
	assert.True(t, g.Directed())
	assert.Equal(t, 0, g.NumNodes())
	assert.Empty(t, g.NodeIDs())
	assert.Empty(t, g.Edges())
	assert.False(t, New(false).Directed())
}

func TestAddNode_GrowsRows(t *testing.T) {
	g := New(true)
	ids := []string{"a", "b", "c", "d"}
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, nil))
		require.Equal(t, i+1, g.NumNodes())

		// every existing row covers exactly the current node set
		for _, prior := range ids[:i+1] {
			row, err := g.Row(prior)
			require.NoError(t, err)
			require.Len(t, row, i+1)
			for j, cell := range row {
				assert.Equal(t, ids[j], cell.Target)
				assert.Zero(t, cell.Weight)
			}
		}
	}
	assert.Equal(t, ids, g.NodeIDs())
}

func TestAddNode_Duplicate(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("A", rep("10")))
	require.NoError(t, g.AddNode("B", rep("5")))
	require.NoError(t, g.AddEdge("A", "B", 3))
	before := g.ExportGML()

	err := g.AddNode("A", rep("99"))
	require.ErrorIs(t, err, ErrDuplicateNode)

	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, before, g.ExportGML())
	attrs, err := g.Attributes("A")
	require.NoError(t, err)
	v, _ := attrs.Get("Reputation")
	assert.Equal(t, "10", v)
}

func TestAddNode_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		attrs Attributes
		want  error
	}{
		{"empty id", "", nil, ErrEmptyNodeID},
		{"repeated key", "x", Attributes{{"k", "1"}, {"k", "2"}}, ErrInvalidAttribute},
		{"empty key", "x", Attributes{{"", "1"}}, ErrInvalidAttribute},
		{"slice value", "x", Attributes{{"k", []string{"a"}}}, ErrInvalidAttribute},
		{"nan value", "x", Attributes{{"k", math.NaN()}}, ErrInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(false)
			err := g.AddNode(tt.id, tt.attrs)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, g.NumNodes())
			assert.False(t, g.NodeExists(tt.id))
		})
	}
}

func TestAddNode_CopiesAttributes(t *testing.T) {
	g := New(true)
	attrs := Attributes{{Key: "DisplayName", Value: "alice"}}
	require.NoError(t, g.AddNode("u1", attrs))

	attrs[0].Value = "mallory"
	got, err := g.Attributes("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got[0].Value)

	got[0].Value = "eve"
	again, _ := g.Attributes("u1")
	assert.Equal(t, "alice", again[0].Value)
}

func TestAddEdge_MissingNode(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("a", nil))

	require.ErrorIs(t, g.AddEdge("a", "zz", 1), ErrMissingNode)
	require.ErrorIs(t, g.AddEdge("zz", "a", 1), ErrMissingNode)
	assert.Empty(t, g.Edges())
}

func TestAddEdge_InvalidWeight(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, g.AddEdge("a", "b", w), ErrInvalidWeight)
	}
	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestAddEdge_UndirectedSymmetry(t *testing.T) {
	g := New(false)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id, nil))
	}
	edges := []Edge{{"a", "b", 2}, {"c", "a", 4.5}, {"b", "b", 1}, {"b", "a", 7}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.Source, e.Target, e.Weight))
		ab, _ := g.Weight(e.Source, e.Target)
		ba, _ := g.Weight(e.Target, e.Source)
		assert.Equal(t, e.Weight, ab)
		assert.Equal(t, ab, ba)
	}

	// "b","a" overwrote "a","b"
	w, _ := g.Weight("a", "b")
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 3, g.NumEdges())
}

func TestAddEdge_DirectedIsOneWay(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", 3))

	ab, _ := g.Weight("a", "b")
	ba, _ := g.Weight("b", "a")
	assert.Equal(t, 3.0, ab)
	assert.Zero(t, ba)
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddEdge("a", "b", 5))

	w, _ := g.Weight("a", "b")
	assert.Equal(t, 5.0, w)
	assert.Len(t, g.Edges(), 1)
}

func TestAddEdge_Idempotent(t *testing.T) {
	once := New(true)
	twice := New(true)
	for _, g := range []*Graph{once, twice} {
		require.NoError(t, g.AddNode("a", nil))
		require.NoError(t, g.AddNode("b", nil))
	}
	require.NoError(t, once.AddEdge("a", "b", 4))
	require.NoError(t, twice.AddEdge("a", "b", 4))
	require.NoError(t, twice.AddEdge("a", "b", 4))

	assert.Equal(t, once.ExportGML(), twice.ExportGML())
	assert.Equal(t, once.Edges(), twice.Edges())
}

func TestAddEdge_ZeroRemoves(t *testing.T) {
	g := New(false)
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 0))

	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.NumEdges())
	row, err := g.Row("a")
	require.NoError(t, err)
	assert.Len(t, row, 2)
}

func TestLink_DefaultWeight(t *testing.T) {
	g := New(true)
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.Link("a", "a"))

	w, _ := g.Weight("a", "a")
	assert.Equal(t, DefaultWeight, w)
}

func TestEdges_ColumnOrder(t *testing.T) {
	g := New(true)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("n%d", i), nil))
	}
	// inserted out of column order
	require.NoError(t, g.AddEdge("n3", "n4", 1))
	require.NoError(t, g.AddEdge("n0", "n4", 1))
	require.NoError(t, g.AddEdge("n0", "n1", 2))
	require.NoError(t, g.AddEdge("n3", "n0", 3))

	want := []Edge{
		{"n0", "n1", 2},
		{"n0", "n4", 1},
		{"n3", "n0", 3},
		{"n3", "n4", 1},
	}
	assert.Equal(t, want, g.Edges())
}

func TestLookups_MissingNode(t *testing.T) {
	g := New(true)
	_, err := g.Weight("a", "b")
	assert.ErrorIs(t, err, ErrMissingNode)
	_, err = g.Row("a")
	assert.ErrorIs(t, err, ErrMissingNode)
	_, err = g.Attributes("a")
	assert.ErrorIs(t, err, ErrMissingNode)
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"4", 4, false},
		{" -2 ", -2, false},
		{"2.5", 2.5, false},
		{".5", 0.5, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"0x10", 0, true},
		{"1e999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeight(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidWeight, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
