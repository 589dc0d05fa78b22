package dag_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/align3/dag"
)

func label(s string) dag.Label {
	l, err := dag.ParseLabel(s)
	if err != nil {
		panic(err)
	}

	return l
}

// chain is (0,0,0) → (1,0,0) → (2,0,0) with weights -1 then 5.
func chain(t *testing.T, opts ...dag.GraphOption) *dag.Graph {
	t.Helper()
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	edges := []dag.Edge{
		{Label: label("A--"), From: 0, To: 1, Weight: -1},
		{Label: label("C--"), From: 1, To: 2, Weight: 5},
	}
	g, err := dag.NewGraph(coords, edges, opts...)
	require.NoError(t, err)

	return g
}

// TestNewGraph_Validation covers each rejected shape.
func TestNewGraph_Validation(t *testing.T) {
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}
	cases := []struct {
		name  string
		edges []dag.Edge
		opts  []dag.GraphOption
	}{
		{"to out of range", []dag.Edge{{Label: label("A--"), From: 0, To: 9}}, nil},
		{"from negative", []dag.Edge{{Label: label("A--"), From: -2, To: 1}}, nil},
		{"backwards", []dag.Edge{{Label: label("A--"), From: 1, To: 0}}, nil},
		{"self loop", []dag.Edge{{Label: label("A--"), From: 1, To: 1}}, nil},
		{"step of two", []dag.Edge{{Label: label("A--"), From: 0, To: 2}}, nil},
		{"gap on moved axis", []dag.Edge{{Label: label("---"), From: 0, To: 1}}, nil},
		{"symbol on fixed axis", []dag.Edge{{Label: label("AB-"), From: 0, To: 1}}, nil},
		{"start out of range", nil, []dag.GraphOption{dag.WithStart(4)}},
		{"end out of range", nil, []dag.GraphOption{dag.WithEnd(7)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dag.NewGraph(coords, tc.edges, tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, dag.ErrMalformedInput)
			assert.Contains(t, err.Error(), dag.MethodNewGraph)
		})
	}

	_, err := dag.NewGraph(coords, []dag.Edge{{Label: label("AB-"), From: 0, To: 3, Weight: 1}})
	assert.NoError(t, err)
}

// TestOptions_Panic rejects negative vertex ids and worker counts.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { dag.WithStart(-1) })
	assert.Panics(t, func() { dag.WithEnd(-1) })
	assert.Panics(t, func() { dag.WithWorkers(0) })
}

// TestParseLabel checks the length rule.
func TestParseLabel(t *testing.T) {
	l, err := dag.ParseLabel("A-C")
	require.NoError(t, err)
	assert.Equal(t, "A-C", l.String())

	_, err = dag.ParseLabel("AC")
	assert.ErrorIs(t, err, dag.ErrMalformedInput)
}

// TestIncoming keeps insertion order per target.
func TestIncoming(t *testing.T) {
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	edges := []dag.Edge{
		{Label: label("-B-"), From: 1, To: 3},
		{Label: label("AB-"), From: 0, To: 3},
		{Label: label("A--"), From: 0, To: 1},
		{Label: label("A--"), From: 2, To: 3},
	}
	g, err := dag.NewGraph(coords, edges)
	require.NoError(t, err)

	assert.Equal(t, []dag.EdgeID{0, 1, 3}, g.Incoming(3))
	assert.Equal(t, []dag.EdgeID{2}, g.Incoming(1))
	assert.Empty(t, g.Incoming(0))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, dag.Coord{I: 1, J: 1}, g.Coord(3))
}

// TestSolve_Empty reports no path for a graph without vertices.
func TestSolve_Empty(t *testing.T) {
	g, err := dag.NewGraph(dag.CoordList{}, nil)
	require.NoError(t, err)

	res, err := g.Solve()
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, dag.NoVertex, res.EndID)
}

// TestSolve_SingleVertex yields an empty path of weight 0.
func TestSolve_SingleVertex(t *testing.T) {
	g, err := dag.NewGraph(dag.CoordList{{}}, nil, dag.WithStart(0), dag.WithEnd(0))
	require.NoError(t, err)

	res, err := g.Solve()
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Path)
	assert.Equal(t, res.Start, res.End)
}

// TestSolve_Local lets the path start anywhere and drops the negative prefix.
func TestSolve_Local(t *testing.T) {
	res, err := chain(t).Solve()
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, 5.0, res.Score)
	assert.Equal(t, dag.Coord{I: 1}, res.Start)
	assert.Equal(t, dag.Coord{I: 2}, res.End)
	assert.Equal(t, []dag.Label{label("C--")}, res.Path)
}

// TestSolve_StartConstraint must pay for the negative first edge.
func TestSolve_StartConstraint(t *testing.T) {
	res, err := chain(t, dag.WithStart(0)).Solve()
	require.NoError(t, err)

	assert.Equal(t, 4.0, res.Score)
	assert.Equal(t, dag.Coord{}, res.Start)
	assert.Equal(t, []dag.Label{label("A--"), label("C--")}, res.Path)
	assert.Equal(t, [3]string{"AC", "--", "--"}, res.Rows())
}

// TestSolve_StartAndEnd forces the path onto the negative edge alone.
func TestSolve_StartAndEnd(t *testing.T) {
	res, err := chain(t, dag.WithStart(0), dag.WithEnd(1)).Solve()
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, -1.0, res.Score)
	assert.Equal(t, dag.VertexID(1), res.EndID)
	assert.Equal(t, []dag.Label{label("A--")}, res.Path)
}

// TestSolve_TieKeepsFirst picks the earliest vertex among equal maxima.
func TestSolve_TieKeepsFirst(t *testing.T) {
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}}
	g, err := dag.NewGraph(coords, []dag.Edge{{Label: label("A--"), From: 0, To: 1, Weight: 0}})
	require.NoError(t, err)

	res, err := g.Solve()
	require.NoError(t, err)
	assert.Equal(t, dag.VertexID(0), res.EndID)
	assert.Equal(t, dag.VertexID(0), res.StartID)
	assert.Empty(t, res.Path)
}

// TestSolve_NoPath covers an unreachable end and an end preceding the start.
func TestSolve_NoPath(t *testing.T) {
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	edges := []dag.Edge{{Label: label("A--"), From: 0, To: 1, Weight: 3}}

	g, err := dag.NewGraph(coords, edges, dag.WithStart(1), dag.WithEnd(2))
	require.NoError(t, err)
	res, err := g.Solve()
	require.NoError(t, err)
	assert.False(t, res.Found)

	g, err = dag.NewGraph(coords, edges, dag.WithStart(2), dag.WithEnd(1))
	require.NoError(t, err)
	for _, workers := range []int{1, 4} {
		res, err = g.Solve(dag.WithWorkers(workers))
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Equal(t, 0.0, res.Score)
	}
}

// TestSolve_Cancelled surfaces the context error from both solvers.
func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := chain(t)
	_, err := g.Solve(dag.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = g.Solve(dag.WithContext(ctx), dag.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_Repeatable keeps no state between calls.
func TestSolve_Repeatable(t *testing.T) {
	g := chain(t, dag.WithStart(0))
	a, err := g.Solve()
	require.NoError(t, err)
	b, err := g.Solve()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestHistogram counts repeated labels and keeps them sorted.
func TestHistogram(t *testing.T) {
	coords := dag.CoordList{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	edges := []dag.Edge{
		{Label: label("C--"), From: 0, To: 1, Weight: -12},
		{Label: label("A--"), From: 1, To: 2, Weight: -12},
		{Label: label("C--"), From: 2, To: 3, Weight: -12},
	}
	g, err := dag.NewGraph(coords, edges)
	require.NoError(t, err)

	h := g.Histogram()
	assert.Equal(t, 2, h.Len())

	w, n, ok := h.Lookup(label("C--"))
	require.True(t, ok)
	assert.Equal(t, -12.0, w)
	assert.Equal(t, 2, n)

	_, _, ok = h.Lookup(label("G--"))
	assert.False(t, ok)

	var order []string
	h.Each(func(l dag.Label, _ float64, _ int) { order = append(order, l.String()) })
	assert.Equal(t, []string{"A--", "C--"}, order)
}
