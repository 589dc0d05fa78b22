package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/align3/builder"
	"github.com/katalvlaran/align3/dag"
	"github.com/katalvlaran/align3/scoring"
	"github.com/katalvlaran/align3/sequence"
)

func seq(s string) *sequence.Sequence { return sequence.FromString(s, s) }

// randomProtein draws n residues from the BLOSUM62 alphabet.
func randomProtein(r *rand.Rand, n int) *sequence.Sequence {
	alpha := scoring.Blosum62.Alphabet()
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alpha[r.Intn(len(alpha))]
	}

	return sequence.New("rnd", buf)
}

// TestBuild_Counts checks V and E against the closed forms and a hand count.
func TestBuild_Counts(t *testing.T) {
	g, err := builder.Build(seq("AC"), seq("DEF"), seq("G"))
	require.NoError(t, err)

	assert.Equal(t, 3*4*2, g.VertexCount())
	assert.Equal(t, 81, g.EdgeCount()) // 2+3+1 + 18+6+9 + 42

	d := builder.Dims{N1: 2, N2: 3, N3: 1}
	e, ok := d.EdgeCount()
	require.True(t, ok)
	assert.Equal(t, uint64(g.EdgeCount()), e)
}

// TestBuild_EdgeShape verifies labels, steps and out-degrees on every edge.
func TestBuild_EdgeShape(t *testing.T) {
	s := [3]*sequence.Sequence{seq("MKV"), seq("WY"), seq("HPQ")}
	g, err := builder.Build(s[0], s[1], s[2])
	require.NoError(t, err)

	outDeg := make([]int, g.VertexCount())
	for _, e := range g.Edges() {
		from, to := g.Coord(e.From), g.Coord(e.To)
		step := to.Sum() - from.Sum()
		assert.True(t, step >= 1 && step <= 3, "step %d on %s→%s", step, from, to)

		fromPos := [3]int{from.I, from.J, from.K}
		toPos := [3]int{to.I, to.J, to.K}
		for x := 0; x < 3; x++ {
			if toPos[x] == fromPos[x] {
				assert.Equal(t, scoring.Gap, e.Label[x])
			} else {
				assert.Equal(t, s[x].At(fromPos[x]), e.Label[x])
			}
		}
		assert.Equal(t, float64(scoring.SumOfPairs(e.Label[0], e.Label[1], e.Label[2])), e.Weight)
		outDeg[e.From]++
	}

	d := builder.Dims{N1: 3, N2: 2, N3: 3}
	assert.Equal(t, 7, outDeg[d.Index(dag.Coord{})])
	assert.Equal(t, 3, outDeg[d.Index(dag.Coord{I: 3})])
	assert.Equal(t, 1, outDeg[d.Index(dag.Coord{I: 3, J: 2})])
	assert.Equal(t, 0, outDeg[d.Index(d.Terminal())])
}

// TestBuild_SingleColumn aligns "A","A","A" into one AAA column.
func TestBuild_SingleColumn(t *testing.T) {
	g, err := builder.Build(seq("A"), seq("A"), seq("A"))
	require.NoError(t, err)

	res, err := g.Solve()
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, float64(3*scoring.PairwiseScore('A', 'A')), res.Score)
	assert.Equal(t, float64(scoring.SumOfPairs('A', 'A', 'A')), res.Score)
	require.Len(t, res.Path, 1)
	assert.Equal(t, "AAA", res.Path[0].String())
	assert.Equal(t, dag.Coord{}, res.Start)
	assert.Equal(t, dag.Coord{I: 1, J: 1, K: 1}, res.End)
}

// TestBuild_StartAtOrigin always reconstructs back to (0,0,0).
func TestBuild_StartAtOrigin(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		g, err := builder.Build(randomProtein(r, 6), randomProtein(r, 5), randomProtein(r, 7), builder.WithStartAtOrigin())
		require.NoError(t, err)

		res, err := g.Solve()
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, dag.Coord{}, res.Start)
		assert.Equal(t, dag.VertexID(0), res.StartID)
	}
}

// TestBuild_EndAtTerminal forces the end even when stopping early scores more.
func TestBuild_EndAtTerminal(t *testing.T) {
	s1, s2, s3 := seq("AP"), seq("AW"), seq("AC")

	free, err := builder.Build(s1, s2, s3)
	require.NoError(t, err)
	res, err := free.Solve()
	require.NoError(t, err)
	assert.Equal(t, dag.Coord{I: 1, J: 1, K: 1}, res.End)
	assert.Equal(t, 12.0, res.Score)

	bound, err := builder.Build(s1, s2, s3, builder.WithEndAtTerminal())
	require.NoError(t, err)
	res, err = bound.Solve()
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, dag.Coord{I: 2, J: 2, K: 2}, res.End)
	assert.Equal(t, 3.0, res.Score) // AAA (12) then PWC (-9)
	assert.Equal(t, [3]string{"AP", "AW", "AC"}, res.Rows())
}

// TestBuild_Global covers both constraints together.
func TestBuild_Global(t *testing.T) {
	g, err := builder.Build(seq("HEAGAWGHEE"), seq("PAWHEAE"), seq("HEAE"), builder.WithGlobal())
	require.NoError(t, err)

	res, err := g.Solve()
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, dag.Coord{}, res.Start)
	assert.Equal(t, dag.Coord{I: 10, J: 7, K: 4}, res.End)

	rows := res.Rows()
	for x, want := range []string{"HEAGAWGHEE", "PAWHEAE", "HEAE"} {
		got := make([]byte, 0, len(rows[x]))
		for i := 0; i < len(rows[x]); i++ {
			if rows[x][i] != scoring.Gap {
				got = append(got, rows[x][i])
			}
		}
		assert.Equal(t, want, string(got), "row %d", x)
	}
}

// TestBuild_Empty yields the single origin vertex and a zero path.
func TestBuild_Empty(t *testing.T) {
	g, err := builder.Build(seq(""), seq(""), seq(""), builder.WithGlobal())
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())

	res, err := g.Solve()
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Path)
}

// TestBuild_Ceilings fails fast with ErrResourceExhausted.
func TestBuild_Ceilings(t *testing.T) {
	_, err := builder.Build(seq("AA"), seq("AA"), seq("AA"), builder.WithMaxVertices(26))
	require.Error(t, err)
	assert.ErrorIs(t, err, dag.ErrResourceExhausted)
	assert.Contains(t, err.Error(), builder.MethodBuild)

	_, err = builder.Build(seq("AA"), seq("AA"), seq("AA"), builder.WithMaxEdges(10))
	assert.ErrorIs(t, err, dag.ErrResourceExhausted)

	_, err = builder.Build(seq("AA"), seq("AA"), seq("AA"), builder.WithMaxVertices(27))
	assert.NoError(t, err)
}

// TestBuildSet_Malformed rejects wrong counts and nil members.
func TestBuildSet_Malformed(t *testing.T) {
	var nilSeq *sequence.Sequence
	cases := map[string][]builder.Sequence{
		"two":       {seq("A"), seq("C")},
		"four":      {seq("A"), seq("C"), seq("D"), seq("E")},
		"nil iface": {seq("A"), nil, seq("D")},
		"nil ptr":   {seq("A"), seq("C"), nilSeq},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildSet(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, dag.ErrMalformedInput)
			assert.Contains(t, err.Error(), builder.MethodBuildSet)
		})
	}

	g, err := builder.BuildSet([]builder.Sequence{seq("A"), seq("C"), seq("D")})
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
}

// TestBuild_CustomScorer routes column weights through WithScorer.
func TestBuild_CustomScorer(t *testing.T) {
	m := scoring.NewModel(scoring.WithGapCost(-1))
	g, err := builder.Build(seq("A"), seq(""), seq(""), builder.WithScorer(m))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, -2.0, g.Edge(0).Weight) // A- plus A-, gap-gap is 0
}

// TestSolve_WavefrontMatchesSequential compares both solvers on large levels.
func TestSolve_WavefrontMatchesSequential(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a 41³ graph")
	}
	r := rand.New(rand.NewSource(42))
	s1, s2, s3 := randomProtein(r, 40), randomProtein(r, 40), randomProtein(r, 40)

	for _, opts := range [][]builder.BuilderOption{nil, {builder.WithGlobal()}, {builder.WithStartAtOrigin()}} {
		g, err := builder.Build(s1, s2, s3, opts...)
		require.NoError(t, err)

		seqRes, err := g.Solve()
		require.NoError(t, err)
		parRes, err := g.Solve(dag.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, seqRes, parRes)
	}
}
