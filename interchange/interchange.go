// Package interchange reads and writes the line-oriented text form of an
// alignment DAG, used when the builder and the solver run in separate
// processes.
//
// Format, one record per line:
//
//	V <i,j,k> [START] [END]
//	E <label> <i,j,k> <i,j,k> <weight>
//
// All V lines precede all E lines, edges reference declared vertices only, and
// at most one vertex carries START and at most one carries END. Blank lines
// are ignored. Vertices may be declared in any order; Read assigns ids in
// lexicographic (i,j,k) order, which is topological for every valid edge.
package interchange

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/align3/builder"
	"github.com/katalvlaran/align3/dag"
)

// Option configures Read.
type Option func(*readConfig)

type readConfig struct {
	maxVertices int
	maxEdges    int
}

// WithMaxVertices caps the number of V lines. Panics if n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("interchange: WithMaxVertices(n) requires n ≥ 1")
	}

	return func(c *readConfig) { c.maxVertices = n }
}

// WithMaxEdges caps the number of E lines. Panics if n < 0.
func WithMaxEdges(n int) Option {
	if n < 0 {
		panic("interchange: WithMaxEdges(n) requires n ≥ 0")
	}

	return func(c *readConfig) { c.maxEdges = n }
}

// Write emits g: every vertex in id order, then every edge in insertion order.
// Weights use the shortest decimal form that parses back to the same float64.
func Write(w io.Writer, g *dag.Graph) error {
	bw := bufio.NewWriter(w)
	start, hasStart := g.Start()
	end, hasEnd := g.End()

	buf := make([]byte, 0, 64)
	for v := 0; v < g.VertexCount(); v++ {
		id := dag.VertexID(v)
		buf = append(buf[:0], kwVertex...)
		buf = append(buf, ' ')
		buf = appendCoord(buf, g.Coord(id))
		if hasStart && id == start {
			buf = append(buf, " "+kwStart...)
		}
		if hasEnd && id == end {
			buf = append(buf, " "+kwEnd...)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "interchange: write vertex")
		}
	}

	for _, e := range g.Edges() {
		buf = append(buf[:0], kwEdge...)
		buf = append(buf, ' ')
		buf = append(buf, e.Label[:]...)
		buf = append(buf, ' ')
		buf = appendCoord(buf, g.Coord(e.From))
		buf = append(buf, ' ')
		buf = appendCoord(buf, g.Coord(e.To))
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.Weight, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "interchange: write edge")
		}
	}

	return errors.Wrap(bw.Flush(), "interchange: flush")
}

func appendCoord(buf []byte, c dag.Coord) []byte {
	buf = strconv.AppendInt(buf, int64(c.I), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.J), 10)
	buf = append(buf, ',')

	return strconv.AppendInt(buf, int64(c.K), 10)
}

// pendingEdge is an E line whose endpoints are still coordinates.
type pendingEdge struct {
	label    dag.Label
	from, to dag.Coord
	weight   float64
}

// reader accumulates declarations across lines.
type reader struct {
	cfg      readConfig
	lineNo   int
	coords   []dag.Coord
	declared map[dag.Coord]struct{}
	edges    []pendingEdge
	start    *dag.Coord
	end      *dag.Coord
}

// Read parses the text form and returns the validated graph.
//
// Errors (wrapped with the line number):
//   - dag.ErrMalformedInput    - syntax errors, a V line after an E line,
//     a duplicate vertex, an undeclared edge endpoint, a second START or END,
//     or any invariant rejected by dag.NewGraph.
//   - dag.ErrResourceExhausted - more V or E lines than the configured caps.
func Read(r io.Reader, opts ...Option) (*dag.Graph, error) {
	rd := &reader{
		cfg:      readConfig{maxVertices: builder.DefaultMaxVertices, maxEdges: builder.DefaultMaxEdges},
		declared: make(map[dag.Coord]struct{}),
	}
	for _, opt := range opts {
		opt(&rd.cfg)
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rd.lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := rd.consume(text); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "interchange: read")
	}

	return rd.graph()
}

func (rd *reader) malformed(format string, args ...interface{}) error {
	return errors.Wrapf(dag.ErrMalformedInput, "interchange: line %d: "+format, append([]interface{}{rd.lineNo}, args...)...)
}

func (rd *reader) consume(text string) error {
	ln, err := parseLine(text)
	if err != nil {
		return rd.malformed("%v", err)
	}

	switch {
	case ln.Vertex != nil:
		return rd.vertex(ln.Vertex)
	case ln.Edge != nil:
		return rd.edge(ln.Edge)
	}

	return rd.malformed("empty record")
}

func (rd *reader) vertex(v *vertexLine) error {
	if len(rd.edges) > 0 {
		return rd.malformed("vertex declared after the first edge")
	}
	c := dag.Coord(v.At)
	if _, dup := rd.declared[c]; dup {
		return rd.malformed("vertex %s declared twice", c)
	}
	if len(rd.coords) >= rd.cfg.maxVertices {
		return errors.Wrapf(dag.ErrResourceExhausted, "interchange: line %d: more than %d vertices", rd.lineNo, rd.cfg.maxVertices)
	}

	for _, mark := range v.Marks {
		slot := &rd.start
		if mark == kwEnd {
			slot = &rd.end
		}
		if *slot != nil {
			return rd.malformed("second %s vertex %s", mark, c)
		}
		at := c
		*slot = &at
	}

	rd.declared[c] = struct{}{}
	rd.coords = append(rd.coords, c)

	return nil
}

func (rd *reader) edge(e *edgeLine) error {
	from, to := dag.Coord(e.From), dag.Coord(e.To)
	if _, ok := rd.declared[from]; !ok {
		return rd.malformed("edge starts at undeclared vertex %s", from)
	}
	if _, ok := rd.declared[to]; !ok {
		return rd.malformed("edge ends at undeclared vertex %s", to)
	}
	if len(rd.edges) >= rd.cfg.maxEdges {
		return errors.Wrapf(dag.ErrResourceExhausted, "interchange: line %d: more than %d edges", rd.lineNo, rd.cfg.maxEdges)
	}
	rd.edges = append(rd.edges, pendingEdge{
		label:  dag.Label(e.Label),
		from:   from,
		to:     to,
		weight: float64(e.Weight),
	})

	return nil
}

// graph sorts vertices, resolves edge endpoints to ids and hands off to dag.NewGraph.
func (rd *reader) graph() (*dag.Graph, error) {
	sort.Slice(rd.coords, func(a, b int) bool { return lessCoord(rd.coords[a], rd.coords[b]) })
	ids := make(map[dag.Coord]dag.VertexID, len(rd.coords))
	for i, c := range rd.coords {
		ids[c] = dag.VertexID(i)
	}

	edges := make([]dag.Edge, len(rd.edges))
	for i, p := range rd.edges {
		edges[i] = dag.Edge{Label: p.label, From: ids[p.from], To: ids[p.to], Weight: p.weight}
	}

	var gopts []dag.GraphOption
	if rd.start != nil {
		gopts = append(gopts, dag.WithStart(ids[*rd.start]))
	}
	if rd.end != nil {
		gopts = append(gopts, dag.WithEnd(ids[*rd.end]))
	}

	g, err := dag.NewGraph(dag.CoordList(rd.coords), edges, gopts...)
	if err != nil {
		return nil, errors.Wrap(err, "interchange")
	}

	return g, nil
}

func lessCoord(a, b dag.Coord) bool {
	if a.I != b.I {
		return a.I < b.I
	}
	if a.J != b.J {
		return a.J < b.J
	}

	return a.K < b.K
}
