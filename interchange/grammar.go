package interchange

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/align3/dag"
)

// Line keywords.
const (
	kwVertex = "V"
	kwEdge   = "E"
	kwStart  = "START"
	kwEnd    = "END"
)

// Every field is one whitespace-delimited token; the field types below parse
// their own contents so labels like "1-A" never split into several tokens.
var sLineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^ \t\r\n]+`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
})

var sParseLine = participle.MustBuild[line](
	participle.Lexer(sLineLexer),
)

type line struct {
	Vertex *vertexLine `parser:"  \"V\" @@"`
	Edge   *edgeLine   `parser:"| \"E\" @@"`
}

type vertexLine struct {
	At    coordText `parser:"@Field"`
	Marks []string  `parser:"@(\"START\" | \"END\")*"`
}

type edgeLine struct {
	Label  labelText  `parser:"@Field"`
	From   coordText  `parser:"@Field"`
	To     coordText  `parser:"@Field"`
	Weight weightText `parser:"@Field"`
}

// coordText captures "i,j,k".
type coordText dag.Coord

func (c *coordText) Capture(values []string) error {
	parts := strings.Split(values[0], ",")
	if len(parts) != 3 {
		return errors.Errorf("coordinate %q: want i,j,k", values[0])
	}
	var xs [3]int
	for x, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return errors.Errorf("coordinate %q: component %q is not a non-negative integer", values[0], p)
		}
		xs[x] = n
	}
	*c = coordText{I: xs[0], J: xs[1], K: xs[2]}

	return nil
}

// labelText captures a three-symbol column.
type labelText dag.Label

func (l *labelText) Capture(values []string) error {
	lbl, err := dag.ParseLabel(values[0])
	if err != nil {
		return err
	}
	*l = labelText(lbl)

	return nil
}

// weightText captures a finite float64.
type weightText float64

func (w *weightText) Capture(values []string) error {
	f, err := strconv.ParseFloat(values[0], 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.Errorf("weight %q is not a finite number", values[0])
	}
	*w = weightText(f)

	return nil
}

// parseLine parses one non-blank line.
func parseLine(text string) (*line, error) {
	return sParseLine.ParseString("", text)
}
