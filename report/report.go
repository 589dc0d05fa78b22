// Package report renders a solved alignment as an XML results block.
//
//	<results type="alignment" file="...">
//	  <result type="edge_weights">AAA=12, ...</result>
//	  <result type="edge_histogram">AAA=1, ...</result>
//	  <result type="score">12</result>
//	  <result type="beginning_vertex">0,0,0</result>
//	  <result type="ending_vertex">1,1,1</result>
//	  <result type="path">AAA</result>
//	  <result type="row">A</result>  (three rows)
//	</results>
//
// When no path exists the path entry reads NoPath and the score, vertex and
// row entries are omitted.
package report

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/align3/dag"
)

// NoPath is the path entry of an unsolvable graph.
const NoPath = "No Path Found!"

// ResultsType is the type attribute of the results element.
const ResultsType = "alignment"

// scorePrecision is the number of significant digits printed for the score.
const scorePrecision = 6

// Document is everything a report shows.
type Document struct {
	// File names the input the graph came from; omitted when empty.
	File string

	// Histogram is optional; nil omits the edge_weights and edge_histogram entries.
	Histogram *dag.Histogram

	// Result is the solve outcome. Must not be nil.
	Result *dag.Result
}

type resultsXML struct {
	XMLName xml.Name    `xml:"results"`
	Type    string      `xml:"type,attr"`
	File    string      `xml:"file,attr,omitempty"`
	Items   []resultXML `xml:"result"`
}

type resultXML struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Write encodes doc as indented XML followed by a newline.
func Write(w io.Writer, doc Document) error {
	if doc.Result == nil {
		return errors.New("report: nil result")
	}

	out := resultsXML{Type: ResultsType, File: doc.File}
	add := func(typ, val string) { out.Items = append(out.Items, resultXML{Type: typ, Value: val}) }

	if doc.Histogram != nil {
		weights, counts := histogramLines(doc.Histogram)
		add("edge_weights", weights)
		add("edge_histogram", counts)
	}

	res := doc.Result
	if !res.Found {
		add("path", NoPath)
	} else {
		add("score", strconv.FormatFloat(res.Score, 'g', scorePrecision, 64))
		add("beginning_vertex", res.Start.String())
		add("ending_vertex", res.End.String())
		add("path", pathLine(res.Path))
		for _, row := range res.Rows() {
			add("row", row)
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "report: encode")
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "report: write")
	}

	return nil
}

// histogramLines renders "label=weight, ..." and "label=count, ..." in label order.
func histogramLines(h *dag.Histogram) (weights, counts string) {
	var wb, cb strings.Builder
	h.Each(func(l dag.Label, weight float64, count int) {
		if wb.Len() > 0 {
			wb.WriteString(", ")
			cb.WriteString(", ")
		}
		wb.WriteString(l.String())
		wb.WriteByte('=')
		wb.WriteString(strconv.FormatFloat(weight, 'g', -1, 64))
		cb.WriteString(l.String())
		cb.WriteByte('=')
		cb.WriteString(strconv.Itoa(count))
	})

	return wb.String(), cb.String()
}

// pathLine joins labels with single spaces.
func pathLine(path []dag.Label) string {
	parts := make([]string, len(path))
	for i, l := range path {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}
