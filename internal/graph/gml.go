package graph

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// numericRe matches decimal numbers with optional sign, fraction, exponent
// and surrounding whitespace. Hex, "Inf" and "NaN" are not numeric.
var numericRe = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

func isNumeric(s string) bool {
	return numericRe.MatchString(s)
}

// GML strings cannot contain a raw double quote; entities are the only escape.
var gmlEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")

func gmlValue(v any) string {
	s, _ := formatScalar(v)
	if _, isString := v.(string); isString && !isNumeric(s) {
		return `"` + gmlEscaper.Replace(s) + `"`
	}
	return s
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// WriteGML writes the graph in GML: the directed flag, every node with its
// attributes, then every non-zero edge. Output is deterministic for a given
// sequence of mutations and has no trailing newline.
func (g *Graph) WriteGML(w io.Writer) error {
	bw := bufio.NewWriter(w)

	directed := "0"
	if g.directed {
		directed = "1"
	}
	bw.WriteString("graph [\n")
	bw.WriteString("\tdirected " + directed + "\n")

	for _, id := range g.order {
		bw.WriteString("\tnode [\n")
		bw.WriteString("\t\tid " + id + "\n")
		for _, attr := range g.nodes[id] {
			bw.WriteString("\t\t" + attr.Key + " " + gmlValue(attr.Value) + "\n")
		}
		bw.WriteString("\t]\n")
	}

	for _, e := range g.Edges() {
		bw.WriteString("\tedge [\n")
		bw.WriteString("\t\tsource " + e.Source + "\n")
		bw.WriteString("\t\ttarget " + e.Target + "\n")
		bw.WriteString("\t\tweight " + formatWeight(e.Weight) + "\n")
		bw.WriteString("\t]\n")
	}

	bw.WriteString("]")
	return bw.Flush()
}

// ExportGML returns the GML text produced by WriteGML.
func (g *Graph) ExportGML() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = g.WriteGML(&sb)
	return sb.String()
}
