// Package graph holds an attributed, weighted graph keyed by opaque string
// ids, plus its GML export and a small structural summary.
//
// Edge weights behave like a dense adjacency matrix: every ordered pair of
// nodes has a weight, 0 meaning "no edge". Storage is sparse; only non-zero
// weights are materialized. A Graph is not safe for concurrent mutation.
package graph

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultWeight is the weight used by Link for unweighted edges.
const DefaultWeight = 1.0

// Edge is a non-zero entry of the adjacency matrix.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Cell is one column of a node's logical adjacency row.
type Cell struct {
	Target string
	Weight float64
}

// Graph is a directed or undirected weighted graph with attributed nodes.
type Graph struct {
	directed bool

	order []string       // node ids in insertion order
	index map[string]int // node id -> position in order
	nodes map[string]Attributes

	// edges[from][to] = weight; absent entries are weight 0
	edges map[string]map[string]float64
}

// New creates an empty graph. Directedness cannot change afterwards.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		index:    make(map[string]int),
		nodes:    make(map[string]Attributes),
		edges:    make(map[string]map[string]float64),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int {
	return len(g.order)
}

// NodeExists reports whether id is a node.
func (g *Graph) NodeExists(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddNode inserts id with a copy of attrs. The node starts with a zero
// weight towards every node, itself included. On error the graph is left
// untouched.
func (g *Graph) AddNode(id string, attrs Attributes) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.NodeExists(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if err := attrs.validate(); err != nil {
		return fmt.Errorf("node %q: %w", id, err)
	}

	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.nodes[id] = attrs.clone()
	return nil
}

// AddEdge sets the weight of a -> b, and of b -> a when undirected.
// Repeating the call overwrites the previous weight. A weight of 0 removes
// the edge. Self loops are allowed.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if !g.NodeExists(a) {
		return fmt.Errorf("%w: %q", ErrMissingNode, a)
	}
	if !g.NodeExists(b) {
		return fmt.Errorf("%w: %q", ErrMissingNode, b)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	g.set(a, b, weight)
	if !g.directed {
		g.set(b, a, weight)
	}
	return nil
}

// Link adds an edge with DefaultWeight.
func (g *Graph) Link(a, b string) error {
	return g.AddEdge(a, b, DefaultWeight)
}

func (g *Graph) set(from, to string, weight float64) {
	row := g.edges[from]
	if weight == 0 {
		if row != nil {
			delete(row, to)
			if len(row) == 0 {
				delete(g.edges, from)
			}
		}
		return
	}
	if row == nil {
		row = make(map[string]float64)
		g.edges[from] = row
	}
	row[to] = weight
}

// Weight returns the weight of a -> b, 0 when there is no edge.
func (g *Graph) Weight(a, b string) (float64, error) {
	if !g.NodeExists(a) {
		return 0, fmt.Errorf("%w: %q", ErrMissingNode, a)
	}
	if !g.NodeExists(b) {
		return 0, fmt.Errorf("%w: %q", ErrMissingNode, b)
	}
	return g.edges[a][b], nil
}

// Row returns the full adjacency row of id: one cell per node in insertion
// order, zero weights included.
func (g *Graph) Row(id string) ([]Cell, error) {
	if !g.NodeExists(id) {
		return nil, fmt.Errorf("%w: %q", ErrMissingNode, id)
	}
	row := g.edges[id]
	cells := make([]Cell, len(g.order))
	for i, target := range g.order {
		cells[i] = Cell{Target: target, Weight: row[target]}
	}
	return cells, nil
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// Attributes returns a copy of the attributes of id.
func (g *Graph) Attributes(id string) (Attributes, error) {
	attrs, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingNode, id)
	}
	return attrs.clone(), nil
}

// Edges returns every non-zero matrix entry, rows in node insertion order
// and columns in node insertion order. Undirected edges appear once per
// stored direction.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, from := range g.order {
		row := g.edges[from]
		if len(row) == 0 {
			continue
		}
		targets := make([]string, 0, len(row))
		for to := range row {
			targets = append(targets, to)
		}
		sort.Slice(targets, func(i, j int) bool {
			return g.index[targets[i]] < g.index[targets[j]]
		})
		for _, to := range targets {
			out = append(out, Edge{Source: from, Target: to, Weight: row[to]})
		}
	}
	return out
}

// NumEdges counts edges. For undirected graphs a pair stored in both
// directions counts once.
func (g *Graph) NumEdges() int {
	n := 0
	for from, row := range g.edges {
		for to := range row {
			if !g.directed && g.index[to] < g.index[from] {
				continue
			}
			n++
		}
	}
	return n
}

// ParseWeight coerces a textual weight such as "3" or " -2.5 ".
func ParseWeight(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !isNumeric(trimmed) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	w, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	return w, nil
}
