package graph

// Summary describes the shape of a built interaction graph.
type Summary struct {
	Nodes                 int     `json:"nodes"`
	Edges                 int     `json:"edges"`
	MeanInDegree          float64 `json:"mean_in_degree"`
	MeanOutDegree         float64 `json:"mean_out_degree"`
	IsolatedNodes         int     `json:"isolated_nodes"`
	IsolatedPercent       float64 `json:"isolated_percent"`
	Components            int     `json:"components"`
	GiantComponent        int     `json:"giant_component"`
	GiantComponentPercent float64 `json:"giant_component_percent"`
}

// Summarize counts nodes, edges, degrees, isolated nodes and weakly
// connected components. Undirected edges count towards the in and out
// degree of both endpoints.
func Summarize(g *Graph) *Summary {
	n := g.NumNodes()
	if n == 0 {
		return &Summary{}
	}

	in := make([]int, n)
	out := make([]int, n)
	uf := newUnionFind(n)
	edges := 0

	for from, row := range g.edges {
		i := g.index[from]
		for to := range row {
			j := g.index[to]
			if !g.directed && j < i {
				continue
			}
			edges++
			out[i]++
			in[j]++
			if !g.directed {
				out[j]++
				in[i]++
			}
			uf.union(i, j)
		}
	}

	var sumIn, sumOut, isolated int
	for i := 0; i < n; i++ {
		sumIn += in[i]
		sumOut += out[i]
		if in[i]+out[i] == 0 {
			isolated++
		}
	}

	total := float64(n)
	giant := uf.largest()
	return &Summary{
		Nodes:                 n,
		Edges:                 edges,
		MeanInDegree:          float64(sumIn) / total,
		MeanOutDegree:         float64(sumOut) / total,
		IsolatedNodes:         isolated,
		IsolatedPercent:       float64(isolated) / total * 100,
		Components:            uf.count,
		GiantComponent:        giant,
		GiantComponentPercent: float64(giant) / total * 100,
	}
}
