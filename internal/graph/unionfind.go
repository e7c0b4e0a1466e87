package graph

// unionFind is a disjoint-set forest over node positions with path
// compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
	size   []int
	count  int // number of disjoint sets
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	root := i
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[i] != root {
		next := uf.parent[i]
		uf.parent[i] = root
		i = next
	}
	return root
}

// union merges the sets holding a and b. Returns true if they were separate.
func (uf *unionFind) union(a, b int) bool {
	rootA, rootB := uf.find(a), uf.find(b)
	if rootA == rootB {
		return false
	}
	if uf.rank[rootA] < uf.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	if uf.rank[rootA] == uf.rank[rootB] {
		uf.rank[rootA]++
	}
	uf.count--
	return true
}

// largest returns the size of the biggest set, 0 when empty.
func (uf *unionFind) largest() int {
	best := 0
	for i := range uf.parent {
		if uf.parent[i] == i && uf.size[i] > best {
			best = uf.size[i]
		}
	}
	return best
}
