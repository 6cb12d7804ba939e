package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Edge is one deduplicated include relationship between two display names.
// Count is the number of raw includes that merged into it.
type Edge struct {
	From  string
	To    string
	Count int
}

// IncludeGraph accumulates include edges between display names. Node
// identity is the display name itself, so two raw includes that format
// identically merge into one counted edge.
type IncludeGraph struct {
	graph  *simple.WeightedDirectedGraph
	ids    map[string]int64 // display name to graph ID
	labels map[int64]string
	nextID int64
}

// NewIncludeGraph creates an empty include graph.
func NewIncludeGraph() *IncludeGraph {
	return &IncludeGraph{
		graph:  simple.NewWeightedDirectedGraph(0, 0),
		ids:    make(map[string]int64),
		labels: make(map[int64]string),
	}
}

func (g *IncludeGraph) node(label string) int64 {
	if id, ok := g.ids[label]; ok {
		return id
	}
	id := g.nextID
	g.ids[label] = id
	g.labels[id] = label
	g.graph.AddNode(simple.Node(id))
	g.nextID++
	return id
}

// AddInclude records one include from source to target, both already in
// display form. Self references (a merged node including itself) are
// dropped.
func (g *IncludeGraph) AddInclude(source, target string) {
	if source == target {
		return
	}

	from := g.node(source)
	to := g.node(target)

	weight := 1.0
	if e := g.graph.WeightedEdge(from, to); e != nil {
		weight = e.Weight() + 1
	}
	g.graph.SetWeightedEdge(g.graph.NewWeightedEdge(
		g.graph.Node(from), g.graph.Node(to), weight))
}

// Edges returns all accumulated edges sorted by source then target display
// name, so repeated runs over the same tree emit identical output.
func (g *IncludeGraph) Edges() []Edge {
	var edges []Edge

	iter := g.graph.WeightedEdges()
	for iter.Next() {
		e := iter.WeightedEdge()
		edges = append(edges, Edge{
			From:  g.labels[e.From().ID()],
			To:    g.labels[e.To().ID()],
			Count: int(e.Weight()),
		})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Len returns the number of distinct edges.
func (g *IncludeGraph) Len() int {
	return g.graph.Edges().Len()
}
