package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIncludeCountsDuplicates(t *testing.T) {
	g := NewIncludeGraph()
	g.AddInclude("a.cpp", "common.h")
	g.AddInclude("b.cpp", "common.h")
	g.AddInclude("a.cpp", "common.h")

	edges := g.Edges()
	assert.Equal(t, []Edge{
		{From: "a.cpp", To: "common.h", Count: 2},
		{From: "b.cpp", To: "common.h", Count: 1},
	}, edges)
	assert.Equal(t, 2, g.Len())
}

func TestAddIncludeSkipsSelfReference(t *testing.T) {
	// Under module merge foo.cpp including foo.h collapses to foo -> foo.
	g := NewIncludeGraph()
	g.AddInclude("foo", "foo")

	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.Len())
}

func TestEdgesSorted(t *testing.T) {
	g := NewIncludeGraph()
	g.AddInclude("z.cpp", "a.h")
	g.AddInclude("a.cpp", "z.h")
	g.AddInclude("a.cpp", "a.h")

	edges := g.Edges()
	assert.Equal(t, []Edge{
		{From: "a.cpp", To: "a.h", Count: 1},
		{From: "a.cpp", To: "z.h", Count: 1},
		{From: "z.cpp", To: "a.h", Count: 1},
	}, edges)
}

func TestEmptyGraph(t *testing.T) {
	g := NewIncludeGraph()

	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.Len())
}
