package synthetic

import (
	"context"
	"fmt"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/domain/dashboard"
)

const (
	maxDegree      = 10
	sentimentScale = 1.6 // sentiment spans [-0.8, 0.8)
)

// GraphGenerator fabricates a random user interaction graph
type GraphGenerator struct {
	rng       ports.RandomSource
	nodeCount int
	linkCount int
}

var _ ports.GraphProvider = (*GraphGenerator)(nil)

// NewGraphGenerator creates a generator producing nodeCount nodes and linkCount links
func NewGraphGenerator(rng ports.RandomSource, nodeCount, linkCount int) *GraphGenerator {
	return &GraphGenerator{rng: rng, nodeCount: nodeCount, linkCount: linkCount}
}

// FetchGraph builds a fresh graph. Links never connect a node to itself but
// the same pair may be drawn more than once.
func (g *GraphGenerator) FetchGraph(ctx context.Context, req ports.DashboardRequest) (dashboard.Graph, error) {
	if g.linkCount > 0 && g.nodeCount < 2 {
		return dashboard.Graph{}, fmt.Errorf("cannot draw %d links between %d nodes", g.linkCount, g.nodeCount)
	}

	nodes := make([]dashboard.GraphNode, g.nodeCount)
	for i := range nodes {
		nodes[i] = dashboard.GraphNode{
			ID:        fmt.Sprintf("user_%d", i),
			Degree:    1 + g.rng.IntN(maxDegree),
			Sentiment: (g.rng.Float64() - 0.5) * sentimentScale,
		}
	}

	links := make([]dashboard.GraphEdge, g.linkCount)
	for i := range links {
		a, b := g.distinctPair()
		links[i] = dashboard.GraphEdge{
			Source: nodes[a].ID,
			Target: nodes[b].ID,
			Value:  g.rng.Float64(),
		}
	}

	return dashboard.Graph{Nodes: nodes, Links: links}, nil
}

// distinctPair samples two different node indices without replacement
func (g *GraphGenerator) distinctPair() (int, int) {
	a := g.rng.IntN(g.nodeCount)
	b := g.rng.IntN(g.nodeCount - 1)
	if b >= a {
		b++
	}
	return a, b
}
