package topology

import (
	"fmt"

	"github.com/toposet/relate/dbg"
)

// Node is a graph vertex: a coordinate, the star of edge-end bundles leaving
// it, and the combined on-point label of both geometries at the coordinate.
// pointOf records whether a puntal component of either geometry sits exactly
// here.
type Node struct {
	Coord   Coordinate
	Star    *EdgeEndBundleStar
	Label   Label
	pointOf [2]bool
}

func newNode(c Coordinate) *Node {
	return &Node{Coord: c, Star: NewEdgeEndBundleStar(), Label: NewLabel()}
}

// Touches reports whether the node carries any evidence of the geometry: an
// incident edge end or a coincident point.
func (n *Node) Touches(geomIndex int) bool {
	return n.pointOf[geomIndex] || n.Star.hasGeometry(geomIndex)
}

func (n *Node) String() string {
	return fmt.Sprintf("Node %s (%v, %v) %s %s",
		dbg.Name(n), n.Coord.X, n.Coord.Y, n.Label.String(), n.Star.String())
}

// Graph owns all nodes and edges of one relate computation. Nodes are keyed
// by exact coordinate equality; noding snaps intersection points to
// identical bit patterns, so no tolerance is involved. The graph lives for a
// single computation and is discarded with it.
type Graph struct {
	nodesByCoord map[Coordinate]*Node
	nodes        []*Node
	edges        []*Edge
}

func NewGraph() *Graph {
	return &Graph{nodesByCoord: map[Coordinate]*Node{}}
}

// Nodes returns all nodes in insertion order, which keeps every pass over
// the graph deterministic.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

func (g *Graph) Edges() []*Edge {
	return g.edges
}

// NodeAt looks up the node at an exact coordinate.
func (g *Graph) NodeAt(c Coordinate) (*Node, bool) {
	n, ok := g.nodesByCoord[c]
	return n, ok
}

func (g *Graph) node(c Coordinate) *Node {
	if n, ok := g.nodesByCoord[c]; ok {
		return n
	}
	n := newNode(c)
	g.nodesByCoord[c] = n
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdge files the edge and inserts an edge end into the node star at each
// endpoint. The end at the far endpoint points backwards along the edge, so
// its label has its sides flipped.
func (g *Graph) AddEdge(e *Edge) {
	g.edges = append(g.edges, e)
	first := e.Coords[0]
	last := e.Coords[len(e.Coords)-1]
	g.node(first).Star.Insert(NewEdgeEnd(e, first, e.Coords[1], e.Label))
	g.node(last).Star.Insert(NewEdgeEnd(e, last, e.Coords[len(e.Coords)-2], e.Label.Flipped()))
}

// AddPoint creates (or finds) the node for a puntal component and marks the
// geometry's interior on it.
func (g *Graph) AddPoint(geomIndex int, c Coordinate) {
	n := g.node(c)
	n.pointOf[geomIndex] = true
	n.Label.Merge(NewOnLabel(geomIndex, Interior))
}
