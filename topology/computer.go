package topology

import (
	"context"

	"github.com/pkg/errors"
)

// State of a relate computation. Each state is produced by exactly one pass;
// there is no backtracking.
type State int

const (
	Unstarted State = iota
	GraphBuilt
	Labeled
	Aggregated
	Done
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case GraphBuilt:
		return "GraphBuilt"
	case Labeled:
		return "Labeled"
	case Aggregated:
		return "Aggregated"
	case Done:
		return "Done"
	}
	return "Invalid"
}

// Computer drives one relate computation: it builds the shared topology
// graph from both geometries' noded edges, resolves every node star and
// isolated component, and aggregates the intersection matrix. A Computer is
// single-use and confined to one goroutine; independent computations can run
// concurrently because nothing here is shared.
type Computer struct {
	geoms    [2]Geometry
	dims     [2]int
	rule     BoundaryNodeRule
	noder    Noder
	ctx      context.Context
	graph    *Graph
	isolated []*Edge
	im       *IntersectionMatrix
	state    State
}

func NewComputer(a, b Geometry, rule BoundaryNodeRule) *Computer {
	if !rule.Valid() {
		fatalf("invalid boundary node rule %d", int(rule))
	}
	return &Computer{
		geoms: [2]Geometry{a, b},
		dims:  [2]int{a.Dimension(), b.Dimension()},
		rule:  rule,
		noder: PassthroughNoder{},
		ctx:   context.Background(),
		state: Unstarted,
	}
}

// WithNoder replaces the default pass-through noder.
func (c *Computer) WithNoder(n Noder) *Computer {
	c.noder = n
	return c
}

// WithContext installs a context checked between nodes during labelling, the
// engine's only cooperative cancellation point.
func (c *Computer) WithContext(ctx context.Context) *Computer {
	c.ctx = ctx
	return c
}

func (c *Computer) State() State {
	return c.state
}

// IntersectionMatrix runs the whole state machine and returns the final
// matrix. Panics raised by internal invariants or topology conflicts are
// expected to be recovered by the caller (the public relate package does).
func (c *Computer) IntersectionMatrix() *IntersectionMatrix {
	c.BuildGraph()
	c.LabelGraph()
	c.Aggregate()
	return c.Result()
}

func (c *Computer) advance(from, to State) {
	if c.state != from {
		fatalf("relate state is %s, expected %s", c.state, from)
	}
	c.state = to
}

// BuildGraph consumes the noded, source-labeled edges of both geometries and
// inserts them into one shared graph, deduplicating nodes by coordinate.
func (c *Computer) BuildGraph() {
	c.advance(Unstarted, GraphBuilt)
	c.graph = NewGraph()

	var edges []*Edge
	var points [2][]Coordinate
	for g := 0; g < 2; g++ {
		geomEdges, geomPoints := buildEdges(g, c.geoms[g])
		edges = append(edges, geomEdges...)
		points[g] = geomPoints
	}
	for _, e := range c.noder.Node(edges) {
		c.graph.AddEdge(e)
	}
	for g := 0; g < 2; g++ {
		for _, p := range points[g] {
			c.graph.AddPoint(g, p)
		}
	}
}

// LabelGraph resolves every node star, computes node on-labels, and
// classifies isolated components by point location.
func (c *Computer) LabelGraph() {
	c.advance(GraphBuilt, Labeled)

	locate := func(geomIndex int, p Coordinate) Location {
		return Locate(p, c.geoms[geomIndex], c.rule)
	}
	for _, n := range c.graph.Nodes() {
		if err := c.ctx.Err(); err != nil {
			panic(TopologyError(errors.Wrap(err, "relate interrupted")))
		}
		if !n.Star.Empty() {
			n.Star.ComputeLabelling(c.rule, c.dims, locate)
		}
		c.labelNode(n, locate)
	}
	c.labelIsolatedEdges(locate)
}

// labelNode fills in the node's on-point label for both geometries. A node
// on an area boundary is Boundary; a node on a lineal geometry is classified
// by the boundary-node rule applied to the number of chain endpoints here;
// anything the node does not touch is located directly.
func (c *Computer) labelNode(n *Node, locate func(int, Coordinate) Location) {
	for g := 0; g < 2; g++ {
		if n.Star.hasGeometry(g) {
			loc := Boundary
			if c.dims[g] == DimLine {
				loc = boundaryLocation(c.rule, n.Star.BoundaryEndCount(g))
			}
			n.Label.SetLocation(g, On, loc)
		}
		if n.Label.Location(g, On) == None {
			n.Label.SetLocation(g, On, locate(g, n.Coord))
		}
	}
}

// labelIsolatedEdges classifies edges neither of whose endpoints touches the
// other geometry. Such an edge lies uniformly inside or outside it, so one
// point location of an endpoint settles the whole edge. These are the only
// edges that feed the matrix directly; everything else contributes through
// its node stars.
func (c *Computer) labelIsolatedEdges(locate func(int, Coordinate) Location) {
	for _, e := range c.graph.Edges() {
		other := 1 - e.Geom
		first, _ := c.graph.NodeAt(e.Coords[0])
		last, _ := c.graph.NodeAt(e.Coords[len(e.Coords)-1])
		if first.Touches(other) || last.Touches(other) {
			continue
		}
		// A puntal geometry cannot cover any length of the edge, so it is
		// exterior without looking.
		loc := Exterior
		if c.dims[other] != DimPoint {
			loc = locate(other, e.Coords[0])
		}
		e.Label.SetAllIfNone(other, loc)
		c.isolated = append(c.isolated, e)
	}
}

// Aggregate folds every isolated edge and every node into one intersection
// matrix. The exteriors of two bounded geometries always intersect, so that
// cell starts at dimension 2.
func (c *Computer) Aggregate() {
	c.advance(Labeled, Aggregated)
	c.im = NewIntersectionMatrix()
	c.im.Set(Exterior, Exterior, DimArea)

	for _, e := range c.isolated {
		updateMatrixFromLabel(e.Label, c.im)
	}
	for _, n := range c.graph.Nodes() {
		if !n.Star.Empty() {
			n.Star.UpdateIM(c.im)
		}
		c.im.SetAtLeastIfValid(n.Label.Location(0, On), n.Label.Location(1, On), DimPoint)
	}
}

// Result finalizes the computation. After this no further mutation of the
// matrix is permitted, and the graph can be discarded.
func (c *Computer) Result() *IntersectionMatrix {
	c.advance(Aggregated, Done)
	return c.im
}

// Graph exposes the topology graph for debugging once it has been built.
func (c *Computer) Graph() *Graph {
	if c.state == Unstarted {
		fatalf("relate graph has not been built yet")
	}
	return c.graph
}
