package topology

import "fmt"

// Edge is one noded chain of a source geometry: its coordinates, the index of
// the geometry it came from, and the topological label of the chain relative
// to both geometries. The noder guarantees edges meet other edges only at
// their endpoints.
type Edge struct {
	Geom   int
	Coords []Coordinate
	Label  Label

	// dim is the dimension of the source geometry, which decides how the
	// edge's own label is built and how missing labels are resolved.
	dim int

	// terminal marks whether the first and last coordinate are endpoints of
	// the source chain, as opposed to cut points introduced by splitting the
	// chain into segments. Only chain endpoints feed the boundary-node rule.
	terminal [2]bool
}

func NewEdge(geomIndex int, coords []Coordinate, label Label, dim int) *Edge {
	if len(coords) < 2 {
		fatalf("an edge needs at least two coordinates, got %d", len(coords))
	}
	return &Edge{Geom: geomIndex, Coords: coords, Label: label, dim: dim}
}

func (e *Edge) markTerminal(i int) {
	e.terminal[i] = true
}

// terminalAt reports whether the coordinate is a chain endpoint of this edge.
func (e *Edge) terminalAt(c Coordinate) bool {
	if e.terminal[0] && c.Equals(e.Coords[0]) {
		return true
	}
	return e.terminal[1] && c.Equals(e.Coords[len(e.Coords)-1])
}

func (e *Edge) String() string {
	return fmt.Sprintf("Edge{geom %d, %v, %s}", e.Geom, e.Coords, e.Label.String())
}

// EdgeEnd is a directed half-edge: the view of an edge from one of its
// endpoint nodes. Only the direction to the adjacent vertex matters for
// ordering; the label is the parent edge's label, flipped when the end points
// against the edge.
type EdgeEnd struct {
	Edge   *Edge
	Origin Coordinate
	Dir    Coordinate
	Label  Label

	dx, dy float64
	quad   int
}

func NewEdgeEnd(e *Edge, origin, dir Coordinate, label Label) *EdgeEnd {
	end := &EdgeEnd{
		Edge:   e,
		Origin: origin,
		Dir:    dir,
		Label:  label,
		dx:     dir.X - origin.X,
		dy:     dir.Y - origin.Y,
	}
	end.quad = quadrant(end.dx, end.dy)
	return end
}

// CompareDirection orders edge ends counterclockwise starting from the
// positive x-axis: first by quadrant, then within a quadrant by the robust
// orientation of this end's direction point against the other end's vector.
// Zero means the directions are exactly equal and the ends must be bundled.
func (e *EdgeEnd) CompareDirection(other *EdgeEnd) int {
	if e.dx == other.dx && e.dy == other.dy {
		return 0
	}
	if e.quad != other.quad {
		if e.quad > other.quad {
			return 1
		}
		return -1
	}
	return int(OrientationIndex(other.Origin, other.Dir, e.Dir))
}

func (e *EdgeEnd) String() string {
	return fmt.Sprintf("EdgeEnd{%v->%v, geom %d, %s}", e.Origin, e.Dir, e.Edge.Geom, e.Label.String())
}
