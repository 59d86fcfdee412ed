package topology

// The builder turns one input geometry into labeled edges and points for the
// graph. Edges are emitted one segment at a time, which makes every vertex an
// edge endpoint and lets pre-noded input flow through the PassthroughNoder.

// buildEdges extracts the edges and the puntal coordinates of a geometry.
func buildEdges(geomIndex int, g Geometry) (edges []*Edge, points []Coordinate) {
	switch geom := g.(type) {
	case Point:
		points = []Coordinate{geom.Coordinate}
	case MultiPoint:
		points = append(points, geom...)
	case LineString:
		edges = appendLineEdges(edges, geomIndex, geom)
	case MultiLineString:
		for _, line := range geom {
			edges = appendLineEdges(edges, geomIndex, line)
		}
	case Polygon:
		edges = appendPolygonEdges(edges, geomIndex, geom)
	case MultiPolygon:
		for _, poly := range geom {
			edges = appendPolygonEdges(edges, geomIndex, poly)
		}
	default:
		fatalf("cannot build a topology graph from a %T", g)
	}
	return edges, points
}

// appendLineEdges emits one Interior-labeled edge per segment. A line has no
// sides, so only the On location is set; whether its endpoints are boundary
// points is a per-node question answered later by the boundary-node rule.
func appendLineEdges(edges []*Edge, geomIndex int, line LineString) []*Edge {
	first := len(edges)
	for i := 1; i < len(line); i++ {
		if line[i-1].Equals(line[i]) {
			// Repeated coordinates add nothing and would create a
			// direction-less edge end.
			continue
		}
		seg := []Coordinate{line[i-1], line[i]}
		edges = append(edges, NewEdge(geomIndex, seg, NewOnLabel(geomIndex, Interior), DimLine))
	}
	// A closed chain has no endpoints; an open one ends where its first and
	// last emitted segments do.
	if len(edges) > first && !line.Closed() {
		edges[first].markTerminal(0)
		edges[len(edges)-1].markTerminal(1)
	}
	return edges
}

// appendPolygonEdges emits Boundary-labeled edges for the shell and every
// hole, with side locations derived from ring orientation: a CCW shell has
// the polygon's interior on its left, a hole the opposite way around.
func appendPolygonEdges(edges []*Edge, geomIndex int, poly Polygon) []*Edge {
	if poly.Empty() {
		return edges
	}
	edges = appendRingEdges(edges, geomIndex, poly.Shell, IsCCW(poly.Shell))
	for _, hole := range poly.Holes {
		edges = appendRingEdges(edges, geomIndex, hole, !IsCCW(hole))
	}
	return edges
}

func appendRingEdges(edges []*Edge, geomIndex int, ring []Coordinate, interiorOnLeft bool) []*Edge {
	left, right := Interior, Exterior
	if !interiorOnLeft {
		left, right = right, left
	}
	for i := 1; i < len(ring); i++ {
		if ring[i-1].Equals(ring[i]) {
			continue
		}
		seg := []Coordinate{ring[i-1], ring[i]}
		label := NewAreaLabel(geomIndex, Boundary, left, right)
		edges = append(edges, NewEdge(geomIndex, seg, label, DimArea))
	}
	return edges
}
