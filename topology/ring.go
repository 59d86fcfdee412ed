package topology

// IsPointInRing is a parity (crossing number) test: a ray cast from p in the
// +x direction crosses the ring an odd number of times iff p is inside. The
// ring must be a closed coordinate sequence (first equals last); the caller
// is responsible for supplying a simple ring.
//
// Crossing counting follows the half-open convention: an edge is counted only
// when p.Y lies in [min(y1,y2), max(y1,y2)), which both skips horizontal
// edges and avoids double-counting at shared vertices. The crossing abscissa
// is found by linear interpolation and counted only when strictly right of p.
// Points exactly on the ring get an arbitrary but deterministic answer.
func IsPointInRing(p Coordinate, ring []Coordinate) bool {
	inside := false
	for i := 1; i < len(ring); i++ {
		a := ring[i-1]
		b := ring[i]
		minY, maxY := a.Y, b.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if p.Y < minY || p.Y >= maxY {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			inside = !inside
		}
	}
	return inside
}

// onSegment reports whether p lies exactly on the closed segment a-b, using
// the robust orientation test for collinearity.
func onSegment(p, a, b Coordinate) bool {
	if p.X < a.X && p.X < b.X || p.X > a.X && p.X > b.X {
		return false
	}
	if p.Y < a.Y && p.Y < b.Y || p.Y > a.Y && p.Y > b.Y {
		return false
	}
	if a.Equals(b) {
		return p.Equals(a)
	}
	return OrientationIndex(a, b, p) == Collinear
}

// onRing reports whether p lies on any edge of the closed ring.
func onRing(p Coordinate, ring []Coordinate) bool {
	for i := 1; i < len(ring); i++ {
		if onSegment(p, ring[i-1], ring[i]) {
			return true
		}
	}
	return false
}

// locateInPolygon places a point against one polygon, honoring holes.
func locateInPolygon(p Coordinate, poly Polygon) Location {
	if poly.Empty() {
		return Exterior
	}
	if onRing(p, poly.Shell) {
		return Boundary
	}
	if !IsPointInRing(p, poly.Shell) {
		return Exterior
	}
	for _, hole := range poly.Holes {
		if onRing(p, hole) {
			return Boundary
		}
		if IsPointInRing(p, hole) {
			return Exterior
		}
	}
	return Interior
}

// lineCoversPoint reports whether p lies anywhere on the chain. Endpoint
// classification is left to the caller, which owns the boundary-node rule.
func lineCoversPoint(p Coordinate, line LineString) bool {
	for i := 1; i < len(line); i++ {
		if onSegment(p, line[i-1], line[i]) {
			return true
		}
	}
	return false
}

// Locate determines the topological position of a point relative to a whole
// geometry: Interior, Boundary or Exterior. Line endpoints are classified
// with the supplied boundary-node rule, counting how many component endpoints
// coincide with the point.
func Locate(p Coordinate, g Geometry, rule BoundaryNodeRule) Location {
	switch geom := g.(type) {
	case Point:
		if p.Equals(geom.Coordinate) {
			return Interior
		}
		return Exterior
	case MultiPoint:
		for _, c := range geom {
			if p.Equals(c) {
				return Interior
			}
		}
		return Exterior
	case LineString:
		return locateOnLines(p, MultiLineString{geom}, rule)
	case MultiLineString:
		return locateOnLines(p, geom, rule)
	case Polygon:
		return locateInPolygon(p, geom)
	case MultiPolygon:
		loc := Exterior
		for _, poly := range geom {
			switch locateInPolygon(p, poly) {
			case Boundary:
				return Boundary
			case Interior:
				loc = Interior
			}
		}
		return loc
	}
	fatalf("cannot locate a point in a %T", g)
	return None
}

func locateOnLines(p Coordinate, lines MultiLineString, rule BoundaryNodeRule) Location {
	endpointCount := 0
	covered := false
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if !line.Closed() {
			if p.Equals(line[0]) {
				endpointCount++
			}
			if p.Equals(line[len(line)-1]) {
				endpointCount++
			}
		}
		if !covered && lineCoversPoint(p, line) {
			covered = true
		}
	}
	if endpointCount > 0 && rule.InBoundary(endpointCount) {
		return Boundary
	}
	if covered {
		return Interior
	}
	return Exterior
}
