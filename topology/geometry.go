package topology

// Coordinate is a planar position. It is a value type and is copied freely.
// Node identity in the graph uses exact bit equality of coordinates; noding
// is expected to snap intersection points to identical values, so no
// tolerance is applied anywhere in the engine.
type Coordinate struct {
	X float64
	Y float64
}

func (c Coordinate) Equals(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Geometry is the minimal view of an input geometry the engine needs:
// its dimension and whether it has any content. The concrete types below are
// the only implementations the graph builder accepts.
type Geometry interface {
	// Dimension is 0 for puntal, 1 for lineal and 2 for polygonal geometries,
	// regardless of emptiness.
	Dimension() int
	Empty() bool
}

// Point is a single position.
type Point struct {
	Coordinate
}

func (Point) Dimension() int { return DimPoint }
func (Point) Empty() bool { return false }

// MultiPoint is a set of positions. An empty slice is an empty geometry.
type MultiPoint []Coordinate

func (MultiPoint) Dimension() int { return DimPoint }
func (mp MultiPoint) Empty() bool { return len(mp) == 0 }

// LineString is an open or closed chain of at least two positions.
type LineString []Coordinate

func (LineString) Dimension() int { return DimLine }
func (ls LineString) Empty() bool { return len(ls) == 0 }

// Closed reports whether the chain ends where it starts.
func (ls LineString) Closed() bool {
	return len(ls) > 1 && ls[0].Equals(ls[len(ls)-1])
}

// MultiLineString is a set of chains.
type MultiLineString []LineString

func (MultiLineString) Dimension() int { return DimLine }
func (ml MultiLineString) Empty() bool { return len(ml) == 0 }

// Polygon is a shell ring with optional hole rings. Rings are closed
// coordinate sequences (first equals last) of at least four positions; the
// engine does not validate this, per the noding precondition.
type Polygon struct {
	Shell []Coordinate
	Holes [][]Coordinate
}

func (Polygon) Dimension() int { return DimArea }
func (p Polygon) Empty() bool { return len(p.Shell) == 0 }

// MultiPolygon is a set of polygons.
type MultiPolygon []Polygon

func (MultiPolygon) Dimension() int { return DimArea }
func (mp MultiPolygon) Empty() bool { return len(mp) == 0 }

// SignedArea of a closed ring by the shoelace formula: positive for
// counterclockwise winding.
func SignedArea(ring []Coordinate) float64 {
	var sum float64
	for i := 1; i < len(ring); i++ {
		sum += ring[i-1].X*ring[i].Y - ring[i].X*ring[i-1].Y
	}
	return sum / 2
}

// IsCCW reports whether a closed ring winds counterclockwise.
func IsCCW(ring []Coordinate) bool {
	return SignedArea(ring) > 0
}
