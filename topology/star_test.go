package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineEnd(geomIndex int, origin, dir Coordinate) *EdgeEnd {
	e := NewEdge(geomIndex, []Coordinate{origin, dir}, NewOnLabel(geomIndex, Interior), DimLine)
	return NewEdgeEnd(e, origin, dir, e.Label)
}

func areaEnd(geomIndex int, origin, dir Coordinate, left, right Location) *EdgeEnd {
	e := NewEdge(geomIndex, []Coordinate{origin, dir}, NewAreaLabel(geomIndex, Boundary, left, right), DimArea)
	return NewEdgeEnd(e, origin, dir, e.Label)
}

func TestCompareDirection(t *testing.T) {
	o := Coordinate{X: 0, Y: 0}
	east := lineEnd(0, o, Coordinate{X: 1, Y: 0})
	northeast := lineEnd(0, o, Coordinate{X: 1, Y: 1})
	north := lineEnd(0, o, Coordinate{X: 0, Y: 1})
	west := lineEnd(0, o, Coordinate{X: -1, Y: 0})
	south := lineEnd(0, o, Coordinate{X: 0, Y: -1})

	// Same quadrant: ordered by angle.
	assert.Equal(t, -1, east.CompareDirection(northeast))
	assert.Equal(t, 1, northeast.CompareDirection(east))
	assert.Equal(t, -1, northeast.CompareDirection(north))

	// Different quadrants: ordered by quadrant.
	assert.Equal(t, -1, north.CompareDirection(west))
	assert.Equal(t, -1, west.CompareDirection(south))
	assert.Equal(t, 1, south.CompareDirection(east))

	// Exactly equal directions compare equal, as do collinear ones of
	// different length.
	assert.Equal(t, 0, east.CompareDirection(lineEnd(1, o, Coordinate{X: 1, Y: 0})))
	assert.Equal(t, 0, east.CompareDirection(lineEnd(0, o, Coordinate{X: 2, Y: 0})))
}

func TestStarInsertOrdersCounterclockwise(t *testing.T) {
	o := Coordinate{X: 0, Y: 0}
	dirs := []Coordinate{
		{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 1},
	}
	s := NewEdgeEndBundleStar()
	for _, d := range dirs {
		s.Insert(lineEnd(0, o, d))
	}

	expected := []Coordinate{
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -1},
	}
	bundles := s.Bundles()
	assert.Len(t, bundles, len(expected))
	for i, b := range bundles {
		assert.Equal(t, expected[i], b.rep().Dir, "bundle %d", i)
	}
}

func TestStarInsertMergesCoincidentDirections(t *testing.T) {
	o := Coordinate{X: 0, Y: 0}
	s := NewEdgeEndBundleStar()
	s.Insert(lineEnd(0, o, Coordinate{X: 1, Y: 0}))
	s.Insert(lineEnd(1, o, Coordinate{X: 1, Y: 0}))
	s.Insert(lineEnd(0, o, Coordinate{X: 0, Y: 1}))

	bundles := s.Bundles()
	assert.Len(t, bundles, 2)
	assert.Len(t, bundles[0].Ends, 2)
	assert.Len(t, bundles[1].Ends, 1)

	assert.True(t, bundles[0].hasGeometry(0))
	assert.True(t, bundles[0].hasGeometry(1))
	assert.False(t, bundles[1].hasGeometry(1))

	assert.Equal(t, 2, s.Degree(0))
	assert.Equal(t, 1, s.Degree(1))
}

func TestComputeLabellingPropagatesSides(t *testing.T) {
	// The corner (0,0) of a counterclockwise square of geometry A: one end
	// heads along the bottom edge with the interior on its left, one heads up
	// the left edge (pointing backwards along its ring edge) with the
	// interior on its right.
	o := Coordinate{X: 0, Y: 0}
	s := NewEdgeEndBundleStar()
	s.Insert(areaEnd(0, o, Coordinate{X: 1, Y: 0}, Interior, Exterior))
	s.Insert(areaEnd(0, o, Coordinate{X: 0, Y: 1}, Exterior, Interior))

	locateCalls := 0
	s.ComputeLabelling(Mod2Boundary, [2]int{DimArea, DimPoint}, func(int, Coordinate) Location {
		locateCalls++
		return Interior
	})

	bundles := s.Bundles()
	east, north := bundles[0], bundles[1]

	assert.Equal(t, Boundary, east.Label.Location(0, On))
	assert.Equal(t, Interior, east.Label.Location(0, Left))
	assert.Equal(t, Exterior, east.Label.Location(0, Right))
	assert.Equal(t, Boundary, north.Label.Location(0, On))
	assert.Equal(t, Exterior, north.Label.Location(0, Left))
	assert.Equal(t, Interior, north.Label.Location(0, Right))

	// Geometry B is puntal and absent from the star: every bundle defaults to
	// its exterior without consulting the locator.
	assert.Equal(t, Exterior, east.Label.Location(1, On))
	assert.Equal(t, Exterior, north.Label.Location(1, On))
	assert.Equal(t, 0, locateCalls)
}

func TestComputeLabellingAreaFallbackLocatesOnce(t *testing.T) {
	// A line end of geometry A alone at a node, with geometry B an area that
	// does not touch the node. B's location must come from a single point
	// location, shared by every bundle.
	o := Coordinate{X: 2, Y: 2}
	s := NewEdgeEndBundleStar()
	s.Insert(lineEnd(0, o, Coordinate{X: 3, Y: 2}))
	s.Insert(lineEnd(0, o, Coordinate{X: 2, Y: 3}))

	locateCalls := 0
	s.ComputeLabelling(Mod2Boundary, [2]int{DimLine, DimArea}, func(g int, c Coordinate) Location {
		assert.Equal(t, 1, g)
		assert.Equal(t, o, c)
		locateCalls++
		return Interior
	})

	for _, b := range s.Bundles() {
		assert.Equal(t, Interior, b.Label.Location(0, On))
		assert.Equal(t, Interior, b.Label.Location(1, On))
		assert.Equal(t, Interior, b.Label.Location(1, Left))
		assert.Equal(t, Interior, b.Label.Location(1, Right))
	}
	assert.Equal(t, 1, locateCalls)
}

func TestComputeLabellingSideConflictPanics(t *testing.T) {
	// Two area edges of the same geometry claiming contradictory regions
	// between them.
	o := Coordinate{X: 0, Y: 0}
	s := NewEdgeEndBundleStar()
	s.Insert(areaEnd(0, o, Coordinate{X: 1, Y: 0}, Interior, Exterior))
	s.Insert(areaEnd(0, o, Coordinate{X: 0, Y: 1}, Interior, Exterior))

	assert.Panics(t, func() {
		s.ComputeLabelling(Mod2Boundary, [2]int{DimArea, DimArea}, func(int, Coordinate) Location {
			return Exterior
		})
	})
}

func TestEmptyStarPanics(t *testing.T) {
	s := NewEdgeEndBundleStar()
	assert.True(t, s.Empty())
	assert.Panics(t, func() {
		s.ComputeLabelling(Mod2Boundary, [2]int{DimArea, DimArea}, nil)
	})
	assert.Panics(t, func() { s.UpdateIM(NewIntersectionMatrix()) })
}
