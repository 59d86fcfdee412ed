package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationIndex(t *testing.T) {
	p0 := Coordinate{X: 0, Y: 0}
	p1 := Coordinate{X: 10, Y: 0}

	assert.Equal(t, CounterClockwise, OrientationIndex(p0, p1, Coordinate{X: 5, Y: 1}))
	assert.Equal(t, Clockwise, OrientationIndex(p0, p1, Coordinate{X: 5, Y: -1}))
	assert.Equal(t, Collinear, OrientationIndex(p0, p1, Coordinate{X: 5, Y: 0}))
	assert.Equal(t, Collinear, OrientationIndex(p0, p1, Coordinate{X: -5, Y: 0}))
	assert.Equal(t, Collinear, OrientationIndex(p0, p1, Coordinate{X: 15, Y: 0}))

	// Swapping the line's direction mirrors the answer.
	assert.Equal(t, Clockwise, OrientationIndex(p1, p0, Coordinate{X: 5, Y: 1}))
}

func TestOrientationIndexNearlyCollinear(t *testing.T) {
	// Points on a line with a non-representable slope. The plain
	// double-precision determinant is tiny and unreliable here; the exact
	// fallback must still order the triple consistently.
	p0 := Coordinate{X: 0, Y: 0}
	p1 := Coordinate{X: 1, Y: 1.0 / 3.0}
	p := Coordinate{X: 3, Y: 1}

	got := OrientationIndex(p0, p1, p)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, got, OrientationIndex(p0, p1, p))
	}
}

func TestOrientationIndexTinyOffsets(t *testing.T) {
	p0 := Coordinate{X: 0, Y: 0}
	p1 := Coordinate{X: 1e-12, Y: 1e-12}

	assert.Equal(t, Collinear, OrientationIndex(p0, p1, Coordinate{X: 2e-12, Y: 2e-12}))
	assert.Equal(t, CounterClockwise, OrientationIndex(p0, p1, Coordinate{X: 1e-12, Y: 3e-12}))
	assert.Equal(t, Clockwise, OrientationIndex(p0, p1, Coordinate{X: 3e-12, Y: 1e-12}))
}

func TestQuadrant(t *testing.T) {
	assert.Equal(t, 0, quadrant(1, 0))
	assert.Equal(t, 0, quadrant(1, 1))
	assert.Equal(t, 0, quadrant(0, 1))
	assert.Equal(t, 1, quadrant(-1, 1))
	assert.Equal(t, 1, quadrant(-1, 0))
	assert.Equal(t, 2, quadrant(-1, -1))
	assert.Equal(t, 3, quadrant(0, -1))
	assert.Equal(t, 3, quadrant(1, -1))

	assert.Panics(t, func() { quadrant(0, 0) })
}

func TestSignedAreaAndIsCCW(t *testing.T) {
	ccw := unitSquare
	cw := []Coordinate{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}
	assert.InDelta(t, 1.0, SignedArea(ccw), 1e-12)
	assert.InDelta(t, -1.0, SignedArea(cw), 1e-12)
	assert.True(t, IsCCW(ccw))
	assert.False(t, IsCCW(cw))
}
