package relate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke tests. The internals are already tested in the topology package.

func box(x, y, size float64) Polygon {
	return Polygon{Shell: []Coordinate{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size}, {X: x, Y: y},
	}}
}

func TestRelate(t *testing.T) {
	im, err := Relate(box(0, 0, 1), box(2, 2, 1), OGCBoundary)
	assert.NoError(t, err)
	assert.Equal(t, "FF2FF1212", im.String())
}

func TestRelateInvalidRule(t *testing.T) {
	im, err := Relate(box(0, 0, 1), box(2, 2, 1), BoundaryNodeRule(42))
	assert.Error(t, err)
	assert.Nil(t, im)
}

func TestRelateContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	im, err := RelateContext(ctx, box(0, 0, 1), box(2, 2, 1), OGCBoundary)
	assert.Error(t, err)
	assert.Nil(t, im)
}

func TestPredicates(t *testing.T) {
	touching := box(1, 0, 1)
	disjoint := box(5, 5, 1)
	a := box(0, 0, 1)

	ok, err := Touches(a, touching)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Intersects(a, disjoint)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = Disjoint(a, disjoint)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Equals(a, box(0, 0, 1))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Contains(box(0, 0, 3), LineString{{X: 1, Y: 1}, {X: 2, Y: 1}})
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Within(LineString{{X: 1, Y: 1}, {X: 2, Y: 1}}, box(0, 0, 3))
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Covers(a, a)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = CoveredBy(a, a)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Crosses(
		LineString{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		LineString{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}},
	)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Overlaps(a, touching)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	ok, err := Matches(box(0, 0, 1), box(2, 2, 1), "FF*FF****")
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = Matches(box(0, 0, 1), box(2, 2, 1), "FF*FF")
	assert.Error(t, err)
}

func TestPatternMatch(t *testing.T) {
	ok, err := PatternMatch("212101212", "T*T***T**")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = PatternMatch("FF2FF1212", "T********")
	assert.NoError(t, err)
	assert.False(t, ok)
}
