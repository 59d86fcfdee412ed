// A planar topology engine answering DE-9IM questions about pairs of vector
// geometries: whether they intersect, touch, cross, overlap or contain one
// another, and the full nine-cell intersection matrix saying exactly how.
//
// The package computes classifications only; it never produces new geometry.
// Input edges are expected to be noded (split so that the two geometries meet
// only at shared vertices); see topology.Noder for supplying a noder when
// they are not.
package relate

import (
	"context"

	"github.com/toposet/relate/topology"
)

type Coordinate = topology.Coordinate
type Geometry = topology.Geometry
type Point = topology.Point
type MultiPoint = topology.MultiPoint
type LineString = topology.LineString
type MultiLineString = topology.MultiLineString
type Polygon = topology.Polygon
type MultiPolygon = topology.MultiPolygon
type IntersectionMatrix = topology.IntersectionMatrix
type BoundaryNodeRule = topology.BoundaryNodeRule

const (
	Mod2Boundary                = topology.Mod2Boundary
	EndpointBoundary            = topology.EndpointBoundary
	MultivalentEndpointBoundary = topology.MultivalentEndpointBoundary
	MonovalentEndpointBoundary  = topology.MonovalentEndpointBoundary
	OGCBoundary                 = topology.OGCBoundary
)

// Relate computes the DE-9IM intersection matrix of two geometries under the
// given boundary-node rule. The computation either completes fully or
// returns an error; a partially filled matrix is never handed out.
func Relate(a, b Geometry, rule BoundaryNodeRule) (im *IntersectionMatrix, err error) {
	return RelateContext(context.Background(), a, b, rule)
}

// RelateContext is Relate with cooperative cancellation: the context is
// checked between nodes while the graph is being labelled.
func RelateContext(ctx context.Context, a, b Geometry, rule BoundaryNodeRule) (im *IntersectionMatrix, err error) {
	defer func() {
		if recoveredErr := topology.HandleRelatePanicRecover(recover()); recoveredErr != nil {
			im = nil
			err = recoveredErr
		}
	}()
	return topology.NewComputer(a, b, rule).WithContext(ctx).IntersectionMatrix(), nil
}

// PatternMatch tests a nine-character DE-9IM matrix string against a pattern
// ("212101212" against "T*****FF*" and the like) without running a relate
// computation.
func PatternMatch(matrix, pattern string) (bool, error) {
	return topology.MatchesPattern(matrix, pattern)
}

// Matches relates the two geometries under the OGC boundary rule and tests
// the result against a DE-9IM pattern.
func Matches(a, b Geometry, pattern string) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.Matches(pattern)
}

// The convenience predicates below all relate under the OGC boundary rule.

func Intersects(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsIntersects(), nil
}

func Disjoint(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsDisjoint(), nil
}

func Touches(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsTouches(a.Dimension(), b.Dimension()), nil
}

func Crosses(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsCrosses(a.Dimension(), b.Dimension()), nil
}

func Within(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsWithin(), nil
}

func Contains(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsContains(), nil
}

func Covers(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsCovers(), nil
}

func CoveredBy(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsCoveredBy(), nil
}

func Overlaps(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsOverlaps(a.Dimension(), b.Dimension()), nil
}

func Equals(a, b Geometry) (bool, error) {
	im, err := Relate(a, b, OGCBoundary)
	if err != nil {
		return false, err
	}
	return im.IsEquals(a.Dimension(), b.Dimension()), nil
}
