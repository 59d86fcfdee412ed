package topology

import "math/big"

// Orientation of a point relative to a directed line.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// dpSafeEpsilon is safely greater than the relative round-off error of a
// double-precision determinant.
const dpSafeEpsilon = 1e-15

// OrientationIndex returns the orientation of point p relative to the vector
// p0->p1: CounterClockwise if p lies to the left, Clockwise to the right,
// Collinear if the three points are on one line. A fast floating-point filter
// handles the vast majority of inputs; when the filter cannot certify the
// sign, the determinant is recomputed exactly with big.Float. The result is
// therefore deterministic even for nearly collinear points.
func OrientationIndex(p0, p1, p Coordinate) Orientation {
	if index, ok := orientationIndexFilter(p0, p1, p); ok {
		return index
	}

	var dx1, dy1, dx2, dy2, left, right big.Float
	dx1.SetFloat64(p1.X).Add(&dx1, big.NewFloat(-p0.X))
	dy1.SetFloat64(p1.Y).Add(&dy1, big.NewFloat(-p0.Y))
	dx2.SetFloat64(p.X).Add(&dx2, big.NewFloat(-p1.X))
	dy2.SetFloat64(p.Y).Add(&dy2, big.NewFloat(-p1.Y))

	left.Mul(&dx1, &dy2)
	right.Mul(&dy1, &dx2)
	left.Sub(&left, &right)

	switch left.Sign() {
	case -1:
		return Clockwise
	case 1:
		return CounterClockwise
	}
	return Collinear
}

// orientationIndexFilter computes the orientation with plain floating point
// when the result is certain, using Shewchuk's error-bound approach. The
// second return value is false when the sign cannot be trusted.
func orientationIndexFilter(p0, p1, p Coordinate) (Orientation, bool) {
	detLeft := (p0.X - p.X) * (p1.Y - p.Y)
	detRight := (p0.Y - p.Y) * (p1.X - p.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return orientationOfSign(det), true
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return orientationOfSign(det), true
		}
		detSum = -detLeft - detRight
	default:
		return orientationOfSign(det), true
	}

	errBound := dpSafeEpsilon * detSum
	if det >= errBound || -det >= errBound {
		return orientationOfSign(det), true
	}
	return Collinear, false
}

func orientationOfSign(x float64) Orientation {
	if x > 0 {
		return CounterClockwise
	}
	if x < 0 {
		return Clockwise
	}
	return Collinear
}

// quadrant of a direction vector: 0 for +x/+y (including both positive axes),
// then counting counterclockwise. The zero vector has no quadrant.
func quadrant(dx, dy float64) int {
	if dx == 0 && dy == 0 {
		fatalf("cannot compute the quadrant of a zero-length vector")
	}
	switch {
	case dx >= 0 && dy >= 0:
		return 0
	case dx < 0 && dy >= 0:
		return 1
	case dx < 0 && dy < 0:
		return 2
	}
	return 3
}
