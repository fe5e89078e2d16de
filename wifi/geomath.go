package wifi

import (
	"math"

	"github.com/paulmach/orb"
)

// Every point and vector lives on a plane (assuming coordinates are
// Euclidean: Lon == X, Lat == Y). Floating comparisons use one named absolute
// tolerance per semantic use; there is no relative-tolerance handling, so
// very large coordinate magnitudes degrade accuracy.
const (
	// segmentTolerance bounds the comparisons of the right-ray crossing test:
	// the horizontal-edge rejection and the vertex hit detection.
	segmentTolerance = 1e-5
	// directionTolerance bounds direction-vector equality. Bearing lines with
	// equal directions are treated as parallel and never intersected.
	directionTolerance = 1e-5
	// verticalTolerance bounds |dx| below which a direction counts as
	// vertical, switching the intersection to direct substitution.
	verticalTolerance = 1e-5

	pi180 = math.Pi / 180.0
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// AzimuthToVector Converts a compass-style bearing (0 degrees = north = +Y,
// growing clockwise) to a unit direction vector on the plane.
func AzimuthToVector(azimuthDegrees float64) orb.Point {
	rad := degreesToRadians(azimuthDegrees) + math.Pi/2
	return orb.Point{-math.Cos(rad), math.Sin(rad)}
}

// segmentCrossesRightRay Reports whether the closed segment [segStart, segEnd]
// is crossed by the horizontal ray from rayOrigin towards +X.
//
// Horizontal segments never count. A ray through a segment endpoint counts
// only when the other endpoint lies below the hit one, so a ray passing
// exactly through a polygon vertex is counted by one of the two adjacent
// edges, not both.
func segmentCrossesRightRay(segStart, segEnd, rayOrigin orb.Point) bool {
	y1 := segStart.Y()
	y2 := segEnd.Y()
	if math.Abs(y1-y2) < segmentTolerance {
		return false
	}
	t := (rayOrigin.Y() - y1) / (y2 - y1)
	x := segStart.X() + t*(segEnd.X()-segStart.X())
	if x < rayOrigin.X() {
		// Crossing is behind the ray start
		return false
	}
	if math.Abs(t) < segmentTolerance {
		return y2 < y1+segmentTolerance
	}
	if math.Abs(t-1) < segmentTolerance {
		return y1 < y2+segmentTolerance
	}
	return 0 < t && t < 1
}

// LineIntersection Returns the crossing point of two infinite lines, each
// given by an origin point and a direction vector. The second result is false
// when the directions are equal within directionTolerance: parallel bearings
// cannot pin a location. Vertical directions are solved by substitution,
// anything else by slope-intercept elimination; there is no extra guard
// against near-parallel slopes beyond the direction equality check.
func LineIntersection(p1, dir1, p2, dir2 orb.Point) (orb.Point, bool) {
	if math.Abs(dir1.X()-dir2.X()) < directionTolerance && math.Abs(dir1.Y()-dir2.Y()) < directionTolerance {
		return orb.Point{}, false
	}
	if math.Abs(dir1.X()) < verticalTolerance && math.Abs(dir2.X()) < verticalTolerance {
		// Anti-parallel vertical bearings slip past the equality check
		return orb.Point{}, false
	}
	if math.Abs(dir1.X()) < verticalTolerance {
		x := p1.X()
		m2 := dir2.Y() / dir2.X()
		b2 := p2.Y() - m2*p2.X()
		return orb.Point{x, m2*x + b2}, true
	}
	if math.Abs(dir2.X()) < verticalTolerance {
		x := p2.X()
		m1 := dir1.Y() / dir1.X()
		b1 := p1.Y() - m1*p1.X()
		return orb.Point{x, m1*x + b1}, true
	}
	m1 := dir1.Y() / dir1.X()
	m2 := dir2.Y() / dir2.X()
	b1 := p1.Y() - m1*p1.X()
	b2 := p2.Y() - m2*p2.X()
	x := (b2 - b1) / (m1 - m2)
	return orb.Point{x, m1*x + b1}, true
}
