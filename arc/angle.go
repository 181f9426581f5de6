package arc

import (
	"math"

	"github.com/katalvlaran/geowalk/geograph"
	"gonum.org/v1/gonum/floats/scalar"
)

// angleEpsilon absorbs float64 rounding noise accumulated across repeated
// angle subtraction/normalisation, so near-tangent arcs compare as equal
// instead of flickering between "just obscured" and "just visible".
const angleEpsilon = 1e-9

// NormalizeAngle folds theta into the half-open interval (-π, π], the
// convention spec §3/§9 require consistently throughout this package.
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	} else if theta > math.Pi {
		theta -= 2 * math.Pi
	}

	return theta
}

// AngleBetween returns the normalised angle, in radians, of the line from
// from to to. Because the visibility arithmetic's y axis grows downward,
// the ordinary math.Atan2(dy, dx) convention already yields an angle that
// reads as clockwise on screen (spec §3).
func AngleBetween(from, to geograph.Point) float64 {
	return NormalizeAngle(math.Atan2(to.Y-from.Y, to.X-from.X))
}

// lessOrEqual reports a <= b, treating values within angleEpsilon as equal
// so that borderline obscuration decisions are stable under float error.
func lessOrEqual(a, b float64) bool {
	return a <= b || scalar.EqualWithinAbs(a, b, angleEpsilon)
}

// greaterOrEqual reports a >= b with the same epsilon tolerance as
// lessOrEqual.
func greaterOrEqual(a, b float64) bool {
	return a >= b || scalar.EqualWithinAbs(a, b, angleEpsilon)
}
