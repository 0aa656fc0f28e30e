package draw

import "math"

// circleSegments picks a polygon resolution for a circle of the given
// radius in pixels.
func circleSegments(pixelRadius float64) int {
	return min(max(int(pixelRadius*2), 8), 48)
}

// CirclePoints fills dst with a regular polygon approximating a circle.
func CirclePoints(dst []Point, center Point, r float64) []Point {
	n := len(dst)
	for i := range dst {
		a := 2 * math.Pi * float64(i) / float64(n)
		dst[i] = Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return dst
}

// ShipPoints fills dst[:3] with a triangle whose nose is size away from
// center along heading. The heading is in screen space, with y growing down.
func ShipPoints(dst []Point, center Point, size, heading float64) []Point {
	dst = dst[:3]
	const wing = 2.5
	for i, a := range [3]float64{0, wing, -wing} {
		r := size
		if i > 0 {
			r = size * 0.7
		}
		dst[i] = Point{
			X: center.X + r*math.Cos(heading+a),
			Y: center.Y - r*math.Sin(heading+a),
		}
	}
	return dst
}
