// Package draw renders to ANSI terminals: a half-block canvas, a camera
// mapping world space to it, and buffered terminal output.
package draw

import "github.com/go-gl/mathgl/mgl32"

// Point is a 2D coordinate in logical canvas space, y growing down.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Camera maps world coordinates (y up) to a canvas's logical space, with
// Center in the middle of the view.
type Camera struct {
	Center        mgl32.Vec3
	Width, Height float64
}

// Project returns the logical canvas position of a world point.
func (cam Camera) Project(v mgl32.Vec3) Point {
	return Point{
		X: float64(v.X()-cam.Center.X()) + cam.Width/2,
		Y: cam.Height/2 - float64(v.Y()-cam.Center.Y()),
	}
}

// Visible reports whether a circle of radius r around v overlaps the view.
func (cam Camera) Visible(v mgl32.Vec3, r float64) bool {
	p := cam.Project(v)
	return p.X+r >= 0 && p.X-r <= cam.Width && p.Y+r >= 0 && p.Y-r <= cam.Height
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
