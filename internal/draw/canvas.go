package draw

import (
	"math"
	"sort"
	"strings"
)

// dirty marks a cell whose on-screen content is unknown.
const dirty rune = -1

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Logical coordinates are scaled to terminal pixels, and Render
// only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int
	pixels         []bool // [y*termWidth + x]
	prev           []rune // last rendered rune per cell

	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64
	scaleY        float64

	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates an unscaled canvas for the given terminal dimensions.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// coordinate space onto termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions and forces a full
// redraw on the next Render.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
		c.prev = make([]rune, termWidth*termHeight)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.ForceRedraw()
}

// Clear resets all pixels. What is on screen is untouched until Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render write every cell, e.g. after the
// screen was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = dirty
	}
}

// Invalidate marks n cells starting at the 1-based canvas position
// (col, row) as overwritten by something else, such as a text overlay.
func (c *Canvas) Invalidate(col, row, n int) {
	row--
	col--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < col+n && x < c.termWidth; x++ {
		c.prev[row*c.termWidth+x] = dirty
	}
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line in logical space using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, filling its interior if filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle of logical radius r around center.
// Circles too small to show an outline collapse to a single pixel.
func (c *Canvas) DrawCircle(center Point, r float64, filled bool) {
	if r*c.scaleX < 1 {
		c.SetFloat(center.X, center.Y)
		return
	}
	c.DrawPolygon(CirclePoints(c.BorrowPoints(circleSegments(r*c.scaleX)), center, r), filled)
}

func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xEnd := int(math.Floor(intersections[i+1]))
			for x := int(math.Ceil(intersections[i])); x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render queues every cell that differs from the previous frame.
func (c *Canvas) Render(f *Frame) {
	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth:]
		bottom := c.pixels[(row*2+1)*c.termWidth:]
		lastCol := -2

		for col := 0; col < c.termWidth; col++ {
			ch := cellRune(top[col], bottom[col])
			idx := row*c.termWidth + col
			if c.prev[idx] == ch {
				continue
			}
			c.prev[idx] = ch

			// Consecutive changed cells share one cursor move.
			if col != lastCol+1 {
				f.MoveTo(col+1, row+1)
			}
			f.put(ch)
			lastCol = col
		}
	}
}

func cellRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

// RenderBorder queues a box around the canvas on each axis where the
// frame's offset leaves room for it.
func (c *Canvas) RenderBorder(f *Frame) {
	offCol, offRow := f.Offset()
	hasH := offCol >= 1
	hasV := offRow >= 1

	right := c.termWidth + 1
	bottom := c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			f.WriteAt(0, 0, "┌"+line+"┐")
			f.WriteAt(0, bottom, "└"+line+"┘")
		} else {
			f.WriteAt(1, 0, line)
			f.WriteAt(1, bottom, line)
		}
	}
	if hasH {
		for row := 1; row < bottom; row++ {
			f.WriteAt(0, row, "│")
			f.WriteAt(right, row, "│")
		}
	}
}

// LogicalWidth returns the width of the logical coordinate space.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the height of the logical coordinate space.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a reusable slice of n points, valid until the next
// call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
