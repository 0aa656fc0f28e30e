package loop

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/component"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/draw"
	"github.com/tomz197/fuelrun/internal/hud"
)

var _ hud.Placer = (*draw.Frame)(nil)

// drawFrame draws the world, then the UI on top of it.
func (c *Client) drawFrame() error {
	// UI from the previous screen must not persist.
	if c.screen != c.prevScreen || c.inactive != c.wasInactive {
		c.frame.ClearScreen()
		c.canvas.ForceRedraw()
		c.prevScreen = c.screen
		c.wasInactive = c.inactive
	}

	c.canvas.Clear()
	if c.session != nil && (c.screen == screenPlaying || c.screen == screenOver) {
		c.drawWorld()
	}
	c.canvas.Render(c.frame)
	c.canvas.RenderBorder(c.frame)

	c.drawUI()
	return c.frame.Flush()
}

func (c *Client) camera() draw.Camera {
	pos := component.Transform.Get(c.session.Store.Entry(c.session.Player)).Translation
	return draw.Camera{Center: pos, Width: config.ViewWidth, Height: config.ViewHeight}
}

// drawWorld draws every sprite in view, centered on the player.
func (c *Client) drawWorld() {
	s := c.session
	cam := c.camera()
	c.drawMapBorder(cam, s.Tuning().MapSize/2)

	for _, e := range s.Store.Query(component.Transform, component.Sprite) {
		entry := s.Store.Entry(e)
		pos := component.Transform.Get(entry).Translation
		sprite := component.Sprite.Get(entry)
		size := float64(sprite.CustomSize)
		if !cam.Visible(pos, size) {
			continue
		}

		p := cam.Project(pos)
		switch c.catalog.Shape(sprite.Texture) {
		case asset.ShapeShip:
			var heading float64
			if entry.HasComponent(component.Heading) {
				heading = float64(component.Heading.Get(entry).Angle)
			}
			c.canvas.DrawPolygon(draw.ShipPoints(c.canvas.BorrowPoints(3), p, size, heading), false)
		case asset.ShapeRing:
			c.canvas.DrawCircle(p, size, false)
		case asset.ShapeDisc:
			c.canvas.DrawCircle(p, size, true)
		case asset.ShapeDot:
			c.canvas.SetFloat(p.X, p.Y)
		}
	}
}

// drawMapBorder outlines the map square.
func (c *Client) drawMapBorder(cam draw.Camera, half float32) {
	corners := [4]draw.Point{
		cam.Project(mgl32.Vec3{-half, -half, 0}),
		cam.Project(mgl32.Vec3{half, -half, 0}),
		cam.Project(mgl32.Vec3{half, half, 0}),
		cam.Project(mgl32.Vec3{-half, half, 0}),
	}
	for i := range corners {
		c.canvas.DrawLine(corners[i], corners[(i+1)%len(corners)])
	}
}

// drawUI draws the text for the current screen.
func (c *Client) drawUI() {
	cols := c.canvas.TerminalWidth()
	rows := c.canvas.TerminalHeight()
	centerX, centerY := cols/2, rows/2

	if c.screen == screenShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}
	if c.inactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.screen {
	case screenStart:
		c.drawStartScreen(centerX, centerY)
	case screenPlaying:
		c.drawHUD(cols, rows)
	case screenOver:
		c.drawHUD(cols, rows)
		c.drawOverScreen(centerX, centerY)
	}
}

// drawHUD paints the session's text surface over the canvas and marks the
// covered cells so the canvas repaints them next frame.
func (c *Client) drawHUD(cols, rows int) {
	for _, span := range c.painter.Paint(c.frame, c.session.HUD(), cols, rows) {
		c.canvas.Invalidate(span.Col, span.Row, span.Width)
	}
}

// blink alternates true and false for prompts.
func blink() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

func (c *Client) writeCentered(centerX, row int, s string) {
	c.frame.WriteAt(centerX-len(s)/2, row, s)
	c.canvas.Invalidate(centerX-len(s)/2, row, len(s))
}

func (c *Client) drawOverScreen(centerX, centerY int) {
	st := c.session.Stats()
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Final score: %d", st.Score))
	c.writeCentered(centerX, centerY+3, endReason(c.session.Reason()))

	prompt := ">>  Press ENTER to Restart  <<"
	if c.restartTimer > 0 || !blink() {
		prompt = "                              "
	}
	c.writeCentered(centerX, centerY+5, prompt)
}

func endReason(reason string) string {
	switch reason {
	case "fuel":
		return "You ran out of fuel."
	case "health":
		return "Your hull gave out."
	default:
		return ""
	}
}
