// Package hud holds the on-screen text elements and projects game numbers
// into them.
package hud

import (
	"strconv"
)

// Text is one UI element: a fixed label followed by a value section.
type Text struct {
	Label   string
	Value   string
	Visible bool
}

// String returns the label and value as displayed.
func (t Text) String() string {
	return t.Label + t.Value
}

// Surface is the set of elements the game writes to each frame.
type Surface struct {
	Health Text
	Score  Text
	Fuel   Text
	Banner Text
}

// NewSurface creates the HUD with the game over banner hidden.
func NewSurface() *Surface {
	return &Surface{
		Health: Text{Label: "Health: ", Visible: true},
		Score:  Text{Label: "Score: ", Visible: true},
		Fuel:   Text{Label: "Fuel: ", Visible: true},
		Banner: Text{Label: "GAME OVER"},
	}
}

// Sync copies the current numbers into their elements and shows the banner
// only while health is exhausted.
func (s *Surface) Sync(health, score int, fuel float32) {
	s.Health.Value = strconv.Itoa(health)
	s.Score.Value = strconv.Itoa(score)
	s.Fuel.Value = FormatFuel(fuel)
	s.Banner.Visible = health < 1
}

// GameOver forces the banner visible regardless of health.
func (s *Surface) GameOver() {
	s.Banner.Visible = true
}

// FormatFuel renders fuel with the shortest decimal that round-trips.
func FormatFuel(fuel float32) string {
	return strconv.FormatFloat(float64(fuel), 'f', -1, 32)
}
