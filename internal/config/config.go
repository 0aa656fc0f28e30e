package config

import "time"

// View resolution - the visible slice of the map in world units.
// Width:height is 3:2 so that one world unit maps to a square sub-pixel
// on a terminal cell with 2x vertical resolution.
const (
	ViewWidth  = 720
	ViewHeight = 480
)

// Max render resolution in terminal cells. Larger terminals get a centered
// render area with a border.
const (
	MaxTermWidth  = 180
	MaxTermHeight = 60
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Screens
const (
	RestartDelaySeconds    = 1.0  // Seconds before Enter restarts after game over
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Spectator feed
const (
	FeedInterval = 250 * time.Millisecond
)
