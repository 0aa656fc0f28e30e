package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/fuelrun/internal/config"
)

var titleArt = []string{
	` ___ _   _ ___ _    ___ _   _ _  _ `,
	`| __| | | | __| |  | _ \ | | | \| |`,
	`| _|| |_| | _|| |__|   / |_| | .' |`,
	`|_|  \___/|___|____|_|_\\___/|_|\_|`,
}

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"Q  . . . . . . .  Quit",
}

func (c *Client) drawStartScreen(centerX, centerY int) {
	width := 0
	for _, line := range titleArt {
		width = max(width, len(line))
	}
	top := centerY - 7
	for i, line := range titleArt {
		c.frame.WriteAt(centerX-width/2, top+i, line)
	}

	y := top + len(titleArt) + 1
	c.writeCentered(centerX, y, "~ Shoot rocks. Find fuel. Stay alive. ~")

	y += 2
	c.writeCentered(centerX, y, "Controls")
	for i, line := range controlLines {
		c.writeCentered(centerX, y+1+i, line)
	}

	y += len(controlLines) + 2
	if blink() {
		c.writeCentered(centerX, y, ">>  Press SPACE to Start  <<")
	} else {
		c.writeCentered(centerX, y, "                            ")
	}
}

func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")
	left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.writeCentered(centerX, centerY, fmt.Sprintf("You will be disconnected in %3d seconds.", left))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", int(c.shutdownTimer)+1))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
