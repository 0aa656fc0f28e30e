package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fuelrun/internal/asset"
	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/draw"
	"github.com/tomz197/fuelrun/internal/game"
	"github.com/tomz197/fuelrun/internal/hud"
	"github.com/tomz197/fuelrun/internal/input"
	"github.com/tomz197/fuelrun/internal/object"
)

// screen is the client's UI phase. It wraps the session's own Playing /
// GameOver state with the title and shutdown screens.
type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenOver
	screenShutdown
)

// Options configures a client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Hub          *Hub // optional; local games run without one
	Tuning       config.Tuning
	// NewRand seeds each new session. Defaults to a time-seeded source.
	NewRand func() object.Rand
	Logger  *log.Logger
}

// Client runs one player's sessions and draws them to a terminal.
type Client struct {
	opts    Options
	handle  *Handle
	session *game.Session
	catalog *asset.Catalog
	logger  *log.Logger

	canvas  *draw.Canvas
	frame   *draw.Frame
	painter *hud.Painter
	stream  *input.Stream

	in         input.Input
	running    bool
	screen     screen
	prevScreen screen
	delta      time.Duration

	lastInput   time.Time
	inactive    bool
	wasInactive bool

	restartTimer  float64
	shutdownTimer float64

	// holdFire is set while the key that started the game is still held.
	holdFire bool
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.StdoutSize
	}
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.Default()
	}
	if opts.NewRand == nil {
		opts.NewRand = func() object.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	termWidth, termHeight, _ := opts.TermSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	frame := draw.NewFrame(w)
	frame.SetOffset(offsetCol, offsetRow)

	c := &Client{
		opts:       opts,
		catalog:    asset.NewCatalog(),
		logger:     opts.Logger,
		canvas:     draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight),
		frame:      frame,
		painter:    hud.NewPainter(w),
		stream:     input.StartStream(r),
		running:    true,
		lastInput:  time.Now(),
		prevScreen: screenStart,
	}
	if opts.Hub != nil {
		c.handle = opts.Hub.Register(opts.Username)
	}
	return c
}

// Run drives the client at a fixed frame rate until the player quits,
// the connection closes or the server shuts down.
func (c *Client) Run() error {
	c.frame.HideCursor()
	c.frame.ClearScreen()
	defer func() {
		c.frame.ShowCursor()
		c.frame.Flush()
	}()
	if c.handle != nil {
		defer c.opts.Hub.Unregister(c.handle.ID)
	}

	lastTime := time.Now()
	for c.running {
		frameStart := time.Now()
		c.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processHubEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.frame.ClearScreen()
	return nil
}

func (c *Client) processInput() {
	c.in = input.ReadInput(c.stream)

	idle := time.Since(c.lastInput).Seconds()
	switch {
	case len(c.in.Pressed) > 0:
		c.lastInput = time.Now()
		c.inactive = false
	case idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive player", "user", c.opts.Username)
		c.running = false
	case idle > config.InactivityWarnUser:
		c.inactive = true
	}

	if c.in.Quit || c.in.Closed {
		c.running = false
	}
}

func (c *Client) processHubEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case ev := <-c.handle.Events:
			if ev.Type == EventServerShutdown {
				c.screen = screenShutdown
				c.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen follows terminal resizes, clamped to the max render size.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.opts.TermSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	prevCol, prevRow := c.frame.Offset()
	if renderWidth == c.canvas.TerminalWidth() && renderHeight == c.canvas.TerminalHeight() &&
		offsetCol == prevCol && offsetRow == prevRow {
		return
	}

	// Old borders and offset content lie outside the new canvas.
	c.frame.ClearScreen()
	c.frame.SetOffset(offsetCol, offsetRow)
	c.canvas.Resize(renderWidth, renderHeight)
}

// clampTermSize clamps terminal dimensions to the max render resolution
// and centers the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

func (c *Client) update() {
	dt := float32(c.delta.Seconds())

	switch c.screen {
	case screenStart:
		if c.in.Space || c.in.Enter {
			c.startGame()
		}
	case screenPlaying:
		c.step(dt)
		if c.session.Mode() == game.ModeGameOver {
			c.screen = screenOver
			c.restartTimer = config.RestartDelaySeconds
		}
	case screenOver:
		// The field keeps drifting behind the banner.
		c.step(dt)
		c.restartTimer = max(c.restartTimer-c.delta.Seconds(), 0)
		if c.restartTimer == 0 && c.in.Enter {
			c.startGame()
		}
	case screenShutdown:
		c.shutdownTimer -= c.delta.Seconds()
		if c.shutdownTimer <= 0 {
			c.running = false
		}
	}
}

func (c *Client) step(dt float32) {
	if !c.in.Space {
		c.holdFire = false
	}
	c.session.Step(dt, game.Input{
		Controls: object.Controls{Left: c.in.Left, Right: c.in.Right, Thrust: c.in.Up},
		Fire:     c.in.Space && !c.holdFire,
	})
	c.publish()
}

func (c *Client) publish() {
	if c.handle == nil {
		return
	}
	st := c.session.Stats()
	c.opts.Hub.Publish(c.handle.ID, Report{
		Health:    st.Health,
		Fuel:      st.Fuel,
		Score:     st.Score,
		Mode:      st.Mode.String(),
		Asteroids: st.Asteroids,
	})
}

// startGame replaces any finished session with a brand-new one.
func (c *Client) startGame() {
	c.session = game.NewSession(game.Options{
		Tuning: c.opts.Tuning,
		Rand:   c.opts.NewRand(),
		Assets: c.catalog,
		Logger: c.logger.With("user", c.opts.Username),
	})
	c.screen = screenPlaying
	c.holdFire = c.in.Space
	c.publish()
	c.logger.Debug("session started", "user", c.opts.Username)
}
