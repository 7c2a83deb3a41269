// Package loop provides the real-time frame loop around survival mode.
package loop

import (
	"bufio"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/survival/internal/input"
	"github.com/tomz197/survival/internal/modes"
	"github.com/tomz197/survival/internal/render"
	"github.com/tomz197/survival/internal/survival"
)

// Screen is the phase shown to the player.
type Screen int

const (
	ScreenStart   Screen = iota // Title overlay
	ScreenPlaying               // Active run
	ScreenOver                  // End-of-run overlay
)

// Client drives one player's terminal: input, the survival controller and drawing.
type Client struct {
	surface  render.Surface
	renderer *render.Renderer
	stream   *input.Stream
	modes    *modes.Registry
	ctrl     *survival.Controller
	opts     Options
	logger   *log.Logger

	screen  Screen
	result  survival.Result
	running bool
}

// NewClient creates a client reading keys from r and drawing to surface.
func NewClient(r *bufio.Reader, surface render.Surface, opts Options) *Client {
	opts = opts.withDefaults()
	c := &Client{
		surface:  surface,
		renderer: render.New(surface),
		stream:   input.StartStream(r),
		modes:    modes.NewRegistry(opts.Logger),
		opts:     opts,
		logger:   opts.Logger,
		screen:   ScreenStart,
		running:  true,
	}
	c.modes.Register(modes.Survival, c.loadSurvival)
	return c
}

// Run starts the main loop with the standard Input → Update → Draw cycle.
// Blocks until the player quits, the input closes or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, surface render.Surface, opts Options) error {
	return NewClient(r, surface, opts).Run(ctx)
}

// Run blocks until the player quits, the input closes or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	frameTime := time.Second / time.Duration(c.opts.FPS)
	timer := time.NewTimer(0)
	defer timer.Stop()
	defer c.stop()

	for c.running {
		frameStart := time.Now()

		if err := c.Frame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := frameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
	return nil
}

// Frame processes input, advances the current screen and draws it.
func (c *Client) Frame() error {
	c.processInput(input.ReadInput(c.stream))
	if !c.running {
		return nil
	}
	return c.drawFrame()
}

// Screen returns the phase currently shown.
func (c *Client) Screen() Screen {
	return c.screen
}

// Running reports whether the loop will keep going.
func (c *Client) Running() bool {
	return c.running
}

// Controller returns the controller of the latest run, nil before the first start.
func (c *Client) Controller() *survival.Controller {
	return c.ctrl
}

// HideStart implements survival.Overlay.
func (c *Client) HideStart() {
	c.screen = ScreenPlaying
}

// ShowGameOver implements survival.Overlay.
func (c *Client) ShowGameOver(result survival.Result) {
	c.result = result
	c.screen = ScreenOver
}

var _ survival.Overlay = (*Client)(nil)

// processInput applies this frame's keys to the current screen.
func (c *Client) processInput(in input.Input) {
	if in.Quit {
		c.running = false
		return
	}

	switch c.screen {
	case ScreenStart, ScreenOver:
		if in.Start() {
			input.ResetKeyInput(c.stream)
			// Failures are logged by the registry; the screen stays as it is.
			_ = c.modes.Launch(modes.Survival)
		}
	case ScreenPlaying:
		if in.Escape && c.ctrl != nil {
			c.ctrl.Stop()
		}
	}
}

// loadSurvival builds a fresh controller for each run.
func (c *Client) loadSurvival() (modes.Starter, error) {
	c.ctrl = survival.NewController(survival.Options{
		Field:    c.opts.Field,
		Curve:    c.opts.Curve,
		Policy:   c.opts.Policy,
		Clock:    c.opts.Clock,
		Rand:     c.opts.Rand,
		Renderer: c.renderer,
		Overlay:  c,
		Logger:   c.logger,
	})
	return c.ctrl, nil
}

// drawFrame updates the screen's content and presents it.
func (c *Client) drawFrame() error {
	switch c.screen {
	case ScreenStart:
		c.surface.Clear()
		drawStartScreen(c.surface, c.opts.Field)
	case ScreenPlaying:
		if err := c.ctrl.Tick(); err != nil {
			return err
		}
		if c.screen == ScreenOver {
			drawGameOverScreen(c.surface, c.opts.Field, c.result)
		}
	case ScreenOver:
		if c.ctrl != nil {
			if err := c.ctrl.Redraw(); err != nil {
				return err
			}
		} else {
			c.surface.Clear()
		}
		drawGameOverScreen(c.surface, c.opts.Field, c.result)
	}
	return c.surface.Flush()
}

func (c *Client) stop() {
	if c.ctrl != nil {
		c.ctrl.Stop()
	}
}
