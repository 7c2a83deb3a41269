package survival

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/survival/internal/entity"
)

// Renderer draws one frame of the session. It must not mutate what it is given.
type Renderer interface {
	Render(player *entity.Player, enemies entity.Enemies, survival float64) error
}

// Overlay is the UI around the playfield.
type Overlay interface {
	// HideStart is called when a run starts.
	HideStart()
	// ShowGameOver is called exactly once when a run halts.
	ShowGameOver(result Result)
}

// SecondaryInputHider is implemented by overlays that show an input for a
// second player. Survival is single player, so it gets hidden on start.
type SecondaryInputHider interface {
	HideSecondaryInput()
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Field    entity.Playfield
	Curve    Curve
	Policy   SpawnPolicy
	Clock    Clock
	Rand     *rand.Rand
	Renderer Renderer
	Overlay  Overlay
	Logger   *log.Logger
}

// Controller runs survival mode: it resets the session, starts the
// scheduler and notifies the overlay when the run halts.
type Controller struct {
	session  *Session
	factory  *Factory
	sched    *Scheduler
	clock    Clock
	renderer Renderer
	overlay  Overlay
	logger   *log.Logger

	renderErr error
	notified  bool
}

// NewController creates an idle controller.
func NewController(opts Options) *Controller {
	if opts.Field == (entity.Playfield{}) {
		opts.Field = entity.DefaultPlayfield
	}
	if opts.Policy == (SpawnPolicy{}) {
		opts.Policy = DefaultSpawnPolicy()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	c := &Controller{
		session:  NewSession(opts.Field, opts.Curve),
		factory:  NewFactory(opts.Field, opts.Rand),
		clock:    opts.Clock,
		renderer: opts.Renderer,
		overlay:  opts.Overlay,
		logger:   opts.Logger.WithPrefix("survival"),
	}
	c.sched = NewScheduler(opts.Policy, controllerTasks{c})
	return c
}

// Start resets all state, hides the start overlay and begins spawning and
// stepping. Calling Start again begins a fresh run.
func (c *Controller) Start() {
	if c.overlay != nil {
		c.overlay.HideStart()
		if h, ok := c.overlay.(SecondaryInputHider); ok {
			h.HideSecondaryInput()
		}
	}

	c.session.Reset()
	c.renderErr = nil
	c.notified = false
	c.sched.Start(c.clock.Now())

	c.logger.Debug("run started", "spawnPeriod", c.sched.SpawnPeriod())
}

// Tick advances the run to the clock's current time. It returns the first
// render error of the frame, if any.
func (c *Controller) Tick() error {
	c.renderErr = nil
	c.sched.Advance(c.clock.Now())
	return c.renderErr
}

// Stop halts a running run from outside and notifies the overlay.
// It does nothing unless the run is in progress.
func (c *Controller) Stop() {
	if c.sched.State() != StateRunning {
		return
	}
	c.halt()
}

// Redraw renders the current state without advancing it.
func (c *Controller) Redraw() error {
	if c.renderer == nil {
		return nil
	}
	return c.renderer.Render(c.session.Player, c.session.Enemies, c.session.Survival)
}

// State returns the scheduler phase.
func (c *Controller) State() State {
	return c.sched.State()
}

// Session exposes the run state for inspection.
func (c *Controller) Session() *Session {
	return c.session
}

// Scheduler exposes the scheduler for inspection.
func (c *Controller) Scheduler() *Scheduler {
	return c.sched
}

func (c *Controller) frame(delta time.Duration) {
	c.session.Step(delta)
	if c.session.GameOver {
		c.sched.Halt()
	}

	if c.renderer != nil {
		if err := c.renderer.Render(c.session.Player, c.session.Enemies, c.session.Survival); err != nil {
			c.renderErr = err
		}
	}

	if c.session.GameOver {
		c.halt()
	}
}

func (c *Controller) halt() {
	c.sched.Halt()
	if c.notified {
		return
	}
	c.notified = true

	result := c.session.Result()
	c.logger.Info("run ended",
		"survived", result.Survived.Round(time.Millisecond),
		"multiplier", result.Multiplier,
		"gameOver", c.session.GameOver,
	)
	if c.overlay != nil {
		c.overlay.ShowGameOver(result)
	}
}

// controllerTasks adapts the controller to the scheduler callbacks.
type controllerTasks struct {
	c *Controller
}

func (t controllerTasks) Spawn() {
	t.c.factory.Spawn(t.c.session.Enemies, t.c.session.Multiplier)
}

func (t controllerTasks) Frame(delta time.Duration) {
	t.c.frame(delta)
}

func (t controllerTasks) Multiplier() float64 {
	return t.c.session.Multiplier
}
