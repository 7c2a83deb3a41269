package survival

import "time"

// Spawn timing defaults.
const (
	BaseSpawnPeriod  = 1500 * time.Millisecond
	MinSpawnPeriod   = 500 * time.Millisecond
	ReevaluatePeriod = 5 * time.Second
)

// SpawnPolicy decides how often enemies spawn for a given multiplier.
// The spawn timer is only rebuilt every Reevaluate, so the spawn rate rises
// in discrete jumps rather than tracking the multiplier continuously.
type SpawnPolicy struct {
	Base       time.Duration // Period at multiplier 1
	Floor      time.Duration // Lower bound applied on re-evaluation
	Reevaluate time.Duration // Wall time between spawn timer rebuilds
}

// DefaultSpawnPolicy returns the stock 1500ms / 500ms / 5s policy.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{
		Base:       BaseSpawnPeriod,
		Floor:      MinSpawnPeriod,
		Reevaluate: ReevaluatePeriod,
	}
}

// InitialPeriod is the spawn period used when a run starts. No floor is applied.
func (p SpawnPolicy) InitialPeriod(multiplier float64) time.Duration {
	return p.scaled(multiplier)
}

// CurrentPeriod is the spawn period chosen on each re-evaluation, floored at Floor.
func (p SpawnPolicy) CurrentPeriod(multiplier float64) time.Duration {
	return max(p.Floor, p.scaled(multiplier))
}

func (p SpawnPolicy) scaled(multiplier float64) time.Duration {
	if multiplier < 1 {
		multiplier = 1
	}
	d := time.Duration(float64(p.Base) / multiplier)
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}

// State is the scheduler lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Tasks are the callbacks the scheduler drives.
type Tasks interface {
	// Spawn runs on every spawn tick.
	Spawn()
	// Frame runs once per Advance with the wall time since the previous frame.
	Frame(delta time.Duration)
	// Multiplier reports the current difficulty, read on re-evaluation.
	Multiplier() float64
}

// interval is a repeating deadline.
type interval struct {
	period time.Duration
	next   time.Time
}

func newInterval(from time.Time, period time.Duration) interval {
	return interval{period: period, next: from.Add(period)}
}

func (iv interval) due(now time.Time) bool {
	return iv.period > 0 && !iv.next.After(now)
}

// Scheduler drives the spawn timer, the re-evaluation timer and the per-frame
// callback from a single goroutine. Timers only fire inside Advance, so halting
// cancels them deterministically.
type Scheduler struct {
	policy    SpawnPolicy
	tasks     Tasks
	state     State
	spawn     interval
	reeval    interval
	lastFrame time.Time
}

// NewScheduler creates an idle scheduler.
func NewScheduler(policy SpawnPolicy, tasks Tasks) *Scheduler {
	return &Scheduler{
		policy: policy,
		tasks:  tasks,
		state:  StateIdle,
	}
}

// Start arms the timers at now. Starting a running scheduler restarts its timers.
func (s *Scheduler) Start(now time.Time) {
	s.state = StateRunning
	s.lastFrame = now
	s.spawn = newInterval(now, s.policy.InitialPeriod(s.tasks.Multiplier()))
	s.reeval = newInterval(now, s.policy.Reevaluate)
}

// Advance fires every timer due at or before now in chronological order and
// then runs one frame. It stops immediately once the scheduler is halted,
// including when a callback halts it.
func (s *Scheduler) Advance(now time.Time) {
	for s.state == StateRunning {
		spawnDue := s.spawn.due(now)
		reevalDue := s.reeval.due(now)

		switch {
		case spawnDue && (!reevalDue || !s.spawn.next.After(s.reeval.next)):
			s.spawn.next = s.spawn.next.Add(s.spawn.period)
			s.tasks.Spawn()
		case reevalDue:
			at := s.reeval.next
			s.reeval.next = at.Add(s.reeval.period)
			s.spawn = newInterval(at, s.policy.CurrentPeriod(s.tasks.Multiplier()))
		default:
			delta := now.Sub(s.lastFrame)
			s.lastFrame = now
			s.tasks.Frame(delta)
			return
		}
	}
}

// Halt cancels all timers. It returns true only on the call that stopped a
// running scheduler.
func (s *Scheduler) Halt() bool {
	if s.state != StateRunning {
		return false
	}
	s.state = StateHalted
	s.spawn = interval{}
	s.reeval = interval{}
	return true
}

// State returns the lifecycle phase.
func (s *Scheduler) State() State {
	return s.state
}

// SpawnPeriod returns the active spawn period, or 0 when no timer is armed.
func (s *Scheduler) SpawnPeriod() time.Duration {
	return s.spawn.period
}

// Pending reports whether any timer is armed.
func (s *Scheduler) Pending() bool {
	return s.spawn.period > 0 || s.reeval.period > 0
}
