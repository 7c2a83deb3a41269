package survival

import (
	"testing"
	"time"
)

type fakeTasks struct {
	spawns     int
	frames     []time.Duration
	multiplier float64
	onFrame    func()
}

func (f *fakeTasks) Spawn() { f.spawns++ }

func (f *fakeTasks) Frame(delta time.Duration) {
	f.frames = append(f.frames, delta)
	if f.onFrame != nil {
		f.onFrame()
	}
}

func (f *fakeTasks) Multiplier() float64 { return f.multiplier }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSpawnPolicyPeriods(t *testing.T) {
	p := DefaultSpawnPolicy()

	tests := []struct {
		multiplier float64
		initial    time.Duration
		current    time.Duration
	}{
		{1, 1500 * time.Millisecond, 1500 * time.Millisecond},
		{2, 750 * time.Millisecond, 750 * time.Millisecond},
		{3, 500 * time.Millisecond, 500 * time.Millisecond},
		{10, 150 * time.Millisecond, 500 * time.Millisecond},
		{0.5, 1500 * time.Millisecond, 1500 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.InitialPeriod(tt.multiplier); got != tt.initial {
			t.Errorf("InitialPeriod(%v) = %v, want %v", tt.multiplier, got, tt.initial)
		}
		if got := p.CurrentPeriod(tt.multiplier); got != tt.current {
			t.Errorf("CurrentPeriod(%v) = %v, want %v", tt.multiplier, got, tt.current)
		}
	}
}

func TestSchedulerIdleDoesNothing(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)

	s.Advance(epoch.Add(10 * time.Second))

	if tasks.spawns != 0 || len(tasks.frames) != 0 {
		t.Errorf("idle scheduler ran tasks: spawns=%d frames=%d", tasks.spawns, len(tasks.frames))
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestSchedulerSpawnsOnPeriod(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)

	s.Advance(epoch.Add(1499 * time.Millisecond))
	if tasks.spawns != 0 {
		t.Fatalf("spawns before first period = %d, want 0", tasks.spawns)
	}

	s.Advance(epoch.Add(1500 * time.Millisecond))
	if tasks.spawns != 1 {
		t.Fatalf("spawns at first period = %d, want 1", tasks.spawns)
	}

	s.Advance(epoch.Add(4500 * time.Millisecond))
	if tasks.spawns != 3 {
		t.Fatalf("spawns at 4.5s = %d, want 3", tasks.spawns)
	}

	wantFrames := []time.Duration{1499 * time.Millisecond, time.Millisecond, 3000 * time.Millisecond}
	if len(tasks.frames) != len(wantFrames) {
		t.Fatalf("frames = %v, want %v", tasks.frames, wantFrames)
	}
	for i, d := range wantFrames {
		if tasks.frames[i] != d {
			t.Errorf("frame %d delta = %v, want %v", i, tasks.frames[i], d)
		}
	}
}

func TestSchedulerInitialPeriodUsesMultiplier(t *testing.T) {
	tasks := &fakeTasks{multiplier: 10}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)

	if got := s.SpawnPeriod(); got != 150*time.Millisecond {
		t.Fatalf("initial period = %v, want 150ms", got)
	}
}

func TestSchedulerReevaluatesEveryFiveSeconds(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)

	tasks.multiplier = 2
	s.Advance(epoch.Add(4999 * time.Millisecond))
	if got := s.SpawnPeriod(); got != BaseSpawnPeriod {
		t.Fatalf("period before re-evaluation = %v, want %v", got, BaseSpawnPeriod)
	}

	s.Advance(epoch.Add(5 * time.Second))
	if got := s.SpawnPeriod(); got != 750*time.Millisecond {
		t.Fatalf("period after re-evaluation = %v, want 750ms", got)
	}
	if tasks.spawns != 3 {
		t.Fatalf("spawns at 5s = %d, want 3", tasks.spawns)
	}

	// The rebuilt timer restarts from the re-evaluation instant.
	s.Advance(epoch.Add(5749 * time.Millisecond))
	if tasks.spawns != 3 {
		t.Fatalf("spawns at 5.749s = %d, want 3", tasks.spawns)
	}
	s.Advance(epoch.Add(6500 * time.Millisecond))
	if tasks.spawns != 5 {
		t.Fatalf("spawns at 6.5s = %d, want 5", tasks.spawns)
	}
}

func TestSchedulerReevaluationAppliesFloor(t *testing.T) {
	tasks := &fakeTasks{multiplier: 10}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)

	s.Advance(epoch.Add(5 * time.Second))
	if got := s.SpawnPeriod(); got != MinSpawnPeriod {
		t.Fatalf("period = %v, want %v", got, MinSpawnPeriod)
	}
}

func TestSchedulerSpawnWinsTies(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	policy := SpawnPolicy{Base: time.Second, Floor: time.Millisecond, Reevaluate: 2 * time.Second}
	s := NewScheduler(policy, tasks)
	s.Start(epoch)

	s.Advance(epoch.Add(3 * time.Second))
	if tasks.spawns != 3 {
		t.Fatalf("spawns = %d, want 3", tasks.spawns)
	}
}

func TestSchedulerHaltCancelsTimers(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)
	s.Advance(epoch.Add(time.Second))

	if !s.Halt() {
		t.Fatal("first Halt returned false")
	}
	if s.Halt() {
		t.Fatal("second Halt returned true")
	}
	if s.Pending() {
		t.Fatal("timers still armed after Halt")
	}

	frames := len(tasks.frames)
	s.Advance(epoch.Add(time.Minute))
	if tasks.spawns != 0 || len(tasks.frames) != frames {
		t.Errorf("tasks ran after Halt: spawns=%d frames=%d", tasks.spawns, len(tasks.frames))
	}
	if s.State() != StateHalted {
		t.Errorf("state = %v, want halted", s.State())
	}
}

func TestSchedulerHaltFromFrame(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	tasks.onFrame = func() { s.Halt() }
	s.Start(epoch)

	s.Advance(epoch.Add(100 * time.Millisecond))
	s.Advance(epoch.Add(10 * time.Second))

	if len(tasks.frames) != 1 {
		t.Errorf("frames = %d, want 1", len(tasks.frames))
	}
	if tasks.spawns != 0 {
		t.Errorf("spawns = %d, want 0", tasks.spawns)
	}
}

func TestSchedulerRestart(t *testing.T) {
	tasks := &fakeTasks{multiplier: 1}
	s := NewScheduler(DefaultSpawnPolicy(), tasks)
	s.Start(epoch)
	s.Halt()

	later := epoch.Add(time.Hour)
	s.Start(later)
	if s.State() != StateRunning || !s.Pending() {
		t.Fatalf("state = %v pending = %v after restart", s.State(), s.Pending())
	}
	s.Advance(later.Add(1500 * time.Millisecond))
	if tasks.spawns != 1 {
		t.Errorf("spawns = %d, want 1", tasks.spawns)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(epoch); got != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", got)
	}
}
