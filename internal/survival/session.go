package survival

import (
	"time"

	"github.com/tomz197/survival/internal/entity"
)

// DamagePerEnemy is the health lost per encroaching enemy per step, before scaling.
const DamagePerEnemy = 0.05

// Session owns all mutable state of one survival run.
type Session struct {
	Field      entity.Playfield
	Player     *entity.Player
	Enemies    *Store
	Multiplier float64 // Current difficulty multiplier, >= 1
	Survival   float64 // Cumulative survival time in seconds, derived from elapsed
	GameOver   bool

	curve   Curve
	elapsed time.Duration
}

// NewSession creates a session in its initial state.
// A nil curve selects Stepped.
func NewSession(field entity.Playfield, curve Curve) *Session {
	if curve == nil {
		curve = Stepped
	}
	s := &Session{
		Field:   field,
		Enemies: NewStore(),
		curve:   curve,
	}
	s.Reset()
	return s
}

// Reset puts the session back to the start of a run.
func (s *Session) Reset() {
	s.Player = entity.NewPlayer(s.Field)
	s.Enemies.Clear()
	s.Multiplier = 1
	s.elapsed = 0
	s.Survival = 0
	s.GameOver = false
}

// Step advances the simulation by one frame.
//
// Order: survival time and difficulty, enemy movement, off-field culling,
// damage, game-over check. Enemies move a fixed amount per step regardless of
// delta; a non-positive delta skips time accumulation and movement only.
// Once the game is over Step does nothing.
func (s *Session) Step(delta time.Duration) {
	if s.GameOver {
		return
	}

	if delta > 0 {
		s.elapsed += delta
	}
	s.Survival = s.elapsed.Seconds()
	s.Multiplier = s.curve(s.Survival)

	if delta > 0 {
		s.Enemies.ForEach(func(e *entity.Enemy) {
			e.Update()
		})
	}

	s.Enemies.RemoveWhere(func(e *entity.Enemy) bool {
		return e.Gone(s.Field)
	})

	line := s.Player.DamageLine()
	damage := DamagePerEnemy * s.Multiplier
	s.Enemies.ForEach(func(e *entity.Enemy) {
		if e.Bottom() >= line {
			s.Player.Health -= damage
		}
	})

	if s.Player.Dead() {
		s.GameOver = true
	}
}

// Result summarizes a finished run.
type Result struct {
	Survived   time.Duration
	Multiplier float64
	Health     float64
}

// Result returns the current summary.
func (s *Session) Result() Result {
	return Result{
		Survived:   s.elapsed,
		Multiplier: s.Multiplier,
		Health:     s.Player.Health,
	}
}
