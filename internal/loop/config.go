package loop

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/tomz197/survival/internal/config"
	"github.com/tomz197/survival/internal/entity"
	"github.com/tomz197/survival/internal/survival"
)

// Frame pacing.
const (
	defaultFPS = 60
	maxFPS     = 240
)

// Options configures a client. Zero values select defaults.
type Options struct {
	FPS    int
	Field  entity.Playfield
	Curve  survival.Curve
	Policy survival.SpawnPolicy
	Clock  survival.Clock
	Rand   *rand.Rand
	Logger *log.Logger
}

// OptionsFromEnv reads GAME_FPS, SURVIVAL_DIFFICULTY and the SPAWN_* periods.
func OptionsFromEnv(logger *log.Logger) (Options, error) {
	curve, err := survival.CurveByName(config.GetEnv("SURVIVAL_DIFFICULTY", "stepped"))
	if err != nil {
		return Options{}, err
	}
	policy, err := spawnPolicyFromEnv()
	if err != nil {
		return Options{}, err
	}
	return Options{
		FPS:    config.GetEnvInt("GAME_FPS", defaultFPS),
		Field:  entity.DefaultPlayfield,
		Curve:  curve,
		Policy: policy,
		Logger: logger,
	}, nil
}

func spawnPolicyFromEnv() (survival.SpawnPolicy, error) {
	p := survival.SpawnPolicy{
		Base:       config.GetEnvDuration("SPAWN_BASE_PERIOD", survival.BaseSpawnPeriod),
		Floor:      config.GetEnvDuration("SPAWN_MIN_PERIOD", survival.MinSpawnPeriod),
		Reevaluate: config.GetEnvDuration("SPAWN_REEVALUATE_PERIOD", survival.ReevaluatePeriod),
	}
	if p.Base <= 0 || p.Floor <= 0 || p.Reevaluate <= 0 {
		return survival.SpawnPolicy{}, fmt.Errorf("spawn periods must be positive, got base=%v min=%v reevaluate=%v",
			p.Base, p.Floor, p.Reevaluate)
	}
	return p, nil
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = defaultFPS
	}
	if o.FPS > maxFPS {
		o.FPS = maxFPS
	}
	if o.Field == (entity.Playfield{}) {
		o.Field = entity.DefaultPlayfield
	}
	if o.Clock == nil {
		o.Clock = survival.SystemClock{}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}
