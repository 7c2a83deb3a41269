package survival

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/survival/internal/entity"
)

// Archetype selection bands over a uniform draw in [0,1).
// ArchetypeDefault has no band and is never picked.
const (
	fastBandEnd = 0.33
	tankBandEnd = 0.66
)

// PickArchetype maps a uniform draw in [0,1) to an archetype.
func PickArchetype(draw float64) entity.Archetype {
	switch {
	case draw < fastBandEnd:
		return entity.ArchetypeFast
	case draw < tankBandEnd:
		return entity.ArchetypeTank
	default:
		return entity.ArchetypeShielded
	}
}

// Factory creates enemies with a random archetype and a random x position.
type Factory struct {
	rng   *rand.Rand
	field entity.Playfield
}

// NewFactory creates a factory. A nil rng is replaced with a time-seeded one.
func NewFactory(field entity.Playfield, rng *rand.Rand) *Factory {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Factory{rng: rng, field: field}
}

// Create builds a new enemy scaled by multiplier without storing it.
func (f *Factory) Create(multiplier float64) *entity.Enemy {
	archetype := PickArchetype(f.rng.Float64())
	x := f.rng.Float64() * f.field.Width
	return entity.NewEnemy(archetype, x, multiplier)
}

// Spawn builds a new enemy scaled by multiplier and appends it to store.
func (f *Factory) Spawn(store *Store, multiplier float64) *entity.Enemy {
	e := f.Create(multiplier)
	store.Add(e)
	return e
}
