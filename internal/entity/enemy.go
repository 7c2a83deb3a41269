package entity

// Archetype is the enemy category.
type Archetype int

const (
	ArchetypeDefault Archetype = iota
	ArchetypeFast
	ArchetypeTank
	ArchetypeShielded
)

// Enemy geometry.
const (
	EnemyRadius = 20.0
	SpawnY      = -50.0 // Spawn height, above the visible top edge
)

// Stats are the base attributes of an archetype, before difficulty scaling.
type Stats struct {
	Speed    float64 // Pixels per simulation step
	Health   float64
	Color    Color
	Shielded bool
}

var archetypeStats = map[Archetype]Stats{
	ArchetypeDefault:  {Speed: 2, Health: 30, Color: ColorRed},
	ArchetypeFast:     {Speed: 3, Health: 20, Color: ColorOrange},
	ArchetypeTank:     {Speed: 1.5, Health: 50, Color: ColorGreen},
	ArchetypeShielded: {Speed: 2, Health: 30, Color: ColorPurple, Shielded: true},
}

var archetypeNames = map[Archetype]string{
	ArchetypeDefault:  "default",
	ArchetypeFast:     "fast",
	ArchetypeTank:     "tank",
	ArchetypeShielded: "shielded",
}

// Base returns the unscaled stats. Unknown archetypes fall back to the default row.
func (a Archetype) Base() Stats {
	if s, ok := archetypeStats[a]; ok {
		return s
	}
	return archetypeStats[ArchetypeDefault]
}

func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return archetypeNames[ArchetypeDefault]
}

// Enemy is a falling hazard. Speed and Health are fixed when it is created.
type Enemy struct {
	Archetype Archetype
	X, Y      float64 // Position (center)
	Radius    float64
	Speed     float64
	Health    float64
	Color     Color
	Shielded  bool // Tag only, has no gameplay effect
}

// NewEnemy creates an enemy at (x, SpawnY) with the archetype's base stats
// scaled by multiplier.
func NewEnemy(a Archetype, x, multiplier float64) *Enemy {
	base := a.Base()
	return &Enemy{
		Archetype: a,
		X:         x,
		Y:         SpawnY,
		Radius:    EnemyRadius,
		Speed:     base.Speed * multiplier,
		Health:    base.Health * multiplier,
		Color:     base.Color,
		Shielded:  base.Shielded,
	}
}

// Update moves the enemy down by its per-step speed.
func (e *Enemy) Update() {
	e.Y += e.Speed
}

// Top returns the y of the enemy's upper edge.
func (e *Enemy) Top() float64 {
	return e.Y - e.Radius
}

// Bottom returns the y of the enemy's lower edge.
func (e *Enemy) Bottom() float64 {
	return e.Y + e.Radius
}

// Gone reports whether the enemy has fallen completely out of the field.
func (e *Enemy) Gone(field Playfield) bool {
	return e.Top() > field.Height
}
