package entity

// Player constants.
const (
	PlayerRadius       = 25.0
	PlayerMaxHealth    = 100.0
	playerBottomMargin = 100.0
)

// Player is the single entity the enemies are falling towards.
type Player struct {
	X, Y   float64 // Position (center)
	Radius float64
	Health float64 // Starts at PlayerMaxHealth, may go below 0 on the killing tick
	Color  Color
}

// NewPlayer creates a full-health player centered horizontally near the bottom of the field.
func NewPlayer(field Playfield) *Player {
	return &Player{
		X:      field.Width / 2,
		Y:      field.Height - playerBottomMargin,
		Radius: PlayerRadius,
		Health: PlayerMaxHealth,
		Color:  ColorBlue,
	}
}

// DamageLine is the y coordinate where the damage zone starts.
// Enemies whose bottom edge reaches it hurt the player.
func (p *Player) DamageLine() float64 {
	return p.Y - p.Radius
}

// Dead reports whether health has run out.
func (p *Player) Dead() bool {
	return p.Health <= 0
}
