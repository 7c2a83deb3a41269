// Package render draws the survival playfield onto a terminal surface.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/survival/internal/draw"
	"github.com/tomz197/survival/internal/entity"
)

// HUD placement in logical coordinates.
const (
	hudX        = 20.0
	hudTimeY    = 40.0
	hudHealthY  = 70.0
	hudTextInk  = entity.ColorWhite
	textPadding = 1
)

// Surface is a drawing target addressed in logical playfield coordinates.
type Surface interface {
	// Clear starts a new frame, picking up any terminal resize.
	Clear()
	FillCircle(x, y, r float64, c entity.Color)
	Text(x, y float64, s string, c entity.Color)
	// CenteredText writes s horizontally centered at logical height y.
	CenteredText(y float64, s string, c entity.Color)
	// Flush presents the frame.
	Flush() error
}

// Renderer draws the player, the enemies and the HUD. It never flushes;
// callers add overlays and flush once per frame.
type Renderer struct {
	surface Surface
}

// New creates a renderer over surface.
func New(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Render clears the surface and draws one frame.
func (r *Renderer) Render(player *entity.Player, enemies entity.Enemies, survival float64) error {
	if player == nil {
		return errors.New("render: nil player")
	}

	r.surface.Clear()
	r.surface.FillCircle(player.X, player.Y, player.Radius, player.Color)
	if enemies != nil {
		enemies.ForEach(func(e *entity.Enemy) {
			r.surface.FillCircle(e.X, e.Y, e.Radius, e.Color)
		})
	}

	r.surface.Text(hudX, hudTimeY, TimeText(survival), hudTextInk)
	r.surface.Text(hudX, hudHealthY, HealthText(player.Health), hudTextInk)
	return nil
}

// TimeText formats whole seconds survived.
func TimeText(survival float64) string {
	return fmt.Sprintf("Time: %ds", int(math.Floor(survival)))
}

// HealthText formats health rounded down; it can read negative on the killing frame.
func HealthText(health float64) string {
	return fmt.Sprintf("Health: %d", int(math.Floor(health)))
}

// textItem is a pending text overlay at a 1-based terminal position.
type textItem struct {
	col, row int
	text     string
	color    entity.Color
}

// layout holds the pixel canvas and pending text shared by the terminal surfaces.
type layout struct {
	canvas *draw.Canvas
	texts  []textItem
}

func newLayout(field entity.Playfield, cols, rows int) layout {
	canvas := draw.NewScaledCanvas(cols, rows, field.Width, field.Height)
	for _, c := range entity.Palette {
		canvas.DefineInk(draw.Ink(c), c.RGB())
	}
	return layout{canvas: canvas}
}

func (l *layout) reset(cols, rows int) {
	l.canvas.Resize(cols, rows)
	l.canvas.Clear()
	l.texts = l.texts[:0]
}

func (l *layout) FillCircle(x, y, r float64, c entity.Color) {
	l.canvas.FillCircle(x, y, r, draw.Ink(c))
}

func (l *layout) Text(x, y float64, s string, c entity.Color) {
	col, row := l.canvas.LogicalToTerminal(x, y)
	l.texts = append(l.texts, textItem{col: col, row: row, text: s, color: c})
}

func (l *layout) centered(y float64, s string, width int, c entity.Color) {
	_, row := l.canvas.LogicalToTerminal(0, y)
	col := (l.canvas.TerminalWidth()-width)/2 + textPadding
	if col < 1 {
		col = 1
	}
	l.texts = append(l.texts, textItem{col: col, row: row, text: s, color: c})
}
