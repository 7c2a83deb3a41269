package loop

import (
	"fmt"
	"math"

	"github.com/tomz197/survival/internal/entity"
	"github.com/tomz197/survival/internal/render"
	"github.com/tomz197/survival/internal/survival"
)

// lineSpacing is the logical distance between overlay lines.
const lineSpacing = 40.0

// drawStartScreen draws the title screen.
func drawStartScreen(s render.Surface, field entity.Playfield) {
	centerY := field.Height / 2
	s.CenteredText(centerY-lineSpacing, "S U R V I V A L", entity.ColorOrange)
	s.CenteredText(centerY+lineSpacing/2, "Press SPACE to Start", entity.ColorWhite)
	s.CenteredText(centerY+lineSpacing*2, "Enemies fall faster the longer you last. ESC ends a run, Q quits", entity.ColorWhite)
}

// drawGameOverScreen draws the end-of-run overlay on top of the final frame.
func drawGameOverScreen(s render.Surface, field entity.Playfield, result survival.Result) {
	centerY := field.Height / 2
	s.CenteredText(centerY-lineSpacing, "GAME OVER", entity.ColorRed)
	s.CenteredText(centerY, fmt.Sprintf("You survived %ds", int(math.Floor(result.Survived.Seconds()))), entity.ColorWhite)
	s.CenteredText(centerY+lineSpacing, fmt.Sprintf("Difficulty x%.2f", result.Multiplier), entity.ColorWhite)
	s.CenteredText(centerY+lineSpacing*2, "Press SPACE to Restart", entity.ColorWhite)
}
