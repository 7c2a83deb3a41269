package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/survival/internal/draw"
	"github.com/tomz197/survival/internal/entity"
)

// TcellSurface renders into a tcell screen.
type TcellSurface struct {
	layout
	screen tcell.Screen
}

// NewTcellSurface creates a surface over an initialized screen.
func NewTcellSurface(screen tcell.Screen, field entity.Playfield) *TcellSurface {
	cols, rows := screen.Size()
	return &TcellSurface{
		layout: newLayout(field, cols, rows),
		screen: screen,
	}
}

// Clear starts a new frame.
func (s *TcellSurface) Clear() {
	cols, rows := s.screen.Size()
	s.reset(cols, rows)
}

// CenteredText writes s centered horizontally.
func (s *TcellSurface) CenteredText(y float64, text string, c entity.Color) {
	s.centered(y, text, len([]rune(text)), c)
}

// Flush copies the canvas and text into the screen and shows it.
func (s *TcellSurface) Flush() error {
	s.screen.Clear()

	s.canvas.Cells(func(col, row int, top, bottom draw.Ink) {
		ch, fg, bg := draw.Glyph(top, bottom)
		style := tcell.StyleDefault.Foreground(s.color(fg))
		if bg != draw.InkNone {
			style = style.Background(s.color(bg))
		}
		s.screen.SetContent(col, row, ch, nil, style)
	})

	for _, t := range s.texts {
		style := tcell.StyleDefault.Foreground(s.color(draw.Ink(t.color))).Bold(true)
		col := t.col - 1
		for _, r := range t.text {
			s.screen.SetContent(col, t.row-1, r, nil, style)
			col++
		}
	}

	s.screen.Show()
	return nil
}

func (s *TcellSurface) color(ink draw.Ink) tcell.Color {
	r, g, b := s.canvas.Color(ink).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

var _ Surface = (*TcellSurface)(nil)
