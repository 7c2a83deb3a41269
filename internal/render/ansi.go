package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/survival/internal/draw"
	"github.com/tomz197/survival/internal/entity"
)

// ANSISurface renders with raw ANSI escapes to any writer: a local terminal in
// raw mode or an SSH session.
type ANSISurface struct {
	layout
	out      *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc
	styles   map[entity.Color]lipgloss.Style
}

// NewANSISurface creates a surface writing to w. sizeFunc is polled on every
// Clear; a nil sizeFunc uses draw.DefaultTermSizeFunc. Text is styled with
// styler, which should be bound to w so color support is detected correctly.
func NewANSISurface(w io.Writer, field entity.Playfield, sizeFunc draw.TermSizeFunc, styler *lipgloss.Renderer) *ANSISurface {
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	if styler == nil {
		styler = lipgloss.NewRenderer(w)
	}

	cols, rows, _ := sizeFunc()
	s := &ANSISurface{
		layout:   newLayout(field, cols, rows),
		out:      draw.NewChunkWriter(w),
		sizeFunc: sizeFunc,
		styles:   make(map[entity.Color]lipgloss.Style, len(entity.Palette)),
	}
	for _, c := range entity.Palette {
		s.styles[c] = styler.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true)
	}
	return s
}

// Clear starts a new frame.
func (s *ANSISurface) Clear() {
	cols, rows, err := s.sizeFunc()
	if err != nil {
		cols, rows = s.canvas.TerminalWidth(), s.canvas.TerminalHeight()
	}
	s.reset(cols, rows)
}

// CenteredText writes s centered horizontally.
func (s *ANSISurface) CenteredText(y float64, text string, c entity.Color) {
	s.centered(y, text, lipgloss.Width(text), c)
}

// Flush clears the terminal and writes the canvas followed by the text overlays.
func (s *ANSISurface) Flush() error {
	draw.ClearScreen(s.out)
	if err := s.canvas.Render(s.out); err != nil {
		return err
	}
	for _, t := range s.texts {
		s.out.WriteAt(t.col, t.row, s.style(t.color).Render(t.text))
	}
	return s.out.Flush()
}

func (s *ANSISurface) style(c entity.Color) lipgloss.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	return s.styles[entity.ColorWhite]
}

var _ Surface = (*ANSISurface)(nil)
