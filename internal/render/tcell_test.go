package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/survival/internal/entity"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func readRow(screen tcell.Screen, x, y, n int) string {
	runes := make([]rune, 0, n)
	for i := range n {
		ch, _, _, _ := screen.GetContent(x+i, y)
		runes = append(runes, ch)
	}
	return string(runes)
}

func TestTcellSurfaceFlush(t *testing.T) {
	screen := newSimulationScreen(t)
	s := NewTcellSurface(screen, entity.DefaultPlayfield)
	r := New(s)

	player := entity.NewPlayer(entity.DefaultPlayfield)
	if err := r.Render(player, enemyList{}, 7.5); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := readRow(screen, 2, 1, 8); got != "Time: 7s" {
		t.Errorf("time HUD = %q, want %q", got, "Time: 7s")
	}

	// Player center (400, 500) lands on column 40, row 20.
	if ch, _, _, _ := screen.GetContent(40, 20); ch == ' ' || ch == 0 {
		t.Errorf("player cell is empty")
	}
	if ch, _, _, _ := screen.GetContent(70, 5); ch != ' ' {
		t.Errorf("background cell = %q, want blank", ch)
	}
}

func TestTcellSurfaceCenteredText(t *testing.T) {
	screen := newSimulationScreen(t)
	s := NewTcellSurface(screen, entity.DefaultPlayfield)

	s.Clear()
	s.CenteredText(300, "GAME OVER", entity.ColorRed)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	// (80-9)/2 = 35, row 13 is y index 12.
	if got := readRow(screen, 35, 12, 9); got != "GAME OVER" {
		t.Errorf("centered text = %q, want GAME OVER", got)
	}
}
