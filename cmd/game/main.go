package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/survival/internal/config"
	"github.com/tomz197/survival/internal/draw"
	"github.com/tomz197/survival/internal/input"
	"github.com/tomz197/survival/internal/loop"
	"github.com/tomz197/survival/internal/render"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal is the game screen, so logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.Logger(logOut)

	opts, err := loop.OptionsFromEnv(logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch frontend := config.GetEnv("GAME_FRONTEND", "ansi"); frontend {
	case "ansi":
		return runANSI(ctx, opts)
	case "tcell":
		return runTcell(ctx, opts)
	default:
		return fmt.Errorf("unknown GAME_FRONTEND %q", frontend)
	}
}

// runANSI plays in the current terminal using raw mode and escape sequences.
func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	defer draw.ClearScreen(os.Stdout)

	surface := render.NewANSISurface(os.Stdout, opts.Field, draw.DefaultTermSizeFunc, lipgloss.NewRenderer(os.Stdout))
	return loop.Run(ctx, bufio.NewReader(os.Stdin), surface, opts)
}

// runTcell plays through a tcell screen.
func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	surface := render.NewTcellSurface(screen, opts.Field)
	return loop.Run(ctx, input.TcellReader(screen), surface, opts)
}
