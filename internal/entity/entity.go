// Package entity holds the data types shared by the simulation and the renderers.
package entity

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Playfield is the logical drawing area. Game objects use these coordinates;
// surfaces scale them to whatever the terminal offers.
type Playfield struct {
	Width  float64
	Height float64
}

// DefaultPlayfield matches the 800x600 board the survival mode was tuned for.
var DefaultPlayfield = Playfield{Width: 800, Height: 600}

// Color names one of the fixed palette entries used for drawing.
type Color uint8

const (
	ColorNone Color = iota
	ColorBlue
	ColorOrange
	ColorGreen
	ColorPurple
	ColorRed
	ColorWhite
)

var colorHex = map[Color]string{
	ColorBlue:   "#1e90ff",
	ColorOrange: "#ffa500",
	ColorGreen:  "#008000",
	ColorPurple: "#800080",
	ColorRed:    "#ff0000",
	ColorWhite:  "#ffffff",
}

var colorNames = map[Color]string{
	ColorNone:   "none",
	ColorBlue:   "blue",
	ColorOrange: "orange",
	ColorGreen:  "green",
	ColorPurple: "purple",
	ColorRed:    "red",
	ColorWhite:  "white",
}

// Palette lists every drawable color.
var Palette = []Color{ColorBlue, ColorOrange, ColorGreen, ColorPurple, ColorRed, ColorWhite}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Hex returns the #rrggbb form of the color, or "" for ColorNone.
func (c Color) Hex() string {
	return colorHex[c]
}

// RGB returns the color as a colorful.Color. ColorNone and unknown values map to black.
func (c Color) RGB() colorful.Color {
	hex, ok := colorHex[c]
	if !ok {
		return colorful.Color{}
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

// Enemies is a read-only view over the live enemy collection.
type Enemies interface {
	ForEach(fn func(e *Enemy))
	Len() int
}
