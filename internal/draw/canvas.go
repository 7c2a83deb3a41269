package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Ink is a palette slot. InkNone marks an empty pixel.
type Ink uint8

// InkNone is the empty pixel.
const InkNone Ink = 0

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int   // Actual terminal columns
	termHeight     int   // Actual terminal rows
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	palette [256]colorful.Color

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// DefineInk assigns a color to a palette slot.
func (c *Canvas) DefineInk(ink Ink, col colorful.Color) {
	c.palette[ink] = col
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Ink, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// Pixel returns the ink at pixel coordinates, InkNone when out of range.
func (c *Canvas) Pixel(x, y int) Ink {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return InkNone
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	c.setPixel(px, py, ink)
}

// FillCircle fills a circle given in logical coordinates. A pixel is set when
// its center lies inside the circle; circles smaller than a pixel still set
// the pixel under their center.
func (c *Canvas) FillCircle(cx, cy, r float64, ink Ink) {
	if c.scaleX <= 0 || c.scaleY <= 0 {
		return
	}

	xStart := int(math.Floor((cx - r) * c.scaleX))
	xEnd := int(math.Ceil((cx + r) * c.scaleX))
	yStart := int(math.Floor((cy - r) * c.scaleY))
	yEnd := int(math.Ceil((cy + r) * c.scaleY))

	r2 := r * r
	filled := false
	for py := yStart; py <= yEnd; py++ {
		dy := (float64(py)+0.5)/c.scaleY - cy
		for px := xStart; px <= xEnd; px++ {
			dx := (float64(px)+0.5)/c.scaleX - cx
			if dx*dx+dy*dy <= r2 {
				c.setPixel(px, py, ink)
				filled = true
			}
		}
	}

	if !filled {
		c.SetFloat(cx, cy, ink)
	}
}

// Cells calls fn for every terminal cell holding at least one set pixel,
// row by row. Columns and rows are 0-based.
func (c *Canvas) Cells(fn func(col, row int, top, bottom Ink)) {
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top == InkNone && bottom == InkNone {
				continue
			}
			fn(col, row, top, bottom)
		}
	}
}

// Glyph picks the half-block rune and the foreground/background inks for a cell.
// A background of InkNone means the terminal default.
func Glyph(top, bottom Ink) (ch rune, fg, bg Ink) {
	switch {
	case top != InkNone && top == bottom:
		return BlockFull, top, InkNone
	case top != InkNone && bottom == InkNone:
		return BlockUpperHalf, top, InkNone
	case top == InkNone && bottom != InkNone:
		return BlockLowerHalf, bottom, InkNone
	case top != InkNone:
		return BlockUpperHalf, top, bottom
	default:
		return BlockEmpty, InkNone, InkNone
	}
}

// Color returns the color assigned to ink.
func (c *Canvas) Color(ink Ink) colorful.Color {
	return c.palette[ink]
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes keeps each write under a typical 1500 byte MTU for SSH sessions.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using truecolor half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	c.Cells(func(col, row int, top, bottom Ink) {
		ch, fg, bg := Glyph(top, bottom)
		c.writeCursor(col+1, row+1)
		c.writeColor(38, c.palette[fg])
		if bg != InkNone {
			c.writeColor(48, c.palette[bg])
		}
		c.renderBuf.WriteRune(ch)
		c.renderBuf.WriteString(resetStyle)
	})

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func (c *Canvas) writeCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends an SGR truecolor sequence; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, col colorful.Color) {
	r, g, b := col.RGB255()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(b), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
