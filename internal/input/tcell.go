package input

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// TcellReader translates key events from screen into the byte stream a raw
// terminal would produce, so Stream can consume tcell input unchanged.
// The reader reports EOF once the screen is finalized.
func TcellReader(screen tcell.Screen) *bufio.Reader {
	pr, pw := io.Pipe()
	go func() {
		defer pw.Close()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			b, ok := keyByte(ev)
			if !ok {
				continue
			}
			if _, err := pw.Write([]byte{b}); err != nil {
				return
			}
		}
	}()
	return bufio.NewReader(pr)
}

// keyByte maps a tcell event to the equivalent raw byte.
func keyByte(ev tcell.Event) (byte, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}
	switch key.Key() {
	case tcell.KeyEnter:
		return '\r', true
	case tcell.KeyEscape:
		return '\x1b', true
	case tcell.KeyCtrlC:
		return 0x03, true
	case tcell.KeyRune:
		r := key.Rune()
		if r < 0x80 {
			return byte(r), true
		}
	}
	return 0, false
}
