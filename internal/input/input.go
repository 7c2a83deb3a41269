// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Space  bool
	Enter  bool
	Escape bool
	Closed bool // The underlying reader hit EOF or an error
}

// Start reports whether the frame asks to start or restart a run.
func (in Input) Start() bool {
	return in.Space || in.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	space  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried to the next read
	closed  bool
	now     func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Escape sequences (arrow keys, function keys) are skipped so only a bare
// ESC counts as Escape.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := s.pending
	carried := len(buf)
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	// An incomplete sequence is held back while bytes keep arriving. Once a read
	// brings nothing new it is taken as typed, so a lone ESC still counts.
	waiting := !s.closed && (carried == 0 || len(buf) > carried)

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' {
			n, complete := sequenceLen(buf[i:])
			if !complete && waiting {
				s.pending = append(s.pending, buf[i:]...)
				break
			}
			if n > 1 {
				i += n - 1
				continue
			}
		}
		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:   s.closed || now.Sub(s.state.quit) < keyHoldDuration,
		Space:  now.Sub(s.state.space) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
		Closed: s.closed,
	}
}

// sequenceLen returns the length of the escape sequence at the start of buf,
// which begins with ESC. A bare ESC has length 1. CSI (ESC '[') and SS3
// (ESC 'O') sequences are measured to their final byte; complete is false when
// buf ends before it.
func sequenceLen(buf []byte) (n int, complete bool) {
	if len(buf) < 2 {
		return 1, false
	}
	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return len(buf), false
		}
		return 3, true
	case '[':
	default:
		return 1, true
	}
	// CSI: parameter and intermediate bytes in 0x20-0x3f, final byte in 0x40-0x7e.
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1, true
		}
		if buf[i] < 0x20 || buf[i] > 0x3f {
			// Malformed, drop the introducer only.
			return 2, true
		}
	}
	return len(buf), false
}

// ResetKeyInput forgets recent presses so a held key does not retrigger.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		state.quit = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
