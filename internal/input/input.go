// Package input turns a raw terminal byte stream into per-frame input snapshots.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It must exceed the terminal auto-repeat interval (about 33ms at 30 Hz).
const keyHoldDuration = 60 * time.Millisecond

// Input is the snapshot of controls for one frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	Quit  bool
	Click bool // Mouse button press or Enter, true only on the frame it arrived

	Pressed []byte // Raw bytes received this frame
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
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

// ReadInput drains all available bytes from the stream (non-blocking) and builds the
// snapshot for this frame. A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := parse(&s.state, buf, time.Now())
	if closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets held keys, so a key pressed on a menu does not leak into the game.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// parse updates the key state from buf and builds the snapshot at time now.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Escape sequences: arrow keys and mouse reports
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			case 'M':
				// X10 mouse report: ESC [ M <button+32> <x+32> <y+32>
				if i+5 < len(buf) {
					if (buf[i+3]-32)&0x03 == 0 {
						in.Click = true
					}
					i += 5
					continue
				}
			case '<':
				// SGR mouse report: ESC [ < button ; x ; y (M|m)
				if n, press, left := parseSGRMouse(buf[i+3:]); n > 0 {
					if press && left {
						in.Click = true
					}
					i += 2 + n
					continue
				}
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case '\n', '\r':
			in.Click = true
		default:
			applyByteToState(state, b, now)
		}
	}

	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	in.Up = now.Sub(state.up) < keyHoldDuration
	in.Down = now.Sub(state.down) < keyHoldDuration
	in.Fire = now.Sub(state.fire) < keyHoldDuration
	return in
}

// parseSGRMouse parses "button;x;y" followed by 'M' (press) or 'm' (release).
// It returns the number of bytes consumed, or 0 if the sequence is incomplete.
func parseSGRMouse(buf []byte) (n int, press, left bool) {
	button := 0
	field := 0
	for i, b := range buf {
		switch {
		case b >= '0' && b <= '9':
			if field == 0 {
				button = button*10 + int(b-'0')
			}
		case b == ';':
			field++
		case b == 'M' || b == 'm':
			if field != 2 {
				return 0, false, false
			}
			return i + 1, b == 'M', button&0x03 == 0 && button&0x40 == 0
		default:
			return 0, false, false
		}
	}
	return 0, false, false
}

// applyByteToState updates the held-key timestamps for a single byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.fire = now
	}
}
