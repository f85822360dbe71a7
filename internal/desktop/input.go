package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/invaders/internal/object"
)

// Keyboard reports the window's key and mouse state for the current tick.
type Keyboard interface {
	IsKeyPressed(k ebiten.Key) bool
	JustPressedKeys() []ebiten.Key
	IsMouseJustPressed() bool
}

// ebitenKeyboard reads the live ebiten input state.
type ebitenKeyboard struct {
	keys []ebiten.Key
}

func (*ebitenKeyboard) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (kb *ebitenKeyboard) JustPressedKeys() []ebiten.Key {
	kb.keys = inpututil.AppendJustPressedKeys(kb.keys[:0])
	return kb.keys
}

func (*ebitenKeyboard) IsMouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}
)

// ReadInput builds the frame's input snapshot. Movement and fire follow held keys,
// Click and Quit fire once per press.
func ReadInput(kb Keyboard) object.Input {
	in := object.Input{
		Left:  anyPressed(kb, leftKeys),
		Right: anyPressed(kb, rightKeys),
		Up:    anyPressed(kb, upKeys),
		Down:  anyPressed(kb, downKeys),
		Fire:  kb.IsKeyPressed(ebiten.KeySpace),
		Click: kb.IsMouseJustPressed(),
	}

	for _, k := range kb.JustPressedKeys() {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			in.Quit = true
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			in.Click = true
		}
		in.Pressed = append(in.Pressed, keyByte(k))
	}
	return in
}

func anyPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// keyByte maps a key to the byte a terminal would send for it, or 0 if there is none.
func keyByte(k ebiten.Key) byte {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return byte('a' + (k - ebiten.KeyA))
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return byte('0' + (k - ebiten.KeyDigit0))
	case k == ebiten.KeySpace:
		return ' '
	case k == ebiten.KeyEnter:
		return '\r'
	case k == ebiten.KeyEscape:
		return 0x1b
	}
	return 0
}
