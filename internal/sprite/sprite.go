// Package sprite provides the game's image assets and their coverage masks.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/tomz197/invaders/internal/physics"
)

// ErrUnknownSprite is returned when a sheet has no sprite under the requested key.
var ErrUnknownSprite = errors.New("unknown sprite")

// Sprite is an immutable image together with the mask of its opaque pixels.
type Sprite struct {
	Key   string
	Image *image.RGBA
	mask  *physics.Mask
}

// New wraps img as a sprite and derives its mask.
func New(key string, img *image.RGBA) *Sprite {
	return &Sprite{
		Key:   key,
		Image: img,
		mask:  physics.MaskFromImage(img),
	}
}

// Width returns the sprite width in logical pixels.
func (s *Sprite) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the sprite height in logical pixels.
func (s *Sprite) Height() int {
	return s.Image.Bounds().Dy()
}

// Mask returns the precomputed coverage mask.
func (s *Sprite) Mask() *physics.Mask {
	return s.mask
}

// Sheet is the asset provider: it maps logical keys to sprites.
type Sheet struct {
	sprites    map[string]*Sprite
	background color.RGBA
}

// NewSheet creates a sheet from already built sprites.
func NewSheet(background color.RGBA, sprites ...*Sprite) *Sheet {
	s := &Sheet{
		sprites:    make(map[string]*Sprite, len(sprites)),
		background: background,
	}
	for _, sp := range sprites {
		s.sprites[sp.Key] = sp
	}
	return s
}

// Get returns the sprite registered under key.
func (s *Sheet) Get(key string) (*Sprite, error) {
	sp, ok := s.sprites[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, key)
	}
	return sp, nil
}

// Background returns the color the play field is cleared with.
func (s *Sheet) Background() color.RGBA {
	return s.background
}

// Keys returns all sprite keys in sorted order.
func (s *Sheet) Keys() []string {
	keys := make([]string, 0, len(s.sprites))
	for k := range s.sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MaxDimension returns the largest width or height over all sprites.
func (s *Sheet) MaxDimension() int {
	m := 0
	for _, sp := range s.sprites {
		m = max(m, sp.Width(), sp.Height())
	}
	return m
}
