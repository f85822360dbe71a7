package desktop

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/sprite"
)

// faceHeight is the pixel height of basicfont.Face7x13, text is scaled from it.
const faceHeight = 13

// Renderer draws the logical field onto an ebiten image.
type Renderer struct {
	target *ebiten.Image
	images map[*sprite.Sprite]*ebiten.Image
	face   *text.GoXFace
}

// NewRenderer creates a renderer with an empty sprite cache.
func NewRenderer() *Renderer {
	return &Renderer{
		images: make(map[*sprite.Sprite]*ebiten.Image),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget selects the image the next frame is drawn to.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) image(s *sprite.Sprite) *ebiten.Image {
	img, ok := r.images[s]
	if !ok {
		img = ebiten.NewImageFromImage(s.Image)
		r.images[s] = img
	}
	return img
}

// DrawSprite draws s with its top-left corner at logical (x, y).
func (r *Renderer) DrawSprite(s *sprite.Sprite, x, y float64) {
	if r.target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Floor(x), math.Floor(y))
	r.target.DrawImage(r.image(s), op)
}

// DrawRect fills a logical rectangle.
func (r *Renderer) DrawRect(c color.RGBA, x, y, w, h float64) {
	if r.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText draws text with its top edge at y, scaled to the style's size.
func (r *Renderer) DrawText(s string, x, y float64, style object.TextStyle) {
	if r.target == nil {
		return
	}
	scale := float64(style.Size) / faceHeight
	if scale <= 0 {
		scale = 1
	}

	width, _ := text.Measure(s, r.face, 0)
	width *= scale
	switch style.Align {
	case object.AlignCenter:
		x -= width / 2
	case object.AlignRight:
		x -= width
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(math.Floor(x), math.Floor(y))
	op.ColorScale.ScaleWithColor(style.Color)
	text.Draw(r.target, s, r.face, op)
}

// Present is a no-op, ebiten shows the frame once Draw returns.
func (r *Renderer) Present() error {
	return nil
}

var _ object.Renderer = (*Renderer)(nil)
