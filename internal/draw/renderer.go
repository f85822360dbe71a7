package draw

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/sprite"
)

// largeText is the point size from which text is drawn bold.
const largeText = 40

type queuedText struct {
	text  string
	x, y  float64
	style object.TextStyle
}

// TerminalRenderer draws the logical play field into a terminal. Sprites and rects go
// to a scaled Canvas, text is overlaid with lipgloss styles after the canvas is rendered.
type TerminalRenderer struct {
	canvas     *Canvas
	out        *ChunkWriter
	styles     *lipgloss.Renderer
	termSize   TermSizeFunc
	background color.RGBA
	texts      []queuedText

	maxWidth  int
	maxHeight int
}

// TerminalOptions configures a TerminalRenderer.
type TerminalOptions struct {
	TermSizeFunc TermSizeFunc
	Profile      termenv.Profile
	Background   color.RGBA
	MaxWidth     int // Render area cap in cells
	MaxHeight    int
}

// NewTerminalRenderer creates a renderer for a logicalWidth x logicalHeight field writing to w.
func NewTerminalRenderer(w io.Writer, logicalWidth, logicalHeight float64, opts TerminalOptions) *TerminalRenderer {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = DefaultTermSizeFunc
	}

	styles := lipgloss.NewRenderer(w)
	styles.SetColorProfile(opts.Profile)

	r := &TerminalRenderer{
		out:        NewChunkWriter(w, 0, 0),
		styles:     styles,
		termSize:   opts.TermSizeFunc,
		background: opts.Background,
		maxWidth:   opts.MaxWidth,
		maxHeight:  opts.MaxHeight,
	}

	termWidth, termHeight, _ := r.termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := r.fit(termWidth, termHeight)
	r.canvas = NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	r.canvas.SetProfile(opts.Profile)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.canvas.Clear(r.background)
	r.out.SetOffset(offsetCol, offsetRow)
	return r
}

func (r *TerminalRenderer) fit(termWidth, termHeight int) (int, int, int, int) {
	maxWidth, maxHeight := r.maxWidth, r.maxHeight
	if maxWidth <= 0 {
		maxWidth = termWidth
	}
	if maxHeight <= 0 {
		maxHeight = termHeight
	}
	return FitSquare(termWidth, termHeight, maxWidth, maxHeight)
}

// UpdateSize re-reads the terminal size. On an actual change the terminal is cleared so
// residual pixels outside the new render area disappear.
func (r *TerminalRenderer) UpdateSize() error {
	termWidth, termHeight, err := r.termSize()
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := r.fit(termWidth, termHeight)

	if renderWidth != r.canvas.TerminalWidth() || renderHeight != r.canvas.TerminalHeight() ||
		offsetCol != r.canvas.OffsetCol() || offsetRow != r.canvas.OffsetRow() {
		ClearScreen(r.out)
		r.canvas.ForceRedraw()
	}

	r.canvas.Resize(renderWidth, renderHeight)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.out.SetOffset(offsetCol, offsetRow)
	return nil
}

// Reset clears the terminal and forces a full repaint, e.g. when switching screens.
func (r *TerminalRenderer) Reset() {
	ClearScreen(r.out)
	r.canvas.ForceRedraw()
}

// DrawSprite draws s with its top-left corner at logical (x, y).
func (r *TerminalRenderer) DrawSprite(s *sprite.Sprite, x, y float64) {
	r.canvas.DrawImage(s.Image, x, y)
}

// DrawRect fills a logical rectangle.
func (r *TerminalRenderer) DrawRect(c color.RGBA, x, y, w, h float64) {
	r.canvas.FillRect(c, x, y, w, h)
}

// DrawText queues text to be overlaid when the frame is presented.
func (r *TerminalRenderer) DrawText(text string, x, y float64, style object.TextStyle) {
	r.texts = append(r.texts, queuedText{text: text, x: x, y: y, style: style})
}

// Present writes the frame to the terminal and starts a fresh one.
func (r *TerminalRenderer) Present() error {
	r.canvas.Render(r.out)
	r.canvas.RenderBorder(r.out)

	for _, t := range r.texts {
		r.overlay(t)
	}
	r.texts = r.texts[:0]

	r.canvas.Clear(r.background)
	return r.out.Flush()
}

func (r *TerminalRenderer) overlay(t queuedText) {
	width := lipgloss.Width(t.text)
	col, row := r.canvas.LogicalToTerminal(t.x, t.y)
	switch t.style.Align {
	case object.AlignCenter:
		col -= width / 2
	case object.AlignRight:
		col -= width
	}
	col = max(min(col, r.canvas.TerminalWidth()-width+1), 1)
	if row < 1 || row > r.canvas.TerminalHeight() {
		return
	}

	style := r.styles.NewStyle().
		Foreground(lipgloss.Color(hexColor(t.style.Color))).
		Background(lipgloss.Color(hexColor(r.background))).
		Bold(t.style.Size >= largeText)

	r.out.WriteAt(col, row, style.Render(t.text))
	r.canvas.MarkTextDirty(col, row, width)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var _ object.Renderer = (*TerminalRenderer)(nil)
