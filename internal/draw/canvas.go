package draw

import (
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Logical coordinates are scaled to terminal pixels. Rendering only repaints cells whose
// colors changed since the previous frame, plus cells marked dirty by text overlays.
type Canvas struct {
	termWidth      int          // Render area columns
	termHeight     int          // Render area rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]
	prev           []color.RGBA // Pixels as of the last Render
	dirty          []bool       // Per cell: repaint on next Render regardless of diff
	forceRedraw    bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets (columns/rows to skip) for centering the render area.
	offsetCol int
	offsetRow int

	profile   termenv.Profile
	sequences map[color.RGBA]colorSequence
	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       termenv.TrueColor,
		sequences:     make(map[color.RGBA]colorSequence),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new render dimensions while keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
		c.prev = make([]color.RGBA, c.subPixelHeight*termWidth)
		c.dirty = make([]bool, termHeight*termWidth)
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetProfile selects how colors are encoded (true color, 256 or 16 colors).
func (c *Canvas) SetProfile(p termenv.Profile) {
	if p != c.profile {
		c.profile = p
		clear(c.sequences)
		c.forceRedraw = true
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// MarkTextDirty marks n cells starting at the 1-based canvas position (col, row) as
// overwritten by text, so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < col-1+n && x < c.termWidth; x++ {
		c.dirty[r*c.termWidth+x] = true
	}
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// At returns the pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// pixelSpan converts a logical interval to a half-open pixel interval. Anything with a
// positive logical extent covers at least one pixel.
func pixelSpan(pos, size, scale float64) (int, int) {
	p0 := int(math.Round(pos * scale))
	p1 := int(math.Round((pos + size) * scale))
	if size > 0 && p1 <= p0 {
		p1 = p0 + 1
	}
	return p0, p1
}

// FillRect fills a logical rectangle with col.
func (c *Canvas) FillRect(col color.RGBA, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := pixelSpan(x, w, c.scaleX)
	y0, y1 := pixelSpan(y, h, c.scaleY)
	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// DrawImage draws img with its top-left corner at logical (x, y), scaled to the canvas.
// Each target pixel takes the first opaque source pixel it covers, so thin details
// survive downscaling. Transparent source pixels leave the canvas untouched.
func (c *Canvas) DrawImage(img *image.RGBA, x, y float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	x0, x1 := pixelSpan(x, w, c.scaleX)
	y0, y1 := pixelSpan(y, h, c.scaleY)
	tx0, tx1 := max(x0, 0), min(x1, c.termWidth)
	ty0, ty1 := max(y0, 0), min(y1, c.subPixelHeight)
	if tx0 >= tx1 || ty0 >= ty1 {
		return
	}

	for py := ty0; py < ty1; py++ {
		sy0, sy1 := sourceSpan(py, y0, y1, b.Dy())
		for px := tx0; px < tx1; px++ {
			sx0, sx1 := sourceSpan(px, x0, x1, b.Dx())
			if col, ok := firstOpaque(img, b.Min.X+sx0, b.Min.X+sx1, b.Min.Y+sy0, b.Min.Y+sy1); ok {
				c.pixels[py*c.termWidth+px] = col
			}
		}
	}
}

// sourceSpan maps target pixel p of the target interval [t0, t1) back onto n source pixels.
func sourceSpan(p, t0, t1, n int) (int, int) {
	span := float64(t1 - t0)
	s0 := int(math.Floor(float64(p-t0) * float64(n) / span))
	s1 := int(math.Ceil(float64(p-t0+1) * float64(n) / span))
	s0 = min(max(s0, 0), n-1)
	s1 = min(max(s1, s0+1), n)
	return s0, s1
}

func firstOpaque(img *image.RGBA, x0, x1, y0, y1 int) (color.RGBA, bool) {
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			col := img.RGBAAt(sx, sy)
			if col.A != 0 {
				return color.RGBA{col.R, col.G, col.B, 255}, true
			}
		}
	}
	return color.RGBA{}, false
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs changed cells to the writer using upper half-block characters, the
// foreground carrying the top pixel and the background the bottom pixel.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	var lastFg, lastBg color.RGBA
	haveColors := false
	nextCol, nextRow := -1, -1 // Cursor position after the last written cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			cell := row*c.termWidth + col

			if !c.forceRedraw && !c.dirty[cell] &&
				top == c.prev[topOffset+col] && bottom == c.prev[bottomOffset+col] {
				continue
			}
			c.dirty[cell] = false

			if col != nextCol || row != nextRow {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !haveColors || top != lastFg || bottom != lastBg {
				c.renderBuf.WriteString("\033[")
				c.renderBuf.WriteString(c.sequence(top, false))
				c.renderBuf.WriteByte(';')
				c.renderBuf.WriteString(c.sequence(bottom, true))
				c.renderBuf.WriteByte('m')
				lastFg, lastBg, haveColors = top, bottom, true
			}
			c.renderBuf.WriteRune(BlockUpperHalf)
			nextCol, nextRow = col+1, row
		}
	}
	if haveColors {
		c.renderBuf.WriteString("\033[0m")
	}

	copy(c.prev, c.pixels)
	c.forceRedraw = false

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sequence returns the SGR parameters selecting col as foreground or background.
func (c *Canvas) sequence(col color.RGBA, bg bool) string {
	seq, ok := c.sequences[col]
	if !ok {
		tc := c.profile.FromColor(col)
		seq = colorSequence{fg: tc.Sequence(false), bg: tc.Sequence(true)}
		if seq.fg == "" {
			seq = colorSequence{fg: "39", bg: "49"}
		}
		c.sequences[col] = seq
	}
	if bg {
		return seq.bg
	}
	return seq.fg
}

type colorSequence struct {
	fg, bg string
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the render area on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + line + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + line + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + line)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// TerminalWidth returns the render area column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BlockUpperHalf is the half-block character used to draw two pixels per cell.
const BlockUpperHalf = '▀'
