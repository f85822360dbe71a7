// Package physics provides pixel-mask collision detection and a broad-phase grid.
package physics

import "image"

// Mask is a binary coverage grid: a set bit marks an opaque sprite pixel.
// Masks are built once per sprite and never mutated afterwards.
type Mask struct {
	width  int
	height int
	bits   []bool // Flat slice: [y * width + x]
}

// NewMask creates an empty mask of the given size.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// MaskFromImage derives a mask from the non-transparent pixels of img.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a != 0 {
				m.bits[y*m.width+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// Set marks the pixel at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		m.bits[y*m.width+x] = true
	}
}

// At reports whether the pixel at (x, y) is set. Out-of-range is unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether m and other share a set pixel when other's origin is placed
// at (dx, dy) relative to m's origin.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	// Intersection of both rectangles, in m's coordinates
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, dx+other.width)
	y1 := min(m.height, dy+other.height)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		row := m.bits[y*m.width : (y+1)*m.width]
		otherRow := other.bits[(y-dy)*other.width : (y-dy+1)*other.width]
		for x := x0; x < x1; x++ {
			if row[x] && otherRow[x-dx] {
				return true
			}
		}
	}
	return false
}
