package draw

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/tomz197/invaders/internal/object"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func TestFillRectScales(t *testing.T) {
	// 10x5 cells = 10x10 pixels for a 100x100 logical field
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.FillRect(red, 20, 30, 20, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := black
			if x >= 2 && x < 4 && y == 3 {
				want = red
			}
			if got := c.At(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectThinStaysVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.FillRect(green, 51, 51, 2, 2)
	if c.At(5, 5) != green {
		t.Error("thin rect vanished after scaling")
	}
}

func TestFillRectClips(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.FillRect(red, -50, -50, 1000, 60)
	if c.At(9, 0) != red || c.At(0, 0) != red {
		t.Error("clipped rect did not cover the visible part")
	}
	if c.At(0, 1) != black {
		t.Error("rect drew past its bottom edge")
	}
}

func TestDrawImageKeepsThinDetail(t *testing.T) {
	// A one pixel wide vertical line in a 20x20 image drawn at 1/10 scale.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		img.SetRGBA(7, y, red)
	}

	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.DrawImage(img, 0, 0)

	if c.At(0, 0) != red || c.At(0, 1) != red {
		t.Errorf("line lost: (0,0)=%v (0,1)=%v", c.At(0, 0), c.At(0, 1))
	}
	if c.At(1, 0) != black {
		t.Error("transparent pixels overwrote the background")
	}
}

func TestDrawImageOffScreen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, red)
		}
	}

	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.DrawImage(img, 10, -1500)
	c.DrawImage(img, 85, 85)

	if c.At(9, 9) != red {
		t.Error("partially visible image not drawn")
	}
	if c.At(1, 0) != black {
		t.Error("image above the field was drawn")
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Clear(black)

	var buf bytes.Buffer
	c.Render(&buf)
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 8 {
		t.Fatalf("first render drew %d cells, want 8", got)
	}

	buf.Reset()
	c.Clear(black)
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", buf.String())
	}

	c.Clear(black)
	c.FillRect(red, 1, 3, 1, 1)
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 1 {
		t.Errorf("one changed pixel repainted %d cells, want 1", got)
	}
	if !strings.Contains(buf.String(), "\033[2;2H") {
		t.Errorf("render did not move to the changed cell: %q", buf.String())
	}
}

func TestRenderRepaintsDirtyText(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Clear(black)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(2, 1, 2)
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), string(BlockUpperHalf)); got != 2 {
		t.Errorf("dirty cells repainted = %d, want 2", got)
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Error("dirty flag survived a render")
	}
}

func TestRenderUsesProfile(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 1)
	c.Clear(red)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.Contains(buf.String(), "38;2;255;0;0") {
		t.Errorf("true color render = %q", buf.String())
	}

	c.SetProfile(termenv.ANSI256)
	buf.Reset()
	c.Render(&buf)
	if !strings.Contains(buf.String(), "38;5;") || !strings.Contains(buf.String(), "48;5;") {
		t.Errorf("256 color render = %q", buf.String())
	}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		maxW, maxH             int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"wide terminal", 200, 50, 160, 80, 100, 50, 50, 0},
		{"tall terminal", 80, 60, 160, 80, 80, 40, 0, 10},
		{"capped", 400, 200, 160, 80, 160, 80, 120, 60},
		{"exact", 100, 50, 160, 80, 100, 50, 0, 0},
		{"odd width", 101, 60, 160, 80, 101, 50, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, oc, or := FitSquare(tt.termW, tt.termH, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH || oc != tt.wantOffCol || or != tt.wantOffRow {
				t.Errorf("FitSquare() = %d, %d, %d, %d, want %d, %d, %d, %d",
					w, h, oc, or, tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

func TestTerminalRendererText(t *testing.T) {
	var out bytes.Buffer
	size := func() (int, int, error) { return 40, 20, nil }
	r := NewTerminalRenderer(&out, 750, 750, TerminalOptions{
		TermSizeFunc: size,
		Profile:      termenv.Ascii,
		Background:   black,
	})

	r.DrawRect(black, 0, 0, 750, 750)
	r.DrawText("Lives: 5", 10, 10, object.TextStyle{Color: red})
	r.DrawText("Level: 1", 740, 10, object.TextStyle{Align: object.AlignRight, Color: red})
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	s := out.String()
	if !strings.Contains(s, "\033[1;2HLives: 5") {
		t.Errorf("left text missing or misplaced: %q", s)
	}
	if !strings.Contains(s, "\033[1;32HLevel: 1") {
		t.Errorf("right text missing or misplaced: %q", s)
	}
}
