package sprite

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"sort"
	"unicode/utf8"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed sprites.yaml
var defaultManifest []byte

// Manifest is the YAML description of a sprite sheet.
type Manifest struct {
	Background string                `yaml:"background"`
	Sprites    map[string]Definition `yaml:"sprites"`
}

// Definition describes one sprite as palette-indexed ASCII art scaled to Width x Height.
type Definition struct {
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Palette map[string]string `yaml:"palette"`
	Art     []string          `yaml:"art"`
}

// Load builds the sheet from the embedded manifest.
func Load() (*Sheet, error) {
	return Parse(defaultManifest)
}

// Parse decodes, validates, and rasterizes a YAML manifest.
func Parse(data []byte) (*Sheet, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse sprite manifest: %w", err)
	}
	if err := validateManifest(&m); err != nil {
		return nil, fmt.Errorf("invalid sprite manifest: %w", err)
	}

	bg := color.RGBA{A: 255}
	if m.Background != "" {
		c, err := namedColor(m.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		bg = c
	}

	keys := make([]string, 0, len(m.Sprites))
	for k := range m.Sprites {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sprites := make([]*Sprite, 0, len(keys))
	for _, key := range keys {
		img, err := rasterize(m.Sprites[key])
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", key, err)
		}
		sprites = append(sprites, New(key, img))
	}
	return NewSheet(bg, sprites...), nil
}

// validateManifest checks the structure of every definition before rasterizing.
func validateManifest(m *Manifest) error {
	if len(m.Sprites) == 0 {
		return fmt.Errorf("at least one sprite is required")
	}

	for key, def := range m.Sprites {
		if def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("sprite %s: size must be positive, got %dx%d", key, def.Width, def.Height)
		}
		if len(def.Art) == 0 {
			return fmt.Errorf("sprite %s: art is empty", key)
		}
		cols := utf8.RuneCountInString(def.Art[0])
		if cols == 0 {
			return fmt.Errorf("sprite %s: art rows are empty", key)
		}
		for i, row := range def.Art {
			if n := utf8.RuneCountInString(row); n != cols {
				return fmt.Errorf("sprite %s: art row %d has %d columns, want %d", key, i, n, cols)
			}
		}
		for sym := range def.Palette {
			if utf8.RuneCountInString(sym) != 1 {
				return fmt.Errorf("sprite %s: palette key %q must be a single rune", key, sym)
			}
		}
	}
	return nil
}

// rasterize scales the ASCII art of def to its target size.
func rasterize(def Definition) (*image.RGBA, error) {
	palette := make(map[rune]color.RGBA, len(def.Palette))
	for sym, name := range def.Palette {
		c, err := namedColor(name)
		if err != nil {
			return nil, err
		}
		r, _ := utf8.DecodeRuneInString(sym)
		palette[r] = c
	}

	grid := make([][]rune, len(def.Art))
	for i, row := range def.Art {
		grid[i] = []rune(row)
	}
	artH := len(grid)
	artW := len(grid[0])

	img := image.NewRGBA(image.Rect(0, 0, def.Width, def.Height))
	for y := 0; y < def.Height; y++ {
		row := grid[y*artH/def.Height]
		for x := 0; x < def.Width; x++ {
			sym := row[x*artW/def.Width]
			if sym == '.' || sym == ' ' {
				continue
			}
			c, ok := palette[sym]
			if !ok {
				return nil, fmt.Errorf("art symbol %q is not in the palette", sym)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// namedColor resolves an SVG color name.
func namedColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
