package flora

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is one named colour scheme: four petal tones and the stamen tone.
type Palette struct {
	Name            string
	PetalBack       color.RGBA
	PetalMain       color.RGBA
	PetalInner      color.RGBA
	PetalExtraInner color.RGBA
	Stamen          color.RGBA
}

// Petal returns the fill of ring.
func (p Palette) Petal(ring Ring) color.RGBA {
	switch ring {
	case RingBack:
		return p.PetalBack
	case RingMain:
		return p.PetalMain
	case RingInner:
		return p.PetalInner
	default:
		return p.PetalExtraInner
	}
}

// ParseColor parses a "#rrggbb" (or "#rgb") hex colour into an opaque RGBA.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// NewPalette builds a palette from hex strings in the order
// back, main, inner, extra-inner, stamen.
func NewPalette(name, back, main, inner, extraInner, stamen string) (Palette, error) {
	p := Palette{Name: name}
	fields := []struct {
		hex string
		dst *color.RGBA
	}{
		{back, &p.PetalBack},
		{main, &p.PetalMain},
		{inner, &p.PetalInner},
		{extraInner, &p.PetalExtraInner},
		{stamen, &p.Stamen},
	}
	for _, f := range fields {
		c, err := ParseColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", name, err)
		}
		*f.dst = c
	}
	return p, nil
}

func mustPalette(name, back, main, inner, extraInner, stamen string) Palette {
	p, err := NewPalette(name, back, main, inner, extraInner, stamen)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPalettes returns the built-in red, blue and pink/white schemes.
func DefaultPalettes() []Palette {
	return []Palette{
		mustPalette("red", "#aa0000", "#cc0000", "#990000", "#ff0000", "#ff3333"),
		mustPalette("blue", "#0000aa", "#0000cc", "#000099", "#3333ff", "#6666ff"),
		mustPalette("pink", "#fbeaf1", "#f8d4e5", "#f4b9d2", "#ffc0cb", "#f4b9d2"),
	}
}

// PaletteCycle is the ring of palettes with exactly one active entry.
type PaletteCycle struct {
	palettes []Palette
	index    int
}

// NewPaletteCycle creates a cycle starting at index start (wrapped into range).
// palettes must not be empty.
func NewPaletteCycle(palettes []Palette, start int) *PaletteCycle {
	if len(palettes) == 0 {
		panic("flora: empty palette cycle")
	}
	c := &PaletteCycle{palettes: palettes}
	c.index = ((start % len(palettes)) + len(palettes)) % len(palettes)
	return c
}

// Current returns the active palette.
func (c *PaletteCycle) Current() Palette { return c.palettes[c.index] }

// Index returns the active palette index.
func (c *PaletteCycle) Index() int { return c.index }

// Len returns the number of palettes.
func (c *PaletteCycle) Len() int { return len(c.palettes) }

// Next advances to the following palette and returns it.
func (c *PaletteCycle) Next() Palette {
	c.index = (c.index + 1) % len(c.palettes)
	return c.Current()
}
