package logo

import "fmt"

// Color is an opaque fill token, typically a hex string such as "#1d3557".
type Color string

// DefaultColors is the fixed palette offered when no configuration overrides it.
var DefaultColors = []Color{
	"#e63946",
	"#1d3557",
	"#f1faee",
	"#a8dadc",
	"#457b9d",
	"#2a9d8f",
	"#e9c46a",
	"#f4a261",
	"#264653",
}

// Palette is an ordered, duplicate-free set of colors.
type Palette struct {
	colors []Color
	index  map[Color]int
}

// NewPalette validates and builds a palette. At least two distinct colors are
// required so that a base and an accent can always differ.
func NewPalette(colors ...Color) (*Palette, error) {
	if len(colors) < 2 {
		return nil, NewConfigurationError("palette requires at least two colors", map[string]interface{}{
			"count": len(colors),
		})
	}

	p := &Palette{
		colors: make([]Color, 0, len(colors)),
		index:  make(map[Color]int, len(colors)),
	}
	for i, c := range colors {
		if c == "" {
			return nil, NewConfigurationError("palette color is empty", map[string]interface{}{"position": i})
		}
		if prev, exists := p.index[c]; exists {
			return nil, NewConfigurationError(fmt.Sprintf("duplicate palette color %q", c), map[string]interface{}{
				"position": i,
				"first":    prev,
			})
		}
		p.index[c] = i
		p.colors = append(p.colors, c)
	}

	return p, nil
}

// DefaultPalette returns the built-in nine color palette.
func DefaultPalette() *Palette {
	p, err := NewPalette(DefaultColors...)
	if err != nil {
		panic(err)
	}
	return p
}

// Colors returns a copy of the palette in order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Len returns the number of colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the color at position i.
func (p *Palette) At(i int) Color {
	return p.colors[i]
}

// IndexOf returns the position of c and whether it belongs to the palette.
func (p *Palette) IndexOf(c Color) (int, bool) {
	i, ok := p.index[c]
	return i, ok
}

// Contains reports palette membership.
func (p *Palette) Contains(c Color) bool {
	_, ok := p.index[c]
	return ok
}

// Pick draws a color uniformly from the whole palette.
func (p *Palette) Pick(rng RandomSource) Color {
	return p.colors[rng.IntN(len(p.colors))]
}

// PickExcluding draws a color uniformly from the palette with exclude removed
// from the candidate set first.
func (p *Palette) PickExcluding(rng RandomSource, exclude Color) (Color, error) {
	candidates := make([]Color, 0, len(p.colors))
	for _, c := range p.colors {
		if c != exclude {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return "", NewConfigurationError("palette has no color other than the excluded one", map[string]interface{}{
			"exclude": string(exclude),
		})
	}
	return candidates[rng.IntN(len(candidates))], nil
}
