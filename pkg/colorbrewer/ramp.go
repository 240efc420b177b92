package colorbrewer

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// An opaque 24 bit color. Implements image/color.Color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Ramp is an ordered sequence of colors from one palette.
type Ramp []Color

// Where Find() found a color
type Match struct {
	Palette Palette
	Count   int

	// Zero based index into the ramp
	Index int
}

// ColorRamp returns the count colors defined for this palette.
//
// If the palette has no ramp of exactly that length, ok will be false. Ramps
// are never interpolated, extended or truncated to make a count fit.
//
// The returned ramp is yours, changing it won't affect any other ramps.
func ColorRamp(palette Palette, count int) (ramp Ramp, ok bool) {
	stored, found := ramps[palette][count]
	if !found {
		return nil, false
	}

	return slices.Clone(stored), true
}

// Counts lists the ramp lengths available for this palette, lowest first.
func (palette Palette) Counts() []int {
	counts := maps.Keys(ramps[palette])
	slices.Sort(counts)
	return counts
}

// The shortest ramp available for this palette, or 0 for invalid palettes
func (palette Palette) MinCount() int {
	counts := palette.Counts()
	if len(counts) == 0 {
		return 0
	}
	return counts[0]
}

// The longest ramp available for this palette, or 0 for invalid palettes
func (palette Palette) MaxCount() int {
	counts := palette.Counts()
	if len(counts) == 0 {
		return 0
	}
	return counts[len(counts)-1]
}

// Find lists all ramps containing exactly this color.
//
// Matches come in palette order, then by ramp length, then by index.
func Find(color Color) []Match {
	var matches []Match
	for _, palette := range Palettes() {
		for _, count := range palette.Counts() {
			for index, candidate := range ramps[palette][count] {
				if candidate != color {
					continue
				}

				matches = append(matches, Match{
					Palette: palette,
					Count:   count,
					Index:   index,
				})
			}
		}
	}

	return matches
}

// Parse a "#rrggbb" string into a color. Short "#rgb" forms are not accepted.
func ParseHexColor(hex string) (Color, error) {
	if len(hex) != len("#rrggbb") {
		return Color{}, fmt.Errorf("parsing color %q: expected #rrggbb", hex)
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}

	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Colorful converts this color into a go-colorful color, for doing color math.
func (color Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(color.R) / 255.0,
		G: float64(color.G) / 255.0,
		B: float64(color.B) / 255.0,
	}
}

// Lower case "#rrggbb"
func (color Color) Hex() string {
	return color.Colorful().Hex()
}

func (color Color) String() string {
	return color.Hex()
}

func (color Color) RGBA() (r, g, b, a uint32) {
	r = uint32(color.R)
	r |= r << 8
	g = uint32(color.G)
	g |= g << 8
	b = uint32(color.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (ramp Ramp) Hex() []string {
	hexes := make([]string, len(ramp))
	for i, color := range ramp {
		hexes[i] = color.Hex()
	}
	return hexes
}
