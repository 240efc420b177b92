package colorbrewer

import (
	"errors"
	"fmt"
)

// Palette identifies one ColorBrewer color scheme. Use the constants below,
// or ParsePalette() to get one from its name.
type Palette uint8

const (
	YlGn Palette = iota
	YlGnBu
	GnBu
	BuGn
	PuBuGn
	PuBu
	BuPu
	RdPu
	PuRd
	OrRd
	YlOrRd
	YlOrBr
	Purples
	Blues
	Greens
	Oranges
	Reds
	Greys
	PuOr
	BrBG
	PRGn
	PiYG
	RdBu
	RdGy
	RdYlBu
	Spectral
	RdYlGn
	Accent
	Dark2
	Paired
	Pastel1
	Pastel2
	Set1
	Set2
	Set3

	paletteCount = iota
)

// Returned by ParsePalette() for names that aren't exactly one of the palette
// names.
var ErrInvalidName = errors.New("not a valid value")

var paletteNames = [paletteCount]string{
	YlGn:     "YlGn",
	YlGnBu:   "YlGnBu",
	GnBu:     "GnBu",
	BuGn:     "BuGn",
	PuBuGn:   "PuBuGn",
	PuBu:     "PuBu",
	BuPu:     "BuPu",
	RdPu:     "RdPu",
	PuRd:     "PuRd",
	OrRd:     "OrRd",
	YlOrRd:   "YlOrRd",
	YlOrBr:   "YlOrBr",
	Purples:  "Purples",
	Blues:    "Blues",
	Greens:   "Greens",
	Oranges:  "Oranges",
	Reds:     "Reds",
	Greys:    "Greys",
	PuOr:     "PuOr",
	BrBG:     "BrBG",
	PRGn:     "PRGn",
	PiYG:     "PiYG",
	RdBu:     "RdBu",
	RdGy:     "RdGy",
	RdYlBu:   "RdYlBu",
	Spectral: "Spectral",
	RdYlGn:   "RdYlGn",
	Accent:   "Accent",
	Dark2:    "Dark2",
	Paired:   "Paired",
	Pastel1:  "Pastel1",
	Pastel2:  "Pastel2",
	Set1:     "Set1",
	Set2:     "Set2",
	Set3:     "Set3",
}

var palettesByName = func() map[string]Palette {
	byName := make(map[string]Palette, paletteCount)
	for i, name := range paletteNames {
		byName[name] = Palette(i)
	}
	return byName
}()

// ParsePalette finds the palette with exactly this name, as in "Blues" or
// "RdYlGn". Matching is case sensitive, and no whitespace trimming is done.
//
// Returns ErrInvalidName if there is no such palette.
func ParsePalette(name string) (Palette, error) {
	palette, found := palettesByName[name]
	if !found {
		return 0, ErrInvalidName
	}

	return palette, nil
}

// Palettes returns all palettes, sequential ones first, then diverging, then
// qualitative.
func Palettes() []Palette {
	palettes := make([]Palette, paletteCount)
	for i := range palettes {
		palettes[i] = Palette(i)
	}
	return palettes
}

func (palette Palette) valid() bool {
	return palette < paletteCount
}

func (palette Palette) String() string {
	if !palette.valid() {
		return fmt.Sprintf("Palette(%d)", uint8(palette))
	}
	return paletteNames[palette]
}

func (palette Palette) MarshalText() ([]byte, error) {
	if !palette.valid() {
		return nil, fmt.Errorf("cannot marshal %s", palette.String())
	}
	return []byte(paletteNames[palette]), nil
}

func (palette *Palette) UnmarshalText(text []byte) error {
	parsed, err := ParsePalette(string(text))
	if err != nil {
		return fmt.Errorf("palette %q: %w", string(text), err)
	}

	*palette = parsed
	return nil
}

// Set makes *Palette a flag.Value
func (palette *Palette) Set(name string) error {
	return palette.UnmarshalText([]byte(name))
}
