package twin

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Create using NewColor16(), NewColor256 or NewColor24Bit(), or use
// ColorDefault.
type Color uint32

// How many colors a terminal can show
type ColorCount uint8

const (
	// Default foreground / background color
	colorCountDefault ColorCount = iota

	// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
	//
	// Note that this count is only used for output, colors are stored as 16
	// color colors since they map to the same values.
	ColorCount8

	// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
	ColorCount16

	// https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit
	ColorCount256

	// RGB: https://en.wikipedia.org/wiki/ANSI_escape_code#24-bit
	ColorCount24bit
)

type colorPlacement uint8

const (
	colorPlacementForeground colorPlacement = iota
	colorPlacementBackground
)

// Reset to default foreground / background color
var ColorDefault = newColor(colorCountDefault, 0)

// From: https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
var colorNames16 = map[int]string{
	0:  "0 black",
	1:  "1 red",
	2:  "2 green",
	3:  "3 yellow (orange)",
	4:  "4 blue",
	5:  "5 magenta",
	6:  "6 cyan",
	7:  "7 white (light gray)",
	8:  "8 bright black (dark gray)",
	9:  "9 bright red",
	10: "10 bright green",
	11: "11 bright yellow",
	12: "12 bright blue",
	13: "13 bright magenta",
	14: "14 bright cyan",
	15: "15 bright white",
}

func newColor(colorCount ColorCount, value uint32) Color {
	return Color(value | (uint32(colorCount) << 24))
}

// Four bit colors as defined here:
// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
func NewColor16(colorNumber0to15 int) Color {
	return newColor(ColorCount16, uint32(colorNumber0to15))
}

func NewColor256(colorNumber uint8) Color {
	return newColor(ColorCount256, uint32(colorNumber))
}

func NewColor24Bit(red uint8, green uint8, blue uint8) Color {
	return newColor(ColorCount24bit, (uint32(red)<<16)+(uint32(green)<<8)+(uint32(blue)<<0))
}

func (color Color) colorCount() ColorCount {
	return ColorCount(color >> 24)
}

func (color Color) colorValue() uint32 {
	return uint32(color & 0xff_ff_ff)
}

// Render color into an ANSI string.
//
// Ref: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR_(Select_Graphic_Rendition)_parameters
func (color Color) ansiString(placement colorPlacement, terminalColorCount ColorCount) string {
	fgBgMarker := "3"
	if placement == colorPlacementBackground {
		fgBgMarker = "4"
	}

	if color.colorCount() == colorCountDefault {
		return fmt.Sprint("\x1b[", fgBgMarker, "9m")
	}

	color = color.downsampleTo(terminalColorCount)

	if color.colorCount() == ColorCount16 {
		value := color.colorValue()
		if value < 8 {
			return fmt.Sprint("\x1b[", fgBgMarker, value, "m")
		} else if value <= 15 {
			fgBgMarker := "9"
			if placement == colorPlacementBackground {
				fgBgMarker = "10"
			}
			return fmt.Sprint("\x1b[", fgBgMarker, value-8, "m")
		}
	}

	if color.colorCount() == ColorCount256 {
		value := color.colorValue()
		if value <= 255 {
			return fmt.Sprint("\x1b[", fgBgMarker, "8;5;", value, "m")
		}
	}

	if color.colorCount() == ColorCount24bit {
		value := color.colorValue()
		red := (value & 0xff0000) >> 16
		green := (value & 0xff00) >> 8
		blue := value & 0xff

		return fmt.Sprint("\x1b[", fgBgMarker, "8;2;", red, ";", green, ";", blue, "m")
	}

	panic(fmt.Errorf("unhandled color count=%d %s", color.colorCount(), color.String()))
}

func (color Color) String() string {
	switch color.colorCount() {
	case colorCountDefault:
		return "Default color"

	case ColorCount16:
		return colorNames16[int(color.colorValue())]

	case ColorCount256:
		if color.colorValue() < 16 {
			return colorNames16[int(color.colorValue())]
		}
		return fmt.Sprintf("#%02x", color.colorValue())

	case ColorCount24bit:
		return fmt.Sprintf("#%06x", color.colorValue())
	}

	panic(fmt.Errorf("unhandled color count %d", color.colorCount()))
}

// Luminance returns 0 for black, 255 for white and something in between for
// everything else. Useful for picking readable text on top of a color.
func (color Color) Luminance() (uint8, error) {
	if color.colorCount() == colorCountDefault {
		return 0, fmt.Errorf("luminance of the default color is unknown")
	}

	r, g, b := color.toRGB()

	// Ref: https://en.wikipedia.org/wiki/Relative_luminance
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	return uint8(math.Round(luminance * 255.0)), nil
}

// Returns 0.0-1.0 components
func (color Color) toRGB() (r, g, b float64) {
	if color.colorCount() == ColorCount24bit {
		r = float64(color.colorValue()>>16) / 255.0
		g = float64(color.colorValue()>>8&0xff) / 255.0
		b = float64(color.colorValue()&0xff) / 255.0
		return
	}

	r8, g8, b8 := color256ToRGB(uint8(color.colorValue()))
	return float64(r8) / 255.0, float64(g8) / 255.0, float64(b8) / 255.0
}

func (color Color) downsampleTo(terminalColorCount ColorCount) Color {
	if color.colorCount() == colorCountDefault || terminalColorCount == colorCountDefault {
		panic(fmt.Errorf("downsampling to or from default color not supported, %s -> %#v", color.String(), terminalColorCount))
	}

	if color.colorCount() <= terminalColorCount {
		// Already low enough
		return color
	}

	targetR, targetG, targetB := color.toRGB()

	// Find the closest match in the terminal color palette
	scanRange := 255
	switch terminalColorCount {
	case ColorCount8:
		scanRange = 7
	case ColorCount16:
		scanRange = 15
	case ColorCount256:
		scanRange = 255
	default:
		panic(fmt.Errorf("unhandled terminal color count %#v", terminalColorCount))
	}

	// Iterate over the scan range and find the best matching index
	bestMatch := 0
	bestDistance := math.MaxFloat64
	target := colorful.Color{
		R: targetR,
		G: targetG,
		B: targetB,
	}
	for i := 0; i <= scanRange; i++ {
		r, g, b := color256ToRGB(uint8(i))
		candidate := colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		}

		distance := target.DistanceLab(candidate)
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = i
		}
	}

	if bestMatch <= 15 {
		return NewColor16(bestMatch)
	}
	return NewColor256(uint8(bestMatch))
}
