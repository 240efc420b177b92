package internal

import (
	"fmt"
	"strings"

	"github.com/walles/colorbrewer/pkg/colorbrewer"
	"github.com/walles/colorbrewer/twin"
)

// How to print colors
type Format uint8

const (
	// Colored blocks with the hex code on top, for terminals
	FormatSwatch Format = iota

	// One "#rrggbb" per line
	FormatHex

	// One "r g b" per line, decimal
	FormatRGB
)

var formatNames = map[Format]string{
	FormatSwatch: "swatch",
	FormatHex:    "hex",
	FormatRGB:    "rgb",
}

func (format Format) String() string {
	name, found := formatNames[format]
	if !found {
		return fmt.Sprintf("Format(%d)", uint8(format))
	}
	return name
}

func ParseFormat(formatOption string) (Format, error) {
	for format, name := range formatNames {
		if name == strings.ToLower(formatOption) {
			return format, nil
		}
	}

	return FormatHex, fmt.Errorf("invalid format \"%s\", valid formats are swatch, hex or rgb", formatOption)
}

// RenderRamp renders one color per line, every line ending in a newline.
func RenderRamp(ramp colorbrewer.Ramp, format Format, colors twin.ColorCount) string {
	var builder strings.Builder
	for _, color := range ramp {
		builder.WriteString(renderColor(color, format, colors))
		builder.WriteString("\n")
	}
	return builder.String()
}

func renderColor(color colorbrewer.Color, format Format, colors twin.ColorCount) string {
	switch format {
	case FormatHex:
		return color.Hex()
	case FormatRGB:
		return fmt.Sprintf("%d %d %d", color.R, color.G, color.B)
	case FormatSwatch:
		return renderSwatch(color, "  "+color.Hex()+"  ", colors)
	}

	panic(fmt.Errorf("unhandled format %s", format))
}

// Render text on a background of the given color, in black or white depending
// on which one is more readable.
func renderSwatch(color colorbrewer.Color, text string, colors twin.ColorCount) string {
	background := twin.NewColor24Bit(color.R, color.G, color.B)
	luminance, err := background.Luminance()
	if err != nil {
		panic(err)
	}

	foreground := twin.NewColor24Bit(0, 0, 0)
	if luminance < 128 {
		foreground = twin.NewColor24Bit(255, 255, 255)
	}

	style := twin.StyleDefault.WithBackground(background).WithForeground(foreground)
	return style.RenderUpdateFrom(twin.StyleDefault, colors) +
		text +
		twin.StyleDefault.RenderUpdateFrom(style, colors)
}

// RenderPalette renders all ramps of a palette, one per line, prefixed by
// their counts.
func RenderPalette(palette colorbrewer.Palette, format Format, colors twin.ColorCount) string {
	counts := palette.Counts()
	countWidth := len(fmt.Sprint(palette.MaxCount()))

	var builder strings.Builder
	for _, count := range counts {
		ramp, ok := colorbrewer.ColorRamp(palette, count)
		if !ok {
			panic(fmt.Errorf("%s has no %d color ramp even though it says so", palette, count))
		}

		fmt.Fprintf(&builder, "%*d ", countWidth, count)
		switch format {
		case FormatSwatch:
			builder.WriteString(renderStrip(ramp, colors))
		case FormatHex:
			builder.WriteString(strings.Join(ramp.Hex(), " "))
		case FormatRGB:
			for i, color := range ramp {
				if i > 0 {
					builder.WriteString(" ")
				}
				fmt.Fprintf(&builder, "%d,%d,%d", color.R, color.G, color.B)
			}
		default:
			panic(fmt.Errorf("unhandled format %s", format))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// RenderMatches renders Find() results, one per line.
func RenderMatches(color colorbrewer.Color, matches []colorbrewer.Match, format Format, colors twin.ColorCount) string {
	if len(matches) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, match := range matches {
		ramp, ok := colorbrewer.ColorRamp(match.Palette, match.Count)
		if !ok {
			panic(fmt.Errorf("found %s in non-existing ramp %s %d", color, match.Palette, match.Count))
		}

		fmt.Fprintf(&builder, "%s %d, index %d", match.Palette, match.Count, match.Index)
		if format == FormatSwatch {
			builder.WriteString(": ")
			builder.WriteString(renderStrip(ramp, colors))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// A row of blank swatches, two cells per color
func renderStrip(ramp colorbrewer.Ramp, colors twin.ColorCount) string {
	var builder strings.Builder
	for _, color := range ramp {
		builder.WriteString(renderSwatch(color, "  ", colors))
	}
	return builder.String()
}
