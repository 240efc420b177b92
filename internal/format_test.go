package internal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/walles/colorbrewer/pkg/colorbrewer"
	"github.com/walles/colorbrewer/twin"
	"gotest.tools/v3/assert"
)

func oranges3(t *testing.T) colorbrewer.Ramp {
	ramp, ok := colorbrewer.ColorRamp(colorbrewer.Oranges, 3)
	assert.Assert(t, ok)
	return ramp
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("rgb")
	assert.NilError(t, err)
	assert.Equal(t, format, FormatRGB)

	format, err = ParseFormat("HEX")
	assert.NilError(t, err)
	assert.Equal(t, format, FormatHex)

	format, err = ParseFormat("swatch")
	assert.NilError(t, err)
	assert.Equal(t, format, FormatSwatch)

	_, err = ParseFormat("json")
	assert.ErrorContains(t, err, "json")

	assert.Equal(t, Format(17).String(), "Format(17)")
}

func TestRenderHex(t *testing.T) {
	assert.Equal(t,
		RenderRamp(oranges3(t), FormatHex, twin.ColorCount24bit),
		"#fee6ce\n#fdae6b\n#e6550d\n")
}

func TestRenderRGB(t *testing.T) {
	rendered := RenderRamp(oranges3(t), FormatRGB, twin.ColorCount24bit)
	if diff := cmp.Diff("254 230 206\n253 174 107\n230 85 13\n", rendered); diff != "" {
		t.Errorf("Unexpected RGB rendering (-want +got):\n%s", diff)
	}
}

func TestRenderSwatch(t *testing.T) {
	rendered := strings.ReplaceAll(
		RenderRamp(oranges3(t), FormatSwatch, twin.ColorCount24bit),
		"\x1b", "ESC")

	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	assert.Equal(t, len(lines), 3)

	// Light background, black text
	assert.Equal(t, lines[0], "ESC[38;2;0;0;0mESC[48;2;254;230;206m  #fee6ce  ESC[m")

	// Dark background, white text
	assert.Equal(t, lines[2], "ESC[38;2;255;255;255mESC[48;2;230;85;13m  #e6550d  ESC[m")
}

func TestRenderSwatch256(t *testing.T) {
	ramp := colorbrewer.Ramp{{R: 0x5f, G: 0x5f, B: 0x87}}
	rendered := strings.ReplaceAll(RenderRamp(ramp, FormatSwatch, twin.ColorCount256), "\x1b", "ESC")
	assert.Assert(t, strings.Contains(rendered, "ESC[48;5;60m"), rendered)
}

func TestRenderMatches(t *testing.T) {
	color := colorbrewer.Color{R: 254, G: 230, B: 206}
	rendered := RenderMatches(color, colorbrewer.Find(color), FormatHex, twin.ColorCount24bit)
	assert.Equal(t, rendered, "Oranges 3, index 0\nOranges 8, index 1\nOranges 9, index 1\n")

	assert.Equal(t, RenderMatches(color, nil, FormatHex, twin.ColorCount24bit), "")
}

func TestRenderMatchesWithSwatches(t *testing.T) {
	color := colorbrewer.Color{R: 254, G: 230, B: 206}
	matches := []colorbrewer.Match{{Palette: colorbrewer.Oranges, Count: 3, Index: 0}}
	rendered := strings.ReplaceAll(RenderMatches(color, matches, FormatSwatch, twin.ColorCount24bit), "\x1b", "ESC")
	assert.Assert(t, strings.HasPrefix(rendered, "Oranges 3, index 0: ESC["), rendered)
	assert.Equal(t, strings.Count(rendered, "ESC[m"), 3)
}

func TestRenderPaletteHex(t *testing.T) {
	rendered := RenderPalette(colorbrewer.Oranges, FormatHex, twin.ColorCount24bit)
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	assert.Equal(t, len(lines), 7)
	assert.Equal(t, lines[0], "3 #fee6ce #fdae6b #e6550d")
	assert.Assert(t, strings.HasPrefix(lines[6], "9 #fff5eb "), lines[6])
}

func TestRenderPaletteRGB(t *testing.T) {
	rendered := RenderPalette(colorbrewer.Paired, FormatRGB, twin.ColorCount24bit)
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	assert.Equal(t, len(lines), 10)

	// Counts are right aligned
	assert.Assert(t, strings.HasPrefix(lines[0], " 3 166,206,227 "), lines[0])
	assert.Assert(t, strings.HasPrefix(lines[9], "12 "), lines[9])
}
