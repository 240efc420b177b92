package twin

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLuminance(t *testing.T) {
	// Black luminance should be 0
	if luminance, err := NewColor24Bit(0, 0, 0).Luminance(); err != nil {
		panic(err)
	} else {
		assert.Equal(t, luminance, uint8(0))
	}

	// White luminance should be 255
	if luminance, err := NewColor24Bit(255, 255, 255).Luminance(); err != nil {
		panic(err)
	} else {
		assert.Equal(t, luminance, uint8(255))
	}

	blue_luminance, err := NewColor24Bit(0, 0, 255).Luminance()
	if err != nil {
		panic(err)
	}

	red_luminance, err := NewColor24Bit(255, 0, 0).Luminance()
	if err != nil {
		panic(err)
	}

	green_luminance, err := NewColor24Bit(0, 255, 0).Luminance()
	if err != nil {
		panic(err)
	}

	assert.Assert(t, blue_luminance > 0)
	assert.Assert(t, red_luminance > blue_luminance)
	assert.Assert(t, green_luminance > red_luminance)
	assert.Assert(t, green_luminance < 255)

	_, err = ColorDefault.Luminance()
	assert.ErrorContains(t, err, "default")
}

func TestAnsiString24Bit(t *testing.T) {
	color := NewColor24Bit(254, 230, 206)
	assert.Equal(t,
		strings.ReplaceAll(color.ansiString(colorPlacementForeground, ColorCount24bit), "\x1b", "ESC"),
		"ESC[38;2;254;230;206m")
	assert.Equal(t,
		strings.ReplaceAll(color.ansiString(colorPlacementBackground, ColorCount24bit), "\x1b", "ESC"),
		"ESC[48;2;254;230;206m")
}

func TestAnsiStringDefault(t *testing.T) {
	assert.Equal(t,
		strings.ReplaceAll(ColorDefault.ansiString(colorPlacementBackground, ColorCount256), "\x1b", "ESC"),
		"ESC[49m")
}

func TestDownsampleExactMatch(t *testing.T) {
	red := NewColor24Bit(255, 0, 0)
	assert.Equal(t, red.downsampleTo(ColorCount16), NewColor16(9))
	assert.Equal(t, red.downsampleTo(ColorCount256), NewColor16(9))

	assert.Equal(t,
		strings.ReplaceAll(red.ansiString(colorPlacementBackground, ColorCount16), "\x1b", "ESC"),
		"ESC[101m")
}

func TestDownsampleToCube(t *testing.T) {
	// 0x5f is a 6x6x6 cube component, 0x5f5f87 is color 60
	color := NewColor24Bit(0x5f, 0x5f, 0x87)
	assert.Equal(t, color.downsampleTo(ColorCount256), NewColor256(60))
	assert.Equal(t,
		strings.ReplaceAll(color.ansiString(colorPlacementForeground, ColorCount256), "\x1b", "ESC"),
		"ESC[38;5;60m")
}

func TestDownsampleTo8(t *testing.T) {
	downsampled := NewColor24Bit(0xfe, 0xe6, 0xce).downsampleTo(ColorCount8)
	assert.Equal(t, downsampled.colorCount(), ColorCount16)
	assert.Assert(t, downsampled.colorValue() < 8)
}

func TestNoDownsamplingNeeded(t *testing.T) {
	color := NewColor256(200)
	assert.Equal(t, color.downsampleTo(ColorCount24bit), color)
	assert.Equal(t, color.downsampleTo(ColorCount256), color)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, NewColor24Bit(0xfe, 0xe6, 0xce).String(), "#fee6ce")
	assert.Equal(t, NewColor256(200).String(), "#c8")
	assert.Equal(t, NewColor16(9).String(), "9 bright red")
	assert.Equal(t, ColorDefault.String(), "Default color")
}
