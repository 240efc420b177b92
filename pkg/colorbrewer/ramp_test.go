package colorbrewer

import (
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestOranges3(t *testing.T) {
	ramp, ok := ColorRamp(Oranges, 3)
	assert.Assert(t, ok)
	assert.DeepEqual(t, ramp, Ramp{
		{R: 254, G: 230, B: 206},
		{R: 253, G: 174, B: 107},
		{R: 230, G: 85, B: 13},
	})
}

func TestPastel2(t *testing.T) {
	ramp, ok := ColorRamp(Pastel2, 3)
	assert.Assert(t, ok)
	assert.DeepEqual(t, ramp, Ramp{
		{R: 179, G: 226, B: 205},
		{R: 253, G: 205, B: 172},
		{R: 203, G: 213, B: 232},
	})

	_, ok = ColorRamp(Pastel2, 8)
	assert.Assert(t, ok)

	// Pastel2 stops at 8
	ramp, ok = ColorRamp(Pastel2, 9)
	assert.Assert(t, !ok)
	assert.Assert(t, ramp == nil)
}

func TestParsedBlues(t *testing.T) {
	palette, err := ParsePalette("Blues")
	assert.NilError(t, err)

	ramp, ok := ColorRamp(palette, 3)
	assert.Assert(t, ok)
	assert.Equal(t, len(ramp), 3)
}

func TestDivergingGoesToEleven(t *testing.T) {
	ramp, ok := ColorRamp(PuOr, 11)
	assert.Assert(t, ok)
	assert.Equal(t, len(ramp), 11)

	_, ok = ColorRamp(PuOr, 12)
	assert.Assert(t, !ok)
}

func TestSupportedCounts(t *testing.T) {
	expected := map[Palette][2]int{}
	for _, palette := range Palettes() {
		switch palette.Kind() {
		case KindSequential:
			expected[palette] = [2]int{3, 9}
		case KindDiverging:
			expected[palette] = [2]int{3, 11}
		}
	}
	expected[Accent] = [2]int{3, 8}
	expected[Dark2] = [2]int{3, 8}
	expected[Paired] = [2]int{3, 12}
	expected[Pastel1] = [2]int{3, 9}
	expected[Pastel2] = [2]int{3, 8}
	expected[Set1] = [2]int{3, 9}
	expected[Set2] = [2]int{3, 8}
	expected[Set3] = [2]int{3, 12}

	for _, palette := range Palettes() {
		minMax, found := expected[palette]
		assert.Assert(t, found, palette.String())

		assert.Equal(t, palette.MinCount(), minMax[0], palette.String())
		assert.Equal(t, palette.MaxCount(), minMax[1], palette.String())

		// No gaps
		assert.Equal(t, len(palette.Counts()), minMax[1]-minMax[0]+1, palette.String())
	}
}

func TestEveryRampHasTheRequestedLength(t *testing.T) {
	for _, palette := range Palettes() {
		for _, count := range palette.Counts() {
			ramp, ok := ColorRamp(palette, count)
			assert.Assert(t, ok, "%s %d", palette, count)
			assert.Equal(t, len(ramp), count, "%s %d", palette, count)
		}
	}
}

func TestUnsupportedCounts(t *testing.T) {
	for _, palette := range Palettes() {
		for _, count := range []int{-1000, -3, -1, 0, 1, 2, palette.MaxCount() + 1, 13, 20, 50, math.MaxInt} {
			ramp, ok := ColorRamp(palette, count)
			assert.Assert(t, !ok, "%s %d", palette, count)
			assert.Assert(t, ramp == nil, "%s %d", palette, count)
		}
	}
}

func TestInvalidPaletteHasNoRamps(t *testing.T) {
	_, ok := ColorRamp(Palette(35), 3)
	assert.Assert(t, !ok)

	assert.Equal(t, len(Palette(35).Counts()), 0)
	assert.Equal(t, Palette(35).MinCount(), 0)
	assert.Equal(t, Palette(35).MaxCount(), 0)
}

func TestRampsAreIndependentlyCurated(t *testing.T) {
	// The first Blues color differs between the 3 and 4 color ramps, so no
	// ramp can be derived from another one
	three, _ := ColorRamp(Blues, 3)
	four, _ := ColorRamp(Blues, 4)
	assert.Assert(t, three[0] != four[0])

	// Diverging palettes get a new middle color for odd counts
	ten, _ := ColorRamp(RdBu, 10)
	eleven, _ := ColorRamp(RdBu, 11)
	assert.Equal(t, eleven[5], Color{R: 247, G: 247, B: 247})
	assert.DeepEqual(t, ten[:5], eleven[:5])
	assert.DeepEqual(t, ten[5:], eleven[6:])
}

func TestRepeatedLookupsAreIdentical(t *testing.T) {
	first, _ := ColorRamp(Spectral, 7)
	second, _ := ColorRamp(Spectral, 7)
	assert.DeepEqual(t, first, second)
}

func TestChangingARampDoesNotChangeTheTable(t *testing.T) {
	ramp, _ := ColorRamp(Set1, 5)
	original := append(Ramp{}, ramp...)

	ramp[0] = Color{}
	ramp = append(ramp, Color{})

	again, _ := ColorRamp(Set1, 5)
	if diff := cmp.Diff(original, again); diff != "" {
		t.Errorf("Table changed (-before +after):\n%s", diff)
	}
}

func TestConcurrentLookups(t *testing.T) {
	expected, _ := ColorRamp(RdYlGn, 9)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ramp, ok := ColorRamp(RdYlGn, 9)
				if !ok || !cmp.Equal(ramp, expected) {
					t.Error("Concurrent lookup returned something else")
					return
				}
			}
		}()
	}
	wg.Wait()
}

// The darkest ends of the longest ramps, as published by ColorBrewer
func TestLongestRampEnds(t *testing.T) {
	greys, _ := ColorRamp(Greys, 9)
	assert.Equal(t, greys[8], Color{R: 0, G: 0, B: 0})

	orRd, _ := ColorRamp(OrRd, 9)
	assert.DeepEqual(t, orRd[7:].Hex(), []string{"#b30000", "#7f0000"})

	brBG, _ := ColorRamp(BrBG, 11)
	assert.Equal(t, brBG[0].Hex(), "#543005")
	assert.Equal(t, brBG[10].Hex(), "#003c30")
}

func TestHex(t *testing.T) {
	ramp, _ := ColorRamp(Oranges, 3)
	assert.DeepEqual(t, ramp.Hex(), []string{"#fee6ce", "#fdae6b", "#e6550d"})
	assert.Equal(t, Color{R: 0, G: 0, B: 0}.Hex(), "#000000")
	assert.Equal(t, Color{R: 255, G: 255, B: 255}.String(), "#ffffff")
}

func TestParseHexColor(t *testing.T) {
	parsed, err := ParseHexColor("#e6550d")
	assert.NilError(t, err)
	assert.Equal(t, parsed, Color{R: 230, G: 85, B: 13})

	_, err = ParseHexColor("orange")
	assert.ErrorContains(t, err, "orange")

	_, err = ParseHexColor("#fee6cezz")
	assert.ErrorContains(t, err, "#fee6cezz")

	_, err = ParseHexColor("#abc")
	assert.ErrorContains(t, err, "expected #rrggbb")

	_, err = ParseHexColor("#zzzzzz")
	assert.ErrorContains(t, err, "#zzzzzz")
}

func TestHexRoundTripsForAllRamps(t *testing.T) {
	for _, palette := range Palettes() {
		for _, count := range palette.Counts() {
			ramp, _ := ColorRamp(palette, count)
			for _, c := range ramp {
				parsed, err := ParseHexColor(c.Hex())
				assert.NilError(t, err)
				assert.Equal(t, parsed, c)
			}
		}
	}
}

func TestRGBA(t *testing.T) {
	var c color.Color = Color{R: 0x12, G: 0x34, B: 0xff}
	r, g, b, a := c.RGBA()
	assert.Equal(t, r, uint32(0x1212))
	assert.Equal(t, g, uint32(0x3434))
	assert.Equal(t, b, uint32(0xffff))
	assert.Equal(t, a, uint32(0xffff))

	converted := color.RGBAModel.Convert(c).(color.RGBA)
	assert.Equal(t, converted, color.RGBA{R: 0x12, G: 0x34, B: 0xff, A: 0xff})
}

func TestFind(t *testing.T) {
	matches := Find(Color{R: 254, G: 230, B: 206})
	assert.Assert(t, len(matches) > 0)
	assert.DeepEqual(t, matches[0], Match{Palette: Oranges, Count: 3, Index: 0})

	for _, match := range matches {
		ramp, ok := ColorRamp(match.Palette, match.Count)
		assert.Assert(t, ok)
		assert.Equal(t, ramp[match.Index], Color{R: 254, G: 230, B: 206})
	}

	assert.Equal(t, len(Find(Color{R: 1, G: 2, B: 3})), 0)
}

func TestFindOrder(t *testing.T) {
	// Set1 red is used in Set1 only, at index 0 of every ramp
	matches := Find(Color{R: 228, G: 26, B: 28})

	expected := []Match{}
	for _, count := range Set1.Counts() {
		expected = append(expected, Match{Palette: Set1, Count: count, Index: 0})
	}
	assert.DeepEqual(t, matches, expected)
}
