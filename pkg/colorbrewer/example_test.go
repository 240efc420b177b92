package colorbrewer_test

import (
	"fmt"

	"github.com/walles/colorbrewer/pkg/colorbrewer"
)

func ExampleColorRamp() {
	ramp, ok := colorbrewer.ColorRamp(colorbrewer.Oranges, 3)
	fmt.Println(ok, ramp)

	_, ok = colorbrewer.ColorRamp(colorbrewer.Oranges, 20)
	fmt.Println(ok)
	// Output:
	// true [#fee6ce #fdae6b #e6550d]
	// false
}

func ExampleParsePalette() {
	palette, err := colorbrewer.ParsePalette("Blues")
	if err != nil {
		panic(err)
	}

	fmt.Println(palette, palette.Kind(), palette.Counts())
	// Output: Blues sequential [3 4 5 6 7 8 9]
}
