// Package colorbrewer provides the color ramps from ColorBrewer,
// http://colorbrewer2.org/.
//
// Pick a Palette, either using one of the constants or by name using
// ParsePalette(), and ask ColorRamp() for the number of colors you need:
//
//	ramp, ok := colorbrewer.ColorRamp(colorbrewer.Oranges, 3)
//	// ramp is now #fee6ce, #fdae6b, #e6550d
//
// Each palette only has ramps for some counts, usually 3 to 9 for sequential
// palettes and 3 to 11 for diverging ones. Asking for any other count gives
// you ok == false. Use Palette.Counts() to find out what's available.
//
// The ramps are compiled into the package and never change, so everything in
// here is safe for concurrent use.
package colorbrewer
