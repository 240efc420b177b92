package twin

// Maps a 256 color palette index to the RGB values xterm uses for it.
func color256ToRGB(color256 uint8) (r, g, b uint8) {
	if color256 < 16 {
		// Standard ANSI colors
		rgb := standardAnsiColors[color256]
		return rgb[0], rgb[1], rgb[2]
	}

	if color256 >= 232 {
		// Grayscale. Colors 232-255 map to components 0x08 to 0xee
		gray := (color256-232)*0x0a + 0x08
		return gray, gray, gray
	}

	// 6x6x6 color cube
	color0to215 := color256 - 16
	return cubeComponents[(color0to215/36)%6],
		cubeComponents[(color0to215/6)%6],
		cubeComponents[color0to215%6]
}

var cubeComponents = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Source, the xterm column here:
// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
var standardAnsiColors = [16][3]uint8{
	{0x00, 0x00, 0x00}, // Black
	{0x80, 0x00, 0x00}, // Red
	{0x00, 0x80, 0x00}, // Green
	{0x80, 0x80, 0x00}, // Yellow
	{0x00, 0x00, 0x80}, // Blue
	{0x80, 0x00, 0x80}, // Magenta
	{0x00, 0x80, 0x80}, // Cyan
	{0xc0, 0xc0, 0xc0}, // White

	{0x80, 0x80, 0x80}, // Bright Black
	{0xff, 0x00, 0x00}, // Bright Red
	{0x00, 0xff, 0x00}, // Bright Green
	{0xff, 0xff, 0x00}, // Bright Yellow
	{0x00, 0x00, 0xff}, // Bright Blue
	{0xff, 0x00, 0xff}, // Bright Magenta
	{0x00, 0xff, 0xff}, // Bright Cyan
	{0xff, 0xff, 0xff}, // Bright White
}
