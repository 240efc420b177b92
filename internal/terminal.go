package internal

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/walles/colorbrewer/twin"
)

// ParseColorCount parses a --colors value. "auto" means asking
// DetectColorCount().
func ParseColorCount(colorsOption string, getenv func(string) string) (twin.ColorCount, error) {
	switch strings.ToUpper(colorsOption) {
	case "8":
		return twin.ColorCount8, nil
	case "16":
		return twin.ColorCount16, nil
	case "256":
		return twin.ColorCount256, nil
	case "16M":
		return twin.ColorCount24bit, nil
	case "AUTO":
		return DetectColorCount(getenv), nil
	}

	return twin.ColorCount24bit, fmt.Errorf("invalid color count \"%s\", valid counts are 8, 16, 256, 16M or auto", colorsOption)
}

// DetectColorCount guesses how many colors the terminal can show based on the
// COLORTERM and TERM environment variables.
func DetectColorCount(getenv func(string) string) twin.ColorCount {
	colorterm := getenv("COLORTERM")
	term := getenv("TERM")

	var colors twin.ColorCount
	switch {
	case colorterm == "truecolor" || colorterm == "24bit":
		colors = twin.ColorCount24bit
	case strings.Contains(term, "256color"):
		colors = twin.ColorCount256
	case term == "" || term == "dumb":
		colors = twin.ColorCount8
	default:
		colors = twin.ColorCount16
	}

	log.Debugf("COLORTERM=%q, TERM=%q, assuming terminal color count %s", colorterm, term, ColorCountName(colors))
	return colors
}

// The --colors option value for this color count
func ColorCountName(colors twin.ColorCount) string {
	switch colors {
	case twin.ColorCount8:
		return "8"
	case twin.ColorCount16:
		return "16"
	case twin.ColorCount256:
		return "256"
	case twin.ColorCount24bit:
		return "16M"
	}

	panic(fmt.Errorf("unhandled color count %d", colors))
}
