package internal

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/walles/colorbrewer/pkg/colorbrewer"
	"github.com/walles/colorbrewer/twin"
)

type listingRow struct {
	palette colorbrewer.Palette
	cells   []string
}

// Swatch listings show palette names in bold and kinds dimmed
var listingColumnStyles = []twin.Style{
	twin.StyleDefault.WithAttr(twin.AttrBold),
	twin.StyleDefault.WithAttr(twin.AttrDim),
	twin.StyleDefault,
}

// RenderListing renders a table of all palettes, with their kinds and
// available counts. In swatch format, each row also shows the palette's
// longest ramp.
func RenderListing(format Format, colors twin.ColorCount) string {
	rows := make([]listingRow, 0)
	for _, palette := range colorbrewer.Palettes() {
		rows = append(rows, listingRow{
			palette: palette,
			cells: []string{
				palette.String(),
				palette.Kind().String(),
				FormatCounts(palette.Counts()),
			},
		})
	}

	widths := make([]int, len(rows[0].cells))
	for _, row := range rows {
		for i, cell := range row.cells {
			width := uniseg.StringWidth(cell)
			if width > widths[i] {
				widths[i] = width
			}
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		line := ""
		previous := twin.StyleDefault
		for i, cell := range row.cells {
			if i > 0 {
				line += "  "
			}
			if format == FormatSwatch {
				line += listingColumnStyles[i].RenderUpdateFrom(previous, colors)
				previous = listingColumnStyles[i]
			}
			line += padRight(cell, widths[i])
		}

		if format == FormatSwatch {
			ramp, ok := colorbrewer.ColorRamp(row.palette, row.palette.MaxCount())
			if !ok {
				panic(fmt.Errorf("no longest ramp for %s", row.palette))
			}
			line += "  " + renderStrip(ramp, colors)
		} else {
			line = strings.TrimRight(line, " ")
		}

		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String()
}

// Pad with spaces to reach the given screen width
func padRight(text string, width int) string {
	missing := width - uniseg.StringWidth(text)
	if missing <= 0 {
		return text
	}
	return text + strings.Repeat(" ", missing)
}

// FormatCounts formats [3 4 5 6] as "3-6". Non-contiguous counts are listed
// one by one, comma separated.
func FormatCounts(counts []int) string {
	if len(counts) == 0 {
		return ""
	}

	contiguous := counts[len(counts)-1]-counts[0] == len(counts)-1
	if contiguous && len(counts) > 1 {
		return fmt.Sprintf("%d-%d", counts[0], counts[len(counts)-1])
	}

	parts := make([]string, len(counts))
	for i, count := range counts {
		parts[i] = fmt.Sprint(count)
	}
	return strings.Join(parts, ",")
}
