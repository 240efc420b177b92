package twin

import (
	"strings"
)

type AttrMask uint

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
)

// Foreground color, background color and text attributes. The zero value is
// the terminal's default look.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

var StyleDefault Style

func (style Style) WithAttr(attr AttrMask) Style {
	result := Style{
		fg:    style.fg,
		bg:    style.bg,
		attrs: style.attrs | attr,
	}

	// Bold and dim are mutually exclusive
	if attr.has(AttrBold) {
		return result.WithoutAttr(AttrDim)
	}
	if attr.has(AttrDim) {
		return result.WithoutAttr(AttrBold)
	}

	return result
}

func (style Style) WithoutAttr(attr AttrMask) Style {
	return Style{
		fg:    style.fg,
		bg:    style.bg,
		attrs: style.attrs & ^attr,
	}
}

func (attr AttrMask) has(attrs AttrMask) bool {
	return attr&attrs != 0
}

func (style Style) WithBackground(color Color) Style {
	return Style{
		fg:    style.fg,
		bg:    color,
		attrs: style.attrs,
	}
}

func (style Style) WithForeground(color Color) Style {
	return Style{
		fg:    color,
		bg:    style.bg,
		attrs: style.attrs,
	}
}

// Emit an ANSI escape sequence switching from a previous style to the current
// one.
//
//revive:disable-next-line:receiver-naming
func (style Style) RenderUpdateFrom(previous Style, terminalColorCount ColorCount) string {
	if style == previous {
		return ""
	}

	if style == StyleDefault {
		return "\x1b[m"
	}

	var builder strings.Builder
	if style.fg != previous.fg {
		builder.WriteString(style.fg.ansiString(colorPlacementForeground, terminalColorCount))
	}

	if style.bg != previous.bg {
		builder.WriteString(style.bg.ansiString(colorPlacementBackground, terminalColorCount))
	}

	// SGR 22 clears both bold and dim
	previousBoldDim := previous.attrs & (AttrBold | AttrDim)
	currentBoldDim := style.attrs & (AttrBold | AttrDim)
	if currentBoldDim != previousBoldDim {
		if previousBoldDim != 0 {
			builder.WriteString("\x1b[22m")
		}
		if style.attrs.has(AttrBold) {
			builder.WriteString("\x1b[1m")
		}
		if style.attrs.has(AttrDim) {
			builder.WriteString("\x1b[2m")
		}
	}

	if style.attrs.has(AttrItalic) != previous.attrs.has(AttrItalic) {
		if style.attrs.has(AttrItalic) {
			builder.WriteString("\x1b[3m")
		} else {
			builder.WriteString("\x1b[23m")
		}
	}

	return builder.String()
}
