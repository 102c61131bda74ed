package dump

import (
	"strings"

	"hexglow/internal/profile"
)

const hexDigits = "0123456789abcdef"

// FormatRow renders one output line from buf, whose first n bytes are valid.
// buf must be layout.RowLength long; positions at or past n are padding and
// render as blanks so the hex and ASCII columns keep their width on the
// final short row. The returned line carries no trailing newline.
func FormatRow(buf []byte, n int, layout Layout, prof *profile.Profile) string {
	if n > len(buf) {
		n = len(buf)
	}

	var sb strings.Builder
	// Rough capacity: 3 chars per hex cell plus the ASCII column, doubled
	// when styling is on.
	capacity := layout.RowLength * 4
	if layout.Colour {
		capacity += layout.RowLength * 2 * len(profile.Reset)
	}
	sb.Grow(capacity)

	// Hex section. One space between bytes, a second one at chunk
	// boundaries.
	for i := 0; i < layout.RowLength; i++ {
		if i > 0 {
			sb.WriteByte(' ')
			if i%layout.ChunkLength == 0 {
				sb.WriteByte(' ')
			}
		}
		if i < n {
			b := buf[i]
			writeStyled(&sb, layout, prof, b, func() {
				sb.WriteByte(hexDigits[b>>4])
				sb.WriteByte(hexDigits[b&0x0f])
			})
		} else {
			sb.WriteString("  ")
		}
	}

	sb.WriteString("  ")

	// ASCII section, one character per byte position.
	for i := 0; i < layout.RowLength; i++ {
		if i < n {
			b := buf[i]
			writeStyled(&sb, layout, prof, b, func() {
				sb.WriteByte(profile.Display(b))
			})
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// writeStyled wraps the emit callback in the byte's SGR prefix and a reset
// when colour is on and the profile styles this class at all.
func writeStyled(sb *strings.Builder, layout Layout, prof *profile.Profile, b byte, emit func()) {
	style := profile.Style("")
	if layout.Colour {
		style = prof.Style(profile.Classify(b))
	}
	if style == "" {
		emit()
		return
	}
	sb.WriteString(string(style))
	emit()
	sb.WriteString(profile.Reset)
}
