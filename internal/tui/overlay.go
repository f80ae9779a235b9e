package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites overlay on top of base at cell position (x, y). Both
// are treated as line-based grids; base rows past height are left alone.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// centerOverlay places overlay in the middle of a width x height canvas.
// Zero dimensions fall back to the size of base; base is padded with blank
// rows so a taller overlay is never clipped.
func centerOverlay(base, overlay string, width, height int) string {
	lines := splitLines(base)
	ol := splitLines(overlay)
	width = max(width, maxLineWidth(lines))
	height = max(height, len(lines), len(ol))
	for len(lines) < height {
		lines = append(lines, "")
	}
	base = strings.Join(lines, "\n")
	x := max(0, (width-maxLineWidth(ol))/2)
	y := max(0, (height-len(ol))/2)
	return overlayAt(base, overlay, x, y, width, height)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
