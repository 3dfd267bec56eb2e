package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceOverlay draws fg over bg with its top-left corner at (x, y).
// Cells of bg outside fg's box keep their styling. When dim is set the
// background is rendered in grey.
func PlaceOverlay(x, y int, fg, bg string, dim bool) string {
	if dim {
		bg = desaturateANSI(bg)
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(x, 0)
	y = max(y, 0)

	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for i, fgLine := range fgLines {
		row := bgLines[y+i]
		left := ansi.Truncate(row, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(row, x+ansi.StringWidth(fgLine), "")
		bgLines[y+i] = left + "\x1b[0m" + fgLine + "\x1b[0m" + right
	}
	return strings.Join(bgLines, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	for i, line := range lines {
		if line != "" {
			lines[i] = grey.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
