// Package overlay draws a modal view in the middle of the page.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Centered draws foreground over the middle of a width x height page. Rows
// the box covers lose their styling; the rest of the page is left as is.
func Centered(page string, width, height int, foreground string) string {
	rows := fit(page, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(rows, "\n")
	}

	box := strings.Split(foreground, "\n")
	if len(box) > height {
		box = box[:height]
	}
	boxWidth := 0
	for _, line := range box {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}
	boxWidth = min(boxWidth, width)

	left := (width - boxWidth) / 2
	top := (height - len(box)) / 2
	for i, line := range box {
		under := ansi.Strip(rows[top+i])
		rows[top+i] = ansi.Cut(under, 0, left) + pad(line, boxWidth) + ansi.Cut(under, left+boxWidth, width)
	}
	return strings.Join(rows, "\n")
}

// fit keeps the last height rows of page, each exactly width cells wide.
func fit(page string, width, height int) []string {
	rows := strings.Split(page, "\n")
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = pad(rows[i], width)
	}
	return rows
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "")
}
