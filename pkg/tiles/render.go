package tiles

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/folio/pkg/geo"
)

const (
	upperHalf = "▀"
	markerDot = "●"
)

// Canvas is the size of the rendered map in terminal cells. Each cell shows
// two vertical pixels.
type Canvas struct {
	Cols, Rows int
	// Marker is drawn at the projected position, e.g. "#ff3b30".
	Marker string
}

// Render draws a decoded tile scaled to the canvas with the marker at px.
func Render(data []byte, px geo.Point, c Canvas) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("tiles: decode: %w", err)
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		return "", nil
	}
	b := img.Bounds()
	markerCol := int(px.X / geo.TileSize * float64(c.Cols))
	markerRow := int(px.Y / geo.TileSize * float64(c.Rows))
	markerCol = min(max(markerCol, 0), c.Cols-1)
	markerRow = min(max(markerRow, 0), c.Rows-1)
	marker, _ := colorful.Hex(c.Marker)

	var sb strings.Builder
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			top := sample(img, b, col, row*2, c.Cols, c.Rows*2)
			bottom := sample(img, b, col, row*2+1, c.Cols, c.Rows*2)
			if row == markerRow && col == markerCol && c.Marker != "" {
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(marker.Hex())).
					Background(lipgloss.Color(top.BlendLab(bottom, 0.5).Hex())).
					Bold(true).
					Render(markerDot))
				continue
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(upperHalf))
		}
		if row < c.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// Placeholder is drawn when a tile is unavailable: a dashed survey grid with
// the marker in the middle.
func Placeholder(c Canvas, label string) string {
	if c.Cols <= 0 || c.Rows <= 0 {
		return ""
	}
	lines := make([]string, c.Rows)
	for row := range lines {
		var sb strings.Builder
		for col := 0; col < c.Cols; col++ {
			switch {
			case row == c.Rows/2 && col == c.Cols/2:
				sb.WriteString("+")
			case row%4 == 0 && col%8 == 0:
				sb.WriteString("┼")
			case row%4 == 0:
				sb.WriteString("╌")
			case col%8 == 0:
				sb.WriteString("╎")
			default:
				sb.WriteString(" ")
			}
		}
		lines[row] = sb.String()
	}
	if label != "" && c.Rows > 1 {
		runes := []rune(label)
		if len(runes) > c.Cols {
			runes = runes[:c.Cols]
		}
		lines[c.Rows-1] = string(runes) + strings.Repeat(" ", c.Cols-len(runes))
	}
	return strings.Join(lines, "\n")
}

func sample(img image.Image, b image.Rectangle, x, y, w, h int) colorful.Color {
	sx := b.Min.X + (2*x+1)*b.Dx()/(2*w)
	sy := b.Min.Y + (2*y+1)*b.Dy()/(2*h)
	c, ok := colorful.MakeColor(img.At(sx, sy))
	if !ok {
		return colorful.Color{}
	}
	return c
}
