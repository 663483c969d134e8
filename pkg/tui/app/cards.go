package teaui

import (
	"fmt"
	"strings"

	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/geo"
	"tableflip.dev/folio/pkg/tui/components/catalogview"
)

func entryCard(e content.Entry) catalogview.Card {
	return catalogview.Card{
		Kicker: strings.ToUpper(e.Category),
		Date:   e.Date,
		Title:  e.Title,
		Body:   e.Description,
		Meta:   strings.Join(e.Tags, " · "),
	}
}

// readCard leads with the first tag, reads are external links.
func readCard(e content.Entry) catalogview.Card {
	c := entryCard(e)
	if len(e.Tags) > 0 {
		c.Kicker = strings.ToUpper(e.Tags[0])
	}
	c.Meta = "↗ " + e.Link
	return c
}

func bookCard(b content.Book) catalogview.Card {
	return catalogview.Card{
		Kicker: strings.ToUpper(b.Author),
		Date:   b.Year,
		Title:  b.Title,
		Body:   firstLine(b.Reflection),
		Meta:   strings.Join(b.Tags, " · "),
	}
}

func galleryCard(g content.GalleryItem) catalogview.Card {
	return catalogview.Card{
		Kicker: strings.ToUpper(g.Location),
		Date:   g.Date,
		Title:  g.Title,
		Body:   g.Description,
		Meta:   fmt.Sprintf("%s  %s", strings.ToUpper(g.ID), geo.FormatCoords(g.Coordinates.Lat, g.Coordinates.Lng, 2)),
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "\n\n"); i >= 0 {
		return s[:i]
	}
	return s
}
