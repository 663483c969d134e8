// Package content defines the static portfolio records and loads them from
// an embedded (or on-disk) content tree.
package content

import (
	"strconv"
	"strings"
)

// Entry is a card-shaped record shared by writings, reads and lab experiments.
type Entry struct {
	ID          string   `json:"id" yaml:"id"`
	Category    string   `json:"category" yaml:"category"`
	Title       string   `json:"title" yaml:"title"`
	Date        string   `json:"date" yaml:"date"`
	Description string   `json:"description" yaml:"description"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
}

// Body returns the long-form content, falling back to the description.
func (e Entry) Body() string {
	if strings.TrimSpace(e.Content) == "" {
		return e.Description
	}
	return e.Content
}

// Book is a shelf record with a long-form reflection.
type Book struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Author     string   `json:"author" yaml:"author"`
	Year       string   `json:"year" yaml:"year"`
	Reflection string   `json:"reflection" yaml:"-"`
	Cover      string   `json:"cover,omitempty" yaml:"cover,omitempty"`
	Tags       []string `json:"tags" yaml:"tags"`
}

// YearValue parses Year as an integer. Unparseable years count as 0.
func (b Book) YearValue() int {
	y, err := strconv.Atoi(strings.TrimSpace(b.Year))
	if err != nil {
		return 0
	}
	return y
}

// Coordinates is a WGS84 position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Valid reports whether the pair is within the usual degree ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// GalleryItem is a photo with a place attached to it.
type GalleryItem struct {
	ID          string      `json:"id" yaml:"id"`
	Src         string      `json:"src" yaml:"src"`
	Title       string      `json:"title" yaml:"title"`
	Location    string      `json:"location" yaml:"location"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Description string      `json:"description" yaml:"description"`
	Date        string      `json:"date" yaml:"date"`
}

// Link is a contact or social destination.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Library holds every catalog. It is built once by Load and never mutated.
type Library struct {
	Writings    []Entry
	Reads       []Entry
	Experiments []Entry
	Books       []Book
	Gallery     []GalleryItem
	Quotes      []string
	Links       []Link
}
