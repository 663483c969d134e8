// Package app holds the read-only operations shared by the CLI, the JSON API
// and the MCP server.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/catalog/detail"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/gallery"
	"tableflip.dev/folio/pkg/geo"
)

// ErrNoLibrary is returned by a zero Service.
var ErrNoLibrary = errors.New("app: no content library configured")

// Service answers catalog queries over one loaded library.
type Service struct {
	Library *content.Library
	// TileTemplate is used for gallery stops, geo.LightTiles when empty.
	TileTemplate string

	set *catalog.Set
	md  goldmark.Markdown
}

// RecordDetail is everything known about one record.
type RecordDetail struct {
	Catalog    string          `json:"catalog"`
	Summary    detail.Summary  `json:"summary"`
	Document   detail.Document `json:"document"`
	Paragraphs []string        `json:"paragraphs"`
	BodyHTML   string          `json:"bodyHtml"`
	Record     any             `json:"record"`
}

// GalleryStop is the map overlay for one gallery position.
type GalleryStop struct {
	Index        int                 `json:"index"`
	Total        int                 `json:"total"`
	Counter      string              `json:"counter"`
	HasPrev      bool                `json:"hasPrev"`
	HasNext      bool                `json:"hasNext"`
	Item         content.GalleryItem `json:"item"`
	Coordinates  string              `json:"coordinates"`
	Zoom         int                 `json:"zoom"`
	Tile         string              `json:"tile"`
	TileURL      string              `json:"tileUrl"`
	SatelliteURL string              `json:"satelliteUrl"`
}

// NewService builds a service over lib.
func NewService(lib *content.Library) *Service {
	return &Service{
		Library: lib,
		set:     catalog.NewSet(lib),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

func (s *Service) ready() error {
	if s == nil || s.Library == nil || s.set == nil {
		return ErrNoLibrary
	}
	return nil
}

// Catalogs describes every catalog in navigation order.
func (s *Service) Catalogs(_ context.Context) ([]catalog.Info, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.set.Infos(), nil
}

// Query evaluates q against the named catalog.
func (s *Service) Query(_ context.Context, name string, q catalog.Query) (catalog.Result, error) {
	if err := s.ready(); err != nil {
		return catalog.Result{}, err
	}
	c, err := s.set.Lookup(name)
	if err != nil {
		return catalog.Result{}, err
	}
	return c.Query(q), nil
}

// Facets lists the facet values of the named catalog, "ALL" first.
func (s *Service) Facets(_ context.Context, name string) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	c, err := s.set.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Facets(), nil
}

// Record returns the full detail of one record, with its body rendered to HTML.
func (s *Service) Record(_ context.Context, name, id string) (RecordDetail, error) {
	if err := s.ready(); err != nil {
		return RecordDetail{}, err
	}
	c, err := s.set.Lookup(name)
	if err != nil {
		return RecordDetail{}, err
	}
	id = strings.TrimSpace(id)
	rec, err := c.Record(id)
	if err != nil {
		return RecordDetail{}, err
	}
	sum, err := c.Summary(id)
	if err != nil {
		return RecordDetail{}, err
	}
	doc, err := c.Document(id)
	if err != nil {
		return RecordDetail{}, err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(doc.Body), &buf); err != nil {
		return RecordDetail{}, fmt.Errorf("app: render %s/%s: %w", c.Info().Name, id, err)
	}
	paragraphs := doc.Paragraphs()
	if paragraphs == nil {
		paragraphs = []string{}
	}
	return RecordDetail{
		Catalog:    c.Info().Name,
		Summary:    sum,
		Document:   doc,
		Paragraphs: paragraphs,
		BodyHTML:   buf.String(),
		Record:     rec,
	}, nil
}

// GalleryStop returns the map overlay state at index of the full gallery.
func (s *Service) GalleryStop(_ context.Context, index int) (GalleryStop, error) {
	if err := s.ready(); err != nil {
		return GalleryStop{}, err
	}
	items := s.Library.Gallery
	if index < 0 || index >= len(items) {
		return GalleryStop{}, fmt.Errorf("%w: gallery/%d", catalog.ErrNotFound, index)
	}
	nav := gallery.NewNavigator(len(items), index)
	item := items[index]
	c := item.Coordinates
	tile, _ := geo.Project(c.Lat, c.Lng, geo.DefaultZoom)
	template := s.TileTemplate
	if template == "" {
		template = geo.LightTiles
	}
	return GalleryStop{
		Index:        nav.Index(),
		Total:        nav.Total(),
		Counter:      nav.Counter(),
		HasPrev:      nav.CanPrev(),
		HasNext:      nav.CanNext(),
		Item:         item,
		Coordinates:  geo.FormatCoords(c.Lat, c.Lng, 4),
		Zoom:         geo.DefaultZoom,
		Tile:         tile.String(),
		TileURL:      geo.TileURL(template, tile),
		SatelliteURL: geo.SatelliteURL(c.Lat, c.Lng),
	}, nil
}
