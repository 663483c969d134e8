package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return NewService(lib)
}

func TestServiceCatalogs(t *testing.T) {
	svc := newTestService(t)
	infos, err := svc.Catalogs(context.Background())
	if err != nil {
		t.Fatalf("Catalogs failed: %v", err)
	}
	if len(infos) != len(catalog.Names()) {
		t.Fatalf("expected %d catalogs, got %d", len(catalog.Names()), len(infos))
	}
	if infos[0].Name != catalog.Reads {
		t.Fatalf("expected reads first, got %s", infos[0].Name)
	}
}

func TestServiceQueryShelfWindow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.Query(ctx, "Shelf", catalog.Query{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(res.Items) != 6 || !res.ShowMore || res.Total != 10 {
		t.Fatalf("unexpected collapsed shelf: items=%d showMore=%v total=%d", len(res.Items), res.ShowMore, res.Total)
	}

	res, err = svc.Query(ctx, "shelf", catalog.Query{Expanded: true})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(res.Items) != 10 || res.ShowMore {
		t.Fatalf("unexpected expanded shelf: items=%d showMore=%v", len(res.Items), res.ShowMore)
	}
}

func TestServiceUnknownCatalog(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Query(context.Background(), "vlog", catalog.Query{}); !errors.Is(err, catalog.ErrUnknownCatalog) {
		t.Fatalf("expected ErrUnknownCatalog, got %v", err)
	}
}

func TestServiceRecordRendersHTML(t *testing.T) {
	svc := newTestService(t)
	d, err := svc.Record(context.Background(), catalog.Shelf, "image-of-the-city")
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if d.Document.Title == "" || len(d.Paragraphs) == 0 {
		t.Fatalf("expected title and paragraphs, got %+v", d.Document)
	}
	if !strings.Contains(d.BodyHTML, "<p>") {
		t.Fatalf("expected html paragraphs, got %q", d.BodyHTML)
	}
	if _, ok := d.Record.(content.Book); !ok {
		t.Fatalf("expected content.Book record, got %T", d.Record)
	}

	if _, err := svc.Record(context.Background(), catalog.Shelf, "missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceGalleryStop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.GalleryStop(ctx, 0)
	if err != nil {
		t.Fatalf("GalleryStop failed: %v", err)
	}
	if first.HasPrev || !first.HasNext {
		t.Fatalf("first stop: prev=%v next=%v", first.HasPrev, first.HasNext)
	}
	if !strings.HasPrefix(first.TileURL, "https://") || !strings.Contains(first.TileURL, "/13/") {
		t.Fatalf("unexpected tile url %q", first.TileURL)
	}

	last, err := svc.GalleryStop(ctx, len(svc.Library.Gallery)-1)
	if err != nil {
		t.Fatalf("GalleryStop failed: %v", err)
	}
	if !last.HasPrev || last.HasNext {
		t.Fatalf("last stop: prev=%v next=%v", last.HasPrev, last.HasNext)
	}

	if _, err := svc.GalleryStop(ctx, len(svc.Library.Gallery)); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound past the end, got %v", err)
	}
}

func TestZeroService(t *testing.T) {
	var svc *Service
	if _, err := svc.Catalogs(context.Background()); !errors.Is(err, ErrNoLibrary) {
		t.Fatalf("expected ErrNoLibrary, got %v", err)
	}
}
