package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	srv := httptest.NewServer(NewHandler(app.NewService(lib), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d: %s", path, resp.StatusCode, wantStatus, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("GET %s: content type %q", path, ct)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
}

func TestListCatalogs(t *testing.T) {
	srv := newTestServer(t)
	var body struct {
		Catalogs []catalog.Info `json:"catalogs"`
		Count    int            `json:"count"`
	}
	getJSON(t, srv, "/api/catalogs", http.StatusOK, &body)
	if body.Count != 5 || len(body.Catalogs) != 5 {
		t.Fatalf("expected 5 catalogs, got %+v", body)
	}
}

func TestQueryCatalog(t *testing.T) {
	srv := newTestServer(t)

	var res catalog.Result
	getJSON(t, srv, "/api/catalogs/writings?q=brutal", http.StatusOK, &res)
	if res.Matched == 0 || res.Matched != len(res.Items) {
		t.Fatalf("unexpected brutal search: %+v", res)
	}
	if res.Query.Search != "brutal" || res.Query.Facet != catalog.AllFacet {
		t.Fatalf("unexpected echoed query %+v", res.Query)
	}

	getJSON(t, srv, "/api/catalogs/shelf?expanded=true", http.StatusOK, &res)
	if len(res.Items) != 10 || res.ShowMore {
		t.Fatalf("expanded shelf: %d items, showMore=%v", len(res.Items), res.ShowMore)
	}

	getJSON(t, srv, "/api/catalogs/shelf?expanded=maybe", http.StatusBadRequest, nil)
	getJSON(t, srv, "/api/catalogs/vlog", http.StatusNotFound, nil)
}

func TestListFacets(t *testing.T) {
	srv := newTestServer(t)
	var body struct {
		Facets []string `json:"facets"`
	}
	getJSON(t, srv, "/api/catalogs/lab/facets", http.StatusOK, &body)
	if len(body.Facets) < 2 || body.Facets[0] != catalog.AllFacet {
		t.Fatalf("unexpected facets %v", body.Facets)
	}
}

func TestGetRecord(t *testing.T) {
	srv := newTestServer(t)
	var d struct {
		Catalog    string   `json:"catalog"`
		Paragraphs []string `json:"paragraphs"`
		BodyHTML   string   `json:"bodyHtml"`
	}
	getJSON(t, srv, "/api/catalogs/shelf/collage-city", http.StatusOK, &d)
	if d.Catalog != catalog.Shelf || len(d.Paragraphs) == 0 || !strings.Contains(d.BodyHTML, "<p>") {
		t.Fatalf("unexpected record %+v", d)
	}
	getJSON(t, srv, "/api/catalogs/shelf/nope", http.StatusNotFound, nil)
}

func TestGalleryStop(t *testing.T) {
	srv := newTestServer(t)
	var stop app.GalleryStop
	getJSON(t, srv, "/api/gallery/0", http.StatusOK, &stop)
	if stop.HasPrev || !stop.HasNext || stop.Total == 0 {
		t.Fatalf("unexpected first stop %+v", stop)
	}
	getJSON(t, srv, "/api/gallery/abc", http.StatusBadRequest, nil)
	getJSON(t, srv, "/api/gallery/99", http.StatusNotFound, nil)
}

func TestRunnerShutsDownOnCancel(t *testing.T) {
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- Runner{
			Service:     app.NewService(lib),
			Addr:        "127.0.0.1:0",
			Log:         zerolog.Nop(),
			OnListening: func(a net.Addr) { addrCh <- a },
		}.Do(ctx)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", addr))
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runner returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("runner did not stop")
	}
}

type brokenListener struct{ net.Listener }

func (brokenListener) Accept() (net.Conn, error) { return nil, errors.New("listener broken") }

type lockedBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServeErrorDetachesShutdown(t *testing.T) {
	lib, err := content.Load(embedded.FS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	logs := &lockedBuffer{}
	r := Runner{Service: app.NewService(lib), Log: zerolog.New(logs)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := r.serve(ctx, brokenListener{ln}); err == nil || !strings.Contains(err.Error(), "listener broken") {
		t.Fatalf("expected the accept error, got %v", err)
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	if strings.Contains(logs.String(), "shutting down") {
		t.Fatalf("shutdown hook still ran after serve returned: %s", logs.String())
	}
}
