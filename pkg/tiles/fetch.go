package tiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/geo"
)

const maxTileBytes = 1 << 20

// ErrDisabled is returned when tile fetching is switched off.
var ErrDisabled = errors.New("tiles: fetching disabled")

// Fetcher downloads tiles from a {s}/{z}/{x}/{y} template, consulting the
// cache first when one is set.
type Fetcher struct {
	Template  string
	Client    *http.Client
	Cache     *Cache
	UserAgent string
	Disabled  bool
	Log       zerolog.Logger
}

// NewFetcher returns a fetcher with a bounded HTTP client.
func NewFetcher(template string, cache *Cache) *Fetcher {
	if template == "" {
		template = geo.LightTiles
	}
	return &Fetcher{
		Template:  template,
		Client:    &http.Client{Timeout: 10 * time.Second},
		Cache:     cache,
		UserAgent: "folio (+https://tableflip.dev/folio)",
		Log:       zerolog.Nop(),
	}
}

// Style names the tile set for cache keys.
func (f *Fetcher) Style() string {
	if strings.Contains(f.Template, "dark") {
		return "dark"
	}
	return "light"
}

// WithTemplate returns a copy of f using another template and the same cache.
func (f *Fetcher) WithTemplate(template string) *Fetcher {
	c := *f
	c.Template = template
	return &c
}

// Fetch returns the PNG bytes for t.
func (f *Fetcher) Fetch(ctx context.Context, t geo.Tile) ([]byte, error) {
	if f.Disabled {
		return nil, ErrDisabled
	}
	style := f.Style()
	if f.Cache != nil {
		if data, ok := f.Cache.Get(style, t); ok {
			f.Log.Debug().Str("tile", t.String()).Msg("tile cache hit")
			return data, nil
		}
	}

	url := geo.TileURL(f.Template, t)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("tiles: request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tiles: fetch %s: %w", t, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tiles: fetch %s: unexpected status %s", t, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTileBytes))
	if err != nil {
		return nil, fmt.Errorf("tiles: read %s: %w", t, err)
	}
	f.Log.Debug().Str("tile", t.String()).Int("bytes", len(data)).Msg("tile fetched")

	if f.Cache != nil {
		if err := f.Cache.Put(style, t, data); err != nil {
			f.Log.Warn().Err(err).Msg("tile cache write failed")
		}
	}
	return data, nil
}
