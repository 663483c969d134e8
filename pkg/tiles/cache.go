// Package tiles fetches raster map tiles, caches them on disk and renders them
// as half-block terminal art.
package tiles

import (
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/folio/pkg/geo"
)

// Cache stores tile images under <base>/<style>/<z>/<x>/<y>.
type Cache struct {
	d *diskv.Diskv
}

// NewCache opens a tile cache rooted at basePath.
func NewCache(basePath string) *Cache {
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      8 * 1024 * 1024, // 8MB
	})}
}

// Get returns the cached tile, if any.
func (c *Cache) Get(style string, t geo.Tile) ([]byte, bool) {
	key := toKey(style, t)
	if !c.d.Has(key) {
		return nil, false
	}
	data, err := c.d.Read(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores a tile image.
func (c *Cache) Put(style string, t geo.Tile, data []byte) error {
	if err := c.d.Write(toKey(style, t), data); err != nil {
		return fmt.Errorf("tiles: cache %s %s: %w", style, t, err)
	}
	return nil
}

// Len counts the cached tiles.
func (c *Cache) Len() int {
	n := 0
	for range c.d.Keys(nil) {
		n++
	}
	return n
}

// toKey makes `style-z-x-y`
func toKey(style string, t geo.Tile) string {
	return fmt.Sprintf("%s-%d-%d-%d", style, t.Z, t.X, t.Y)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1] + ".png",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), strings.TrimSuffix(pathKey.FileName, ".png"))
}
