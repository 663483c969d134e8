// Package geo holds the slippy-map arithmetic and outbound map links used by
// the gallery.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultZoom is the fixed zoom of the gallery map.
	DefaultZoom = 13
	// TileSize is the edge of a raster tile in pixels.
	TileSize = 256
	// LightTiles and DarkTiles are the CARTO basemaps for each theme.
	LightTiles = "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}.png"
	DarkTiles  = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}.png"

	maxLat = 85.05112878
)

// Subdomains rotate tile requests across the CARTO hosts.
var Subdomains = []string{"a", "b", "c", "d"}

// Tile addresses one raster tile.
type Tile struct {
	Z, X, Y int
}

func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// Point is a position on a tile in pixels.
type Point struct {
	X, Y float64
}

// Project returns the tile containing lat/lng at zoom and the pixel offset
// of the position inside that tile.
func Project(lat, lng float64, zoom int) (Tile, Point) {
	lat = math.Max(-maxLat, math.Min(maxLat, lat))
	n := math.Exp2(float64(zoom))
	x := (lng + 180) / 360 * n
	rad := lat * math.Pi / 180
	y := (1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * n

	tx := int(math.Floor(x))
	ty := int(math.Floor(y))
	limit := int(n) - 1
	tx = clampInt(tx, 0, limit)
	ty = clampInt(ty, 0, limit)
	return Tile{Z: zoom, X: tx, Y: ty}, Point{
		X: clampFloat((x-float64(tx))*TileSize, 0, TileSize),
		Y: clampFloat((y-float64(ty))*TileSize, 0, TileSize),
	}
}

// TileURL expands a {s}/{z}/{x}/{y} template. The subdomain is chosen from
// the tile address so the same tile always maps to the same host.
func TileURL(template string, t Tile) string {
	s := Subdomains[(t.X+t.Y)%len(Subdomains)]
	r := strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(t.Z),
		"{x}", strconv.Itoa(t.X),
		"{y}", strconv.Itoa(t.Y),
	)
	return r.Replace(template)
}

// SatelliteURL links to the location in Google Maps.
func SatelliteURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", formatFloat(lat), formatFloat(lng))
}

// FormatCoords renders a pair with a fixed number of decimals, e.g. "27.96, 85.78".
func FormatCoords(lat, lng float64, decimals int) string {
	return fmt.Sprintf("%.*f, %.*f", decimals, lat, decimals, lng)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
