package gallery

import (
	"sync"

	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/geo"
)

// Mounts hands out map instances and counts the ones still live.
type Mounts struct {
	mu   sync.Mutex
	live int
	seq  int
}

// Acquire creates a fresh map centred on c. Call Release when the overlay
// unmounts.
func (m *Mounts) Acquire(c content.Coordinates) *MapView {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.live++
	m.seq++
	return &MapView{
		owner:  m,
		id:     m.seq,
		zoom:   geo.DefaultZoom,
		center: c,
		marker: c,
	}
}

// Live is the number of acquired, unreleased maps.
func (m *Mounts) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

func (m *Mounts) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.live > 0 {
		m.live--
	}
}

// MapView is one mounted map. Re-centring updates it in place; results of
// work started for an older centre can be discarded by comparing generations.
type MapView struct {
	owner      *Mounts
	id         int
	zoom       int
	center     content.Coordinates
	marker     content.Coordinates
	generation uint64
	released   bool
}

// ID identifies the mount.
func (v *MapView) ID() int {
	return v.id
}

// Zoom is the fixed map zoom.
func (v *MapView) Zoom() int {
	return v.zoom
}

// Center moves the view and marker to lat/lng and returns the new generation.
func (v *MapView) Center(lat, lng float64) uint64 {
	v.center = content.Coordinates{Lat: lat, Lng: lng}
	v.marker = v.center
	v.generation++
	return v.generation
}

// Position returns the view centre and the marker.
func (v *MapView) Position() (center, marker content.Coordinates) {
	return v.center, v.marker
}

// Generation increments on every Center call.
func (v *MapView) Generation() uint64 {
	return v.generation
}

// Current reports whether a result tagged with generation still applies.
func (v *MapView) Current(generation uint64) bool {
	return !v.released && generation == v.generation
}

// Tile returns the tile under the centre and the marker's pixel position in it.
func (v *MapView) Tile() (geo.Tile, geo.Point) {
	return geo.Project(v.center.Lat, v.center.Lng, v.zoom)
}

// Release returns the instance. Further calls are no-ops.
func (v *MapView) Release() {
	if v.released {
		return
	}
	v.released = true
	v.owner.release()
}

// Released reports whether Release was called.
func (v *MapView) Released() bool {
	return v.released
}
