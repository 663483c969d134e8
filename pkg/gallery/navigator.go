// Package gallery drives the map overlay of the photo log: an index over the
// whole gallery and the map instance scoped to the overlay's lifetime.
package gallery

import "fmt"

// Navigator is the position inside the full, unfiltered gallery.
type Navigator struct {
	current int
	total   int
}

// NewNavigator starts at start, clamped into [0, total).
func NewNavigator(total, start int) *Navigator {
	n := &Navigator{total: total}
	n.Jump(start)
	if n.current >= total || n.current < 0 {
		n.current = 0
	}
	return n
}

// Index is the current position.
func (n *Navigator) Index() int {
	return n.current
}

// Total is the gallery size.
func (n *Navigator) Total() int {
	return n.total
}

// CanPrev reports whether Prev would move.
func (n *Navigator) CanPrev() bool {
	return n.current > 0
}

// CanNext reports whether Next would move.
func (n *Navigator) CanNext() bool {
	return n.current < n.total-1
}

// Prev steps back; it is a no-op on the first item.
func (n *Navigator) Prev() bool {
	if !n.CanPrev() {
		return false
	}
	n.current--
	return true
}

// Next steps forward; it is a no-op on the last item.
func (n *Navigator) Next() bool {
	if !n.CanNext() {
		return false
	}
	n.current++
	return true
}

// Jump selects i if it is a valid index and reports whether it moved.
func (n *Navigator) Jump(i int) bool {
	if i < 0 || i >= n.total || i == n.current {
		return false
	}
	n.current = i
	return true
}

// HandleKey maps left, right and esc onto the navigator. closed is true for
// esc; the caller owns dismissing the overlay.
func (n *Navigator) HandleKey(key string) (moved, closed bool) {
	switch key {
	case "left":
		return n.Prev(), false
	case "right":
		return n.Next(), false
	case "esc":
		return false, true
	}
	return false, false
}

// Counter renders the position as shown in the overlay header.
func (n *Navigator) Counter() string {
	return fmt.Sprintf("LOG ENTRY %d OF %d", n.current+1, n.total)
}
