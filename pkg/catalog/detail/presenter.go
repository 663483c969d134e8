// Package detail presents a single catalog record, either as a quick summary
// overlay or as a full reading view with scroll progress.
package detail

// Mode is the presentation of the open record.
type Mode int

const (
	ModeNone Mode = iota
	ModeQuick
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeQuick:
		return "quick"
	case ModeFull:
		return "full"
	default:
		return "none"
	}
}

// Presenter holds at most one open record. Opening another record replaces
// the current one and starts it at the top.
type Presenter[T any] struct {
	record T
	mode   Mode
	scroll Scroll
}

// Open shows record in mode. ModeNone is the same as Close.
func (p *Presenter[T]) Open(record T, mode Mode) {
	if mode == ModeNone {
		p.Close()
		return
	}
	p.record = record
	p.mode = mode
	p.scroll.offset = 0
	p.scroll.contentHeight = 0
}

// Close dismisses the open record, if any.
func (p *Presenter[T]) Close() {
	var zero T
	p.record = zero
	p.mode = ModeNone
	p.scroll.offset = 0
	p.scroll.contentHeight = 0
}

// Mode returns the current presentation.
func (p *Presenter[T]) Mode() Mode {
	return p.mode
}

// IsOpen reports whether a record is shown.
func (p *Presenter[T]) IsOpen() bool {
	return p.mode != ModeNone
}

// Record returns the open record.
func (p *Presenter[T]) Record() (T, bool) {
	return p.record, p.mode != ModeNone
}

// Scroll exposes the reading position of the full view.
func (p *Presenter[T]) Scroll() *Scroll {
	return &p.scroll
}

// Progress is the reading progress of the open record, 0 when closed.
func (p *Presenter[T]) Progress() float64 {
	if p.mode != ModeFull {
		return 0
	}
	return p.scroll.Progress()
}
