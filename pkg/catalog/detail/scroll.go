package detail

// Progress converts a scroll offset into a percentage of the scrollable
// height. Content that fits in the view reads as 0.
func Progress(offset, contentHeight, viewHeight int) float64 {
	scrollable := contentHeight - viewHeight
	if scrollable <= 0 {
		return 0
	}
	p := float64(offset) / float64(scrollable) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Scroll tracks the vertical position of a document inside a view.
type Scroll struct {
	offset        int
	contentHeight int
	viewHeight    int
}

// SetViewport records the rendered content height and the visible height,
// keeping the offset inside the new range.
func (s *Scroll) SetViewport(contentHeight, viewHeight int) {
	if contentHeight < 0 {
		contentHeight = 0
	}
	if viewHeight < 0 {
		viewHeight = 0
	}
	s.contentHeight = contentHeight
	s.viewHeight = viewHeight
	s.offset = clamp(s.offset, s.max())
}

// ScrollBy moves the offset by delta rows and reports whether it changed.
func (s *Scroll) ScrollBy(delta int) bool {
	next := clamp(s.offset+delta, s.max())
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// Top jumps to the first row.
func (s *Scroll) Top() {
	s.offset = 0
}

// Bottom jumps to the last scrollable row.
func (s *Scroll) Bottom() {
	s.offset = s.max()
}

// Offset is the first visible row.
func (s *Scroll) Offset() int {
	return s.offset
}

// ViewHeight is the last height passed to SetViewport.
func (s *Scroll) ViewHeight() int {
	return s.viewHeight
}

// Progress reports the current position as a percentage.
func (s *Scroll) Progress() float64 {
	return Progress(s.offset, s.contentHeight, s.viewHeight)
}

func (s *Scroll) max() int {
	return s.contentHeight - s.viewHeight
}

func clamp(offset, max int) int {
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
