// Package carousel implements the bounded index behind the testimonial slider.
package carousel

// Breakpoint names how many cards fit side by side.
type Breakpoint string

const (
	Mobile  Breakpoint = "mobile"
	Tablet  Breakpoint = "tablet"
	Desktop Breakpoint = "desktop"
)

var visibleByBreakpoint = map[Breakpoint]int{
	Mobile:  1,
	Tablet:  2,
	Desktop: 3,
}

// VisibleFor returns the number of visible cards for a breakpoint, defaulting to desktop.
func VisibleFor(b Breakpoint) int {
	if n, ok := visibleByBreakpoint[b]; ok {
		return n
	}
	return visibleByBreakpoint[Desktop]
}

// State keeps index within [0, MaxIndex()]. The zero value is an empty carousel.
type State struct {
	index        int
	itemCount    int
	visibleCount int
}

// New returns a carousel positioned at 0.
func New(itemCount, visibleCount int) *State {
	s := &State{}
	s.itemCount = max(itemCount, 0)
	s.visibleCount = max(visibleCount, 1)
	return s
}

// MaxIndex is itemCount - visibleCount, never below 0.
func (s *State) MaxIndex() int {
	return max(s.itemCount-s.visibleCount, 0)
}

// Index returns the current position.
func (s *State) Index() int { return s.index }

// ItemCount returns the number of items.
func (s *State) ItemCount() int { return s.itemCount }

// VisibleCount returns the number of items shown at once.
func (s *State) VisibleCount() int { return s.visibleCount }

// Next advances by one, stopping at MaxIndex.
func (s *State) Next() int {
	s.index = min(s.index+1, s.MaxIndex())
	return s.index
}

// Prev steps back by one, stopping at 0.
func (s *State) Prev() int {
	s.index = max(s.index-1, 0)
	return s.index
}

// GoTo jumps to i clamped into range.
func (s *State) GoTo(i int) int {
	s.index = s.clamp(i)
	return s.index
}

// SetItemCount changes the number of items and re-clamps the index.
func (s *State) SetItemCount(n int) {
	s.itemCount = max(n, 0)
	s.index = s.clamp(s.index)
}

// SetVisibleCount changes how many items are shown (e.g. on a breakpoint change) and re-clamps.
func (s *State) SetVisibleCount(n int) {
	s.visibleCount = max(n, 1)
	s.index = s.clamp(s.index)
}

// CanPrev reports whether Prev would move.
func (s *State) CanPrev() bool { return s.index > 0 }

// CanNext reports whether Next would move.
func (s *State) CanNext() bool { return s.index < s.MaxIndex() }

// DotActive reports whether the pager dot for item i is highlighted. Items past
// MaxIndex can never be the first visible card, so they light up together once
// the carousel reaches the end.
func (s *State) DotActive(i int) bool {
	last := s.MaxIndex()
	return s.index == i || (i > last && s.index >= last)
}

func (s *State) clamp(i int) int {
	return min(max(i, 0), s.MaxIndex())
}
