// Package navigation derives which section or route should be highlighted.
//
// Links marks the active route when pages render. ScrollSpy and ScrollTarget are
// the reference model of the category scroll-spy that static/js/site.js runs in
// the browser; the page handlers pass DefaultBand and HeaderOffset to that script
// through data attributes, and the tests here pin the behaviour the script mirrors.
package navigation

import (
	"sync"
)

// HeaderOffset is the height of the sticky header in CSS pixels.
const HeaderOffset = 80

// Bounds is a section's vertical extent in document coordinates.
type Bounds struct {
	Top    float64
	Bottom float64
}

// Viewport is the visible window: its scroll offset and height.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Band is the reading-focus region, given as fractions of the viewport height
// cut from the top and from the bottom.
type Band struct {
	TopMargin    float64
	BottomMargin float64
}

// DefaultBand keeps the strip from 20% to 30% of the viewport height.
var DefaultBand = Band{TopMargin: 0.20, BottomMargin: 0.70}

// Range returns the band's document coordinates for vp.
func (b Band) Range(vp Viewport) (top, bottom float64) {
	top = vp.ScrollY + vp.Height*b.TopMargin
	bottom = vp.ScrollY + vp.Height*(1-b.BottomMargin)
	return top, bottom
}

// Entry is delivered to an observer whenever its section enters or leaves the band.
type Entry struct {
	SectionID    string
	Intersecting bool
}

type section struct {
	id           string
	bounds       Bounds
	seq          uint64
	onChange     func(Entry)
	intersecting bool
}

// ScrollSpy tracks observed sections and picks the active one. site.js implements
// the same rules over IntersectionObserver. When several
// sections intersect the band the topmost wins, then the one observed first.
// When none intersect, the previous active section is kept.
type ScrollSpy struct {
	mu       sync.Mutex
	band     Band
	sections map[string]*section
	seq      uint64
	active   string
}

// NewScrollSpy returns a spy using band.
func NewScrollSpy(band Band) *ScrollSpy {
	return &ScrollSpy{
		band:     band,
		sections: make(map[string]*section),
	}
}

// Observe starts tracking a section. Observing an id again replaces the
// earlier registration. The returned func stops tracking; it is safe to call
// more than once.
func (s *ScrollSpy) Observe(sectionID string, bounds Bounds, onChange func(Entry)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	sec := &section{id: sectionID, bounds: bounds, seq: s.seq, onChange: onChange}
	s.sections[sectionID] = sec

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if cur, ok := s.sections[sectionID]; ok && cur == sec {
				delete(s.sections, sectionID)
				if s.active == sectionID {
					s.active = ""
				}
			}
		})
	}
}

// SetBounds updates a section's extent after a layout change.
func (s *ScrollSpy) SetBounds(sectionID string, bounds Bounds) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.sections[sectionID]
	if ok {
		sec.bounds = bounds
	}
	return ok
}

// Update evaluates every section against vp, notifies observers whose state
// changed and returns the active section id ("" when nothing has been active yet).
func (s *ScrollSpy) Update(vp Viewport) string {
	s.mu.Lock()
	top, bottom := s.band.Range(vp)

	var (
		winner  *section
		changed []func()
	)
	for _, sec := range s.sections {
		hit := sec.bounds.Top < bottom && sec.bounds.Bottom > top
		if hit != sec.intersecting {
			sec.intersecting = hit
			if sec.onChange != nil {
				cb, entry := sec.onChange, Entry{SectionID: sec.id, Intersecting: hit}
				changed = append(changed, func() { cb(entry) })
			}
		}
		if hit && (winner == nil || above(sec, winner)) {
			winner = sec
		}
	}
	if winner != nil {
		s.active = winner.id
	}
	active := s.active
	s.mu.Unlock()

	for _, notify := range changed {
		notify()
	}
	return active
}

// Active returns the last computed active section id.
func (s *ScrollSpy) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func above(a, b *section) bool {
	if a.bounds.Top != b.bounds.Top {
		return a.bounds.Top < b.bounds.Top
	}
	return a.seq < b.seq
}

// ScrollTarget is the scroll offset that brings a section's top just below a
// sticky header of height headerOffset.
func ScrollTarget(b Bounds, headerOffset float64) float64 {
	return max(b.Top-headerOffset, 0)
}
