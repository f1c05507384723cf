package usecase

import (
	"context"
	"sync"
	"time"

	"cleanpro-web/pkg/logger"
)

// FormStore keeps one ContactForm per visitor, keyed by an opaque form id.
// Forms untouched for longer than the TTL are dropped by Sweep.
type FormStore struct {
	mu    sync.Mutex
	forms map[string]*ContactForm
	ttl   time.Duration
	build func() *ContactForm
	now   func() time.Time
}

func NewFormStore(ttl time.Duration, build func() *ContactForm) *FormStore {
	return &FormStore{
		forms: make(map[string]*ContactForm),
		ttl:   ttl,
		build: build,
		now:   time.Now,
	}
}

// Get returns the form for id, creating an idle one on first use.
func (s *FormStore) Get(id string) *ContactForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.getLocked(id)
	f.touch(0)
	return f
}

// Acquire is Get for callers about to use the form: Sweep leaves it alone until
// release is called. release is safe to call more than once.
func (s *FormStore) Acquire(id string) (f *ContactForm, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f = s.getLocked(id)
	f.touch(1)
	var once sync.Once
	return f, func() { once.Do(func() { f.touch(-1) }) }
}

func (s *FormStore) getLocked(id string) *ContactForm {
	if f, ok := s.forms[id]; ok {
		return f
	}
	f := s.build()
	s.forms[id] = f
	return f
}

// Lookup returns the form for id without creating it.
func (s *FormStore) Lookup(id string) (*ContactForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.forms[id]
	return f, ok
}

func (s *FormStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep removes expired forms and returns how many were dropped.
// A form with a submission in flight, or one that is acquired, is never removed.
func (s *FormStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, f := range s.forms {
		seen, idle := f.idleSince()
		if idle && seen.Before(cutoff) {
			delete(s.forms, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *FormStore) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Log.Debug("swept idle contact forms", "removed", n, "remaining", s.Len())
			}
		}
	}
}
