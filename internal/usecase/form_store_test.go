package usecase

import (
	"context"
	"testing"
	"time"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(c *clock) *FormStore {
	v := validation.New(catalog.MustDefault())
	s := NewFormStore(30*time.Minute, func() *ContactForm {
		return NewContactForm(FormConfig{Now: c.now}, nil, v)
	})
	s.now = c.now
	return s
}

func TestFormStoreIsolatesInstances(t *testing.T) {
	s := newTestStore(&clock{t: time.Now()})

	a := s.Get("a")
	b := s.Get("b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, s.Get("a"))

	_, ok := s.Lookup("c")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestFormStoreSweepDropsExpiredForms(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	s := newTestStore(c)

	s.Get("old")
	c.t = c.t.Add(20 * time.Minute)
	s.Get("fresh")
	c.t = c.t.Add(15 * time.Minute)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Lookup("old")
	assert.False(t, ok)
	_, ok = s.Lookup("fresh")
	assert.True(t, ok)
}

func TestFormStoreSweepKeepsSubmittingForms(t *testing.T) {
	c := &clock{t: time.Now()}
	s := newTestStore(c)

	f := s.Get("busy")
	f.mu.Lock()
	f.outcome = domain.SubmissionOutcome{Status: domain.StatusSubmitting}
	f.mu.Unlock()

	c.t = c.t.Add(time.Hour)
	assert.Zero(t, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestFormStoreRunStopsWithContext(t *testing.T) {
	s := newTestStore(&clock{t: time.Now()})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestFormStoreKeepsAcquiredFormThroughSubmit(t *testing.T) {
	c := &clock{t: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	s := newTestStore(c)
	s.ttl = 0

	f, release := s.Acquire("a")
	c.t = c.t.Add(time.Hour)
	assert.Zero(t, s.Sweep())

	out, err := f.Submit(context.Background(), domain.ContactRequest{
		Name:    "Jane Wanjiru",
		Email:   "jane@example.com",
		Service: domain.GeneralInquiry,
		Message: "Please quote for a three bedroom deep clean.",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, out.Status)

	release()
	release()
	kept, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Same(t, f, kept)
	assert.Equal(t, domain.StatusSuccess, kept.Outcome().Status)

	c.t = c.t.Add(time.Hour)
	assert.Equal(t, 1, s.Sweep())
}
