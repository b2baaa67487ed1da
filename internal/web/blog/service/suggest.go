package service

import (
	"context"
	"sync"
	"time"

	"github.com/tradinghub/blog-api/internal/web/blog/model"
)

// defaultSuggestDebounce quiet period before recomputing suggestions
const defaultSuggestDebounce = 250 * time.Millisecond

// SearchFunc computes suggestions for a query
type SearchFunc func(ctx context.Context, query string) ([]*model.Post, error)

// Suggester recomputes suggestions after a quiet period. Each new
// query supersedes any pending recomputation for the same field, so
// only the latest query's results are ever delivered.
type Suggester struct {
	mu     sync.Mutex
	delay  time.Duration
	search SearchFunc
	timer  *time.Timer
	gen    uint64
}

// NewSuggester create a suggester; delay <= 0 falls back to the
// default debounce window.
func NewSuggester(delay time.Duration, search SearchFunc) *Suggester {
	if delay <= 0 {
		delay = defaultSuggestDebounce
	}

	return &Suggester{
		delay:  delay,
		search: search,
	}
}

// OnQuery schedule a recomputation for query, superseding any prior
// pending one. deliver runs on the timer goroutine once the quiet
// period elapses without a newer query.
func (s *Suggester) OnQuery(ctx context.Context, query string,
	deliver func(results []*model.Post, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		// a newer query may have fired between Stop and here
		s.mu.Lock()
		stale := gen != s.gen
		s.mu.Unlock()
		if stale {
			return
		}

		deliver(s.search(ctx, query))
	})
}

// Stop cancel any pending recomputation
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
