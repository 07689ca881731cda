package server

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/page"
)

// pageSession is the page a visitor loaded most recently.
type pageSession struct {
	ctrl     *page.Controller
	bus      *page.Bus
	lastSeen time.Time
}

// sessions maps visitor ids to their current page. A new page load replaces
// the previous page; idle pages are dropped after ttl, and the least recently
// seen page is dropped when limit pages are live.
type sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	limit int
	now   func() time.Time
	pages map[string]*pageSession
}

func newSessions(ttl time.Duration, limit int) *sessions {
	return &sessions{
		ttl:   ttl,
		limit: limit,
		now:   time.Now,
		pages: make(map[string]*pageSession),
	}
}

func (s *sessions) get(visitor string) (*pageSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pages[visitor]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(p.lastSeen) > s.ttl {
		delete(s.pages, visitor)
		return nil, false
	}
	p.lastSeen = now
	return p, true
}

func (s *sessions) put(visitor string, p *pageSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, old := range s.pages {
		if now.Sub(old.lastSeen) > s.ttl {
			delete(s.pages, id)
		}
	}
	if _, ok := s.pages[visitor]; !ok && s.limit > 0 {
		for len(s.pages) >= s.limit {
			s.evictOldest()
		}
	}
	p.lastSeen = now
	s.pages[visitor] = p
}

func (s *sessions) evictOldest() {
	var (
		oldest string
		seen   time.Time
	)
	for id, p := range s.pages {
		if oldest == "" || p.lastSeen.Before(seen) {
			oldest, seen = id, p.lastSeen
		}
	}
	delete(s.pages, oldest)
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}
