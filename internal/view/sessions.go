package view

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Zachkp/andre-portfolio/internal/i18n"
)

// Sessions keeps one State per visitor in memory. At most limit visitors
// are held; the least recently used is dropped first, and a visitor whose
// state has not changed for longer than ttl starts over. A state equal to
// the first-visit state is not stored at all.
type Sessions struct {
	mu       sync.Mutex
	states   *expirable.LRU[string, State]
	language i18n.Language
}

// NewSessions creates an empty store whose new visitors start in lang.
func NewSessions(lang i18n.Language, limit int, ttl time.Duration) *Sessions {
	return &Sessions{
		states:   expirable.NewLRU[string, State](limit, nil, ttl),
		language: lang,
	}
}

// Get returns the state for id, or the first-visit state if id is unknown.
func (s *Sessions) Get(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states.Get(id); ok {
		return st
	}
	return NewState(s.language)
}

// Update applies fn to the state for id and stores the result.
func (s *Sessions) Update(id string, fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states.Get(id)
	if !ok {
		st = NewState(s.language)
	}
	fn(&st)
	if st == NewState(s.language) {
		s.states.Remove(id)
	} else {
		s.states.Add(id, st)
	}
	return st
}

// Len reports how many visitors currently hold a non-default state.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states.Len()
}
