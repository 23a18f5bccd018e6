package view

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zachkp/andre-portfolio/internal/i18n"
)

func TestSessionsDefaultState(t *testing.T) {
	s := NewSessions(i18n.English, 16, time.Hour)
	st := s.Get("missing")
	assert.Equal(t, NewState(i18n.English), st)
	assert.Zero(t, s.Len())
}

func TestSessionsUpdateIsPerVisitor(t *testing.T) {
	s := NewSessions(i18n.German, 16, time.Hour)
	s.Update("a", (*State).ToggleDarkMode)
	s.Update("b", func(st *State) { st.SelectLanguage(i18n.English) })

	assert.True(t, s.Get("a").DarkMode)
	assert.Equal(t, i18n.German, s.Get("a").Language)
	assert.False(t, s.Get("b").DarkMode)
	assert.Equal(t, i18n.English, s.Get("b").Language)
	assert.Equal(t, 2, s.Len())
}

func TestSessionsConcurrentUpdates(t *testing.T) {
	s := NewSessions(i18n.German, 16, time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update(fmt.Sprintf("v%d", i%5), func(st *State) { st.ScrollY++ })
		}(i)
	}
	wg.Wait()

	total := 0.0
	for i := 0; i < 5; i++ {
		total += s.Get(fmt.Sprintf("v%d", i)).ScrollY
	}
	assert.Equal(t, 50.0, total)
}

func TestSessionsAreBounded(t *testing.T) {
	s := NewSessions(i18n.German, 100, time.Hour)
	for i := 0; i < 5000; i++ {
		s.Update(fmt.Sprintf("v%d", i), (*State).ToggleDarkMode)
	}
	assert.Equal(t, 100, s.Len())

	assert.True(t, s.Get("v4999").DarkMode)
	assert.False(t, s.Get("v0").DarkMode, "oldest visitor should have been evicted")
}

func TestSessionsDropDefaultState(t *testing.T) {
	s := NewSessions(i18n.German, 16, time.Hour)
	s.Update("a", (*State).ToggleDarkMode)
	assert.Equal(t, 1, s.Len())

	s.Update("a", (*State).ToggleDarkMode)
	assert.Zero(t, s.Len())
	assert.Equal(t, NewState(i18n.German), s.Get("a"))

	s.Update("b", (*State).CloseLanguageModal)
	assert.Zero(t, s.Len())
}

func TestSessionsExpireWhenIdle(t *testing.T) {
	s := NewSessions(i18n.German, 16, 20*time.Millisecond)
	s.Update("a", (*State).ToggleDarkMode)
	assert.True(t, s.Get("a").DarkMode)

	assert.Eventually(t, func() bool {
		return !s.Get("a").DarkMode
	}, time.Second, 10*time.Millisecond)
}
