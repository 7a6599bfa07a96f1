package caching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

func TestManagerInvalidateScopes(t *testing.T) {
	m := NewManager()
	project := &builder.ProjectData{}
	m.SetProject("home", project)
	m.SetHTML("home", "<html></html>")

	// InvalidateHTML keeps the parsed project warm
	m.InvalidateHTML("home")
	_, ok := m.GetHTML("home")
	assert.False(t, ok)
	got, ok := m.GetProject("home")
	require.True(t, ok)
	assert.Same(t, project, got)

	// Invalidate drops both
	m.SetHTML("home", "<html></html>")
	m.Invalidate("home")
	_, ok = m.GetHTML("home")
	assert.False(t, ok)
	_, ok = m.GetProject("home")
	assert.False(t, ok)
}

func TestCleanupEvictsExpiredEntries(t *testing.T) {
	m := NewManager()
	m.htmlTTL = -time.Second
	m.SetHTML("stale", "<html></html>")
	m.SetProject("fresh", &builder.ProjectData{})

	m.Cleanup()

	m.mu.RLock()
	defer m.mu.RUnlock()
	assert.Empty(t, m.html)
	assert.Len(t, m.projects, 1)
}

func TestStartCleanupRoutineReturnsImmediately(t *testing.T) {
	orig := config.CleanupInterval
	t.Cleanup(func() { config.CleanupInterval = orig })
	config.CleanupInterval = 5 * time.Millisecond

	m := NewManager()
	m.htmlTTL = -time.Second
	m.SetHTML("stale", "<html></html>")

	stop := make(chan struct{})
	defer close(stop)

	// the routine spawns its own goroutine; the call must not block
	done := make(chan struct{})
	go func() {
		StartCleanupRoutine(m, stop)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartCleanupRoutine blocked")
	}

	require.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return len(m.html) == 0
	}, time.Second, 5*time.Millisecond)
}
