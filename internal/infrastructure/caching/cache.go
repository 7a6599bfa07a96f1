// Package caching provides in-memory caching for parsed builder projects and
// rendered page HTML.
//
// Locking: Manager.mu guards both maps. Methods never call other public
// methods while holding the lock, so there is no lock ordering to violate.
package caching

import (
	"sync"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/builder"
	"github.com/pagesmith/pagesmith-go/pkg/config"
)

type projectEntry struct {
	project   *builder.ProjectData
	expiresAt time.Time
}

type htmlEntry struct {
	html      string
	expiresAt time.Time
}

// Manager coordinates the content and HTML caches.
type Manager struct {
	mu       sync.RWMutex
	projects map[string]*projectEntry // keyed by project slug
	html     map[string]*htmlEntry    // keyed by project slug

	projectTTL time.Duration
	htmlTTL    time.Duration
}

// NewManager creates an empty cache manager with TTLs from config.
func NewManager() *Manager {
	return &Manager{
		projects:   make(map[string]*projectEntry),
		html:       make(map[string]*htmlEntry),
		projectTTL: config.ContentCacheTTL,
		htmlTTL:    config.HTMLCacheTTL,
	}
}

// GetProject returns the cached parsed project for a slug.
func (m *Manager) GetProject(slug string) (*builder.ProjectData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.projects[slug]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.project, true
}

// SetProject caches a parsed project for a slug.
func (m *Manager) SetProject(slug string, project *builder.ProjectData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[slug] = &projectEntry{project: project, expiresAt: time.Now().Add(m.projectTTL)}
}

// GetHTML returns the cached rendered page HTML for a slug.
func (m *Manager) GetHTML(slug string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.html[slug]
	if !exists || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.html, true
}

// SetHTML caches the rendered page HTML for a slug.
func (m *Manager) SetHTML(slug, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.html[slug] = &htmlEntry{html: html, expiresAt: time.Now().Add(m.htmlTTL)}
}

// Invalidate drops both caches for a slug. Called on every project save so
// editors never see stale renders.
func (m *Manager) Invalidate(slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, slug)
	delete(m.html, slug)
}

// InvalidateHTML drops only the rendered-HTML entry for a slug. Editor
// sessions use it: they mutate the cached project in place, so the parsed
// project must stay while renders of the old state go.
func (m *Manager) InvalidateHTML(slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.html, slug)
}

// Cleanup evicts expired entries.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for slug, entry := range m.projects {
		if now.After(entry.expiresAt) {
			delete(m.projects, slug)
		}
	}
	for slug, entry := range m.html {
		if now.After(entry.expiresAt) {
			delete(m.html, slug)
		}
	}
}

// StartCleanupRoutine runs Cleanup on the configured interval until stop is
// closed.
func StartCleanupRoutine(m *Manager, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(config.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Cleanup()
			case <-stop:
				return
			}
		}
	}()
}
