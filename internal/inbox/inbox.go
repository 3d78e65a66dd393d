// Package inbox serves the mock inbox data source: a JSON file of sample
// emails, parsed once and cached for a configurable TTL.
package inbox

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"mailtriage/internal/models"
)

// Loader reads and caches the mock inbox file
type Loader struct {
	path string
	ttl  time.Duration

	mu       sync.RWMutex
	emails   []models.InboundEmail
	loadedAt time.Time
}

// NewLoader creates a loader for the given file. A zero TTL disables caching.
func NewLoader(path string, ttl time.Duration) *Loader {
	return &Loader{path: path, ttl: ttl}
}

// Load returns the inbox emails, re-reading the file when the cache is stale
func (l *Loader) Load() ([]models.InboundEmail, error) {
	l.mu.RLock()
	if l.emails != nil && time.Since(l.loadedAt) < l.ttl {
		emails := l.emails
		l.mu.RUnlock()
		return emails, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another request may have refreshed while we waited for the lock
	if l.emails != nil && time.Since(l.loadedAt) < l.ttl {
		return l.emails, nil
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock inbox: %w", err)
	}

	var emails []models.InboundEmail
	if err := json.Unmarshal(raw, &emails); err != nil {
		return nil, fmt.Errorf("failed to parse mock inbox: %w", err)
	}

	l.emails = emails
	l.loadedAt = time.Now()
	return emails, nil
}
