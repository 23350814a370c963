// Package session holds the calling layer's view of the last generated
// itinerary.
package session

import (
	"sync"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// ResultCache keeps the most recent successful SelectionResult. It is set on
// successful generation and cleared on a configuration error or an empty
// result.
type ResultCache struct {
	mu     sync.RWMutex
	result *models.SelectionResult
}

func (c *ResultCache) Set(result *models.SelectionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = result
}

func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = nil
}

// Get returns the cached result; ok is false when nothing is cached.
func (c *ResultCache) Get() (result *models.SelectionResult, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.result != nil
}
