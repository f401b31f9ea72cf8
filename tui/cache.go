package tui

import "sync"

// textCache holds rendered panel texts keyed by row index
type textCache struct {
	mu    sync.RWMutex
	texts map[int]string
}

func newTextCache() *textCache {
	return &textCache{texts: make(map[int]string)}
}

// get returns the cached text for key, building and storing it on a miss
func (c *textCache) get(key int, build func() string) string {
	c.mu.RLock()
	text, ok := c.texts[key]
	c.mu.RUnlock()
	if ok {
		return text
	}

	text = build()
	c.mu.Lock()
	c.texts[key] = text
	c.mu.Unlock()
	return text
}

func (c *textCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.texts = make(map[int]string)
}

func (c *textCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.texts)
}
