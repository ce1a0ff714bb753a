package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache used when no Redis address is configured,
// and as the deterministic seam in tests.
type Memory struct {
	mu  sync.RWMutex
	m   map[string]entry
	now func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		m:   make(map[string]entry),
		now: time.Now,
	}
}

// NewMemoryWithClock lets tests drive expiry without real time passing.
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		m:   make(map[string]entry),
		now: now,
	}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, false, nil
	}

	return e.value, true, nil
}

func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.m[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()

	return nil
}

func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()

	return nil
}
