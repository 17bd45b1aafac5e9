package fielddefs

import (
	"sync"

	"github.com/google/uuid"
)

// attrCache holds computed attribute maps keyed by schema identity, so
// distinct schemas never see each other's results. One instance lives for
// the process.
type attrCache struct {
	mu sync.RWMutex
	m  map[uuid.UUID]map[string]string
}

var attributeCache = &attrCache{m: make(map[uuid.UUID]map[string]string)}

func (c *attrCache) get(id uuid.UUID) (map[string]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	attrs, ok := c.m[id]
	if !ok {
		return nil, false
	}
	return copyStringMap(attrs), true
}

func (c *attrCache) set(id uuid.UUID, attrs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[id] = attrs
}

func (c *attrCache) drop(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, id)
}

func (c *attrCache) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[uuid.UUID]map[string]string)
}

// FlushAttributeCache drops every cached attribute map; each schema
// recomputes on its next Attributes call. Intended for test isolation and
// for hosts that mutate fields after construction.
func FlushAttributeCache() {
	attributeCache.flush()
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
