package fielddefs

import (
	"fmt"
	"sync"
)

// Registry stores one schema per subject name for hosts that cache their
// schemas centrally. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
	order   []string
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*Schema),
	}
}

// Register stores a schema under its subject name. Registering a second
// schema for the same subject is an error.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	name := s.SubjectName()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("schema already registered for subject %s", name)
	}
	r.schemas[name] = s
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the schema registered for a subject name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// All returns every registered schema in registration order.
func (r *Registry) All() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Schema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemas[name])
	}
	return out
}

// Names returns the registered subject names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of registered schemas.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Clear removes every schema and drops their cached attributes.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.schemas {
		attributeCache.drop(s.id)
	}
	r.schemas = make(map[string]*Schema)
	r.order = nil
}
