package fielddefs

import "sync"

// DefaultFunc is one layer of the default chain. It runs against each new
// schema after the built-ins are seeded and may register trait kinds or
// declare fields, exactly as a declaration block would.
type DefaultFunc func(*Schema)

// DefaultChain is an ordered sequence of registration callbacks replayed
// FIFO at every schema construction. Extending and snapshotting may happen
// from multiple goroutines.
type DefaultChain struct {
	mu    sync.Mutex
	funcs []DefaultFunc
}

// NewDefaultChain creates an empty chain.
func NewDefaultChain() *DefaultChain {
	return &DefaultChain{}
}

// Extend appends a callback. Callbacks run in registration order, earliest
// first; a later callback re-registering a kind name replaces the earlier
// provider rather than stacking on it.
func (c *DefaultChain) Extend(fn DefaultFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, fn)
}

// Snapshot returns a copy of the chain for replay. Extend calls made after
// a snapshot never alter schemas built from it.
func (c *DefaultChain) Snapshot() []DefaultFunc {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DefaultFunc, len(c.funcs))
	copy(out, c.funcs)
	return out
}

// Reset empties the chain. Intended for test isolation.
func (c *DefaultChain) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = nil
}

// Len returns the number of registered callbacks.
func (c *DefaultChain) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.funcs)
}

// globalDefaults is the process-wide chain applied to every schema.
var globalDefaults = NewDefaultChain()

// ExtendDefaults appends a callback to the process-wide default chain. The
// callback runs against every schema constructed afterward; schemas already
// built are untouched.
func ExtendDefaults(fn DefaultFunc) {
	globalDefaults.Extend(fn)
}

// ResetDefaults empties the process-wide default chain. Intended for test
// isolation; schemas already built keep their registrations.
func ResetDefaults() {
	globalDefaults.Reset()
}
