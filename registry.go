package fielddefs

// TraitRegistry maps trait-kind names to their category and default
// provider. Every schema owns a private instance: registrations made on one
// schema are invisible to every other schema, even when both run the same
// default-chain callback. The registry is owned by a single goroutine along
// with its schema and is not synchronized.
type TraitRegistry struct {
	kinds map[string]*traitKind
	order []string
}

// NewTraitRegistry creates an empty registry.
func NewTraitRegistry() *TraitRegistry {
	return &TraitRegistry{
		kinds: make(map[string]*traitKind),
	}
}

// RegisterProc installs name as a callable-valued trait kind, or replaces
// the provider when the kind already exists with the same category.
func (r *TraitRegistry) RegisterProc(name string, p Provider) error {
	return r.register(name, CategoryProc, p, nil)
}

// RegisterArg installs name as a plain-value trait kind, or replaces the
// provider when the kind already exists with the same category.
func (r *TraitRegistry) RegisterArg(name string, p Provider) error {
	return r.register(name, CategoryArg, p, nil)
}

// RegisterMixed installs name as a value+callable trait kind, or replaces
// the provider when the kind already exists with the same category.
func (r *TraitRegistry) RegisterMixed(name string, p PairProvider) error {
	return r.register(name, CategoryMixed, nil, p)
}

func (r *TraitRegistry) register(name string, cat TraitCategory, p Provider, pp PairProvider) error {
	if existing, ok := r.kinds[name]; ok {
		if existing.category != cat {
			return &ConflictError{Kind: name, Registered: existing.category, Attempted: cat}
		}
		// Later layers replace the provider, they never stack.
		existing.provider = p
		existing.pair = pp
		return nil
	}
	r.kinds[name] = &traitKind{name: name, category: cat, provider: p, pair: pp}
	r.order = append(r.order, name)
	return nil
}

// Has reports whether a kind is registered.
func (r *TraitRegistry) Has(name string) bool {
	_, ok := r.kinds[name]
	return ok
}

// Category returns the category a kind was installed with.
func (r *TraitRegistry) Category(name string) (TraitCategory, bool) {
	k, ok := r.kinds[name]
	if !ok {
		return 0, false
	}
	return k.category, true
}

// Kinds returns every registered kind name in registration order.
func (r *TraitRegistry) Kinds() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered kinds.
func (r *TraitRegistry) Len() int {
	return len(r.kinds)
}

func (r *TraitRegistry) lookup(name string) (*traitKind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}
