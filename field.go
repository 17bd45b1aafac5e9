package fielddefs

import (
	"fmt"
	"sort"
)

// FieldDef describes one declared field: its label set and its per-trait
// overrides. A field belongs to exactly one schema and resolves provider
// defaults through that schema's trait registry. An override always wins
// over the kind's provider; without one, every access re-runs the provider.
type FieldDef struct {
	name      string
	schema    *Schema
	labels    map[string]struct{}
	overrides map[string]*traitOverride
}

func newFieldDef(name string, s *Schema) *FieldDef {
	return &FieldDef{
		name:      name,
		schema:    s,
		labels:    make(map[string]struct{}),
		overrides: make(map[string]*traitOverride),
	}
}

// Name returns the field name.
func (f *FieldDef) Name() string { return f.name }

// Schema returns the owning schema.
func (f *FieldDef) Schema() *Schema { return f.schema }

// Label adds a label. Labels are a set: duplicate adds are no-ops.
func (f *FieldDef) Label(name string) *FieldDef {
	f.labels[name] = struct{}{}
	return f
}

// HasLabel reports whether the field carries the label.
func (f *FieldDef) HasLabel(name string) bool {
	_, ok := f.labels[name]
	return ok
}

// Labels returns the field's labels, sorted.
func (f *FieldDef) Labels() []string {
	out := make([]string, 0, len(f.labels))
	for l := range f.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// kindFor resolves a registered kind and checks the accessor's category
// against it.
func (f *FieldDef) kindFor(kind string, want TraitCategory) (*traitKind, error) {
	k, ok := f.schema.registry.lookup(kind)
	if !ok {
		return nil, &UnknownTraitError{Kind: kind}
	}
	if k.category != want {
		return nil, &CategoryError{Kind: kind, Want: want, Got: k.category}
	}
	return k, nil
}

// WithProc overrides a callable-valued trait kind for this field. Misuse
// (unknown kind, category mismatch) is recorded on the owning schema and
// leaves the override unset.
func (f *FieldDef) WithProc(kind string, fn any) *FieldDef {
	if _, err := f.kindFor(kind, CategoryProc); err != nil {
		f.schema.record(err)
		return f
	}
	f.overrides[kind] = &traitOverride{proc: fn}
	return f
}

// Proc resolves a callable-valued trait: the field's override when present,
// otherwise the provider's result, computed fresh on every call.
func (f *FieldDef) Proc(kind string) (any, error) {
	k, err := f.kindFor(kind, CategoryProc)
	if err != nil {
		return nil, err
	}
	if o, ok := f.overrides[kind]; ok {
		return o.proc, nil
	}
	if k.provider == nil {
		return nil, nil
	}
	return k.provider(f), nil
}

// WithValue overrides a plain-value trait kind for this field.
func (f *FieldDef) WithValue(kind string, v any) *FieldDef {
	if _, err := f.kindFor(kind, CategoryArg); err != nil {
		f.schema.record(err)
		return f
	}
	f.overrides[kind] = &traitOverride{value: v}
	return f
}

// Value resolves a plain-value trait: override, else the provider's result,
// fresh per call. A registered kind with no provider resolves to nil.
func (f *FieldDef) Value(kind string) (any, error) {
	k, err := f.kindFor(kind, CategoryArg)
	if err != nil {
		return nil, err
	}
	if o, ok := f.overrides[kind]; ok {
		return o.value, nil
	}
	if k.provider == nil {
		return nil, nil
	}
	return k.provider(f), nil
}

// WithPair overrides a value+callable trait kind for this field. Both
// halves are configured together.
func (f *FieldDef) WithPair(kind string, v, fn any) *FieldDef {
	if _, err := f.kindFor(kind, CategoryMixed); err != nil {
		f.schema.record(err)
		return f
	}
	f.overrides[kind] = &traitOverride{value: v, proc: fn}
	return f
}

// PairValue resolves the value half of a mixed trait: override, else the
// first provider result, fresh per call.
func (f *FieldDef) PairValue(kind string) (any, error) {
	k, err := f.kindFor(kind, CategoryMixed)
	if err != nil {
		return nil, err
	}
	if o, ok := f.overrides[kind]; ok {
		return o.value, nil
	}
	if k.pair == nil {
		return nil, nil
	}
	v, _ := k.pair(f)
	return v, nil
}

// PairProc resolves the callable half of a mixed trait: override, else the
// second provider result, fresh per call.
func (f *FieldDef) PairProc(kind string) (any, error) {
	k, err := f.kindFor(kind, CategoryMixed)
	if err != nil {
		return nil, err
	}
	if o, ok := f.overrides[kind]; ok {
		return o.proc, nil
	}
	if k.pair == nil {
		return nil, nil
	}
	_, fn := k.pair(f)
	return fn, nil
}

// HasOverride reports whether the field overrides the kind.
func (f *FieldDef) HasOverride(kind string) bool {
	_, ok := f.overrides[kind]
	return ok
}

// WithDisplay overrides how this field's values render.
func (f *FieldDef) WithDisplay(fn DisplayFunc) *FieldDef {
	return f.WithProc(KindDisplay, fn)
}

// Display resolves the display callable for this field.
func (f *FieldDef) Display() DisplayFunc {
	v, err := f.Proc(KindDisplay)
	if err != nil {
		return nil
	}
	switch fn := v.(type) {
	case DisplayFunc:
		return fn
	case func(any) string:
		return fn
	}
	return nil
}

// WithReader overrides how this field reads from a subject instance.
func (f *FieldDef) WithReader(fn ReadFunc) *FieldDef {
	return f.WithProc(KindRead, fn)
}

// Reader resolves the read callable for this field.
func (f *FieldDef) Reader() ReadFunc {
	v, err := f.Proc(KindRead)
	if err != nil {
		return nil
	}
	switch fn := v.(type) {
	case ReadFunc:
		return fn
	case func(any) (any, error):
		return fn
	}
	return nil
}

// WithWriter overrides how this field writes to a subject instance.
func (f *FieldDef) WithWriter(fn WriteFunc) *FieldDef {
	return f.WithProc(KindWrite, fn)
}

// Writer resolves the write callable for this field.
func (f *FieldDef) Writer() WriteFunc {
	v, err := f.Proc(KindWrite)
	if err != nil {
		return nil
	}
	switch fn := v.(type) {
	case WriteFunc:
		return fn
	case func(any, any) error:
		return fn
	}
	return nil
}

// WithHumanName overrides the field's human-readable name.
func (f *FieldDef) WithHumanName(s string) *FieldDef {
	return f.WithValue(KindHumanName, s)
}

// HumanName resolves the field's human-readable name.
func (f *FieldDef) HumanName() string {
	v, err := f.Value(KindHumanName)
	if err != nil || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// String implements fmt.Stringer.
func (f *FieldDef) String() string {
	return fmt.Sprintf("field %s (labels=%d, overrides=%d)", f.name, len(f.labels), len(f.overrides))
}
