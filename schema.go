package fielddefs

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Schema is the field-definition set for one subject type: a private trait
// kind registry plus the declared fields in declaration order. Build one
// with New; after construction a schema is owned by a single goroutine.
type Schema struct {
	id       uuid.UUID
	subject  any
	registry *TraitRegistry
	fields   map[string]*FieldDef
	order    []string
	log      *zap.Logger
	errs     []error
}

// Option configures a schema at construction.
type Option func(*Schema)

// WithLogger attaches a logger for construction and registration events.
// Without it the schema logs nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(s *Schema) {
		if log != nil {
			s.log = log
		}
	}
}

// New builds a schema for a subject type. Built-in trait kinds are seeded
// first (display, read, write as proc; human_name as arg), the process-wide
// default chain is replayed in registration order, then decl runs against
// the schema. decl may declare fields and register schema-local trait kinds;
// it may be nil. Errors recorded during declaration fail the construction
// and are reported together.
func New(subject any, decl func(*Schema), opts ...Option) (*Schema, error) {
	s := &Schema{
		id:       uuid.New(),
		subject:  subject,
		registry: NewTraitRegistry(),
		fields:   make(map[string]*FieldDef),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seedBuiltins()

	chain := globalDefaults.Snapshot()
	for _, fn := range chain {
		fn(s)
	}
	s.log.Debug("applied default chain", zap.Int("callbacks", len(chain)))

	if decl != nil {
		decl(s)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("schema construction for %s failed: %w", s.SubjectName(), err)
	}

	s.log.Debug("schema constructed",
		zap.String("subject", s.SubjectName()),
		zap.String("id", s.id.String()),
		zap.Int("fields", len(s.order)),
		zap.Int("trait_kinds", s.registry.Len()))
	return s, nil
}

// seedBuiltins installs the built-in kinds before the default chain runs,
// so later layers may replace the providers without reinstalling the kinds.
func (s *Schema) seedBuiltins() {
	_ = s.registry.RegisterProc(KindDisplay, defaultDisplayProvider)
	_ = s.registry.RegisterProc(KindRead, defaultReadProvider)
	_ = s.registry.RegisterProc(KindWrite, defaultWriteProvider)
	_ = s.registry.RegisterArg(KindHumanName, defaultHumanNameProvider)
}

// RegisterProcKind registers a callable-valued trait kind on this schema
// only. Re-registration with the same category replaces the provider; a
// different category is a ConflictError.
func (s *Schema) RegisterProcKind(name string, p Provider) error {
	err := s.registry.RegisterProc(name, p)
	s.finishRegister(name, CategoryProc, err)
	return err
}

// RegisterArgKind registers a plain-value trait kind on this schema only.
func (s *Schema) RegisterArgKind(name string, p Provider) error {
	err := s.registry.RegisterArg(name, p)
	s.finishRegister(name, CategoryArg, err)
	return err
}

// RegisterMixedKind registers a value+callable trait kind on this schema
// only.
func (s *Schema) RegisterMixedKind(name string, p PairProvider) error {
	err := s.registry.RegisterMixed(name, p)
	s.finishRegister(name, CategoryMixed, err)
	return err
}

func (s *Schema) finishRegister(name string, cat TraitCategory, err error) {
	if err != nil {
		s.record(err)
		return
	}
	s.log.Debug("registered trait kind",
		zap.String("kind", name),
		zap.String("category", cat.String()))
}

// record notes a declaration error; New aggregates them, and Err exposes
// them for schemas mutated after construction.
func (s *Schema) record(err error) {
	s.errs = append(s.errs, err)
	s.log.Debug("declaration error", zap.Error(err))
}

// Err returns every recorded declaration error, combined.
func (s *Schema) Err() error {
	return multierr.Combine(s.errs...)
}

// Field declares a field under name, overwriting any prior descriptor while
// keeping the name's original declaration position. Configuration chains on
// the returned descriptor.
func (s *Schema) Field(name string) *FieldDef {
	f := newFieldDef(name, s)
	if _, exists := s.fields[name]; exists {
		s.log.Debug("field redeclared", zap.String("field", name))
	} else {
		s.order = append(s.order, name)
	}
	s.fields[name] = f
	return f
}

// FieldCalled looks a field up by exact name. Absent names, the empty name
// included, return nil rather than an error.
func (s *Schema) FieldCalled(name string) *FieldDef {
	return s.fields[name]
}

// FieldsCalled resolves every name, failing fast with a NotFoundError on
// the first name without a descriptor.
func (s *Schema) FieldsCalled(names ...string) ([]*FieldDef, error) {
	out := make([]*FieldDef, 0, len(names))
	for _, name := range names {
		f := s.FieldCalled(name)
		if f == nil {
			return nil, &NotFoundError{Name: name}
		}
		out = append(out, f)
	}
	return out, nil
}

// Fields returns every descriptor in declaration order.
func (s *Schema) Fields() []*FieldDef {
	out := make([]*FieldDef, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.fields[name])
	}
	return out
}

// FieldsLabeled returns the descriptors carrying label, in declaration
// order.
func (s *Schema) FieldsLabeled(label string) []*FieldDef {
	out := make([]*FieldDef, 0)
	for _, name := range s.order {
		if f := s.fields[name]; f.HasLabel(label) {
			out = append(out, f)
		}
	}
	return out
}

// Attributes maps every field name to its human name. The result is
// computed once per schema and cached process-wide under the schema's ID;
// fields added or renamed afterward are not reflected until
// FlushAttributeCache. Callers get a copy.
func (s *Schema) Attributes() map[string]string {
	if cached, ok := attributeCache.get(s.id); ok {
		return cached
	}
	attrs := make(map[string]string, len(s.order))
	for _, f := range s.Fields() {
		attrs[f.Name()] = f.HumanName()
	}
	attributeCache.set(s.id, attrs)
	return copyStringMap(attrs)
}

// AttributesLabeled maps labeled field names to their human names. Unlike
// Attributes, the result is recomputed on every call.
func (s *Schema) AttributesLabeled(label string) map[string]string {
	fields := s.FieldsLabeled(label)
	attrs := make(map[string]string, len(fields))
	for _, f := range fields {
		attrs[f.Name()] = f.HumanName()
	}
	return attrs
}

// DisplayFor reads fieldName from the subject instance with the field's
// read trait and renders the result with its display trait.
func (s *Schema) DisplayFor(subject any, fieldName string) (string, error) {
	f := s.FieldCalled(fieldName)
	if f == nil {
		return "", &NotFoundError{Name: fieldName}
	}
	read := f.Reader()
	if read == nil {
		return "", fmt.Errorf("display %s: no read callable", fieldName)
	}
	value, err := read(subject)
	if err != nil {
		return "", fmt.Errorf("display %s: %w", fieldName, err)
	}
	display := f.Display()
	if display == nil {
		return "", fmt.Errorf("display %s: no display callable", fieldName)
	}
	return display(value), nil
}

// TraitKinds returns this schema's registered kind names in registration
// order.
func (s *Schema) TraitKinds() []string {
	return s.registry.Kinds()
}

// HasTraitKind reports whether the kind is registered on this schema.
func (s *Schema) HasTraitKind(name string) bool {
	return s.registry.Has(name)
}

// KindCategory returns the category a kind was installed with on this
// schema.
func (s *Schema) KindCategory(name string) (TraitCategory, bool) {
	return s.registry.Category(name)
}

// Labels returns the union of every field's labels, sorted.
func (s *Schema) Labels() []string {
	set := make(map[string]struct{})
	for _, f := range s.Fields() {
		for _, l := range f.Labels() {
			set[l] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Subject returns the subject-type handle the schema was built for.
func (s *Schema) Subject() any { return s.subject }

// SubjectName returns a stable name for the subject type: string handles
// verbatim, otherwise the dereferenced type name.
func (s *Schema) SubjectName() string { return subjectName(s.subject) }

// ID returns the schema's unique identity.
func (s *Schema) ID() uuid.UUID { return s.id }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// String implements fmt.Stringer.
func (s *Schema) String() string {
	return fmt.Sprintf("schema %s (%d fields, %d trait kinds)",
		s.SubjectName(), len(s.fields), s.registry.Len())
}
