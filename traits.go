package fielddefs

// Built-in trait kinds seeded on every schema before the default chain runs.
const (
	KindDisplay   = "display"
	KindRead      = "read"
	KindWrite     = "write"
	KindHumanName = "human_name"
)

// Provider computes a proc or arg trait kind's default for a field when no
// override is set. Providers run on every unoverridden access and results
// are never cached, so side-effecting providers execute once per call.
type Provider func(f *FieldDef) any

// PairProvider computes a mixed trait kind's defaults: the plain value and
// the callable, in that order.
type PairProvider func(f *FieldDef) (any, any)

// ReadFunc extracts a field's value from a subject instance.
type ReadFunc func(subject any) (any, error)

// WriteFunc stores a field's value on a subject instance.
type WriteFunc func(subject, value any) error

// DisplayFunc renders a field's value for presentation.
type DisplayFunc func(value any) string

// traitKind is one registered trait kind. The category fixes the accessor
// protocol; provider (proc/arg) and pair (mixed) are mutually exclusive and
// either may be nil, which reads as an absent default.
type traitKind struct {
	name     string
	category TraitCategory
	provider Provider
	pair     PairProvider
}

// traitOverride is a per-field override. Which members are populated
// depends on the kind's category, checked when the override is set: proc
// kinds fill proc, arg kinds fill value, mixed kinds fill both. The
// category itself lives only in the registry's traitKind.
type traitOverride struct {
	value any
	proc  any
}
