package fielddefs

import "fmt"

// NotFoundError reports a field name with no descriptor in the schema.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("field not found: %s", e.Name)
}

// ConflictError reports an attempt to re-register a trait kind under a
// different category than the one it was installed with.
type ConflictError struct {
	Kind       string
	Registered TraitCategory
	Attempted  TraitCategory
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("trait kind %q already registered as %s, cannot re-register as %s",
		e.Kind, e.Registered, e.Attempted)
}

// UnknownTraitError reports access to a trait kind the schema never
// registered.
type UnknownTraitError struct {
	Kind string
}

func (e *UnknownTraitError) Error() string {
	return fmt.Sprintf("unknown trait kind: %s", e.Kind)
}

// CategoryError reports a category-mismatched trait access, such as reading
// a callable-valued kind through the plain-value accessor.
type CategoryError struct {
	Kind string
	Want TraitCategory // category implied by the accessor used
	Got  TraitCategory // category the kind is registered under
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("trait kind %q is %s-valued, not %s-valued", e.Kind, e.Got, e.Want)
}

// MissingMemberError reports that a subject instance exposes no
// conventional accessor or mutator for a field. Raised at invocation time,
// never at declaration time.
type MissingMemberError struct {
	Subject string
	Member  string
	Op      string // "read" or "write"
}

func (e *MissingMemberError) Error() string {
	return fmt.Sprintf("cannot %s %s.%s: no such member", e.Op, e.Subject, e.Member)
}
