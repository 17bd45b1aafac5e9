package fielddefs

import "fmt"

// TraitCategory governs a trait kind's call shape: what an override stores
// and what the accessors return.
type TraitCategory int

const (
	// CategoryProc traits hold a callable.
	CategoryProc TraitCategory = iota
	// CategoryArg traits hold a plain value.
	CategoryArg
	// CategoryMixed traits hold a plain value and a callable together.
	CategoryMixed
)

// String returns the category name.
func (c TraitCategory) String() string {
	switch c {
	case CategoryProc:
		return "proc"
	case CategoryArg:
		return "arg"
	case CategoryMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseTraitCategory converts a category name to a TraitCategory.
func ParseTraitCategory(s string) (TraitCategory, error) {
	switch s {
	case "proc":
		return CategoryProc, nil
	case "arg":
		return CategoryArg, nil
	case "mixed":
		return CategoryMixed, nil
	default:
		return 0, fmt.Errorf("unknown trait category: %s", s)
	}
}
