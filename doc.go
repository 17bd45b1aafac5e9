// Package fielddefs is an extensible metadata-definition framework: for a
// given subject type it lets callers declare named fields, each carrying
// traits such as how to read, write, or display a value, a human-readable
// name, and free-form labels.
//
// # Overview
//
// Plugins extend the framework by registering new trait kinds, either on a
// single schema or process-wide through the default chain, without touching
// the core types. Per-field overrides always win over a kind's default
// provider, and providers run fresh on every unoverridden access.
//
// # Trait Categories
//
// Every trait kind has one of three categories governing its call shape:
//
//   - CategoryProc: the trait holds a callable (display, read, write)
//   - CategoryArg: the trait holds a plain value (human_name)
//   - CategoryMixed: the trait holds a plain value and a callable together
//
// # Example Usage
//
// Declaring a schema and querying it:
//
//	schema, err := fielddefs.New("Recipe", func(s *fielddefs.Schema) {
//		s.Field("title")
//		s.Field("calorie_intake").
//			WithHumanName("% Daily value USDA recommended intake").
//			Label("nutrition")
//	})
//	if err != nil {
//		// declaration errors are collected and reported together
//	}
//
//	schema.FieldCalled("title").HumanName() // "Title"
//	schema.AttributesLabeled("nutrition")   // {"calorie_intake": "% Daily value ..."}
//
// # Default Chain
//
// ExtendDefaults appends a registration callback applied to every schema
// built afterward, in registration order, after the built-in kinds are
// seeded and before the schema's own declaration block runs:
//
//	fielddefs.ExtendDefaults(func(s *fielddefs.Schema) {
//		s.RegisterArgKind("display_class", func(f *fielddefs.FieldDef) any {
//			return "field-" + f.Name()
//		})
//	})
//
// Each schema replays the chain into its own private registry, so kinds
// registered on one schema never leak into another. ResetDefaults restores
// a pristine chain for test isolation.
package fielddefs
