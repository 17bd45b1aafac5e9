package fielddefs

import (
	"fmt"
	"reflect"

	"github.com/brontes3d/field-defs/internal/strutil"
)

// defaultDisplayProvider renders any value with %v.
func defaultDisplayProvider(_ *FieldDef) any {
	return DisplayFunc(func(value any) string {
		return fmt.Sprintf("%v", value)
	})
}

// defaultReadProvider resolves the conventional accessor for the field name.
func defaultReadProvider(f *FieldDef) any {
	name := f.Name()
	return ReadFunc(func(subject any) (any, error) {
		return readMember(subject, name)
	})
}

// defaultWriteProvider resolves the conventional mutator for the field name.
func defaultWriteProvider(f *FieldDef) any {
	name := f.Name()
	return WriteFunc(func(subject, value any) error {
		return writeMember(subject, name, value)
	})
}

// defaultHumanNameProvider derives a human-readable name from the field
// name (calorie_intake -> "Calorie intake"). CamelCase names are normalized
// through snake_case first, so "BirthMonth" reads as "Birth month".
func defaultHumanNameProvider(f *FieldDef) any {
	return strutil.Humanize(strutil.ToSnakeCase(f.Name()))
}

// subjectName derives a stable display name for a subject-type handle:
// strings verbatim, reflect types by name, anything else by its
// dereferenced dynamic type.
func subjectName(subject any) string {
	switch s := subject.(type) {
	case nil:
		return "<nil>"
	case string:
		return s
	case reflect.Type:
		rt := s
		for rt.Kind() == reflect.Pointer {
			rt = rt.Elem()
		}
		if rt.Name() != "" {
			return rt.Name()
		}
		return rt.String()
	}
	t := reflect.TypeOf(subject)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// readMember fetches a member by field name from a subject instance.
// Map subjects are read by key. Struct subjects resolve the exported field
// named after the PascalCase form of the field name (or the exact name),
// then a niladic getter method of that name. Anything unresolved is a
// MissingMemberError at invocation time.
func readMember(subject any, name string) (any, error) {
	if m, ok := subject.(map[string]any); ok {
		v, found := m[name]
		if !found {
			return nil, &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "read"}
		}
		return v, nil
	}

	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return nil, &MissingMemberError{Subject: "<nil>", Member: name, Op: "read"}
	}

	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		v := rv.MapIndex(reflect.ValueOf(name))
		if !v.IsValid() {
			return nil, &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "read"}
		}
		return v.Interface(), nil
	}

	elem := rv
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "read"}
		}
		elem = elem.Elem()
	}

	goName := strutil.ToPascalCase(name)
	if elem.Kind() == reflect.Struct {
		fv := elem.FieldByName(goName)
		if !fv.IsValid() {
			fv = elem.FieldByName(name)
		}
		if fv.IsValid() && fv.CanInterface() {
			return fv.Interface(), nil
		}
	}

	// Getter method, resolved on the original value so pointer receivers
	// stay in the method set.
	if mv := rv.MethodByName(goName); mv.IsValid() {
		mt := mv.Type()
		if mt.NumIn() == 0 && mt.NumOut() >= 1 {
			return mv.Call(nil)[0].Interface(), nil
		}
	}

	return nil, &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "read"}
}

// writeMember stores a member by field name on a subject instance. Map
// subjects insert by key. Struct subjects need a settable field reached
// through a pointer, or a Set<PascalName> mutator method.
func writeMember(subject any, name string, value any) error {
	if m, ok := subject.(map[string]any); ok {
		if m == nil {
			return &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "write"}
		}
		m[name] = value
		return nil
	}

	rv := reflect.ValueOf(subject)
	if !rv.IsValid() {
		return &MissingMemberError{Subject: "<nil>", Member: name, Op: "write"}
	}

	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		if rv.IsNil() {
			return &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "write"}
		}
		av, ok := coerceValue(value, rv.Type().Elem())
		if !ok {
			return fmt.Errorf("write %s.%s: %T is not assignable to %s",
				subjectName(subject), name, value, rv.Type().Elem())
		}
		rv.SetMapIndex(reflect.ValueOf(name), av)
		return nil
	}

	// A nil pointer has no members to set, and calling a mutator on it
	// would dereference nil.
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "write"}
	}

	goName := strutil.ToPascalCase(name)

	if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct {
		elem := rv.Elem()
		fv := elem.FieldByName(goName)
		if !fv.IsValid() {
			fv = elem.FieldByName(name)
		}
		if fv.IsValid() && fv.CanSet() {
			av, ok := coerceValue(value, fv.Type())
			if !ok {
				return fmt.Errorf("write %s.%s: %T is not assignable to %s",
					subjectName(subject), name, value, fv.Type())
			}
			fv.Set(av)
			return nil
		}
	}

	if mv := rv.MethodByName("Set" + goName); mv.IsValid() {
		mt := mv.Type()
		if mt.NumIn() == 1 {
			av, ok := coerceValue(value, mt.In(0))
			if !ok {
				return fmt.Errorf("write %s.%s: %T is not assignable to %s",
					subjectName(subject), name, value, mt.In(0))
			}
			mv.Call([]reflect.Value{av})
			return nil
		}
	}

	return &MissingMemberError{Subject: subjectName(subject), Member: name, Op: "write"}
}

// coerceValue adapts value for assignment to t. Conversions are limited to
// same-kind and numeric-to-numeric so int never silently becomes a
// rune-string.
func coerceValue(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, true
	}
	if !v.Type().ConvertibleTo(t) {
		return reflect.Value{}, false
	}
	if v.Kind() == t.Kind() || (isNumericKind(v.Kind()) && isNumericKind(t.Kind())) {
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
