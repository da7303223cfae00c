package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// cache maps struct types to their derived Schema. Derivation is pure, so a
// schema is computed once per type for the life of the process.
var cache sync.Map // reflect.Type -> Schema

// Of derives the column schema of a struct type. Fields become columns in
// declaration order. Pointer fields mark optional values and derive as their
// element type, however deeply the pointers nest. The `df` struct tag renames
// a column and `df:"-"` drops the field; unexported fields are always
// dropped. Untagged anonymous embedded structs are flattened in place unless
// the embedded type itself maps to a column type.
func Of(t reflect.Type) (Schema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return Schema{}, fmt.Errorf("cannot derive schema for non-struct type '%s'", t)
	}
	if s, ok := cache.Load(t); ok {
		return s.(Schema), nil
	}
	s, err := New(structColumns(t, make(map[reflect.Type]bool))...)
	if err != nil {
		return Schema{}, fmt.Errorf("cannot derive schema for type '%s': %w", t, err)
	}
	actual, _ := cache.LoadOrStore(t, s)
	return actual.(Schema), nil
}

// For derives the schema of the type parameter T.
func For[T any]() (Schema, error) {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

// MustFor is For but panics on derivation failure. Meant for types known to
// derive cleanly, typically from package-level vars.
func MustFor[T any]() Schema {
	s, err := For[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func structColumns(t reflect.Type, visiting map[reflect.Type]bool) []Column {
	// Cyclic embedding through pointers contributes nothing past the first
	// visit.
	if visiting[t] {
		return nil
	}
	visiting[t] = true
	defer delete(visiting, t)

	cols := make([]Column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, tagged := f.Tag.Lookup("df")
		head, _, _ := strings.Cut(tag, ",")
		if head == "-" {
			continue
		}
		name := f.Name
		if head != "" {
			name = head
		}
		ft := f.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		ct, known := mapType(ft)
		if f.Anonymous && !tagged && !known && ft.Kind() == reflect.Struct {
			cols = append(cols, structColumns(ft, visiting)...)
			continue
		}
		if !known {
			zap.L().Debug("field type has no column mapping, falling back to String",
				zap.String("struct", t.String()),
				zap.String("field", f.Name),
				zap.String("type", f.Type.String()),
			)
		}
		cols = append(cols, Column{Name: name, Type: ct})
	}
	return cols
}
