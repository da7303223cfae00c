package schema

import (
	"reflect"
	"sync"

	"github.com/fennel-ai/dfschema/coltype"
	"go.uber.org/zap"
)

// builtins maps the predeclared Go types to their column types. Built once,
// read only afterwards, and never shadowed by registrations.
var builtins map[reflect.Type]coltype.ColumnType

func init() {
	builtins = map[reflect.Type]coltype.ColumnType{
		reflect.TypeOf(int8(0)):    coltype.Int8,
		reflect.TypeOf(int16(0)):   coltype.Int16,
		reflect.TypeOf(int32(0)):   coltype.Int32,
		reflect.TypeOf(int64(0)):   coltype.Int64,
		reflect.TypeOf(int(0)):     coltype.Int64,
		reflect.TypeOf(uint8(0)):   coltype.UInt8,
		reflect.TypeOf(uint16(0)):  coltype.UInt16,
		reflect.TypeOf(uint32(0)):  coltype.UInt32,
		reflect.TypeOf(uint64(0)):  coltype.UInt64,
		reflect.TypeOf(uint(0)):    coltype.UInt64,
		reflect.TypeOf(float32(0)): coltype.Float32,
		reflect.TypeOf(float64(0)): coltype.Float64,
		reflect.TypeOf(false):      coltype.Boolean,
		reflect.TypeOf(""):         coltype.String,
	}
}

// registry holds registered non-builtin types, keyed by the non-pointer type.
// Packages register their types from init, the way the temporal package maps
// time.Time.
var (
	regmu    sync.RWMutex
	registry = make(map[reflect.Type]coltype.ColumnType)
)

// RegisterMapping maps the given Go type to a column type for derivation.
// Pointer wrapping is ignored. The predeclared types cannot be remapped; for
// everything else the latest registration wins, so a registered named type
// shadows the underlying-kind mapping it would otherwise get.
func RegisterMapping(t reflect.Type, c coltype.ColumnType) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	regmu.Lock()
	defer regmu.Unlock()
	if prev, ok := registry[t]; ok && !prev.Equal(c) {
		zap.L().Debug("column mapping replaced",
			zap.String("type", t.String()),
			zap.String("old", prev.String()),
			zap.String("new", c.String()),
		)
	}
	registry[t] = c
}

// MapType returns the column type a Go type derives to. The mapping is total:
// pointers are unwrapped however deeply they nest, builtin and registered
// types map to their column type, other named types map through their
// underlying kind, and everything left degrades to String.
func MapType(t reflect.Type) coltype.ColumnType {
	c, _ := mapType(t)
	return c
}

// mapType additionally reports whether the type was recognized or fell back.
func mapType(t reflect.Type) (coltype.ColumnType, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if c, ok := builtins[t]; ok {
		return c, true
	}
	regmu.RLock()
	c, ok := registry[t]
	regmu.RUnlock()
	if ok {
		return c, true
	}
	switch t.Kind() {
	case reflect.Int8:
		return coltype.Int8, true
	case reflect.Int16:
		return coltype.Int16, true
	case reflect.Int32:
		return coltype.Int32, true
	case reflect.Int64, reflect.Int:
		return coltype.Int64, true
	case reflect.Uint8:
		return coltype.UInt8, true
	case reflect.Uint16:
		return coltype.UInt16, true
	case reflect.Uint32:
		return coltype.UInt32, true
	case reflect.Uint64, reflect.Uint:
		return coltype.UInt64, true
	case reflect.Float32:
		return coltype.Float32, true
	case reflect.Float64:
		return coltype.Float64, true
	case reflect.Bool:
		return coltype.Boolean, true
	case reflect.String:
		return coltype.String, true
	default:
		return coltype.String, false
	}
}
