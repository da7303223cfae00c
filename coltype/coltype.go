// Package coltype defines the closed set of semantic column types that table
// schemas are expressed in. Values are plain and comparable; they carry no
// nullability information.
package coltype

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// Type identifies the tag of a ColumnType.
type Type uint8

const (
	STRING Type = iota
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	BOOL
	DATE
	TIME
	DATETIME
)

// TimeUnit is the resolution of a datetime column.
type TimeUnit uint8

const (
	Seconds TimeUnit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

// DefaultUnit is the resolution assigned to datetime columns derived from
// struct fields. Seconds never comes out of derivation; it exists so that
// second-resolution Arrow timestamps can be represented losslessly.
const DefaultUnit = Microseconds

func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "Seconds"
	case Milliseconds:
		return "Milliseconds"
	case Microseconds:
		return "Microseconds"
	case Nanoseconds:
		return "Nanoseconds"
	default:
		return "Unknown"
	}
}

// ColumnType is the semantic type of one table column. Two values are equal
// iff their tag and all parameters (resolution, timezone) are equal. The zero
// value is String, the tag every unrecognized type degrades to.
type ColumnType struct {
	id   Type
	unit TimeUnit
	tz   mo.Option[string]
}

var (
	String  = ColumnType{id: STRING}
	Int8    = ColumnType{id: INT8}
	Int16   = ColumnType{id: INT16}
	Int32   = ColumnType{id: INT32}
	Int64   = ColumnType{id: INT64}
	UInt8   = ColumnType{id: UINT8}
	UInt16  = ColumnType{id: UINT16}
	UInt32  = ColumnType{id: UINT32}
	UInt64  = ColumnType{id: UINT64}
	Float32 = ColumnType{id: FLOAT32}
	Float64 = ColumnType{id: FLOAT64}
	Boolean = ColumnType{id: BOOL}
	Date    = ColumnType{id: DATE}
	Time    = ColumnType{id: TIME}
)

// Datetime returns the datetime column type with the given resolution and
// optional timezone label.
func Datetime(unit TimeUnit, tz mo.Option[string]) ColumnType {
	return ColumnType{id: DATETIME, unit: unit, tz: tz}
}

// ID returns the tag of this column type.
func (c ColumnType) ID() Type {
	return c.id
}

// Unit returns the resolution of a datetime column type; zero for all others.
func (c ColumnType) Unit() TimeUnit {
	return c.unit
}

// TimeZone returns the timezone label of a datetime column type, if any.
func (c ColumnType) TimeZone() mo.Option[string] {
	return c.tz
}

// Equal reports whether both tag and parameters match.
func (c ColumnType) Equal(other ColumnType) bool {
	if c.id != other.id || c.unit != other.unit {
		return false
	}
	if c.tz.IsPresent() != other.tz.IsPresent() {
		return false
	}
	return c.tz.IsAbsent() || c.tz.MustGet() == other.tz.MustGet()
}

func (c ColumnType) String() string {
	switch c.id {
	case STRING:
		return "String"
	case INT8:
		return "Int8"
	case INT16:
		return "Int16"
	case INT32:
		return "Int32"
	case INT64:
		return "Int64"
	case UINT8:
		return "UInt8"
	case UINT16:
		return "UInt16"
	case UINT32:
		return "UInt32"
	case UINT64:
		return "UInt64"
	case FLOAT32:
		return "Float32"
	case FLOAT64:
		return "Float64"
	case BOOL:
		return "Boolean"
	case DATE:
		return "Date"
	case TIME:
		return "Time"
	case DATETIME:
		if c.tz.IsPresent() {
			return fmt.Sprintf("Datetime(%s, %s)", c.unit, c.tz.MustGet())
		}
		return fmt.Sprintf("Datetime(%s)", c.unit)
	default:
		return "Unknown"
	}
}

var named = map[string]ColumnType{
	"String":  String,
	"Int8":    Int8,
	"Int16":   Int16,
	"Int32":   Int32,
	"Int64":   Int64,
	"UInt8":   UInt8,
	"UInt16":  UInt16,
	"UInt32":  UInt32,
	"UInt64":  UInt64,
	"Float32": Float32,
	"Float64": Float64,
	"Boolean": Boolean,
	"Date":    Date,
	"Time":    Time,
}

var units = map[string]TimeUnit{
	"Seconds":      Seconds,
	"Milliseconds": Milliseconds,
	"Microseconds": Microseconds,
	"Nanoseconds":  Nanoseconds,
}

// Parse is the inverse of String. Unlike type mapping, parsing is strict:
// text that does not name a column type is an error, not a String fallback.
func Parse(s string) (ColumnType, error) {
	if c, ok := named[s]; ok {
		return c, nil
	}
	if inner, ok := strings.CutPrefix(s, "Datetime("); ok && strings.HasSuffix(inner, ")") {
		inner = strings.TrimSuffix(inner, ")")
		unitstr, tzstr, hasTz := strings.Cut(inner, ",")
		unit, ok := units[strings.TrimSpace(unitstr)]
		if !ok {
			return ColumnType{}, fmt.Errorf("unknown time unit '%s' in column type '%s'", unitstr, s)
		}
		tz := mo.None[string]()
		if hasTz {
			label := strings.TrimSpace(tzstr)
			if label == "" {
				return ColumnType{}, fmt.Errorf("empty timezone in column type '%s'", s)
			}
			tz = mo.Some(label)
		}
		return Datetime(unit, tz), nil
	}
	return ColumnType{}, fmt.Errorf("unknown column type '%s'", s)
}
