// Package arrow converts between column schemas and Arrow schemas. Observe
// adapts an Arrow schema into the shape validation runs against; Field and
// Schema go the other way for handing derived schemas to Arrow writers.
package arrow

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/fennel-ai/dfschema/coltype"
	"github.com/fennel-ai/dfschema/schema"
	"github.com/samber/mo"
)

// Observe records the columns of an Arrow schema in field order.
func Observe(as *arrow.Schema) *schema.Observed {
	o := schema.NewObserved()
	for _, f := range as.Fields() {
		o.Add(f.Name, ColumnType(f.Type))
	}
	return o
}

// ObserveRecord records the columns of a record batch.
func ObserveRecord(rec arrow.Record) *schema.Observed {
	return Observe(rec.Schema())
}

// ColumnType maps an Arrow type to its column type. Arrow types outside the
// supported set observe as String.
func ColumnType(dt arrow.DataType) coltype.ColumnType {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return coltype.String
	case arrow.INT8:
		return coltype.Int8
	case arrow.INT16:
		return coltype.Int16
	case arrow.INT32:
		return coltype.Int32
	case arrow.INT64:
		return coltype.Int64
	case arrow.UINT8:
		return coltype.UInt8
	case arrow.UINT16:
		return coltype.UInt16
	case arrow.UINT32:
		return coltype.UInt32
	case arrow.UINT64:
		return coltype.UInt64
	case arrow.FLOAT32:
		return coltype.Float32
	case arrow.FLOAT64:
		return coltype.Float64
	case arrow.BOOL:
		return coltype.Boolean
	case arrow.DATE32, arrow.DATE64:
		return coltype.Date
	case arrow.TIME32, arrow.TIME64:
		return coltype.Time
	case arrow.TIMESTAMP:
		ts := dt.(*arrow.TimestampType)
		tz := mo.None[string]()
		if ts.TimeZone != "" {
			tz = mo.Some(ts.TimeZone)
		}
		return coltype.Datetime(timeUnit(ts.Unit), tz)
	default:
		return coltype.String
	}
}

// DataType maps a column type to the Arrow type a writer should use. Date
// maps to 32-bit days, Time to 64-bit nanoseconds of day, Datetime to a
// timestamp of matching resolution whose zone is empty for naive columns.
func DataType(c coltype.ColumnType) arrow.DataType {
	switch c.ID() {
	case coltype.INT8:
		return arrow.PrimitiveTypes.Int8
	case coltype.INT16:
		return arrow.PrimitiveTypes.Int16
	case coltype.INT32:
		return arrow.PrimitiveTypes.Int32
	case coltype.INT64:
		return arrow.PrimitiveTypes.Int64
	case coltype.UINT8:
		return arrow.PrimitiveTypes.Uint8
	case coltype.UINT16:
		return arrow.PrimitiveTypes.Uint16
	case coltype.UINT32:
		return arrow.PrimitiveTypes.Uint32
	case coltype.UINT64:
		return arrow.PrimitiveTypes.Uint64
	case coltype.FLOAT32:
		return arrow.PrimitiveTypes.Float32
	case coltype.FLOAT64:
		return arrow.PrimitiveTypes.Float64
	case coltype.BOOL:
		return arrow.FixedWidthTypes.Boolean
	case coltype.DATE:
		return arrow.FixedWidthTypes.Date32
	case coltype.TIME:
		return arrow.FixedWidthTypes.Time64ns
	case coltype.DATETIME:
		tz := ""
		if z := c.TimeZone(); z.IsPresent() {
			tz = z.MustGet()
		}
		return &arrow.TimestampType{Unit: arrowUnit(c.Unit()), TimeZone: tz}
	default:
		return arrow.BinaryTypes.String
	}
}

// Field renders one schema column as a nullable Arrow field.
func Field(c schema.Column) arrow.Field {
	return arrow.Field{Name: c.Name, Type: DataType(c.Type), Nullable: true}
}

// Schema renders a full schema for Arrow writers, preserving column order.
func Schema(s schema.Schema) *arrow.Schema {
	cols := s.Columns()
	fields := make([]arrow.Field, 0, len(cols))
	for _, c := range cols {
		fields = append(fields, Field(c))
	}
	return arrow.NewSchema(fields, nil)
}

func timeUnit(u arrow.TimeUnit) coltype.TimeUnit {
	switch u {
	case arrow.Second:
		return coltype.Seconds
	case arrow.Millisecond:
		return coltype.Milliseconds
	case arrow.Nanosecond:
		return coltype.Nanoseconds
	default:
		return coltype.Microseconds
	}
}

func arrowUnit(u coltype.TimeUnit) arrow.TimeUnit {
	switch u {
	case coltype.Seconds:
		return arrow.Second
	case coltype.Milliseconds:
		return arrow.Millisecond
	case coltype.Nanoseconds:
		return arrow.Nanosecond
	default:
		return arrow.Microsecond
	}
}
