// Package temporal provides calendar types for date, time-of-day and
// timestamp columns, and registers their schema mappings. Importing the
// package, even blank, is what makes struct fields of these types derive as
// temporal columns instead of falling back to String.
package temporal

import (
	"fmt"
	"reflect"
	"time"

	"github.com/fennel-ai/dfschema/coltype"
	"github.com/fennel-ai/dfschema/schema"
	"github.com/samber/mo"
)

func init() {
	schema.RegisterMapping(reflect.TypeOf(Date{}), coltype.Date)
	schema.RegisterMapping(reflect.TypeOf(TimeOfDay{}), coltype.Time)
	schema.RegisterMapping(reflect.TypeOf(time.Time{}), coltype.Datetime(coltype.DefaultUnit, mo.None[string]()))
	schema.RegisterMapping(reflect.TypeOf(UTCTime{}), coltype.Datetime(coltype.DefaultUnit, mo.Some("UTC")))
}

// Date is a calendar date with no time or zone component. Fields of this
// type derive as Date columns.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the date at midnight in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// TimeOfDay is a wall-clock time with no date component. Fields of this type
// derive as Time columns.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the wall-clock reading of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

func (t TimeOfDay) String() string {
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
}

// On combines the wall-clock time with a date in the given location.
func (t TimeOfDay) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

// UTCTime is a time.Time pinned to UTC for schema purposes. Fields of this
// type derive as Datetime(Microseconds, UTC), where a plain time.Time field
// derives as a naive Datetime(Microseconds).
type UTCTime time.Time

// AtUTC converts t to its UTC reading.
func AtUTC(t time.Time) UTCTime {
	return UTCTime(t.UTC())
}

// Time returns the underlying instant in UTC.
func (u UTCTime) Time() time.Time {
	return time.Time(u).UTC()
}

func (u UTCTime) String() string {
	return u.Time().Format(time.RFC3339Nano)
}
