// Package schema derives table schemas from Go struct types and validates
// observed tables against them. A Schema is an ordered list of named column
// types; an Observed captures the columns some table actually has. Validation
// compares the two, either permissively (extra columns are fine) or strictly
// (the column sets must match exactly).
package schema

import (
	"fmt"
	"strings"

	"github.com/fennel-ai/dfschema/coltype"
	"github.com/samber/lo"
)

// Column is one named, typed column of a schema.
type Column struct {
	Name string
	Type coltype.ColumnType
}

func (c Column) String() string {
	return fmt.Sprintf("%s: %s", c.Name, c.Type)
}

// Schema is an ordered collection of columns with unique names. The order is
// the declaration order of the struct it was derived from and is significant
// for strict validation and serialization.
type Schema struct {
	cols []Column
}

// New builds a schema from the given columns, rejecting duplicate names.
func New(cols ...Column) (Schema, error) {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, ok := seen[c.Name]; ok {
			return Schema{}, fmt.Errorf("duplicate column '%s' in schema", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return Schema{cols: append([]Column(nil), cols...)}, nil
}

// MustNew is New but panics on duplicate names. Meant for static schemas
// known to be well formed.
func MustNew(cols ...Column) Schema {
	s, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.cols)
}

// Columns returns a copy of the columns in schema order.
func (s Schema) Columns() []Column {
	return append([]Column(nil), s.cols...)
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	return lo.Map(s.cols, func(c Column, _ int) string { return c.Name })
}

// Get returns the type of the named column.
func (s Schema) Get(name string) (coltype.ColumnType, bool) {
	for _, c := range s.cols {
		if c.Name == name {
			return c.Type, true
		}
	}
	return coltype.ColumnType{}, false
}

func (s Schema) String() string {
	parts := lo.Map(s.cols, func(c Column, _ int) string { return c.String() })
	return fmt.Sprintf("Schema[%s]", strings.Join(parts, ", "))
}

// Observed records the columns of an actual table, in the order the table
// yields them. It is what validation runs against; adapters for concrete
// table representations build one of these.
type Observed struct {
	names []string
	types map[string]coltype.ColumnType
}

// NewObserved starts an observation from the given columns.
func NewObserved(cols ...Column) *Observed {
	o := &Observed{types: make(map[string]coltype.ColumnType, len(cols))}
	for _, c := range cols {
		o.Add(c.Name, c.Type)
	}
	return o
}

// Add records one column. Re-adding a name overwrites its type but keeps its
// original position. Returns the receiver for chaining.
func (o *Observed) Add(name string, t coltype.ColumnType) *Observed {
	if _, ok := o.types[name]; !ok {
		o.names = append(o.names, name)
	}
	o.types[name] = t
	return o
}

// Len returns the number of distinct columns observed.
func (o *Observed) Len() int {
	return len(o.names)
}

// Get returns the observed type of the named column.
func (o *Observed) Get(name string) (coltype.ColumnType, bool) {
	t, ok := o.types[name]
	return t, ok
}

// Names returns the column names in observation order.
func (o *Observed) Names() []string {
	return append([]string(nil), o.names...)
}

// Columns returns the observed columns in observation order.
func (o *Observed) Columns() []Column {
	return lo.Map(o.names, func(n string, _ int) Column {
		return Column{Name: n, Type: o.types[n]}
	})
}
