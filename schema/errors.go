package schema

import (
	"fmt"

	"github.com/fennel-ai/dfschema/coltype"
)

// Validation errors are plain comparable values and render in a fixed,
// user-facing format.

// MissingColumnError reports a schema column absent from the table.
type MissingColumnError struct {
	Column string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column '%s' not found in DataFrame", e.Column)
}

// TypeMismatchError reports a column present with the wrong type.
type TypeMismatchError struct {
	Column   string
	Actual   coltype.ColumnType
	Expected coltype.ColumnType
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Column '%s' has type %s but expected %s", e.Column, e.Actual, e.Expected)
}

// ColumnCountMismatchError reports a table with the wrong number of columns.
// Only strict validation raises it.
type ColumnCountMismatchError struct {
	Actual   int
	Expected int
}

func (e ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("Column count mismatch: DataFrame has %d columns but schema expects %d", e.Actual, e.Expected)
}

// UnexpectedColumnError reports a table column the schema does not name.
// Only strict validation raises it.
type UnexpectedColumnError struct {
	Column string
}

func (e UnexpectedColumnError) Error() string {
	return fmt.Sprintf("Unexpected column '%s' found in DataFrame", e.Column)
}
