package schema

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/fennel-ai/dfschema/coltype"
	"github.com/samber/lo"
)

var (
	_ json.Marshaler   = Schema{}
	_ json.Unmarshaler = (*Schema)(nil)
)

type columnJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// MarshalJSON renders the schema as an ordered array of {name, type} objects,
// with types in their String form.
func (s Schema) MarshalJSON() ([]byte, error) {
	cols := lo.Map(s.cols, func(c Column, _ int) columnJSON {
		return columnJSON{Name: c.Name, Type: c.Type.String()}
	})
	return json.Marshal(cols)
}

// UnmarshalJSON decodes a schema produced by MarshalJSON.
func (s *Schema) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseJSON decodes a schema from its JSON form. Column order is preserved
// and every type string must parse back to a column type.
func ParseJSON(data []byte) (Schema, error) {
	var cols []Column
	var perr error
	_, err := jsonparser.ArrayEach(data, func(item []byte, vt jsonparser.ValueType, _ int, _ error) {
		if perr != nil {
			return
		}
		if vt != jsonparser.Object {
			perr = fmt.Errorf("schema entry is %s, not an object", vt)
			return
		}
		name, err := jsonparser.GetString(item, "name")
		if err != nil {
			perr = fmt.Errorf("schema entry has no 'name': %w", err)
			return
		}
		typestr, err := jsonparser.GetString(item, "type")
		if err != nil {
			perr = fmt.Errorf("schema entry has no 'type': %w", err)
			return
		}
		ct, err := coltype.Parse(typestr)
		if err != nil {
			perr = err
			return
		}
		cols = append(cols, Column{Name: name, Type: ct})
	})
	if err != nil {
		return Schema{}, err
	}
	if perr != nil {
		return Schema{}, perr
	}
	return New(cols...)
}
