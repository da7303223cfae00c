package schema

// Validate checks that every schema column exists in the table with the
// expected type. Columns the schema does not name are ignored. The first
// failing column, in schema order, determines the error. A nil Observed
// validates as an empty table.
func (s Schema) Validate(o *Observed) error {
	if o == nil {
		o = NewObserved()
	}
	err := s.checkColumns(o)
	observe(modePermissive, err)
	return err
}

// ValidateStrict additionally requires the table to carry exactly the
// schema's columns. The column count is checked before anything else, then
// each schema column in order, then any columns left over in the table.
func (s Schema) ValidateStrict(o *Observed) error {
	if o == nil {
		o = NewObserved()
	}
	err := s.strict(o)
	observe(modeStrict, err)
	return err
}

func (s Schema) checkColumns(o *Observed) error {
	for _, c := range s.cols {
		actual, ok := o.Get(c.Name)
		if !ok {
			return MissingColumnError{Column: c.Name}
		}
		if !actual.Equal(c.Type) {
			return TypeMismatchError{Column: c.Name, Actual: actual, Expected: c.Type}
		}
	}
	return nil
}

func (s Schema) strict(o *Observed) error {
	if o.Len() != s.Len() {
		return ColumnCountMismatchError{Actual: o.Len(), Expected: s.Len()}
	}
	if err := s.checkColumns(o); err != nil {
		return err
	}
	expected := make(map[string]struct{}, len(s.cols))
	for _, c := range s.cols {
		expected[c.Name] = struct{}{}
	}
	for _, name := range o.names {
		if _, ok := expected[name]; !ok {
			return UnexpectedColumnError{Column: name}
		}
	}
	return nil
}
