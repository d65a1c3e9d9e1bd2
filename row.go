package rowflow

import (
	"fmt"
	"sort"
	"strings"
)

// Row is a single structured record: a mapping from column name to Value.
// Rows are never modified once they have been handed to another holder;
// With, Without and Copy all return new rows.
type Row map[string]Value

// RowOf builds a Row from native Go values (see ValueOf)
func RowOf(fields map[string]interface{}) (Row, error) {
	row := make(Row, len(fields))
	for col, v := range fields {
		value, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		row[col] = value
	}
	return row, nil
}

// MustRowOf is like RowOf but panics if a value cannot be converted
func MustRowOf(fields map[string]interface{}) Row {
	row, err := RowOf(fields)
	if err != nil {
		panic(err)
	}
	return row
}

// Get returns the value of a column, and whether it exists
func (r Row) Get(col string) (Value, bool) {
	v, ok := r[col]
	return v, ok
}

// Copy returns a shallow copy of r
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for col, v := range r {
		out[col] = v
	}
	return out
}

// With returns a copy of r with col set to v
func (r Row) With(col string, v Value) Row {
	out := make(Row, len(r)+1)
	for c, value := range r {
		out[c] = value
	}
	out[col] = v
	return out
}

// Without returns a copy of r without the given columns
func (r Row) Without(cols ...string) Row {
	out := r.Copy()
	for _, col := range cols {
		delete(out, col)
	}
	return out
}

// Columns returns the column names of r in ascending order
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for col := range r {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// String renders r with its columns in ascending order
func (r Row) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, col := range r.Columns() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", col, r[col])
	}
	b.WriteString("}")
	return b.String()
}

// stringColumn fetches a textual column, failing with a SchemaError
func (r Row) stringColumn(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", missingColumn(col)
	}
	s, ok := v.AsString()
	if !ok {
		return "", wrongKind(col, StringKind, v.Kind())
	}
	return s, nil
}

// GroupKey is the tuple of values a row holds in a configured list of key
// columns. Columns is shared by every key extracted with the same
// configuration and must not be modified.
type GroupKey struct {
	Columns []string
	Values  []Value
}

// KeyOf extracts the GroupKey of row for the given key columns
func KeyOf(row Row, columns []string) (GroupKey, error) {
	values := make([]Value, len(columns))
	for i, col := range columns {
		v, ok := row[col]
		if !ok {
			return GroupKey{}, missingColumn(col)
		}
		values[i] = v
	}
	return GroupKey{Columns: columns, Values: values}, nil
}

// Compare compares two keys component-wise (see Compare for Values)
func (k GroupKey) Compare(o GroupKey) int {
	for i := 0; i < len(k.Values) && i < len(o.Values); i++ {
		if c := Compare(k.Values[i], o.Values[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k.Values) < len(o.Values):
		return -1
	case len(k.Values) > len(o.Values):
		return 1
	}
	return 0
}

// Equal returns true iff both keys hold equal values
func (k GroupKey) Equal(o GroupKey) bool {
	return k.Compare(o) == 0
}

// Row returns a new row holding only the key columns
func (k GroupKey) Row() Row {
	row := make(Row, len(k.Columns)+1)
	for i, col := range k.Columns {
		row[col] = k.Values[i]
	}
	return row
}

func (k GroupKey) String() string {
	parts := make([]string, len(k.Columns))
	for i, col := range k.Columns {
		parts[i] = fmt.Sprintf("%s=%s", col, k.Values[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
