package rowflow

import (
	"strings"
)

// asciiPunctuation is the set of characters removed by StripPunctuation
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type identity struct{}

// Identity returns a Mapper which yields every row unchanged
func Identity() Mapper { return identity{} }

func (identity) Map(row Row) RowStream { return Rows(row) }

type lowerCase struct{ column string }

// LowerCase returns a Mapper which lower-cases the string held in column
func LowerCase(column string) Mapper { return lowerCase{column: column} }

func (m lowerCase) Map(row Row) RowStream {
	s, err := row.stringColumn(m.column)
	if err != nil {
		return Failed(err)
	}
	return Rows(row.With(m.column, String(strings.ToLower(s))))
}

type stripPunctuation struct{ column string }

// StripPunctuation returns a Mapper which removes every ASCII punctuation
// character from the string held in column. Everything else, whitespace
// included, is kept in place.
func StripPunctuation(column string) Mapper { return stripPunctuation{column: column} }

func (m stripPunctuation) Map(row Row) RowStream {
	s, err := row.stringColumn(m.column)
	if err != nil {
		return Failed(err)
	}
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
	return Rows(row.With(m.column, String(stripped)))
}

type tokenize struct{ column string }

// Tokenize returns a Mapper which splits the string held in column on runs
// of whitespace and yields one row per token. Each token row is a copy of
// the input with column replaced by the token. An empty or all-whitespace
// value yields no rows.
func Tokenize(column string) Mapper { return tokenize{column: column} }

func (m tokenize) Map(row Row) RowStream {
	s, err := row.stringColumn(m.column)
	if err != nil {
		return Failed(err)
	}
	return &tokenStream{row: row, column: m.column, tokens: strings.Fields(s), pos: -1}
}

// tokenStream builds token rows as they are pulled
type tokenStream struct {
	row    Row
	column string
	tokens []string
	pos    int
	cur    Row
}

func (t *tokenStream) Next() bool {
	if t.pos+1 >= len(t.tokens) {
		t.pos = len(t.tokens)
		t.cur = nil
		return false
	}
	t.pos++
	t.cur = t.row.With(t.column, String(t.tokens[t.pos]))
	return true
}

func (t *tokenStream) Row() Row   { return t.cur }
func (t *tokenStream) Err() error { return nil }

type apply struct {
	fn           func(args ...Value) (Value, error)
	columns      []string
	resultColumn string
}

// Apply returns a Mapper which calls fn with the values held in columns, in
// the given order, and stores the result in resultColumn on a copy of the
// row. An existing resultColumn is overwritten. Errors returned by fn end
// the stream unchanged.
func Apply(fn func(args ...Value) (Value, error), columns []string, resultColumn string) Mapper {
	return apply{fn: fn, columns: columns, resultColumn: resultColumn}
}

func (m apply) Map(row Row) RowStream {
	args := make([]Value, len(m.columns))
	for i, col := range m.columns {
		v, ok := row[col]
		if !ok {
			return Failed(missingColumn(col))
		}
		args[i] = v
	}
	result, err := m.fn(args...)
	if err != nil {
		return Failed(err)
	}
	return Rows(row.With(m.resultColumn, result))
}

type filter struct{ condition func(Row) bool }

// Filter returns a Mapper which yields a row unchanged iff condition holds
// for it, and nothing otherwise
func Filter(condition func(Row) bool) Mapper { return filter{condition: condition} }

func (m filter) Map(row Row) RowStream {
	if m.condition(row) {
		return Rows(row)
	}
	return Rows()
}

type project struct{ columns []string }

// Project returns a Mapper which yields a new row holding only the given
// columns
func Project(columns ...string) Mapper { return project{columns: columns} }

func (m project) Map(row Row) RowStream {
	out := make(Row, len(m.columns))
	for _, col := range m.columns {
		v, ok := row[col]
		if !ok {
			return Failed(missingColumn(col))
		}
		out[col] = v
	}
	return Rows(out)
}
