package rowio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bcongdon/rowflow"
	"github.com/tidwall/gjson"
)

const maxLineSize = 16 * 1024 * 1024

// DecodeError occurs when a line of input is not a flat JSON object
type DecodeError struct {
	Line   int
	Reason string
}

// Error returns a textual representation of this DecodeError
func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// lineReader decodes one row per line of JSON. Blank lines are skipped.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
	row     rowflow.Row
	err     error
}

// NewReader returns a RowStream decoding JSON lines from r. Each line must
// hold a JSON object of scalars: integers become Ints, other numbers Floats,
// and null the zero Value.
func NewReader(r io.Reader) rowflow.RowStream {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &lineReader{scanner: scanner}
}

func (l *lineReader) Next() bool {
	if l.err != nil {
		return false
	}
	for l.scanner.Scan() {
		l.line++
		text := strings.TrimSpace(l.scanner.Text())
		if text == "" {
			continue
		}
		row, err := decodeRow(text)
		if err != nil {
			l.err = &DecodeError{Line: l.line, Reason: err.Error()}
			l.row = nil
			return false
		}
		l.row = row
		return true
	}
	l.err = l.scanner.Err()
	l.row = nil
	return false
}

func (l *lineReader) Row() rowflow.Row { return l.row }
func (l *lineReader) Err() error       { return l.err }

func decodeRow(text string) (rowflow.Row, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("invalid JSON")
	}
	parsed := gjson.Parse(text)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("expected a JSON object")
	}

	row := make(rowflow.Row)
	var err error
	parsed.ForEach(func(key, value gjson.Result) bool {
		var v rowflow.Value
		v, err = decodeValue(value)
		if err != nil {
			err = fmt.Errorf("column %s: %w", key.Str, err)
			return false
		}
		row[key.Str] = v
		return true
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func decodeValue(value gjson.Result) (rowflow.Value, error) {
	switch value.Type {
	case gjson.Null:
		return rowflow.Value{}, nil
	case gjson.True:
		return rowflow.Bool(true), nil
	case gjson.False:
		return rowflow.Bool(false), nil
	case gjson.String:
		return rowflow.String(value.Str), nil
	case gjson.Number:
		if strings.ContainsAny(value.Raw, ".eE") {
			return rowflow.Float(value.Float()), nil
		}
		i, err := strconv.ParseInt(value.Raw, 10, 64)
		if err != nil {
			return rowflow.Value{}, fmt.Errorf("integer %s does not fit in 64 bits", value.Raw)
		}
		return rowflow.Int(i), nil
	}
	return rowflow.Value{}, fmt.Errorf("nested values are not supported")
}

// ReadFile reads every row of a JSON-lines file
func ReadFile(filePath string) ([]rowflow.Row, error) {
	reader, err := OpenReader(filePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	rows, err := rowflow.Collect(NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return rows, nil
}
