package rowio

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/bcongdon/rowflow"
)

// Writer encodes rows as JSON lines, with columns in ascending order
type Writer struct {
	w            *bufio.Writer
	writtenBytes int64
}

// NewWriter returns a Writer writing to w. Flush must be called once every
// row has been written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write encodes a single row
func (wr *Writer) Write(row rowflow.Row) error {
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, col := range row.Columns() {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return err
		}
		value, err := json.Marshal(row[col])
		if err != nil {
			return err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	buf = append(buf, '}', '\n')

	n, err := wr.w.Write(buf)
	wr.writtenBytes += int64(n)
	return err
}

// Flush writes any buffered data to the underlying writer
func (wr *Writer) Flush() error {
	return wr.w.Flush()
}

// BytesWritten returns the number of bytes encoded so far
func (wr *Writer) BytesWritten() int64 {
	return wr.writtenBytes
}

// WriteAll drains s into w and flushes it. It returns the number of rows
// written.
func WriteAll(w io.Writer, s rowflow.RowStream) (int, error) {
	wr := NewWriter(w)
	n := 0
	for s.Next() {
		if err := wr.Write(s.Row()); err != nil {
			return n, err
		}
		n++
	}
	if err := s.Err(); err != nil {
		wr.Flush()
		return n, err
	}
	return n, wr.Flush()
}

// WriteFile drains s into the JSON-lines file at filePath, replacing it. An
// empty filePath writes to stdout instead. It returns the number of rows
// written.
func WriteFile(filePath string, s rowflow.RowStream) (int, error) {
	if filePath == "" {
		return WriteAll(os.Stdout, s)
	}
	w, err := OpenWriter(filePath)
	if err != nil {
		return 0, err
	}
	n, err := WriteAll(w, s)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return n, err
}
