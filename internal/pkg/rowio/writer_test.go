package rowio

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bcongdon/rowflow"
	"github.com/stretchr/testify/assert"
)

func TestWriterSortsColumns(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)

	err := w.Write(rowflow.Row{
		"word":  rowflow.String("hello"),
		"count": rowflow.Int(2),
		"tf":    rowflow.Float(0.25),
		"seen":  rowflow.Bool(true),
		"none":  rowflow.Value{},
	})
	assert.Nil(t, err)
	assert.Nil(t, w.Flush())

	expected := `{"count":2,"none":null,"seen":true,"tf":0.25,"word":"hello"}` + "\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, int64(len(expected)), w.BytesWritten())
}

func TestWriteAllRoundTrip(t *testing.T) {
	rows := []rowflow.Row{
		{"id": rowflow.Int(1), "text": rowflow.String("one two")},
		{"id": rowflow.Int(2), "text": rowflow.String("three")},
	}

	buf := new(bytes.Buffer)
	n, err := WriteAll(buf, rowflow.Rows(rows...))
	assert.Nil(t, err)
	assert.Equal(t, 2, n)

	decoded, err := rowflow.Collect(NewReader(strings.NewReader(buf.String())))
	assert.Nil(t, err)
	assert.Equal(t, rows, decoded)
}

func TestWriteAllStreamError(t *testing.T) {
	boom := errors.New("boom")
	buf := new(bytes.Buffer)

	n, err := WriteAll(buf, rowflow.Concat(rowflow.Rows(rowflow.Row{"a": rowflow.Int(1)}), rowflow.Failed(boom)))
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, `{"a":1}`+"\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "test")
	defer os.RemoveAll(tmpdir)
	assert.Nil(t, err)

	path := filepath.Join(tmpdir, "out", "counts.jsonl")
	rows := []rowflow.Row{
		{"word": rowflow.String("hello"), "count": rowflow.Int(2)},
		{"word": rowflow.String("world"), "count": rowflow.Int(1)},
	}

	n, err := WriteFile(path, rowflow.Rows(rows...))
	assert.Nil(t, err)
	assert.Equal(t, 2, n)

	read, err := ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, rows, read)

	// an existing file is replaced
	n, err = WriteFile(path, rowflow.Rows(rows[:1]...))
	assert.Nil(t, err)
	assert.Equal(t, 1, n)
	read, err = ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, rows[:1], read)
}
