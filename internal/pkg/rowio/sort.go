package rowio

import (
	"sort"

	"github.com/bcongdon/rowflow"
)

// SortRows sorts rows in place, ascending by the given key columns. Rows
// with equal keys keep their relative order. It fails if a row lacks a key
// column.
func SortRows(rows []rowflow.Row, keys []string) error {
	rowKeys := make([]rowflow.GroupKey, len(rows))
	for i, row := range rows {
		key, err := rowflow.KeyOf(row, keys)
		if err != nil {
			return err
		}
		rowKeys[i] = key
	}
	sort.Stable(byKey{rows: rows, keys: rowKeys})
	return nil
}

type byKey struct {
	rows []rowflow.Row
	keys []rowflow.GroupKey
}

func (b byKey) Len() int           { return len(b.rows) }
func (b byKey) Less(i, j int) bool { return b.keys[i].Compare(b.keys[j]) < 0 }
func (b byKey) Swap(i, j int) {
	b.rows[i], b.rows[j] = b.rows[j], b.rows[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
