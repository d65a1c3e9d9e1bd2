package rowflow

import (
	"math"
	"sort"
)

type first struct{}

// First returns a Reducer which yields the first row of every run
func First() Reducer { return first{} }

func (first) Reduce(key GroupKey, rows []Row) RowStream {
	if len(rows) == 0 {
		return Rows()
	}
	return Rows(rows[0])
}

type topN struct {
	column string
	n      int
}

// TopN returns a Reducer which yields the n rows of every run holding the
// greatest values in column, or the whole run if it has fewer than n rows.
// Ties at the cutoff favor earlier rows. Selected rows are yielded in input
// order.
func TopN(column string, n int) Reducer { return topN{column: column, n: n} }

func (r topN) Reduce(key GroupKey, rows []Row) RowStream {
	if r.n <= 0 {
		return Rows()
	}
	values := make([]Value, len(rows))
	for i, row := range rows {
		v, ok := row[r.column]
		if !ok {
			return Failed(missingColumn(r.column))
		}
		values[i] = v
	}
	if len(rows) <= r.n {
		return Rows(rows...)
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Compare(values[order[i]], values[order[j]]) > 0
	})
	selected := order[:r.n]
	sort.Ints(selected)

	out := make([]Row, len(selected))
	for i, idx := range selected {
		out[i] = rows[idx]
	}
	return Rows(out...)
}

type termFrequency struct {
	wordsColumn  string
	resultColumn string
}

// TermFrequency returns a Reducer which yields, for each distinct value of
// wordsColumn in a run, a row holding the key columns, the value, and the
// fraction of the run's rows holding that value. Frequencies are stored in
// the "tf" column unless configured otherwise. Values are yielded in order
// of first appearance.
func TermFrequency(wordsColumn string, options ...TFOption) Reducer {
	c := newTFConfig()
	for _, f := range options {
		f(c)
	}
	return termFrequency{wordsColumn: wordsColumn, resultColumn: c.ResultColumn}
}

func (r termFrequency) Reduce(key GroupKey, rows []Row) RowStream {
	// words are told apart the way Compare does, so Int(1) and Float(1)
	// count as one word, reported as it first appeared
	counts := make(map[Value]int)
	words := make([]Value, 0)
	for _, row := range rows {
		v, ok := row[r.wordsColumn]
		if !ok {
			return Failed(missingColumn(r.wordsColumn))
		}
		k := v.groupingKey()
		if _, seen := counts[k]; !seen {
			words = append(words, v)
		}
		counts[k]++
	}

	total := float64(len(rows))
	out := make([]Row, len(words))
	for i, word := range words {
		row := key.Row()
		row[r.wordsColumn] = word
		row[r.resultColumn] = Float(float64(counts[word.groupingKey()]) / total)
		out[i] = row
	}
	return Rows(out...)
}

type count struct{ column string }

// Count returns a Reducer which yields one row per run, holding the key
// columns and the number of rows of the run in column
func Count(column string) Reducer { return count{column: column} }

func (r count) Reduce(key GroupKey, rows []Row) RowStream {
	row := key.Row()
	row[r.column] = Int(int64(len(rows)))
	return Rows(row)
}

type sum struct{ column string }

// Sum returns a Reducer which yields one row per run, holding the key
// columns and the sum of column over the run. The sum is an Int if every
// summed value is an Int, and a Float otherwise.
func Sum(column string) Reducer { return sum{column: column} }

func (r sum) Reduce(key GroupKey, rows []Row) RowStream {
	var (
		isum     int64
		fsum     float64
		hasFloat bool
	)
	for _, row := range rows {
		v, ok := row[r.column]
		if !ok {
			return Failed(missingColumn(r.column))
		}
		switch v.Kind() {
		case IntKind:
			i, _ := v.AsInt()
			if !hasFloat && (i > 0 && isum > math.MaxInt64-i || i < 0 && isum < math.MinInt64-i) {
				// fall back to floating-point on overflow
				hasFloat = true
				fsum = float64(isum)
			}
			if hasFloat {
				fsum += float64(i)
			} else {
				isum += i
			}
		case FloatKind:
			f, _ := v.AsFloat()
			if !hasFloat {
				hasFloat = true
				fsum = float64(isum)
			}
			fsum += f
		default:
			return Failed(&SchemaError{Column: r.column, Reason: "expected numeric value, got " + v.Kind().String()})
		}
	}

	row := key.Row()
	if hasFloat {
		row[r.column] = Float(fsum)
	} else {
		row[r.column] = Int(isum)
	}
	return Rows(row)
}
