package rowflow

import (
	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// groupScanner partitions a key-sorted RowStream into group runs: maximal
// contiguous subsequences of rows sharing one GroupKey. It reads at most one
// row past the end of a run, and holds only the rows of the current run.
//
// Every new run is checked against the greatest key of the runs closed
// before it; a lower key means the input was not sorted and fails the scan
// with an OrderingViolationError.
type groupScanner struct {
	src  RowStream
	keys []string

	pending    Row // first row of the next run, already pulled from src
	hasPending bool

	maxKey  GroupKey // greatest key of any closed run
	hasMax  bool
	key     GroupKey // key of the current run
	rows    []Row
	err     error
	drained bool // src returned false
	done    bool
}

func newGroupScanner(src RowStream, keys []string) *groupScanner {
	return &groupScanner{src: src, keys: keys}
}

// pull fetches the next row of src, or the pending lookahead row
func (g *groupScanner) pull() (Row, bool) {
	if g.hasPending {
		row := g.pending
		g.pending, g.hasPending = nil, false
		return row, true
	}
	if g.drained {
		return nil, false
	}
	if !g.src.Next() {
		g.drained = true
		g.err = g.src.Err()
		return nil, false
	}
	return g.src.Row(), true
}

func (g *groupScanner) fail(err error) bool {
	g.err = err
	g.done = true
	g.key, g.rows = GroupKey{}, nil
	return false
}

// Next loads the next run. It returns false at the end of the input or when
// the scan fails, in which case Err reports why.
func (g *groupScanner) Next() bool {
	if g.done {
		return false
	}
	first, ok := g.pull()
	if !ok {
		g.done = true
		g.key, g.rows = GroupKey{}, nil
		return false
	}
	key, err := KeyOf(first, g.keys)
	if err != nil {
		return g.fail(err)
	}
	if g.hasMax && key.Compare(g.maxKey) < 0 {
		log.WithFields(log.Fields{
			"key":      key.String(),
			"previous": g.maxKey.String(),
		}).Warn("Input stream is not sorted by its group key")
		return g.fail(&OrderingViolationError{Key: key, Previous: g.maxKey})
	}

	rows := []Row{first}
	for {
		row, ok := g.pull()
		if !ok {
			if g.err != nil {
				return g.fail(g.err)
			}
			break
		}
		rowKey, err := KeyOf(row, g.keys)
		if err != nil {
			return g.fail(err)
		}
		if !rowKey.Equal(key) {
			g.pending, g.hasPending = row, true
			break
		}
		rows = append(rows, row)
	}

	g.key, g.rows = key, rows
	if !g.hasMax || key.Compare(g.maxKey) > 0 {
		g.maxKey, g.hasMax = key, true
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("Closed group %s (%s rows)", key, humanize.Comma(int64(len(rows))))
	}
	return true
}

// Key returns the key of the current run
func (g *groupScanner) Key() GroupKey { return g.key }

// Rows returns the rows of the current run, in input order
func (g *groupScanner) Rows() []Row { return g.rows }

// Err returns the error that stopped the scan, if any
func (g *groupScanner) Err() error { return g.err }
