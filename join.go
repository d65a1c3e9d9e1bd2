package rowflow

import (
	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

type joinStream struct {
	joiner Joiner
	a, b   *groupScanner

	started            bool
	aOK, bOK           bool // the side holds an unconsumed run
	advanceA, advanceB bool // the side's run was handed to the joiner

	cur  RowStream
	row  Row
	err  error
	done bool

	matched, onlyA, onlyB int64
}

// Join merges two streams, each sorted ascending by keys, group by group.
// For every distinct key found in either stream, in ascending order, j
// receives the rows holding that key in a and in b; a side lacking the key
// contributes no rows. The result is the concatenation of j's output.
//
// Both streams are checked for sortedness independently, and a violation in
// either fails the join.
func Join(j Joiner, keys []string, a, b RowStream) RowStream {
	if err := checkKeys(keys); err != nil {
		return Failed(err)
	}
	return &joinStream{
		joiner: j,
		a:      newGroupScanner(a, keys),
		b:      newGroupScanner(b, keys),
	}
}

// advance moves the scanners whose runs were consumed by the last joiner
// call. Runs are only pulled once the previous output is exhausted.
func (s *joinStream) advance() error {
	if !s.started {
		s.started = true
		s.advanceA, s.advanceB = true, true
	}
	if s.advanceA {
		s.advanceA = false
		s.aOK = s.a.Next()
		if err := s.a.Err(); err != nil {
			return err
		}
	}
	if s.advanceB {
		s.advanceB = false
		s.bOK = s.b.Next()
		if err := s.b.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *joinStream) Next() bool {
	if s.done {
		return false
	}
	for {
		if s.cur != nil {
			if s.cur.Next() {
				s.row = s.cur.Row()
				return true
			}
			if err := s.cur.Err(); err != nil {
				return s.fail(err)
			}
			s.cur = nil
		}
		if err := s.advance(); err != nil {
			return s.fail(err)
		}

		// An exhausted side compares greater than any key.
		var cmp int
		switch {
		case !s.aOK && !s.bOK:
			if log.IsLevelEnabled(log.DebugLevel) {
				log.Debugf("Join finished: %s matched keys, %s only in first stream, %s only in second stream",
					humanize.Comma(s.matched), humanize.Comma(s.onlyA), humanize.Comma(s.onlyB))
			}
			return s.fail(nil)
		case !s.bOK:
			cmp = -1
		case !s.aOK:
			cmp = 1
		default:
			cmp = s.a.Key().Compare(s.b.Key())
		}

		switch {
		case cmp < 0:
			s.onlyA++
			s.cur = safeJoin(s.joiner, s.a.Key(), s.a.Rows(), nil)
			s.advanceA = true
		case cmp > 0:
			s.onlyB++
			s.cur = safeJoin(s.joiner, s.b.Key(), nil, s.b.Rows())
			s.advanceB = true
		default:
			s.matched++
			s.cur = safeJoin(s.joiner, s.a.Key(), s.a.Rows(), s.b.Rows())
			s.advanceA, s.advanceB = true, true
		}
	}
}

func (s *joinStream) fail(err error) bool {
	s.err = err
	s.done = true
	s.row, s.cur = nil, nil
	return false
}

func (s *joinStream) Row() Row   { return s.row }
func (s *joinStream) Err() error { return s.err }
