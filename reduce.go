package rowflow

type reduceStream struct {
	reducer Reducer
	groups  *groupScanner
	cur     RowStream // output of the most recently closed run
	row     Row
	err     error
	done    bool
}

// Reduce groups rows, which must already be sorted ascending by keys, into
// runs of equal key and applies r to each run. The result is the
// concatenation of r's output over the runs, in input order.
//
// A key that sorts below a key already seen fails the stream with an
// OrderingViolationError once the scan reaches it. Rows yielded before that
// point remain valid.
func Reduce(r Reducer, keys []string, rows RowStream) RowStream {
	if err := checkKeys(keys); err != nil {
		return Failed(err)
	}
	return &reduceStream{reducer: r, groups: newGroupScanner(rows, keys)}
}

func (s *reduceStream) Next() bool {
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
		if !s.groups.Next() {
			return s.fail(s.groups.Err())
		}
		s.cur = safeReduce(s.reducer, s.groups.Key(), s.groups.Rows())
	}
}

func (s *reduceStream) fail(err error) bool {
	s.err = err
	s.done = true
	s.row, s.cur = nil, nil
	return false
}

func (s *reduceStream) Row() Row   { return s.row }
func (s *reduceStream) Err() error { return s.err }
