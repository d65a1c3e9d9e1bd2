package rowflow

type mapStream struct {
	mapper Mapper
	src    RowStream
	cur    RowStream // expansion of the current input row
	row    Row
	err    error
	done   bool
}

// Map applies m to every row of rows, in order. The result is the
// concatenation of each row's expansion. Only one input row is expanded at a
// time, and the first failure ends the stream.
func Map(m Mapper, rows RowStream) RowStream {
	return &mapStream{mapper: m, src: rows}
}

func (s *mapStream) Next() bool {
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
		if !s.src.Next() {
			return s.fail(s.src.Err())
		}
		s.cur = safeMap(s.mapper, s.src.Row())
	}
}

func (s *mapStream) fail(err error) bool {
	s.err = err
	s.done = true
	s.row, s.cur = nil, nil
	return false
}

func (s *mapStream) Row() Row   { return s.row }
func (s *mapStream) Err() error { return s.err }
