package rowflow

// RowStream is a finite, single-pass, ordered sequence of Rows. Consumers
// pull rows one at a time, in the manner of bufio.Scanner:
//
//	for s.Next() {
//		row := s.Row()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
//
// Once Next has returned false it keeps returning false. A RowStream cannot
// be rewound.
type RowStream interface {
	// Next advances to the next row. It returns false at the end of the
	// stream or when an error occurred.
	Next() bool
	// Row returns the row most recently produced by Next
	Row() Row
	// Err returns the error that stopped the stream, if any
	Err() error
}

type sliceStream struct {
	rows []Row
	pos  int
}

// Rows returns a RowStream over the given rows
func Rows(rows ...Row) RowStream {
	return &sliceStream{rows: rows, pos: -1}
}

func (s *sliceStream) Next() bool {
	if s.pos+1 >= len(s.rows) {
		s.pos = len(s.rows)
		return false
	}
	s.pos++
	return true
}

func (s *sliceStream) Row() Row {
	if s.pos < 0 || s.pos >= len(s.rows) {
		return nil
	}
	return s.rows[s.pos]
}

func (s *sliceStream) Err() error { return nil }

type failedStream struct{ err error }

// Failed returns an empty RowStream which reports err
func Failed(err error) RowStream {
	return failedStream{err: err}
}

func (f failedStream) Next() bool { return false }
func (f failedStream) Row() Row   { return nil }
func (f failedStream) Err() error { return f.err }

type concatStream struct {
	streams []RowStream
	row     Row
	err     error
}

// Concat returns a RowStream yielding every row of each stream in turn
func Concat(streams ...RowStream) RowStream {
	return &concatStream{streams: streams}
}

func (c *concatStream) Next() bool {
	for c.err == nil && len(c.streams) > 0 {
		s := c.streams[0]
		if s.Next() {
			c.row = s.Row()
			return true
		}
		c.err = s.Err()
		c.streams = c.streams[1:]
	}
	c.row = nil
	return false
}

func (c *concatStream) Row() Row   { return c.row }
func (c *concatStream) Err() error { return c.err }

// Collect drains s into a slice. On error, the rows read so far are
// returned together with the error.
func Collect(s RowStream) ([]Row, error) {
	rows := make([]Row, 0)
	for s.Next() {
		rows = append(rows, s.Row())
	}
	return rows, s.Err()
}

// guardedStream recovers panics raised while pulling a strategy's output
type guardedStream struct {
	strategy string
	src      RowStream
	row      Row
	err      error
	done     bool
}

func guard(strategy string, src RowStream) RowStream {
	if src == nil {
		return Rows()
	}
	return &guardedStream{strategy: strategy, src: src}
}

func (g *guardedStream) Next() (ok bool) {
	if g.done {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			g.err = recovered(g.strategy, r)
			g.row = nil
			g.done = true
			ok = false
		}
	}()
	if !g.src.Next() {
		g.done = true
		g.err = g.src.Err()
		g.row = nil
		return false
	}
	g.row = g.src.Row()
	return true
}

func (g *guardedStream) Row() Row   { return g.row }
func (g *guardedStream) Err() error { return g.err }
