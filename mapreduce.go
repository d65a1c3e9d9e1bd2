package rowflow

// Mapper defines the interface for a row-wise transform. Map receives one row
// and returns the zero or more rows it expands to.
type Mapper interface {
	Map(row Row) RowStream
}

// Reducer defines the interface for a grouped aggregation. Reduce receives
// the key of one group run along with every row of the run, in input order.
type Reducer interface {
	Reduce(key GroupKey, rows []Row) RowStream
}

// Joiner defines the interface for a join semantic. Join receives the key of
// a group together with the rows holding that key in each input; either side
// may be empty, but never both.
type Joiner interface {
	Join(key GroupKey, a, b []Row) RowStream
}

// MapperFunc adapts an ordinary function to a Mapper
type MapperFunc func(row Row) RowStream

// Map calls f(row)
func (f MapperFunc) Map(row Row) RowStream { return f(row) }

// ReducerFunc adapts an ordinary function to a Reducer
type ReducerFunc func(key GroupKey, rows []Row) RowStream

// Reduce calls f(key, rows)
func (f ReducerFunc) Reduce(key GroupKey, rows []Row) RowStream { return f(key, rows) }

// JoinerFunc adapts an ordinary function to a Joiner
type JoinerFunc func(key GroupKey, a, b []Row) RowStream

// Join calls f(key, a, b)
func (f JoinerFunc) Join(key GroupKey, a, b []Row) RowStream { return f(key, a, b) }

// The safe* helpers invoke a strategy and recover a panic into a
// StrategyError. The returned stream is guarded in the same way.

func safeMap(m Mapper, row Row) (out RowStream) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(recovered("mapper", r))
		}
	}()
	return guard("mapper", m.Map(row))
}

func safeReduce(r Reducer, key GroupKey, rows []Row) (out RowStream) {
	defer func() {
		if p := recover(); p != nil {
			out = Failed(recovered("reducer", p))
		}
	}()
	return guard("reducer", r.Reduce(key, rows))
}

func safeJoin(j Joiner, key GroupKey, a, b []Row) (out RowStream) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(recovered("joiner", r))
		}
	}()
	return guard("joiner", j.Join(key, a, b))
}
