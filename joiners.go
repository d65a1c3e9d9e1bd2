package rowflow

import "fmt"

// joinerBase holds what every built-in Joiner shares: the suffixes used to
// resolve column collisions, and the cross product of two matched groups.
type joinerBase struct {
	suffixA string
	suffixB string
}

func newJoinerBase(options []JoinOption) joinerBase {
	c := newJoinConfig()
	for _, f := range options {
		f(c)
	}
	return joinerBase{suffixA: c.SuffixA, suffixB: c.SuffixB}
}

// cross yields the cross product of a and b, a-major
func (j joinerBase) cross(key GroupKey, a, b []Row) RowStream {
	if len(a) == 0 || len(b) == 0 {
		return Rows()
	}
	return &crossStream{joiner: j, key: key, a: a, b: b, j: -1}
}

// merge combines one row of each side. Key columns are taken once, from a.
// A non-key column present on both sides is kept twice, renamed with the
// configured suffixes. Any remaining collision between output columns is a
// SchemaError.
func (j joinerBase) merge(key GroupKey, a, b Row) (Row, error) {
	isKey := make(map[string]bool, len(key.Columns))
	for _, col := range key.Columns {
		isKey[col] = true
	}

	out := make(Row, len(a)+len(b))
	put := func(col string, v Value) error {
		if _, exists := out[col]; exists {
			return &SchemaError{Column: col, Reason: fmt.Sprintf("join output column collides (suffixes %q and %q)", j.suffixA, j.suffixB)}
		}
		out[col] = v
		return nil
	}

	for col, v := range a {
		name := col
		if _, shared := b[col]; shared && !isKey[col] {
			name = col + j.suffixA
		}
		if err := put(name, v); err != nil {
			return nil, err
		}
	}
	for col, v := range b {
		if isKey[col] {
			if _, fromA := a[col]; fromA {
				continue
			}
		}
		name := col
		if _, shared := a[col]; shared && !isKey[col] {
			name = col + j.suffixB
		}
		if err := put(name, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// crossStream merges row pairs as they are pulled
type crossStream struct {
	joiner joinerBase
	key    GroupKey
	a, b   []Row
	i, j   int
	cur    Row
	err    error
}

func (c *crossStream) Next() bool {
	if c.err != nil || c.i >= len(c.a) {
		c.cur = nil
		return false
	}
	c.j++
	if c.j >= len(c.b) {
		c.i, c.j = c.i+1, 0
		if c.i >= len(c.a) {
			c.cur = nil
			return false
		}
	}
	row, err := c.joiner.merge(c.key, c.a[c.i], c.b[c.j])
	if err != nil {
		c.err, c.cur = err, nil
		return false
	}
	c.cur = row
	return true
}

func (c *crossStream) Row() Row   { return c.cur }
func (c *crossStream) Err() error { return c.err }

type innerJoiner struct{ joinerBase }

// InnerJoiner returns a Joiner which yields the cross product of the rows
// holding a key on both sides, and nothing for keys found on one side only
func InnerJoiner(options ...JoinOption) Joiner {
	return innerJoiner{newJoinerBase(options)}
}

func (j innerJoiner) Join(key GroupKey, a, b []Row) RowStream {
	return j.cross(key, a, b)
}

type outerJoiner struct{ joinerBase }

// OuterJoiner returns a Joiner which behaves as InnerJoiner for keys found on
// both sides, and yields the rows of a key found on one side only unchanged
func OuterJoiner(options ...JoinOption) Joiner {
	return outerJoiner{newJoinerBase(options)}
}

func (j outerJoiner) Join(key GroupKey, a, b []Row) RowStream {
	switch {
	case len(a) == 0:
		return Rows(b...)
	case len(b) == 0:
		return Rows(a...)
	}
	return j.cross(key, a, b)
}

type leftJoiner struct{ joinerBase }

// LeftJoiner returns a Joiner which behaves as InnerJoiner for keys found on
// both sides, yields rows of the first input unchanged when the second lacks
// their key, and drops keys found only in the second input
func LeftJoiner(options ...JoinOption) Joiner {
	return leftJoiner{newJoinerBase(options)}
}

func (j leftJoiner) Join(key GroupKey, a, b []Row) RowStream {
	if len(b) == 0 {
		return Rows(a...)
	}
	return j.cross(key, a, b)
}

type rightJoiner struct{ joinerBase }

// RightJoiner is the mirror image of LeftJoiner: rows of the second input
// are kept when the first lacks their key
func RightJoiner(options ...JoinOption) Joiner {
	return rightJoiner{newJoinerBase(options)}
}

func (j rightJoiner) Join(key GroupKey, a, b []Row) RowStream {
	if len(a) == 0 {
		return Rows(b...)
	}
	return j.cross(key, a, b)
}
