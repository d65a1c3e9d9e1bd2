package rowflow

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Supported value kinds. The zero Value has kind Invalid and stands for a
// null or absent value.
const (
	Invalid Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a single column value. It is one of a small closed set of kinds
// and is comparable, so it may be used as a map key.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// Int returns an integer Value
func Int(i int64) Value { return Value{kind: IntKind, i: i} }

// Float returns a floating-point Value
func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

// String returns a string Value
func String(s string) Value { return Value{kind: StringKind, s: s} }

// Bool returns a boolean Value
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// ValueOf converts a native Go value into a Value. Any integer type becomes
// an Int, float32 and float64 become a Float, and nil becomes the zero Value.
func ValueOf(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", v)
}

// Kind returns the variant held by v
func (v Value) Kind() Kind { return v.kind }

// IsNumeric returns true iff v is an Int or a Float
func (v Value) IsNumeric() bool { return v.kind == IntKind || v.kind == FloatKind }

// AsInt returns the integer held by v, if v is an Int
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == IntKind
}

// AsFloat returns the numeric value held by v as a float64. Ints are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case IntKind:
		return float64(v.i), true
	case FloatKind:
		return v.f, true
	}
	return 0, false
}

// AsString returns the string held by v, if v is a String
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

// AsBool returns the boolean held by v, if v is a Bool
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// Interface returns the native Go representation of v
func (v Value) Interface() interface{} {
	switch v.kind {
	case BoolKind:
		return v.b
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case StringKind:
		return v.s
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringKind:
		return strconv.Quote(v.s)
	}
	return "null"
}

// MarshalJSON encodes v as its native JSON representation
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// groupingKey returns a comparable stand-in for v, for use as a map key.
// Numerically equal Ints and Floats share a groupingKey, as do all NaNs.
func (v Value) groupingKey() Value {
	if v.kind != FloatKind {
		return v
	}
	if math.IsNaN(v.f) {
		return Value{kind: FloatKind, s: "NaN"}
	}
	if v.f == math.Trunc(v.f) && v.f >= math.MinInt64 && v.f < -math.MinInt64 {
		return Int(int64(v.f))
	}
	return v
}

// rank orders kinds for cross-kind comparison. Ints and Floats share a rank
// so that they compare numerically.
func (k Kind) rank() int {
	switch k {
	case BoolKind:
		return 1
	case IntKind, FloatKind:
		return 2
	case StringKind:
		return 3
	}
	return 0
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. Values of different kinds order as invalid < bool < numeric <
// string; Ints and Floats compare numerically with each other, and NaN sorts
// after every other number.
func Compare(a, b Value) int {
	if ra, rb := a.kind.rank(), b.kind.rank(); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a.kind {
	case BoolKind:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	case IntKind, FloatKind:
		if a.kind == IntKind && b.kind == IntKind {
			switch {
			case a.i < b.i:
				return -1
			case a.i > b.i:
				return 1
			}
			return 0
		}
		af, _ := a.AsFloat()
		bf, _ := b.AsFloat()
		// NaN sorts after every other number and equals only NaN
		switch aNaN, bNaN := math.IsNaN(af), math.IsNaN(bf); {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case StringKind:
		return strings.Compare(a.s, b.s)
	}
	return 0
}
