package rowflow

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOf(t *testing.T) {
	var valueTests = []struct {
		input    interface{}
		expected Value
	}{
		{nil, Value{}},
		{true, Bool(true)},
		{"foo", String("foo")},
		{3, Int(3)},
		{int32(-4), Int(-4)},
		{uint8(7), Int(7)},
		{float32(0.5), Float(0.5)},
		{2.25, Float(2.25)},
		{Int(9), Int(9)},
	}

	for _, test := range valueTests {
		v, err := ValueOf(test.input)
		assert.Nil(t, err)
		assert.Equal(t, test.expected, v)
	}

	_, err := ValueOf([]int{1})
	assert.NotNil(t, err)
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(3).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	f, ok := Int(3).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = Float(3).AsInt()
	assert.False(t, ok)

	_, ok = String("3").AsFloat()
	assert.False(t, ok)

	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, Float(1).IsNumeric())
	assert.False(t, Bool(true).IsNumeric())
	assert.Equal(t, Invalid, Value{}.Kind())
	assert.Nil(t, Value{}.Interface())
}

func TestCompare(t *testing.T) {
	var compareTests = []struct {
		a, b     Value
		expected int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(3), Int(2), 1},
		{Int(1), Float(1), 0},
		{Float(0.5), Int(1), -1},
		{Int(-5), Float(-5.5), 1},
		{String("a"), String("b"), -1},
		{String("b"), String("b"), 0},
		{Bool(false), Bool(true), -1},
		{Bool(true), Bool(true), 0},
		{Value{}, Bool(false), -1},
		{Bool(true), Int(0), -1},
		{Int(100), String(""), -1},
		{String(""), Float(-1), 1},
		{Float(math.NaN()), Float(math.NaN()), 0},
		{Float(math.NaN()), Int(5), 1},
		{Int(1), Float(math.NaN()), -1},
		{Float(math.NaN()), Float(math.Inf(1)), 1},
		{Float(math.NaN()), String(""), -1},
	}

	for _, test := range compareTests {
		assert.Equal(t, test.expected, Compare(test.a, test.b), "%s vs %s", test.a, test.b)
	}
}

func TestGroupingKey(t *testing.T) {
	assert.Equal(t, Int(1).groupingKey(), Float(1).groupingKey())
	assert.Equal(t, Float(math.NaN()).groupingKey(), Float(math.NaN()).groupingKey())
	assert.NotEqual(t, Float(1.5).groupingKey(), Int(1).groupingKey())
	assert.NotEqual(t, Float(math.NaN()).groupingKey(), Float(0).groupingKey())
	assert.Equal(t, Float(math.Inf(-1)), Float(math.Inf(-1)).groupingKey())
	assert.Equal(t, String("1"), String("1").groupingKey())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "0.25", Float(0.25).String())
	assert.Equal(t, `"hi"`, String("hi").String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "null", Value{}.String())
	assert.Equal(t, "string", StringKind.String())
}

func TestValueMarshalJSON(t *testing.T) {
	encoded, err := json.Marshal(Row{"a": Int(1), "b": String("x"), "c": Float(0.5), "d": Value{}})
	assert.Nil(t, err)
	assert.JSONEq(t, `{"a":1,"b":"x","c":0.5,"d":null}`, string(encoded))
}
