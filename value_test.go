package xlsxlite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	require.Equal(t, Null(), From(nil))
	require.Equal(t, Bool(true), From(true))
	require.Equal(t, Int(12), From(12))
	require.Equal(t, Int(12), From(int32(12)))
	require.Equal(t, Int(12), From(uint8(12)))
	require.Equal(t, Float(12.5), From(12.5))
	require.Equal(t, Text("abc"), From("abc"))
	require.Equal(t, Text("[1 2]"), From([]int{1, 2}))
	require.Equal(t, Int(7), From(Int(7)))
}

func TestParse(t *testing.T) {
	require.Equal(t, Int(1500), Parse("1500"))
	require.Equal(t, Int(-3), Parse("-3"))
	require.Equal(t, Float(12.5), Parse("12.5"))
	require.Equal(t, Bool(true), Parse("true"))
	require.Equal(t, Bool(false), Parse("FALSE"))
	require.Equal(t, Text("abc"), Parse("abc"))
	require.Equal(t, Null(), Parse(""))
}

func TestValueString(t *testing.T) {
	require.Equal(t, "", Null().String())
	require.Equal(t, "1", Bool(true).String())
	require.Equal(t, "0", Bool(false).String())
	require.Equal(t, "1500", Int(1500).String())
	require.Equal(t, "12.5", Float(12.5).String())
	// Whole floats render without a decimal point.
	require.Equal(t, "3", Float(3.0).String())
	require.Equal(t, "A & B", Text("A & B").String())
}

func TestValueInterface(t *testing.T) {
	require.Nil(t, Null().Interface())
	require.Equal(t, true, Bool(true).Interface())
	require.Equal(t, int64(5), Int(5).Interface())
	require.Equal(t, 2.5, Float(2.5).Interface())
	require.Equal(t, "x", Text("x").Interface())
}

func TestValueMarshalJSON(t *testing.T) {
	row := []Value{Null(), Bool(true), Int(5), Float(2.5), Text("a\"b")}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	require.JSONEq(t, `[null, true, 5, 2.5, "a\"b"]`, string(data))
}
