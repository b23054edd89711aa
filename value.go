package xlsxlite

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the closed set of cell value types.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
)

// Value is a single cell value. The zero Value is Null.
//
// Two collapses are lossy across an encode/decode round trip: Text("")
// is written as an empty cell and comes back as Null, and a whole-valued
// Float is written without a decimal point and comes back as Int.
type Value struct {
	kind Kind
	b    bool
	n    int64
	f    float64
	s    string
}

// Null returns the empty cell value.
func Null() Value { return Value{} }

// Bool returns a boolean cell value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer cell value.
func Int(n int64) Value { return Value{kind: KindInt, n: n} }

// Float returns a floating-point cell value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text cell value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// From coerces an arbitrary Go value into the closed union. Unrecognized
// types are rendered as text; they are never rejected.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return Text(x)
	default:
		return Text(fmt.Sprint(x))
	}
}

// Parse sniffs a typed value out of untyped text, for callers rebuilding
// tables from sources like CSV: integer first, then float, then boolean,
// otherwise the text itself. Empty text parses as Null.
func Parse(s string) Value {
	if s == "" {
		return Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	if b, err := strconv.ParseBool(strings.ToLower(s)); err == nil {
		return Bool(b)
	}
	return Text(s)
}

// Kind reports which member of the union the value is.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; false unless Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 unless Kind is KindInt.
func (v Value) Int() int64 { return v.n }

// Float returns the float payload; 0 unless Kind is KindFloat.
func (v Value) Float() float64 { return v.f }

// Text returns the text payload; "" unless Kind is KindText.
func (v Value) Text() string { return v.s }

// Interface returns the payload as nil, bool, int64, float64 or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.n
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}

// String renders the value the way the encoder would write it.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	case KindFloat:
		return formatNumber(v.f)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON renders Null as null, Bool as a boolean, Int and Float as
// numbers and Text as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// formatNumber renders a float the way the encoder writes numeric cells:
// whole values lose the decimal point so readers treat them as integers.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
