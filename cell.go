package xlsxlite

import (
	"math"
	"strconv"
)

// cellElem encodes one value as a worksheet cell at ref.
//
// Mapping, in priority order: Null and empty text become an empty cell;
// booleans are typed "b" with value 1/0; numbers are plain value nodes
// (whole floats without a decimal point); text is an inline string.
func cellElem(ref string, v Value) *xmlElem {
	switch v.kind {
	case KindBool:
		val := "0"
		if v.b {
			val = "1"
		}
		return elem("c", attr("r", ref), attr("t", "b")).add(textElem("v", val))
	case KindInt:
		return elem("c", attr("r", ref)).add(textElem("v", strconv.FormatInt(v.n, 10)))
	case KindFloat:
		return elem("c", attr("r", ref)).add(textElem("v", formatNumber(v.f)))
	case KindText:
		if v.s == "" {
			break
		}
		return elem("c", attr("r", ref), attr("t", "inlineStr")).
			add(elem("is").add(textElem("t", v.s)))
	}
	return elem("c", attr("r", ref))
}

// decodeCell is the inverse mapping, keyed by the declared cell type.
// val is the <v> node's text; inline is the <is><t> text with hasInline
// reporting whether the node was present at all.
func decodeCell(typ, val string, inline string, hasInline bool) Value {
	switch typ {
	case "b":
		if val == "" {
			val = "0"
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return Bool(false)
		}
		return Bool(n != 0)
	case "inlineStr":
		if !hasInline {
			return Null()
		}
		return Text(inline)
	case "":
		if val == "" {
			return Null()
		}
		return decodeNumber(val)
	default:
		// Unknown declared type: keep the raw text rather than drop it.
		if val == "" {
			return Null()
		}
		return Text(val)
	}
}

// decodeNumber parses an untyped value node: integer if possible, a whole
// float also yields an integer, otherwise float, and unparseable text is
// kept as-is.
func decodeNumber(val string) Value {
	if n, err := strconv.ParseInt(val, 10, 64); err == nil {
		return Int(n)
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return Text(val)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return Int(int64(f))
	}
	return Float(f)
}

// isEmptyCell reports whether a decoded value carries no data, for
// dropping all-empty rows.
func isEmptyCell(v Value) bool {
	return v.kind == KindNull || (v.kind == KindText && v.s == "")
}
