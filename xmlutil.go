package xlsxlite

import "bytes"

// Small XML element builder for the fixed package parts and worksheet
// grids. Reader compatibility depends on exact element and attribute
// names, the self-closed empty-cell form and stable attribute order,
// which rules out encoding/xml marshalling here.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

type xmlAttr struct {
	name  string
	value string
}

type xmlElem struct {
	name     string
	attrs    []xmlAttr
	text     string
	children []*xmlElem
}

func elem(name string, attrs ...xmlAttr) *xmlElem {
	return &xmlElem{name: name, attrs: attrs}
}

func textElem(name, text string) *xmlElem {
	return &xmlElem{name: name, text: text}
}

func attr(name, value string) xmlAttr {
	return xmlAttr{name: name, value: value}
}

// add appends children and returns the element for chaining.
func (e *xmlElem) add(children ...*xmlElem) *xmlElem {
	e.children = append(e.children, children...)
	return e
}

// setText sets the element's character data and returns the element.
func (e *xmlElem) setText(s string) *xmlElem {
	e.text = s
	return e
}

func (e *xmlElem) render(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.name)
	for _, a := range e.attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		writeEscaped(buf, a.value)
		buf.WriteByte('"')
	}
	if e.text == "" && len(e.children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	writeEscaped(buf, e.text)
	for _, c := range e.children {
		c.render(buf)
	}
	buf.WriteString("</")
	buf.WriteString(e.name)
	buf.WriteByte('>')
}

// document renders the element as a standalone XML part.
func (e *xmlElem) document() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	e.render(&buf)
	return buf.Bytes()
}

func writeEscaped(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
}
