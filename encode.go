package xlsxlite

import (
	"archive/zip"
	"bytes"
	"strconv"
	"time"
)

// Encode serializes tables into a complete spreadsheet package and
// returns the archive bytes. It is total over any well-typed table list:
// names are sanitized into legal unique worksheet names, values follow
// the cell mapping in cellElem, and the only error source is the archive
// writer itself.
func Encode(tables []Table) ([]byte, error) {
	names := make([]string, len(tables))
	used := make(map[string]bool, len(tables))
	for i, t := range tables {
		names[i] = sanitizeSheetName(t.Name, i, used)
	}

	parts := packageParts(names, time.Now())
	for i, t := range tables {
		parts = append(parts, part{
			name: "xl/worksheets/sheet" + strconv.Itoa(i+1) + ".xml",
			data: worksheetXML(t),
		})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// worksheetXML renders one table as a worksheet part: the occupied
// rectangle's dimension reference, then the header row (when the table
// has columns) followed by the data rows, each padded to the rectangle's
// full width.
func worksheetXML(t Table) []byte {
	cols := len(t.Columns)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	rows := len(t.Rows)
	if len(t.Columns) > 0 {
		rows++
	}

	// A zero-row table still declares a one-cell rectangle.
	dimCols, dimRows := cols, rows
	if dimCols == 0 {
		dimCols = 1
	}
	if dimRows == 0 {
		dimRows = 1
	}

	sheetData := elem("sheetData")
	rowNum := 0
	if len(t.Columns) > 0 {
		header := make([]Value, len(t.Columns))
		for i, name := range t.Columns {
			header[i] = Text(name)
		}
		sheetData.add(rowElem(rowNum, header, cols))
		rowNum++
	}
	for _, row := range t.Rows {
		sheetData.add(rowElem(rowNum, row, cols))
		rowNum++
	}

	return elem("worksheet", attr("xmlns", nsMain)).add(
		elem("dimension", attr("ref", "A1:"+cellRef(dimCols-1, dimRows-1))),
		sheetData,
	).document()
}

// rowElem renders one row with exactly cols cells; indexes past the end
// of row are written as empty cells.
func rowElem(rowNum int, row []Value, cols int) *xmlElem {
	r := elem("row", attr("r", strconv.Itoa(rowNum+1)))
	for c := 0; c < cols; c++ {
		v := Null()
		if c < len(row) {
			v = row[c]
		}
		r.add(cellElem(cellRef(c, rowNum), v))
	}
	return r
}
