package xlsxlite

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
)

// readSheetGrid parses one worksheet part into a complete cell grid.
// Gaps between cell references materialize as Null so column positions
// survive, every row is padded to the widest row observed, and rows that
// are entirely empty after decoding are dropped. Any parse error is
// returned so the caller can isolate the fault to this sheet.
func readSheetGrid(zipFile *zip.File) ([][]Value, error) {
	reader, err := zipFile.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	decoder := xml.NewDecoder(reader)
	if err := skipToSheetData(decoder); err != nil {
		return nil, err
	}

	var grid [][]Value
	maxCols := 0
	for {
		t, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch token := t.(type) {
		case xml.StartElement:
			if token.Name.Local != "row" {
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			row, err := readSheetRow(decoder)
			if err != nil {
				return nil, err
			}
			grid = append(grid, row)
			if len(row) > maxCols {
				maxCols = len(row)
			}
		case xml.EndElement:
			if token.Name.Local == "sheetData" {
				return packGrid(grid, maxCols), nil
			}
		}
	}
	return packGrid(grid, maxCols), nil
}

// skipToSheetData advances the decoder into the sheetData element,
// skipping sibling elements like dimension and sheetViews.
func skipToSheetData(decoder *xml.Decoder) error {
	for {
		t, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch token := t.(type) {
		case xml.StartElement:
			switch token.Name.Local {
			case "worksheet":
				//
			case "sheetData":
				return nil
			default:
				if err := decoder.Skip(); err != nil {
					return err
				}
			}
		}
	}
}

// readSheetRow consumes one row element, already entered, through its
// end tag. Cell positions come from each cell's reference prefix; cells
// without a reference land after the previous one.
func readSheetRow(decoder *xml.Decoder) ([]Value, error) {
	var row []Value
	for {
		t, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch token := t.(type) {
		case xml.StartElement:
			if token.Name.Local != "c" {
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			col := len(row)
			typ := ""
			for _, a := range token.Attr {
				switch a.Name.Local {
				case "r":
					if c := columnIndex(a.Value); c >= 0 {
						col = c
					}
				case "t":
					typ = a.Value
				}
			}
			v, err := readCell(decoder, typ)
			if err != nil {
				return nil, err
			}
			for len(row) < col {
				row = append(row, Null())
			}
			if col < len(row) {
				// Out-of-order reference; overwrite in place.
				row[col] = v
			} else {
				row = append(row, v)
			}
		case xml.EndElement:
			if token.Name.Local == "row" {
				return row, nil
			}
		}
	}
}

// readCell consumes one cell element, already entered, collecting its
// value node and inline string text, and decodes them.
func readCell(decoder *xml.Decoder, typ string) (Value, error) {
	val := ""
	inline := ""
	hasInline := false
	isV := false
	isT := false
	for {
		t, err := decoder.Token()
		if err != nil {
			return Null(), err
		}
		switch token := t.(type) {
		case xml.StartElement:
			switch token.Name.Local {
			case "v":
				isV = true
			case "is":
				//
			case "t":
				isT = true
				hasInline = true
			default:
				if err := decoder.Skip(); err != nil {
					return Null(), err
				}
			}
		case xml.EndElement:
			switch token.Name.Local {
			case "v":
				isV = false
			case "t":
				isT = false
			case "c":
				return decodeCell(typ, val, inline, hasInline), nil
			}
		case xml.CharData:
			if isV {
				val += string(token)
			}
			if isT {
				inline += string(token)
			}
		}
	}
}

// packGrid pads every row to width and drops all-empty rows.
func packGrid(grid [][]Value, width int) [][]Value {
	var result [][]Value
	for _, row := range grid {
		for len(row) < width {
			row = append(row, Null())
		}
		empty := true
		for _, v := range row {
			if !isEmptyCell(v) {
				empty = false
				break
			}
		}
		if !empty {
			result = append(result, row)
		}
	}
	return result
}
