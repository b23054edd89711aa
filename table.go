// Package xlsxlite reads and writes a minimal subset of the OOXML
// spreadsheet format (.xlsx) using only the standard library. It encodes
// named tables of scalar values into a package that standard readers can
// open, and decodes such packages back into tables. Formulas, styling,
// merged cells and the shared-strings table are out of scope.
package xlsxlite

// ContentType is the MIME type of an encoded package, for download or
// upload handling by the caller.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Table is one worksheet's worth of data: an ordered list of column names
// followed by ordered rows of positional values.
//
// On encode, Columns becomes the first worksheet row and Rows follow it.
// On decode, Columns is left empty and Rows holds the complete grid;
// treating the first row as a header is the caller's decision.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]Value
}
