package xlsxlite

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// Decode parses a spreadsheet package into tables keyed by worksheet
// name, leaving header interpretation to the caller. Sheets are
// processed in the workbook's declared order; a parse fault confined to
// one worksheet part yields an empty table for that sheet only, while a
// missing or unparseable workbook or relationship part fails the whole
// decode with an error matching ErrFormat.
func Decode(data []byte) (map[string]Table, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, file := range zr.File {
		files[file.Name] = file
	}

	relsFile, ok := files["xl/_rels/workbook.xml.rels"]
	if !ok {
		return nil, ErrWorkbookRelsNotExist
	}
	targets, err := openPart(relsFile, readWorkbookRels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookRelsNotExist, err)
	}

	workbookFile, ok := files["xl/workbook.xml"]
	if !ok {
		return nil, ErrWorkbookNotExist
	}
	entries, err := openPart(workbookFile, readWorkbook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookNotExist, err)
	}

	result := make(map[string]Table, len(entries))
	for _, entry := range entries {
		result[entry.Name] = Table{
			Name: entry.Name,
			Rows: decodeSheet(files, targets[entry.ID]),
		}
	}
	return result, nil
}

// decodeSheet resolves and parses one worksheet part. A missing part or
// a parse fault is absorbed here: the sheet decodes to no rows.
func decodeSheet(files map[string]*zip.File, path string) [][]Value {
	file, ok := files[path]
	if !ok {
		return nil
	}
	grid, err := readSheetGrid(file)
	if err != nil {
		return nil
	}
	return grid
}

// openPart opens a zip member and hands its reader to parse.
func openPart[T any](file *zip.File, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	reader, err := file.Open()
	if err != nil {
		return zero, err
	}
	defer reader.Close()
	return parse(reader)
}
