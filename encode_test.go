package xlsxlite

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func renderElem(t *testing.T, e *xmlElem) string {
	t.Helper()
	var buf bytes.Buffer
	e.render(&buf)
	return buf.String()
}

func TestCellElem(t *testing.T) {
	require.Equal(t, `<c r="A1"/>`, renderElem(t, cellElem("A1", Null())))
	require.Equal(t, `<c r="A1"/>`, renderElem(t, cellElem("A1", Text(""))))
	require.Equal(t, `<c r="B2" t="b"><v>1</v></c>`, renderElem(t, cellElem("B2", Bool(true))))
	require.Equal(t, `<c r="B2" t="b"><v>0</v></c>`, renderElem(t, cellElem("B2", Bool(false))))
	require.Equal(t, `<c r="C3"><v>1500</v></c>`, renderElem(t, cellElem("C3", Int(1500))))
	require.Equal(t, `<c r="C3"><v>12.5</v></c>`, renderElem(t, cellElem("C3", Float(12.5))))
	require.Equal(t, `<c r="C3"><v>3</v></c>`, renderElem(t, cellElem("C3", Float(3.0))))
	require.Equal(t,
		`<c r="D4" t="inlineStr"><is><t>A &amp; B &lt;C&gt;</t></is></c>`,
		renderElem(t, cellElem("D4", Text("A & B <C>"))))
}

func TestWorksheetXMLDimension(t *testing.T) {
	table := Table{
		Name:    "t",
		Columns: []string{"a", "b", "c"},
		Rows: [][]Value{
			{Int(1)},
			{Int(1), Int(2), Int(3), Int(4)},
		},
	}
	data := string(worksheetXML(table))
	// 4 columns wide (widest row), 3 rows high (header + 2).
	require.Contains(t, data, `<dimension ref="A1:D3"/>`)
	// Short rows are written out to the full rectangle width.
	require.Contains(t, data, `<row r="2"><c r="A2"><v>1</v></c><c r="B2"/><c r="C2"/><c r="D2"/></row>`)
}

func TestWorksheetXMLEmptyTable(t *testing.T) {
	data := string(worksheetXML(Table{Name: "t"}))
	require.Contains(t, data, `<dimension ref="A1:A1"/>`)
	require.Contains(t, data, `<sheetData/>`)
}

func TestEncodePackageLayout(t *testing.T) {
	data, err := Encode([]Table{
		{Name: "One", Columns: []string{"a"}},
		{Name: "Two", Columns: []string{"b"}},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/styles.xml",
		"xl/worksheets/sheet1.xml",
		"xl/worksheets/sheet2.xml",
	} {
		require.Contains(t, names, want)
	}
}

func TestEncodeWorkbookListsSheetsInOrder(t *testing.T) {
	data, err := Encode([]Table{{Name: "First"}, {Name: "Second"}})
	require.NoError(t, err)

	workbook := readArchivePart(t, data, "xl/workbook.xml")
	require.Contains(t, workbook, `<sheet name="First" sheetId="1" r:id="rId1"/>`)
	require.Contains(t, workbook, `<sheet name="Second" sheetId="2" r:id="rId2"/>`)
	require.Less(t, strings.Index(workbook, "First"), strings.Index(workbook, "Second"))
}

func TestEncodeZeroTables(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)

	tables, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, tables)
}

func readArchivePart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		return buf.String()
	}
	t.Fatalf("part %s not found", name)
	return ""
}
