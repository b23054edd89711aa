package xlsxlite

import (
	"strconv"
	"time"
)

const (
	nsMain         = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRel          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkgRel       = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeWorksheet = nsRel + "/worksheet"
	relTypeStyles    = nsRel + "/styles"
	relTypeDocument  = nsRel + "/officeDocument"
	relTypeAppProps  = nsRel + "/extended-properties"
	relTypeCoreProps = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"

	ctWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles    = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctCoreProps = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps  = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
)

type part struct {
	name string
	data []byte
}

// packageParts assembles the fixed supporting parts for a workbook with
// the given worksheet names, in table order. now stamps the core
// metadata part.
func packageParts(sheetNames []string, now time.Time) []part {
	return []part{
		{"[Content_Types].xml", contentTypesXML(len(sheetNames))},
		{"_rels/.rels", packageRelsXML()},
		{"docProps/core.xml", corePropsXML(now)},
		{"docProps/app.xml", appPropsXML()},
		{"xl/workbook.xml", workbookXML(sheetNames)},
		{"xl/_rels/workbook.xml.rels", workbookRelsXML(len(sheetNames))},
		{"xl/styles.xml", stylesXML()},
	}
}

func contentTypesXML(sheetCount int) []byte {
	types := elem("Types", attr("xmlns", nsContentTypes)).add(
		elem("Default", attr("Extension", "rels"), attr("ContentType", ctRels)),
		elem("Default", attr("Extension", "xml"), attr("ContentType", "application/xml")),
		elem("Override", attr("PartName", "/xl/workbook.xml"), attr("ContentType", ctWorkbook)),
	)
	for i := 1; i <= sheetCount; i++ {
		types.add(elem("Override",
			attr("PartName", "/xl/worksheets/sheet"+strconv.Itoa(i)+".xml"),
			attr("ContentType", ctWorksheet)))
	}
	types.add(
		elem("Override", attr("PartName", "/xl/styles.xml"), attr("ContentType", ctStyles)),
		elem("Override", attr("PartName", "/docProps/core.xml"), attr("ContentType", ctCoreProps)),
		elem("Override", attr("PartName", "/docProps/app.xml"), attr("ContentType", ctAppProps)),
	)
	return types.document()
}

func packageRelsXML() []byte {
	return elem("Relationships", attr("xmlns", nsPkgRel)).add(
		relationship("rId1", relTypeDocument, "xl/workbook.xml"),
		relationship("rId2", relTypeCoreProps, "docProps/core.xml"),
		relationship("rId3", relTypeAppProps, "docProps/app.xml"),
	).document()
}

func workbookXML(sheetNames []string) []byte {
	sheets := elem("sheets")
	for i, name := range sheetNames {
		n := strconv.Itoa(i + 1)
		sheets.add(elem("sheet",
			attr("name", name),
			attr("sheetId", n),
			attr("r:id", "rId"+n)))
	}
	return elem("workbook", attr("xmlns", nsMain), attr("xmlns:r", nsRel)).
		add(sheets).document()
}

func workbookRelsXML(sheetCount int) []byte {
	rels := elem("Relationships", attr("xmlns", nsPkgRel))
	for i := 1; i <= sheetCount; i++ {
		n := strconv.Itoa(i)
		rels.add(relationship("rId"+n, relTypeWorksheet, "worksheets/sheet"+n+".xml"))
	}
	rels.add(relationship("rId"+strconv.Itoa(sheetCount+1), relTypeStyles, "styles.xml"))
	return rels.document()
}

// stylesXML emits a single-font, single-fill, single-border stylesheet.
// It is referenced by nothing in the grids but some readers refuse a
// package without it.
func stylesXML() []byte {
	return elem("styleSheet", attr("xmlns", nsMain)).add(
		elem("fonts", attr("count", "1")).add(
			elem("font").add(
				elem("sz", attr("val", "11")),
				elem("name", attr("val", "Calibri")))),
		elem("fills", attr("count", "1")).add(
			elem("fill").add(elem("patternFill", attr("patternType", "none")))),
		elem("borders", attr("count", "1")).add(
			elem("border").add(
				elem("left"), elem("right"), elem("top"),
				elem("bottom"), elem("diagonal"))),
		elem("cellStyleXfs", attr("count", "1")).add(
			elem("xf", attr("numFmtId", "0"), attr("fontId", "0"),
				attr("fillId", "0"), attr("borderId", "0"))),
		elem("cellXfs", attr("count", "1")).add(
			elem("xf", attr("numFmtId", "0"), attr("fontId", "0"),
				attr("fillId", "0"), attr("borderId", "0"), attr("xfId", "0"))),
	).document()
}

func corePropsXML(now time.Time) []byte {
	stamp := now.UTC().Format("2006-01-02T15:04:05Z")
	created := elem("dcterms:created", attr("xsi:type", "dcterms:W3CDTF")).setText(stamp)
	modified := elem("dcterms:modified", attr("xsi:type", "dcterms:W3CDTF")).setText(stamp)
	return elem("cp:coreProperties",
		attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"),
		attr("xmlns:dc", "http://purl.org/dc/elements/1.1/"),
		attr("xmlns:dcterms", "http://purl.org/dc/terms/"),
		attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance"),
	).add(
		textElem("dc:creator", "xlsxlite"),
		created,
		modified,
	).document()
}

func appPropsXML() []byte {
	return elem("Properties",
		attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"),
	).add(textElem("Application", "xlsxlite")).document()
}

func relationship(id, typ, target string) *xmlElem {
	return elem("Relationship", attr("Id", id), attr("Type", typ), attr("Target", target))
}
