package xlsxlite

import (
	"encoding/xml"
	"io"
	"strings"
)

// sheetEntry is one workbook-declared sheet: its display name and the
// relationship id resolving its worksheet part.
type sheetEntry struct {
	Name string
	ID   string
}

type workbookPart struct {
	XMLName xml.Name `xml:"workbook"`
	Sheets  []struct {
		Name string `xml:"name,attr"`
		ID   string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// readWorkbook parses xl/workbook.xml into the ordered sheet list.
func readWorkbook(rd io.Reader) ([]sheetEntry, error) {
	data := &workbookPart{}
	if err := xml.NewDecoder(rd).Decode(data); err != nil {
		return nil, err
	}
	entries := make([]sheetEntry, 0, len(data.Sheets))
	for _, sheet := range data.Sheets {
		entries = append(entries, sheetEntry{Name: sheet.Name, ID: sheet.ID})
	}
	return entries, nil
}

type relationshipsPart struct {
	XMLName      xml.Name `xml:"Relationships"`
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// readWorkbookRels parses xl/_rels/workbook.xml.rels into a relationship
// id → worksheet part path map. Targets are normalized to be rooted at
// xl/, which is where relative targets resolve from.
func readWorkbookRels(reader io.Reader) (map[string]string, error) {
	data := &relationshipsPart{}
	if err := xml.NewDecoder(reader).Decode(data); err != nil {
		return nil, err
	}

	sheets := make(map[string]string, len(data.Relationship))
	for _, rel := range data.Relationship {
		if rel.Type != relTypeWorksheet {
			continue
		}
		if strings.HasPrefix(rel.Target, "/xl/") {
			sheets[rel.ID] = rel.Target[1:]
		} else {
			sheets[rel.ID] = "xl/" + rel.Target
		}
	}
	return sheets, nil
}
