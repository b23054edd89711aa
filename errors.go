package xlsxlite

import (
	"errors"
	"fmt"
)

// ErrFormat classifies every decode failure: the bytes are not a zip
// archive, or a required top-level part is missing or unparseable. The
// more specific sentinels below all match it under errors.Is. A fault
// confined to one worksheet part is not an error; that sheet decodes to
// an empty table.
var ErrFormat = errors.New("not a valid xlsx package")

var (
	ErrNotArchive           = fmt.Errorf("%w: not a zip archive", ErrFormat)
	ErrWorkbookNotExist     = fmt.Errorf("%w: xl/workbook.xml missing or unparseable", ErrFormat)
	ErrWorkbookRelsNotExist = fmt.Errorf("%w: xl/_rels/workbook.xml.rels missing or unparseable", ErrFormat)
)
