package xlsxlite

import (
	"strconv"
	"strings"
)

// maxSheetNameLen is the worksheet name limit imposed by the format.
const maxSheetNameLen = 31

// sanitizeSheetName maps an arbitrary table name to a legal worksheet name
// that is unique within used, and records it there. pos is the table's
// 0-based position; it names tables whose name sanitizes to nothing.
// Callers thread one used set across the workbook in declaration order.
func sanitizeSheetName(name string, pos int, used map[string]bool) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\\', '/', '*', '[', ']', ':', '?':
			// stripped: illegal in worksheet names
		default:
			b.WriteRune(r)
		}
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		result = "Sheet" + strconv.Itoa(pos+1)
	}
	result = truncateRunes(result, maxSheetNameLen)

	// Suffix until unique, re-truncating the base so the suffixed name
	// still fits. Unbounded: truncation can collapse many names onto the
	// same prefix.
	base := result
	for n := 1; used[result]; n++ {
		suffix := "_" + strconv.Itoa(n)
		result = truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
	}

	used[result] = true
	return result
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
