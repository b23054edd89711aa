package xlsxlite

import "strconv"

// columnIndex converts the letter prefix of a cell reference to a 0-based
// column index ("A" → 0, "AB33" → 27). Digits end the prefix.
func columnIndex(s string) int {
	result := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			break
		}
		result = result*26 + int(r-'A') + 1
	}
	return result - 1
}

// columnName converts a 0-based column index to column letters
// (0 → "A", 25 → "Z", 26 → "AA"). Base 26 with no zero digit.
func columnName(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+n%26)) + result
		n = n/26 - 1
	}
	return result
}

// cellRef builds an "A1"-style reference from 0-based column and row.
func cellRef(col, row int) string {
	return columnName(col) + strconv.Itoa(row+1)
}
