package refdata

import "strings"

const bom = "\ufeff"

// Normalize strips byte-order-mark artifacts and surrounding whitespace from
// a reference-file key or value. Empty input stays empty.
func Normalize(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(value, bom, ""))
}
