package domain

import (
	"fmt"
	"strings"
)

// ImportLine returns the aggregator line importing targetRef.
func ImportLine(targetRef string) string {
	return fmt.Sprintf("<link rel=\"import\" href=\"%s.html\">\n", toSlash(targetRef))
}

// WireImport appends an import of targetRef to the aggregator text. Calling it
// twice with the same reference appends two identical lines.
func WireImport(text, targetRef string) string {
	return text + ImportLine(targetRef)
}

// WireImportOnce behaves like WireImport unless the aggregator already
// contains the same import line, in which case text is returned unchanged and
// the second result is false.
func WireImportOnce(text, targetRef string) (string, bool) {
	line := strings.TrimSpace(ImportLine(targetRef))
	for _, existing := range strings.Split(text, "\n") {
		if strings.TrimSpace(existing) == line {
			return text, false
		}
	}

	return WireImport(text, targetRef), true
}
