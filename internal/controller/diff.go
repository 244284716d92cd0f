package controller

import (
	"github.com/pmezard/go-difflib/difflib"

	m "elgen.dev/pkg/elgen/internal/model"
)

const (
	diffContextLines = 3
	devNull          = "/dev/null"
)

// UnifiedDiff renders a write as a unified diff labelled with name. Created
// files are diffed against /dev/null.
func UnifiedDiff(write m.FileWrite, name string) (string, error) {
	from := "a/" + name
	if write.Kind == m.WriteCreate {
		from = devNull
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(write.Before)),
		B:        difflib.SplitLines(string(write.After)),
		FromFile: from,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	})
}
