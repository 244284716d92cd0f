package model

import (
	"path"
	"path/filepath"
)

// Path represents a file system path.
type Path string

// ResolvedPaths holds every location a scaffolding run touches.
//
// AppRoot, ElementsRoot and DepCacheRoot are slash separated, relative to the
// project root and always end with "/". TargetElementDir is an absolute OS
// path. RelativeDepCachePath is slash separated so it can be used in hrefs.
type ResolvedPaths struct {
	ElementName string
	ProjectRoot Path

	AppRoot      string
	ElementsRoot string
	DepCacheRoot string

	TargetElementDir     Path
	RelativeDepCachePath string

	// TestToDepCachePath and TestToElementPath are slash separated paths
	// from the test directory, used by test stubs.
	TestToDepCachePath string
	TestToElementPath  string

	// ImportRef is the aggregator-relative reference of the element file,
	// without extension.
	ImportRef string
}

func (p ResolvedPaths) abs(rel string) Path {
	return Under(p.ProjectRoot, rel)
}

// ElementFile is TargetElementDir/<element-name>.html.
func (p ResolvedPaths) ElementFile() Path {
	return Path(filepath.Join(string(p.TargetElementDir), p.ElementName+".html"))
}

// DocsFile is the documentation page of the element.
func (p ResolvedPaths) DocsFile() Path {
	return Path(filepath.Join(string(p.TargetElementDir), "index.html"))
}

// DemoFile is the demo page of the element.
func (p ResolvedPaths) DemoFile() Path {
	return Path(filepath.Join(string(p.TargetElementDir), "demo", "index.html"))
}

// AggregatorFile is the elements.html file that imports every element.
func (p ResolvedPaths) AggregatorFile() Path {
	return p.abs(path.Join(p.ElementsRoot, "elements.html"))
}

// HarnessFile is the test runner entry page holding the suite list.
func (p ResolvedPaths) HarnessFile() Path {
	return p.abs(path.Join(p.AppRoot, "test", "index.html"))
}

// TestFile is the generated test stub of the element.
func (p ResolvedPaths) TestFile() Path {
	return p.abs(path.Join(p.AppRoot, "test", p.SuiteName()))
}

// SuiteName is the file name registered in the harness suite list.
func (p ResolvedPaths) SuiteName() string {
	return p.ElementName + "-basic.html"
}

// Rel returns target relative to the project root, for display.
func (p ResolvedPaths) Rel(target Path) string {
	rel, err := filepath.Rel(string(p.ProjectRoot), string(target))
	if err != nil {
		return string(target)
	}

	return filepath.ToSlash(rel)
}
