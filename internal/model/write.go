package model

// WriteKind tells whether a write created a new file or changed an existing one.
type WriteKind string

const (
	// WriteCreate marks a generated file.
	WriteCreate WriteKind = "create"
	// WriteModify marks a rewritten existing file.
	WriteModify WriteKind = "modify"
)

// FileWrite is one whole-file write performed (or planned) by a run.
type FileWrite struct {
	Path   Path
	Kind   WriteKind
	Before []byte // previous content, nil for created files
	After  []byte
}

// ScaffoldResult lists the writes of a run in the order they happened.
type ScaffoldResult struct {
	Paths  ResolvedPaths
	Writes []FileWrite
	DryRun bool
}

// Created returns the paths of created files.
func (r *ScaffoldResult) Created() []Path {
	return r.filter(WriteCreate)
}

// Modified returns the paths of rewritten files.
func (r *ScaffoldResult) Modified() []Path {
	return r.filter(WriteModify)
}

func (r *ScaffoldResult) filter(kind WriteKind) []Path {
	paths := make([]Path, 0, len(r.Writes))
	for _, w := range r.Writes {
		if w.Kind == kind {
			paths = append(paths, w.Path)
		}
	}

	return paths
}
