// Package adapter contains the infrastructure collaborators of the
// scaffolding engine: project file access, templates and reformatting.
package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	m "elgen.dev/pkg/elgen/internal/model"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// ProjectFSAdapter abstracts the whole-file operations the orchestrator
// performs on the user's project so the domain can be tested without
// touching the disk.
type ProjectFSAdapter interface {
	// ReadFile loads a whole file.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces a whole file, creating parent directories as needed.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// Exists reports whether a file or directory is present at path.
	Exists(ctx context.Context, path m.Path) (bool, error)
}

// LocalProjectFSAdapter is the os backed ProjectFSAdapter.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is resolved from the project configuration
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, creating missing parent directories.
func (a *LocalProjectFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, filePerm)
}

// Exists reports whether path is present on disk.
func (a *LocalProjectFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// DryRunFSAdapter records writes in memory instead of performing them. Reads
// see recorded writes first and fall back to the wrapped adapter.
type DryRunFSAdapter struct {
	base ProjectFSAdapter

	mu      sync.Mutex
	pending map[m.Path][]byte
	order   []m.Path
}

// NewDryRunFSAdapter wraps base so that nothing is written.
func NewDryRunFSAdapter(base ProjectFSAdapter) *DryRunFSAdapter {
	return &DryRunFSAdapter{
		base:    base,
		pending: make(map[m.Path][]byte),
	}
}

// ReadFile returns the recorded content of path or reads it from base.
func (a *DryRunFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	a.mu.Lock()
	content, ok := a.pending[path]
	a.mu.Unlock()

	if ok {
		return append([]byte(nil), content...), nil
	}

	return a.base.ReadFile(ctx, path)
}

// WriteFile records content for path.
func (a *DryRunFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.pending[path]; !ok {
		a.order = append(a.order, path)
	}

	a.pending[path] = append([]byte(nil), content...)

	return nil
}

// Exists reports recorded paths as present and otherwise asks base.
func (a *DryRunFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	a.mu.Lock()
	_, ok := a.pending[path]
	a.mu.Unlock()

	if ok {
		return true, nil
	}

	return a.base.Exists(ctx, path)
}

// Recorded returns the recorded paths in first-write order.
func (a *DryRunFSAdapter) Recorded() []m.Path {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]m.Path(nil), a.order...)
}
