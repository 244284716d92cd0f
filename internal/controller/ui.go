// Package controller provides the terminal collaborators of the scaffolder:
// the interactive prompts and the rendering of a run's result.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "elgen.dev/pkg/elgen/internal/model"
)

// UI renders the outcome of a scaffolding run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResult(ctx context.Context, result *m.ScaffoldResult) error
}

// NewUI returns the TUI when the command writes to a terminal and the plain
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
