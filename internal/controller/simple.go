package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "elgen.dev/pkg/elgen/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResult prints a table of the writes and, for dry runs, their diffs.
func (s *SimpleUI) DisplayResult(ctx context.Context, result *m.ScaffoldResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if result.DryRun {
		s.printf("Dry run: no file was written.\n")
	}

	s.printf("\n%s", renderWritesTable(result))

	if !result.DryRun {
		return nil
	}

	for _, write := range result.Writes {
		diff, err := UnifiedDiff(write, result.Paths.Rel(write.Path))
		if err != nil {
			return fmt.Errorf("diff %s: %w", write.Path, err)
		}

		s.printf("\n%s", diff)
	}

	return nil
}

func renderWritesTable(result *m.ScaffoldResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Action", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, write := range result.Writes {
		table.Append([]string{actionLabel(write.Kind), result.Paths.Rel(write.Path)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d file(s)", len(result.Writes))})

	table.Render()

	return tableBuffer.String()
}

func actionLabel(kind m.WriteKind) string {
	switch kind {
	case m.WriteCreate:
		return "create"
	case m.WriteModify:
		return "update"
	default:
		return unknownActionLabel
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const unknownActionLabel = "unknown"
