package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "elgen.dev/pkg/elgen/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	createStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	modifyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea. Short results are printed directly;
// results taller than the terminal open a scrollable pager.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayResult shows the written files and, for dry runs, their diffs.
func (p *TUI) DisplayResult(ctx context.Context, result *m.ScaffoldResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	lines, err := buildResultLines(result)
	if err != nil {
		return err
	}

	model := newResultModel(result, lines)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func buildResultLines(result *m.ScaffoldResult) ([]string, error) {
	lines := make([]string, 0, len(result.Writes))

	for _, write := range result.Writes {
		badge := createStyle.Render("create")
		if write.Kind == m.WriteModify {
			badge = modifyStyle.Render("update")
		}

		lines = append(lines, fmt.Sprintf("  %s %s", badge, result.Paths.Rel(write.Path)))
	}

	if !result.DryRun {
		return lines, nil
	}

	for _, write := range result.Writes {
		diff, err := UnifiedDiff(write, result.Paths.Rel(write.Path))
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", write.Path, err)
		}

		lines = append(lines, "")

		for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
			lines = append(lines, "  "+styleDiffLine(line))
		}
	}

	return lines, nil
}

func styleDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return faintStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return hunkStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return removedStyle.Render(line)
	default:
		return line
	}
}

// resultModel represents the Bubble Tea model for displaying a run result.
type resultModel struct {
	element  string
	dryRun   bool
	files    int
	lines    []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newResultModel(result *m.ScaffoldResult, lines []string) resultModel {
	return resultModel{
		element: result.Paths.ElementName,
		dryRun:  result.DryRun,
		files:   len(result.Writes),
		lines:   lines,
	}
}

func (rm resultModel) Init() tea.Cmd {
	return nil
}

func (rm resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.height = msg.Height
		rm.width = msg.Width
		rm.offset = min(rm.offset, rm.maxOffset())

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)
	}

	return rm, nil
}

//nolint:exhaustive // only navigation keys are handled
func (rm resultModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		rm.quitting = true
		return rm, tea.Quit
	case "down", "j":
		rm.offset = min(rm.offset+1, rm.maxOffset())
	case "up", "k":
		rm.offset = max(rm.offset-1, 0)
	case "g", "home":
		rm.offset = 0
	case "G", "end":
		rm.offset = rm.maxOffset()
	case "d", "pgdown":
		rm.offset = min(rm.offset+rm.linesPerPage(), rm.maxOffset())
	case "u", "pgup":
		rm.offset = max(rm.offset-rm.linesPerPage(), 0)
	}

	return rm, nil
}

// linesPerPage is the terminal height minus the header and footer.
func (rm resultModel) linesPerPage() int {
	if rm.height == 0 {
		return len(rm.lines)
	}

	const reserved = 6

	return max(rm.height-reserved, 1)
}

func (rm resultModel) maxOffset() int {
	return max(len(rm.lines)-rm.linesPerPage(), 0)
}

func (rm resultModel) needsPagination() bool {
	return rm.height > 0 && len(rm.lines) > rm.linesPerPage()
}

func (rm resultModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("elgen: scaffolded <%s>", rm.element)
	if rm.dryRun {
		title = fmt.Sprintf("elgen: dry run for <%s>, no file was written", rm.element)
	}

	b.WriteString(titleStyle.Render(title) + "\n\n")

	if len(rm.lines) == 0 {
		b.WriteString("  nothing to do\n")
		return b.String()
	}

	visible := rm.lines
	if rm.needsPagination() {
		end := min(rm.offset+rm.linesPerPage(), len(rm.lines))
		visible = rm.lines[rm.offset:end]
	}

	for _, line := range visible {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d file(s)\n", rm.files)

	if rm.needsPagination() {
		end := min(rm.offset+rm.linesPerPage(), len(rm.lines))
		b.WriteString(faintStyle.Render(fmt.Sprintf("  Lines %d-%d of %d | ↑/k ↓/j g G | q: quit", rm.offset+1, end, len(rm.lines))) + "\n")
	}

	return b.String()
}
