package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "sabot.dev/pkg/sabot/internal/model"
)

const previewRowsPerPage = 15

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for interactive terminals. Single-patch outcomes and
// batch summaries print like SimpleUI; long previews open a paginated
// Bubble Tea view.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a TUI that falls back to simple for non-paged output.
func NewTUI(simple *SimpleUI, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, output: output}
}

// DisplayPreview renders the preview, paginating when it would not fit on
// one screen.
func (t *TUI) DisplayPreview(ctx context.Context, stats []m.FileStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newPreviewModel(stats)

	if f, ok := t.output.(*os.File); ok {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.fitToHeight(height)
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// previewModel pages through per-file preview rows.
type previewModel struct {
	stats []m.FileStat
	pager paginator.Model
}

func newPreviewModel(stats []m.FileStat) previewModel {
	pager := paginator.New()
	pager.PerPage = previewRowsPerPage
	pager.SetTotalPages(len(stats))

	return previewModel{stats: stats, pager: pager}
}

func (pm *previewModel) fitToHeight(height int) {
	// Leave room for the title, table chrome and the help line.
	rows := height - 8
	if rows < 1 {
		rows = 1
	}

	pm.pager.PerPage = rows
	pm.pager.SetTotalPages(len(pm.stats))
}

func (pm previewModel) needsPagination() bool {
	return len(pm.stats) > pm.pager.PerPage
}

// Init implements tea.Model.
func (pm previewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (pm previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	case tea.WindowSizeMsg:
		pm.fitToHeight(msg.Height)
	}

	var cmd tea.Cmd
	pm.pager, cmd = pm.pager.Update(msg)

	return pm, cmd
}

// View implements tea.Model.
func (pm previewModel) View() string {
	start, end := pm.pager.GetSliceBounds(len(pm.stats))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Mutation preview"))
	sb.WriteString("\n")
	sb.WriteString(renderPreviewTable(pm.stats[start:end]))

	if pm.needsPagination() {
		sb.WriteString(pm.pager.View())
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("←/→ page · q quit"))
		sb.WriteString("\n")
	}

	return sb.String()
}
