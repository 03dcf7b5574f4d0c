package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "sabot.dev/pkg/sabot/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOutcome prints the single-patch result. Zero mutations is still a
// success for the process, but the diagnostic must be visible so callers do
// not treat the unmutated patch as meaningful.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, report m.PatchReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if report.Mutations == 0 {
		s.printf("Warning: no mutations applied\n")
	}

	s.printf("Wrote mutated patch to %s (mutations: %d)\n", report.Output, report.Mutations)
}

// DisplayBatchSummary renders a table of per-patch mutation counts.
func (s *SimpleUI) DisplayBatchSummary(ctx context.Context, reports []m.PatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderBatchTable(reports))

	unmutated := 0
	for _, report := range reports {
		if report.Mutations == 0 {
			unmutated++
		}
	}

	if unmutated > 0 {
		s.printf("Warning: no mutations applied to %d patch(es)\n", unmutated)
	}

	return nil
}

func renderBatchTable(reports []m.PatchReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Patch", "Mode", "Mutations", "Fallback"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	total := 0

	for _, report := range reports {
		fallback := ""
		if report.Fallback {
			fallback = "yes"
		}

		table.Append([]string{
			string(report.Input),
			string(report.Mode),
			fmt.Sprintf("%d", report.Mutations),
			fallback,
		})

		total += report.Mutations
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Patches %d", len(reports)),
		"",
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayPreview renders per-file stats and structural applicability.
func (s *SimpleUI) DisplayPreview(ctx context.Context, stats []m.FileStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPreviewTable(stats))

	return nil
}

func renderPreviewTable(stats []m.FileStat) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(previewHeader())
	table.SetBorder(false)
	table.SetCenterSeparator("")

	totalAdded := 0

	for _, stat := range stats {
		table.Append(previewRow(stat))

		totalAdded += stat.AddedLines
	}

	footer := []string{fmt.Sprintf("Total Files %d", len(stats)), fmt.Sprintf("%d", totalAdded)}
	for range m.Modes() {
		footer = append(footer, "")
	}

	table.SetFooter(footer)
	table.Render()

	return tableBuffer.String()
}

func previewHeader() []string {
	header := []string{"Path", "Added"}
	for _, mode := range m.Modes() {
		header = append(header, string(mode))
	}

	return header
}

func previewRow(stat m.FileStat) []string {
	row := []string{stat.Path, fmt.Sprintf("%d", stat.AddedLines)}

	for _, mode := range m.Modes() {
		cell := "-"
		if stat.Structural[mode] {
			cell = "yes"
		}

		row = append(row, cell)
	}

	return row
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
