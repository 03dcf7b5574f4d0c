// Package controller provides output adapters for displaying mutation results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "sabot.dev/pkg/sabot/internal/model"
)

// UI defines the interface for displaying mutation outcomes.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayOutcome reports a single-patch mutation, including the
	// zero-mutation diagnostic.
	DisplayOutcome(ctx context.Context, report m.PatchReport)

	// DisplayBatchSummary renders the per-patch results of a batch run.
	DisplayBatchSummary(ctx context.Context, reports []m.PatchReport) error

	// DisplayPreview renders per-file added-line counts and structural
	// rule applicability.
	DisplayPreview(ctx context.Context, stats []m.FileStat) error
}

// NewUI selects the UI implementation: interactive terminals get the
// paginated TUI, everything else plain text.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	simple := NewSimpleUI(cmd)
	if interactive {
		return NewTUI(simple, cmd.OutOrStdout())
	}

	return simple
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
