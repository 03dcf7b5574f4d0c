package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sabot.dev/pkg/sabot/internal/model"
)

func newCaptureCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return cmd, out
}

func TestSimpleUI_DisplayOutcome(t *testing.T) {
	cmd, out := newCaptureCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayOutcome(context.Background(), m.PatchReport{
		Output:    "out/a.patch",
		Mutations: 1,
	})

	assert.Equal(t, "Wrote mutated patch to out/a.patch (mutations: 1)\n", out.String())
}

func TestSimpleUI_DisplayOutcome_WarnsOnZeroMutations(t *testing.T) {
	cmd, out := newCaptureCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayOutcome(context.Background(), m.PatchReport{Output: "out/a.patch"})

	assert.Contains(t, out.String(), "Warning: no mutations applied\n")
	assert.Contains(t, out.String(), "Wrote mutated patch to out/a.patch (mutations: 0)\n")
}

func TestSimpleUI_DisplayBatchSummary(t *testing.T) {
	cmd, out := newCaptureCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayBatchSummary(context.Background(), []m.PatchReport{
		{Input: "a.patch", Mode: m.ModePanic, Mutations: 1},
		{Input: "b.patch", Mode: m.ModePanic, Mutations: 1, Fallback: true},
		{Input: "c.patch", Mode: m.ModePanic, Mutations: 0},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "a.patch")
	assert.Contains(t, text, "b.patch")
	assert.Contains(t, text, "yes")
	// tablewriter renders footer cells uppercase.
	assert.Contains(t, text, "TOTAL PATCHES 3")
	assert.Contains(t, text, "Warning: no mutations applied to 1 patch(es)\n")
}

func TestSimpleUI_DisplayPreview(t *testing.T) {
	cmd, out := newCaptureCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayPreview(context.Background(), []m.FileStat{
		{
			Path:       "src/worker.rs",
			AddedLines: 3,
			Structural: map[m.Mode]bool{m.ModePanic: true},
		},
		{Path: "README.md", AddedLines: 1},
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "src/worker.rs")
	assert.Contains(t, text, "README.md")
	assert.Contains(t, text, "yes")
	assert.Contains(t, text, "TOTAL FILES 2")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, out := newCaptureCmd()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayOutcome(ctx, m.PatchReport{Output: "out/a.patch", Mutations: 1})
	require.Error(t, ui.DisplayBatchSummary(ctx, nil))
	require.Error(t, ui.DisplayPreview(ctx, nil))

	assert.Empty(t, out.String())
}

func TestNewUI_SelectsImplementation(t *testing.T) {
	cmd, _ := newCaptureCmd()

	_, simple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, simple)

	_, tui := NewUI(cmd, true).(*TUI)
	assert.True(t, tui)
}
