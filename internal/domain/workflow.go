package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"sabot.dev/pkg/sabot/internal/adapter"
	"sabot.dev/pkg/sabot/internal/controller"
	m "sabot.dev/pkg/sabot/internal/model"
)

// ManifestFileName is the batch report manifest written next to the
// mutated patches.
const ManifestFileName = "manifest.yaml"

// MutateArgs configures a single-patch mutation.
type MutateArgs struct {
	Input  m.Path
	Output m.Path
	Mode   m.Mode
}

// BatchArgs configures a batch run over patch files or directories.
type BatchArgs struct {
	Paths   []m.Path
	Mode    m.Mode
	Output  m.Path
	Threads int
}

// PreviewArgs configures a mutation preview.
type PreviewArgs struct {
	Paths []m.Path
}

// Workflow ties the engine to adapters and the UI.
type Workflow interface {
	Mutate(ctx context.Context, args MutateArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Preview(ctx context.Context, args PreviewArgs) error
}

type workflow struct {
	patchFS adapter.PatchFSAdapter
	reports adapter.ReportStore
	ui      controller.UI
	mutator Mutator
}

// NewWorkflow creates a Workflow wired to the given adapters.
func NewWorkflow(patchFS adapter.PatchFSAdapter, reports adapter.ReportStore, ui controller.UI, mutator Mutator) Workflow {
	return &workflow{
		patchFS: patchFS,
		reports: reports,
		ui:      ui,
		mutator: mutator,
	}
}

// Mutate reads one patch, mutates it and writes the result. A run with
// zero mutations is a warning, not an error: the caller still gets the
// output file plus a diagnostic, and the process exits 0.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	report, err := w.mutateOne(args.Input, args.Output, args.Mode)
	if err != nil {
		return err
	}

	w.ui.DisplayOutcome(ctx, report)

	return nil
}

func (w *workflow) mutateOne(input, output m.Path, mode m.Mode) (m.PatchReport, error) {
	patchText, err := w.patchFS.ReadPatch(input)
	if err != nil {
		return m.PatchReport{}, fmt.Errorf("failed to read patch %s: %w", input, err)
	}

	outcome, err := w.mutator.Mutate(patchText, mode)
	if err != nil {
		return m.PatchReport{}, err
	}

	if err := w.patchFS.WritePatch(output, outcome.Patch); err != nil {
		return m.PatchReport{}, fmt.Errorf("failed to write mutated patch %s: %w", output, err)
	}

	if outcome.Mutations == 0 {
		slog.Warn("no mutations applied", "patch", input, "mode", mode)
	} else {
		slog.Debug("mutated patch", "patch", input, "mode", mode, "fallback", outcome.Fallback)
	}

	return m.PatchReport{
		Input:     input,
		Output:    output,
		Mode:      mode,
		Mutations: outcome.Mutations,
		Fallback:  outcome.Fallback,
	}, nil
}

// Batch discovers patch files under args.Paths and mutates them
// concurrently. Mutated patches keep their base name under args.Output,
// and a manifest records the per-patch mutation counts.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	inputs, err := w.patchFS.DiscoverPatches(args.Paths)
	if err != nil {
		return fmt.Errorf("failed to discover patches: %w", err)
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no patch files found under %v", args.Paths)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	slog.Debug("starting batch mutation", "patches", len(inputs), "threads", threads, "mode", args.Mode)

	reports := make([]m.PatchReport, len(inputs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, input := range inputs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			output := m.Path(filepath.Join(string(args.Output), filepath.Base(string(input))))

			report, err := w.mutateOne(input, output, args.Mode)
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	manifest := m.Path(filepath.Join(string(args.Output), ManifestFileName))
	if err := w.reports.SaveReports(manifest, reports); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return w.ui.DisplayBatchSummary(ctx, reports)
}

// Preview shows, per file section of each patch, which modes would apply
// a structural rewrite.
func (w *workflow) Preview(ctx context.Context, args PreviewArgs) error {
	inputs, err := w.patchFS.DiscoverPatches(args.Paths)
	if err != nil {
		return fmt.Errorf("failed to discover patches: %w", err)
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no patch files found under %v", args.Paths)
	}

	var stats []m.FileStat

	for _, input := range inputs {
		patchText, err := w.patchFS.ReadPatch(input)
		if err != nil {
			return fmt.Errorf("failed to read patch %s: %w", input, err)
		}

		fileStats, err := w.mutator.Preview(patchText)
		if err != nil {
			return err
		}

		stats = append(stats, fileStats...)
	}

	return w.ui.DisplayPreview(ctx, stats)
}
