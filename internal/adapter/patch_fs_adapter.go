// Package adapter contains infrastructure adapters for the sabot CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	m "sabot.dev/pkg/sabot/internal/model"
)

// patchExtensions are the file suffixes treated as unified-diff patches
// during discovery.
var patchExtensions = map[string]bool{
	".patch": true,
	".diff":  true,
}

// PatchFSAdapter abstracts the filesystem operations the workflow layer
// relies on, so the domain logic can be tested without touching the disk.
type PatchFSAdapter interface {
	// ReadPatch loads a patch file and returns its text.
	ReadPatch(path m.Path) (string, error)

	// WritePatch writes mutated patch text, creating parent directories
	// as needed.
	WritePatch(path m.Path, text string) error

	// DiscoverPatches expands the given files and directories into the
	// sorted list of patch files beneath them. A path naming a regular
	// file is taken as-is regardless of extension.
	DiscoverPatches(roots []m.Path) ([]m.Path, error)
}

// LocalPatchFSAdapter is the os-backed PatchFSAdapter implementation.
type LocalPatchFSAdapter struct{}

// NewLocalPatchFSAdapter constructs a LocalPatchFSAdapter ready to be wired
// into the workflow.
func NewLocalPatchFSAdapter() *LocalPatchFSAdapter {
	return &LocalPatchFSAdapter{}
}

// ReadPatch loads patch text from disk.
func (a *LocalPatchFSAdapter) ReadPatch(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WritePatch writes patch text, creating the parent directory first.
func (a *LocalPatchFSAdapter) WritePatch(path m.Path, text string) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), []byte(text), 0o644)
}

// DiscoverPatches walks the given roots collecting *.patch and *.diff files.
func (a *LocalPatchFSAdapter) DiscoverPatches(roots []m.Path) ([]m.Path, error) {
	var patches []m.Path

	for _, root := range roots {
		info, err := os.Stat(string(root))
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			patches = append(patches, root)
			continue
		}

		err = filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				return nil
			}

			if patchExtensions[filepath.Ext(path)] {
				patches = append(patches, m.Path(path))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(patches, func(i, j int) bool { return patches[i] < patches[j] })

	return patches, nil
}
