package domain

import (
	"sabot.dev/pkg/sabot/internal/domain/rules"
	m "sabot.dev/pkg/sabot/internal/model"
)

// unknownFileLabel groups added lines that appear before any file header.
const unknownFileLabel = "(no header)"

func (mu *mutator) Preview(patchText string) ([]m.FileStat, error) {
	rewriters := make(map[m.Mode]rules.Rewriter, len(m.Modes()))

	for _, mode := range m.Modes() {
		rewrite, err := rules.ForMode(mode)
		if err != nil {
			return nil, err
		}

		rewriters[mode] = rewrite
	}

	patch := m.ParsePatch(patchText)
	lastAdded := lastAddedIndex(patch.Lines)

	var stats []m.FileStat

	index := make(map[string]int)
	currentFile := unknownFileLabel

	statFor := func(path string) *m.FileStat {
		if at, ok := index[path]; ok {
			return &stats[at]
		}

		stats = append(stats, m.FileStat{Path: path, Structural: make(map[m.Mode]bool)})
		index[path] = len(stats) - 1

		return &stats[len(stats)-1]
	}

	for i := range patch.Lines {
		line := patch.Lines[i]

		if line.Role() == m.RoleFileHeader {
			if path, ok := line.HeaderPath(); ok {
				currentFile = path
				if path == "" {
					currentFile = m.DeletedFileSentinel
				}
			}

			continue
		}

		if line.Role() != m.RoleAdded {
			continue
		}

		stat := statFor(currentFile)
		stat.AddedLines++

		body := line.Body()
		ctx := rules.LineContext{LastAdded: i == lastAdded}

		for mode, rewrite := range rewriters {
			if stat.Structural[mode] {
				continue
			}

			if _, ok := rewrite(body, ctx); ok {
				stat.Structural[mode] = true
			}
		}
	}

	return stats, nil
}
