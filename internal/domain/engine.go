// Package domain contains the core patch mutation engine and workflows.
package domain

import (
	"sabot.dev/pkg/sabot/internal/domain/rules"
	m "sabot.dev/pkg/sabot/internal/model"
)

// Mutator rewrites the added lines of a unified-diff patch so it carries
// exactly one policy violation for the selected mode.
type Mutator interface {
	// Mutate is deterministic and pure: same patch text and mode always
	// yield the same outcome. It fails only on an unknown mode; a patch
	// with no eligible lines is reported through Outcome.Mutations == 0.
	Mutate(patchText string, mode m.Mode) (m.Outcome, error)

	// Preview reports, per file section of the patch, how many added lines
	// it has and which modes would apply a structural rewrite.
	Preview(patchText string) ([]m.FileStat, error)
}

type mutator struct{}

// NewMutator creates a new Mutator instance.
func NewMutator() Mutator {
	return &mutator{}
}

func (mu *mutator) Mutate(patchText string, mode m.Mode) (m.Outcome, error) {
	rewrite, err := rules.ForMode(mode)
	if err != nil {
		return m.Outcome{}, err
	}

	patch := m.ParsePatch(patchText)
	lastAdded := lastAddedIndex(patch.Lines)
	count := 0

	for i := range patch.Lines {
		// At most one structural mutation per patch: once a line has been
		// rewritten, every remaining line passes through verbatim.
		if count > 0 {
			break
		}

		line := patch.Lines[i]
		if line.Role() != m.RoleAdded {
			continue
		}

		ctx := rules.LineContext{LastAdded: i == lastAdded}
		if newBody, ok := rewrite(line.Body(), ctx); ok {
			patch.Lines[i] = line.WithBody(newBody)
			count = 1
		}
	}

	fellBack := false
	if count == 0 && annotateFallback(patch, mode) {
		count = 1
		fellBack = true
	}

	return m.Outcome{Patch: patch.String(), Mutations: count, Fallback: fellBack}, nil
}

// lastAddedIndex returns the index of the final added line, or -1.
func lastAddedIndex(lines []m.Line) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Role() == m.RoleAdded {
			return i
		}
	}

	return -1
}
