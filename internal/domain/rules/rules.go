// Package rules contains the per-mode line rewrite rules of the mutation
// engine. Each mode owns one ordered, first-match-wins rule family over the
// body of a single added diff line.
package rules

import (
	"fmt"
	"strings"

	m "sabot.dev/pkg/sabot/internal/model"
)

// LineContext carries the little positional information some rules need
// beyond the line body itself.
type LineContext struct {
	// LastAdded is true when no added lines follow this one in the patch.
	LastAdded bool
}

// Rewriter inspects one added line's body and either produces a rewritten
// body or declines. Declines return the body unchanged.
type Rewriter func(body string, ctx LineContext) (string, bool)

// ForMode resolves the rewriter for a mode. The switch is the closed set of
// rule families; an unrecognized mode is a fatal input error.
func ForMode(mode m.Mode) (Rewriter, error) {
	switch mode {
	case m.ModeUnwrap:
		return rewriteUnwrap, nil
	case m.ModeUnsafe:
		return rewriteUnsafe, nil
	case m.ModePanic:
		return rewritePanic, nil
	}

	return nil, fmt.Errorf("unknown mutation mode: %q", mode)
}

// leadingWhitespace returns the run of spaces and tabs at the start of body.
func leadingWhitespace(body string) string {
	return body[:len(body)-len(strings.TrimLeft(body, " \t"))]
}
