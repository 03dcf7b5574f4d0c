package domain

import (
	"strings"

	m "sabot.dev/pkg/sabot/internal/model"
)

// sourceFileExt restricts fallback injection to source files of the
// mutated ecosystem.
const sourceFileExt = ".rs"

// fallbackSpec pairs the tokens that prove a line already carries the mode's
// violation with the marker comment appended by the fallback path. Unwrap
// lists both the structural `.unwrap(` rewrite and the `.expect(` diagnostic
// form: re-running the mode on its own output must not annotate the line it
// already rewrote.
type fallbackSpec struct {
	markers []string
	comment string
}

var fallbackSpecs = map[m.Mode]fallbackSpec{
	m.ModeUnwrap: {markers: []string{".unwrap(", ".expect("}, comment: " // mutation_fallback .expect("},
	m.ModeUnsafe: {markers: []string{"unsafe"}, comment: " // mutation_fallback unsafe"},
	m.ModePanic:  {markers: []string{"panic!"}, comment: " // mutation_fallback panic!"},
}

// annotateFallback appends the mode's marker comment to the first eligible
// added line, so downstream policy counters still register a signal when no
// structural rewrite applied. Returns false and leaves the patch untouched
// when no line qualifies.
func annotateFallback(patch *m.Patch, mode m.Mode) bool {
	spec, ok := fallbackSpecs[mode]
	if !ok {
		return false
	}

	currentFile := ""

	for i := range patch.Lines {
		line := patch.Lines[i]

		if line.Role() == m.RoleFileHeader {
			// Only "+++ b/<path>" headers move the file context; the
			// deleted-file sentinel clears it.
			if path, headed := line.HeaderPath(); headed {
				currentFile = path
			}

			continue
		}

		if line.Role() != m.RoleAdded {
			continue
		}

		if !strings.HasSuffix(currentFile, sourceFileExt) {
			continue
		}

		body := line.Body()

		stripped := strings.TrimSpace(body)
		if stripped == "" || strings.HasPrefix(stripped, "//") {
			continue
		}

		if containsAny(body, spec.markers) {
			continue
		}

		patch.Lines[i] = line.WithBody(body + spec.comment)

		return true
	}

	return false
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}

	return false
}
