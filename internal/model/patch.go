package model

import "strings"

// Path represents a file system path.
type Path string

// LineRole classifies a physical diff line.
type LineRole int

const (
	// RoleOther covers removed lines, context lines and hunk metadata.
	RoleOther LineRole = iota
	// RoleAdded marks a line introduced by the patch ("+" prefix).
	RoleAdded
	// RoleFileHeader marks a "+++" file header line.
	RoleFileHeader
)

const (
	headerMarker = "+++"
	headerPrefix = "+++ b/"

	// DeletedFileSentinel is the header path denoting a deleted file.
	DeletedFileSentinel = "/dev/null"
)

// Line is one physical line of a unified diff, terminator included.
type Line struct {
	Raw string
}

// Role classifies the line. Only Added lines are mutation candidates;
// the doubled "+++" marker is diff metadata, not code.
func (l Line) Role() LineRole {
	switch {
	case strings.HasPrefix(l.Raw, headerMarker):
		return RoleFileHeader
	case strings.HasPrefix(l.Raw, "+"):
		return RoleAdded
	}

	return RoleOther
}

// Terminator returns the exact trailing newline, or "" for the final
// unterminated line of a patch.
func (l Line) Terminator() string {
	if strings.HasSuffix(l.Raw, "\n") {
		return "\n"
	}

	return ""
}

// Body returns the line content without its terminator and, for added
// lines, without the leading "+" marker.
func (l Line) Body() string {
	body := strings.TrimSuffix(l.Raw, "\n")
	if l.Role() == RoleAdded {
		body = body[1:]
	}

	return body
}

// WithBody rebuilds an added line around a rewritten body, preserving the
// diff marker and the original terminator.
func (l Line) WithBody(body string) Line {
	return Line{Raw: "+" + body + l.Terminator()}
}

// HeaderPath extracts the target path from a "+++ b/<path>" header. The
// second return value is false for headers in any other form. A deleted
// file reports ok with an empty path.
func (l Line) HeaderPath() (string, bool) {
	if !strings.HasPrefix(l.Raw, headerPrefix) {
		return "", false
	}

	path := strings.TrimSpace(l.Raw[len(headerPrefix):])
	if path == DeletedFileSentinel {
		return "", true
	}

	return path, true
}

// Patch is an ordered sequence of raw diff lines. Order is load-bearing:
// hunk semantics depend on line position.
type Patch struct {
	Lines []Line
}

// ParsePatch splits patch text into lines, keeping each terminator attached
// so the text can be reassembled byte-for-byte.
func ParsePatch(text string) *Patch {
	patch := &Patch{}

	for len(text) > 0 {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			patch.Lines = append(patch.Lines, Line{Raw: text})
			break
		}

		patch.Lines = append(patch.Lines, Line{Raw: text[:idx+1]})
		text = text[idx+1:]
	}

	return patch
}

// String reassembles the patch text.
func (p *Patch) String() string {
	var sb strings.Builder
	for _, line := range p.Lines {
		sb.WriteString(line.Raw)
	}

	return sb.String()
}

// Outcome is the result of one mutation pass over a patch.
type Outcome struct {
	// Patch is the mutated unified-diff text, same line count and
	// terminators as the input.
	Patch string
	// Mutations is 0 or 1; downstream consumers must treat 0 as
	// "artifact is not meaningful".
	Mutations int
	// Fallback reports whether the mutation came from the marker-comment
	// fallback rather than a structural rewrite.
	Fallback bool
}
