package rules

import (
	"regexp"
	"strings"
)

// A `let <name> = <expr>;` binding, optionally with a trailing // comment.
// Groups: 1 binding prefix, 2 right-hand expression, 3 suffix incl. comment.
var letAssignRE = regexp.MustCompile(`^([ \t]*let[ \t]+[^=]+?=[ \t]*)(.+?);([ \t]*(//.*)?)$`)

// A statement that is only a call expression, without the terminator.
var callExprRE = regexp.MustCompile(`\w[\w.:]*[ \t]*\(.*\)[ \t]*$`)

// Declaration openers that cannot be soundly wrapped as expressions.
var declKeywords = []string{"use ", "fn ", "pub ", "struct ", "enum ", "impl "}

// wrapBareCalls gates the standalone-call wrap rules. Deliberately off:
// re-enabling changes which lines are eligible and therefore observable
// mutation counts.
const wrapBareCalls = false

// rewriteUnsafe wraps code in an unsafe region without a SAFETY comment.
func rewriteUnsafe(body string, _ LineContext) (string, bool) {
	if strings.Contains(body, "unsafe") {
		return body, false
	}

	if mm := letAssignRE.FindStringSubmatch(body); mm != nil && strings.Contains(mm[2], "(") {
		return mm[1] + "unsafe { " + mm[2] + " };" + mm[3], true
	}

	stripped := strings.TrimLeft(body, " \t")
	for _, kw := range declKeywords {
		if strings.HasPrefix(stripped, kw) {
			return body, false
		}
	}

	if wrapBareCalls {
		// Standalone call statement: `func();` -> `unsafe { func(); }`.
		if callStmtRE.MatchString(body) {
			stmt := strings.TrimSuffix(strings.TrimSpace(body), ";")
			return leadingWhitespace(body) + "unsafe { " + stmt + " };", true
		}

		// Call expression in tail position: `func()` -> `unsafe { func() }`.
		if callExprRE.MatchString(body) && strings.Contains(body, "(") && strings.Contains(body, ")") {
			return leadingWhitespace(body) + "unsafe { " + strings.TrimSpace(body) + " }", true
		}
	}

	return body, false
}
