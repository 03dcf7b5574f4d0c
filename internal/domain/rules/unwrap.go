package rules

import (
	"regexp"
	"strings"
)

var (
	// `?` immediately followed by a delimiter: the propagation point keeps
	// its place in the expression, so the unwrap slots in before it.
	tryDelimRE = regexp.MustCompile(`\?([;,)\]}])`)
	// `?` followed only by whitespace and the statement terminator.
	trySemiRE = regexp.MustCompile(`\?[ \t]*;`)
	// A statement ending in `ident(...);`, trailing whitespace allowed.
	callStmtRE = regexp.MustCompile(`\w[\w.:]*[ \t]*\(.*\)[ \t]*;[ \t]*$`)
	// The `);` tail of such a statement, rewritten to `).unwrap();`.
	callTailRE = regexp.MustCompile(`\)[ \t]*;[ \t]*$`)
)

// rewriteUnwrap silences explicit error propagation. Rule order matters:
// the `?`-operator rules fire before the bare-call rule so that a body like
// `let x = foo()?;` rewrites the operator, not the trailing call.
func rewriteUnwrap(body string, _ LineContext) (string, bool) {
	if strings.Contains(body, ".unwrap(") {
		return body, false
	}

	if strings.Contains(body, "?") {
		if loc := tryDelimRE.FindStringSubmatchIndex(body); loc != nil {
			delim := body[loc[2]:loc[3]]
			return body[:loc[0]] + ".unwrap()" + delim + body[loc[1]:], true
		}

		if loc := trySemiRE.FindStringIndex(body); loc != nil {
			return body[:loc[0]] + ".unwrap();" + body[loc[1]:], true
		}
	}

	if strings.Contains(body, ".expect(") {
		return body, false
	}

	if callStmtRE.MatchString(body) {
		return callTailRE.ReplaceAllString(body, ").unwrap();"), true
	}

	return body, false
}
