package rules

import "strings"

// abortCall is the fixed abort statement injected by this rule family.
const abortCall = `panic!("mutation");`

// rewriteBareReturns gates the `return;` rewrite, which would only fire when
// further added lines follow in the patch. Off pending confirmation that the
// narrower rule set was intentional hardening rather than dead code.
const rewriteBareReturns = false

// rewritePanic replaces loop-exit control flow with an unconditional abort,
// preserving the line's leading whitespace.
func rewritePanic(body string, ctx LineContext) (string, bool) {
	if strings.Contains(body, "panic!") {
		return body, false
	}

	stripped := strings.TrimSpace(body)
	if stripped == "break;" || stripped == "continue;" {
		return leadingWhitespace(body) + abortCall, true
	}

	if rewriteBareReturns {
		if strings.HasPrefix(stripped, "return") && !ctx.LastAdded {
			return leadingWhitespace(body) + abortCall, true
		}
	}

	return body, false
}
