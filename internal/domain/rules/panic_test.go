package rules

import "testing"

func TestRewritePanic(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ctx         LineContext
		want        string
		wantMatched bool
	}{
		{
			"break statement is replaced",
			`    break;`,
			LineContext{},
			`    panic!("mutation");`,
			true,
		},
		{
			"continue statement is replaced",
			"\t\tcontinue;",
			LineContext{},
			"\t\tpanic!(\"mutation\");",
			true,
		},
		{
			"existing panic declines",
			`    panic!("boom");`,
			LineContext{},
			`    panic!("boom");`,
			false,
		},
		{
			"break with label declines",
			`    break 'outer;`,
			LineContext{},
			`    break 'outer;`,
			false,
		},
		{
			"break without terminator declines",
			`    break`,
			LineContext{},
			`    break`,
			false,
		},
		{
			"bare return declines (rewrite disabled)",
			`    return;`,
			LineContext{LastAdded: false},
			`    return;`,
			false,
		},
		{
			"return with value declines",
			`    return Ok(());`,
			LineContext{},
			`    return Ok(());`,
			false,
		},
		{
			"plain statement declines",
			`    queue.pop();`,
			LineContext{},
			`    queue.pop();`,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := rewritePanic(tt.body, tt.ctx)
			if matched != tt.wantMatched {
				t.Fatalf("matched = %v, want %v", matched, tt.wantMatched)
			}
			if got != tt.want {
				t.Errorf("body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewritePanic_Idempotent(t *testing.T) {
	first, matched := rewritePanic(`    break;`, LineContext{})
	if !matched {
		t.Fatal("expected first pass to match")
	}

	second, matched := rewritePanic(first, LineContext{})
	if matched {
		t.Fatalf("second pass mutated again: %q", second)
	}
}
