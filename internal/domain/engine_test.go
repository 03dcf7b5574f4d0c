package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sabot.dev/pkg/sabot/internal/model"
)

func readTestPatch(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)

	return string(data)
}

func TestMutate_UnknownModeFails(t *testing.T) {
	mu := NewMutator()

	_, err := mu.Mutate("+break;\n", m.Mode("panic!"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mutation mode")
}

func TestMutate_LoopExitTermination(t *testing.T) {
	mu := NewMutator()

	outcome, err := mu.Mutate("+    break;\n", m.ModePanic)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Mutations)
	assert.False(t, outcome.Fallback)
	assert.Equal(t, "+    panic!(\"mutation\");\n", outcome.Patch)
}

func TestMutate_UnsafeWrap(t *testing.T) {
	mu := NewMutator()

	outcome, err := mu.Mutate("+    let x = do_thing();\n", m.ModeUnsafe)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Mutations)
	assert.Equal(t, "+    let x = unsafe { do_thing() };\n", outcome.Patch)
}

func TestMutate_SuppressedErrorCallForm(t *testing.T) {
	mu := NewMutator()

	outcome, err := mu.Mutate("+    commit();\n", m.ModeUnwrap)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Mutations)
	assert.Equal(t, "+    commit().unwrap();\n", outcome.Patch)
}

func TestMutate_AtMostOneMutation(t *testing.T) {
	// Every added line is a candidate; only the first may be rewritten.
	patchText := strings.Join([]string{
		"+++ b/src/worker.rs",
		"+    break;",
		"+    break;",
		"+    continue;",
		"",
	}, "\n")

	mu := NewMutator()
	outcome, err := mu.Mutate(patchText, m.ModePanic)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Mutations)

	want := strings.Join([]string{
		"+++ b/src/worker.rs",
		"+    panic!(\"mutation\");",
		"+    break;",
		"+    continue;",
		"",
	}, "\n")
	assert.Equal(t, want, outcome.Patch)
}

func TestMutate_FileHeaderIsNotACandidate(t *testing.T) {
	// "+++" is diff metadata even though it starts with "+".
	mu := NewMutator()

	outcome, err := mu.Mutate("+++ b/notes.txt\n", m.ModeUnwrap)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Mutations)
	assert.Equal(t, "+++ b/notes.txt\n", outcome.Patch)
}

func TestMutate_LineCountAndTerminatorPreserved(t *testing.T) {
	// Final line has no trailing newline; it must stay that way.
	patchText := "+++ b/src/a.rs\n+    queue.pop();\n+    break;"

	mu := NewMutator()

	for _, mode := range m.Modes() {
		t.Run(string(mode), func(t *testing.T) {
			outcome, err := mu.Mutate(patchText, mode)
			require.NoError(t, err)

			inLines := strings.Count(patchText, "\n")
			outLines := strings.Count(outcome.Patch, "\n")
			assert.Equal(t, inLines, outLines)
			assert.False(t, strings.HasSuffix(outcome.Patch, "\n"))
		})
	}
}

func TestMutate_ExactlyOneLineDiffers(t *testing.T) {
	patchText := readTestPatch(t, "split_column.patch")
	mu := NewMutator()

	for _, mode := range m.Modes() {
		t.Run(string(mode), func(t *testing.T) {
			outcome, err := mu.Mutate(patchText, mode)
			require.NoError(t, err)
			require.Equal(t, 1, outcome.Mutations)

			inLines := strings.SplitAfter(patchText, "\n")
			outLines := strings.SplitAfter(outcome.Patch, "\n")
			require.Len(t, outLines, len(inLines))

			changed := 0
			for i := range inLines {
				if inLines[i] != outLines[i] {
					changed++
				}
			}
			assert.Equal(t, 1, changed)
		})
	}
}

func TestMutate_Idempotent(t *testing.T) {
	// Re-running mutation on an already-mutated patch never stacks a
	// second mutation when the mutated line was the only candidate.
	inputs := map[m.Mode]string{
		m.ModePanic:  "+++ b/src/a.rs\n+    break;\n",
		m.ModeUnsafe: "+++ b/src/a.rs\n+    let x = do_thing();\n",
		m.ModeUnwrap: "+++ b/src/a.rs\n+    commit();\n",
	}

	mu := NewMutator()

	for mode, patchText := range inputs {
		t.Run(string(mode), func(t *testing.T) {
			first, err := mu.Mutate(patchText, mode)
			require.NoError(t, err)
			require.Equal(t, 1, first.Mutations)

			second, err := mu.Mutate(first.Patch, mode)
			require.NoError(t, err)
			assert.Equal(t, 0, second.Mutations)
			assert.Equal(t, first.Patch, second.Patch)
		})
	}
}

func TestMutate_FallbackWhenNoStructuralMatch(t *testing.T) {
	patchText := readTestPatch(t, "loop_exit.patch")

	mu := NewMutator()

	// No added line matches the unsafe rules, so the first eligible line
	// of the .rs file gets the marker comment.
	outcome, err := mu.Mutate(patchText, m.ModeUnsafe)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Mutations)
	assert.True(t, outcome.Fallback)
	assert.Contains(t, outcome.Patch, "+            log_drain_stop(); // mutation_fallback unsafe\n")
}

func TestMutate_NoEligibleLinesAtAll(t *testing.T) {
	patchText := readTestPatch(t, "docs_only.patch")

	mu := NewMutator()

	outcome, err := mu.Mutate(patchText, m.ModeUnsafe)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Mutations)
	assert.False(t, outcome.Fallback)
	assert.Equal(t, patchText, outcome.Patch)
}

func TestMutate_EmptyPatch(t *testing.T) {
	mu := NewMutator()

	outcome, err := mu.Mutate("", m.ModePanic)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Mutations)
	assert.Equal(t, "", outcome.Patch)
}
