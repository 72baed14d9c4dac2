package main

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildProgram(t *testing.T) {
	prog, err := BuildProgram("1 { 2 { } } 3", "test")
	require.NoError(t, err)

	assert.Equal(t, SequenceNode, prog.Kind)
	assert.Equal(t, "1 { 2 { } } 3", prog.Loc.Contents(), "expected root to span the program")
	require.Len(t, prog.Items, 3)

	one, outer, three := prog.Items[0], prog.Items[1], prog.Items[2]
	assert.Equal(t, AtomNode, one.Kind)
	assert.Equal(t, integerToken, one.Atom.kind)
	assert.Equal(t, AtomNode, three.Kind)
	assert.Equal(t, 3, three.Atom.n)

	require.Equal(t, BlockNode, outer.Kind)
	assert.Equal(t, Loc{Src: prog.Loc.Src, Pos: 4, Len: 5}, outer.Body.Loc, "expected outer body location")
	assert.Equal(t, outer.Body.Loc, outer.Loc, "expected block to share its body location")
	require.Len(t, outer.Body.Items, 2)

	inner := outer.Body.Items[1]
	require.Equal(t, BlockNode, inner.Kind)
	assert.Empty(t, inner.Body.Items)
	assert.Equal(t, Loc{Src: prog.Loc.Src, Pos: 8, Len: 1}, inner.Loc, "expected empty block to be located at its end")

	assert.Equal(t, "1 { 2 { } } 3", prog.String())
}

func Test_BuildProgram_empty(t *testing.T) {
	for _, text := range []string{"", "  \n", "// nothing here\n"} {
		prog, err := BuildProgram(text, "test")
		require.NoError(t, err)
		assert.Equal(t, SequenceNode, prog.Kind)
		assert.Empty(t, prog.Items)
		assert.Equal(t, "test", prog.Loc.Src.Name)
	}
}

func Test_BuildProgram_comments(t *testing.T) {
	prog, err := BuildProgram(strings.Join([]string{
		"// leading comment",
		"1 2",
		"   // indented comment",
		"+",
	}, "\n"), "test")
	require.NoError(t, err)
	require.Len(t, prog.Items, 3)
	assert.Equal(t, "1 2 +", prog.String())

	plus := prog.Items[2]
	assert.Equal(t, "`+` (test:4:1)", plus.Loc.String(), "expected comments not to shift locations")
}

func Test_BuildProgram_errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		text  string
		where string
		mess  string
	}{
		{"unclosed block", "1 { 2", "`{` (test:1:3)", "ran out of tokens while inside block"},
		{"unclosed nested block", "{ { } ", "`{` (test:1:1)", "ran out of tokens while inside block"},
		{"unopened block", "1 }", "`}` (test:1:3)", "unexpected end of block while not inside a block"},
		{"extra close", "{ } }\n{", "`}` (test:1:5)", "unexpected end of block while not inside a block"},
		{"bad token", "{ 1 ~ }", "`~` (test:1:5)", "unknown token `~`"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildProgram(tc.text, "test")
			var se *SyntaxError
			require.True(t, errors.As(err, &se), "expected syntax error, got %v", err)
			assert.Equal(t, tc.where, se.Loc.String())
			assert.Equal(t, tc.mess, se.Message)
			assert.EqualError(t, err, "error at "+tc.where+": "+tc.mess)
		})
	}
}

func Test_BuildProgram_nesting(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		text, depth := randomBlocks(rng, 5)
		prog, err := BuildProgram(text, "test")
		require.NoError(t, err, "unexpected error parsing %q", text)
		assert.Equal(t, depth, nodeDepth(prog), "expected nesting depth of %q", text)
		assert.Equal(t, strings.Join(strings.Fields(text), " "), prog.String(),
			"expected program to render as its source")
	}
}

// randomBlocks generates a well bracketed program, returning it along with
// its maximum block nesting depth.
func randomBlocks(rng *rand.Rand, maxDepth int) (string, int) {
	var sb strings.Builder
	var gen func(depth int) int
	gen = func(depth int) int {
		max := depth
		for n := rng.Intn(4); n > 0; n-- {
			if depth < maxDepth && rng.Intn(3) == 0 {
				sb.WriteString("{ ")
				if d := gen(depth + 1); d > max {
					max = d
				}
				sb.WriteString("} ")
			} else {
				sb.WriteString("x ")
			}
		}
		return max
	}
	depth := gen(0)
	return sb.String(), depth
}

func nodeDepth(node *Node) int {
	switch node.Kind {
	case BlockNode:
		return 1 + nodeDepth(node.Body)
	case SequenceNode:
		max := 0
		for _, item := range node.Items {
			if d := nodeDepth(item); d > max {
				max = d
			}
		}
		return max
	default:
		return 0
	}
}
