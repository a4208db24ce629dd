package differ

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
)

func TestDiffProcessor_ProcessDiff(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	diffs := dp.ProcessDiff("a\nb\nc\n", "a\nx\nc\n")
	stats := CalculateStats(diffs)

	assert.False(t, stats.IsIdentical)
	assert.Equal(t, 1, stats.LinesAdded)
	assert.Equal(t, 1, stats.LinesDeleted)
}

func TestDiffProcessor_LineModeKeepsWholeLines(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	// "b" is a suffix of "ab"; a character-level cleanup would split "ab".
	diffs := dp.ProcessDiff("x\nab\nq\n", "x\nb\ncc\nq\n")
	for _, d := range diffs {
		assert.True(t, strings.HasSuffix(d.Text, "\n"), "partial line in diff: %q", d.Text)
	}

	out := PlainText(diffs)
	assert.Contains(t, out, " x\n")
	assert.Contains(t, out, "-ab\n")
	assert.Contains(t, out, "+b\n")
	assert.Contains(t, out, "+cc\n")
	assert.Contains(t, out, " q\n")
	assert.NotContains(t, out, "-a\n")

	stats := CalculateStats(diffs)
	assert.Equal(t, 2, stats.LinesAdded)
	assert.Equal(t, 1, stats.LinesDeleted)
}

func TestDiffProcessor_Identical(t *testing.T) {
	dp := NewDiffProcessor(DefaultDiffConfig())

	stats := CalculateStats(dp.ProcessDiff("same\ntext\n", "same\ntext\n"))
	assert.True(t, stats.IsIdentical)
	assert.Zero(t, stats.LinesAdded)
	assert.Zero(t, stats.LinesDeleted)
}

func TestDiffProcessor_CharacterMode(t *testing.T) {
	dp := NewDiffProcessor(DiffConfig{})

	diffs := dp.ProcessDiff("hello world", "hello gopher")
	assert.NotEmpty(t, diffs)
	assert.False(t, CalculateStats(diffs).IsIdentical)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("one"))
	assert.Equal(t, 1, countLines("one\n"))
	assert.Equal(t, 2, countLines("one\ntwo"))
	assert.Equal(t, 2, countLines("one\ntwo\n"))
}

func TestPlainText(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "a\n"},
		{Type: diffmatchpatch.DiffDelete, Text: "b\n"},
		{Type: diffmatchpatch.DiffInsert, Text: "x"},
	}
	assert.Equal(t, " a\n-b\n+x\n", PlainText(diffs))
}

func TestCanonicalize(t *testing.T) {
	t.Run("sorts keys and indents", func(t *testing.T) {
		out, isJSON := canonicalize([]byte(`{"b":1,"a":{"d":2,"c":3}}`))
		assert.True(t, isJSON)
		assert.Equal(t, "{\n  \"a\": {\n    \"c\": 3,\n    \"d\": 2\n  },\n  \"b\": 1\n}\n", out)
	})

	t.Run("keeps large numbers exact", func(t *testing.T) {
		out, isJSON := canonicalize([]byte(`{"height":12345678901234567890}`))
		assert.True(t, isJSON)
		assert.Contains(t, out, "12345678901234567890")
	})

	t.Run("non-JSON passes through", func(t *testing.T) {
		out, isJSON := canonicalize([]byte("plain text"))
		assert.False(t, isJSON)
		assert.Equal(t, "plain text", out)
	})

	t.Run("key order does not matter", func(t *testing.T) {
		a, _ := canonicalize([]byte(`{"x":1,"y":2}`))
		b, _ := canonicalize([]byte(` { "y" : 2 , "x" : 1 } `))
		assert.Equal(t, a, b)
	})
}
