package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffConfig tunes the diff algorithm
type DiffConfig struct {
	// EnableLineBasedDiff diffs whole lines instead of characters
	EnableLineBasedDiff bool
	// EnableSemanticCleanup merges trivial equalities into readable chunks.
	// Character mode only: on line diffs it would split whole lines.
	EnableSemanticCleanup bool
}

// DefaultDiffConfig returns line-based diffing with semantic cleanup
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		EnableLineBasedDiff:   true,
		EnableSemanticCleanup: true,
	}
}

// DiffProcessor handles the core diffing logic
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	return &DiffProcessor{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// ProcessDiff generates the diff between two texts. In line mode every diff
// holds whole lines.
func (dp *DiffProcessor) ProcessDiff(text1, text2 string) []diffmatchpatch.Diff {
	if dp.config.EnableLineBasedDiff {
		chars1, chars2, lines := dp.dmp.DiffLinesToChars(text1, text2)
		return dp.dmp.DiffCharsToLines(dp.dmp.DiffMain(chars1, chars2, false), lines)
	}

	diffs := dp.dmp.DiffMain(text1, text2, true)
	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}
	return diffs
}

// PrettyText renders diffs with ANSI colors
func (dp *DiffProcessor) PrettyText(diffs []diffmatchpatch.Diff) string {
	return dp.dmp.DiffPrettyText(diffs)
}

// DiffStatistics holds diff calculation results
type DiffStatistics struct {
	LinesAdded   int
	LinesDeleted int
	IsIdentical  bool
}

// CalculateStats counts inserted and deleted lines
func CalculateStats(diffs []diffmatchpatch.Diff) DiffStatistics {
	stats := DiffStatistics{IsIdentical: true}
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			stats.LinesAdded += countLines(diff.Text)
			stats.IsIdentical = false
		case diffmatchpatch.DiffDelete:
			stats.LinesDeleted += countLines(diff.Text)
			stats.IsIdentical = false
		}
	}
	return stats
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// PlainText renders diffs line by line with "+", "-" and " " prefixes
func PlainText(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
