package render

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// FormulaDiff renders a word-level diff between two formula texts; mouse
// explain passes a line's first cited formula and the line's asserted
// formula, so the point where the two diverge is visible rather than both
// being dumped in full.
func FormulaDiff(computed, asserted string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(computed, asserted, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
