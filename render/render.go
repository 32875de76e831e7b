// Package render turns checker/prop/obligation values into the text the
// CLI and LSP server show a user: formula and sequent rendering, a YAML
// dump of a proof's lines, and a textual diff between a cited line's
// formula and the formula a line asserts.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/yasmin-shahed/mouse/prop"
)

// Sequent renders {hyp1, hyp2, ...} |- conclusion.
func Sequent(hyps []*prop.Prop, conclusion *prop.Prop) string {
	parts := make([]string, len(hyps))
	for i, h := range hyps {
		parts[i] = h.String()
	}
	return fmt.Sprintf("{%s} |- %s", strings.Join(parts, ", "), conclusion)
}

var (
	checkMark = color.New(color.FgGreen).SprintFunc()
	crossMark = color.New(color.FgRed).SprintFunc()
)

// Marker returns a colored ✓ or ✗, honoring color.NoColor (set by the
// caller once, from isatty, before any Marker call) so piped output
// stays plain.
func Marker(ok bool) string {
	if ok {
		return checkMark("✓")
	}
	return crossMark("✗")
}

// Line renders one progress line: "  3. ✓ (Q -> Z)" or, on failure, the
// marker followed by the triggering error.
func Line(num int, typ *prop.Prop, err error) string {
	if err == nil {
		return fmt.Sprintf("%3d. %s %s", num, Marker(true), typ)
	}
	return fmt.Sprintf("%3d. %s %s — %v", num, Marker(false), typ, err)
}
