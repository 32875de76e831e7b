package parseproof

import "strings"

// Preprocess converts the `| `-prefix indentation convention into
// explicit `{ ... }` blocks, so the grammar parser only ever has to deal
// with braces. Each leading "| " on a line counts one level of nesting;
// a run of lines at depth d, followed by a line at a shallower depth,
// closes d minus the new depth braces.
func Preprocess(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))
	depth := 0
	for _, raw := range lines {
		d, rest := pipeDepth(raw)
		for depth < d {
			out = append(out, "{")
			depth++
		}
		for depth > d {
			out = append(out, "}")
			depth--
		}
		out = append(out, rest)
	}
	for depth > 0 {
		out = append(out, "}")
		depth--
	}
	return strings.Join(out, "\n")
}

func pipeDepth(line string) (int, string) {
	depth := 0
	rest := line
	for strings.HasPrefix(rest, "| ") {
		rest = rest[2:]
		depth++
	}
	return depth, rest
}
