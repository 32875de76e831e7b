package render

import (
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/yasmin-shahed/mouse/checker"
)

// LineDump is the YAML-serializable shape of one checked line, for the
// `mouse dump` subcommand.
type LineDump struct {
	Num     int      `yaml:"num"`
	Formula string   `yaml:"formula"`
	Rule    string   `yaml:"rule"`
	Cites   []int    `yaml:"cites,omitempty"`
	Checked bool     `yaml:"checked"`
	InScope []string `yaml:"in_scope,omitempty"`
}

// DumpContext renders every line of ctx, in ascending line-number order,
// as YAML.
func DumpContext(ctx *checker.Context) (string, error) {
	nums := make([]int, 0, len(ctx.Lines))
	for n := range ctx.Lines {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	dumps := make([]LineDump, 0, len(nums))
	for _, n := range nums {
		l := ctx.Lines[n]
		scope := make([]string, 0, len(l.Vars))
		for v := range l.Vars {
			scope = append(scope, v)
		}
		sort.Strings(scope)
		dumps = append(dumps, LineDump{
			Num:     l.Num,
			Formula: l.Typ.String(),
			Rule:    l.Just.Name,
			Cites:   l.Just.Args,
			Checked: l.Checked,
			InScope: scope,
		})
	}

	out, err := yaml.Marshal(dumps)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
