// Package tracedbg gates verbose tracing behind environment variables,
// read once at process start, with an escape hatch for the CLI's -debug
// flag to enable everything after the fact.
package tracedbg

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type flags struct {
	Unify   bool
	Rewrite bool
	Rule    bool
	Quant   bool
	Check   bool
}

var d *flags

func init() {
	d = &flags{}
	d.Unify = boolEnv("MOUSE_DEBUG_UNIFY")
	d.Rewrite = boolEnv("MOUSE_DEBUG_REWRITE")
	d.Rule = boolEnv("MOUSE_DEBUG_RULE")
	d.Quant = boolEnv("MOUSE_DEBUG_QUANT")
	d.Check = boolEnv("MOUSE_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Unify reports whether unification tracing is enabled.
func Unify() bool {
	return d.Unify
}

// Rewrite reports whether rewrite-rule tracing is enabled.
func Rewrite() bool {
	return d.Rewrite
}

// Rule reports whether inference-rule tracing is enabled.
func Rule() bool {
	return d.Rule
}

// Quant reports whether quantifier scope-tracking tracing is enabled.
func Quant() bool {
	return d.Quant
}

// Check reports whether per-line verification tracing is enabled.
func Check() bool {
	return d.Check
}

// EnableAll turns on every trace flag, for the CLI's -debug/-v option:
// env vars are read once at init(), before flag parsing can run, so a
// command-line override has to flip these booleans directly instead.
func EnableAll() {
	d.Unify = true
	d.Rewrite = true
	d.Rule = true
	d.Quant = true
	d.Check = true
}

// Logf writes a trace line to stderr. Callers guard calls with the
// predicates above so the formatting cost is only paid when enabled.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// LogAny writes v to stderr as JSON, falling back to %v on marshal failure.
func LogAny(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(b)
}
