package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

// TestCheckPropositionalChain reproduces the propositional chain scenario
// end to end: parse, verify every line, discharge the single obligation Z.
func TestCheckPropositionalChain(t *testing.T) {
	var out bytes.Buffer
	cc := &cli.Context{Out: &out}
	cfg := &CheckConfig{MainConfig: &MainConfig{ColorMode: "never"}}
	if err := runCheck(cfg, cc, []string{"testdata/propositional_chain.mouse"}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(out.String(), "|- Z") {
		t.Fatalf("expected a discharged sequent concluding Z, got:\n%s", out.String())
	}
}

// TestCheckDeduction reproduces the deduction scenario: a sub-proof cited
// by a ded line, discharging A -> A with no remaining hypotheses.
func TestCheckDeduction(t *testing.T) {
	var out bytes.Buffer
	cc := &cli.Context{Out: &out}
	cfg := &CheckConfig{MainConfig: &MainConfig{ColorMode: "never"}}
	if err := runCheck(cfg, cc, []string{"testdata/deduction.mouse"}); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(out.String(), "{} |- (A -> A)") {
		t.Fatalf("expected an empty-hypothesis sequent concluding A -> A, got:\n%s", out.String())
	}
}

// TestCheckRewriteFailure reproduces the rewrite-failure scenario: and_comm
// cannot relate an Or-swap, so line 2 must fail and runCheck must report
// a non-zero exit via cli.ExitCodeErr.
func TestCheckRewriteFailure(t *testing.T) {
	var out bytes.Buffer
	cc := &cli.Context{Out: &out}
	cfg := &CheckConfig{MainConfig: &MainConfig{ColorMode: "never"}}
	err := runCheck(cfg, cc, []string{"testdata/rewrite_failure.mouse"})
	if err == nil {
		t.Fatalf("expected runCheck to fail on a rewrite-rule mismatch")
	}
	if _, ok := err.(cli.ExitCodeErr); !ok {
		t.Fatalf("expected a cli.ExitCodeErr, got %T: %v", err, err)
	}
}
