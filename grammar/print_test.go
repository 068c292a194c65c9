package grammar

import (
	"strings"
	"testing"

	"github.com/go-pika/pika/clause"
)

func TestPrintRendersEveryRuleByName(t *testing.T) {
	digit := mustClause(t)(clause.NewCharSet([]clause.RuneRange{{Lo: '0', Hi: '9'}}, false))
	n := mustClause(t)(clause.NewOneOrMore(digit))

	g, err := Prepare([]*Rule{NewRule("N", n)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	out := Print(g)
	if !strings.Contains(out, "N <- [0-9]+;") {
		t.Errorf("Print() = %q, want it to contain %q", out, "N <- [0-9]+;")
	}
}

// TestPrintUsesRuleNamesForReferences checks that a rule referencing
// another rule prints the reference by name rather than inlining the
// referenced rule's whole body — this is what keeps Print() from
// looping forever on a left-recursive grammar.
func TestPrintUsesRuleNamesForReferences(t *testing.T) {
	digit := mustClause(t)(clause.NewCharSet([]clause.RuneRange{{Lo: '0', Hi: '9'}}, false))
	n := mustClause(t)(clause.NewOneOrMore(digit))
	nRef := mustClause(t)(clause.NewRuleRef("N"))
	wrap := mustClause(t)(clause.NewSeq(clause.Unlabeled(nRef)))

	g, err := Prepare([]*Rule{NewRule("N", n), NewRule("Wrap", wrap)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	out := Print(g)
	if !strings.Contains(out, "Wrap <- (N);") {
		t.Errorf("Print() = %q, want it to contain %q", out, "Wrap <- (N);")
	}
}
