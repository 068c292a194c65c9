package ast

import (
	"testing"

	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/driver"
	"github.com/go-pika/pika/grammar"
)

func mustC(t *testing.T) func(*clause.Clause, error) *clause.Clause {
	t.Helper()
	return func(c *clause.Clause, err error) *clause.Clause {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return c
	}
}

// buildPair returns Pair <- x:[0-9] y:[0-9]
func buildPair(t *testing.T) *clause.Clause {
	digit := mustC(t)(clause.NewCharSet([]clause.RuneRange{{Lo: '0', Hi: '9'}}, false))
	digit2 := mustC(t)(clause.NewCharSet([]clause.RuneRange{{Lo: '0', Hi: '9'}}, false))
	return mustC(t)(clause.NewSeq(clause.Labeled("x", digit), clause.Labeled("y", digit2)))
}

func TestProjectLabelsDirectChildren(t *testing.T) {
	pair := buildPair(t)
	g, err := grammar.Prepare([]*grammar.Rule{grammar.NewRule("Pair", pair)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res, err := driver.Parse(g, "Pair", "12")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := res.Match()
	if !ok {
		t.Fatal("expected a match")
	}
	node := Project(m, "Pair", res.Input)
	if len(node.Children) != 2 {
		t.Fatalf("expected 2 labeled children, got %d", len(node.Children))
	}
	if node.Children[0].Label != "x" || node.Children[0].Text != "1" {
		t.Errorf("child 0 = %+v, want label x text 1", node.Children[0])
	}
	if node.Children[1].Label != "y" || node.Children[1].Text != "2" {
		t.Errorf("child 1 = %+v, want label y text 2", node.Children[1])
	}
}

// TestProjectTransparentWrapper checks that wrapping a rule in an
// unlabeled reference doesn't change its projection: Wrap <- Pair
// should yield the same two children x/y as projecting Pair directly.
func TestProjectTransparentWrapper(t *testing.T) {
	pair := buildPair(t)
	pairRef := mustC(t)(clause.NewRuleRef("Pair"))
	wrap := mustC(t)(clause.NewSeq(clause.Unlabeled(pairRef)))

	g, err := grammar.Prepare([]*grammar.Rule{
		grammar.NewRule("Pair", pair),
		grammar.NewRule("Wrap", wrap),
	})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res, err := driver.Parse(g, "Wrap", "34")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, ok := res.Match()
	if !ok {
		t.Fatal("expected a match")
	}
	node := Project(m, "Wrap", res.Input)
	if len(node.Children) != 2 {
		t.Fatalf("expected the wrapper to be transparent (2 children), got %d", len(node.Children))
	}
	if node.Children[0].Label != "x" || node.Children[1].Label != "y" {
		t.Errorf("expected labels x,y to pass through the wrapper, got %s,%s", node.Children[0].Label, node.Children[1].Label)
	}
}

// TestProjectResultRootLabel checks that ProjectResult falls back to
// the rule name when it has no RootLabel, and uses grammar.Rule's own
// label (set by wrapping the rule's whole clause in an AST label) when
// it has one.
func TestProjectResultRootLabel(t *testing.T) {
	pair := buildPair(t)
	g, err := grammar.Prepare([]*grammar.Rule{grammar.NewRule("Pair", pair)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res, err := driver.Parse(g, "Pair", "56")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	node, ok := ProjectResult(res)
	if !ok {
		t.Fatal("expected a match")
	}
	if node.Label != "Pair" {
		t.Errorf("node.Label = %q, want %q (fallback to rule name)", node.Label, "Pair")
	}

	labeled := mustC(t)(clause.NewASTNodeLabel("PairNode", buildPair(t)))
	g2, err := grammar.Prepare([]*grammar.Rule{grammar.NewRule("Pair", labeled)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res2, err := driver.Parse(g2, "Pair", "78")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	node2, ok := ProjectResult(res2)
	if !ok {
		t.Fatal("expected a match")
	}
	if node2.Label != "PairNode" {
		t.Errorf("node2.Label = %q, want %q (rule's own AST label)", node2.Label, "PairNode")
	}
}
