package recovery

import (
	"reflect"
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

// TestGetSyntaxErrorsFindsGap mirrors spec.md §8's E5 scenario:
// S <- ('x' / 'y')+ over "xxzzyy" should report a single error span
// for the "zz" that neither 'x' nor 'y' can cover.
func TestGetSyntaxErrorsFindsGap(t *testing.T) {
	x := mustC(t)(clause.NewCharSeq("x", false))
	y := mustC(t)(clause.NewCharSeq("y", false))
	xy := mustC(t)(clause.NewFirst(clause.Unlabeled(x), clause.Unlabeled(y)))
	s := mustC(t)(clause.NewOneOrMore(xy))

	g, err := grammar.Prepare([]*grammar.Rule{grammar.NewRule("S", s)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res, err := driver.Parse(g, "S", "xxzzyy")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sClause, _ := g.Clause("S")

	got := GetSyntaxErrors(res.Table, []*clause.Clause{sClause}, res.Input)
	want := []ErrorSpan{{Start: 2, End: 4, Text: "zz"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetSyntaxErrors = %+v, want %+v", got, want)
	}
}

func TestGetSyntaxErrorsNoGaps(t *testing.T) {
	x := mustC(t)(clause.NewCharSeq("x", false))
	s := mustC(t)(clause.NewOneOrMore(x))
	g, err := grammar.Prepare([]*grammar.Rule{grammar.NewRule("S", s)})
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	res, err := driver.Parse(g, "S", "xxx")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sClause, _ := g.Clause("S")
	got := GetSyntaxErrors(res.Table, []*clause.Clause{sClause}, res.Input)
	if len(got) != 0 {
		t.Errorf("expected no error spans, got %+v", got)
	}
}
