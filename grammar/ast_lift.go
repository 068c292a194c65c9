package grammar

import "github.com/go-pika/pika/clause"

// liftASTLabels erases KindASTNodeLabel placeholders, moving their
// label onto the Sub slot that held them (spec.md §4.1 step 1). A
// label wrapping a rule's entire clause moves onto the rule itself
// instead, since a rule has no enclosing Sub slot of its own.
//
// Runs before precedence rewriting and rule-ref resolution, so the
// clauses walked here are exactly what grammar authors built: with no
// RuleRef resolved yet they cannot form a cycle, so a plain recursive
// walk (no cycle guard) is enough. A subclause shared by several
// parents is simply visited once per parent.
func liftASTLabels(rules []*Rule) {
	for _, r := range rules {
		for r.Clause.Kind == clause.KindASTNodeLabel {
			r.RootLabel = r.Clause.Label
			r.Clause = r.Clause.Inner
		}
		liftASTLabelsIn(r.Clause)
	}
}

func liftASTLabelsIn(c *clause.Clause) {
	if len(c.Sub) == 0 {
		return
	}
	for i, s := range c.Sub {
		for s.Clause.Kind == clause.KindASTNodeLabel {
			s = clause.LabeledSubClause{Clause: s.Clause.Inner, Label: s.Clause.Label}
		}
		c.Sub[i] = s
		liftASTLabelsIn(s.Clause)
	}
}
