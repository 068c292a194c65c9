package grammar

import "github.com/go-pika/pika/clause"

// Associativity selects how a precedence level's self-references are
// rewritten (spec.md §4.1 step 2).
type Associativity int

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Rule is one named production as supplied to Prepare: spec.md §4.1's
// "Rule(ruleName, precedence, associativity, clause)". Several Rules
// may share a Name to describe the precedence levels of one operator
// family; Prepare groups and rewrites them (see precedence.go).
type Rule struct {
	Name       string
	Precedence int
	Assoc      Associativity
	Clause     *clause.Clause

	// RootLabel is set when the rule's clause was wrapped in an
	// ASTNodeLabel at the top level (spec.md §4.1 step 1); Prepare
	// strips the wrapper and records the label here.
	RootLabel string
}

// NewRule builds an ordinary (non-precedence-grouped) rule.
func NewRule(name string, c *clause.Clause) *Rule {
	return &Rule{Name: name, Clause: c}
}

// NewPrecedenceLevel builds one level of a precedence group. Group
// sibling levels by giving them the same Name and distinct Precedence
// values; Prepare sorts by Precedence (lowest first) and rewrites
// self-references per assoc.
func NewPrecedenceLevel(name string, precedence int, assoc Associativity, c *clause.Clause) *Rule {
	return &Rule{Name: name, Precedence: precedence, Assoc: assoc, Clause: c}
}
