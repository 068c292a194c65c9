// Package driver runs the pika matching algorithm (spec.md §4.2–§4.3)
// over a prepared grammar.Grammar: a right-to-left, priority-queue
// driven fixpoint that fills a MemoTable with the best match of every
// clause at every input position, left recursion included.
package driver

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/grammar"
)

// ParserOption configures Parse, following the same functional-options
// shape grammar.PrepareOption uses.
type ParserOption func(*parserConfig)

type parserConfig struct {
	log hclog.Logger
}

// WithLogger attaches a logger Parse uses to trace matching progress
// at debug level. Without this option Parse logs nothing; log must not
// be nil.
func WithLogger(log hclog.Logger) ParserOption {
	return func(c *parserConfig) { c.log = log }
}

// Result is the outcome of matching one rule against one input.
type Result struct {
	Grammar    *grammar.Grammar
	RuleName   string
	RuleClause *clause.Clause
	Input      []rune
	Table      *MemoTable
}

// Match returns the rule's best match starting at position 0, if any.
func (r *Result) Match() (*Match, bool) {
	return r.Table.Get(r.RuleClause, 0)
}

// FullyMatched reports whether the rule matched the entire input.
func (r *Result) FullyMatched() bool {
	m, ok := r.Match()
	return ok && m.Len == len(r.Input)
}

// RootLabel reports the AST label package ast should give this
// result's root node: the label the grammar author attached directly
// to the rule's own clause (grammar.Rule.RootLabel), or the rule name
// itself if they didn't label it specially.
func (r *Result) RootLabel() string {
	if label, ok := r.Grammar.RootLabels[r.RuleName]; ok {
		return label
	}
	return r.RuleName
}

// Parse matches ruleName against input and returns the filled memo
// table. It succeeds even when the rule doesn't match (or matches
// only a prefix) — check Result.FullyMatched, or hand Result.Table to
// package recovery to find where things went wrong. It only errors
// when ruleName isn't in the grammar at all.
func Parse(g *grammar.Grammar, ruleName string, input string, opts ...ParserOption) (*Result, error) {
	ruleClause, ok := g.Clause(ruleName)
	if !ok {
		return nil, fmt.Errorf("pika: no rule named %q in this grammar", ruleName)
	}
	cfg := &parserConfig{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	runes := []rune(input)
	cfg.log.Debug("parsing", "rule", ruleName, "input_runes", len(runes))
	table := match(g, runes, cfg.log)

	return &Result{
		Grammar:    g,
		RuleName:   ruleName,
		RuleClause: ruleClause,
		Input:      runes,
		Table:      table,
	}, nil
}

// ExplainFailure describes, in one line, how far parsing got: the
// rightmost position any clause matched up to, which is usually close
// to where a human would say the input went wrong. It's a coarser
// signal than package recovery's error spans, useful when the caller
// only has one rule to test and no recovery points defined for it.
func (r *Result) ExplainFailure() string {
	if r.FullyMatched() {
		return "parsed successfully"
	}
	furthest := 0
	for key, m := range r.Table.Entries() {
		if end := key.StartPos + m.Len; end > furthest {
			furthest = end
		}
	}
	if furthest >= len(r.Input) {
		return fmt.Sprintf("rule %q did not match the full input, though some clause reached the end", r.RuleName)
	}
	return fmt.Sprintf("rule %q: furthest match reached position %d of %d", r.RuleName, furthest, len(r.Input))
}
