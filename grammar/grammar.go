// Package grammar turns author-supplied Rules into a prepared Grammar:
// interned, cycle-tolerant clauses carrying the metadata (ClauseIdx,
// CanMatchZeroChars, SeedParentClauses) the driver package's matcher
// needs. See Prepare for the pipeline, spec.md §4.1.
package grammar

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/perr"
)

// Grammar is the immutable result of Prepare. RuleByName maps every
// rule name the author supplied (including precedence-group aliases
// and the synthetic RuleName[i] levels) to its interned top clause.
type Grammar struct {
	RuleByName    map[string]*clause.Clause
	AllClauses    []*clause.Clause
	TerminalSeeds []*clause.Clause
	RootLabels    map[string]string
}

// Clause looks up a rule by name, returning ok=false if it doesn't
// exist in the prepared grammar.
func (g *Grammar) Clause(ruleName string) (*clause.Clause, bool) {
	c, ok := g.RuleByName[ruleName]
	return c, ok
}

// PrepareOption configures Prepare, following the functional-options
// pattern the teacher's CompileOption/ParserOption use throughout.
type PrepareOption func(*prepareConfig)

type prepareConfig struct {
	log hclog.Logger
}

// WithLogger attaches a logger Prepare uses to trace each pipeline
// stage at debug level. Without this option Prepare logs nothing; log
// must not be nil.
func WithLogger(log hclog.Logger) PrepareOption {
	return func(c *prepareConfig) { c.log = log }
}

// Prepare runs the pipeline spec.md §4.1 describes: lift AST labels,
// rewrite precedence groups, resolve rule references, intern clauses,
// order them, compute CanMatchZeroChars, wire seed parents and collect
// the terminal seed set. rules is consumed; callers should not reuse
// the Rule values afterward, since their Clause trees are mutated in
// place by the rewrite and resolution stages.
func Prepare(rules []*Rule, opts ...PrepareOption) (*Grammar, error) {
	cfg := &prepareConfig{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(rules) == 0 {
		return nil, perr.InvalidComposition("a grammar needs at least one rule")
	}

	liftASTLabels(rules)
	cfg.log.Debug("lifted AST labels", "rules", len(rules))

	rootLabels := map[string]string{}
	for _, r := range rules {
		if r.RootLabel != "" {
			rootLabels[r.Name] = r.RootLabel
		}
	}

	rewritten, err := rewritePrecedence(rules)
	if err != nil {
		return nil, err
	}
	cfg.log.Debug("rewrote precedence groups", "rules_before", len(rules), "rules_after", len(rewritten))

	byName, errs := buildRuleMap(rewritten)
	if errs != nil {
		return nil, errs
	}

	if errs := resolveRootRefs(byName); errs != nil {
		return nil, errs
	}
	if errs := resolveRefs(byName); errs != nil {
		return nil, errs
	}
	cfg.log.Debug("resolved rule references", "rules", len(byName))

	byName = internAll(byName)

	all := reverseTopoOrder(rootsOf(byName))
	for i, c := range all {
		c.ClauseIdx = i
	}
	cfg.log.Debug("ordered clauses", "count", len(all))

	computeZeroChar(all)

	productive := computeProductive(all)
	var badErrs perr.GrammarErrors
	for name, c := range byName {
		if !productive[c] {
			badErrs = append(badErrs, perr.InvalidComposition("rule "+name+" can never match anything: every path through it leads back to itself with no terminal or alternative to ground it"))
		}
	}
	if len(badErrs) > 0 {
		return nil, badErrs
	}

	wireSeedParents(all)

	return &Grammar{
		RuleByName:    byName,
		AllClauses:    all,
		TerminalSeeds: terminalSeeds(all),
		RootLabels:    rootLabels,
	}, nil
}

func rootsOf(byName map[string]*clause.Clause) []*clause.Clause {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := map[*clause.Clause]bool{}
	var out []*clause.Clause
	for _, name := range names {
		c := byName[name]
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
