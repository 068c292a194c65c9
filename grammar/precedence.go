package grammar

import (
	"fmt"
	"sort"

	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/perr"
)

// rewritePrecedence implements spec.md §4.1 step 2: rules sharing a
// bare Name describe the levels of one precedence group, lowest
// precedence first. It rewrites each group into independent rules
// named "name[i]", bumping internal self-references to the next level
// up (wrapping back to level 0 at the top) except for the
// associativity-preserving occurrence a left/right level keeps at its
// own level, and gives the top level a fallback to level 0 so atoms
// can fall through an unparenthesized expression. The bare Name is
// left aliased to level 0, for references from outside the group.
//
// Groups of exactly one level pass through unchanged: precedence
// rewriting only has meaning once there's more than one level to
// climb between, and plain (possibly left-recursive) single rules are
// left for the matcher's native left-recursion support.
func rewritePrecedence(rules []*Rule) ([]*Rule, error) {
	groups := map[string][]*Rule{}
	var order []string
	for _, r := range rules {
		if _, ok := groups[r.Name]; !ok {
			order = append(order, r.Name)
		}
		groups[r.Name] = append(groups[r.Name], r)
	}

	var out []*Rule
	for _, name := range order {
		levels := groups[name]
		if len(levels) == 1 {
			out = append(out, levels[0])
			continue
		}
		sort.SliceStable(levels, func(i, j int) bool {
			return levels[i].Precedence < levels[j].Precedence
		})
		for i := 1; i < len(levels); i++ {
			if levels[i].Precedence == levels[i-1].Precedence {
				return nil, perr.Duplicate(name)
			}
		}
		rewritten, err := rewriteGroup(name, levels)
		if err != nil {
			return nil, err
		}
		out = append(out, rewritten...)
	}
	return out, nil
}

func levelName(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

func rewriteGroup(name string, levels []*Rule) ([]*Rule, error) {
	k := len(levels)
	out := make([]*Rule, k)
	for i, lvl := range levels {
		body, err := rewriteSelfRefs(lvl.Clause, name, lvl.Assoc, i, k)
		if err != nil {
			return nil, err
		}
		if i == k-1 {
			fallback, err := clause.NewRuleRef(levelName(name, 0))
			if err != nil {
				return nil, err
			}
			body, err = clause.NewFirst(clause.Unlabeled(body), clause.Unlabeled(fallback))
			if err != nil {
				return nil, err
			}
		}
		out[i] = &Rule{Name: levelName(name, i), Precedence: i, Assoc: lvl.Assoc, Clause: body, RootLabel: lvl.RootLabel}
	}
	// Alias the bare name to level 0 so external references resolve
	// without needing to know about the rewrite.
	aliasBody, err := clause.NewRuleRef(levelName(name, 0))
	if err != nil {
		return nil, err
	}
	out = append(out, &Rule{Name: name, Clause: aliasBody})
	return out, nil
}

// rewriteSelfRefs rewrites every RuleRef(name) found under c, in
// left-to-right order, per the rules of level i of a k-level group:
// the associativity-preserving occurrence (leftmost for AssocLeft,
// rightmost for AssocRight) stays at level i; every other occurrence
// bumps to level (i+1)%k. AssocNone bumps every occurrence.
func rewriteSelfRefs(c *clause.Clause, name string, assoc Associativity, i, k int) (*clause.Clause, error) {
	total := countSelfRefs(c, name)
	if total == 0 {
		return c, nil
	}
	keep := -1
	switch assoc {
	case AssocLeft:
		keep = 0
	case AssocRight:
		keep = total - 1
	}
	seen := 0
	return rewriteSelfRefsWalk(c, name, func() string {
		idx := seen
		seen++
		if idx == keep {
			return levelName(name, i)
		}
		return levelName(name, (i+1)%k)
	}), nil
}

func countSelfRefs(c *clause.Clause, name string) int {
	if c.Kind == clause.KindRuleRef {
		if c.RefName == name {
			return 1
		}
		return 0
	}
	n := 0
	for _, s := range c.Sub {
		n += countSelfRefs(s.Clause, name)
	}
	return n
}

// rewriteSelfRefsWalk returns a new tree with every RuleRef(name)
// replaced by a RuleRef to whatever next() returns, called once per
// occurrence in left-to-right order. Clauses untouched by the rewrite
// are reused, not copied.
func rewriteSelfRefsWalk(c *clause.Clause, name string, next func() string) *clause.Clause {
	if c.Kind == clause.KindRuleRef && c.RefName == name {
		rewritten, _ := clause.NewRuleRef(next())
		return rewritten
	}
	if len(c.Sub) == 0 {
		return c
	}
	newSub := make([]clause.LabeledSubClause, len(c.Sub))
	changed := false
	for i, s := range c.Sub {
		rewritten := rewriteSelfRefsWalk(s.Clause, name, next)
		newSub[i] = clause.LabeledSubClause{Clause: rewritten, Label: s.Label}
		if rewritten != s.Clause {
			changed = true
		}
	}
	if !changed {
		return c
	}
	cp := *c
	cp.Sub = newSub
	cp.ClauseIdx = 0
	return &cp
}
