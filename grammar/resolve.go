package grammar

import (
	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/perr"
)

// buildRuleMap indexes rules by name and tags each rule's clause with
// its own name in OwnerRuleNames, ahead of rule-ref resolution and
// interning. Fails with perr.Duplicate if two rules share a Name at
// this point — rewritePrecedence has already merged precedence-group
// siblings, so any remaining duplicate is a genuine authoring error.
func buildRuleMap(rules []*Rule) (map[string]*clause.Clause, *perr.GrammarErrors) {
	var errs perr.GrammarErrors
	m := make(map[string]*clause.Clause, len(rules))
	for _, r := range rules {
		if _, ok := m[r.Name]; ok {
			errs = append(errs, perr.Duplicate(r.Name))
			continue
		}
		r.Clause.OwnerRuleNames = append(r.Clause.OwnerRuleNames, r.Name)
		m[r.Name] = r.Clause
	}
	if len(errs) > 0 {
		return nil, &errs
	}
	return m, nil
}

// resolveRootRefs resolves the case resolveRefs can't reach: a rule
// whose entire clause is a bare RuleRef, such as the level-0 alias
// rewritePrecedence creates for a group's bare name. It follows each
// such chain to its non-RuleRef target, detecting both unresolved
// names and a chain that never bottoms out (e.g. a rule whose body is
// only ever a reference back to itself).
func resolveRootRefs(byName map[string]*clause.Clause) *perr.GrammarErrors {
	var errs perr.GrammarErrors
	for name, c := range byName {
		if c.Kind != clause.KindRuleRef {
			continue
		}
		seen := map[string]bool{name: true}
		cur := c
		for cur.Kind == clause.KindRuleRef {
			if seen[cur.RefName] {
				errs = append(errs, perr.InvalidComposition("rule "+name+" resolves through a cycle of bare references with no base case"))
				cur = nil
				break
			}
			seen[cur.RefName] = true
			next, ok := byName[cur.RefName]
			if !ok {
				errs = append(errs, perr.Unresolved(cur.RefName))
				cur = nil
				break
			}
			cur = next
		}
		if cur != nil {
			byName[name] = cur
		}
	}
	if len(errs) > 0 {
		return &errs
	}
	return nil
}

// resolveRefs erases every RuleRef placeholder reachable from a rule's
// top clause, replacing it with the named rule's clause (spec.md §4.1
// step 3). The rule-ref graph is often cyclic by design (left
// recursion resolves to a self-loop), so the walk tracks which clauses
// it has already rewritten and never revisits one: once a clause's own
// Sub entries have been fixed up, a second visit via a cycle is a
// no-op.
func resolveRefs(byName map[string]*clause.Clause) *perr.GrammarErrors {
	var errs perr.GrammarErrors
	visited := map[*clause.Clause]bool{}
	var walk func(c *clause.Clause)
	walk = func(c *clause.Clause) {
		if visited[c] {
			return
		}
		visited[c] = true
		for i, s := range c.Sub {
			if s.Clause.Kind == clause.KindRuleRef {
				target, ok := byName[s.Clause.RefName]
				if !ok {
					errs = append(errs, perr.Unresolved(s.Clause.RefName))
					continue
				}
				c.Sub[i].Clause = target
			}
		}
		for _, s := range c.Sub {
			walk(s.Clause)
		}
	}
	for _, c := range byName {
		walk(c)
	}
	if len(errs) > 0 {
		return &errs
	}
	return nil
}
