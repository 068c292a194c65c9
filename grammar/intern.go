package grammar

import (
	"sort"

	"github.com/go-pika/pika/clause"
)

// internAll implements spec.md §4.1 step 4 and the §3 invariant "two
// clauses with equal String() are the same object". It computes a
// canonical representative per distinct String() among every clause
// reachable from byName, merging OwnerRuleNames on collision, then
// rewrites every Sub pointer (and byName itself) to point at
// representatives.
//
// Clause.String() is itself safe to call here even though the graph
// may be cyclic: any cycle passes through a rule's top clause (the
// only way a RuleRef resolves back to an ancestor), and print.go
// renders a subclause that owns a rule name by that name instead of
// expanding it, so the recursion always bottoms out.
func internAll(byName map[string]*clause.Clause) map[string]*clause.Clause {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var order []*clause.Clause
	seen := map[*clause.Clause]bool{}
	var collect func(c *clause.Clause)
	collect = func(c *clause.Clause) {
		if seen[c] {
			return
		}
		seen[c] = true
		order = append(order, c)
		for _, s := range c.Sub {
			collect(s.Clause)
		}
	}
	for _, name := range names {
		collect(byName[name])
	}

	repByKey := map[string]*clause.Clause{}
	repOf := map[*clause.Clause]*clause.Clause{}
	for _, c := range order {
		key := c.String()
		rep, ok := repByKey[key]
		if !ok {
			repByKey[key] = c
			repOf[c] = c
			continue
		}
		if rep != c {
			rep.OwnerRuleNames = mergeNames(rep.OwnerRuleNames, c.OwnerRuleNames)
		}
		repOf[c] = rep
	}

	for _, c := range order {
		for i, s := range c.Sub {
			if rep := repOf[s.Clause]; rep != s.Clause {
				c.Sub[i].Clause = rep
			}
		}
	}
	out := make(map[string]*clause.Clause, len(byName))
	for name, c := range byName {
		out[name] = repOf[c]
	}
	return out
}

func mergeNames(a, b []string) []string {
	has := map[string]bool{}
	for _, n := range a {
		has[n] = true
	}
	for _, n := range b {
		if !has[n] {
			a = append(a, n)
			has[n] = true
		}
	}
	return a
}
