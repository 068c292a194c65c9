package grammar

import (
	"sort"
	"strings"
)

// Print renders every rule in g as "Name <- body;", one per line,
// sorted by name. It's the grammar-level counterpart to
// clause.Clause.String(): each rule's body prints using the same
// by-name shortcut for any subclause that is itself a rule (including
// the synthetic RuleName[i] levels a precedence group rewrites into),
// so the output stays readable instead of inlining the whole grammar
// into one expression.
func Print(g *Grammar) string {
	names := make([]string, 0, len(g.RuleByName))
	for name := range g.RuleByName {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(" <- ")
		b.WriteString(g.RuleByName[name].String())
		b.WriteString(";\n")
	}
	return b.String()
}
