package clause

import (
	"strconv"
	"strings"
)

// String renders c's canonical grammar-expression form. Two clauses
// with equal String() are, after grammar preparation, the same
// object (spec.md §3 "Invariants", §9 "Interning via toString"); this
// is also the grammar-expression printer spec.md §2 allocates core
// budget to, and what testable property 8 (round-trip printing)
// exercises.
func (c *Clause) String() string {
	if c.str != "" {
		return c.str
	}
	c.str = c.render()
	return c.str
}

func (c *Clause) render() string {
	switch c.Kind {
	case KindCharSet:
		return c.renderCharSet()
	case KindCharSeq:
		s := strconv.Quote(c.Str)
		if c.IgnoreCase {
			return s + "i"
		}
		return s
	case KindStart:
		return "^"
	case KindNothing:
		return "ε"
	case KindSeq:
		parts := make([]string, len(c.Sub))
		for i, s := range c.Sub {
			parts[i] = renderSub(s)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindFirst:
		parts := make([]string, len(c.Sub))
		for i, s := range c.Sub {
			parts[i] = renderSub(s)
		}
		return "(" + strings.Join(parts, " / ") + ")"
	case KindOneOrMore:
		return renderSub(c.Sub[0]) + "+"
	case KindFollowedBy:
		return "&" + renderSub(c.Sub[0])
	case KindNotFollowedBy:
		return "!" + renderSub(c.Sub[0])
	case KindRuleRef:
		return c.RefName
	case KindASTNodeLabel:
		return c.Label + ":" + c.Inner.String()
	default:
		return "?"
	}
}

// renderSub renders one Sub entry. A subclause that is itself some
// rule's top clause is rendered by that rule's name rather than
// expanded in place: expanding it would recurse forever through a
// left-recursive cycle, and printing named productions by name (rather
// than inlining their body everywhere they're referenced) is also what
// makes the output of grammar.Print readable for a multi-rule grammar.
func renderSub(s LabeledSubClause) string {
	inner := renderRef(s.Clause)
	if s.Label == "" {
		return inner
	}
	return s.Label + ":" + inner
}

func renderRef(c *Clause) string {
	if name := primaryOwnerName(c); name != "" {
		return name
	}
	return c.String()
}

// primaryOwnerName returns a deterministic representative of
// OwnerRuleNames, or "" if c isn't any rule's top clause.
func primaryOwnerName(c *Clause) string {
	if len(c.OwnerRuleNames) == 0 {
		return ""
	}
	best := c.OwnerRuleNames[0]
	for _, n := range c.OwnerRuleNames[1:] {
		if n < best {
			best = n
		}
	}
	return best
}

func (c *Clause) renderCharSet() string {
	var b strings.Builder
	b.WriteString("[")
	if c.Invert {
		b.WriteString("^")
	}
	for _, r := range c.Ranges {
		if r.Lo == r.Hi {
			b.WriteString(escapeSetRune(r.Lo))
		} else {
			b.WriteString(escapeSetRune(r.Lo))
			b.WriteString("-")
			b.WriteString(escapeSetRune(r.Hi))
		}
	}
	b.WriteString("]")
	return b.String()
}

var setEscapes = strings.NewReplacer(
	`]`, `\]`,
	`^`, `\^`,
	`-`, `\-`,
	`\`, `\\`,
)

func escapeSetRune(r rune) string {
	return setEscapes.Replace(string(r))
}
