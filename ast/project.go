// Package ast turns a driver.Match tree into the labeled AST spec.md
// §4.4 describes: unlabeled subclause matches are transparent and
// contribute their own children in their parent's place, so the tree
// a grammar author sees reflects only the structure they chose to
// label, not every clause the matcher happened to go through to get
// there.
package ast

import (
	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/driver"
)

// Node is one labeled AST node.
type Node struct {
	Label    string
	Start    int
	End      int
	Text     string
	Children []*Node
}

// ProjectResult builds the AST for a driver.Result's top-level match,
// using r.RootLabel() so callers don't need to look up the rule's
// label themselves. ok is false if the rule didn't match at all.
func ProjectResult(r *driver.Result) (node *Node, ok bool) {
	m, ok := r.Match()
	if !ok {
		return nil, false
	}
	return Project(m, r.RootLabel(), r.Input), true
}

// Project builds the AST for m, labeling the root rootLabel (typically
// the rule name, or its grammar.Rule.RootLabel if the author gave the
// rule's own clause a label). input is the same slice that was parsed,
// used to fill in each node's Text.
func Project(m *driver.Match, rootLabel string, input []rune) *Node {
	root := &Node{Label: rootLabel, Start: m.StartPos, End: m.EndPos(), Text: text(m, input)}
	root.Children = projectChildren(m, input)
	return root
}

func projectChildren(m *driver.Match, input []rune) []*Node {
	var out []*Node
	for i, sub := range m.SubMatches {
		label := labelFor(m, i)
		if label == "" {
			out = append(out, projectChildren(sub, input)...)
			continue
		}
		out = append(out, &Node{
			Label:    label,
			Start:    sub.StartPos,
			End:      sub.EndPos(),
			Text:     text(sub, input),
			Children: projectChildren(sub, input),
		})
	}
	return out
}

// labelFor reports the AST label, if any, that parent's clause gave
// to the subclause behind parent.SubMatches[i]. Which Sub entry that
// is depends on the parent's Kind: Seq and OneOrMore/FollowedBy line
// up SubMatches with Sub positionally (OneOrMore repeats the same
// single subclause, so every repetition shares its label); First has
// exactly one SubMatches entry, for whichever alternative matched.
func labelFor(parent *driver.Match, i int) string {
	switch parent.Clause.Kind {
	case clause.KindSeq:
		return parent.Clause.Sub[i].Label
	case clause.KindFirst:
		return parent.Clause.Sub[parent.FirstMatchingSubClauseIdx].Label
	case clause.KindOneOrMore, clause.KindFollowedBy:
		return parent.Clause.Sub[0].Label
	default:
		return ""
	}
}

func text(m *driver.Match, input []rune) string {
	return string(input[m.StartPos:m.EndPos()])
}
