package grammar

import "github.com/go-pika/pika/clause"

// wireSeedParents implements spec.md §4.1 step 7: link every
// subclause to the parents whose match could newly become possible at
// the exact position the subclause just matched at.
//
// First, OneOrMore, FollowedBy and NotFollowedBy all attempt their
// sub(s) at their own start position, so each sub simply seeds its
// parent. Seq only has its first subclause start at the Seq's own
// position in general — but if that subclause can match zero
// characters, the next one can *also* start there, so the cascade
// continues through every leading subclause that can match zero
// characters, plus the one right after them (the first one guaranteed
// to consume at least one character, which therefore can only ever
// start the Seq's match at that same position, never later subs).
func wireSeedParents(all []*clause.Clause) {
	for _, c := range all {
		switch c.Kind {
		case clause.KindSeq:
			for _, s := range c.Sub {
				s.Clause.AddSeedParent(c)
				if !s.Clause.CanMatchZeroChars {
					break
				}
			}
		case clause.KindFirst:
			for _, s := range c.Sub {
				s.Clause.AddSeedParent(c)
			}
		case clause.KindOneOrMore, clause.KindFollowedBy, clause.KindNotFollowedBy:
			c.Sub[0].Clause.AddSeedParent(c)
		}
	}
}

// terminalSeeds implements spec.md §4.1 step 8: the clauses with no
// subclauses of their own, which the matcher must try directly at
// every input position since nothing will ever trigger them via a
// seed-parent link. Everything else is reached transitively: a
// terminal's match enqueues its seed parents, whose own matches
// enqueue theirs, and so on up through rule bodies and back around
// left-recursive cycles until the position's fixpoint is reached.
func terminalSeeds(all []*clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for _, c := range all {
		if c.IsTerminal() {
			out = append(out, c)
		}
	}
	return out
}
