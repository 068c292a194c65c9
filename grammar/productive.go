package grammar

import "github.com/go-pika/pika/clause"

// computeProductive runs the same fixpoint shape as computeZeroChar,
// this time tracking whether a clause can ever match anything at all
// (any length, including zero). A clause stuck at false once the
// fixpoint settles can never be satisfied — the only way that happens
// is a cycle with no terminal or already-productive alternative to
// ground it, such as a rule whose body is a Seq of nothing but a
// reference back to itself (a body that is only a bare reference to
// itself never gets this far: resolveRootRefs rejects it). Prepare
// rejects those (spec.md §4.1, the degenerate-cycle case).
func computeProductive(all []*clause.Clause) map[*clause.Clause]bool {
	productive := make(map[*clause.Clause]bool, len(all))
	for {
		changed := false
		for _, c := range all {
			if productive[c] {
				continue
			}
			if productiveOf(c, productive) {
				productive[c] = true
				changed = true
			}
		}
		if !changed {
			return productive
		}
	}
}

func productiveOf(c *clause.Clause, productive map[*clause.Clause]bool) bool {
	if c.IsTerminal() {
		return true
	}
	switch c.Kind {
	case clause.KindOneOrMore, clause.KindFollowedBy, clause.KindNotFollowedBy:
		return productive[c.Sub[0].Clause]
	case clause.KindSeq:
		for _, s := range c.Sub {
			if !productive[s.Clause] {
				return false
			}
		}
		return true
	case clause.KindFirst:
		for _, s := range c.Sub {
			if productive[s.Clause] {
				return true
			}
		}
		return false
	default:
		return false
	}
}
