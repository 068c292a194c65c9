package grammar

import "github.com/go-pika/pika/clause"

// computeZeroChar fills in CanMatchZeroChars for every clause reachable
// from all, the same fixpoint idea the teacher's grammar/first.go uses
// to grow a FIRST set: start from a conservative guess, repeatedly
// recompute each clause from its subclauses' current guesses, and stop
// once a full pass changes nothing. Needed because nullability is
// mutually recursive across a left-recursive cycle (e.g. a rule whose
// only base case is a later alternative), so a single top-down pass
// can't always see the right answer on its first visit to a clause.
func computeZeroChar(all []*clause.Clause) {
	for {
		changed := false
		for _, c := range all {
			if zeroCharOf(c) && !c.CanMatchZeroChars {
				c.CanMatchZeroChars = true
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func zeroCharOf(c *clause.Clause) bool {
	switch c.Kind {
	case clause.KindCharSet:
		return false
	case clause.KindCharSeq:
		return c.Str == ""
	case clause.KindStart, clause.KindNothing, clause.KindFollowedBy, clause.KindNotFollowedBy:
		return true
	case clause.KindOneOrMore:
		return c.Sub[0].Clause.CanMatchZeroChars
	case clause.KindSeq:
		for _, s := range c.Sub {
			if !s.Clause.CanMatchZeroChars {
				return false
			}
		}
		return true
	case clause.KindFirst:
		for _, s := range c.Sub {
			if s.Clause.CanMatchZeroChars {
				return true
			}
		}
		return false
	default:
		return false
	}
}
