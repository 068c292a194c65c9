package driver

import (
	"github.com/hashicorp/go-hclog"

	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/grammar"
)

// match runs spec.md §4.3's algorithm: seed every terminal at every
// position, then let newly-discovered matches wake the parent clauses
// that might now also match, processing positions right to left so a
// clause's dependency on a later position (OneOrMore's own
// continuation, a Seq's later subclauses) is always already settled.
//
// FollowedBy and NotFollowedBy can't be driven by seed-parent wake-ups
// alone — a negative lookahead's success depends on sub never
// matching, which nothing "wakes up" for. Once a position's normal
// queue drains, closeLookaheads evaluates every lookahead clause
// directly against whatever sub currently holds, which is final for
// that position at that point. If that newly succeeds or improves
// something, the normal queue may have new work again, so the two
// alternate until a full round of both changes nothing.
func match(g *grammar.Grammar, input []rune, log hclog.Logger) *MemoTable {
	table := NewMemoTable()
	q := newWorkQueue()

	for pos := len(input); pos >= 0; pos-- {
		seedTerminals(g, pos, input, table, q)
		for {
			drained := drain(pos, input, table, q)
			closed := closeLookaheads(g, pos, input, table, q)
			if !drained && !closed {
				break
			}
		}
	}
	log.Debug("match complete", "positions", len(input)+1, "entries", len(table.Entries()))
	return table
}

func seedTerminals(g *grammar.Grammar, pos int, input []rune, table *MemoTable, q *workQueue) {
	for _, c := range g.TerminalSeeds {
		if m, ok := attemptMatch(c, pos, input, table); ok {
			record(c, pos, m, table, q)
		}
	}
}

func drain(pos int, input []rune, table *MemoTable, q *workQueue) bool {
	changed := false
	for {
		sp, ok := q.peekStartPos()
		if !ok || sp != pos {
			return changed
		}
		key, _ := q.pop()
		if m, ok := attemptMatch(key.Clause, pos, input, table); ok {
			if record(key.Clause, pos, m, table, q) {
				changed = true
			}
		}
	}
}

func closeLookaheads(g *grammar.Grammar, pos int, input []rune, table *MemoTable, q *workQueue) bool {
	changed := false
	for _, c := range g.AllClauses {
		if c.Kind != clause.KindFollowedBy && c.Kind != clause.KindNotFollowedBy {
			continue
		}
		if m, ok := attemptMatch(c, pos, input, table); ok {
			if record(c, pos, m, table, q) {
				changed = true
			}
		}
	}
	return changed
}

// record stores m if it strictly beats whatever's already at (c,pos),
// and if so wakes every seed parent of c at pos so the improvement can
// propagate upward (spec.md §4.1 step 7).
func record(c *clause.Clause, pos int, m *Match, table *MemoTable, q *workQueue) bool {
	current, _ := table.Get(c, pos)
	if !beats(m, current) {
		return false
	}
	table.set(MemoKey{Clause: c, StartPos: pos}, m)
	for parent := range c.SeedParentClauses {
		q.push(MemoKey{Clause: parent, StartPos: pos})
	}
	return true
}
