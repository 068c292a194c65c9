package driver

import (
	"unicode"

	"github.com/go-pika/pika/clause"
)

// attemptMatch tries to match c at pos against input, using whatever
// subclause matches table already holds. It never blocks on a missing
// subclause match: if one isn't there yet, c simply doesn't match on
// this attempt, and will be retried if that subclause's match appears
// later (see record's seed-parent enqueuing in matcher.go).
func attemptMatch(c *clause.Clause, pos int, input []rune, table *MemoTable) (*Match, bool) {
	switch c.Kind {
	case clause.KindCharSet:
		return attemptCharSet(c, pos, input)
	case clause.KindCharSeq:
		return attemptCharSeq(c, pos, input)
	case clause.KindStart:
		return attemptStart(c, pos)
	case clause.KindNothing:
		return &Match{Clause: c, StartPos: pos}, true
	case clause.KindSeq:
		return attemptSeq(c, pos, table)
	case clause.KindFirst:
		return attemptFirst(c, pos, table)
	case clause.KindOneOrMore:
		return attemptOneOrMore(c, pos, table)
	case clause.KindFollowedBy:
		return attemptFollowedBy(c, pos, table)
	case clause.KindNotFollowedBy:
		return attemptNotFollowedBy(c, pos, table)
	default:
		return nil, false
	}
}

func attemptCharSet(c *clause.Clause, pos int, input []rune) (*Match, bool) {
	if pos >= len(input) || !c.Matches(input[pos]) {
		return nil, false
	}
	return &Match{Clause: c, StartPos: pos, Len: 1}, true
}

func attemptCharSeq(c *clause.Clause, pos int, input []rune) (*Match, bool) {
	want := []rune(c.Str)
	if pos+len(want) > len(input) {
		return nil, false
	}
	for i, r := range want {
		got := input[pos+i]
		if c.IgnoreCase {
			if unicode.ToLower(got) != unicode.ToLower(r) {
				return nil, false
			}
		} else if got != r {
			return nil, false
		}
	}
	return &Match{Clause: c, StartPos: pos, Len: len(want)}, true
}

func attemptStart(c *clause.Clause, pos int) (*Match, bool) {
	if pos != 0 {
		return nil, false
	}
	return &Match{Clause: c, StartPos: pos}, true
}

func attemptSeq(c *clause.Clause, pos int, table *MemoTable) (*Match, bool) {
	cur := pos
	subs := make([]*Match, len(c.Sub))
	for i, s := range c.Sub {
		m, ok := table.Get(s.Clause, cur)
		if !ok {
			return nil, false
		}
		subs[i] = m
		cur += m.Len
	}
	return &Match{Clause: c, StartPos: pos, Len: cur - pos, SubMatches: subs}, true
}

func attemptFirst(c *clause.Clause, pos int, table *MemoTable) (*Match, bool) {
	for i, s := range c.Sub {
		if m, ok := table.Get(s.Clause, pos); ok {
			return &Match{Clause: c, StartPos: pos, Len: m.Len, FirstMatchingSubClauseIdx: i, SubMatches: []*Match{m}}, true
		}
	}
	return nil, false
}

// attemptOneOrMore builds on a memoized match of the repetition run
// that starts right after its first repetition: sub must match once
// at pos, then OneOrMore(sub) is asked for again at pos+len(that
// match), and that run's repetitions are appended after it. Since
// that's a strictly later position, and the matcher works right to
// left, it's already settled by the time this clause is attempted. A
// zero-length repetition is never extended, or "x*" over a nullable x
// would loop without ever advancing.
func attemptOneOrMore(c *clause.Clause, pos int, table *MemoTable) (*Match, bool) {
	sub := c.Sub[0].Clause
	first, ok := table.Get(sub, pos)
	if !ok {
		return nil, false
	}
	subs := []*Match{first}
	total := first.Len
	if first.Len > 0 {
		if rest, ok := table.Get(c, pos+first.Len); ok {
			subs = append(subs, rest.SubMatches...)
			total += rest.Len
		}
	}
	return &Match{Clause: c, StartPos: pos, Len: total, SubMatches: subs}, true
}

func attemptFollowedBy(c *clause.Clause, pos int, table *MemoTable) (*Match, bool) {
	m, ok := table.Get(c.Sub[0].Clause, pos)
	if !ok {
		return nil, false
	}
	return &Match{Clause: c, StartPos: pos, SubMatches: []*Match{m}}, true
}

// attemptNotFollowedBy succeeds when sub has no match recorded at pos.
// A success only means something once pos's fixpoint for sub has
// settled; a seed-parent wake-up from sub only ever reaches this when
// sub has just matched, so successes come from matcher.go's
// closeLookaheads, which runs after the position's queue drains.
func attemptNotFollowedBy(c *clause.Clause, pos int, table *MemoTable) (*Match, bool) {
	if _, ok := table.Get(c.Sub[0].Clause, pos); ok {
		return nil, false
	}
	return &Match{Clause: c, StartPos: pos}, true
}
