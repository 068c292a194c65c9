package driver

import "github.com/go-pika/pika/clause"

// Match is a successful parse of one clause starting at StartPos,
// spanning Len runes of input. SubMatches holds whichever child
// matches contributed to it: one per subclause for Seq, the single
// chosen alternative for First (see FirstMatchingSubClauseIdx), every
// repetition's match flattened in order for OneOrMore, and the
// asserted match for FollowedBy (NotFollowedBy carries none, since its
// success is the absence of one).
type Match struct {
	Clause                    *clause.Clause
	StartPos                  int
	Len                       int
	FirstMatchingSubClauseIdx int
	SubMatches                []*Match
}

// EndPos is the position immediately after the match.
func (m *Match) EndPos() int { return m.StartPos + m.Len }

// beats reports whether candidate should replace current as the best
// match recorded for a (clause, startPos) pair (spec.md §4.2): for a
// First clause, the earlier-listed alternative always wins regardless
// of length, since PEG choice is ordered, not greedy; otherwise the
// longer match wins. candidate is assumed to be a genuine match;
// current may be nil, meaning there's nothing recorded yet.
func beats(candidate, current *Match) bool {
	if current == nil {
		return true
	}
	if candidate.Clause.Kind == clause.KindFirst && candidate.FirstMatchingSubClauseIdx != current.FirstMatchingSubClauseIdx {
		return candidate.FirstMatchingSubClauseIdx < current.FirstMatchingSubClauseIdx
	}
	return candidate.Len > current.Len
}
