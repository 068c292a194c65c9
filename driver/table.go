package driver

import "github.com/go-pika/pika/clause"

// MemoTable holds the single best Match found so far for every
// (clause, startPos) pair tried during matching. The bottom-up
// algorithm only ever needs the best match per slot — recovery
// (package recovery) reads the same table to find the gaps between
// what matched.
type MemoTable struct {
	best map[MemoKey]*Match
}

// NewMemoTable returns an empty table.
func NewMemoTable() *MemoTable {
	return &MemoTable{best: map[MemoKey]*Match{}}
}

// Get returns the best match recorded for c at pos, if any.
func (t *MemoTable) Get(c *clause.Clause, pos int) (*Match, bool) {
	m, ok := t.best[MemoKey{Clause: c, StartPos: pos}]
	return m, ok
}

func (t *MemoTable) set(key MemoKey, m *Match) {
	t.best[key] = m
}

// Entries exposes every recorded match, keyed by MemoKey. Callers must
// not mutate the returned map.
func (t *MemoTable) Entries() map[MemoKey]*Match {
	return t.best
}
