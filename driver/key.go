package driver

import "github.com/go-pika/pika/clause"

// MemoKey identifies one memo table slot: a clause and the input
// position it was tried at (spec.md §4.2, "MemoKey(clause, startPos)").
type MemoKey struct {
	Clause   *clause.Clause
	StartPos int
}
