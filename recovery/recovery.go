// Package recovery finds the spans of input a completed parse
// couldn't account for (spec.md §4.5): not a parse error in the usual
// fail-fast sense, but a scan of the memo table a completed pika match
// already filled in, which is why it runs after matching rather than
// aborting it.
package recovery

import (
	"github.com/go-pika/pika/clause"
	"github.com/go-pika/pika/driver"
)

// ErrorSpan is one maximal run of input not covered by any positive-
// length match of a recovery rule.
type ErrorSpan struct {
	Start, End int
	Text       string
}

// GetSyntaxErrors scans input left to right. At each position it
// checks whether any of recoveryRules has a (strictly positive-length)
// match there in table; if so, it skips past that match and keeps
// scanning from there. Runs of positions where nothing matches are
// reported as ErrorSpans, merging adjacent bad positions into one
// span rather than reporting each character separately.
func GetSyntaxErrors(table *driver.MemoTable, recoveryRules []*clause.Clause, input []rune) []ErrorSpan {
	var spans []ErrorSpan
	n := len(input)
	pos := 0
	for pos < n {
		if length, ok := matchLenAt(table, recoveryRules, pos); ok {
			pos += length
			continue
		}
		start := pos
		pos++
		for pos < n {
			if _, ok := matchLenAt(table, recoveryRules, pos); ok {
				break
			}
			pos++
		}
		spans = append(spans, ErrorSpan{Start: start, End: pos, Text: string(input[start:pos])})
	}
	return spans
}

func matchLenAt(table *driver.MemoTable, rules []*clause.Clause, pos int) (int, bool) {
	best := -1
	for _, r := range rules {
		if m, ok := table.Get(r, pos); ok && m.Len > 0 && m.Len > best {
			best = m.Len
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
