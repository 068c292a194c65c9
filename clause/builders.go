package clause

import "github.com/go-pika/pika/perr"

// NewCharSet builds a terminal matching one code point against the
// union of ranges, optionally inverted.
func NewCharSet(ranges []RuneRange, invert bool) (*Clause, error) {
	if len(ranges) == 0 {
		return nil, perr.InvalidComposition("a char set needs at least one range")
	}
	cp := make([]RuneRange, len(ranges))
	copy(cp, ranges)
	return &Clause{Kind: KindCharSet, Ranges: cp, Invert: invert}, nil
}

// NewChar is a convenience for a CharSet of exactly one code point.
func NewChar(r rune) (*Clause, error) {
	return NewCharSet([]RuneRange{{Lo: r, Hi: r}}, false)
}

// NewCharSeq builds a terminal matching the literal string s.
func NewCharSeq(s string, ignoreCase bool) (*Clause, error) {
	return &Clause{Kind: KindCharSeq, Str: s, IgnoreCase: ignoreCase}, nil
}

// NewStart builds the terminal that matches zero characters iff the
// current position is 0.
func NewStart() (*Clause, error) {
	return &Clause{Kind: KindStart}, nil
}

// NewNothing builds the terminal that always matches zero characters.
func NewNothing() (*Clause, error) {
	return &Clause{Kind: KindNothing}, nil
}

// alwaysZeroLength reports whether repeating c can never consume more
// input than matching it once: the clauses whose match always has
// length 0 (Nothing, Start, FollowedBy, NotFollowedBy), plus OneOrMore,
// which already repeats. These are exactly the clauses NewOneOrMore
// collapses on.
func alwaysZeroLength(c *Clause) bool {
	switch c.Kind {
	case KindNothing, KindStart, KindFollowedBy, KindNotFollowedBy, KindOneOrMore:
		return true
	default:
		return false
	}
}

// NewSeq builds a sequential concatenation of subs, each optionally
// labeled for AST projection (pass label "" for unlabeled).
func NewSeq(subs ...LabeledSubClause) (*Clause, error) {
	if len(subs) == 0 {
		return nil, perr.InvalidComposition("seq needs at least one subclause")
	}
	return &Clause{Kind: KindSeq, Sub: append([]LabeledSubClause(nil), subs...)}, nil
}

// NewFirst builds an ordered choice over subs. Nothing may only
// appear as the last alternative (spec.md §6): everywhere else it
// would make every later alternative unreachable.
func NewFirst(subs ...LabeledSubClause) (*Clause, error) {
	if len(subs) == 0 {
		return nil, perr.InvalidComposition("first needs at least one subclause")
	}
	for i, s := range subs[:len(subs)-1] {
		if s.Clause.Kind == KindNothing {
			return nil, perr.InvalidComposition("Nothing may only appear as the last alternative of First")
		}
		_ = i
	}
	return &Clause{Kind: KindFirst, Sub: append([]LabeledSubClause(nil), subs...)}, nil
}

// NewOneOrMore builds one-or-more repetitions of sub. Per spec.md §6,
// wrapping an already-repeating or always-zero-length clause collapses
// to that clause unchanged, since repeating it can't change what it
// matches.
func NewOneOrMore(sub *Clause) (*Clause, error) {
	if alwaysZeroLength(sub) {
		return sub, nil
	}
	return &Clause{Kind: KindOneOrMore, Sub: []LabeledSubClause{{Clause: sub}}}, nil
}

// NewFollowedBy builds positive lookahead over sub. followedBy(Nothing)
// collapses to Nothing (spec.md §6): lookahead on something that
// always matches always succeeds with zero width, same as Nothing
// itself. Lookahead of lookahead is rejected: it carries no
// information FollowedBy/NotFollowedBy don't already express on their
// own.
func NewFollowedBy(sub *Clause) (*Clause, error) {
	if sub.Kind == KindNothing {
		return sub, nil
	}
	if sub.Kind == KindFollowedBy || sub.Kind == KindNotFollowedBy {
		return nil, perr.InvalidComposition("lookahead of lookahead is not allowed")
	}
	return &Clause{Kind: KindFollowedBy, Sub: []LabeledSubClause{{Clause: sub}}}, nil
}

// NewNotFollowedBy builds negative lookahead over sub.
// notFollowedBy(Nothing) is rejected (spec.md §6): it can never match,
// since Nothing always matches.
func NewNotFollowedBy(sub *Clause) (*Clause, error) {
	if sub.Kind == KindNothing {
		return nil, perr.InvalidComposition("NotFollowedBy(Nothing) can never match")
	}
	if sub.Kind == KindFollowedBy || sub.Kind == KindNotFollowedBy {
		return nil, perr.InvalidComposition("lookahead of lookahead is not allowed")
	}
	return &Clause{Kind: KindNotFollowedBy, Sub: []LabeledSubClause{{Clause: sub}}}, nil
}

// NewRuleRef builds a placeholder that grammar.Prepare resolves to
// the named rule's top clause.
func NewRuleRef(name string) (*Clause, error) {
	if name == "" {
		return nil, perr.InvalidComposition("a rule reference needs a name")
	}
	return &Clause{Kind: KindRuleRef, RefName: name}, nil
}

// NewASTNodeLabel builds a placeholder that grammar.Prepare lifts into
// the owning parent's labeled-subclause slot (spec.md §4.1 step 1).
func NewASTNodeLabel(label string, inner *Clause) (*Clause, error) {
	if label == "" {
		return nil, perr.InvalidComposition("an AST label must be non-empty")
	}
	return &Clause{Kind: KindASTNodeLabel, Label: label, Inner: inner}, nil
}

// Unlabeled wraps a clause with no AST label, for building Sub slices.
func Unlabeled(c *Clause) LabeledSubClause {
	return LabeledSubClause{Clause: c}
}

// Labeled wraps a clause with an AST label, for building Sub slices.
func Labeled(label string, c *Clause) LabeledSubClause {
	return LabeledSubClause{Clause: c, Label: label}
}
