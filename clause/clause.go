// Package clause implements the clause model described in spec.md §3:
// the DAG of parsing operators the pika engine runs over. A Clause is
// a tagged variant (see Kind) with a small set of shared attributes
// that grammar preparation fills in (ClauseIdx, CanMatchZeroChars,
// SeedParentClauses). Clauses are built through the New* factories in
// builders.go, which enforce the composition constraints from spec.md
// §6; grammar preparation is responsible for interning them (two
// clauses with equal String() collapse to one object — see
// grammar.Prepare).
package clause

// Kind distinguishes the clause variants of spec.md §3. RuleRef and
// ASTNodeLabel are auxiliary: they only ever appear in a grammar
// before preparation and must be gone by the time a Grammar is built.
type Kind int

const (
	KindCharSet Kind = iota
	KindCharSeq
	KindStart
	KindNothing
	KindSeq
	KindFirst
	KindOneOrMore
	KindFollowedBy
	KindNotFollowedBy
	KindRuleRef
	KindASTNodeLabel
)

func (k Kind) String() string {
	switch k {
	case KindCharSet:
		return "CharSet"
	case KindCharSeq:
		return "CharSeq"
	case KindStart:
		return "Start"
	case KindNothing:
		return "Nothing"
	case KindSeq:
		return "Seq"
	case KindFirst:
		return "First"
	case KindOneOrMore:
		return "OneOrMore"
	case KindFollowedBy:
		return "FollowedBy"
	case KindNotFollowedBy:
		return "NotFollowedBy"
	case KindRuleRef:
		return "RuleRef"
	case KindASTNodeLabel:
		return "ASTNodeLabel"
	default:
		return "?"
	}
}

// RuneRange is one inclusive [Lo,Hi] range of code points in a
// CharSet. A single code point is represented as Lo == Hi.
type RuneRange struct {
	Lo, Hi rune
}

func (r RuneRange) contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

// LabeledSubClause is one entry of Clause.Sub: a subclause together
// with the AST label it carries, if any (spec.md §3,
// "labeledSubClauses[]"). An empty Label means the subclause is
// transparent to AST projection (see package ast).
type LabeledSubClause struct {
	Clause *Clause
	Label  string
}

// Clause is one node of the operator DAG. Only the fields relevant to
// its Kind are populated; see the New* factories in builders.go.
type Clause struct {
	Kind Kind

	// KindCharSet
	Ranges []RuneRange
	Invert bool

	// KindCharSeq
	Str        string
	IgnoreCase bool

	// KindSeq, KindFirst, KindOneOrMore, KindFollowedBy, KindNotFollowedBy:
	// Sub holds every subclause, each with its optional AST label.
	// OneOrMore/FollowedBy/NotFollowedBy always have exactly one entry.
	Sub []LabeledSubClause

	// KindRuleRef (auxiliary, erased by grammar.Prepare)
	RefName string

	// KindASTNodeLabel (auxiliary, erased by grammar.Prepare)
	Label string
	Inner *Clause

	// Shared attributes, set by grammar preparation. Zero-valued
	// until then.
	ClauseIdx         int
	CanMatchZeroChars bool
	SeedParentClauses map[*Clause]struct{}

	// OwnerRuleNames names the rules whose top-level clause this is.
	// Usually one entry; more than one after two rules' bodies
	// intern to the same clause.
	OwnerRuleNames []string

	str string // cached String(); computed on the first call and never recomputed
}

// AddSeedParent records that a newly discovered match of c at a
// position makes it worth re-running parent at that position (spec.md
// §4.1 step 7). It is idempotent.
func (c *Clause) AddSeedParent(parent *Clause) {
	if c.SeedParentClauses == nil {
		c.SeedParentClauses = map[*Clause]struct{}{}
	}
	c.SeedParentClauses[parent] = struct{}{}
}

// IsTerminal reports whether c is one of the four leaf variants.
func (c *Clause) IsTerminal() bool {
	switch c.Kind {
	case KindCharSet, KindCharSeq, KindStart, KindNothing:
		return true
	default:
		return false
	}
}

// IsAuxiliary reports whether c is a placeholder that grammar
// preparation must erase before matching begins.
func (c *Clause) IsAuxiliary() bool {
	return c.Kind == KindRuleRef || c.Kind == KindASTNodeLabel
}

// Matches reports whether r is a member of a CharSet clause,
// respecting Invert. It does not check Kind: a clause of any other
// Kind has no Ranges, so the answer is just Invert; callers dispatch
// on Kind first.
func (c *Clause) Matches(r rune) bool {
	in := false
	for _, rng := range c.Ranges {
		if rng.contains(r) {
			in = true
			break
		}
	}
	if c.Invert {
		return !in
	}
	return in
}
