package clause

import "testing"

func mustChar(t *testing.T, r rune) *Clause {
	t.Helper()
	c, err := NewChar(r)
	if err != nil {
		t.Fatalf("NewChar(%q): %v", r, err)
	}
	return c
}

func TestNewOneOrMoreCollapses(t *testing.T) {
	a := mustChar(t, 'a')
	plus, err := NewOneOrMore(a)
	if err != nil {
		t.Fatalf("NewOneOrMore(a): %v", err)
	}

	tests := []struct {
		caption string
		sub     *Clause
	}{
		{"OneOrMore(OneOrMore(x))", plus},
		{"OneOrMore(Nothing)", must(t)(NewNothing())},
		{"OneOrMore(Start)", must(t)(NewStart())},
		{"OneOrMore(FollowedBy(x))", must(t)(NewFollowedBy(a))},
		{"OneOrMore(NotFollowedBy(x))", must(t)(NewNotFollowedBy(a))},
	}
	for _, test := range tests {
		t.Run(test.caption, func(t *testing.T) {
			got, err := NewOneOrMore(test.sub)
			if err != nil {
				t.Fatalf("NewOneOrMore: %v", err)
			}
			if got != test.sub {
				t.Errorf("expected collapse to the same clause, got a new one: %v", got)
			}
		})
	}
}

func TestNewFollowedByNothingCollapses(t *testing.T) {
	nothing := must(t)(NewNothing())
	got, err := NewFollowedBy(nothing)
	if err != nil {
		t.Fatalf("NewFollowedBy(Nothing): %v", err)
	}
	if got != nothing {
		t.Errorf("expected FollowedBy(Nothing) to collapse to Nothing, got %v", got)
	}
}

func TestNewNotFollowedByNothingIsError(t *testing.T) {
	nothing := must(t)(NewNothing())
	_, err := NewNotFollowedBy(nothing)
	if err == nil {
		t.Fatal("expected an error for NotFollowedBy(Nothing)")
	}
}

func TestLookaheadOfLookaheadIsError(t *testing.T) {
	a := mustChar(t, 'a')
	fb := must(t)(NewFollowedBy(a))

	if _, err := NewFollowedBy(fb); err == nil {
		t.Error("expected an error for FollowedBy(FollowedBy(x))")
	}
	if _, err := NewNotFollowedBy(fb); err == nil {
		t.Error("expected an error for NotFollowedBy(FollowedBy(x))")
	}
}

func TestNewFirstRejectsNonFinalNothing(t *testing.T) {
	a := mustChar(t, 'a')
	nothing := must(t)(NewNothing())

	if _, err := NewFirst(Unlabeled(nothing), Unlabeled(a)); err == nil {
		t.Error("expected an error when Nothing isn't the last alternative")
	}
	if _, err := NewFirst(Unlabeled(a), Unlabeled(nothing)); err != nil {
		t.Errorf("Nothing as the last alternative should be allowed: %v", err)
	}
}

func must(t *testing.T) func(*Clause, error) *Clause {
	t.Helper()
	return func(c *Clause, err error) *Clause {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return c
	}
}
