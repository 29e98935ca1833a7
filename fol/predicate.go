package fol

import (
	"strings"
)

// Predicate is an atomic first-order formula: an identifier applied to a
// fixed-arity argument list, plus a negation flag. Predicates are
// function-free: every Arg is a Term, never a nested Predicate.
type Predicate struct {
	ID      string
	Args    []Term
	Negated bool
}

// NewPredicate constructs a positive predicate.
func NewPredicate(id string, args ...Term) Predicate {
	return Predicate{ID: id, Args: args}
}

// Negate returns the predicate with its polarity flipped. Args are shared;
// Predicate values are never mutated in place.
func (p Predicate) Negate() Predicate {
	return Predicate{ID: p.ID, Args: p.Args, Negated: !p.Negated}
}

// IsGround reports whether every argument is a constant.
func (p Predicate) IsGround() bool {
	for _, a := range p.Args {
		if a.IsVariable() {
			return false
		}
	}
	return true
}

// Equal compares identifier, polarity, and argument list pointwise.
func (p Predicate) Equal(other Predicate) bool {
	if p.ID != other.ID || p.Negated != other.Negated || len(p.Args) != len(other.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical string usable as a map key, distinguishing
// predicates that are not structurally Equal.
func (p Predicate) Key() string {
	var b strings.Builder
	if p.Negated {
		b.WriteByte('~')
	}
	b.WriteString(p.ID)
	b.WriteByte('(')
	for i, a := range p.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		if a.IsVariable() {
			b.WriteByte('?')
		}
		b.WriteString(a.ID)
	}
	b.WriteByte(')')
	return b.String()
}

func (p Predicate) String() string {
	var b strings.Builder
	if p.Negated {
		b.WriteByte('~')
	}
	b.WriteString(p.ID)
	if len(p.Args) > 0 {
		b.WriteByte('(')
		for i, a := range p.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
