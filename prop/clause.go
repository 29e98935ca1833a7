package prop

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Literal is a single propositional literal: a variable identifier with a
// polarity. It is the element type stored in a CnfClause's set.
type Literal struct {
	ID      string
	Negated bool
}

func literalOf(v Var) Literal { return Literal{ID: v.ID, Negated: v.Negated} }

func (l Literal) negate() Literal { return Literal{ID: l.ID, Negated: !l.Negated} }

func (l Literal) String() string {
	if l.Negated {
		return "~" + l.ID
	}
	return l.ID
}

// CnfClause is a finite set of literals forming a disjunction. Equality
// is set equality; two clauses built from the same literals in any order
// are Equal and hash identically via their canonical String.
type CnfClause struct {
	literals *set.Set[Literal]
}

// NewCnfClause builds a CnfClause from the given literals. It fails with
// UselessCnfClauseError if the literals contain both some ℓ and ¬ℓ; such
// a clause is a tautology and is never useful to store or resolve on.
func NewCnfClause(literals ...Literal) (*CnfClause, error) {
	s := set.New[Literal](len(literals))
	for _, lit := range literals {
		if s.Contains(lit.negate()) {
			return nil, newUselessCnfClauseError("NewCnfClause",
				"clause contains both "+lit.String()+" and "+lit.negate().String())
		}
		s.Insert(lit)
	}
	return &CnfClause{literals: s}, nil
}

// clauseFromSet wraps an already-deduplicated set without re-checking
// tautology; used internally once a caller has already verified the
// invariant (e.g. Resolve, which removes the resolved-on literal).
func clauseFromSet(s *set.Set[Literal]) *CnfClause {
	return &CnfClause{literals: s}
}

// Len returns the number of literals in the clause.
func (c *CnfClause) Len() int { return c.literals.Size() }

// IsEmpty reports whether the clause has no literals: the empty clause,
// representing a contradiction.
func (c *CnfClause) IsEmpty() bool { return c.literals.Empty() }

// Contains reports whether lit is a member of the clause.
func (c *CnfClause) Contains(lit Literal) bool { return c.literals.Contains(lit) }

// Literals returns the clause's literals in canonical (sorted) order.
func (c *CnfClause) Literals() []Literal {
	lits := c.literals.Slice()
	sort.Slice(lits, func(i, j int) bool {
		if lits[i].ID != lits[j].ID {
			return lits[i].ID < lits[j].ID
		}
		return !lits[i].Negated && lits[j].Negated
	})
	return lits
}

// IsSubset reports whether every literal of c is also in other. c
// subsumes nothing by itself; subsumption pruning in resolution asks
// other.IsSubset(c) for "does some existing clause subsume c".
func (c *CnfClause) IsSubset(other *CnfClause) bool {
	return c.literals.Subset(other.literals)
}

// Equal reports set equality between two clauses.
func (c *CnfClause) Equal(other *CnfClause) bool {
	if other == nil {
		return false
	}
	return c.literals.Equal(other.literals)
}

// Key returns the canonical string form used to hash/dedupe clauses in a
// KB (sorted literal list joined by "|").
func (c *CnfClause) Key() string {
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, "|")
}

func (c *CnfClause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	lits := c.Literals()
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// Resolve applies the resolution rule: given lit ∈ c (or ¬lit ∈ c) and the
// complementary literal in other, returns the clause
// (c ∖ {lit}) ∪ (other ∖ {¬lit}). Neither c nor other is mutated. Fails
// with CnfResolveError if lit is not found complementarily across the two
// clauses, and with UselessCnfClauseError if the resolvent would itself be
// a tautology (callers discard such resolvents).
func (c *CnfClause) Resolve(other *CnfClause, lit Literal) (*CnfClause, error) {
	pos, neg := lit, lit.negate()
	if !c.Contains(pos) || !other.Contains(neg) {
		if c.Contains(neg) && other.Contains(pos) {
			pos, neg = neg, pos
		} else {
			return nil, newCnfResolveError("CnfClause.Resolve",
				"literal "+lit.String()+" not found complementarily in both clauses")
		}
	}

	merged := set.New[Literal](c.Len() + other.Len())
	c.literals.ForEach(func(l Literal) bool {
		if l != pos {
			merged.Insert(l)
		}
		return true
	})
	other.literals.ForEach(func(l Literal) bool {
		if l != neg {
			merged.Insert(l)
		}
		return true
	})

	for _, l := range merged.Slice() {
		if merged.Contains(l.negate()) {
			return nil, newUselessCnfClauseError("CnfClause.Resolve",
				"resolvent contains both "+l.String()+" and "+l.negate().String())
		}
	}

	return clauseFromSet(merged), nil
}
