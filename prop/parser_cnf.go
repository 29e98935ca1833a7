package prop

// CnfParser flattens a Formula already in conjunctive normal form into a
// set of CnfClause. It is the companion to ToCNF: the expected pipeline is
// NewCnfParser().Parse(ToCNF(f)).
type CnfParser struct{}

// NewCnfParser constructs a CnfParser. It carries no state; the zero
// value is equally usable, but NewCnfParser matches this package's
// constructor convention.
func NewCnfParser() *CnfParser { return &CnfParser{} }

// Parse walks the top-level ∧-spine of f collecting ∨-subtrees, then
// linearises each subtree into its literal set. A subtree that turns out
// to be a tautology (containing both ℓ and ¬ℓ) is silently dropped, per
// spec. If f has no top-level ∧ at all, the whole formula is treated as a
// single clause.
func (p *CnfParser) Parse(f Formula) []*CnfClause {
	var clauses []*CnfClause
	for _, conjunct := range flattenAnd(f) {
		lits := flattenOr(conjunct, nil)
		clause, err := NewCnfClause(lits...)
		if err != nil {
			continue // tautological clause: drop it
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// flattenAnd collects the leaves of f's ∧-spine, left to right.
func flattenAnd(f Formula) []Formula {
	and, ok := f.(And)
	if !ok {
		return []Formula{f}
	}
	return append(flattenAnd(and.Left), flattenAnd(and.Right)...)
}

// flattenOr collects the literals of f's ∨-spine into acc.
func flattenOr(f Formula, acc []Literal) []Literal {
	switch n := f.(type) {
	case Var:
		return append(acc, literalOf(n))
	case Or:
		acc = flattenOr(n.Left, acc)
		return flattenOr(n.Right, acc)
	default:
		// Not reachable for formulas produced by ToCNF, which never
		// leaves an And/Cond/Bicond below an Or.
		return acc
	}
}
