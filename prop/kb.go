package prop

import (
	"github.com/hashicorp/go-multierror"
)

// ResolutionKB is a knowledge base with set semantics: adding the same
// clause twice is a no-op. Entailment queries run PLResolution over its
// stored clauses.
type ResolutionKB struct {
	clauses *clauseSet
	log     resolutionLogger
}

// NewResolutionKB constructs an empty ResolutionKB.
func NewResolutionKB() *ResolutionKB {
	return &ResolutionKB{clauses: newClauseSet(), log: newResolutionLogger()}
}

// Add stores clauses derived from the given items. Each item is either a
// *CnfClause, a Formula (first converted with ToCNF and flattened by
// CnfParser), or a slice of either. Tautological clauses are silently
// skipped, matching CnfParser.Parse. Failures for individual items
// (an item of any other type) are aggregated into a single multierror
// rather than aborting the whole batch.
func (kb *ResolutionKB) Add(items ...interface{}) error {
	var errs *multierror.Error
	for _, item := range items {
		if err := kb.addOne(item); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (kb *ResolutionKB) addOne(item interface{}) error {
	switch v := item.(type) {
	case *CnfClause:
		kb.clauses.add(v)
		return nil
	case Formula:
		for _, c := range NewCnfParser().Parse(ToCNF(v)) {
			kb.clauses.add(c)
		}
		return nil
	case []*CnfClause:
		for _, c := range v {
			kb.clauses.add(c)
		}
		return nil
	case []Formula:
		var errs *multierror.Error
		for _, f := range v {
			if err := kb.addOne(f); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		return errs.ErrorOrNil()
	default:
		return newNonCnfClauseError("ResolutionKB.Add", "unsupported item type")
	}
}

// Clauses returns the KB's stored clauses in unspecified order.
func (kb *ResolutionKB) Clauses() []*CnfClause { return kb.clauses.slice() }

// Query answers "does KB ⊨ α?" via refutation resolution.
func (kb *ResolutionKB) Query(alpha Formula, opts ...ResolveOption) bool {
	return PLResolution(kb, alpha, opts...)
}

// DpllKB is a knowledge base with list semantics: every added clause is
// kept, including duplicates, and iteration order is insertion order. The
// DPLL heuristics below benefit from this determinism.
type DpllKB struct {
	clauses []*CnfClause
}

// NewDpllKB constructs an empty DpllKB.
func NewDpllKB() *DpllKB { return &DpllKB{} }

// Add stores clauses derived the same way as ResolutionKB.Add, but never
// deduplicates: every clause produced is appended.
func (kb *DpllKB) Add(items ...interface{}) error {
	var errs *multierror.Error
	for _, item := range items {
		switch v := item.(type) {
		case *CnfClause:
			kb.clauses = append(kb.clauses, v)
		case Formula:
			kb.clauses = append(kb.clauses, NewCnfParser().Parse(ToCNF(v))...)
		case []*CnfClause:
			kb.clauses = append(kb.clauses, v...)
		case []Formula:
			for _, f := range v {
				kb.clauses = append(kb.clauses, NewCnfParser().Parse(ToCNF(f))...)
			}
		default:
			errs = multierror.Append(errs, newNonCnfClauseError("DpllKB.Add", "unsupported item type"))
		}
	}
	return errs.ErrorOrNil()
}

// Clauses returns the KB's stored clauses in insertion order.
func (kb *DpllKB) Clauses() []*CnfClause { return kb.clauses }

// Query tests satisfiability of KB ∧ α. This is NOT classical entailment,
// which instead tests unsatisfiability of KB ∧ ¬α; see Entails for that.
// The two are kept as separate, clearly named methods rather than
// overloading one name for both.
func (kb *DpllKB) Query(alpha Formula) bool {
	combined := conjoin(kb.clausesAsFormula(), alpha)
	return DPLLSatisfiable(combined)
}

// Entails tests classical entailment: KB ⊨ α iff KB ∧ ¬α is unsatisfiable.
func (kb *DpllKB) Entails(alpha Formula) bool {
	combined := conjoin(kb.clausesAsFormula(), alpha.Negate())
	return !DPLLSatisfiable(combined)
}

// clausesAsFormula reconstitutes the KB's stored clauses as a single
// conjunction of disjunctions, the input shape DPLLSatisfiable expects.
func (kb *DpllKB) clausesAsFormula() Formula {
	var acc Formula
	for _, c := range kb.clauses {
		clauseFormula := clauseAsFormula(c)
		if acc == nil {
			acc = clauseFormula
		} else {
			acc = And{Left: acc, Right: clauseFormula}
		}
	}
	if acc == nil {
		// An empty KB is vacuously true.
		return Var{ID: "__true__", Negated: false}
	}
	return acc
}

func clauseAsFormula(c *CnfClause) Formula {
	lits := c.Literals()
	if len(lits) == 0 {
		// The empty clause is false; represent it with a variable forced
		// both ways so DPLL reports unsatisfiable.
		return And{Left: Var{ID: "__false__"}, Right: Var{ID: "__false__", Negated: true}}
	}
	var acc Formula = Var{ID: lits[0].ID, Negated: lits[0].Negated}
	for _, l := range lits[1:] {
		acc = Or{Left: acc, Right: Var{ID: l.ID, Negated: l.Negated}}
	}
	return acc
}

func conjoin(f Formula, alpha Formula) Formula {
	if f == nil {
		return alpha
	}
	return And{Left: f, Right: alpha}
}
