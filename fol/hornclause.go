package fol

import "sort"

// ConsequentKind distinguishes the three shapes a Horn clause's
// consequent can take after normalisation.
type ConsequentKind int

const (
	// ConsequentPredicate means ConsequentPred holds the asserted atom.
	ConsequentPredicate ConsequentKind = iota
	// ConsequentTrue is a tautological consequent.
	ConsequentTrue
	// ConsequentFalse is the default for a clause with no genuine
	// consequent, used for integrity constraints and negated heads.
	ConsequentFalse
)

// HornClauseFOL is a function-free first-order definite/integrity
// clause: (⋀ Antecedents) → Consequent, where every antecedent is a
// positive predicate (negated antecedents are rejected at
// construction).
type HornClauseFOL struct {
	Antecedents    []Predicate
	ConsequentKind ConsequentKind
	ConsequentPred *Predicate
}

// NewHornClauseFOL constructs and normalises a Horn clause.
//
// consequent must be nil (omitted), a bool (the literal True/False), or
// a Predicate. Normalisation:
//   - An antecedent with Negated true fails with BadHornClauseError.
//   - Exactly one antecedent with consequent omitted or True is a ground
//     fact: the antecedent is promoted to the consequent and the
//     antecedent list becomes empty. Omitted and explicit True are
//     treated as the same "no real consequent" case, since a clause with
//     a single antecedent and no other constraint asserts that
//     antecedent outright either way.
//   - A negated Predicate consequent becomes ConsequentFalse, with its
//     positive form appended to the antecedents.
//   - An omitted or True consequent that doesn't match the ground-fact
//     case (zero or 2+ antecedents) becomes ConsequentFalse for nil, or
//     stays ConsequentTrue for explicit true.
//   - Otherwise the supplied Predicate is the consequent as given.
func NewHornClauseFOL(antecedents []Predicate, consequent interface{}) (*HornClauseFOL, error) {
	for _, a := range antecedents {
		if a.Negated {
			return nil, newBadHornClauseError("NewHornClauseFOL",
				"antecedent predicates must not be negated")
		}
	}
	ants := append([]Predicate(nil), antecedents...)

	switch c := consequent.(type) {
	case nil:
		if len(ants) == 1 {
			fact := ants[0]
			return &HornClauseFOL{ConsequentKind: ConsequentPredicate, ConsequentPred: &fact}, nil
		}
		return &HornClauseFOL{Antecedents: ants, ConsequentKind: ConsequentFalse}, nil
	case bool:
		if c {
			if len(ants) == 1 {
				fact := ants[0]
				return &HornClauseFOL{ConsequentKind: ConsequentPredicate, ConsequentPred: &fact}, nil
			}
			return &HornClauseFOL{Antecedents: ants, ConsequentKind: ConsequentTrue}, nil
		}
		return &HornClauseFOL{Antecedents: ants, ConsequentKind: ConsequentFalse}, nil
	case Predicate:
		if c.Negated {
			ants = append(ants, c.Negate())
			return &HornClauseFOL{Antecedents: ants, ConsequentKind: ConsequentFalse}, nil
		}
		head := c
		return &HornClauseFOL{Antecedents: ants, ConsequentKind: ConsequentPredicate, ConsequentPred: &head}, nil
	default:
		return nil, newBadHornClauseError("NewHornClauseFOL",
			"consequent must be nil, bool, or Predicate")
	}
}

// IsFact reports whether h has no antecedents, and thus counts as a
// known fact rather than a rule during forward or backward chaining.
func (h *HornClauseFOL) IsFact() bool {
	return len(h.Antecedents) == 0
}

// Equal compares the sorted antecedent lists and the consequent.
func (h *HornClauseFOL) Equal(other *HornClauseFOL) bool {
	if other == nil {
		return false
	}
	if h.ConsequentKind != other.ConsequentKind {
		return false
	}
	if h.ConsequentKind == ConsequentPredicate {
		if h.ConsequentPred == nil || other.ConsequentPred == nil {
			return false
		}
		if !h.ConsequentPred.Equal(*other.ConsequentPred) {
			return false
		}
	}
	if len(h.Antecedents) != len(other.Antecedents) {
		return false
	}
	a, b := sortedPredicates(h.Antecedents), sortedPredicates(other.Antecedents)
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func sortedPredicates(ps []Predicate) []Predicate {
	out := append([]Predicate(nil), ps...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
