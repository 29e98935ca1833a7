package fol

// FolFCAsk answers whether alpha is derivable from kb by forward
// chaining, returning the substitution that grounds alpha along with
// true, or (nil, false) if alpha cannot be derived.
//
// The KB is partitioned into facts (clauses with no antecedents and a
// Predicate consequent) and rules. Each pass, every rule is
// standardised apart and its antecedents are matched, with
// backtracking across alternative facts, against the known facts
// sharing their predicate identifier. A rule only fires once every one
// of its antecedents, after substitution, is fully ground; firing on a
// partial match would let a derived fact carry unbound variables.
// Firing produces a new fact, added if it is not already known. The
// loop terminates when a pass yields no new facts.
func FolFCAsk(kb []*HornClauseFOL, alpha Predicate) (*Substitution, bool) {
	facts := make(map[string][]Predicate)
	var rules []*HornClauseFOL
	for _, c := range kb {
		if c.IsFact() && c.ConsequentKind == ConsequentPredicate {
			facts[c.ConsequentPred.ID] = append(facts[c.ConsequentPred.ID], *c.ConsequentPred)
		} else {
			rules = append(rules, c)
		}
	}

	log := newFcLogger()
	counter := 0
	for {
		var newFacts []Predicate
		for _, rule := range rules {
			standardized, next := StandardizeVariables(rule, counter)
			counter = next
			if standardized.ConsequentKind != ConsequentPredicate {
				continue
			}

			for _, theta := range matchAntecedents(standardized.Antecedents, 0, NewSubstitution(), facts) {
				if _, ok := substituteAllGround(theta, standardized.Antecedents); !ok {
					continue
				}

				newFact, err := theta.Substitute(*standardized.ConsequentPred)
				if err != nil || !newFact.IsGround() {
					continue
				}
				if containsPredicate(facts[newFact.ID], newFact) || containsPredicate(newFacts, newFact) {
					continue
				}
				newFacts = append(newFacts, newFact)
				log.Tracef("derived %s", newFact)

				if newFact.ID == alpha.ID {
					if result := UnifyPredicates(newFact, alpha, NewSubstitution()); result != nil {
						return result, true
					}
				}
			}
		}
		if len(newFacts) == 0 {
			return nil, false
		}
		for _, f := range newFacts {
			facts[f.ID] = append(facts[f.ID], f)
		}
	}
}

// matchAntecedents enumerates every substitution extending theta under
// which every antecedent in ants unifies with some known fact of the
// same predicate identifier, backtracking across alternative facts.
func matchAntecedents(ants []Predicate, idx int, theta *Substitution, facts map[string][]Predicate) []*Substitution {
	if idx == len(ants) {
		return []*Substitution{theta}
	}
	var out []*Substitution
	for _, fact := range facts[ants[idx].ID] {
		if next := UnifyPredicates(ants[idx], fact, theta); next != nil {
			out = append(out, matchAntecedents(ants, idx+1, next, facts)...)
		}
	}
	return out
}

// substituteAllGround applies theta to every antecedent and reports
// whether every result is fully ground.
func substituteAllGround(theta *Substitution, ants []Predicate) ([]Predicate, bool) {
	out := make([]Predicate, len(ants))
	for i, a := range ants {
		g, err := theta.Substitute(a)
		if err != nil {
			return nil, false
		}
		out[i] = g
		if !g.IsGround() {
			return nil, false
		}
	}
	return out, true
}

func containsPredicate(ps []Predicate, p Predicate) bool {
	for _, q := range ps {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
