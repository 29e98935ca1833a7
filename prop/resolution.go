package prop

// PLResolution answers "does KB ⊨ α?" by refutation: it seeds the search
// with ¬α's clauses and repeatedly resolves pairs of clauses on a shared
// complementary literal, looking for the empty clause. Subsumption pruning
// keeps the frontier ("interesting") bounded: a derived clause is kept
// only if no existing clause already subsumes it.
//
// maxit (default 1000, override with WithMaxIterations) bounds the number
// of outer passes; exhausting it returns false (negation-as-failure on
// timeout).
func PLResolution(kb *ResolutionKB, alpha Formula, opts ...ResolveOption) bool {
	cfg := resolveConfig(opts)
	log := newResolutionLogger()

	negAlpha := NewCnfParser().Parse(ToCNF(alpha.Negate()))

	interesting := newClauseSet()
	for _, c := range negAlpha {
		interesting.add(c)
	}

	kbClauses := kb.Clauses()

	for iteration := 0; iteration < cfg.maxIterations; iteration++ {
		index := buildLiteralIndex(kbClauses, interesting.slice())

		newClauses := newClauseSet()
		added := false

		for _, ci := range interesting.slice() {
			for _, lit := range ci.Literals() {
				for _, cj := range index[lit.negate()] {
					if ci == cj {
						continue
					}
					resolvent, err := ci.Resolve(cj, lit)
					if err != nil {
						continue // tautology or mismatch: discard
					}
					if resolvent.IsEmpty() {
						log.Debugf("refutation found at iteration %d", iteration)
						return true
					}
					if !subsumed(resolvent, kbClauses, interesting) {
						if newClauses.add(resolvent) {
							added = true
						}
					}
				}
			}
		}

		if !added {
			log.Debugf("saturated after %d iterations, no refutation", iteration)
			return false
		}
		for _, c := range newClauses.slice() {
			interesting.add(c)
		}
	}

	log.Debugf("iteration limit %d reached, treating as not entailed", cfg.maxIterations)
	return false
}

// buildLiteralIndex maps each literal to the clauses (drawn from both the
// KB and the interesting set) that contain it, so resolution candidates
// for a literal's complement can be found in O(1) instead of rescanning
// every clause.
func buildLiteralIndex(kbClauses []*CnfClause, interesting []*CnfClause) map[Literal][]*CnfClause {
	index := make(map[Literal][]*CnfClause)
	add := func(c *CnfClause) {
		for _, lit := range c.Literals() {
			index[lit] = append(index[lit], c)
		}
	}
	for _, c := range kbClauses {
		add(c)
	}
	for _, c := range interesting {
		add(c)
	}
	return index
}

// subsumed reports whether some clause already known (in the KB or the
// interesting set) subsumes candidate, i.e. is a subset of it; such a
// candidate is redundant and is dropped.
func subsumed(candidate *CnfClause, kbClauses []*CnfClause, interesting *clauseSet) bool {
	for _, c := range kbClauses {
		if c.IsSubset(candidate) {
			return true
		}
	}
	for _, c := range interesting.slice() {
		if c.IsSubset(candidate) {
			return true
		}
	}
	return false
}
