package prop

// DPLLSatisfiable reports whether f is satisfiable, using the classical
// Davis-Putnam-Logemann-Loveland procedure: CNF-flatten f, collect its
// propositional symbols, and search for a satisfying assignment with the
// pure-literal and unit-clause heuristics before falling back to split.
func DPLLSatisfiable(f Formula) bool {
	clauses := NewCnfParser().Parse(ToCNF(f))
	symbols := collectSymbols(f)
	log := newDpllLogger()
	model := make(map[string]bool)
	sat, _ := dpll(clauses, symbols, model, log)
	return sat
}

// collectSymbols returns the distinct variable identifiers in f,
// disregarding polarity, in first-occurrence order.
func collectSymbols(f Formula) []string {
	return f.Vars()
}

// clauseStatus is the three-valued result of evaluating a clause under a
// partial model: true (satisfied), false (every literal assigned and
// false), or undetermined (some literal unassigned and none satisfied
// yet).
type clauseStatus int

const (
	statusUndetermined clauseStatus = iota
	statusTrue
	statusFalse
)

func evaluateClause(c *CnfClause, model map[string]bool) clauseStatus {
	allAssigned := true
	for _, lit := range c.Literals() {
		val, assigned := model[lit.ID]
		if !assigned {
			allAssigned = false
			continue
		}
		litValue := val
		if lit.Negated {
			litValue = !val
		}
		if litValue {
			return statusTrue
		}
	}
	if allAssigned {
		return statusFalse
	}
	return statusUndetermined
}

// dpll implements the core recursive search. model is the partial
// assignment built so far; it is never mutated in place across branches:
// each recursive call receives its own extended copy, so backtracking is
// simply "the caller's map is untouched."
func dpll(clauses []*CnfClause, symbols []string, model map[string]bool, log dpllLogger) (bool, map[string]bool) {
	allTrue := true
	for _, c := range clauses {
		switch evaluateClause(c, model) {
		case statusFalse:
			return false, nil
		case statusUndetermined:
			allTrue = false
		}
	}
	if allTrue {
		return true, model
	}

	if sym, val, ok := findPureSymbol(clauses, symbols, model); ok {
		log.Tracef("pure symbol %s = %v", sym, val)
		next := extend(model, sym, val)
		return dpll(clauses, remove(symbols, sym), next, log)
	}

	if sym, val, ok := findUnitSymbol(clauses, model); ok {
		log.Tracef("unit clause forces %s = %v", sym, val)
		next := extend(model, sym, val)
		return dpll(clauses, remove(symbols, sym), next, log)
	}

	if len(symbols) == 0 {
		return false, nil
	}

	sym := symbols[0]
	rest := symbols[1:]
	for _, val := range [...]bool{true, false} {
		log.Tracef("split on %s = %v", sym, val)
		next := extend(model, sym, val)
		if sat, finalModel := dpll(clauses, rest, next, log); sat {
			return true, finalModel
		}
	}
	return false, nil
}

// findPureSymbol looks for a symbol appearing with only one polarity
// across every not-yet-satisfied clause.
func findPureSymbol(clauses []*CnfClause, symbols []string, model map[string]bool) (string, bool, bool) {
	for _, sym := range symbols {
		if _, assigned := model[sym]; assigned {
			continue
		}
		sawPositive, sawNegative := false, false
		for _, c := range clauses {
			if evaluateClause(c, model) == statusTrue {
				continue
			}
			for _, lit := range c.Literals() {
				if lit.ID != sym {
					continue
				}
				if lit.Negated {
					sawNegative = true
				} else {
					sawPositive = true
				}
			}
		}
		if sawPositive && !sawNegative {
			return sym, true, true
		}
		if sawNegative && !sawPositive {
			return sym, false, true
		}
	}
	return "", false, false
}

// findUnitSymbol looks for a clause in which all but one literal are
// falsified under model, and returns the value that remaining literal's
// symbol must take to satisfy the clause.
func findUnitSymbol(clauses []*CnfClause, model map[string]bool) (string, bool, bool) {
	for _, c := range clauses {
		if evaluateClause(c, model) == statusTrue {
			continue
		}
		var unassigned *Literal
		count := 0
		for _, lit := range c.Literals() {
			if _, assigned := model[lit.ID]; !assigned {
				l := lit
				unassigned = &l
				count++
			}
		}
		if count == 1 {
			return unassigned.ID, !unassigned.Negated, true
		}
	}
	return "", false, false
}

func extend(model map[string]bool, sym string, val bool) map[string]bool {
	next := make(map[string]bool, len(model)+1)
	for k, v := range model {
		next[k] = v
	}
	next[sym] = val
	return next
}

func remove(symbols []string, sym string) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s != sym {
			out = append(out, s)
		}
	}
	return out
}
