package fol

import "strconv"

// StandardizeVariables renames every variable in rule so that its name
// space cannot collide with that of any other clause standardised with
// the same running counter. Within rule, the first occurrence of a
// variable identifier is assigned the current counter value and every
// later occurrence of that same identifier reuses it, preserving
// intra-clause co-occurrence; constants pass through unchanged. Returns
// the rewritten clause and the advanced counter.
func StandardizeVariables(rule *HornClauseFOL, counter int) (*HornClauseFOL, int) {
	renamed := make(map[string]Term)

	rename := func(t Term) Term {
		if !t.IsVariable() {
			return t
		}
		if r, ok := renamed[t.ID]; ok {
			return r
		}
		fresh := NewVariable(indexedName(t.ID, counter))
		renamed[t.ID] = fresh
		counter++
		return fresh
	}

	renamePredicate := func(p Predicate) Predicate {
		args := make([]Term, len(p.Args))
		for i, a := range p.Args {
			args[i] = rename(a)
		}
		return Predicate{ID: p.ID, Args: args, Negated: p.Negated}
	}

	ants := make([]Predicate, len(rule.Antecedents))
	for i, a := range rule.Antecedents {
		ants[i] = renamePredicate(a)
	}

	out := &HornClauseFOL{Antecedents: ants, ConsequentKind: rule.ConsequentKind}
	if rule.ConsequentPred != nil {
		p := renamePredicate(*rule.ConsequentPred)
		out.ConsequentPred = &p
	}
	return out, counter
}

func indexedName(id string, counter int) string {
	return id + "_" + strconv.Itoa(counter)
}
