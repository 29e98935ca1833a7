package fol

// FolBCAsk returns every substitution that proves the conjunction of
// goals against kb, starting from theta. The empty goal list succeeds
// trivially with [theta]. Otherwise the first goal (with theta already
// applied) is matched in turn against every clause in kb: each
// candidate clause is standardised apart against a shared running
// counter so its variables cannot collide with the goal's, its
// consequent is unified against the goal, and on success the clause's
// antecedents are prepended to the remaining goals for the recursive
// call. Answers are accumulated across every matching clause, so the
// result enumerates all proofs, not just the first.
func FolBCAsk(kb []*HornClauseFOL, goals []Predicate, theta *Substitution) []*Substitution {
	counter := 0
	return bcAsk(kb, goals, theta, &counter, newBcLogger())
}

func bcAsk(kb []*HornClauseFOL, goals []Predicate, theta *Substitution, counter *int, log bcLogger) []*Substitution {
	if len(goals) == 0 {
		return []*Substitution{theta}
	}

	goal, err := theta.Substitute(goals[0])
	if err != nil {
		return nil
	}
	rest := goals[1:]

	var answers []*Substitution
	for _, clause := range kb {
		if clause.ConsequentKind != ConsequentPredicate {
			continue
		}
		standardized, next := StandardizeVariables(clause, *counter)
		*counter = next

		if standardized.ConsequentPred.ID != goal.ID {
			continue
		}

		unified := UnifyPredicates(*standardized.ConsequentPred, goal, NewSubstitution())
		if unified == nil {
			continue
		}
		log.Tracef("goal %s matched by %s", goal, standardized.ConsequentPred)

		newGoals := append(append([]Predicate(nil), standardized.Antecedents...), rest...)
		answers = append(answers, bcAsk(kb, newGoals, Compose(unified, theta), counter, log)...)
	}
	return answers
}
