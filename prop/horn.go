package prop

// HornClause is a propositional definite clause: (⋀ Antecedents) →
// Consequent. All antecedents must share one polarity; NewHornClause
// rejects a mix with BadHornClauseError.
type HornClause struct {
	Antecedents []Var
	Consequent  Var
}

// NewHornClause validates and constructs a HornClause.
func NewHornClause(antecedents []Var, consequent Var) (*HornClause, error) {
	if len(antecedents) > 0 {
		polarity := antecedents[0].Negated
		for _, a := range antecedents[1:] {
			if a.Negated != polarity {
				return nil, newBadHornClauseError("NewHornClause",
					"antecedents have mixed polarity")
			}
		}
	}
	ants := make([]Var, len(antecedents))
	copy(ants, antecedents)
	return &HornClause{Antecedents: ants, Consequent: consequent}, nil
}

// Equal compares the sorted antecedent list and the consequent.
func (h *HornClause) Equal(other *HornClause) bool {
	if other == nil || len(h.Antecedents) != len(other.Antecedents) || h.Consequent != other.Consequent {
		return false
	}
	a, b := sortedVars(h.Antecedents), sortedVars(other.Antecedents)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedVars(vs []Var) []Var {
	out := make([]Var, len(vs))
	copy(out, vs)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b Var) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return !a.Negated && b.Negated
}

// PLFCEntails answers "does this Horn KB entail query q?" by forward
// chaining: seed an agenda with every fact (a clause with no antecedents),
// then repeatedly pop a literal, checking it against q, and decrementing
// the unsatisfied-antecedent counter of every clause it appears in,
// enqueuing a clause's consequent once its counter reaches zero.
func PLFCEntails(kb []*HornClause, q Var) bool {
	count := make(map[*HornClause]int, len(kb))
	clausesByAntecedent := make(map[Var][]*HornClause)

	var agenda []Var
	inferred := make(map[Var]bool)

	for _, clause := range kb {
		count[clause] = len(clause.Antecedents)
		if len(clause.Antecedents) == 0 {
			agenda = append(agenda, clause.Consequent)
		}
		for _, a := range clause.Antecedents {
			clausesByAntecedent[a] = append(clausesByAntecedent[a], clause)
		}
	}

	for len(agenda) > 0 {
		p := agenda[0]
		agenda = agenda[1:]

		if p == q {
			return true
		}
		if inferred[p] {
			continue
		}
		inferred[p] = true

		for _, clause := range clausesByAntecedent[p] {
			count[clause]--
			if count[clause] == 0 {
				agenda = append(agenda, clause.Consequent)
			}
		}
	}
	return false
}
