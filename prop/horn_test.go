package prop

import "testing"

func TestNewHornClauseRejectsMixedPolarity(t *testing.T) {
	a, b := Var{ID: "A"}, Var{ID: "B", Negated: true}
	_, err := NewHornClause([]Var{a, b}, Var{ID: "C"})
	if err == nil {
		t.Fatal("mixed-polarity antecedents should fail")
	}
	if _, ok := err.(*BadHornClauseError); !ok {
		t.Errorf("error = %T, want *BadHornClauseError", err)
	}
}

func TestHornClauseEqual(t *testing.T) {
	a, b, c := Var{ID: "A"}, Var{ID: "B"}, Var{ID: "C"}
	h1, _ := NewHornClause([]Var{a, b}, c)
	h2, _ := NewHornClause([]Var{b, a}, c)
	if !h1.Equal(h2) {
		t.Error("antecedent order should not affect equality")
	}
}

func TestPLFCEntailsSimpleChain(t *testing.T) {
	p, q, r := Var{ID: "P"}, Var{ID: "Q"}, Var{ID: "R"}
	fact, _ := NewHornClause(nil, p)
	rule1, _ := NewHornClause([]Var{p}, q)
	rule2, _ := NewHornClause([]Var{q}, r)

	kb := []*HornClause{fact, rule1, rule2}
	if !PLFCEntails(kb, r) {
		t.Error("P, P->Q, Q->R should entail R")
	}
}

func TestPLFCEntailsRequiresAllAntecedents(t *testing.T) {
	p, q, r := Var{ID: "P"}, Var{ID: "Q"}, Var{ID: "R"}
	factP, _ := NewHornClause(nil, p)
	rule, _ := NewHornClause([]Var{p, q}, r)

	kb := []*HornClause{factP, rule}
	if PLFCEntails(kb, r) {
		t.Error("R should not be derivable: Q is never established")
	}
}

func TestPLFCEntailsNotFound(t *testing.T) {
	a, b := Var{ID: "A"}, Var{ID: "B"}
	fact, _ := NewHornClause(nil, a)
	kb := []*HornClause{fact}
	if PLFCEntails(kb, b) {
		t.Error("B should not be entailed by {A}")
	}
}
