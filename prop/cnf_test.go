package prop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToCnfDistribution(t *testing.T) {
	a, b, c := Var{ID: "A"}, Var{ID: "B"}, Var{ID: "C"}
	// (A & B) | C  =>  (A | C) & (B | C)
	f := Or{Left: And{Left: a, Right: b}, Right: c}
	got := ToCNF(f)

	want := And{Left: Or{Left: a, Right: c}, Right: Or{Left: b, Right: c}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToCNF((A&B)|C) mismatch (-want +got):\n%s", diff)
	}
}

func TestToCnfCondAndBicond(t *testing.T) {
	a, b := Var{ID: "A"}, Var{ID: "B"}
	model := map[string]bool{"A": true, "B": false}

	cond := Cond{Antecedent: a, Consequent: b}
	if ToCNF(cond).Evaluate(model) != cond.Evaluate(model) {
		t.Errorf("ToCNF(A -> B) not equivalent under %v", model)
	}

	bicond := Bicond{Left: a, Right: b}
	if ToCNF(bicond).Evaluate(model) != bicond.Evaluate(model) {
		t.Errorf("ToCNF(A <-> B) not equivalent under %v", model)
	}
}

func TestToCnfIdempotent(t *testing.T) {
	a, b, c := Var{ID: "A"}, Var{ID: "B"}, Var{ID: "C"}
	f := Cond{Antecedent: Or{Left: a, Right: b}, Consequent: c}

	once := ToCNF(f)
	twice := ToCNF(once)

	models := []map[string]bool{
		{"A": true, "B": false, "C": false},
		{"A": false, "B": false, "C": true},
		{"A": true, "B": true, "C": true},
	}
	for _, m := range models {
		if once.Evaluate(m) != twice.Evaluate(m) {
			t.Errorf("ToCNF not idempotent under %v: %v vs %v", m, once.Evaluate(m), twice.Evaluate(m))
		}
	}
}

func TestToCnfLiteralUnchanged(t *testing.T) {
	a := Var{ID: "A"}
	if !ToCNF(a).Equal(a) {
		t.Errorf("ToCNF(A) = %v, want A unchanged", ToCNF(a))
	}
}
