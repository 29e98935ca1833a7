package lang

import (
	"testing"

	"github.com/proofkit/logicore/prop"
)

func TestParseBasicConnectives(t *testing.T) {
	tests := []struct {
		expr  string
		model map[string]bool
		want  bool
	}{
		{"A", map[string]bool{"A": true}, true},
		{"!A", map[string]bool{"A": true}, false},
		{"A & B", map[string]bool{"A": true, "B": true}, true},
		{"A & B", map[string]bool{"A": true, "B": false}, false},
		{"A | B", map[string]bool{"A": false, "B": true}, true},
		{"(A & B) | C", map[string]bool{"A": false, "B": true, "C": true}, true},
		{"A -> B", map[string]bool{"A": true, "B": false}, false},
		{"A <-> B", map[string]bool{"A": true, "B": true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if got := f.Evaluate(tt.model); got != tt.want {
				t.Errorf("Parse(%q).Evaluate(%v) = %v, want %v", tt.expr, tt.model, got, tt.want)
			}
		})
	}
}

func TestParseUnicodeOperators(t *testing.T) {
	tests := []struct {
		expr  string
		model map[string]bool
		want  bool
	}{
		{"A ∧ B", map[string]bool{"A": true, "B": true}, true},
		{"A ∨ B", map[string]bool{"A": false, "B": true}, true},
		{"A ⊕ B", map[string]bool{"A": true, "B": false}, true},
		{"A → B", map[string]bool{"A": true, "B": false}, false},
		{"A ↔ B", map[string]bool{"A": true, "B": false}, false},
		{"¬A", map[string]bool{"A": true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f := MustParse(tt.expr)
			if got := f.Evaluate(tt.model); got != tt.want {
				t.Errorf("Parse(%q).Evaluate(%v) = %v, want %v", tt.expr, tt.model, got, tt.want)
			}
		})
	}
}

func TestParseXorNandNorDesugared(t *testing.T) {
	tests := []struct {
		expr  string
		model map[string]bool
		want  bool
	}{
		{"A xor B", map[string]bool{"A": true, "B": false}, true},
		{"A xor B", map[string]bool{"A": true, "B": true}, false},
		{"A nand B", map[string]bool{"A": true, "B": true}, false},
		{"A nor B", map[string]bool{"A": false, "B": false}, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f := MustParse(tt.expr)
			switch f.(type) {
			case prop.Var:
				t.Fatalf("Parse(%q) should desugar into And/Or/Negate, not stay a bare literal", tt.expr)
			}
			if got := f.Evaluate(tt.model); got != tt.want {
				t.Errorf("Parse(%q).Evaluate(%v) = %v, want %v", tt.expr, tt.model, got, tt.want)
			}
		})
	}
}

func TestParseTopBottomConstants(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"⊤", true},
		{"⊥", false},
		{"⊥ & A", false},
		{"⊥ | A", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f := MustParse(tt.expr)
			if got := f.Evaluate(map[string]bool{"A": true}); got != tt.want {
				t.Errorf("Parse(%q).Evaluate = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tests := []string{"A &", "(A & B", "A @ B", ""}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			if _, err := Parse(expr); err == nil {
				t.Errorf("Parse(%q) should fail", expr)
			}
		})
	}
}

func TestMustParsePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("A &")
}
