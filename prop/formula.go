// Package prop implements the propositional engine: a formula model over
// the classical connectives, conversion to conjunctive normal form, a
// resolution-refutation and a DPLL decision procedure over the resulting
// clause sets, and Horn-clause forward chaining.
//
// Formulas are immutable values. Every transformation (Negate, ToCNF, and
// ToCNF's internal distribute step) returns a new Formula rather than
// mutating its receiver.
package prop

import "fmt"

// Formula is any node in a propositional-logic AST: a literal or one of
// the four binary connectives. It is a closed tagged union realized as a
// Go interface, with Var, And, Or, Cond, and Bicond as its only variants.
type Formula interface {
	// Negate returns the De Morgan / implication-law negation of the
	// formula: structural flip of polarity for a literal, or the
	// corresponding rewrite for each binary connective.
	Negate() Formula

	// Equal reports structural equality: two literals are equal iff
	// identifier and polarity match; two binary nodes are equal iff their
	// connective and both children match, recursively.
	Equal(other Formula) bool

	// Evaluate interprets the formula under a total truth assignment.
	// Variables absent from model are treated as false; callers that need
	// to distinguish "unassigned" should check beforehand.
	Evaluate(model map[string]bool) bool

	// Vars returns the set of distinct variable identifiers appearing in
	// the formula, in first-occurrence order.
	Vars() []string

	fmt.Stringer
	isFormula()
}

// Var is a literal: an identifier together with a polarity flag. A
// positive literal has Negated == false.
type Var struct {
	ID      string
	Negated bool
}

func (v Var) isFormula() {}

// Negate flips the literal's polarity; it does not touch ID.
func (v Var) Negate() Formula {
	return Var{ID: v.ID, Negated: !v.Negated}
}

func (v Var) Equal(other Formula) bool {
	o, ok := other.(Var)
	return ok && o.ID == v.ID && o.Negated == v.Negated
}

func (v Var) Evaluate(model map[string]bool) bool {
	val := model[v.ID]
	if v.Negated {
		return !val
	}
	return val
}

func (v Var) Vars() []string { return []string{v.ID} }

func (v Var) String() string {
	if v.Negated {
		return "~" + v.ID
	}
	return v.ID
}

// And is conjunction: Left ∧ Right.
type And struct {
	Left, Right Formula
}

func (a And) isFormula() {}

// Negate applies De Morgan: ~(p ∧ q) ≡ ~p ∨ ~q.
func (a And) Negate() Formula {
	return Or{Left: a.Left.Negate(), Right: a.Right.Negate()}
}

func (a And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}

func (a And) Evaluate(model map[string]bool) bool {
	return a.Left.Evaluate(model) && a.Right.Evaluate(model)
}

func (a And) Vars() []string { return mergeVars(a.Left, a.Right) }

func (a And) String() string {
	return fmt.Sprintf("(%s & %s)", a.Left, a.Right)
}

// Or is disjunction: Left ∨ Right.
type Or struct {
	Left, Right Formula
}

func (o Or) isFormula() {}

// Negate applies De Morgan: ~(p ∨ q) ≡ ~p ∧ ~q.
func (o Or) Negate() Formula {
	return And{Left: o.Left.Negate(), Right: o.Right.Negate()}
}

func (o Or) Equal(other Formula) bool {
	x, ok := other.(Or)
	return ok && o.Left.Equal(x.Left) && o.Right.Equal(x.Right)
}

func (o Or) Evaluate(model map[string]bool) bool {
	return o.Left.Evaluate(model) || o.Right.Evaluate(model)
}

func (o Or) Vars() []string { return mergeVars(o.Left, o.Right) }

func (o Or) String() string {
	return fmt.Sprintf("(%s | %s)", o.Left, o.Right)
}

// Cond is material implication: Antecedent → Consequent.
type Cond struct {
	Antecedent, Consequent Formula
}

func (c Cond) isFormula() {}

// Negate uses ~(p → q) ≡ p ∧ ~q.
func (c Cond) Negate() Formula {
	return And{Left: c.Antecedent, Right: c.Consequent.Negate()}
}

func (c Cond) Equal(other Formula) bool {
	o, ok := other.(Cond)
	return ok && c.Antecedent.Equal(o.Antecedent) && c.Consequent.Equal(o.Consequent)
}

func (c Cond) Evaluate(model map[string]bool) bool {
	return !c.Antecedent.Evaluate(model) || c.Consequent.Evaluate(model)
}

func (c Cond) Vars() []string { return mergeVars(c.Antecedent, c.Consequent) }

func (c Cond) String() string {
	return fmt.Sprintf("(%s -> %s)", c.Antecedent, c.Consequent)
}

// Bicond is the biconditional: Left ↔ Right.
type Bicond struct {
	Left, Right Formula
}

func (b Bicond) isFormula() {}

// Negate uses ~(p ↔ q) ≡ (p ∧ ~q) ∨ (~p ∧ q).
func (b Bicond) Negate() Formula {
	return Or{
		Left:  And{Left: b.Left, Right: b.Right.Negate()},
		Right: And{Left: b.Left.Negate(), Right: b.Right},
	}
}

func (b Bicond) Equal(other Formula) bool {
	o, ok := other.(Bicond)
	return ok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b Bicond) Evaluate(model map[string]bool) bool {
	return b.Left.Evaluate(model) == b.Right.Evaluate(model)
}

func (b Bicond) Vars() []string { return mergeVars(b.Left, b.Right) }

func (b Bicond) String() string {
	return fmt.Sprintf("(%s <-> %s)", b.Left, b.Right)
}

func mergeVars(left, right Formula) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range [...]Formula{left, right} {
		for _, id := range f.Vars() {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
