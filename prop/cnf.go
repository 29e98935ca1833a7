package prop

// ToCNF rewrites any Formula into an equivalent one in conjunctive normal
// form: every disjunction lies below every conjunction. It is recursive
// on formula depth, walking the AST and rewriting rather than
// evaluating it.
//
// Cond and Bicond are eliminated first (material-implication and
// biconditional expansion), And recurses structurally, and Or distributes
// over the CNF'd operands. Negation itself is handled by Formula.Negate,
// which realizes De Morgan and double-negation at construction time, so
// ToCNF never needs to pattern-match on negated compounds directly: a
// Var's negation is structural, and any other formula is first rewritten
// in terms of And/Or/Cond/Bicond before ToCNF ever sees it.
func ToCNF(f Formula) Formula {
	switch n := f.(type) {
	case Var:
		return n

	case Cond:
		return ToCNF(Or{Left: n.Antecedent.Negate(), Right: n.Consequent})

	case Bicond:
		return ToCNF(Or{
			Left:  And{Left: n.Left, Right: n.Right},
			Right: And{Left: n.Left.Negate(), Right: n.Right.Negate()},
		})

	case And:
		return And{Left: ToCNF(n.Left), Right: ToCNF(n.Right)}

	case Or:
		return distribute(ToCNF(n.Left), ToCNF(n.Right))

	default:
		return f
	}
}

// distribute pushes ∨ under ∧: (a ∧ b) ∨ c ⇒ (a ∨ c) ∧ (b ∨ c), and
// symmetrically for c ∨ (a ∧ b). Both operands are assumed already in CNF;
// if neither is a conjunction the result is simply their disjunction.
func distribute(left, right Formula) Formula {
	if a, ok := left.(And); ok {
		return And{
			Left:  distribute(a.Left, right),
			Right: distribute(a.Right, right),
		}
	}
	if a, ok := right.(And); ok {
		return And{
			Left:  distribute(left, a.Left),
			Right: distribute(left, a.Right),
		}
	}
	return Or{Left: left, Right: right}
}
