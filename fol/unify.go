package fol

// Unify computes the most general unifier of x and y relative to theta,
// each of x and y being either a single Term or a []Term of equal
// shape. It returns nil if no unifier exists. A nil theta input
// propagates failure (mirrors querying an already-failed unification
// down a recursive call chain).
//
// No occurs check is performed: the term language is function-free, so
// a variable can never occur inside the term it would be bound to.
func Unify(x, y interface{}, theta *Substitution) *Substitution {
	if theta == nil {
		return nil
	}

	xs, xIsList := x.([]Term)
	ys, yIsList := y.([]Term)

	switch {
	case xIsList && yIsList:
		if len(xs) != len(ys) {
			return nil
		}
		if len(xs) == 0 {
			return theta
		}
		if termListEqual(xs, ys) {
			return theta
		}
		head := Unify(xs[0], ys[0], theta)
		return Unify(xs[1:], ys[1:], head)
	case xIsList != yIsList:
		return nil
	}

	xt := x.(Term)
	yt := y.(Term)

	if xt.Equal(yt) {
		return theta
	}
	if xt.IsVariable() {
		return unifyVar(xt, yt, theta)
	}
	if yt.IsVariable() {
		return unifyVar(yt, xt, theta)
	}
	return nil
}

// unifyVar unifies variable v against term t under theta.
func unifyVar(v, t Term, theta *Substitution) *Substitution {
	if bound, ok := theta.Get(v); ok {
		return Unify(bound, t, theta)
	}
	if t.IsVariable() {
		if bound, ok := theta.Get(t); ok {
			return Unify(v, bound, theta)
		}
	}
	return theta.Add(v, t)
}

func termListEqual(a, b []Term) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// UnifyPredicates unifies two predicates of the same identifier and
// arity by unifying their argument lists. Predicates whose identifiers
// differ never unify.
func UnifyPredicates(p, q Predicate, theta *Substitution) *Substitution {
	if p.ID != q.ID || len(p.Args) != len(q.Args) {
		return nil
	}
	return Unify(p.Args, q.Args, theta)
}
