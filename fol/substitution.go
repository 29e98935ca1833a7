package fol

// Substitution is an ordered mapping from VARIABLE terms to terms. Keys
// are always variables; looking up or substituting a constant key is a
// misuse the caller must not commit (see ConstantAsVariableError).
//
// Substitution values are immutable: every mutating-looking operation
// (Add, AddAll, Compose) returns a new Substitution, leaving the
// receiver untouched.
type Substitution struct {
	order    []Term
	bindings map[Term]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[Term]Term)}
}

// Get returns the term bound to v, if any.
func (s *Substitution) Get(v Term) (Term, bool) {
	if s == nil {
		return Term{}, false
	}
	t, ok := s.bindings[v]
	return t, ok
}

// Contains reports whether v is bound.
func (s *Substitution) Contains(v Term) bool {
	_, ok := s.Get(v)
	return ok
}

// Len returns the number of bindings.
func (s *Substitution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// clone returns a shallow copy of s, or a fresh empty substitution if s
// is nil.
func (s *Substitution) clone() *Substitution {
	next := NewSubstitution()
	if s == nil {
		return next
	}
	next.order = append(next.order, s.order...)
	for k, v := range s.bindings {
		next.bindings[k] = v
	}
	return next
}

// Add returns a new substitution containing s's bindings plus v ↦ t,
// with the new binding winning on key collision.
func (s *Substitution) Add(v, t Term) *Substitution {
	next := s.clone()
	if _, existed := next.bindings[v]; !existed {
		next.order = append(next.order, v)
	}
	next.bindings[v] = t
	return next
}

// AddAll returns a new substitution with every v ↦ t pair merged in,
// each new binding winning on key collision.
func (s *Substitution) AddAll(bindings map[Term]Term) *Substitution {
	next := s.clone()
	for v, t := range bindings {
		if _, existed := next.bindings[v]; !existed {
			next.order = append(next.order, v)
		}
		next.bindings[v] = t
	}
	return next
}

// Compose returns the union of s1 and s2's bindings, with s2's entries
// overriding s1's on collision: apply s1 first, then s2.
func Compose(s1, s2 *Substitution) *Substitution {
	result := s1.clone()
	if s2 == nil {
		return result
	}
	for _, v := range s2.order {
		t := s2.bindings[v]
		if _, existed := result.bindings[v]; !existed {
			result.order = append(result.order, v)
		}
		result.bindings[v] = t
	}
	return result
}

// chase follows a chain of variable bindings to its end: v ↦ w ↦ "const"
// resolves to "const". Returns t itself if it is not a bound variable.
func (s *Substitution) chase(t Term) Term {
	seen := make(map[Term]bool)
	for t.IsVariable() {
		bound, ok := s.Get(t)
		if !ok || seen[t] {
			break
		}
		seen[t] = true
		t = bound
	}
	return t
}

// Substitute applies s to every argument of pred, following variable
// chains to their bound value, and returns the resulting predicate.
// Unbound variables pass through unchanged. Fails with
// ConstantAsVariableError if s holds a constant key: keys are meant to
// be variables only, and Add/AddAll do not themselves enforce that, so
// this check is the misuse guard of last resort.
func (s *Substitution) Substitute(pred Predicate) (Predicate, error) {
	if s != nil {
		for k := range s.bindings {
			if !k.IsVariable() {
				return Predicate{}, newConstantAsVariableError("Substitution.Substitute",
					"substitution map contains a constant key: "+k.ID)
			}
		}
	}
	args := make([]Term, len(pred.Args))
	for i, a := range pred.Args {
		args[i] = s.chase(a)
	}
	return Predicate{ID: pred.ID, Args: args, Negated: pred.Negated}, nil
}
