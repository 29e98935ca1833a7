package prop

// IsTautology reports whether f evaluates to true under every possible
// assignment of its variables.
func IsTautology(f Formula) bool {
	return forAllAssignments(f, func(v bool) bool { return v })
}

// IsContradiction reports whether f evaluates to false under every
// possible assignment of its variables.
func IsContradiction(f Formula) bool {
	return forAllAssignments(f, func(v bool) bool { return !v })
}

// IsContingent reports whether f is neither a tautology nor a
// contradiction: some assignment makes it true, another makes it false.
func IsContingent(f Formula) bool {
	vars := f.Vars()
	hasTrue, hasFalse := false, false
	forEachAssignment(vars, func(model map[string]bool) bool {
		if f.Evaluate(model) {
			hasTrue = true
		} else {
			hasFalse = true
		}
		return !(hasTrue && hasFalse) // keep going until both seen
	})
	return hasTrue && hasFalse
}

func forAllAssignments(f Formula, accept func(bool) bool) bool {
	ok := true
	forEachAssignment(f.Vars(), func(model map[string]bool) bool {
		if !accept(f.Evaluate(model)) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// forEachAssignment enumerates all 2^n truth assignments of vars, calling
// visit with each; visit returns false to stop early.
func forEachAssignment(vars []string, visit func(model map[string]bool) bool) {
	n := len(vars)
	total := 1 << n
	for i := 0; i < total; i++ {
		model := make(map[string]bool, n)
		for j, id := range vars {
			model[id] = (i>>j)&1 == 1
		}
		if !visit(model) {
			return
		}
	}
}
