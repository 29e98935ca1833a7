package fol

import "github.com/proofkit/logicore/core"

// BadHornClauseError reports a Horn clause whose antecedent predicates
// were not all positive, or whose consequent was not nil, a bool, or a
// Predicate.
type BadHornClauseError struct {
	*core.LogicError
}

func newBadHornClauseError(op, msg string) *BadHornClauseError {
	return &BadHornClauseError{core.NewLogicError("fol", op, msg)}
}

// ConstantAsVariableError reports a substitution map with a constant term
// used as a key; only variables may be substitution keys.
type ConstantAsVariableError struct {
	*core.LogicError
}

func newConstantAsVariableError(op, msg string) *ConstantAsVariableError {
	return &ConstantAsVariableError{core.NewLogicError("fol", op, msg)}
}
