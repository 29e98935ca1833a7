package prop

import "github.com/proofkit/logicore/core"

// NonCnfClauseError is raised by ResolutionKB.Add and DpllKB.Add for an
// item that is neither a *CnfClause, a Formula, nor a slice of either.
type NonCnfClauseError struct{ *core.LogicError }

func newNonCnfClauseError(op, msg string) *NonCnfClauseError {
	return &NonCnfClauseError{core.NewLogicError("prop", op, msg)}
}

// UselessCnfClauseError is raised when a clause would contain both a
// literal and its negation (a tautology). Parsers and the resolution loop
// catch this error and silently discard the clause rather than propagate it.
type UselessCnfClauseError struct{ *core.LogicError }

func newUselessCnfClauseError(op, msg string) *UselessCnfClauseError {
	return &UselessCnfClauseError{core.NewLogicError("prop", op, msg)}
}

// CnfResolveError is raised when Resolve is called with a literal that is
// absent from one of the two operand clauses, a programmer error rather
// than a recoverable condition.
type CnfResolveError struct{ *core.LogicError }

func newCnfResolveError(op, msg string) *CnfResolveError {
	return &CnfResolveError{core.NewLogicError("prop", op, msg)}
}

// BadHornClauseError is raised when a propositional Horn clause's
// antecedents do not share a single polarity.
type BadHornClauseError struct{ *core.LogicError }

func newBadHornClauseError(op, msg string) *BadHornClauseError {
	return &BadHornClauseError{core.NewLogicError("prop", op, msg)}
}
