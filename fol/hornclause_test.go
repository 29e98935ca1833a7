package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHornClauseFOLRejectsNegatedAntecedent(t *testing.T) {
	p := NewPredicate("P", NewConstant("a")).Negate()
	_, err := NewHornClauseFOL([]Predicate{p}, nil)
	require.Error(t, err)
	_, ok := err.(*BadHornClauseError)
	assert.True(t, ok)
}

func TestNewHornClauseFOLSingleAntecedentOmittedIsGroundFact(t *testing.T) {
	fact := NewPredicate("Diff", NewConstant("Red"), NewConstant("Blue"))
	h, err := NewHornClauseFOL([]Predicate{fact}, nil)
	require.NoError(t, err)

	assert.True(t, h.IsFact())
	require.NotNil(t, h.ConsequentPred)
	assert.True(t, h.ConsequentPred.Equal(fact))
}

func TestNewHornClauseFOLSingleAntecedentTrueIsAlsoGroundFact(t *testing.T) {
	fact := NewPredicate("Diff", NewConstant("Red"), NewConstant("Blue"))
	h, err := NewHornClauseFOL([]Predicate{fact}, true)
	require.NoError(t, err)

	assert.True(t, h.IsFact())
	require.NotNil(t, h.ConsequentPred)
	assert.True(t, h.ConsequentPred.Equal(fact))
}

func TestNewHornClauseFOLNegatedConsequentBecomesFalse(t *testing.T) {
	x := NewVariable("X")
	antecedent := NewPredicate("American", x)
	consequent := NewPredicate("Criminal", x).Negate()

	h, err := NewHornClauseFOL([]Predicate{antecedent}, consequent)
	require.NoError(t, err)

	assert.Equal(t, ConsequentFalse, h.ConsequentKind)
	require.Len(t, h.Antecedents, 2)
	assert.True(t, h.Antecedents[1].Equal(consequent.Negate()))
}

func TestNewHornClauseFOLOmittedMultiAntecedentIsFalse(t *testing.T) {
	x := NewVariable("X")
	h, err := NewHornClauseFOL([]Predicate{
		NewPredicate("P", x),
		NewPredicate("Q", x),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, ConsequentFalse, h.ConsequentKind)
}

func TestNewHornClauseFOLExplicitPredicateConsequent(t *testing.T) {
	x := NewVariable("X")
	h, err := NewHornClauseFOL([]Predicate{NewPredicate("P", x)}, NewPredicate("Q", x))
	require.NoError(t, err)
	assert.Equal(t, ConsequentPredicate, h.ConsequentKind)
	assert.Equal(t, "Q", h.ConsequentPred.ID)
}

func TestHornClauseFOLEqualIgnoresAntecedentOrder(t *testing.T) {
	x := NewVariable("X")
	p, q := NewPredicate("P", x), NewPredicate("Q", x)
	r := NewPredicate("R", x)

	h1, _ := NewHornClauseFOL([]Predicate{p, q}, r)
	h2, _ := NewHornClauseFOL([]Predicate{q, p}, r)
	assert.True(t, h1.Equal(h2))
}
