package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFolBCAskCriminalWestWasACriminal mirrors the classic "West is a
// criminal" backward-chaining example: West, an American, sold missiles
// (weapons) to Nono, an America-hostile nation, making West a criminal.
func TestFolBCAskCriminalWestWasACriminal(t *testing.T) {
	x, y, z := NewVariable("x"), NewVariable("y"), NewVariable("z")
	nono, west, m1, america := NewConstant("Nono"), NewConstant("West"), NewConstant("M1"), NewConstant("America")

	mustClause := func(ants []Predicate, consequent interface{}) *HornClauseFOL {
		h, err := NewHornClauseFOL(ants, consequent)
		require.NoError(t, err)
		return h
	}

	criminalRule := mustClause([]Predicate{
		NewPredicate("American", x),
		NewPredicate("Weapon", y),
		NewPredicate("Sells", x, y, z),
		NewPredicate("Hostile", z),
	}, NewPredicate("Criminal", x))

	ownsM1 := mustClause(nil, NewPredicate("Owns", nono, m1))
	missileM1 := mustClause(nil, NewPredicate("Missile", m1))
	sellsRule := mustClause([]Predicate{
		NewPredicate("Missile", x),
		NewPredicate("Owns", nono, x),
	}, NewPredicate("Sells", west, x, nono))
	weaponRule := mustClause([]Predicate{NewPredicate("Missile", x)}, NewPredicate("Weapon", x))
	hostileRule := mustClause([]Predicate{NewPredicate("Enemy", x, america)}, NewPredicate("Hostile", x))
	americanWest := mustClause(nil, NewPredicate("American", west))
	enemyNono := mustClause(nil, NewPredicate("Enemy", nono, america))

	kb := []*HornClauseFOL{
		criminalRule, ownsM1, missileM1, sellsRule, weaponRule, hostileRule, americanWest, enemyNono,
	}

	goal := NewPredicate("Criminal", west)
	answers := FolBCAsk(kb, []Predicate{goal}, NewSubstitution())

	assert.NotEmpty(t, answers, "West should be provably a criminal")
}

func TestFolBCAskNoProofReturnsEmpty(t *testing.T) {
	x := NewVariable("X")
	rule, _ := NewHornClauseFOL([]Predicate{NewPredicate("P", x)}, NewPredicate("Q", x))
	kb := []*HornClauseFOL{rule}

	answers := FolBCAsk(kb, []Predicate{NewPredicate("Q", NewConstant("a"))}, NewSubstitution())
	assert.Empty(t, answers)
}

func TestFolBCAskEmptyGoalsSucceedsTrivially(t *testing.T) {
	answers := FolBCAsk(nil, nil, NewSubstitution())
	require.Len(t, answers, 1)
}

func TestFolBCAskEnumeratesMultipleProofs(t *testing.T) {
	// Colorable()-style: a variable goal with several satisfying facts
	// should yield one answer substitution per matching fact.
	x := NewVariable("X")
	red, green, blue := NewConstant("Red"), NewConstant("Green"), NewConstant("Blue")

	mustFact := func(c Predicate) *HornClauseFOL {
		h, err := NewHornClauseFOL([]Predicate{c}, true)
		require.NoError(t, err)
		return h
	}

	kb := []*HornClauseFOL{
		mustFact(NewPredicate("Color", red)),
		mustFact(NewPredicate("Color", green)),
		mustFact(NewPredicate("Color", blue)),
	}

	answers := FolBCAsk(kb, []Predicate{NewPredicate("Color", x)}, NewSubstitution())
	assert.Len(t, answers, 3)
}
