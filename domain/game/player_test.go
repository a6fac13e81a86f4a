package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgorl/highsuit/domain/cards"
)

func handOf(cs ...cards.Card) []cards.Card {
	return cs
}

func TestNewPlayerStrategySelection(t *testing.T) {
	p := NewPlayer("Alice", nil)
	assert.False(t, p.IsComputer())
	assert.IsType(t, Human{}, p.Strategy)

	c := NewPlayer("computer", nil)
	assert.True(t, c.IsComputer())
	assert.IsType(t, Scripted{}, c.Strategy)

	c = NewPlayer("COMPUTER", nil)
	assert.True(t, c.IsComputer())
}

func TestAddAndClearHand(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.AddCard(cards.NewCard(0, cards.Clubs))
	p.AddCard(cards.NewCard(5, cards.Hearts))
	require.Len(t, p.Hand, 2)

	assert.True(t, p.InHand(cards.NewCard(5, cards.Hearts)))
	assert.False(t, p.InHand(cards.NewCard(5, cards.Spades)))

	p.ClearHand()
	assert.Empty(t, p.Hand)
}

func TestSuitScores(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.Hand = handOf(
		cards.NewCard(10, cards.Clubs),   // Q♣ = 10
		cards.NewCard(11, cards.Clubs),   // K♣ = 10
		cards.NewCard(12, cards.Clubs),   // A♣ = 11
		cards.NewCard(0, cards.Diamonds), // 2♦ = 2
		cards.NewCard(1, cards.Hearts),   // 3♥ = 3
	)

	scores := p.SuitScores()
	assert.Equal(t, [cards.NumSuits]int{31, 2, 3, 0}, scores)
	assert.Equal(t, cards.Clubs, p.BestSuit())
	assert.Equal(t, 31, p.MaxSuitScore())
}

func TestRoundScoreWithAndWithoutBonus(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.Hand = handOf(
		cards.NewCard(10, cards.Clubs),
		cards.NewCard(11, cards.Clubs),
		cards.NewCard(12, cards.Clubs),
		cards.NewCard(0, cards.Diamonds),
		cards.NewCard(1, cards.Hearts),
	)

	assert.Equal(t, 36, p.RoundScore(cards.Clubs))
	assert.Equal(t, 31, p.RoundScore(cards.Diamonds))
}

func TestBestSuitTieBreakLowestIndex(t *testing.T) {
	p := NewPlayer("Alice", nil)
	// Clubs and diamonds both sum to 5; hearts trails with 2.
	p.Hand = handOf(
		cards.NewCard(3, cards.Clubs),    // 5♣ = 5
		cards.NewCard(3, cards.Diamonds), // 5♦ = 5
		cards.NewCard(0, cards.Hearts),   // 2♥ = 2
	)

	assert.Equal(t, cards.Clubs, p.BestSuit())
	assert.Equal(t, 5, p.MaxSuitScore())
}

func TestEmptyHandDegeneratesToSuitZero(t *testing.T) {
	p := NewPlayer("Alice", nil)
	assert.Equal(t, 0, p.BestSuit())
	assert.Equal(t, 0, p.MaxSuitScore())
	assert.Equal(t, BonusPoints, p.RoundScore(0))
	assert.Equal(t, 0, p.RoundScore(cards.Hearts))
}
