package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hgorl/highsuit/domain/cards"
)

// fakePrompter replays canned answers in place of the interactive CLI.
type fakePrompter struct {
	bonusChoice   int
	swapPositions []int
}

func (f fakePrompter) BonusSuitChoice(*Player) int {
	return f.bonusChoice
}

func (f fakePrompter) SwapPositions(*Player) []int {
	return f.swapPositions
}

func fiveCardHand() []cards.Card {
	return handOf(
		cards.NewCard(12, cards.Clubs),
		cards.NewCard(11, cards.Clubs),
		cards.NewCard(0, cards.Diamonds),
		cards.NewCard(1, cards.Hearts),
		cards.NewCard(2, cards.Spades),
	)
}

func TestHumanBonusSuitMapsToIndex(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.Strategy = Human{Prompter: fakePrompter{bonusChoice: 3}}

	assert.Equal(t, cards.Hearts, p.Strategy.BonusSuit(p))
}

func TestHumanSwapPositionsFiltering(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.Hand = fiveCardHand()
	// Duplicates, out-of-range values and everything past the cap of
	// four must be dropped silently.
	p.Strategy = Human{Prompter: fakePrompter{swapPositions: []int{3, 3, 0, 99, 1, 2, 4, 5}}}

	assert.Equal(t, []int{2, 0, 1, 3}, p.Strategy.SwapPositions(p))
}

func TestHumanSwapPositionsEmpty(t *testing.T) {
	p := NewPlayer("Alice", nil)
	p.Hand = fiveCardHand()
	p.Strategy = Human{Prompter: fakePrompter{}}

	assert.Empty(t, p.Strategy.SwapPositions(p))
}

func TestScriptedBonusSuitIsBestSuit(t *testing.T) {
	p := NewPlayer(ComputerName, nil)
	p.Hand = fiveCardHand()

	assert.Equal(t, p.BestSuit(), p.Strategy.BonusSuit(p))
	assert.Equal(t, cards.Clubs, p.Strategy.BonusSuit(p))
}

func TestScriptedSwapsOffSuitWhenHoldingTwoOfBest(t *testing.T) {
	p := NewPlayer(ComputerName, nil)
	// Two clubs and three off-suit cards: all three off-suit positions
	// are marked, even though swapping all of them leaves only two clubs.
	p.Hand = fiveCardHand()

	assert.Equal(t, []int{2, 3, 4}, p.Strategy.SwapPositions(p))
}

func TestScriptedKeepsAllWithSingletonBestSuit(t *testing.T) {
	p := NewPlayer(ComputerName, nil)
	p.Hand = handOf(
		cards.NewCard(12, cards.Clubs),
		cards.NewCard(0, cards.Diamonds),
		cards.NewCard(1, cards.Hearts),
		cards.NewCard(2, cards.Spades),
		cards.NewCard(3, cards.Hearts),
	)
	// Hearts is best (3+5=8) but clubs alone scores 11, so best suit is
	// clubs with one card and nothing is swapped.
	assert.Equal(t, cards.Clubs, p.BestSuit())
	assert.Empty(t, p.Strategy.SwapPositions(p))
}

func TestScriptedCountTakenOnceBeforeScan(t *testing.T) {
	p := NewPlayer(ComputerName, nil)
	// Exactly two spades at the borderline count: the heuristic marks
	// every off-suit card without re-checking the retention count after
	// each mark.
	p.Hand = handOf(
		cards.NewCard(0, cards.Clubs),
		cards.NewCard(12, cards.Spades),
		cards.NewCard(11, cards.Spades),
		cards.NewCard(1, cards.Diamonds),
		cards.NewCard(2, cards.Hearts),
	)
	assert.Equal(t, cards.Spades, p.BestSuit())
	assert.Equal(t, []int{0, 3, 4}, p.Strategy.SwapPositions(p))
}
