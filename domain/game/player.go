package game

import (
	"strings"

	"github.com/hgorl/highsuit/domain/cards"
)

// HandSize is the number of cards a player holds during active play.
const HandSize = 5

// BonusPoints is awarded when the nominated bonus suit turns out to be
// the hand's best suit.
const BonusPoints = 5

// ComputerName is the sentinel player name that selects the scripted
// strategy, matched case-insensitively.
const ComputerName = "Computer"

// Player holds a name, a mutable hand, the running total score and the
// strategy that resolves its choices.
type Player struct {
	Name       string
	Hand       []cards.Card
	TotalScore int
	Strategy   Strategy

	computer bool
}

// NewPlayer creates a player. A name matching "Computer"
// (case-insensitive) gets the scripted strategy; everyone else is a human
// whose choices go through the given prompter.
func NewPlayer(name string, prompter Prompter) *Player {
	p := &Player{
		Name:     name,
		Hand:     make([]cards.Card, 0, HandSize),
		computer: strings.EqualFold(name, ComputerName),
	}
	if p.computer {
		p.Strategy = Scripted{}
	} else {
		p.Strategy = Human{Prompter: prompter}
	}
	return p
}

// IsComputer reports whether this player is the scripted opponent.
func (p *Player) IsComputer() bool {
	return p.computer
}

// AddCard appends a card to the hand. The round engine enforces the
// five-card discipline; during a swap the hand may transiently differ.
func (p *Player) AddCard(c cards.Card) {
	p.Hand = append(p.Hand, c)
}

// ClearHand empties the hand.
func (p *Player) ClearHand() {
	p.Hand = p.Hand[:0]
}

// InHand reports whether the hand contains the given card.
func (p *Player) InHand(c cards.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// SuitScores returns, per suit index, the summed score of the cards of
// that suit currently in hand. Absent suits sum to zero.
func (p *Player) SuitScores() [cards.NumSuits]int {
	var scores [cards.NumSuits]int
	for _, c := range p.Hand {
		scores[c.Suit()] += c.Score()
	}
	return scores
}

// BestSuit returns the index of the highest-scoring suit. Ties resolve to
// the lowest suit index. An empty hand yields suit 0.
func (p *Player) BestSuit() int {
	scores := p.SuitScores()
	best := 0
	max := 0
	for i, s := range scores {
		if s > max {
			max = s
			best = i
		}
	}
	return best
}

// MaxSuitScore returns the score of the best suit.
func (p *Player) MaxSuitScore() int {
	scores := p.SuitScores()
	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	return max
}

// RoundScore computes the round score for the given bonus suit: the best
// suit's score, plus BonusPoints when the best suit is the bonus suit.
func (p *Player) RoundScore(bonusSuit int) int {
	score := p.MaxSuitScore()
	if p.BestSuit() == bonusSuit {
		score += BonusPoints
	}
	return score
}
