package cards

import "math/rand"

// Deck is an ordered collection of the 52 unique cards. A deck is built
// fresh for each round, consumed by dealing and never refilled.
type Deck struct {
	cards []Card
}

// NewDeck builds a full 52-card deck in suit-major order: all clubs from
// 2 to ace, then diamonds, hearts and spades.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, NumSuits*NumRanks)}
	for suit := 0; suit < NumSuits; suit++ {
		for rank := 0; rank < NumRanks; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// Shuffle permutes the deck in place. The card multiset is unchanged.
func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. The second return value is false
// when the deck is empty; the caller must check it before using the card.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// CardsRemaining returns the number of cards left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty reports whether all cards have been dealt.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
