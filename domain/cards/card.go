package cards

import "math/rand"

// Suit indices (0-3)
const (
	Clubs    = 0 // ♣
	Diamonds = 1 // ♦
	Hearts   = 2 // ♥
	Spades   = 3 // ♠
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// NumRanks is the number of ranks in a standard deck. Rank indices run
// 0-12 for 2 through Ace.
const NumRanks = 13

var rankNames = [NumRanks]string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10",
	"Jack", "Queen", "King", "Ace",
}

var suitNames = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}

// scoreValues maps rank index to scoring value: number cards score face
// value, picture cards score 10, aces score 11.
var scoreValues = [NumRanks]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}

// Card represents a playing card with rank and suit. Cards are immutable
// value objects; two cards are equal iff rank and suit match.
type Card struct {
	rank int // 0-12: 2 through ace
	suit int // 0-3: clubs, diamonds, hearts, spades
}

// NewCard creates a Card from a rank index (0-12) and a suit index (0-3).
// The caller is responsible for keeping both in range.
func NewCard(rank, suit int) Card {
	return Card{rank: rank, suit: suit}
}

// RandomCard draws a uniformly random card from the given source.
func RandomCard(r *rand.Rand) Card {
	return Card{rank: r.Intn(NumRanks), suit: r.Intn(NumSuits)}
}

// Rank returns the rank index of the Card (0-12: 2 through ace).
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the suit index of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() int {
	return c.suit
}

// RankName returns the display name of the rank ("2".."10", "Jack", ...).
func (c Card) RankName() string {
	return rankNames[c.rank]
}

// SuitName returns the display name of the suit ("Clubs", "Diamonds", ...).
func (c Card) SuitName() string {
	return suitNames[c.suit]
}

// Score returns the scoring value of the Card: rank 0-8 scores 2-10,
// jack, queen and king score 10, ace scores 11.
func (c Card) Score() int {
	return scoreValues[c.rank]
}

// IsBiggerThan reports whether this card outranks the other. Only rank is
// compared; suit is not a tie-break.
func (c Card) IsBiggerThan(other Card) bool {
	return c.rank > other.rank
}

// Symbol returns the compact form of the Card, e.g. "10♦", "A♠", "J♣".
func (c Card) Symbol() string {
	var rankStr string
	switch c.rank {
	case 9:
		rankStr = "J"
	case 10:
		rankStr = "Q"
	case 11:
		rankStr = "K"
	case 12:
		rankStr = "A"
	default:
		rankStr = rankNames[c.rank]
	}
	return rankStr + suitSymbols[c.suit]
}

// String returns the long form of the Card, e.g. "Queen of Hearts".
func (c Card) String() string {
	return c.RankName() + " of " + c.SuitName()
}

// SuitName returns the display name for a suit index.
func SuitName(suit int) string {
	return suitNames[suit]
}
