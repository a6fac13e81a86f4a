package game

import "github.com/hgorl/highsuit/domain/cards"

// PlayerRoundData is an immutable snapshot of one player's turn in a
// round: the hand before the swap, the nominated bonus suit, the swap
// positions as requested (0-based, descending), the final hand and the
// round score.
type PlayerRoundData struct {
	PlayerName       string
	InitialHand      []cards.Card
	BonusSuit        int
	SwappedPositions []int
	FinalHand        []cards.Card
	RoundScore       int
}

// RoundReplay collects the per-player snapshots of one round, in turn
// order.
type RoundReplay struct {
	Players []PlayerRoundData
}

// Replay is the append-only record of one game session's rounds. A new
// game starts with a fresh Replay.
type Replay struct {
	rounds []RoundReplay
}

// NewReplay returns an empty replay.
func NewReplay() *Replay {
	return &Replay{}
}

// AddRound appends a completed round.
func (r *Replay) AddRound(round RoundReplay) {
	r.rounds = append(r.rounds, round)
}

// Rounds returns the recorded rounds in play order.
func (r *Replay) Rounds() []RoundReplay {
	return r.rounds
}

// IsEmpty reports whether no rounds have been recorded yet.
func (r *Replay) IsEmpty() bool {
	return len(r.rounds) == 0
}
