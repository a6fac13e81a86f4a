package game

// Phase is the round engine's position in a round. Phases advance per
// player in turn order: deal, bonus-suit choice, swap, scoring; after the
// last player the round completes, and after the last round the game
// completes.
type Phase string

const (
	DealPending       Phase = "deal-pending"
	AwaitingBonusSuit Phase = "awaiting-bonus-suit"
	AwaitingSwap      Phase = "awaiting-swap"
	Scored            Phase = "scored"
	RoundComplete     Phase = "round-complete"
	GameComplete      Phase = "game-complete"
)

// Session is the state of one game: the players in turn order, the agreed
// round count, the rounds played so far and the replay log. It is passed
// explicitly through the engine; there is no package-level game state.
type Session struct {
	Players      []*Player
	Rounds       int
	CurrentRound int
	Replay       *Replay
}

// NewSession creates a session for the given players and round count.
func NewSession(players []*Player, rounds int) *Session {
	return &Session{
		Players: players,
		Rounds:  rounds,
		Replay:  NewReplay(),
	}
}
