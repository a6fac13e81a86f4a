package game

import (
	"fmt"
	"sort"

	"github.com/hgorl/highsuit/domain/cards"
)

// Observer receives display hooks as a turn unfolds so that the CLI can
// render between engine steps. All methods are called synchronously on
// the engine's goroutine.
type Observer interface {
	// TurnStarted fires after the deal, before any choice is made.
	TurnStarted(p *Player, suitScores [cards.NumSuits]int, maxScore int)
	// BonusSuitChosen fires once the bonus suit is resolved.
	BonusSuitChosen(p *Player, suit int)
	// SwapChosen fires with the requested 0-based swap positions, before
	// they are applied. An empty slice means the player keeps all cards.
	SwapChosen(p *Player, positions []int)
	// HandUpdated fires after at least one swap was applied.
	HandUpdated(p *Player)
	// TurnScored fires once the round score is added to the total.
	TurnScored(p *Player, bestSuit, bestScore, bonusSuit, roundScore int)
}

type noopObserver struct{}

func (noopObserver) TurnStarted(*Player, [cards.NumSuits]int, int) {}
func (noopObserver) BonusSuitChosen(*Player, int)                  {}
func (noopObserver) SwapChosen(*Player, []int)                     {}
func (noopObserver) HandUpdated(*Player)                           {}
func (noopObserver) TurnScored(*Player, int, int, int, int)        {}

// ScoreRecorder persists a player's result when the game completes.
type ScoreRecorder interface {
	AddScore(name string, totalScore, rounds int) error
}

// Engine orchestrates rounds for a session: per round it deals fresh
// five-card hands from a shuffled deck, resolves each player's bonus-suit
// and swap choices through their strategy, scores the hand and records a
// replay snapshot. When the last round finishes it reports every player's
// result to the score recorder.
type Engine struct {
	session  *Session
	phase    Phase
	observer Observer
	recorder ScoreRecorder
}

// NewEngine wraps a session. Observer and recorder may be nil; a nil
// observer renders nothing and a nil recorder skips leaderboard entries.
func NewEngine(session *Session, observer Observer, recorder ScoreRecorder) *Engine {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Engine{
		session:  session,
		phase:    DealPending,
		observer: observer,
		recorder: recorder,
	}
}

// Session returns the session the engine is driving.
func (e *Engine) Session() *Session {
	return e.session
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Complete reports whether all rounds have been played.
func (e *Engine) Complete() bool {
	return e.phase == GameComplete
}

// PlayRound runs one full round: deal, then every player's turn in order,
// then the replay append. On the final round it also records leaderboard
// entries; a recording failure is returned after the round state is fully
// settled and does not undo the round.
func (e *Engine) PlayRound() error {
	if e.phase == GameComplete {
		return fmt.Errorf("game already complete after %d rounds", e.session.Rounds)
	}

	e.phase = DealPending
	deck := cards.NewDeck()
	deck.Shuffle()
	e.session.CurrentRound++

	for _, p := range e.session.Players {
		p.ClearHand()
		for i := 0; i < HandSize; i++ {
			c, ok := deck.Deal()
			if !ok {
				break
			}
			p.AddCard(c)
		}
	}

	var round RoundReplay
	for _, p := range e.session.Players {
		round.Players = append(round.Players, e.playTurn(p, deck))
	}
	e.session.Replay.AddRound(round)
	e.phase = RoundComplete

	if e.session.CurrentRound >= e.session.Rounds {
		e.phase = GameComplete
		if e.recorder != nil {
			for _, p := range e.session.Players {
				if err := e.recorder.AddScore(p.Name, p.TotalScore, e.session.Rounds); err != nil {
					return fmt.Errorf("recording score for %s: %w", p.Name, err)
				}
			}
		}
	}
	return nil
}

func (e *Engine) playTurn(p *Player, deck *cards.Deck) PlayerRoundData {
	initial := append([]cards.Card(nil), p.Hand...)
	e.observer.TurnStarted(p, p.SuitScores(), p.MaxSuitScore())

	e.phase = AwaitingBonusSuit
	bonusSuit := p.Strategy.BonusSuit(p)
	e.observer.BonusSuitChosen(p, bonusSuit)

	e.phase = AwaitingSwap
	positions := p.Strategy.SwapPositions(p)
	if len(positions) > MaxSwaps {
		positions = positions[:MaxSwaps]
	}
	// Descending order keeps every index valid while earlier (higher)
	// positions are removed. The replay records this order.
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))
	e.observer.SwapChosen(p, positions)
	if applySwaps(p, deck, positions) > 0 {
		e.observer.HandUpdated(p)
	}

	e.phase = Scored
	score := p.RoundScore(bonusSuit)
	p.TotalScore += score
	e.observer.TurnScored(p, p.BestSuit(), p.MaxSuitScore(), bonusSuit, score)

	return PlayerRoundData{
		PlayerName:       p.Name,
		InitialHand:      initial,
		BonusSuit:        bonusSuit,
		SwappedPositions: append([]int(nil), positions...),
		FinalHand:        append([]cards.Card(nil), p.Hand...),
		RoundScore:       score,
	}
}

// applySwaps replaces the cards at the given positions with freshly dealt
// ones and returns how many swaps were applied. Positions must already be
// sorted descending. Out-of-range or repeated positions are skipped, as
// is any position for which the deck has run dry; the old card then stays
// in the hand. Kept cards retain their relative order; replacements are
// appended in deal order.
func applySwaps(p *Player, deck *cards.Deck, positions []int) int {
	removed := make(map[int]bool, len(positions))
	var drawn []cards.Card
	for _, pos := range positions {
		if pos < 0 || pos >= len(p.Hand) || removed[pos] {
			continue
		}
		c, ok := deck.Deal()
		if !ok {
			continue
		}
		removed[pos] = true
		drawn = append(drawn, c)
	}
	if len(removed) == 0 {
		return 0
	}

	kept := make([]cards.Card, 0, len(p.Hand))
	for i, c := range p.Hand {
		if !removed[i] {
			kept = append(kept, c)
		}
	}
	p.Hand = append(kept, drawn...)
	return len(drawn)
}
