package game

// MaxSwaps caps how many cards a player may swap in one turn.
const MaxSwaps = 4

// Prompter is the interactive collaborator for human choices. The CLI
// implements it; calls block until the user answers.
type Prompter interface {
	// BonusSuitChoice asks for a bonus suit and returns a choice in 1-4.
	BonusSuitChoice(p *Player) int
	// SwapPositions asks which hand positions to swap and returns 1-based
	// positions. Malformed tokens are already filtered out by the CLI.
	SwapPositions(p *Player) []int
}

// Strategy resolves a player's two choices in a turn. Positions returned
// by SwapPositions are 0-based hand indices.
type Strategy interface {
	BonusSuit(p *Player) int
	SwapPositions(p *Player) []int
}

// Human delegates both choices to the prompter, translating the external
// 1-based convention to hand indices and dropping duplicates,
// out-of-range positions and anything past the swap cap.
type Human struct {
	Prompter Prompter
}

func (h Human) BonusSuit(p *Player) int {
	return h.Prompter.BonusSuitChoice(p) - 1
}

func (h Human) SwapPositions(p *Player) []int {
	var positions []int
	for _, pos := range h.Prompter.SwapPositions(p) {
		idx := pos - 1
		if idx < 0 || idx >= len(p.Hand) {
			continue
		}
		dup := false
		for _, seen := range positions {
			if seen == idx {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		positions = append(positions, idx)
		if len(positions) >= MaxSwaps {
			break
		}
	}
	return positions
}

// Scripted is the computer opponent: a pure function of the hand.
type Scripted struct{}

// BonusSuit always nominates the hand's own best suit, so the computer
// always collects the bonus.
func (Scripted) BonusSuit(p *Player) int {
	return p.BestSuit()
}

// SwapPositions marks off-suit cards for swapping when the best suit
// already holds at least two cards. The best suit and its card count are
// taken once before the scan and not refreshed as cards are marked, so a
// borderline count can mark more cards than strictly needed.
func (Scripted) SwapPositions(p *Player) []int {
	best := p.BestSuit()
	inBestSuit := 0
	for _, c := range p.Hand {
		if c.Suit() == best {
			inBestSuit++
		}
	}

	var positions []int
	for i, c := range p.Hand {
		if len(positions) >= MaxSwaps {
			break
		}
		if c.Suit() != best && inBestSuit >= 2 {
			positions = append(positions, i)
		}
	}
	return positions
}
