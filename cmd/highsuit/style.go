package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/hgorl/highsuit/domain/cards"
	"github.com/hgorl/highsuit/domain/game"
)

// consoleObserver renders the engine's turn progression with pterm.
type consoleObserver struct{}

func (consoleObserver) TurnStarted(p *game.Player, suitScores [cards.NumSuits]int, maxScore int) {
	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Printfln("%s's turn", p.Name)
	renderHand(p)
	for i, score := range suitScores {
		pterm.Printfln("%d. %s: %d", i+1, cards.SuitName(i), score)
	}
	pterm.Printfln("Maximum score possible: %d", maxScore)
}

func (consoleObserver) BonusSuitChosen(p *game.Player, suit int) {
	if p.IsComputer() {
		pterm.Info.Printfln("Computer selects bonus suit: %s", cards.SuitName(suit))
	}
}

func (consoleObserver) SwapChosen(p *game.Player, positions []int) {
	if !p.IsComputer() {
		return
	}
	if len(positions) == 0 {
		pterm.Info.Println("Computer keeps all cards.")
		return
	}
	labels := make([]string, len(positions))
	for i, pos := range positions {
		labels[i] = strconv.Itoa(pos + 1)
	}
	pterm.Info.Printfln("Computer swaps cards at positions: %s", strings.Join(labels, " "))
}

func (consoleObserver) HandUpdated(p *game.Player) {
	pterm.Println("Updated hand:")
	renderHand(p)
}

func (consoleObserver) TurnScored(p *game.Player, bestSuit, bestScore, bonusSuit, roundScore int) {
	pterm.Printfln("Highest scoring suit: %s (%d points)", cards.SuitName(bestSuit), bestScore)
	if bestSuit == bonusSuit {
		pterm.Success.Printfln("Bonus applied! (+%d points)", game.BonusPoints)
	}
	pterm.Printfln("%s's score this round: %d", p.Name, roundScore)
	pterm.Printfln("%s's total score: %d", p.Name, p.TotalScore)
}

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("High", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Suit", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func renderRules() {
	pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "Aim for the highest scoring suit in your five-card hand"},
		{Level: 0, Text: "Picture cards (J, Q, K) score 10 points, aces score 11"},
		{Level: 0, Text: "Number cards score their face value"},
		{Level: 0, Text: "Nominate a bonus suit for +5 points if it turns out to be your highest"},
		{Level: 0, Text: "Swap up to 4 cards once per round"},
	}).Render()
}

func renderHand(p *game.Player) {
	parts := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		parts[i] = fmt.Sprintf("[%d] %s", i+1, coloredSymbol(c))
	}
	pterm.DefaultBox.
		WithTitle(p.Name).
		WithTitleTopLeft().
		WithLeftPadding(2).
		WithRightPadding(2).
		Println(strings.Join(parts, "  "))
}

func coloredSymbol(c cards.Card) string {
	if c.Suit() == cards.Diamonds || c.Suit() == cards.Hearts {
		return pterm.LightRed(c.Symbol())
	}
	return c.Symbol()
}

func symbolLine(hand []cards.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = coloredSymbol(c)
	}
	return strings.Join(parts, " ")
}

func renderFinalResults(s *game.Session) {
	pterm.DefaultSection.Println("Final Results")

	sorted := append([]*game.Player(nil), s.Players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})

	rows := pterm.TableData{{"Player", "Total Score"}}
	for _, p := range sorted {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.TotalScore)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if len(sorted) > 1 && sorted[0].TotalScore == sorted[1].TotalScore {
		pterm.Info.Println("It's a tie!")
	} else {
		pterm.Success.Printfln("%s wins with %d points!", sorted[0].Name, sorted[0].TotalScore)
	}

	pterm.Println("Average scores per round:")
	for _, p := range s.Players {
		pterm.Printfln("  %s: %d", p.Name, p.TotalScore/s.Rounds)
	}
}

func renderReplay(r *game.Replay) {
	pterm.DefaultSection.Println("Game Replay")
	if r.IsEmpty() {
		pterm.Info.Println("Nothing to replay yet.")
		return
	}
	for i, round := range r.Rounds() {
		pterm.DefaultSection.WithLevel(2).Printfln("Round %d", i+1)
		for _, data := range round.Players {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Initial hand: %s\n", symbolLine(data.InitialHand))
			fmt.Fprintf(&sb, "Bonus suit: %s\n", cards.SuitName(data.BonusSuit))
			if len(data.SwappedPositions) == 0 {
				sb.WriteString("No cards swapped\n")
			} else {
				labels := make([]string, len(data.SwappedPositions))
				for j, pos := range data.SwappedPositions {
					labels[j] = strconv.Itoa(pos + 1)
				}
				fmt.Fprintf(&sb, "Cards swapped: %s\n", strings.Join(labels, " "))
			}
			fmt.Fprintf(&sb, "Final hand: %s\n", symbolLine(data.FinalHand))
			fmt.Fprintf(&sb, "Round score: %d", data.RoundScore)
			pterm.DefaultBox.
				WithTitle(data.PlayerName).
				WithTitleTopLeft().
				WithLeftPadding(2).
				WithRightPadding(2).
				Println(sb.String())
		}
	}
}
