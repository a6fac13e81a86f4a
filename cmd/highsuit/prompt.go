package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hgorl/highsuit/domain/cards"
	"github.com/hgorl/highsuit/domain/game"
)

// consolePrompter implements game.Prompter over pterm's interactive
// widgets.
type consolePrompter struct{}

func (consolePrompter) BonusSuitChoice(p *game.Player) int {
	suitScores := p.SuitScores()
	options := make([]string, cards.NumSuits)
	for i := range options {
		options[i] = fmt.Sprintf("%s (%d points)", cards.SuitName(i), suitScores[i])
	}
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Select your bonus suit").
		WithOptions(options).
		Show()
	for i, opt := range options {
		if opt == choice {
			return i + 1
		}
	}
	return 1
}

func (consolePrompter) SwapPositions(p *game.Player) []int {
	renderHand(p)
	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Enter card positions (1-5) to swap separated by spaces, up to 4, or 0 to keep all").
		Show()
	input = strings.TrimSpace(input)
	if input == "" || input == "0" {
		return nil
	}
	var positions []int
	for _, token := range strings.Fields(input) {
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		positions = append(positions, n)
	}
	return positions
}

func promptPlayerName(i int) string {
	prompt := fmt.Sprintf("Enter name for Player %d (or 'Computer' for the scripted opponent)", i)
	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	// Commas would corrupt the score file records, so they are stripped
	// at the door rather than escaped.
	name = strings.TrimSpace(strings.ReplaceAll(name, ",", ""))
	if name == "" {
		return fmt.Sprintf("Player %d", i)
	}
	return name
}

func promptIntInRange(prompt string, min, max int) int {
	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || n < min || n > max {
			pterm.Error.Printfln("Invalid input. Enter a number between %d and %d.", min, max)
			continue
		}
		return n
	}
}

func promptYesNo(question string) bool {
	answer, _ := pterm.DefaultInteractiveConfirm.WithDefaultText(question).Show()
	return answer
}
