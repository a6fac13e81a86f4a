package main

import (
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/hgorl/highsuit/config"
	"github.com/hgorl/highsuit/domain/game"
	"github.com/hgorl/highsuit/scores"
)

func main() {
	cfg := config.Load()
	if cfg.NoColor {
		pterm.DisableColor()
	}

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	renderBanner()
	renderRules()

	table := scores.Load(cfg.ScoresFile)
	prompter := consolePrompter{}

	for {
		players := setupPlayers(prompter)
		rounds := promptIntInRange("Enter number of rounds (1-3)", 1, 3)
		pterm.Info.Printfln("Starting game with %d player(s) for %d round(s)", len(players), rounds)

		session := game.NewSession(players, rounds)
		engine := game.NewEngine(session, consoleObserver{}, table)

		for !engine.Complete() {
			pterm.DefaultSection.Printfln("Round %d of %d", session.CurrentRound+1, rounds)
			spinner, _ := pterm.DefaultSpinner.Start("Shuffling the deck ...")
			spinner.Success()
			if err := engine.PlayRound(); err != nil {
				logger.Warn("could not save high scores", "error", err)
			}
			logger.Debug("round finished", "round", session.CurrentRound, "phase", engine.Phase())
			if !engine.Complete() {
				pterm.DefaultInteractiveTextInput.
					WithDefaultText("Press enter to continue to the next round").
					Show()
			}
		}

		renderFinalResults(session)

		if promptYesNo("Would you like to view the high score table?") {
			table.Render()
		}
		if promptYesNo("Would you like to view the game replay?") {
			renderReplay(session.Replay)
		}
		if !promptYesNo("Play another game?") {
			break
		}
	}

	pterm.Info.Println("Thanks for playing HighSuit!")
}

func setupPlayers(prompter game.Prompter) []*game.Player {
	count := promptIntInRange("Enter number of players (1 or 2)", 1, 2)
	players := make([]*game.Player, 0, count)
	for i := 1; i <= count; i++ {
		players = append(players, game.NewPlayer(promptPlayerName(i), prompter))
	}
	return players
}
