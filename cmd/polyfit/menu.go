package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfit/internal/platform/tui"
	"github.com/vovakirdan/polyfit/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start polyfit in interactive menu mode.

After a game ends, press B to return to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  polyfit menu
  polyfit menu --fps 30
  polyfit menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyDifficulty(); err != nil {
		return err
	}

	gameLog, closeLog := fileLogger()
	defer closeLog()

	store := openStore(gameLog)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit, res.GameID == "" && !res.WantsScoreboard:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			gameLog.Error("create game", "game", res.GameID, "err", err)
			continue
		}
		if flagSeed == 0 {
			cfg.Seed = 0 // NewModel seeds from the clock
		}
		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: gameLog, Player: player}); err != nil {
			return err
		}
	}
}
