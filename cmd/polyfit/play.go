package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/core"
	"github.com/vovakirdan/polyfit/internal/games/polyfit"
	"github.com/vovakirdan/polyfit/internal/platform/tui"
	"github.com/vovakirdan/polyfit/internal/registry"
	"github.com/vovakirdan/polyfit/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode, polyfit by default.

Controls:
  ←/→ a/d     - Select piece
  ↑/↓ w/s     - Select outline
  x / z       - Rotate right / left
  m / v       - Mirror
  Enter/Space - Commit piece to outline
  o           - Move the first piece to another position
  Backspace   - Take the first piece back
  c / u       - Park / unpark piece
  Tab         - Switch between tray and parking
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Triominoes, relaxed pace
  normal - Tetrominoes, pace speeds up
  hard   - Pentominoes, fast pace that speeds up
  fixed  - Config settings, no speed-up

Examples:
  polyfit play
  polyfit play polyfit_relaxed
  polyfit play --difficulty hard
  polyfit play --config ./my-polyfit.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "polyfit"
	if len(args) == 1 {
		gameID = args[0]
	}
	if err := applyDifficulty(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'polyfit list' to see modes)", err)
	}

	gameLog, closeLog := fileLogger()
	defer closeLog()

	store := openStore(gameLog)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: gameLog,
		Player: playerName(),
	})
}

// applyDifficulty validates --difficulty before handing it to new games.
func applyDifficulty() error {
	if flagDifficulty == "" {
		return nil
	}
	probe := appConfig.Game
	if err := config.ApplyPreset(&probe, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	polyfit.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// fileLogger sends logs to polyfit.log in the data directory while the
// terminal is taken by the game. It falls back to the root logger.
func fileLogger() (*log.Logger, func()) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logger, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "polyfit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "err", err)
		return logger, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyfit",
		Level:           logger.GetLevel(),
	})
	polyfit.SetLogger(l.WithPrefix("game"))
	return l, func() { f.Close() }
}

// openStore opens the score database. Games still run without it.
func openStore(l *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		l.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
