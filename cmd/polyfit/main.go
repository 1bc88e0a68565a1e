// polyfit is a polyomino puzzle for the terminal: two pieces must fill each
// outline on the board.
//
// Usage:
//
//	polyfit list              - List game modes
//	polyfit play [mode]       - Play a mode (default: polyfit)
//	polyfit menu              - Pick modes interactively
//	polyfit serve             - Start SSH server for remote play
//	polyfit scores [mode]     - Show high scores
//	polyfit catalog <k>       - Print the free polyominoes of size k
//	polyfit compose <k>       - Print composed two-piece outlines
//	polyfit fit <k>           - Compose an outline and list where a piece fits
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible play
//	--db <path>         - Set database path (default: ~/.polyfit/scores.db)
//	--config <path>     - Use a custom polyfit.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/engine"
	"github.com/vovakirdan/polyfit/internal/games/polyfit"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	appConfig config.Config
	logger    *log.Logger
	eng       *engine.Engine
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polyfit",
	Short: "Polyfit - fit polyomino pairs into outlines",
	Long: `Polyfit deals polyomino pieces into a tray. Rotate and mirror them,
then commit two pieces to each outline on the board to fill it.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  catalog  - Print the shapes of one size
  compose  - Print composed outlines
  fit      - Show where a piece fits into an outline

Examples:
  polyfit play
  polyfit play polyfit_relaxed --difficulty easy
  polyfit catalog 5 --pool
  polyfit serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join(config.DataDir(), "scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom polyfit.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(fitCmd)
}

// setup loads the configuration and builds the shared logger and engine.
func setup(cmd *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyfit",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig = cfg

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = flagLogLevel
	}
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}

	eng = engine.New(cfg.Engine, logger.WithPrefix("engine"))
	polyfit.SetConfigPath(flagConfig)
	polyfit.SetEngine(eng)
	polyfit.SetLogger(logger.WithPrefix("game"))
	return nil
}
